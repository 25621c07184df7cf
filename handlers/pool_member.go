/*
 *     Copyright 2023 The NetBox LoadBalancer Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/djohnnes/netbox-loadbalancer/types"
)

// @Summary Create PoolMember
// @Description Create by json config
// @Tags PoolMember
// @Accept json
// @Produce json
// @Param PoolMember body types.CreatePoolMemberRequest true "PoolMember"
// @Success 200 {object} models.PoolMember
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /pool-members [post]
func (h *Handlers) CreatePoolMember(ctx *gin.Context) {
	var json types.CreatePoolMemberRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	poolMember, err := h.service.CreatePoolMember(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, poolMember)
}

// @Summary Destroy PoolMember
// @Description Destroy by id
// @Tags PoolMember
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /pool-members/{id} [delete]
func (h *Handlers) DestroyPoolMember(ctx *gin.Context) {
	var params types.PoolMemberParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	if err := h.service.DestroyPoolMember(ctx.Request.Context(), params.ID); err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.Status(http.StatusOK)
}

// @Summary Update PoolMember
// @Description Update by json config
// @Tags PoolMember
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param PoolMember body types.UpdatePoolMemberRequest true "PoolMember"
// @Success 200 {object} models.PoolMember
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /pool-members/{id} [patch]
func (h *Handlers) UpdatePoolMember(ctx *gin.Context) {
	var params types.PoolMemberParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.UpdatePoolMemberRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	poolMember, err := h.service.UpdatePoolMember(ctx.Request.Context(), params.ID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, poolMember)
}

// @Summary Get PoolMember
// @Description Get PoolMember by id
// @Tags PoolMember
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200 {object} models.PoolMember
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /pool-members/{id} [get]
func (h *Handlers) GetPoolMember(ctx *gin.Context) {
	var params types.PoolMemberParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	poolMember, err := h.service.GetPoolMember(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, poolMember)
}

// @Summary Get PoolMembers
// @Description Get PoolMembers
// @Tags PoolMember
// @Accept json
// @Produce json
// @Param page query int true "current page" default(0)
// @Param per_page query int true "return max item count, default 10, max 50" default(10) minimum(2) maximum(50)
// @Success 200 {object} []models.PoolMember
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /pool-members [get]
func (h *Handlers) GetPoolMembers(ctx *gin.Context) {
	var query types.GetPoolMembersQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	h.setPaginationDefault(&query.Page, &query.PerPage)
	poolMembers, count, err := h.service.GetPoolMembers(ctx.Request.Context(), query)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	h.setPaginationLinkHeader(ctx, query.Page, query.PerPage, int(count))
	ctx.JSON(http.StatusOK, poolMembers)
}

// @Summary Import PoolMembers
// @Description Import pool members from csv rows, resolving load balancers and pools by name
// @Tags PoolMember
// @Accept text/csv
// @Produce json
// @Success 200 {object} types.ImportResult
// @Failure 400
// @Failure 500
// @Router /pool-members/import [post]
func (h *Handlers) ImportPoolMembers(ctx *gin.Context) {
	result, err := h.service.ImportPoolMembers(ctx.Request.Context(), ctx.Request.Body)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// @Summary Export PoolMembers
// @Description Export pool members as csv rows
// @Tags PoolMember
// @Accept json
// @Produce text/csv
// @Success 200
// @Failure 500
// @Router /pool-members/export [get]
func (h *Handlers) ExportPoolMembers(ctx *gin.Context) {
	ctx.Header("Content-Type", "text/csv")
	if err := h.service.ExportPoolMembers(ctx.Request.Context(), ctx.Writer); err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}
}
