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

// @Summary Create Pool
// @Description Create by json config
// @Tags Pool
// @Accept json
// @Produce json
// @Param Pool body types.CreatePoolRequest true "Pool"
// @Success 200 {object} models.Pool
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /pools [post]
func (h *Handlers) CreatePool(ctx *gin.Context) {
	var json types.CreatePoolRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	pool, err := h.service.CreatePool(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, pool)
}

// @Summary Destroy Pool
// @Description Destroy by id, cascading to owned members
// @Tags Pool
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /pools/{id} [delete]
func (h *Handlers) DestroyPool(ctx *gin.Context) {
	var params types.PoolParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	if err := h.service.DestroyPool(ctx.Request.Context(), params.ID); err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.Status(http.StatusOK)
}

// @Summary Update Pool
// @Description Update by json config
// @Tags Pool
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param Pool body types.UpdatePoolRequest true "Pool"
// @Success 200 {object} models.Pool
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /pools/{id} [patch]
func (h *Handlers) UpdatePool(ctx *gin.Context) {
	var params types.PoolParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.UpdatePoolRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	pool, err := h.service.UpdatePool(ctx.Request.Context(), params.ID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, pool)
}

// @Summary Get Pool
// @Description Get Pool by id
// @Tags Pool
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200 {object} models.Pool
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /pools/{id} [get]
func (h *Handlers) GetPool(ctx *gin.Context) {
	var params types.PoolParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	pool, err := h.service.GetPool(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, pool)
}

// @Summary Get Pools
// @Description Get Pools
// @Tags Pool
// @Accept json
// @Produce json
// @Param page query int true "current page" default(0)
// @Param per_page query int true "return max item count, default 10, max 50" default(10) minimum(2) maximum(50)
// @Success 200 {object} []models.Pool
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /pools [get]
func (h *Handlers) GetPools(ctx *gin.Context) {
	var query types.GetPoolsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	h.setPaginationDefault(&query.Page, &query.PerPage)
	pools, count, err := h.service.GetPools(ctx.Request.Context(), query)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	h.setPaginationLinkHeader(ctx, query.Page, query.PerPage, int(count))
	ctx.JSON(http.StatusOK, pools)
}

// @Summary Import Pools
// @Description Import pools from csv rows, resolving load balancers by name
// @Tags Pool
// @Accept text/csv
// @Produce json
// @Success 200 {object} types.ImportResult
// @Failure 400
// @Failure 500
// @Router /pools/import [post]
func (h *Handlers) ImportPools(ctx *gin.Context) {
	result, err := h.service.ImportPools(ctx.Request.Context(), ctx.Request.Body)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// @Summary Export Pools
// @Description Export pools as csv rows
// @Tags Pool
// @Accept json
// @Produce text/csv
// @Success 200
// @Failure 500
// @Router /pools/export [get]
func (h *Handlers) ExportPools(ctx *gin.Context) {
	ctx.Header("Content-Type", "text/csv")
	if err := h.service.ExportPools(ctx.Request.Context(), ctx.Writer); err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}
}
