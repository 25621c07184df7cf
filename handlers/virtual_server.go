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

// @Summary Create VirtualServer
// @Description Create by json config
// @Tags VirtualServer
// @Accept json
// @Produce json
// @Param VirtualServer body types.CreateVirtualServerRequest true "VirtualServer"
// @Success 200 {object} models.VirtualServer
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /virtual-servers [post]
func (h *Handlers) CreateVirtualServer(ctx *gin.Context) {
	var json types.CreateVirtualServerRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	virtualServer, err := h.service.CreateVirtualServer(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, virtualServer)
}

// @Summary Destroy VirtualServer
// @Description Destroy by id
// @Tags VirtualServer
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /virtual-servers/{id} [delete]
func (h *Handlers) DestroyVirtualServer(ctx *gin.Context) {
	var params types.VirtualServerParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	if err := h.service.DestroyVirtualServer(ctx.Request.Context(), params.ID); err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.Status(http.StatusOK)
}

// @Summary Update VirtualServer
// @Description Update by json config
// @Tags VirtualServer
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param VirtualServer body types.UpdateVirtualServerRequest true "VirtualServer"
// @Success 200 {object} models.VirtualServer
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /virtual-servers/{id} [patch]
func (h *Handlers) UpdateVirtualServer(ctx *gin.Context) {
	var params types.VirtualServerParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.UpdateVirtualServerRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	virtualServer, err := h.service.UpdateVirtualServer(ctx.Request.Context(), params.ID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, virtualServer)
}

// @Summary Get VirtualServer
// @Description Get VirtualServer by id
// @Tags VirtualServer
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200 {object} models.VirtualServer
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /virtual-servers/{id} [get]
func (h *Handlers) GetVirtualServer(ctx *gin.Context) {
	var params types.VirtualServerParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	virtualServer, err := h.service.GetVirtualServer(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, virtualServer)
}

// @Summary Get VirtualServers
// @Description Get VirtualServers
// @Tags VirtualServer
// @Accept json
// @Produce json
// @Param page query int true "current page" default(0)
// @Param per_page query int true "return max item count, default 10, max 50" default(10) minimum(2) maximum(50)
// @Success 200 {object} []models.VirtualServer
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /virtual-servers [get]
func (h *Handlers) GetVirtualServers(ctx *gin.Context) {
	var query types.GetVirtualServersQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	h.setPaginationDefault(&query.Page, &query.PerPage)
	virtualServers, count, err := h.service.GetVirtualServers(ctx.Request.Context(), query)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	h.setPaginationLinkHeader(ctx, query.Page, query.PerPage, int(count))
	ctx.JSON(http.StatusOK, virtualServers)
}

// @Summary Import VirtualServers
// @Description Import virtual servers from csv rows, resolving load balancers and pools by name
// @Tags VirtualServer
// @Accept text/csv
// @Produce json
// @Success 200 {object} types.ImportResult
// @Failure 400
// @Failure 500
// @Router /virtual-servers/import [post]
func (h *Handlers) ImportVirtualServers(ctx *gin.Context) {
	result, err := h.service.ImportVirtualServers(ctx.Request.Context(), ctx.Request.Body)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// @Summary Export VirtualServers
// @Description Export virtual servers as csv rows
// @Tags VirtualServer
// @Accept json
// @Produce text/csv
// @Success 200
// @Failure 500
// @Router /virtual-servers/export [get]
func (h *Handlers) ExportVirtualServers(ctx *gin.Context) {
	ctx.Header("Content-Type", "text/csv")
	if err := h.service.ExportVirtualServers(ctx.Request.Context(), ctx.Writer); err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}
}
