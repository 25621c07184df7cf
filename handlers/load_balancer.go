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

// @Summary Create LoadBalancer
// @Description Create by json config
// @Tags LoadBalancer
// @Accept json
// @Produce json
// @Param LoadBalancer body types.CreateLoadBalancerRequest true "LoadBalancer"
// @Success 200 {object} models.LoadBalancer
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /loadbalancers [post]
func (h *Handlers) CreateLoadBalancer(ctx *gin.Context) {
	var json types.CreateLoadBalancerRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	loadBalancer, err := h.service.CreateLoadBalancer(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, loadBalancer)
}

// @Summary Destroy LoadBalancer
// @Description Destroy by id, cascading to owned pools and virtual servers
// @Tags LoadBalancer
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /loadbalancers/{id} [delete]
func (h *Handlers) DestroyLoadBalancer(ctx *gin.Context) {
	var params types.LoadBalancerParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	if err := h.service.DestroyLoadBalancer(ctx.Request.Context(), params.ID); err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.Status(http.StatusOK)
}

// @Summary Update LoadBalancer
// @Description Update by json config
// @Tags LoadBalancer
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param LoadBalancer body types.UpdateLoadBalancerRequest true "LoadBalancer"
// @Success 200 {object} models.LoadBalancer
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /loadbalancers/{id} [patch]
func (h *Handlers) UpdateLoadBalancer(ctx *gin.Context) {
	var params types.LoadBalancerParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.UpdateLoadBalancerRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	loadBalancer, err := h.service.UpdateLoadBalancer(ctx.Request.Context(), params.ID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, loadBalancer)
}

// @Summary Get LoadBalancer
// @Description Get LoadBalancer by id
// @Tags LoadBalancer
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200 {object} models.LoadBalancer
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /loadbalancers/{id} [get]
func (h *Handlers) GetLoadBalancer(ctx *gin.Context) {
	var params types.LoadBalancerParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	loadBalancer, err := h.service.GetLoadBalancer(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, loadBalancer)
}

// @Summary Get LoadBalancers
// @Description Get LoadBalancers
// @Tags LoadBalancer
// @Accept json
// @Produce json
// @Param page query int true "current page" default(0)
// @Param per_page query int true "return max item count, default 10, max 50" default(10) minimum(2) maximum(50)
// @Success 200 {object} []models.LoadBalancer
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /loadbalancers [get]
func (h *Handlers) GetLoadBalancers(ctx *gin.Context) {
	var query types.GetLoadBalancersQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	h.setPaginationDefault(&query.Page, &query.PerPage)
	loadBalancers, count, err := h.service.GetLoadBalancers(ctx.Request.Context(), query)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	h.setPaginationLinkHeader(ctx, query.Page, query.PerPage, int(count))
	ctx.JSON(http.StatusOK, loadBalancers)
}

// @Summary Import LoadBalancers
// @Description Import load balancers from csv rows
// @Tags LoadBalancer
// @Accept text/csv
// @Produce json
// @Success 200 {object} types.ImportResult
// @Failure 400
// @Failure 500
// @Router /loadbalancers/import [post]
func (h *Handlers) ImportLoadBalancers(ctx *gin.Context) {
	result, err := h.service.ImportLoadBalancers(ctx.Request.Context(), ctx.Request.Body)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// @Summary Export LoadBalancers
// @Description Export load balancers as csv rows
// @Tags LoadBalancer
// @Accept json
// @Produce text/csv
// @Success 200
// @Failure 500
// @Router /loadbalancers/export [get]
func (h *Handlers) ExportLoadBalancers(ctx *gin.Context) {
	ctx.Header("Content-Type", "text/csv")
	if err := h.service.ExportLoadBalancers(ctx.Request.Context(), ctx.Writer); err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}
}
