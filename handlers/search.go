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

// @Summary Search
// @Description Search load balancers, pools, virtual servers and pool members by name or description
// @Tags Search
// @Accept json
// @Produce json
// @Param q query string true "search term"
// @Success 200 {object} types.SearchResponse
// @Failure 400
// @Failure 500
// @Router /search [get]
func (h *Handlers) Search(ctx *gin.Context) {
	var query types.SearchQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	resp, err := h.service.Search(ctx.Request.Context(), query)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
