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

// @Summary Detach Inventory Object
// @Description Clear every reference to an external inventory object, such as a retired device or a released ip address
// @Tags Inventory
// @Accept json
// @Produce json
// @Param kind path string true "kind" Enums(device, site, tenant, ip-address)
// @Param id path string true "id"
// @Success 200
// @Failure 400
// @Failure 500
// @Router /inventory/{kind}/{id} [delete]
func (h *Handlers) DetachInventoryObject(ctx *gin.Context) {
	var params types.DetachInventoryObjectParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	if err := h.service.DetachInventoryObject(ctx.Request.Context(), params.Kind, params.ID); err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.Status(http.StatusOK)
}
