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

package types

type VirtualServerParams struct {
	ID uint `uri:"id" binding:"required"`
}

type CreateVirtualServerRequest struct {
	Name           string `json:"name" binding:"required,max=200"`
	LoadBalancerID uint   `json:"load_balancer_id" binding:"required"`
	IPAddressID    *uint  `json:"ip_address_id" binding:"omitempty"`
	Port           int32  `json:"port" binding:"required,gte=1,lte=65535"`
	Protocol       string `json:"protocol" binding:"omitempty"`
	Status         string `json:"status" binding:"omitempty"`
	PoolID         *uint  `json:"pool_id" binding:"omitempty"`
	TenantID       *uint  `json:"tenant_id" binding:"omitempty"`
	Description    string `json:"description" binding:"omitempty,max=500"`
}

// UpdateVirtualServerRequest carries a partial update. PoolID, TenantID and
// IPAddressID follow the attach/detach convention: absent means no change,
// pointer to zero detaches. Description is a pointer so an empty string
// clears it.
type UpdateVirtualServerRequest struct {
	Name        string  `json:"name" binding:"omitempty,max=200"`
	IPAddressID *uint   `json:"ip_address_id" binding:"omitempty"`
	Port        int32   `json:"port" binding:"omitempty,gte=1,lte=65535"`
	Protocol    string  `json:"protocol" binding:"omitempty"`
	Status      string  `json:"status" binding:"omitempty"`
	PoolID      *uint   `json:"pool_id" binding:"omitempty"`
	TenantID    *uint   `json:"tenant_id" binding:"omitempty"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

type GetVirtualServersQuery struct {
	Page           int      `form:"page" binding:"omitempty,gte=1"`
	PerPage        int      `form:"per_page" binding:"omitempty,gte=1,lte=50"`
	Name           string   `form:"name" binding:"omitempty"`
	LoadBalancerID uint     `form:"load_balancer_id" binding:"omitempty"`
	Status         []string `form:"status" binding:"omitempty"`
	Protocol       []string `form:"protocol" binding:"omitempty"`
	Port           int32    `form:"port" binding:"omitempty,gte=1,lte=65535"`
	PoolID         uint     `form:"pool_id" binding:"omitempty"`
	TenantID       uint     `form:"tenant_id" binding:"omitempty"`
	Search         string   `form:"q" binding:"omitempty"`
}
