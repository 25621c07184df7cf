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

type LoadBalancerParams struct {
	ID uint `uri:"id" binding:"required"`
}

type CreateLoadBalancerRequest struct {
	Name           string `json:"name" binding:"required,max=200"`
	Platform       string `json:"platform" binding:"required"`
	Status         string `json:"status" binding:"omitempty"`
	DeviceID       *uint  `json:"device_id" binding:"omitempty"`
	SiteID         *uint  `json:"site_id" binding:"omitempty"`
	TenantID       *uint  `json:"tenant_id" binding:"omitempty"`
	ManagementIPID *uint  `json:"management_ip_id" binding:"omitempty"`
	Description    string `json:"description" binding:"omitempty,max=500"`
}

// UpdateLoadBalancerRequest carries a partial update. Zero-valued string
// fields are left untouched; description is a pointer so an empty string
// clears it. Weak reference fields distinguish three cases: absent (no
// change), pointer to an id (attach), pointer to zero (detach).
type UpdateLoadBalancerRequest struct {
	Name           string  `json:"name" binding:"omitempty,max=200"`
	Platform       string  `json:"platform" binding:"omitempty"`
	Status         string  `json:"status" binding:"omitempty"`
	DeviceID       *uint   `json:"device_id" binding:"omitempty"`
	SiteID         *uint   `json:"site_id" binding:"omitempty"`
	TenantID       *uint   `json:"tenant_id" binding:"omitempty"`
	ManagementIPID *uint   `json:"management_ip_id" binding:"omitempty"`
	Description    *string `json:"description" binding:"omitempty,max=500"`
}

type GetLoadBalancersQuery struct {
	Page     int      `form:"page" binding:"omitempty,gte=1"`
	PerPage  int      `form:"per_page" binding:"omitempty,gte=1,lte=50"`
	Name     string   `form:"name" binding:"omitempty"`
	Platform []string `form:"platform" binding:"omitempty"`
	Status   []string `form:"status" binding:"omitempty"`
	DeviceID uint     `form:"device_id" binding:"omitempty"`
	SiteID   uint     `form:"site_id" binding:"omitempty"`
	TenantID uint     `form:"tenant_id" binding:"omitempty"`
	Search   string   `form:"q" binding:"omitempty"`
}
