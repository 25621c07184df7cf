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

type PoolMemberParams struct {
	ID uint `uri:"id" binding:"required"`
}

type CreatePoolMemberRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	PoolID      uint   `json:"pool_id" binding:"required"`
	IPAddressID *uint  `json:"ip_address_id" binding:"omitempty"`
	DeviceID    *uint  `json:"device_id" binding:"omitempty"`
	Port        int32  `json:"port" binding:"required,gte=1,lte=65535"`
	Weight      *int32 `json:"weight" binding:"omitempty,gte=1,lte=65535"`
	Priority    *int32 `json:"priority" binding:"omitempty,gte=0"`
	Status      string `json:"status" binding:"omitempty"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// UpdatePoolMemberRequest carries a partial update. Weight, priority and
// description are pointers so zero values can be told apart from absent
// fields; IPAddressID and DeviceID follow the attach/detach convention.
type UpdatePoolMemberRequest struct {
	Name        string  `json:"name" binding:"omitempty,max=200"`
	IPAddressID *uint   `json:"ip_address_id" binding:"omitempty"`
	DeviceID    *uint   `json:"device_id" binding:"omitempty"`
	Port        int32   `json:"port" binding:"omitempty,gte=1,lte=65535"`
	Weight      *int32  `json:"weight" binding:"omitempty,gte=1,lte=65535"`
	Priority    *int32  `json:"priority" binding:"omitempty,gte=0"`
	Status      string  `json:"status" binding:"omitempty"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

type GetPoolMembersQuery struct {
	Page        int      `form:"page" binding:"omitempty,gte=1"`
	PerPage     int      `form:"per_page" binding:"omitempty,gte=1,lte=50"`
	Name        string   `form:"name" binding:"omitempty"`
	PoolID      uint     `form:"pool_id" binding:"omitempty"`
	IPAddressID uint     `form:"ip_address_id" binding:"omitempty"`
	DeviceID    uint     `form:"device_id" binding:"omitempty"`
	Port        int32    `form:"port" binding:"omitempty,gte=1,lte=65535"`
	Weight      int32    `form:"weight" binding:"omitempty,gte=1,lte=65535"`
	Priority    *int32   `form:"priority" binding:"omitempty,gte=0"`
	Status      []string `form:"status" binding:"omitempty"`
	Search      string   `form:"q" binding:"omitempty"`
}
