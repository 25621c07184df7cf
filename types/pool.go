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

type PoolParams struct {
	ID uint `uri:"id" binding:"required"`
}

type CreatePoolRequest struct {
	Name           string `json:"name" binding:"required,max=200"`
	LoadBalancerID uint   `json:"load_balancer_id" binding:"required"`
	Method         string `json:"method" binding:"omitempty"`
	Protocol       string `json:"protocol" binding:"omitempty"`
	Description    string `json:"description" binding:"omitempty,max=500"`
}

type UpdatePoolRequest struct {
	Name        string  `json:"name" binding:"omitempty,max=200"`
	Method      string  `json:"method" binding:"omitempty"`
	Protocol    string  `json:"protocol" binding:"omitempty"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

type GetPoolsQuery struct {
	Page           int      `form:"page" binding:"omitempty,gte=1"`
	PerPage        int      `form:"per_page" binding:"omitempty,gte=1,lte=50"`
	Name           string   `form:"name" binding:"omitempty"`
	LoadBalancerID uint     `form:"load_balancer_id" binding:"omitempty"`
	Method         []string `form:"method" binding:"omitempty"`
	Protocol       []string `form:"protocol" binding:"omitempty"`
	Search         string   `form:"q" binding:"omitempty"`
}
