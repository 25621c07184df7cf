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

// CSV row shapes for bulk import and export. Relationship columns carry
// human-readable names, not ids; the service resolves them on import.

type LoadBalancerCSV struct {
	Name        string `csv:"name" validate:"required,max=200"`
	Platform    string `csv:"platform" validate:"required"`
	Status      string `csv:"status" validate:"omitempty"`
	Description string `csv:"description" validate:"omitempty,max=500"`
}

type PoolCSV struct {
	LoadBalancer string `csv:"loadbalancer" validate:"required"`
	Name         string `csv:"name" validate:"required,max=200"`
	Method       string `csv:"method" validate:"omitempty"`
	Protocol     string `csv:"protocol" validate:"omitempty"`
	Description  string `csv:"description" validate:"omitempty,max=500"`
}

type VirtualServerCSV struct {
	LoadBalancer string `csv:"loadbalancer" validate:"required"`
	Name         string `csv:"name" validate:"required,max=200"`
	Port         int32  `csv:"port" validate:"gte=1,lte=65535"`
	Protocol     string `csv:"protocol" validate:"omitempty"`
	Status       string `csv:"status" validate:"omitempty"`
	Pool         string `csv:"pool" validate:"omitempty"`
	Description  string `csv:"description" validate:"omitempty,max=500"`
}

type PoolMemberCSV struct {
	LoadBalancer string `csv:"loadbalancer" validate:"required"`
	Pool         string `csv:"pool" validate:"required"`
	Name         string `csv:"name" validate:"required,max=200"`
	Port         int32  `csv:"port" validate:"gte=1,lte=65535"`
	Weight       int32  `csv:"weight" validate:"omitempty,gte=0,lte=65535"`
	Priority     int32  `csv:"priority" validate:"omitempty,gte=0"`
	Status       string `csv:"status" validate:"omitempty"`
	Description  string `csv:"description" validate:"omitempty,max=500"`
}

// ImportResult summarizes one bulk import. The import is transactional:
// Created is only non-zero when every row passed validation.
type ImportResult struct {
	Created int `json:"created"`
}
