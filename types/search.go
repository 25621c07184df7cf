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

type SearchQuery struct {
	Q string `form:"q" binding:"required"`
}

// SearchHit is one matched record. Name matches rank above description
// matches within each collection.
type SearchHit struct {
	Type        string `json:"type"`
	ID          uint   `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

type SearchResponse struct {
	Query string      `json:"query"`
	Hits  []SearchHit `json:"hits"`
}

const (
	SearchTypeLoadBalancer  = "load-balancer"
	SearchTypePool          = "pool"
	SearchTypeVirtualServer = "virtual-server"
	SearchTypePoolMember    = "pool-member"
)
