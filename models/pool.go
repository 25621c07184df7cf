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

package models

// Pool groups backend members that receive traffic under one distribution
// method. Names are unique per load balancer, not globally. Method and
// protocol are inert labels, nothing in this system executes them.
type Pool struct {
	BaseModel
	Name           string          `gorm:"column:name;type:varchar(256);index:uk_pool,unique;not null;comment:name" json:"name"`
	LoadBalancerID uint            `gorm:"column:load_balancer_id;index:uk_pool,unique;not null;comment:load balancer id" json:"load_balancer_id"`
	LoadBalancer   LoadBalancer    `json:"-"`
	Method         string          `gorm:"column:method;type:varchar(256);default:'round-robin';comment:distribution method" json:"method"`
	Protocol       string          `gorm:"column:protocol;type:varchar(256);default:'http';comment:backend protocol" json:"protocol"`
	Description    string          `gorm:"column:description;type:varchar(1024);comment:description" json:"description"`
	Members        []PoolMember    `json:"members,omitempty"`
	VirtualServers []VirtualServer `gorm:"foreignKey:PoolID" json:"virtual_servers,omitempty"`
}

// Label returns the display label used in list views and search results.
func (p Pool) Label() string {
	return p.Name
}
