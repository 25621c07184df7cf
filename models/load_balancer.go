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

// LoadBalancer is the root record of the inventory: a physical or virtual
// load balancing appliance. Pools and virtual servers belong to exactly one
// load balancer and are removed with it.
//
// DeviceID, SiteID, TenantID and ManagementIPID identify objects owned by
// the external inventory system. They are weak references: when the target
// is removed the column is cleared, never cascaded.
type LoadBalancer struct {
	BaseModel
	Name           string          `gorm:"column:name;type:varchar(256);index:uk_load_balancer_name,unique;not null;comment:name" json:"name"`
	Platform       string          `gorm:"column:platform;type:varchar(256);not null;comment:appliance platform" json:"platform"`
	Status         string          `gorm:"column:status;type:varchar(256);default:'active';comment:operational status" json:"status"`
	DeviceID       *uint           `gorm:"column:device_id;comment:external device id" json:"device_id"`
	SiteID         *uint           `gorm:"column:site_id;comment:external site id" json:"site_id"`
	TenantID       *uint           `gorm:"column:tenant_id;comment:external tenant id" json:"tenant_id"`
	ManagementIPID *uint           `gorm:"column:management_ip_id;comment:external management ip id" json:"management_ip_id"`
	Description    string          `gorm:"column:description;type:varchar(1024);comment:description" json:"description"`
	Pools          []Pool          `json:"pools,omitempty"`
	VirtualServers []VirtualServer `json:"virtual_servers,omitempty"`
}

// Label returns the display label used in list views and search results.
func (lb LoadBalancer) Label() string {
	return lb.Name
}
