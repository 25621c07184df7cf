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

import (
	"fmt"

	"github.com/djohnnes/netbox-loadbalancer/choices"
)

// VirtualServer is the client-facing listener (VIP) of a load balancer.
// It belongs to exactly one load balancer and may reference a pool for its
// backend; the pool reference is weak and cleared when the pool goes away.
// The (load balancer, name, port, protocol) tuple is unique.
type VirtualServer struct {
	BaseModel
	Name           string       `gorm:"column:name;type:varchar(256);index:uk_virtual_server,unique;not null;comment:name" json:"name"`
	LoadBalancerID uint         `gorm:"column:load_balancer_id;index:uk_virtual_server,unique;not null;comment:load balancer id" json:"load_balancer_id"`
	LoadBalancer   LoadBalancer `json:"-"`
	IPAddressID    *uint        `gorm:"column:ip_address_id;comment:external vip address id" json:"ip_address_id"`
	Port           int32        `gorm:"column:port;index:uk_virtual_server,unique;not null;comment:listening port" json:"port"`
	Protocol       string       `gorm:"column:protocol;type:varchar(256);index:uk_virtual_server,unique;default:'http';comment:listener protocol" json:"protocol"`
	Status         string       `gorm:"column:status;type:varchar(256);default:'active';comment:operational status" json:"status"`
	PoolID         *uint        `gorm:"column:pool_id;comment:backend pool id" json:"pool_id"`
	TenantID       *uint        `gorm:"column:tenant_id;comment:external tenant id" json:"tenant_id"`
	Description    string       `gorm:"column:description;type:varchar(1024);comment:description" json:"description"`
}

// Label renders "<name> (<PROTOCOL>/<port>)", e.g. "VS-02 (HTTPS/443)".
func (vs VirtualServer) Label() string {
	return fmt.Sprintf("%s (%s/%d)", vs.Name, choices.VirtualServerProtocol.Label(vs.Protocol), vs.Port)
}
