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

import "fmt"

// PoolMember is a single backend destination inside a pool. Weight and
// priority are recorded as configuration metadata only. Members with the
// same non-nil ip address and port may not coexist in one pool; that rule
// lives in ValidatePoolMemberEndpoint because a composite unique index
// cannot express the null exemption.
type PoolMember struct {
	BaseModel
	Name        string `gorm:"column:name;type:varchar(256);not null;comment:name" json:"name"`
	PoolID      uint   `gorm:"column:pool_id;index:idx_pool_member_pool;not null;comment:pool id" json:"pool_id"`
	Pool        Pool   `json:"-"`
	IPAddressID *uint  `gorm:"column:ip_address_id;comment:external ip address id" json:"ip_address_id"`
	DeviceID    *uint  `gorm:"column:device_id;comment:external device id" json:"device_id"`
	Port        int32  `gorm:"column:port;not null;comment:backend port" json:"port"`
	Weight      int32  `gorm:"column:weight;not null;default:1;comment:relative traffic share" json:"weight"`
	Priority    int32  `gorm:"column:priority;not null;default:0;comment:standby priority" json:"priority"`
	Status      string `gorm:"column:status;type:varchar(256);default:'active';comment:operational status" json:"status"`
	Description string `gorm:"column:description;type:varchar(1024);comment:description" json:"description"`
}

// Label renders "<name>:<port>", e.g. "Member-02:9090".
func (pm PoolMember) Label() string {
	return fmt.Sprintf("%s:%d", pm.Name, pm.Port)
}
