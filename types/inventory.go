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

// Inventory object kinds owned by the external system. When such an object
// is removed there, every weak reference to it here is cleared.
const (
	InventoryKindDevice    = "device"
	InventoryKindSite      = "site"
	InventoryKindTenant    = "tenant"
	InventoryKindIPAddress = "ip-address"
)

type DetachInventoryObjectParams struct {
	Kind string `uri:"kind" binding:"required,oneof=device site tenant ip-address"`
	ID   uint   `uri:"id" binding:"required"`
}
