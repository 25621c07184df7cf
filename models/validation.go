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

	"gorm.io/gorm"

	"github.com/djohnnes/netbox-loadbalancer/choices"
)

// ValidationError reports an invariant violation detected before a write.
// Nothing is persisted when one is returned.
type ValidationError struct {
	Field   string
	Message string
	// Duplicate marks conflicts with an existing record, so the transport
	// layer can answer 409 instead of 400.
	Duplicate bool
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError returns a field-level validation failure.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// NewDuplicateError returns a uniqueness violation.
func NewDuplicateError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...), Duplicate: true}
}

// ValidateName checks the shared name constraints: non-empty, bounded length.
func ValidateName(name string) error {
	if name == "" {
		return NewValidationError("name", "must not be empty")
	}

	if len(name) > MaxNameLength {
		return NewValidationError("name", "must not exceed %d characters", MaxNameLength)
	}

	return nil
}

// ValidateDescription checks the shared description length bound.
func ValidateDescription(description string) error {
	if len(description) > MaxDescriptionLength {
		return NewValidationError("description", "must not exceed %d characters", MaxDescriptionLength)
	}

	return nil
}

// ValidateChoice checks membership of value in the given option set.
func ValidateChoice(field string, set *choices.Set, value string) error {
	if !set.Contains(value) {
		return NewValidationError(field, "%q is not a valid choice", value)
	}

	return nil
}

// ValidatePort checks the inclusive [1,65535] port bound.
func ValidatePort(field string, port int32) error {
	if port < MinPort || port > MaxPort {
		return NewValidationError(field, "must be between %d and %d", MinPort, MaxPort)
	}

	return nil
}

// ValidateWeight checks the inclusive [1,65535] weight bound.
func ValidateWeight(weight int32) error {
	if weight < MinWeight || weight > MaxWeight {
		return NewValidationError("weight", "must be between %d and %d", MinWeight, MaxWeight)
	}

	return nil
}

// ValidatePriority checks that priority is not negative. There is no upper
// bound.
func ValidatePriority(priority int32) error {
	if priority < 0 {
		return NewValidationError("priority", "must not be negative")
	}

	return nil
}

// ValidateLoadBalancerName enforces global name uniqueness across load
// balancers. excludeID skips the record being updated.
func ValidateLoadBalancerName(tx *gorm.DB, name string, excludeID uint) error {
	var count int64
	if err := tx.Model(&LoadBalancer{}).Where("name = ? AND id != ?", name, excludeID).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return NewDuplicateError("load balancer with name %q already exists", name)
	}

	return nil
}

// ValidatePoolKey enforces (load balancer, name) uniqueness across pools.
func ValidatePoolKey(tx *gorm.DB, loadBalancerID uint, name string, excludeID uint) error {
	var count int64
	if err := tx.Model(&Pool{}).Where(
		"load_balancer_id = ? AND name = ? AND id != ?", loadBalancerID, name, excludeID,
	).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return NewDuplicateError("pool %q already exists on this load balancer", name)
	}

	return nil
}

// ValidateVirtualServerKey enforces (load balancer, name, port, protocol)
// uniqueness across virtual servers.
func ValidateVirtualServerKey(tx *gorm.DB, loadBalancerID uint, name string, port int32, protocol string, excludeID uint) error {
	var count int64
	if err := tx.Model(&VirtualServer{}).Where(
		"load_balancer_id = ? AND name = ? AND port = ? AND protocol = ? AND id != ?",
		loadBalancerID, name, port, protocol, excludeID,
	).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return NewDuplicateError("virtual server %q with %s/%d already exists on this load balancer", name, protocol, port)
	}

	return nil
}

// ValidatePoolMemberEndpoint enforces the null-exempt uniqueness of
// (pool, ip address, port) across members. A composite unique index treats
// two NULL ip addresses as distinct rows, which would let the naive
// constraint pass members it should not and block none of the ones the data
// model wants to allow. The rule here is: members without an ip address are
// exempt, any number of them may share a port; members with an ip address
// must not collide with another member of the same pool on (ip, port).
func ValidatePoolMemberEndpoint(tx *gorm.DB, poolID uint, ipAddressID *uint, port int32, excludeID uint) error {
	if ipAddressID == nil {
		return nil
	}

	var count int64
	if err := tx.Model(&PoolMember{}).Where(
		"pool_id = ? AND ip_address_id = ? AND port = ? AND id != ?",
		poolID, *ipAddressID, port, excludeID,
	).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return NewDuplicateError("pool member with this pool, IP address and port already exists")
	}

	return nil
}
