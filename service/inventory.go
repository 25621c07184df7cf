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

package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/djohnnes/netbox-loadbalancer/cache"
	"github.com/djohnnes/netbox-loadbalancer/models"
	"github.com/djohnnes/netbox-loadbalancer/types"
)

// DetachInventoryObject clears every weak reference to an inventory object
// removed by the external system. References are nullified, owning records
// are never deleted. All columns clear in one transaction.
func (s *service) DetachInventoryObject(ctx context.Context, kind string, id uint) error {
	var (
		loadBalancerIDs  []uint
		virtualServerIDs []uint
		memberIDs        []uint
		parentPoolIDs    []uint
		parentLBIDs      []uint
	)
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		switch kind {
		case types.InventoryKindDevice:
			if err := clearReference(tx, &models.LoadBalancer{}, "device_id", id, &loadBalancerIDs); err != nil {
				return err
			}

			if err := clearReference(tx, &models.PoolMember{}, "device_id", id, &memberIDs); err != nil {
				return err
			}
		case types.InventoryKindSite:
			if err := clearReference(tx, &models.LoadBalancer{}, "site_id", id, &loadBalancerIDs); err != nil {
				return err
			}
		case types.InventoryKindTenant:
			if err := clearReference(tx, &models.LoadBalancer{}, "tenant_id", id, &loadBalancerIDs); err != nil {
				return err
			}

			if err := clearReference(tx, &models.VirtualServer{}, "tenant_id", id, &virtualServerIDs); err != nil {
				return err
			}
		case types.InventoryKindIPAddress:
			if err := clearReference(tx, &models.LoadBalancer{}, "management_ip_id", id, &loadBalancerIDs); err != nil {
				return err
			}

			if err := clearReference(tx, &models.VirtualServer{}, "ip_address_id", id, &virtualServerIDs); err != nil {
				return err
			}

			if err := clearReference(tx, &models.PoolMember{}, "ip_address_id", id, &memberIDs); err != nil {
				return err
			}
		default:
			return models.NewValidationError("kind", "%q is not a valid inventory kind", kind)
		}

		// Cached parents carry the touched rows preloaded
		if len(memberIDs) > 0 {
			if err := tx.Model(&models.PoolMember{}).Where("id IN ?", memberIDs).Distinct().Pluck("pool_id", &parentPoolIDs).Error; err != nil {
				return err
			}
		}
		if len(virtualServerIDs) > 0 {
			if err := tx.Model(&models.VirtualServer{}).Where("id IN ?", virtualServerIDs).Distinct().Pluck("load_balancer_id", &parentLBIDs).Error; err != nil {
				return err
			}
		}

		return nil
	}); err != nil {
		return err
	}

	s.cacheDeleteAll(ctx, cache.LoadBalancerNamespace, loadBalancerIDs)
	s.cacheDeleteAll(ctx, cache.VirtualServerNamespace, virtualServerIDs)
	s.cacheDeleteAll(ctx, cache.PoolMemberNamespace, memberIDs)
	s.cacheDeleteAll(ctx, cache.PoolNamespace, parentPoolIDs)
	s.cacheDeleteAll(ctx, cache.LoadBalancerNamespace, parentLBIDs)
	return nil
}

// clearReference nullifies one weak reference column and records which rows
// were touched so their cache entries can be evicted.
func clearReference(tx *gorm.DB, model any, column string, id uint, affected *[]uint) error {
	if err := tx.Model(model).Where(column+" = ?", id).Pluck("id", affected).Error; err != nil {
		return err
	}

	if len(*affected) == 0 {
		return nil
	}

	return tx.Model(model).Where(column+" = ?", id).Update(column, nil).Error
}
