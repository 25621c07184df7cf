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
	"io"

	"github.com/gocarina/gocsv"
	"gorm.io/gorm"

	"github.com/djohnnes/netbox-loadbalancer/cache"
	"github.com/djohnnes/netbox-loadbalancer/choices"
	"github.com/djohnnes/netbox-loadbalancer/models"
	"github.com/djohnnes/netbox-loadbalancer/types"
)

func (s *service) CreateLoadBalancer(ctx context.Context, json types.CreateLoadBalancerRequest) (*models.LoadBalancer, error) {
	loadBalancer := models.LoadBalancer{
		Name:           json.Name,
		Platform:       json.Platform,
		Status:         json.Status,
		DeviceID:       json.DeviceID,
		SiteID:         json.SiteID,
		TenantID:       json.TenantID,
		ManagementIPID: json.ManagementIPID,
		Description:    json.Description,
	}
	if loadBalancer.Status == "" {
		loadBalancer.Status = choices.LoadBalancerStatus.Default
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := validateLoadBalancer(tx, &loadBalancer); err != nil {
			return err
		}

		return tx.Create(&loadBalancer).Error
	}); err != nil {
		return nil, err
	}

	return &loadBalancer, nil
}

// DestroyLoadBalancer removes the load balancer together with its pools,
// the members of those pools and its virtual servers, in one transaction.
// Virtual servers of other load balancers referencing a destroyed pool get
// their pool reference cleared.
func (s *service) DestroyLoadBalancer(ctx context.Context, id uint) error {
	var (
		poolIDs          []uint
		memberIDs        []uint
		virtualServerIDs []uint
		refClearedIDs    []uint
		refClearedLBIDs  []uint
	)
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		loadBalancer := models.LoadBalancer{}
		if err := tx.First(&loadBalancer, id).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Pool{}).Where("load_balancer_id = ?", id).Pluck("id", &poolIDs).Error; err != nil {
			return err
		}

		if len(poolIDs) > 0 {
			if err := tx.Model(&models.PoolMember{}).Where("pool_id IN ?", poolIDs).Pluck("id", &memberIDs).Error; err != nil {
				return err
			}

			if err := tx.Unscoped().Where("pool_id IN ?", poolIDs).Delete(&models.PoolMember{}).Error; err != nil {
				return err
			}

			if err := tx.Model(&models.VirtualServer{}).Where("pool_id IN ?", poolIDs).Pluck("id", &refClearedIDs).Error; err != nil {
				return err
			}

			if err := tx.Model(&models.VirtualServer{}).Where("pool_id IN ?", poolIDs).Distinct().Pluck("load_balancer_id", &refClearedLBIDs).Error; err != nil {
				return err
			}

			if err := tx.Model(&models.VirtualServer{}).Where("pool_id IN ?", poolIDs).Update("pool_id", nil).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&models.VirtualServer{}).Where("load_balancer_id = ?", id).Pluck("id", &virtualServerIDs).Error; err != nil {
			return err
		}

		if err := tx.Unscoped().Where("load_balancer_id = ?", id).Delete(&models.VirtualServer{}).Error; err != nil {
			return err
		}

		if err := tx.Unscoped().Where("load_balancer_id = ?", id).Delete(&models.Pool{}).Error; err != nil {
			return err
		}

		return tx.Unscoped().Delete(&models.LoadBalancer{}, id).Error
	}); err != nil {
		return err
	}

	s.cacheDelete(ctx, cache.LoadBalancerNamespace, id)
	s.cacheDeleteAll(ctx, cache.PoolNamespace, poolIDs)
	s.cacheDeleteAll(ctx, cache.PoolMemberNamespace, memberIDs)
	s.cacheDeleteAll(ctx, cache.VirtualServerNamespace, virtualServerIDs)
	s.cacheDeleteAll(ctx, cache.VirtualServerNamespace, refClearedIDs)
	s.cacheDeleteAll(ctx, cache.LoadBalancerNamespace, refClearedLBIDs)
	return nil
}

func (s *service) UpdateLoadBalancer(ctx context.Context, id uint, json types.UpdateLoadBalancerRequest) (*models.LoadBalancer, error) {
	loadBalancer := models.LoadBalancer{}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&loadBalancer, id).Error; err != nil {
			return err
		}

		if json.Name != "" {
			loadBalancer.Name = json.Name
		}
		if json.Platform != "" {
			loadBalancer.Platform = json.Platform
		}
		if json.Status != "" {
			loadBalancer.Status = json.Status
		}
		if json.Description != nil {
			loadBalancer.Description = *json.Description
		}
		loadBalancer.DeviceID = weakRef(loadBalancer.DeviceID, json.DeviceID)
		loadBalancer.SiteID = weakRef(loadBalancer.SiteID, json.SiteID)
		loadBalancer.TenantID = weakRef(loadBalancer.TenantID, json.TenantID)
		loadBalancer.ManagementIPID = weakRef(loadBalancer.ManagementIPID, json.ManagementIPID)

		if err := validateLoadBalancer(tx, &loadBalancer); err != nil {
			return err
		}

		return tx.Save(&loadBalancer).Error
	}); err != nil {
		return nil, err
	}

	s.cacheDelete(ctx, cache.LoadBalancerNamespace, id)
	return &loadBalancer, nil
}

func (s *service) GetLoadBalancer(ctx context.Context, id uint) (*models.LoadBalancer, error) {
	loadBalancer := models.LoadBalancer{}
	if s.cacheGet(ctx, cache.LoadBalancerNamespace, id, &loadBalancer) {
		return &loadBalancer, nil
	}

	if err := s.db.WithContext(ctx).Preload("Pools").Preload("VirtualServers").First(&loadBalancer, id).Error; err != nil {
		return nil, err
	}

	s.cacheSet(ctx, cache.LoadBalancerNamespace, id, &loadBalancer)
	return &loadBalancer, nil
}

func (s *service) GetLoadBalancers(ctx context.Context, q types.GetLoadBalancersQuery) ([]models.LoadBalancer, int64, error) {
	db := s.db.WithContext(ctx).Model(&models.LoadBalancer{})
	if q.Name != "" {
		db = db.Where("name = ?", q.Name)
	}
	if len(q.Platform) > 0 {
		db = db.Where("platform IN ?", q.Platform)
	}
	if len(q.Status) > 0 {
		db = db.Where("status IN ?", q.Status)
	}
	if q.DeviceID > 0 {
		db = db.Where("device_id = ?", q.DeviceID)
	}
	if q.SiteID > 0 {
		db = db.Where("site_id = ?", q.SiteID)
	}
	if q.TenantID > 0 {
		db = db.Where("tenant_id = ?", q.TenantID)
	}
	if q.Search != "" {
		db = db.Where("LOWER(name) LIKE ?", likePattern(q.Search))
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var loadBalancers []models.LoadBalancer
	if err := db.Scopes(models.Paginate(q.Page, q.PerPage)).Order("name").Find(&loadBalancers).Error; err != nil {
		return nil, 0, err
	}

	return loadBalancers, count, nil
}

// ImportLoadBalancers applies csv rows through the create validation path.
// The whole file is one transaction, a bad row discards every row.
func (s *service) ImportLoadBalancers(ctx context.Context, r io.Reader) (*types.ImportResult, error) {
	var rows []*types.LoadBalancerCSV
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, models.NewValidationError("csv", "%s", err.Error())
	}

	if err := validateCSVRows(rows); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			loadBalancer := models.LoadBalancer{
				Name:        row.Name,
				Platform:    row.Platform,
				Status:      row.Status,
				Description: row.Description,
			}
			if loadBalancer.Status == "" {
				loadBalancer.Status = choices.LoadBalancerStatus.Default
			}

			if err := validateLoadBalancer(tx, &loadBalancer); err != nil {
				return err
			}

			if err := tx.Create(&loadBalancer).Error; err != nil {
				return err
			}
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return &types.ImportResult{Created: len(rows)}, nil
}

func (s *service) ExportLoadBalancers(ctx context.Context, w io.Writer) error {
	var loadBalancers []models.LoadBalancer
	if err := s.db.WithContext(ctx).Order("name").Find(&loadBalancers).Error; err != nil {
		return err
	}

	rows := make([]*types.LoadBalancerCSV, 0, len(loadBalancers))
	for _, lb := range loadBalancers {
		rows = append(rows, &types.LoadBalancerCSV{
			Name:        lb.Name,
			Platform:    lb.Platform,
			Status:      lb.Status,
			Description: lb.Description,
		})
	}

	return gocsv.Marshal(&rows, w)
}

// validateLoadBalancer runs field checks and the global name uniqueness
// rule. The record's own id is excluded so updates do not conflict with
// themselves.
func validateLoadBalancer(tx *gorm.DB, loadBalancer *models.LoadBalancer) error {
	if err := models.ValidateName(loadBalancer.Name); err != nil {
		return err
	}

	if err := models.ValidateDescription(loadBalancer.Description); err != nil {
		return err
	}

	if err := models.ValidateChoice("platform", choices.LoadBalancerPlatform, loadBalancer.Platform); err != nil {
		return err
	}

	if err := models.ValidateChoice("status", choices.LoadBalancerStatus, loadBalancer.Status); err != nil {
		return err
	}

	return models.ValidateLoadBalancerName(tx, loadBalancer.Name, loadBalancer.ID)
}
