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

func (s *service) CreatePoolMember(ctx context.Context, json types.CreatePoolMemberRequest) (*models.PoolMember, error) {
	poolMember := models.PoolMember{
		Name:        json.Name,
		PoolID:      json.PoolID,
		IPAddressID: json.IPAddressID,
		DeviceID:    json.DeviceID,
		Port:        json.Port,
		Weight:      1,
		Priority:    0,
		Status:      json.Status,
		Description: json.Description,
	}
	if json.Weight != nil {
		poolMember.Weight = *json.Weight
	}
	if json.Priority != nil {
		poolMember.Priority = *json.Priority
	}
	if poolMember.Status == "" {
		poolMember.Status = choices.PoolMemberStatus.Default
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Pool{}, poolMember.PoolID).Error; err != nil {
			return err
		}

		if err := validatePoolMember(tx, &poolMember); err != nil {
			return err
		}

		return tx.Create(&poolMember).Error
	}); err != nil {
		return nil, err
	}

	// The cached pool carries its members preloaded
	s.cacheDelete(ctx, cache.PoolNamespace, poolMember.PoolID)
	return &poolMember, nil
}

func (s *service) DestroyPoolMember(ctx context.Context, id uint) error {
	poolMember := models.PoolMember{}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&poolMember, id).Error; err != nil {
			return err
		}

		return tx.Unscoped().Delete(&models.PoolMember{}, id).Error
	}); err != nil {
		return err
	}

	s.cacheDelete(ctx, cache.PoolMemberNamespace, id)
	s.cacheDelete(ctx, cache.PoolNamespace, poolMember.PoolID)
	return nil
}

func (s *service) UpdatePoolMember(ctx context.Context, id uint, json types.UpdatePoolMemberRequest) (*models.PoolMember, error) {
	poolMember := models.PoolMember{}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&poolMember, id).Error; err != nil {
			return err
		}

		if json.Name != "" {
			poolMember.Name = json.Name
		}
		if json.Port != 0 {
			poolMember.Port = json.Port
		}
		if json.Weight != nil {
			poolMember.Weight = *json.Weight
		}
		if json.Priority != nil {
			poolMember.Priority = *json.Priority
		}
		if json.Status != "" {
			poolMember.Status = json.Status
		}
		if json.Description != nil {
			poolMember.Description = *json.Description
		}
		poolMember.IPAddressID = weakRef(poolMember.IPAddressID, json.IPAddressID)
		poolMember.DeviceID = weakRef(poolMember.DeviceID, json.DeviceID)

		if err := validatePoolMember(tx, &poolMember); err != nil {
			return err
		}

		return tx.Save(&poolMember).Error
	}); err != nil {
		return nil, err
	}

	s.cacheDelete(ctx, cache.PoolMemberNamespace, id)
	s.cacheDelete(ctx, cache.PoolNamespace, poolMember.PoolID)
	return &poolMember, nil
}

func (s *service) GetPoolMember(ctx context.Context, id uint) (*models.PoolMember, error) {
	poolMember := models.PoolMember{}
	if s.cacheGet(ctx, cache.PoolMemberNamespace, id, &poolMember) {
		return &poolMember, nil
	}

	if err := s.db.WithContext(ctx).First(&poolMember, id).Error; err != nil {
		return nil, err
	}

	s.cacheSet(ctx, cache.PoolMemberNamespace, id, &poolMember)
	return &poolMember, nil
}

func (s *service) GetPoolMembers(ctx context.Context, q types.GetPoolMembersQuery) ([]models.PoolMember, int64, error) {
	db := s.db.WithContext(ctx).Model(&models.PoolMember{})
	if q.Name != "" {
		db = db.Where("name = ?", q.Name)
	}
	if q.PoolID > 0 {
		db = db.Where("pool_id = ?", q.PoolID)
	}
	if q.IPAddressID > 0 {
		db = db.Where("ip_address_id = ?", q.IPAddressID)
	}
	if q.DeviceID > 0 {
		db = db.Where("device_id = ?", q.DeviceID)
	}
	if q.Port > 0 {
		db = db.Where("port = ?", q.Port)
	}
	if q.Weight > 0 {
		db = db.Where("weight = ?", q.Weight)
	}
	if q.Priority != nil {
		db = db.Where("priority = ?", *q.Priority)
	}
	if len(q.Status) > 0 {
		db = db.Where("status IN ?", q.Status)
	}
	if q.Search != "" {
		db = db.Where("LOWER(name) LIKE ?", likePattern(q.Search))
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var poolMembers []models.PoolMember
	if err := db.Scopes(models.Paginate(q.Page, q.PerPage)).Order("pool_id, name").Find(&poolMembers).Error; err != nil {
		return nil, 0, err
	}

	return poolMembers, count, nil
}

// ImportPoolMembers resolves the loadbalancer and pool columns by name.
// Pool names are only unique per load balancer, so rows carry both.
func (s *service) ImportPoolMembers(ctx context.Context, r io.Reader) (*types.ImportResult, error) {
	var rows []*types.PoolMemberCSV
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, models.NewValidationError("csv", "%s", err.Error())
	}

	if err := validateCSVRows(rows); err != nil {
		return nil, err
	}

	poolIDs := map[uint]struct{}{}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			loadBalancer, err := findLoadBalancerByName(tx, row.LoadBalancer)
			if err != nil {
				return err
			}

			pool, err := findPoolByName(tx, loadBalancer.ID, row.Pool)
			if err != nil {
				return err
			}
			poolIDs[pool.ID] = struct{}{}

			poolMember := models.PoolMember{
				Name:        row.Name,
				PoolID:      pool.ID,
				Port:        row.Port,
				Weight:      row.Weight,
				Priority:    row.Priority,
				Status:      row.Status,
				Description: row.Description,
			}
			if poolMember.Weight == 0 {
				poolMember.Weight = 1
			}
			if poolMember.Status == "" {
				poolMember.Status = choices.PoolMemberStatus.Default
			}

			if err := validatePoolMember(tx, &poolMember); err != nil {
				return err
			}

			if err := tx.Create(&poolMember).Error; err != nil {
				return err
			}
		}

		return nil
	}); err != nil {
		return nil, err
	}

	for id := range poolIDs {
		s.cacheDelete(ctx, cache.PoolNamespace, id)
	}
	return &types.ImportResult{Created: len(rows)}, nil
}

func (s *service) ExportPoolMembers(ctx context.Context, w io.Writer) error {
	var poolMembers []models.PoolMember
	if err := s.db.WithContext(ctx).Preload("Pool").Preload("Pool.LoadBalancer").Order("pool_id, name").Find(&poolMembers).Error; err != nil {
		return err
	}

	rows := make([]*types.PoolMemberCSV, 0, len(poolMembers))
	for _, pm := range poolMembers {
		rows = append(rows, &types.PoolMemberCSV{
			LoadBalancer: pm.Pool.LoadBalancer.Name,
			Pool:         pm.Pool.Name,
			Name:         pm.Name,
			Port:         pm.Port,
			Weight:       pm.Weight,
			Priority:     pm.Priority,
			Status:       pm.Status,
			Description:  pm.Description,
		})
	}

	return gocsv.Marshal(&rows, w)
}

// validatePoolMember runs field checks and the null-exempt endpoint rule.
func validatePoolMember(tx *gorm.DB, poolMember *models.PoolMember) error {
	if err := models.ValidateName(poolMember.Name); err != nil {
		return err
	}

	if err := models.ValidateDescription(poolMember.Description); err != nil {
		return err
	}

	if err := models.ValidatePort("port", poolMember.Port); err != nil {
		return err
	}

	if err := models.ValidateWeight(poolMember.Weight); err != nil {
		return err
	}

	if err := models.ValidatePriority(poolMember.Priority); err != nil {
		return err
	}

	if err := models.ValidateChoice("status", choices.PoolMemberStatus, poolMember.Status); err != nil {
		return err
	}

	return models.ValidatePoolMemberEndpoint(tx, poolMember.PoolID, poolMember.IPAddressID, poolMember.Port, poolMember.ID)
}
