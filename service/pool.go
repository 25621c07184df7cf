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

func (s *service) CreatePool(ctx context.Context, json types.CreatePoolRequest) (*models.Pool, error) {
	pool := models.Pool{
		Name:           json.Name,
		LoadBalancerID: json.LoadBalancerID,
		Method:         json.Method,
		Protocol:       json.Protocol,
		Description:    json.Description,
	}
	if pool.Method == "" {
		pool.Method = choices.PoolMethod.Default
	}
	if pool.Protocol == "" {
		pool.Protocol = choices.PoolProtocol.Default
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.LoadBalancer{}, pool.LoadBalancerID).Error; err != nil {
			return err
		}

		if err := validatePool(tx, &pool); err != nil {
			return err
		}

		return tx.Create(&pool).Error
	}); err != nil {
		return nil, err
	}

	// The cached load balancer carries its pools preloaded
	s.cacheDelete(ctx, cache.LoadBalancerNamespace, pool.LoadBalancerID)
	return &pool, nil
}

// DestroyPool removes the pool and its members in one transaction. Virtual
// servers referencing the pool keep existing, their pool reference is
// cleared.
func (s *service) DestroyPool(ctx context.Context, id uint) error {
	var (
		pool             = models.Pool{}
		memberIDs        []uint
		virtualServerIDs []uint
	)
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&pool, id).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.PoolMember{}).Where("pool_id = ?", id).Pluck("id", &memberIDs).Error; err != nil {
			return err
		}

		if err := tx.Unscoped().Where("pool_id = ?", id).Delete(&models.PoolMember{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.VirtualServer{}).Where("pool_id = ?", id).Pluck("id", &virtualServerIDs).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.VirtualServer{}).Where("pool_id = ?", id).Update("pool_id", nil).Error; err != nil {
			return err
		}

		return tx.Unscoped().Delete(&models.Pool{}, id).Error
	}); err != nil {
		return err
	}

	s.cacheDelete(ctx, cache.PoolNamespace, id)
	s.cacheDelete(ctx, cache.LoadBalancerNamespace, pool.LoadBalancerID)
	s.cacheDeleteAll(ctx, cache.PoolMemberNamespace, memberIDs)
	s.cacheDeleteAll(ctx, cache.VirtualServerNamespace, virtualServerIDs)
	return nil
}

func (s *service) UpdatePool(ctx context.Context, id uint, json types.UpdatePoolRequest) (*models.Pool, error) {
	pool := models.Pool{}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&pool, id).Error; err != nil {
			return err
		}

		if json.Name != "" {
			pool.Name = json.Name
		}
		if json.Method != "" {
			pool.Method = json.Method
		}
		if json.Protocol != "" {
			pool.Protocol = json.Protocol
		}
		if json.Description != nil {
			pool.Description = *json.Description
		}

		if err := validatePool(tx, &pool); err != nil {
			return err
		}

		return tx.Save(&pool).Error
	}); err != nil {
		return nil, err
	}

	s.cacheDelete(ctx, cache.PoolNamespace, id)
	s.cacheDelete(ctx, cache.LoadBalancerNamespace, pool.LoadBalancerID)
	return &pool, nil
}

func (s *service) GetPool(ctx context.Context, id uint) (*models.Pool, error) {
	pool := models.Pool{}
	if s.cacheGet(ctx, cache.PoolNamespace, id, &pool) {
		return &pool, nil
	}

	if err := s.db.WithContext(ctx).Preload("Members").First(&pool, id).Error; err != nil {
		return nil, err
	}

	s.cacheSet(ctx, cache.PoolNamespace, id, &pool)
	return &pool, nil
}

func (s *service) GetPools(ctx context.Context, q types.GetPoolsQuery) ([]models.Pool, int64, error) {
	db := s.db.WithContext(ctx).Model(&models.Pool{})
	if q.Name != "" {
		db = db.Where("name = ?", q.Name)
	}
	if q.LoadBalancerID > 0 {
		db = db.Where("load_balancer_id = ?", q.LoadBalancerID)
	}
	if len(q.Method) > 0 {
		db = db.Where("method IN ?", q.Method)
	}
	if len(q.Protocol) > 0 {
		db = db.Where("protocol IN ?", q.Protocol)
	}
	if q.Search != "" {
		db = db.Where("LOWER(name) LIKE ?", likePattern(q.Search))
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var pools []models.Pool
	if err := db.Scopes(models.Paginate(q.Page, q.PerPage)).Order("load_balancer_id, name").Find(&pools).Error; err != nil {
		return nil, 0, err
	}

	return pools, count, nil
}

// ImportPools resolves the loadbalancer column by name and applies every
// row through the create validation path, all in one transaction.
func (s *service) ImportPools(ctx context.Context, r io.Reader) (*types.ImportResult, error) {
	var rows []*types.PoolCSV
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, models.NewValidationError("csv", "%s", err.Error())
	}

	if err := validateCSVRows(rows); err != nil {
		return nil, err
	}

	loadBalancerIDs := map[uint]struct{}{}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			loadBalancer, err := findLoadBalancerByName(tx, row.LoadBalancer)
			if err != nil {
				return err
			}
			loadBalancerIDs[loadBalancer.ID] = struct{}{}

			pool := models.Pool{
				Name:           row.Name,
				LoadBalancerID: loadBalancer.ID,
				Method:         row.Method,
				Protocol:       row.Protocol,
				Description:    row.Description,
			}
			if pool.Method == "" {
				pool.Method = choices.PoolMethod.Default
			}
			if pool.Protocol == "" {
				pool.Protocol = choices.PoolProtocol.Default
			}

			if err := validatePool(tx, &pool); err != nil {
				return err
			}

			if err := tx.Create(&pool).Error; err != nil {
				return err
			}
		}

		return nil
	}); err != nil {
		return nil, err
	}

	for id := range loadBalancerIDs {
		s.cacheDelete(ctx, cache.LoadBalancerNamespace, id)
	}
	return &types.ImportResult{Created: len(rows)}, nil
}

func (s *service) ExportPools(ctx context.Context, w io.Writer) error {
	var pools []models.Pool
	if err := s.db.WithContext(ctx).Preload("LoadBalancer").Order("load_balancer_id, name").Find(&pools).Error; err != nil {
		return err
	}

	rows := make([]*types.PoolCSV, 0, len(pools))
	for _, p := range pools {
		rows = append(rows, &types.PoolCSV{
			LoadBalancer: p.LoadBalancer.Name,
			Name:         p.Name,
			Method:       p.Method,
			Protocol:     p.Protocol,
			Description:  p.Description,
		})
	}

	return gocsv.Marshal(&rows, w)
}

func validatePool(tx *gorm.DB, pool *models.Pool) error {
	if err := models.ValidateName(pool.Name); err != nil {
		return err
	}

	if err := models.ValidateDescription(pool.Description); err != nil {
		return err
	}

	if err := models.ValidateChoice("method", choices.PoolMethod, pool.Method); err != nil {
		return err
	}

	if err := models.ValidateChoice("protocol", choices.PoolProtocol, pool.Protocol); err != nil {
		return err
	}

	return models.ValidatePoolKey(tx, pool.LoadBalancerID, pool.Name, pool.ID)
}

// findLoadBalancerByName resolves a csv relationship column. A missing name
// is a row error, not a storage error.
func findLoadBalancerByName(tx *gorm.DB, name string) (*models.LoadBalancer, error) {
	if name == "" {
		return nil, models.NewValidationError("loadbalancer", "must not be empty")
	}

	loadBalancer := models.LoadBalancer{}
	if err := tx.Where("name = ?", name).First(&loadBalancer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.NewValidationError("loadbalancer", "unknown load balancer %q", name)
		}

		return nil, err
	}

	return &loadBalancer, nil
}
