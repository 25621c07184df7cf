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

func (s *service) CreateVirtualServer(ctx context.Context, json types.CreateVirtualServerRequest) (*models.VirtualServer, error) {
	virtualServer := models.VirtualServer{
		Name:           json.Name,
		LoadBalancerID: json.LoadBalancerID,
		IPAddressID:    json.IPAddressID,
		Port:           json.Port,
		Protocol:       json.Protocol,
		Status:         json.Status,
		PoolID:         json.PoolID,
		TenantID:       json.TenantID,
		Description:    json.Description,
	}
	if virtualServer.Protocol == "" {
		virtualServer.Protocol = choices.VirtualServerProtocol.Default
	}
	if virtualServer.Status == "" {
		virtualServer.Status = choices.VirtualServerStatus.Default
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.LoadBalancer{}, virtualServer.LoadBalancerID).Error; err != nil {
			return err
		}

		if virtualServer.PoolID != nil {
			if err := tx.First(&models.Pool{}, *virtualServer.PoolID).Error; err != nil {
				return err
			}
		}

		if err := validateVirtualServer(tx, &virtualServer); err != nil {
			return err
		}

		return tx.Create(&virtualServer).Error
	}); err != nil {
		return nil, err
	}

	// The cached load balancer carries its virtual servers preloaded
	s.cacheDelete(ctx, cache.LoadBalancerNamespace, virtualServer.LoadBalancerID)
	return &virtualServer, nil
}

func (s *service) DestroyVirtualServer(ctx context.Context, id uint) error {
	virtualServer := models.VirtualServer{}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&virtualServer, id).Error; err != nil {
			return err
		}

		return tx.Unscoped().Delete(&models.VirtualServer{}, id).Error
	}); err != nil {
		return err
	}

	s.cacheDelete(ctx, cache.VirtualServerNamespace, id)
	s.cacheDelete(ctx, cache.LoadBalancerNamespace, virtualServer.LoadBalancerID)
	return nil
}

func (s *service) UpdateVirtualServer(ctx context.Context, id uint, json types.UpdateVirtualServerRequest) (*models.VirtualServer, error) {
	virtualServer := models.VirtualServer{}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&virtualServer, id).Error; err != nil {
			return err
		}

		if json.Name != "" {
			virtualServer.Name = json.Name
		}
		if json.Port != 0 {
			virtualServer.Port = json.Port
		}
		if json.Protocol != "" {
			virtualServer.Protocol = json.Protocol
		}
		if json.Status != "" {
			virtualServer.Status = json.Status
		}
		if json.Description != nil {
			virtualServer.Description = *json.Description
		}
		virtualServer.IPAddressID = weakRef(virtualServer.IPAddressID, json.IPAddressID)
		virtualServer.TenantID = weakRef(virtualServer.TenantID, json.TenantID)
		virtualServer.PoolID = weakRef(virtualServer.PoolID, json.PoolID)

		if json.PoolID != nil && *json.PoolID != 0 {
			if err := tx.First(&models.Pool{}, *json.PoolID).Error; err != nil {
				return err
			}
		}

		if err := validateVirtualServer(tx, &virtualServer); err != nil {
			return err
		}

		return tx.Save(&virtualServer).Error
	}); err != nil {
		return nil, err
	}

	s.cacheDelete(ctx, cache.VirtualServerNamespace, id)
	s.cacheDelete(ctx, cache.LoadBalancerNamespace, virtualServer.LoadBalancerID)
	return &virtualServer, nil
}

func (s *service) GetVirtualServer(ctx context.Context, id uint) (*models.VirtualServer, error) {
	virtualServer := models.VirtualServer{}
	if s.cacheGet(ctx, cache.VirtualServerNamespace, id, &virtualServer) {
		return &virtualServer, nil
	}

	if err := s.db.WithContext(ctx).First(&virtualServer, id).Error; err != nil {
		return nil, err
	}

	s.cacheSet(ctx, cache.VirtualServerNamespace, id, &virtualServer)
	return &virtualServer, nil
}

func (s *service) GetVirtualServers(ctx context.Context, q types.GetVirtualServersQuery) ([]models.VirtualServer, int64, error) {
	db := s.db.WithContext(ctx).Model(&models.VirtualServer{})
	if q.Name != "" {
		db = db.Where("name = ?", q.Name)
	}
	if q.LoadBalancerID > 0 {
		db = db.Where("load_balancer_id = ?", q.LoadBalancerID)
	}
	if len(q.Status) > 0 {
		db = db.Where("status IN ?", q.Status)
	}
	if len(q.Protocol) > 0 {
		db = db.Where("protocol IN ?", q.Protocol)
	}
	if q.Port > 0 {
		db = db.Where("port = ?", q.Port)
	}
	if q.PoolID > 0 {
		db = db.Where("pool_id = ?", q.PoolID)
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

	var virtualServers []models.VirtualServer
	if err := db.Scopes(models.Paginate(q.Page, q.PerPage)).Order("load_balancer_id, name").Find(&virtualServers).Error; err != nil {
		return nil, 0, err
	}

	return virtualServers, count, nil
}

// ImportVirtualServers resolves the loadbalancer column by name and the
// optional pool column by name within that load balancer.
func (s *service) ImportVirtualServers(ctx context.Context, r io.Reader) (*types.ImportResult, error) {
	var rows []*types.VirtualServerCSV
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

			virtualServer := models.VirtualServer{
				Name:           row.Name,
				LoadBalancerID: loadBalancer.ID,
				Port:           row.Port,
				Protocol:       row.Protocol,
				Status:         row.Status,
				Description:    row.Description,
			}
			if virtualServer.Protocol == "" {
				virtualServer.Protocol = choices.VirtualServerProtocol.Default
			}
			if virtualServer.Status == "" {
				virtualServer.Status = choices.VirtualServerStatus.Default
			}

			if row.Pool != "" {
				pool, err := findPoolByName(tx, loadBalancer.ID, row.Pool)
				if err != nil {
					return err
				}
				virtualServer.PoolID = &pool.ID
			}

			if err := validateVirtualServer(tx, &virtualServer); err != nil {
				return err
			}

			if err := tx.Create(&virtualServer).Error; err != nil {
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

func (s *service) ExportVirtualServers(ctx context.Context, w io.Writer) error {
	var virtualServers []models.VirtualServer
	if err := s.db.WithContext(ctx).Preload("LoadBalancer").Order("load_balancer_id, name").Find(&virtualServers).Error; err != nil {
		return err
	}

	rows := make([]*types.VirtualServerCSV, 0, len(virtualServers))
	for _, vs := range virtualServers {
		row := &types.VirtualServerCSV{
			LoadBalancer: vs.LoadBalancer.Name,
			Name:         vs.Name,
			Port:         vs.Port,
			Protocol:     vs.Protocol,
			Status:       vs.Status,
			Description:  vs.Description,
		}

		if vs.PoolID != nil {
			pool := models.Pool{}
			if err := s.db.WithContext(ctx).First(&pool, *vs.PoolID).Error; err == nil {
				row.Pool = pool.Name
			}
		}

		rows = append(rows, row)
	}

	return gocsv.Marshal(&rows, w)
}

func validateVirtualServer(tx *gorm.DB, virtualServer *models.VirtualServer) error {
	if err := models.ValidateName(virtualServer.Name); err != nil {
		return err
	}

	if err := models.ValidateDescription(virtualServer.Description); err != nil {
		return err
	}

	if err := models.ValidatePort("port", virtualServer.Port); err != nil {
		return err
	}

	if err := models.ValidateChoice("protocol", choices.VirtualServerProtocol, virtualServer.Protocol); err != nil {
		return err
	}

	if err := models.ValidateChoice("status", choices.VirtualServerStatus, virtualServer.Status); err != nil {
		return err
	}

	return models.ValidateVirtualServerKey(tx, virtualServer.LoadBalancerID, virtualServer.Name, virtualServer.Port, virtualServer.Protocol, virtualServer.ID)
}

// findPoolByName resolves a csv pool column within one load balancer.
func findPoolByName(tx *gorm.DB, loadBalancerID uint, name string) (*models.Pool, error) {
	pool := models.Pool{}
	if err := tx.Where("load_balancer_id = ? AND name = ?", loadBalancerID, name).First(&pool).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.NewValidationError("pool", "unknown pool %q", name)
		}

		return nil, err
	}

	return &pool, nil
}
