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

	"github.com/djohnnes/netbox-loadbalancer/models"
	"github.com/djohnnes/netbox-loadbalancer/types"
)

// Search matches the query against name and description of every
// collection. Name matches rank before description matches, mirroring the
// 100/500 field weights of the original search index.
func (s *service) Search(ctx context.Context, q types.SearchQuery) (*types.SearchResponse, error) {
	pattern := likePattern(q.Q)
	resp := &types.SearchResponse{Query: q.Q, Hits: []types.SearchHit{}}

	var loadBalancers []models.LoadBalancer
	if err := s.searchTable(ctx, pattern, &models.LoadBalancer{}, &loadBalancers); err != nil {
		return nil, err
	}
	for _, lb := range loadBalancers {
		resp.Hits = append(resp.Hits, types.SearchHit{
			Type:        types.SearchTypeLoadBalancer,
			ID:          lb.ID,
			Label:       lb.Label(),
			Description: lb.Description,
		})
	}

	var pools []models.Pool
	if err := s.searchTable(ctx, pattern, &models.Pool{}, &pools); err != nil {
		return nil, err
	}
	for _, p := range pools {
		resp.Hits = append(resp.Hits, types.SearchHit{
			Type:        types.SearchTypePool,
			ID:          p.ID,
			Label:       p.Label(),
			Description: p.Description,
		})
	}

	var virtualServers []models.VirtualServer
	if err := s.searchTable(ctx, pattern, &models.VirtualServer{}, &virtualServers); err != nil {
		return nil, err
	}
	for _, vs := range virtualServers {
		resp.Hits = append(resp.Hits, types.SearchHit{
			Type:        types.SearchTypeVirtualServer,
			ID:          vs.ID,
			Label:       vs.Label(),
			Description: vs.Description,
		})
	}

	var poolMembers []models.PoolMember
	if err := s.searchTable(ctx, pattern, &models.PoolMember{}, &poolMembers); err != nil {
		return nil, err
	}
	for _, pm := range poolMembers {
		resp.Hits = append(resp.Hits, types.SearchHit{
			Type:        types.SearchTypePoolMember,
			ID:          pm.ID,
			Label:       pm.Label(),
			Description: pm.Description,
		})
	}

	return resp, nil
}

// searchTable fills dest with name matches first, then records matching
// only on description.
func (s *service) searchTable(ctx context.Context, pattern string, model, dest any) error {
	if err := s.db.WithContext(ctx).Model(model).
		Where("LOWER(name) LIKE ?", pattern).
		Order("name").
		Find(dest).Error; err != nil {
		return err
	}

	byDescription := s.db.WithContext(ctx).Model(model).
		Where("LOWER(description) LIKE ?", pattern).
		Where("LOWER(name) NOT LIKE ?", pattern).
		Order("name")

	switch d := dest.(type) {
	case *[]models.LoadBalancer:
		var extra []models.LoadBalancer
		if err := byDescription.Find(&extra).Error; err != nil {
			return err
		}
		*d = append(*d, extra...)
	case *[]models.Pool:
		var extra []models.Pool
		if err := byDescription.Find(&extra).Error; err != nil {
			return err
		}
		*d = append(*d, extra...)
	case *[]models.VirtualServer:
		var extra []models.VirtualServer
		if err := byDescription.Find(&extra).Error; err != nil {
			return err
		}
		*d = append(*d, extra...)
	case *[]models.PoolMember:
		var extra []models.PoolMember
		if err := byDescription.Find(&extra).Error; err != nil {
			return err
		}
		*d = append(*d, extra...)
	}

	return nil
}
