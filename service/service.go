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

//go:generate mockgen -destination mocks/service_mock.go -source service.go -package mocks

package service

import (
	"context"
	"io"

	"gorm.io/gorm"

	"github.com/djohnnes/netbox-loadbalancer/cache"
	"github.com/djohnnes/netbox-loadbalancer/models"
	"github.com/djohnnes/netbox-loadbalancer/types"
)

// Service is the entity layer of the inventory. Every write operation
// validates invariants and runs inside one transaction; nothing is persisted
// when validation fails.
type Service interface {
	CreateLoadBalancer(ctx context.Context, json types.CreateLoadBalancerRequest) (*models.LoadBalancer, error)
	DestroyLoadBalancer(ctx context.Context, id uint) error
	UpdateLoadBalancer(ctx context.Context, id uint, json types.UpdateLoadBalancerRequest) (*models.LoadBalancer, error)
	GetLoadBalancer(ctx context.Context, id uint) (*models.LoadBalancer, error)
	GetLoadBalancers(ctx context.Context, q types.GetLoadBalancersQuery) ([]models.LoadBalancer, int64, error)
	ImportLoadBalancers(ctx context.Context, r io.Reader) (*types.ImportResult, error)
	ExportLoadBalancers(ctx context.Context, w io.Writer) error

	CreatePool(ctx context.Context, json types.CreatePoolRequest) (*models.Pool, error)
	DestroyPool(ctx context.Context, id uint) error
	UpdatePool(ctx context.Context, id uint, json types.UpdatePoolRequest) (*models.Pool, error)
	GetPool(ctx context.Context, id uint) (*models.Pool, error)
	GetPools(ctx context.Context, q types.GetPoolsQuery) ([]models.Pool, int64, error)
	ImportPools(ctx context.Context, r io.Reader) (*types.ImportResult, error)
	ExportPools(ctx context.Context, w io.Writer) error

	CreateVirtualServer(ctx context.Context, json types.CreateVirtualServerRequest) (*models.VirtualServer, error)
	DestroyVirtualServer(ctx context.Context, id uint) error
	UpdateVirtualServer(ctx context.Context, id uint, json types.UpdateVirtualServerRequest) (*models.VirtualServer, error)
	GetVirtualServer(ctx context.Context, id uint) (*models.VirtualServer, error)
	GetVirtualServers(ctx context.Context, q types.GetVirtualServersQuery) ([]models.VirtualServer, int64, error)
	ImportVirtualServers(ctx context.Context, r io.Reader) (*types.ImportResult, error)
	ExportVirtualServers(ctx context.Context, w io.Writer) error

	CreatePoolMember(ctx context.Context, json types.CreatePoolMemberRequest) (*models.PoolMember, error)
	DestroyPoolMember(ctx context.Context, id uint) error
	UpdatePoolMember(ctx context.Context, id uint, json types.UpdatePoolMemberRequest) (*models.PoolMember, error)
	GetPoolMember(ctx context.Context, id uint) (*models.PoolMember, error)
	GetPoolMembers(ctx context.Context, q types.GetPoolMembersQuery) ([]models.PoolMember, int64, error)
	ImportPoolMembers(ctx context.Context, r io.Reader) (*types.ImportResult, error)
	ExportPoolMembers(ctx context.Context, w io.Writer) error

	Search(ctx context.Context, q types.SearchQuery) (*types.SearchResponse, error)
	DetachInventoryObject(ctx context.Context, kind string, id uint) error
}

type service struct {
	db    *gorm.DB
	cache *cache.Cache
}

// New service instance.
func New(db *gorm.DB, cache *cache.Cache) Service {
	return &service{db: db, cache: cache}
}
