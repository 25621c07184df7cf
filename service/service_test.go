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
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/djohnnes/netbox-loadbalancer/cache"
	"github.com/djohnnes/netbox-loadbalancer/models"
	"github.com/djohnnes/netbox-loadbalancer/types"
)

var testDatabaseSeq uint64

// newTestService builds a service on an isolated in-memory database.
func newTestService(t *testing.T) Service {
	t.Helper()

	seq := atomic.AddUint64(&testDatabaseSeq, 1)
	dsn := fmt.Sprintf("file:service_test_%d?mode=memory&cache=shared", seq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.LoadBalancer{},
		&models.Pool{},
		&models.VirtualServer{},
		&models.PoolMember{},
	))

	return New(db, cache.NewLocal(1000, time.Minute))
}

func createTestLoadBalancer(t *testing.T, svc Service, name string) *models.LoadBalancer {
	t.Helper()

	loadBalancer, err := svc.CreateLoadBalancer(context.Background(), types.CreateLoadBalancerRequest{
		Name:     name,
		Platform: "haproxy",
	})
	require.NoError(t, err)
	return loadBalancer
}

func createTestPool(t *testing.T, svc Service, loadBalancerID uint, name string) *models.Pool {
	t.Helper()

	pool, err := svc.CreatePool(context.Background(), types.CreatePoolRequest{
		Name:           name,
		LoadBalancerID: loadBalancerID,
	})
	require.NoError(t, err)
	return pool
}

func createTestVirtualServer(t *testing.T, svc Service, loadBalancerID uint, name string, port int32) *models.VirtualServer {
	t.Helper()

	virtualServer, err := svc.CreateVirtualServer(context.Background(), types.CreateVirtualServerRequest{
		Name:           name,
		LoadBalancerID: loadBalancerID,
		Port:           port,
	})
	require.NoError(t, err)
	return virtualServer
}

func createTestPoolMember(t *testing.T, svc Service, poolID uint, name string, port int32) *models.PoolMember {
	t.Helper()

	poolMember, err := svc.CreatePoolMember(context.Background(), types.CreatePoolMemberRequest{
		Name:   name,
		PoolID: poolID,
		Port:   port,
	})
	require.NoError(t, err)
	return poolMember
}

func uintPtr(v uint) *uint    { return &v }
func int32Ptr(v int32) *int32 { return &v }
func strPtr(v string) *string { return &v }
