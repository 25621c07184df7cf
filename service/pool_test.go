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
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/djohnnes/netbox-loadbalancer/models"
	"github.com/djohnnes/netbox-loadbalancer/types"
)

func TestService_CreatePool(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first := createTestLoadBalancer(t, svc, "lb-01")
	second := createTestLoadBalancer(t, svc, "lb-02")

	pool, err := svc.CreatePool(ctx, types.CreatePoolRequest{
		Name:           "web",
		LoadBalancerID: first.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "round-robin", pool.Method)
	assert.Equal(t, "http", pool.Protocol)

	// Names are unique per load balancer, not globally.
	_, err = svc.CreatePool(ctx, types.CreatePoolRequest{Name: "web", LoadBalancerID: first.ID})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Duplicate)

	_, err = svc.CreatePool(ctx, types.CreatePoolRequest{Name: "web", LoadBalancerID: second.ID})
	require.NoError(t, err)

	_, err = svc.CreatePool(ctx, types.CreatePoolRequest{Name: "orphan", LoadBalancerID: 4242})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = svc.CreatePool(ctx, types.CreatePoolRequest{
		Name:           "bad-method",
		LoadBalancerID: first.ID,
		Method:         "fastest-cpu",
	})
	require.ErrorAs(t, err, &verr)
	assert.False(t, verr.Duplicate)
}

func TestService_UpdatePool(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	loadBalancer := createTestLoadBalancer(t, svc, "lb-01")
	web := createTestPool(t, svc, loadBalancer.ID, "web")
	createTestPool(t, svc, loadBalancer.ID, "api")

	updated, err := svc.UpdatePool(ctx, web.ID, types.UpdatePoolRequest{Method: "least-connections"})
	require.NoError(t, err)
	assert.Equal(t, "least-connections", updated.Method)
	assert.Equal(t, "web", updated.Name)

	_, err = svc.UpdatePool(ctx, web.ID, types.UpdatePoolRequest{Name: "api"})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Duplicate)
}

func TestService_GetPool(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	loadBalancer := createTestLoadBalancer(t, svc, "lb-01")
	pool := createTestPool(t, svc, loadBalancer.ID, "web")

	got, err := svc.GetPool(ctx, pool.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Members)

	// Member writes evict the cached pool, so a repeat read sees them.
	poolMember := createTestPoolMember(t, svc, pool.ID, "web-01", 8080)
	got, err = svc.GetPool(ctx, pool.ID)
	require.NoError(t, err)
	require.Len(t, got.Members, 1)
	assert.Equal(t, "web-01", got.Members[0].Name)

	require.NoError(t, svc.DestroyPoolMember(ctx, poolMember.ID))
	got, err = svc.GetPool(ctx, pool.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Members)
}

func TestService_DestroyPool(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	loadBalancer := createTestLoadBalancer(t, svc, "lb-01")
	pool := createTestPool(t, svc, loadBalancer.ID, "web")
	createTestPoolMember(t, svc, pool.ID, "web-01", 8080)
	createTestPoolMember(t, svc, pool.ID, "web-02", 8081)

	virtualServer, err := svc.CreateVirtualServer(ctx, types.CreateVirtualServerRequest{
		Name:           "vip-web",
		LoadBalancerID: loadBalancer.ID,
		Port:           443,
		PoolID:         &pool.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DestroyPool(ctx, pool.ID))

	_, count, err := svc.GetPoolMembers(ctx, types.GetPoolMembersQuery{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Zero(t, count)

	// The virtual server survives with its pool reference cleared.
	survivor, err := svc.GetVirtualServer(ctx, virtualServer.ID)
	require.NoError(t, err)
	assert.Nil(t, survivor.PoolID)
}

func TestService_ImportPools(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	createTestLoadBalancer(t, svc, "lb-01")

	csv := strings.Join([]string{
		"loadbalancer,name,method,protocol,description",
		"lb-01,web,weighted,https,frontend pool",
		"lb-01,api,,,",
	}, "\n")
	result, err := svc.ImportPools(ctx, strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)

	pools, count, err := svc.GetPools(ctx, types.GetPoolsQuery{Page: 1, PerPage: 10, Name: "api"})
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
	assert.Equal(t, "round-robin", pools[0].Method)

	// An unresolvable relationship column fails the whole file.
	csv = strings.Join([]string{
		"loadbalancer,name,method,protocol,description",
		"lb-missing,cache,,,",
	}, "\n")
	_, err = svc.ImportPools(ctx, strings.NewReader(csv))
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "unknown load balancer")
}

func TestService_ExportPools(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	loadBalancer := createTestLoadBalancer(t, svc, "lb-01")
	createTestPool(t, svc, loadBalancer.ID, "web")

	var buf bytes.Buffer
	require.NoError(t, svc.ExportPools(ctx, &buf))
	assert.Contains(t, buf.String(), "lb-01,web,round-robin,http,")
}
