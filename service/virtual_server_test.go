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

func TestService_CreateVirtualServer(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	loadBalancer := createTestLoadBalancer(t, svc, "lb-01")

	virtualServer, err := svc.CreateVirtualServer(ctx, types.CreateVirtualServerRequest{
		Name:           "vip-web",
		LoadBalancerID: loadBalancer.ID,
		Port:           443,
		Protocol:       "https",
	})
	require.NoError(t, err)
	assert.Equal(t, "active", virtualServer.Status)

	// The identity tuple is (load balancer, name, port, protocol); changing
	// any one component is enough.
	_, err = svc.CreateVirtualServer(ctx, types.CreateVirtualServerRequest{
		Name:           "vip-web",
		LoadBalancerID: loadBalancer.ID,
		Port:           443,
		Protocol:       "https",
	})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Duplicate)

	_, err = svc.CreateVirtualServer(ctx, types.CreateVirtualServerRequest{
		Name:           "vip-web",
		LoadBalancerID: loadBalancer.ID,
		Port:           443,
		Protocol:       "tcp",
	})
	require.NoError(t, err)

	_, err = svc.CreateVirtualServer(ctx, types.CreateVirtualServerRequest{
		Name:           "vip-ghost",
		LoadBalancerID: loadBalancer.ID,
		Port:           80,
		PoolID:         uintPtr(4242),
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestService_UpdateVirtualServer(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	loadBalancer := createTestLoadBalancer(t, svc, "lb-01")
	pool := createTestPool(t, svc, loadBalancer.ID, "web")
	virtualServer := createTestVirtualServer(t, svc, loadBalancer.ID, "vip-web", 443)

	updated, err := svc.UpdateVirtualServer(ctx, virtualServer.ID, types.UpdateVirtualServerRequest{
		PoolID: &pool.ID,
		Status: "disabled",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.PoolID)
	assert.Equal(t, pool.ID, *updated.PoolID)
	assert.Equal(t, "disabled", updated.Status)

	updated, err = svc.UpdateVirtualServer(ctx, virtualServer.ID, types.UpdateVirtualServerRequest{PoolID: uintPtr(0)})
	require.NoError(t, err)
	assert.Nil(t, updated.PoolID)

	createTestVirtualServer(t, svc, loadBalancer.ID, "vip-api", 443)
	_, err = svc.UpdateVirtualServer(ctx, virtualServer.ID, types.UpdateVirtualServerRequest{Name: "vip-api", Protocol: "http"})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Duplicate)
}

func TestService_GetVirtualServers(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	loadBalancer := createTestLoadBalancer(t, svc, "lb-01")
	createTestVirtualServer(t, svc, loadBalancer.ID, "vip-web", 443)
	createTestVirtualServer(t, svc, loadBalancer.ID, "vip-api", 8443)

	_, count, err := svc.GetVirtualServers(ctx, types.GetVirtualServersQuery{Page: 1, PerPage: 10, Port: 443})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	virtualServers, count, err := svc.GetVirtualServers(ctx, types.GetVirtualServersQuery{
		Page: 1, PerPage: 10, Search: "vip",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, "vip-api", virtualServers[0].Name)
}

func TestService_ImportVirtualServers(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	loadBalancer := createTestLoadBalancer(t, svc, "lb-01")
	createTestPool(t, svc, loadBalancer.ID, "web")

	csv := strings.Join([]string{
		"loadbalancer,name,port,protocol,status,pool,description",
		"lb-01,vip-web,443,https,active,web,",
		"lb-01,vip-plain,80,,,,",
	}, "\n")
	result, err := svc.ImportVirtualServers(ctx, strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)

	virtualServers, count, err := svc.GetVirtualServers(ctx, types.GetVirtualServersQuery{
		Page: 1, PerPage: 10, Name: "vip-web",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
	require.NotNil(t, virtualServers[0].PoolID)

	// Pool names resolve within the row's load balancer only.
	csv = strings.Join([]string{
		"loadbalancer,name,port,protocol,status,pool,description",
		"lb-01,vip-bad,8080,http,active,nonexistent,",
	}, "\n")
	_, err = svc.ImportVirtualServers(ctx, strings.NewReader(csv))
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "unknown pool")
}

func TestService_ExportVirtualServers(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	loadBalancer := createTestLoadBalancer(t, svc, "lb-01")
	pool := createTestPool(t, svc, loadBalancer.ID, "web")
	_, err := svc.CreateVirtualServer(ctx, types.CreateVirtualServerRequest{
		Name:           "vip-web",
		LoadBalancerID: loadBalancer.ID,
		Port:           443,
		Protocol:       "https",
		PoolID:         &pool.ID,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportVirtualServers(ctx, &buf))
	assert.Contains(t, buf.String(), "lb-01,vip-web,443,https,active,web,")
}
