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

	"github.com/djohnnes/netbox-loadbalancer/models"
	"github.com/djohnnes/netbox-loadbalancer/types"
)

func TestService_CreatePoolMember(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	loadBalancer := createTestLoadBalancer(t, svc, "lb-01")
	pool := createTestPool(t, svc, loadBalancer.ID, "web")

	poolMember, err := svc.CreatePoolMember(ctx, types.CreatePoolMemberRequest{
		Name:   "web-01",
		PoolID: pool.ID,
		Port:   8080,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(1), poolMember.Weight)
	assert.Equal(t, int32(0), poolMember.Priority)
	assert.Equal(t, "active", poolMember.Status)

	_, err = svc.CreatePoolMember(ctx, types.CreatePoolMemberRequest{
		Name:   "web-02",
		PoolID: pool.ID,
		Port:   8080,
		Weight: int32Ptr(0),
	})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "weight")
}

func TestService_CreatePoolMember_EndpointRule(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	loadBalancer := createTestLoadBalancer(t, svc, "lb-01")
	pool := createTestPool(t, svc, loadBalancer.ID, "web")
	other := createTestPool(t, svc, loadBalancer.ID, "api")

	_, err := svc.CreatePoolMember(ctx, types.CreatePoolMemberRequest{
		Name:        "web-01",
		PoolID:      pool.ID,
		IPAddressID: uintPtr(7),
		Port:        8080,
	})
	require.NoError(t, err)

	// Same pool, same ip, same port collides.
	_, err = svc.CreatePoolMember(ctx, types.CreatePoolMemberRequest{
		Name:        "web-01-copy",
		PoolID:      pool.ID,
		IPAddressID: uintPtr(7),
		Port:        8080,
	})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Duplicate)

	// A different port or a different pool is fine.
	_, err = svc.CreatePoolMember(ctx, types.CreatePoolMemberRequest{
		Name:        "web-01-alt",
		PoolID:      pool.ID,
		IPAddressID: uintPtr(7),
		Port:        8081,
	})
	require.NoError(t, err)

	_, err = svc.CreatePoolMember(ctx, types.CreatePoolMemberRequest{
		Name:        "api-01",
		PoolID:      other.ID,
		IPAddressID: uintPtr(7),
		Port:        8080,
	})
	require.NoError(t, err)

	// Members without an ip address are exempt from the rule entirely.
	_, err = svc.CreatePoolMember(ctx, types.CreatePoolMemberRequest{
		Name:   "anon-01",
		PoolID: pool.ID,
		Port:   9000,
	})
	require.NoError(t, err)
	_, err = svc.CreatePoolMember(ctx, types.CreatePoolMemberRequest{
		Name:   "anon-02",
		PoolID: pool.ID,
		Port:   9000,
	})
	require.NoError(t, err)
}

func TestService_UpdatePoolMember(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	loadBalancer := createTestLoadBalancer(t, svc, "lb-01")
	pool := createTestPool(t, svc, loadBalancer.ID, "web")
	poolMember := createTestPoolMember(t, svc, pool.ID, "web-01", 8080)

	updated, err := svc.UpdatePoolMember(ctx, poolMember.ID, types.UpdatePoolMemberRequest{
		Weight:   int32Ptr(10),
		Priority: int32Ptr(0),
		Status:   "drain",
	})
	require.NoError(t, err)
	assert.Equal(t, int32(10), updated.Weight)
	assert.Equal(t, int32(0), updated.Priority)
	assert.Equal(t, "drain", updated.Status)

	// Updating into an occupied endpoint collides, updating in place does
	// not.
	_, err = svc.CreatePoolMember(ctx, types.CreatePoolMemberRequest{
		Name:        "web-02",
		PoolID:      pool.ID,
		IPAddressID: uintPtr(9),
		Port:        8090,
	})
	require.NoError(t, err)

	updated, err = svc.UpdatePoolMember(ctx, poolMember.ID, types.UpdatePoolMemberRequest{IPAddressID: uintPtr(9)})
	require.NoError(t, err)
	require.NotNil(t, updated.IPAddressID)

	_, err = svc.UpdatePoolMember(ctx, poolMember.ID, types.UpdatePoolMemberRequest{Port: 8090})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Duplicate)

	_, err = svc.UpdatePoolMember(ctx, poolMember.ID, types.UpdatePoolMemberRequest{Port: 8080})
	require.NoError(t, err)

	// An explicit empty description clears the stored value, an absent one
	// leaves it alone.
	updated, err = svc.UpdatePoolMember(ctx, poolMember.ID, types.UpdatePoolMemberRequest{Description: strPtr("standby node")})
	require.NoError(t, err)
	assert.Equal(t, "standby node", updated.Description)

	updated, err = svc.UpdatePoolMember(ctx, poolMember.ID, types.UpdatePoolMemberRequest{Description: strPtr("")})
	require.NoError(t, err)
	assert.Empty(t, updated.Description)
}

func TestService_ImportPoolMembers(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	loadBalancer := createTestLoadBalancer(t, svc, "lb-01")
	createTestPool(t, svc, loadBalancer.ID, "web")

	csv := strings.Join([]string{
		"loadbalancer,pool,name,port,weight,priority,status,description",
		"lb-01,web,web-01,8080,5,1,active,primary",
		"lb-01,web,web-02,8081,0,0,,",
	}, "\n")
	result, err := svc.ImportPoolMembers(ctx, strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)

	poolMembers, count, err := svc.GetPoolMembers(ctx, types.GetPoolMembersQuery{Page: 1, PerPage: 10, Name: "web-02"})
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
	assert.Equal(t, int32(1), poolMembers[0].Weight)
	assert.Equal(t, "active", poolMembers[0].Status)
}

func TestService_ExportPoolMembers(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	loadBalancer := createTestLoadBalancer(t, svc, "lb-01")
	pool := createTestPool(t, svc, loadBalancer.ID, "web")
	createTestPoolMember(t, svc, pool.ID, "web-01", 8080)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportPoolMembers(ctx, &buf))
	assert.Contains(t, buf.String(), "lb-01,web,web-01,8080,1,0,active,")
}
