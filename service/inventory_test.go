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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djohnnes/netbox-loadbalancer/models"
	"github.com/djohnnes/netbox-loadbalancer/types"
)

func TestService_DetachInventoryObject(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	loadBalancer, err := svc.CreateLoadBalancer(ctx, types.CreateLoadBalancerRequest{
		Name:           "lb-01",
		Platform:       "f5",
		DeviceID:       uintPtr(3),
		ManagementIPID: uintPtr(11),
	})
	require.NoError(t, err)

	pool := createTestPool(t, svc, loadBalancer.ID, "web")

	virtualServer, err := svc.CreateVirtualServer(ctx, types.CreateVirtualServerRequest{
		Name:           "vip-web",
		LoadBalancerID: loadBalancer.ID,
		Port:           443,
		IPAddressID:    uintPtr(11),
	})
	require.NoError(t, err)

	poolMember, err := svc.CreatePoolMember(ctx, types.CreatePoolMemberRequest{
		Name:        "web-01",
		PoolID:      pool.ID,
		Port:        8080,
		IPAddressID: uintPtr(11),
		DeviceID:    uintPtr(3),
	})
	require.NoError(t, err)

	// Releasing one ip address clears it everywhere, records stay.
	require.NoError(t, svc.DetachInventoryObject(ctx, types.InventoryKindIPAddress, 11))

	gotLB, err := svc.GetLoadBalancer(ctx, loadBalancer.ID)
	require.NoError(t, err)
	assert.Nil(t, gotLB.ManagementIPID)
	assert.NotNil(t, gotLB.DeviceID)

	gotVS, err := svc.GetVirtualServer(ctx, virtualServer.ID)
	require.NoError(t, err)
	assert.Nil(t, gotVS.IPAddressID)

	gotPM, err := svc.GetPoolMember(ctx, poolMember.ID)
	require.NoError(t, err)
	assert.Nil(t, gotPM.IPAddressID)
	assert.NotNil(t, gotPM.DeviceID)

	// Retiring the device clears the remaining references.
	require.NoError(t, svc.DetachInventoryObject(ctx, types.InventoryKindDevice, 3))

	gotLB, err = svc.GetLoadBalancer(ctx, loadBalancer.ID)
	require.NoError(t, err)
	assert.Nil(t, gotLB.DeviceID)

	gotPM, err = svc.GetPoolMember(ctx, poolMember.ID)
	require.NoError(t, err)
	assert.Nil(t, gotPM.DeviceID)

	var verr *models.ValidationError
	err = svc.DetachInventoryObject(ctx, "rack", 1)
	require.ErrorAs(t, err, &verr)
}
