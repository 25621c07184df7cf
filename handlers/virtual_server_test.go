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

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/djohnnes/netbox-loadbalancer/models"
	"github.com/djohnnes/netbox-loadbalancer/service/mocks"
	"github.com/djohnnes/netbox-loadbalancer/types"
)

var (
	mockVirtualServerReqBody = `
		{
			"name": "vip-web",
			"load_balancer_id": 2,
			"port": 443,
			"protocol": "https",
			"status": "active"
		}`
	mockCreateVirtualServerRequest = types.CreateVirtualServerRequest{
		Name:           "vip-web",
		LoadBalancerID: 2,
		Port:           443,
		Protocol:       "https",
		Status:         "active",
	}
	mockVirtualServerModel = &models.VirtualServer{
		BaseModel:      models.BaseModel{ID: 4},
		Name:           "vip-web",
		LoadBalancerID: 2,
		Port:           443,
		Protocol:       "https",
		Status:         "active",
	}
)

func mockVirtualServerRouter(h *Handlers) *gin.Engine {
	r := gin.Default()
	apiv1 := r.Group("/api/v1")
	vs := apiv1.Group("/virtual-servers")
	vs.POST("", h.CreateVirtualServer)
	vs.DELETE(":id", h.DestroyVirtualServer)
	vs.PATCH(":id", h.UpdateVirtualServer)
	vs.GET(":id", h.GetVirtualServer)
	vs.GET("", h.GetVirtualServers)
	return r
}

func TestHandlers_CreateVirtualServer(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/virtual-servers", strings.NewReader(`{"name": "vip-web", "load_balancer_id": 2, "port": 70000}`)),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/virtual-servers", strings.NewReader(mockVirtualServerReqBody)),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.CreateVirtualServer(gomock.Any(), gomock.Eq(mockCreateVirtualServerRequest)).Return(mockVirtualServerModel, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				virtualServer := models.VirtualServer{}
				err := json.Unmarshal(w.Body.Bytes(), &virtualServer)
				assert.NoError(err)
				assert.Equal(mockVirtualServerModel.Port, virtualServer.Port)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			w := httptest.NewRecorder()
			h := New(svc)
			mockRouter := mockVirtualServerRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_GetVirtualServers(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "filters forwarded",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/virtual-servers?load_balancer_id=2&protocol=https&port=443", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.GetVirtualServers(gomock.Any(), gomock.Eq(types.GetVirtualServersQuery{
					Page:           1,
					PerPage:        10,
					LoadBalancerID: 2,
					Protocol:       []string{"https"},
					Port:           443,
				})).Return([]models.VirtualServer{*mockVirtualServerModel}, int64(1), nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			w := httptest.NewRecorder()
			h := New(svc)
			mockRouter := mockVirtualServerRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}
