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

package router

import (
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/mcuadros/go-gin-prometheus"

	"github.com/djohnnes/netbox-loadbalancer/handlers"
	"github.com/djohnnes/netbox-loadbalancer/internal/logger"
	"github.com/djohnnes/netbox-loadbalancer/middlewares"
	"github.com/djohnnes/netbox-loadbalancer/service"
)

const (
	PrometheusSubsystemName = "netbox_loadbalancer"
)

func Init(verbose bool, service service.Service) (*gin.Engine, error) {
	// Set mode.
	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	h := handlers.New(service)

	// Prometheus metrics.
	p := ginprometheus.NewPrometheus(PrometheusSubsystemName)
	// URL removes query string.
	// Prometheus metrics need to reduce label,
	// refer to https://prometheus.io/docs/practices/instrumentation/#do-not-overuse-labels.
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		return c.Request.URL.Path
	}
	p.Use(r)

	// CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true

	// Middleware
	r.Use(gin.Recovery())
	r.Use(ginzap.Ginzap(logger.GinLogger.Desugar(), time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger.GinLogger.Desugar(), true))
	r.Use(middlewares.Error())
	r.Use(cors.New(corsConfig))

	// Router
	apiv1 := r.Group("/api/v1")

	// Load Balancer
	lb := apiv1.Group("/loadbalancers")
	lb.POST("", h.CreateLoadBalancer)
	lb.DELETE(":id", h.DestroyLoadBalancer)
	lb.PATCH(":id", h.UpdateLoadBalancer)
	lb.GET(":id", h.GetLoadBalancer)
	lb.GET("", h.GetLoadBalancers)
	lb.POST("/import", h.ImportLoadBalancers)
	lb.GET("/export", h.ExportLoadBalancers)

	// Pool
	pl := apiv1.Group("/pools")
	pl.POST("", h.CreatePool)
	pl.DELETE(":id", h.DestroyPool)
	pl.PATCH(":id", h.UpdatePool)
	pl.GET(":id", h.GetPool)
	pl.GET("", h.GetPools)
	pl.POST("/import", h.ImportPools)
	pl.GET("/export", h.ExportPools)

	// Virtual Server
	vs := apiv1.Group("/virtual-servers")
	vs.POST("", h.CreateVirtualServer)
	vs.DELETE(":id", h.DestroyVirtualServer)
	vs.PATCH(":id", h.UpdateVirtualServer)
	vs.GET(":id", h.GetVirtualServer)
	vs.GET("", h.GetVirtualServers)
	vs.POST("/import", h.ImportVirtualServers)
	vs.GET("/export", h.ExportVirtualServers)

	// Pool Member
	pm := apiv1.Group("/pool-members")
	pm.POST("", h.CreatePoolMember)
	pm.DELETE(":id", h.DestroyPoolMember)
	pm.PATCH(":id", h.UpdatePoolMember)
	pm.GET(":id", h.GetPoolMember)
	pm.GET("", h.GetPoolMembers)
	pm.POST("/import", h.ImportPoolMembers)
	pm.GET("/export", h.ExportPoolMembers)

	// Search
	apiv1.GET("/search", h.Search)

	// Inventory
	apiv1.DELETE("/inventory/:kind/:id", h.DetachInventoryObject)

	// Health Check
	r.GET("/healthy", h.GetHealth)

	return r, nil
}
