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

package server

import (
	"context"
	"net/http"

	"github.com/djohnnes/netbox-loadbalancer/cache"
	"github.com/djohnnes/netbox-loadbalancer/choices"
	"github.com/djohnnes/netbox-loadbalancer/config"
	"github.com/djohnnes/netbox-loadbalancer/database"
	"github.com/djohnnes/netbox-loadbalancer/internal/logger"
	"github.com/djohnnes/netbox-loadbalancer/router"
	"github.com/djohnnes/netbox-loadbalancer/service"
)

type Server struct {
	// Server configuration
	config *config.Config

	// REST server
	restServer *http.Server
}

func New(cfg *config.Config) (*Server, error) {
	// Register operator defined choices before any validation runs
	choices.ExtendAll(cfg.Choices)

	// Initialize database
	db, err := database.New(cfg)
	if err != nil {
		return nil, err
	}

	// Initialize cache
	cache := cache.New(cfg)

	// Initialize REST server
	restService := service.New(db.DB, cache)
	router, err := router.Init(cfg.Verbose, restService)
	if err != nil {
		return nil, err
	}
	restServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &Server{
		config:     cfg,
		restServer: restServer,
	}, nil
}

func (s *Server) Serve() error {
	logger.Infof("started rest server at %s", s.restServer.Addr)
	if err := s.restServer.ListenAndServe(); err != nil {
		if err == http.ErrServerClosed {
			return nil
		}

		return err
	}

	return nil
}

func (s *Server) Stop() {
	if err := s.restServer.Shutdown(context.Background()); err != nil {
		logger.Errorf("rest server failed to stop: %+v", err)
	}
	logger.Info("rest server closed under request")
}
