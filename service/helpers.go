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
	"strings"

	"github.com/go-playground/validator/v10"
	gocache "github.com/go-redis/cache/v8"

	"github.com/djohnnes/netbox-loadbalancer/cache"
	logger "github.com/djohnnes/netbox-loadbalancer/internal/logger"
	"github.com/djohnnes/netbox-loadbalancer/models"
)

// weakRef resolves the attach/detach convention of update requests: nil
// leaves the reference unchanged, a pointer to zero detaches it, any other
// id attaches.
func weakRef(current, requested *uint) *uint {
	if requested == nil {
		return current
	}

	if *requested == 0 {
		return nil
	}

	return requested
}

// likePattern builds the case-insensitive substring pattern for the free
// text search parameter. Callers pair it with LOWER(column) LIKE ?.
func likePattern(q string) string {
	return "%" + strings.ToLower(q) + "%"
}

// validateCSVRows runs the struct tag checks of parsed rows before any
// database work, so a malformed row fails the file up front.
func validateCSVRows[T any](rows []*T) error {
	validate := validator.New()
	for i, row := range rows {
		if err := validate.Struct(row); err != nil {
			return models.NewValidationError("csv", "row %d: %s", i+1, err.Error())
		}
	}

	return nil
}

func (s *service) cacheGet(ctx context.Context, namespace string, id uint, value any) bool {
	return s.cache.Get(ctx, cache.MakeCacheKey(namespace, id), value) == nil
}

func (s *service) cacheSet(ctx context.Context, namespace string, id uint, value any) {
	if err := s.cache.Set(&gocache.Item{
		Ctx:   ctx,
		Key:   cache.MakeCacheKey(namespace, id),
		Value: value,
		TTL:   s.cache.TTL,
	}); err != nil {
		logger.Warnf("cache %s %d: %v", namespace, id, err)
	}
}

func (s *service) cacheDelete(ctx context.Context, namespace string, id uint) {
	if err := s.cache.Delete(ctx, cache.MakeCacheKey(namespace, id)); err != nil && err != gocache.ErrCacheMiss {
		logger.Warnf("evict %s %d: %v", namespace, id, err)
	}
}

func (s *service) cacheDeleteAll(ctx context.Context, namespace string, ids []uint) {
	for _, id := range ids {
		s.cacheDelete(ctx, namespace, id)
	}
}
