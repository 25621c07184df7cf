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

package cache

import (
	"fmt"
	"time"

	"github.com/go-redis/cache/v8"

	"github.com/djohnnes/netbox-loadbalancer/config"
	"github.com/djohnnes/netbox-loadbalancer/database"
)

const (
	// LoadBalancerNamespace is the load balancer prefix of cache key.
	LoadBalancerNamespace = "load-balancer"

	// PoolNamespace is the pool prefix of cache key.
	PoolNamespace = "pool"

	// VirtualServerNamespace is the virtual server prefix of cache key.
	VirtualServerNamespace = "virtual-server"

	// PoolMemberNamespace is the pool member prefix of cache key.
	PoolMemberNamespace = "pool-member"
)

// Cache is the read-through cache in front of Get-by-id lookups. Writes
// invalidate instead of updating, records are re-read on the next Get.
type Cache struct {
	*cache.Cache
	TTL time.Duration
}

// New cache instance backed by redis with a local TinyLFU tier.
func New(cfg *config.Config) *Cache {
	return &Cache{
		Cache: cache.New(&cache.Options{
			Redis:      database.NewRedis(&cfg.Database.Redis),
			LocalCache: cache.NewTinyLFU(cfg.Cache.Local.Size, cfg.Cache.Local.TTL),
		}),
		TTL: cfg.Cache.Redis.TTL,
	}
}

// NewLocal returns a cache without redis, used by tests.
func NewLocal(size int, ttl time.Duration) *Cache {
	return &Cache{
		Cache: cache.New(&cache.Options{
			LocalCache: cache.NewTinyLFU(size, ttl),
		}),
		TTL: ttl,
	}
}

// MakeCacheKey builds a namespaced cache key.
func MakeCacheKey(namespace string, id uint) string {
	return fmt.Sprintf("loadbalancer:%s:%d", namespace, id)
}
