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

package database

import (
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/djohnnes/netbox-loadbalancer/config"
	"github.com/djohnnes/netbox-loadbalancer/models"
)

type Database struct {
	DB  *gorm.DB
	RDB *redis.Client
}

func New(cfg *config.Config) (*Database, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Database.Type {
	case config.DatabaseTypeMysql:
		db, err = newMysql(cfg)
		if err != nil {
			return nil, err
		}
	case config.DatabaseTypePostgres:
		db, err = newPostgres(cfg)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("unknown database type %q", cfg.Database.Type)
	}

	return &Database{
		DB:  db,
		RDB: NewRedis(&cfg.Database.Redis),
	}, nil
}

func NewRedis(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Migrate creates or updates the four inventory tables. Foreign key
// constraints are not generated; cascades and nullification are owned by the
// service layer so they behave identically on every dialect.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.LoadBalancer{},
		&models.Pool{},
		&models.VirtualServer{},
		&models.PoolMember{},
	)
}
