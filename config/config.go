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

package config

import (
	"time"

	"github.com/pkg/errors"

	"github.com/djohnnes/netbox-loadbalancer/choices"
)

const (
	// DatabaseTypeMysql is the mysql database type.
	DatabaseTypeMysql = "mysql"

	// DatabaseTypePostgres is the postgres database type.
	DatabaseTypePostgres = "postgres"
)

type Config struct {
	// Server is the HTTP server configuration.
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// Database is the database configuration.
	Database DatabaseConfig `yaml:"database" mapstructure:"database"`

	// Cache is the redis/local cache configuration.
	Cache CacheConfig `yaml:"cache" mapstructure:"cache"`

	// Choices holds administrator-defined extra options per choice set key,
	// e.g. "LoadBalancer.platform".
	Choices map[string][]choices.Choice `yaml:"choices" mapstructure:"choices"`

	// Verbose enables debug level logging and gin debug mode.
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

type ServerConfig struct {
	// Addr is the REST service listen address.
	Addr string `yaml:"addr" mapstructure:"addr"`

	// ReadTimeout is the maximum duration for reading a request.
	ReadTimeout time.Duration `yaml:"readTimeout" mapstructure:"readTimeout"`

	// WriteTimeout is the maximum duration for writing a response.
	WriteTimeout time.Duration `yaml:"writeTimeout" mapstructure:"writeTimeout"`
}

type DatabaseConfig struct {
	// Type selects the database dialect, mysql or postgres.
	Type string `yaml:"type" mapstructure:"type"`

	// Mysql is the mysql configuration.
	Mysql MysqlConfig `yaml:"mysql" mapstructure:"mysql"`

	// Postgres is the postgres configuration.
	Postgres PostgresConfig `yaml:"postgres" mapstructure:"postgres"`

	// Redis is the redis configuration.
	Redis RedisConfig `yaml:"redis" mapstructure:"redis"`
}

type MysqlConfig struct {
	User      string     `yaml:"user" mapstructure:"user"`
	Password  string     `yaml:"password" mapstructure:"password"`
	Host      string     `yaml:"host" mapstructure:"host"`
	Port      int        `yaml:"port" mapstructure:"port"`
	DBName    string     `yaml:"dbname" mapstructure:"dbname"`
	TLSConfig string     `yaml:"tlsConfig" mapstructure:"tlsConfig"`
	TLS       *TLSConfig `yaml:"tls" mapstructure:"tls"`
	Migrate   bool       `yaml:"migrate" mapstructure:"migrate"`
}

type TLSConfig struct {
	CA                 string `yaml:"ca" mapstructure:"ca"`
	Cert               string `yaml:"cert" mapstructure:"cert"`
	Key                string `yaml:"key" mapstructure:"key"`
	InsecureSkipVerify bool   `yaml:"insecureSkipVerify" mapstructure:"insecureSkipVerify"`
}

type PostgresConfig struct {
	User                 string `yaml:"user" mapstructure:"user"`
	Password             string `yaml:"password" mapstructure:"password"`
	Host                 string `yaml:"host" mapstructure:"host"`
	Port                 int    `yaml:"port" mapstructure:"port"`
	DBName               string `yaml:"dbname" mapstructure:"dbname"`
	SSLMode              string `yaml:"sslMode" mapstructure:"sslMode"`
	Timezone             string `yaml:"timezone" mapstructure:"timezone"`
	PreferSimpleProtocol bool   `yaml:"preferSimpleProtocol" mapstructure:"preferSimpleProtocol"`
	Migrate              bool   `yaml:"migrate" mapstructure:"migrate"`
}

type RedisConfig struct {
	Host     string `yaml:"host" mapstructure:"host"`
	Port     int    `yaml:"port" mapstructure:"port"`
	Password string `yaml:"password" mapstructure:"password"`
	DB       int    `yaml:"db" mapstructure:"db"`
}

type CacheConfig struct {
	// Redis is the ttl of cached records in redis.
	Redis RedisCacheConfig `yaml:"redis" mapstructure:"redis"`

	// Local is the in-process TinyLFU tier.
	Local LocalCacheConfig `yaml:"local" mapstructure:"local"`
}

type RedisCacheConfig struct {
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

type LocalCacheConfig struct {
	Size int           `yaml:"size" mapstructure:"size"`
	TTL  time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  time.Minute,
			WriteTimeout: time.Minute,
		},
		Database: DatabaseConfig{
			Type: DatabaseTypeMysql,
			Mysql: MysqlConfig{
				User:     "root",
				Password: "netbox-loadbalancer",
				Host:     "127.0.0.1",
				Port:     3306,
				DBName:   "loadbalancer",
				Migrate:  true,
			},
			Postgres: PostgresConfig{
				User:     "postgres",
				Password: "netbox-loadbalancer",
				Host:     "127.0.0.1",
				Port:     5432,
				DBName:   "loadbalancer",
				SSLMode:  "disable",
				Timezone: "UTC",
				Migrate:  true,
			},
			Redis: RedisConfig{
				Host: "127.0.0.1",
				Port: 6379,
			},
		},
		Cache: CacheConfig{
			Redis: RedisCacheConfig{
				TTL: 30 * time.Second,
			},
			Local: LocalCacheConfig{
				Size: 10000,
				TTL:  10 * time.Second,
			},
		},
	}
}

// Validate checks the configuration for values the server cannot start
// without.
func (cfg *Config) Validate() error {
	if cfg.Server.Addr == "" {
		return errors.New("server requires parameter addr")
	}

	switch cfg.Database.Type {
	case DatabaseTypeMysql:
		if cfg.Database.Mysql.Host == "" {
			return errors.New("mysql requires parameter host")
		}

		if cfg.Database.Mysql.Port <= 0 {
			return errors.New("mysql requires parameter port")
		}

		if cfg.Database.Mysql.DBName == "" {
			return errors.New("mysql requires parameter dbname")
		}
	case DatabaseTypePostgres:
		if cfg.Database.Postgres.Host == "" {
			return errors.New("postgres requires parameter host")
		}

		if cfg.Database.Postgres.Port <= 0 {
			return errors.New("postgres requires parameter port")
		}

		if cfg.Database.Postgres.DBName == "" {
			return errors.New("postgres requires parameter dbname")
		}
	default:
		return errors.Errorf("unknown database type %q", cfg.Database.Type)
	}

	if cfg.Database.Redis.Host == "" {
		return errors.New("redis requires parameter host")
	}

	if cfg.Database.Redis.Port <= 0 {
		return errors.New("redis requires parameter port")
	}

	for key := range cfg.Choices {
		if _, ok := choices.Lookup(key); !ok {
			return errors.Errorf("unknown choice set %q", key)
		}
	}

	return nil
}
