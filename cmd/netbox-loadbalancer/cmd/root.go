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

package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/djohnnes/netbox-loadbalancer/config"
	"github.com/djohnnes/netbox-loadbalancer/internal/logger"
	"github.com/djohnnes/netbox-loadbalancer/server"
)

const (
	// EnvPrefix is the environment prefix for Viper.
	// Both BindEnv and AutomaticEnv will use this prefix.
	EnvPrefix = "nblb"
)

var (
	cfgFile string

	// Initialize default config
	cfg = config.New()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "netbox-loadbalancer",
	Short: "inventory service for load balancers",
	Long: `netbox-loadbalancer is a long-running process that tracks load balancers,
their pools, virtual servers and pool members, offering http apis for
managing the inventory and csv based bulk import and export.`,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		return runServer()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func init() {
	flagSet := rootCmd.Flags()
	flagSet.StringVar(&cfgFile, "config", "", "the path of the configuration file")
	flagSet.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "print verbose log and enable debug log level")
}

func initConfig() error {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("netbox-loadbalancer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/netbox-loadbalancer")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errors.Wrap(err, "read config")
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return errors.Wrap(err, "unmarshal config")
	}

	return cfg.Validate()
}

func runServer() error {
	if cfg.Verbose {
		logger.SetLevel(zapcore.DebugLevel)
	}

	// Server config values
	s, _ := yaml.Marshal(cfg)
	logger.Infof("server configuration:\n%s", string(s))

	svr, err := server.New(cfg)
	if err != nil {
		return err
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		logger.Infof("received signal %s, stopping", sig)
		svr.Stop()
	}()

	return svr.Serve()
}
