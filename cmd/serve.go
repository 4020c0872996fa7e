// Copyright 2025 The fastparse Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fastparse/fastparse/common"
	"github.com/fastparse/fastparse/confengine"
	"github.com/fastparse/fastparse/controller"
	"github.com/fastparse/fastparse/internal/sigs"
	"github.com/fastparse/fastparse/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run fastparse as a format validation service",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := confengine.LoadConfigPath(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}

		ctr, err := controller.New(cfg, common.BuildInfo{
			Version: version,
			GitHash: gitHash,
			Time:    buildTime,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create controller: %v\n", err)
			os.Exit(1)
		}
		if err := ctr.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to start controller: %v\n", err)
			os.Exit(1)
		}

		termCh := sigs.Terminate()
		reloadCh := sigs.Reload()
		for {
			select {
			case <-termCh:
				ctr.Stop()
				return

			case <-reloadCh:
				cfg, err := confengine.LoadConfigPath(configPath)
				if err != nil {
					logger.Errorf("failed to reload config: %v", err)
					continue
				}
				if err := ctr.Reload(cfg); err != nil {
					logger.Errorf("failed to reload controller: %v", err)
					continue
				}
				logger.Infof("config reloaded")
			}
		}
	},
}

var configPath string

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", "fastparse.yaml", "Configuration file path")
	rootCmd.AddCommand(serveCmd)
}
