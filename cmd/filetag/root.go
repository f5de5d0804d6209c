/*
 * Copyright 2025 The PlanX Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/theopensystemslab/planx-new-sub000/api/types"
	"github.com/theopensystemslab/planx-new-sub000/utils/json"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// app 命令共享的状态
type app struct {
	configFile string
	flags      Config
	config     Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "filetag",
		Short: "Classify, tag and validate planning application file uploads",
		Long: `filetag runs the file requirement engine of the FileUploadAndLabel and
MultipleFileUpload nodes outside the flow.

It can:
  • classify the file types of a node for a passport
  • validate the content of a node
  • replay upload and tagging scenarios and check their outcome
  • recover the uploads of a previous submission`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	defaults := DefaultConfig()
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Path to an ini config file")
	rootCmd.PersistentFlags().StringVar(&a.flags.LogLevel, "log-level", defaults.LogLevel, "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&a.flags.LogFormat, "log-format", defaults.LogFormat, "Log format: json or console")
	rootCmd.PersistentFlags().StringVarP(&a.flags.Output, "output", "o", defaults.Output, "Output format: json or yaml")

	rootCmd.AddCommand(newClassifyCmd(a))
	rootCmd.AddCommand(newValidateCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newRecoverCmd(a))
	return rootCmd
}

// setup loads the config file and applies the flags that were set over it.
func (a *app) setup(cmd *cobra.Command) error {
	config, err := loadConfig(a.configFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		config.LogLevel = a.flags.LogLevel
	}
	if flags.Changed("log-format") {
		config.LogFormat = a.flags.LogFormat
	}
	if flags.Changed("output") {
		config.Output = a.flags.Output
	}
	config.Output = strings.ToLower(config.Output)
	if err := config.validate(); err != nil {
		return err
	}
	a.config = config

	if a.logger, err = newLogger(config.LogLevel, config.LogFormat); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	return nil
}

// options returns the engine options for the configured logger.
// The engine trace is only produced at debug level.
func (a *app) options() []types.Option {
	logger := a.logger
	return []types.Option{
		types.WithLogger(newZapLogger(logger)),
		types.WithDebug(a.config.LogLevel == "debug"),
		types.WithOnClassified(func(passport types.Passport, fileList types.FileList) {
			logger.Info("classified",
				zap.Int("required", len(fileList.Required)),
				zap.Int("recommended", len(fileList.Recommended)),
				zap.Int("optional", len(fileList.Optional)),
			)
		}),
	}
}

// print writes v in the configured output format.
func (a *app) print(w io.Writer, v interface{}) error {
	var (
		b   []byte
		err error
	)
	if a.config.Output == OutputYaml {
		b, err = yaml.Marshal(v)
	} else {
		b, err = json.MarshalIndent(v)
		b = append(b, '\n')
	}
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
