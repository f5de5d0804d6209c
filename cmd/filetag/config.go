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
	"strings"

	"gopkg.in/ini.v1"
)

const (
	OutputJson = "json"
	OutputYaml = "yaml"
)

// Config 命令行配置文件，例如:
//
//	log_level = debug
//	log_format = json
//	output = yaml
type Config struct {
	// LogLevel 日志级别 debug|info|warn|error，默认 info
	LogLevel string `ini:"log_level"`
	// LogFormat 日志格式 json|console，默认 console
	LogFormat string `ini:"log_format"`
	// Output 结果输出格式 json|yaml，默认 json
	Output string `ini:"output"`
}

// DefaultConfig returns the settings used when neither a config file nor a
// flag sets them.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "console",
		Output:    OutputJson,
	}
}

// loadConfig reads the ini file at path over the defaults. An empty path
// returns the defaults.
func loadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}
	cfg, err := ini.Load(path)
	if err != nil {
		return c, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.MapTo(&c); err != nil {
		return c, fmt.Errorf("load config %s: %w", path, err)
	}
	return c, nil
}

func (c Config) validate() error {
	switch strings.ToLower(c.Output) {
	case OutputJson, OutputYaml:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", c.Output)
	}
}
