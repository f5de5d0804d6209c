/*
 * Copyright 2023 The PlanX Authors.
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

package types

// Option is a function type that modifies the Config.
type Option func(*Config) error

// WithComponentsRegistry is an option that sets the components' registry of the Config.
func WithComponentsRegistry(componentsRegistry ComponentRegistry) Option {
	return func(c *Config) error {
		c.ComponentsRegistry = componentsRegistry
		return nil
	}
}

// WithLogger is an option that sets the logger of the Config.
func WithLogger(logger Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithOnClassified is an option that sets the classification callback of the Config.
func WithOnClassified(onClassified func(passport Passport, fileList FileList)) Option {
	return func(c *Config) error {
		c.OnClassified = onClassified
		return nil
	}
}

// WithOnDebug is an option that sets the debug callback of the Config and enables debug mode.
func WithOnDebug(onDebug func(name string, condition Condition, category Category, reason string)) Option {
	return func(c *Config) error {
		c.OnDebug = onDebug
		c.Debug = true
		return nil
	}
}

// WithDebug enables or disables debug mode.
func WithDebug(debug bool) Option {
	return func(c *Config) error {
		c.Debug = debug
		return nil
	}
}

// WithIDGenerator is an option that sets the slot id generator of the Config.
func WithIDGenerator(newID func() string) Option {
	return func(c *Config) error {
		c.NewID = newID
		return nil
	}
}
