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

import (
	"github.com/gofrs/uuid/v5"
)

// Config defines the configuration for the file requirement engine.
type Config struct {
	// OnClassified is called with every FileList the engine classifies.
	// It is the only hook into the otherwise pure classification pass.
	OnClassified func(passport Passport, fileList FileList)
	// OnDebug is called for every classification decision when Debug is true.
	// - name: the file type name
	// - condition: the condition of the rule that was evaluated
	// - category: the bucket the file type landed in, empty when it was dropped
	// - reason: why it was dropped or placed
	OnDebug func(name string, condition Condition, category Category, reason string)
	// Debug enables OnDebug and debug logging.
	Debug bool
	// ComponentsRegistry is the component registry, defaulting to `filetag.Registry`.
	ComponentsRegistry ComponentRegistry
	// Logger is the logging interface, defaulting to `DefaultLogger()`.
	Logger Logger
	// NewID generates slot ids for uploads that arrive without one, defaulting to uuid v4.
	NewID func() string
}

// NewConfig creates a new Config with default values and applies the provided options.
func NewConfig(opts ...Option) Config {
	c := &Config{
		Logger: DefaultLogger(),
		NewID:  DefaultID,
	}

	for _, opt := range opts {
		_ = opt(c)
	}
	return *c
}

// DefaultID returns a random uuid v4 string.
func DefaultID() string {
	return uuid.Must(uuid.NewV4()).String()
}
