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

package types

import "github.com/theopensystemslab/planx-new-sub000/utils/cast"

// Passport 用户在流程中累积的答案，只读
// Passport holds the answers a user accumulated so far in the flow.
// Values are a string, a list of strings, or absent. Lists decoded from JSON
// may arrive as []interface{}; Lookup normalises them.
type Passport struct {
	Data map[string]interface{} `json:"data" yaml:"data" mapstructure:"data"`
}

// NewPassport creates a passport over the given data.
func NewPassport(data map[string]interface{}) Passport {
	if data == nil {
		data = make(map[string]interface{})
	}
	return Passport{Data: data}
}

// PassportValue is a normalised passport entry.
type PassportValue struct {
	// Scalar is set when the entry is a single string
	Scalar string
	// List is set when the entry is a list
	List   []string
	IsList bool
}

// Lookup returns the entry stored under key. ok is false when the key is
// absent or its value is empty, which never satisfies a rule.
func (p Passport) Lookup(key string) (value PassportValue, ok bool) {
	if p.Data == nil {
		return value, false
	}
	raw, found := p.Data[key]
	if !found || raw == nil {
		return value, false
	}
	switch v := raw.(type) {
	case string:
		if v == "" {
			return value, false
		}
		return PassportValue{Scalar: v}, true
	case []string:
		return PassportValue{List: v, IsList: true}, true
	case []interface{}:
		list, err := cast.ToStringSliceE(v)
		if err != nil {
			return value, false
		}
		return PassportValue{List: list, IsList: true}, true
	case bool:
		// false carries no evidence, same as an absent answer
		if !v {
			return value, false
		}
		return PassportValue{Scalar: "true"}, true
	default:
		s, err := cast.ToStringE(v)
		if err != nil || s == "" {
			return value, false
		}
		return PassportValue{Scalar: s}, true
	}
}
