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

package maps

import "github.com/mitchellh/mapstructure"

// Map2Struct Decode takes an input structure and uses reflection to translate it to
// the output structure. output must be a pointer to a map or struct.
// Duration strings such as "5s" are decoded into time.Duration fields.
func Map2Struct(input interface{}, output interface{}) error {
	return Decode(input, output)
}

// Decode 与 Map2Struct 相同，额外应用 hooks（例如 types.RuleHookFunc）
// Decode is Map2Struct with additional decode hooks applied after the
// duration hook, such as types.RuleHookFunc for fields of type types.Rule.
func Decode(input interface{}, output interface{}, hooks ...mapstructure.DecodeHookFunc) error {
	decodeHooks := append([]mapstructure.DecodeHookFunc{mapstructure.StringToTimeDurationHookFunc()}, hooks...)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(decodeHooks...),
		// 切片和 map 先清空再写入，重复解码不会残留旧值
		ZeroFields: true,
		Result:     output,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}
