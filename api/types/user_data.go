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

import (
	"encoding/json"
)

// FormattedUserFile 持久化记录中的单个上传文件
// FormattedUserFile is one uploaded file in the persisted breadcrumb record.
type FormattedUserFile struct {
	// Name is the file type the upload was tagged with. Payloads written by
	// older versions do not carry it.
	Name string `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name"`
	// Rule of the file type at submission time. Absent for untagged uploads.
	Rule       Rule           `json:"rule,omitempty" yaml:"rule,omitempty" mapstructure:"rule"`
	URL        string         `json:"url,omitempty" yaml:"url,omitempty" mapstructure:"url"`
	Filename   string         `json:"filename,omitempty" yaml:"filename,omitempty" mapstructure:"filename"`
	CachedSlot FileUploadSlot `json:"cachedSlot" yaml:"cachedSlot" mapstructure:"cachedSlot"`
}

// UnmarshalJSON decodes the flat rule object into the Rule union.
func (f *FormattedUserFile) UnmarshalJSON(data []byte) error {
	var v struct {
		Name       string          `json:"name"`
		Rule       json.RawMessage `json:"rule"`
		URL        string          `json:"url"`
		Filename   string          `json:"filename"`
		CachedSlot FileUploadSlot  `json:"cachedSlot"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.Name, f.URL, f.Filename, f.CachedSlot = v.Name, v.URL, v.Filename, v.CachedSlot
	f.Rule = nil
	if len(v.Rule) > 0 && string(v.Rule) != "null" {
		rule, err := unmarshalRule(v.Rule)
		if err != nil {
			return err
		}
		f.Rule = rule
	}
	return nil
}

// UserData 组件提交给流程引擎的持久化记录
// UserData is the persisted record a component submits, keyed by passport fn.
type UserData struct {
	Data map[string][]FormattedUserFile `json:"data" yaml:"data" mapstructure:"data"`
}

// NewUserData creates an empty record.
func NewUserData() *UserData {
	return &UserData{Data: make(map[string][]FormattedUserFile)}
}

// Get returns the entries stored under fn.
func (d *UserData) Get(fn string) ([]FormattedUserFile, bool) {
	if d == nil || d.Data == nil {
		return nil, false
	}
	v, ok := d.Data[fn]
	return v, ok
}
