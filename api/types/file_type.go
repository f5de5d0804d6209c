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
	"errors"
	"fmt"
)

// MoreInformation 组件或文件类型的补充说明
// MoreInformation holds the optional help content shown next to a component or file type.
type MoreInformation struct {
	Info          string `json:"info,omitempty" yaml:"info,omitempty" mapstructure:"info"`
	PolicyRef     string `json:"policyRef,omitempty" yaml:"policyRef,omitempty" mapstructure:"policyRef"`
	HowMeasured   string `json:"howMeasured,omitempty" yaml:"howMeasured,omitempty" mapstructure:"howMeasured"`
	DefinitionImg string `json:"definitionImg,omitempty" yaml:"definitionImg,omitempty" mapstructure:"definitionImg"`
}

// FileType 流程设计者定义的文件类型
// FileType is a file requirement defined by a service designer.
type FileType struct {
	// Name 展示及打标签使用的唯一名称
	// Name is the display name and the tag users select. It is the uniqueness key.
	Name string `json:"name" yaml:"name" mapstructure:"name"`
	// Fn passport key uploaded files are written under
	Fn string `json:"fn" yaml:"fn" mapstructure:"fn"`
	// Rule decides which bucket the file type falls into
	Rule            Rule             `json:"rule" yaml:"rule" mapstructure:"rule"`
	MoreInformation *MoreInformation `json:"moreInformation,omitempty" yaml:"moreInformation,omitempty" mapstructure:"moreInformation"`
}

// NewFileType returns the file type the editor starts from.
func NewFileType() FileType {
	return FileType{Rule: AlwaysRequiredRule{}}
}

// Validate checks the authoring shape of the file type.
func (f FileType) Validate() error {
	if f.Name == "" {
		return errors.New("name is a required field")
	}
	if f.Fn == "" {
		return errors.New("fn is a required field")
	}
	if f.Rule == nil {
		return errors.New("rule.condition is a required field")
	}
	// 重新走一遍解析，确保手工构造的规则同样满足形态约束
	if _, err := ParseRule(ToRawRule(f.Rule)); err != nil {
		return err
	}
	return nil
}

type fileTypeJSON struct {
	Name            string           `json:"name"`
	Fn              string           `json:"fn"`
	Rule            json.RawMessage  `json:"rule"`
	MoreInformation *MoreInformation `json:"moreInformation,omitempty"`
}

// UnmarshalJSON decodes the flat rule object into the Rule union.
func (f *FileType) UnmarshalJSON(data []byte) error {
	var v fileTypeJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.Name, f.Fn, f.MoreInformation = v.Name, v.Fn, v.MoreInformation
	f.Rule = nil
	if len(v.Rule) > 0 && string(v.Rule) != "null" {
		rule, err := unmarshalRule(v.Rule)
		if err != nil {
			return fmt.Errorf("fileType %q: %w", v.Name, err)
		}
		f.Rule = rule
	}
	return nil
}

// UserFile 运行时的文件类型，附带已打上该标签的上传文件
// UserFile is a FileType together with the uploads currently tagged with it.
//
// A nil Slots means nothing was ever tagged; an empty non-nil Slots means
// every tagged upload has since been removed.
type UserFile struct {
	FileType `yaml:",inline" mapstructure:",squash"`
	Slots    []FileUploadSlot `json:"slots,omitempty" yaml:"slots,omitempty" mapstructure:"slots"`
}

// HasSlots reports whether at least one upload is tagged with the file type.
func (u UserFile) HasSlots() bool {
	return len(u.Slots) > 0
}

// HasSlot reports whether the upload with the given id is tagged with the file type.
func (u UserFile) HasSlot(slotID string) bool {
	for _, slot := range u.Slots {
		if slot.ID == slotID {
			return true
		}
	}
	return false
}

// UnmarshalJSON is required because the embedded FileType would otherwise
// promote its own UnmarshalJSON and drop the slots.
func (u *UserFile) UnmarshalJSON(data []byte) error {
	if err := u.FileType.UnmarshalJSON(data); err != nil {
		return err
	}
	var v struct {
		Slots []FileUploadSlot `json:"slots"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	u.Slots = v.Slots
	return nil
}

// MarshalJSON flattens the embedded FileType next to the slots.
func (u UserFile) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name            string           `json:"name"`
		Fn              string           `json:"fn"`
		Rule            Rule             `json:"rule"`
		MoreInformation *MoreInformation `json:"moreInformation,omitempty"`
		Slots           []FileUploadSlot `json:"slots,omitempty"`
	}{u.Name, u.Fn, u.Rule, u.MoreInformation, u.Slots})
}
