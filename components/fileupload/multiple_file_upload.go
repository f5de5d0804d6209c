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

package fileupload

//流程节点内容示例：
//{
//  "title": "Upload your drawings",
//  "fn": "otherDrawings",
//  "fileTypes": []
//}
import (
	"errors"

	"github.com/theopensystemslab/planx-new-sub000/api/types"
	"github.com/theopensystemslab/planx-new-sub000/engine"
)

// DefaultMultipleFileUploadTitle the title a new MultipleFileUpload node starts with
const DefaultMultipleFileUploadTitle = "Multiple file upload"

func init() {
	Registry.Add(&MultipleFileUpload{})
}

// MultipleFileUploadConfiguration 节点内容
type MultipleFileUploadConfiguration struct {
	Title       string `json:"title" yaml:"title" mapstructure:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	// Fn passport key every upload is persisted under
	Fn string `json:"fn" yaml:"fn" mapstructure:"fn"`
	// FileTypes 可选，仅用于展示
	FileTypes             []types.FileType `json:"fileTypes,omitempty" yaml:"fileTypes,omitempty" mapstructure:"fileTypes"`
	types.MoreInformation `yaml:",inline" mapstructure:",squash"`
}

// Validate checks the authoring shape of the content.
func (c MultipleFileUploadConfiguration) Validate() error {
	if c.Title == "" {
		return errors.New("title is a required field")
	}
	if c.Fn == "" {
		return errors.New("fn is a required field")
	}
	return validateFileTypes(c.FileTypes)
}

// MultipleFileUpload 上传多个文件，不打标签
// Uploads are collected under Config.Fn without being associated with file types.
type MultipleFileUpload struct {
	//节点内容
	Config MultipleFileUploadConfiguration
	engine *engine.Engine
}

// Type 组件类型
func (x *MultipleFileUpload) Type() string {
	return "MultipleFileUpload"
}

func (x *MultipleFileUpload) New() types.Component {
	return &MultipleFileUpload{Config: MultipleFileUploadConfiguration{
		Title: DefaultMultipleFileUploadTitle,
	}}
}

// Init 初始化
func (x *MultipleFileUpload) Init(config types.Config, content types.Configuration) error {
	if err := decodeContent(content, &x.Config); err != nil {
		return err
	}
	if err := x.Config.Validate(); err != nil {
		return err
	}
	x.engine = engine.NewWithConfig(config)
	return nil
}

func (x *MultipleFileUpload) getEngine() *engine.Engine {
	if x.engine == nil {
		x.engine = engine.New()
	}
	return x.engine
}

// FileList classifies the file types of the content for display.
func (x *MultipleFileUpload) FileList(passport types.Passport) types.FileList {
	return x.getEngine().Classify(passport, x.Config.FileTypes)
}

// Recover returns the uploads of a previous submission.
func (x *MultipleFileUpload) Recover(previous *types.UserData) []types.FileUploadSlot {
	return engine.GetRecoveredSlots(previous, x.Config.Fn)
}

// Ready reports whether every upload finished successfully.
func Ready(slots []types.FileUploadSlot) bool {
	for _, slot := range slots {
		if !slot.Uploaded() {
			return false
		}
	}
	return true
}

// Submit checks that there is at least one upload and none is still in
// flight, then returns the record to persist.
func (x *MultipleFileUpload) Submit(slots []types.FileUploadSlot) (*types.UserData, error) {
	if len(slots) == 0 || anyUploading(slots) {
		return nil, &types.ValidationError{Type: types.ValidationNonUploading, Message: engine.MessageMinFileUploaded}
	}
	entries := make([]types.FormattedUserFile, 0, len(slots))
	for _, slot := range slots {
		filename := slot.File.Path
		if filename == "" {
			filename = slot.File.Name
		}
		entries = append(entries, types.FormattedUserFile{URL: slot.URL, Filename: filename, CachedSlot: slot.Cached()})
	}
	payload := types.NewUserData()
	payload.Data[x.Config.Fn] = entries
	return payload, nil
}

func anyUploading(slots []types.FileUploadSlot) bool {
	for _, slot := range slots {
		if slot.Status == types.StatusUploading {
			return true
		}
	}
	return false
}
