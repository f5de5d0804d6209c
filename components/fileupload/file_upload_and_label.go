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
//  "title": "Upload and label",
//  "description": "Upload the drawings for your project",
//  "hideDropZone": false,
//  "fileTypes": [
//    {"name": "Site plan", "fn": "sitePlan", "rule": {"condition": "AlwaysRequired"}},
//    {"name": "Heritage statement", "fn": "heritageStatement", "rule": {"condition": "NotRequired"}}
//  ]
//}
import (
	"errors"

	"github.com/theopensystemslab/planx-new-sub000/api/types"
	"github.com/theopensystemslab/planx-new-sub000/engine"
)

// DefaultFileUploadAndLabelTitle the title a new FileUploadAndLabel node starts with
const DefaultFileUploadAndLabelTitle = "Upload and label"

func init() {
	Registry.Add(&FileUploadAndLabel{})
}

// FileUploadAndLabelConfiguration 节点内容
type FileUploadAndLabelConfiguration struct {
	Title       string `json:"title" yaml:"title" mapstructure:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	// Fn 可选，payload 按文件类型的 fn 分组
	Fn        string           `json:"fn,omitempty" yaml:"fn,omitempty" mapstructure:"fn"`
	FileTypes []types.FileType `json:"fileTypes" yaml:"fileTypes" mapstructure:"fileTypes"`
	// HideDropZone 仅展示文件要求，不接受上传
	HideDropZone          bool `json:"hideDropZone,omitempty" yaml:"hideDropZone,omitempty" mapstructure:"hideDropZone"`
	types.MoreInformation `yaml:",inline" mapstructure:",squash"`
}

// NewFileUploadAndLabelConfiguration returns the content a new node starts with
// in the editor: the default title and one empty AlwaysRequired file type.
func NewFileUploadAndLabelConfiguration() FileUploadAndLabelConfiguration {
	return FileUploadAndLabelConfiguration{
		Title:     DefaultFileUploadAndLabelTitle,
		FileTypes: []types.FileType{types.NewFileType()},
	}
}

// Validate checks the authoring shape of the content.
func (c FileUploadAndLabelConfiguration) Validate() error {
	if c.Title == "" {
		return errors.New("title is a required field")
	}
	if len(c.FileTypes) == 0 {
		return errors.New("fileTypes field must have at least 1 items")
	}
	return validateFileTypes(c.FileTypes)
}

// State 组件运行时状态
// State is the live state of a FileUploadAndLabel node.
type State struct {
	// Slots every upload, most recent first
	Slots []types.FileUploadSlot
	// FileList the classified file types and the uploads tagged with them
	FileList types.FileList
	// Returning is set when the state was recovered from a previous submission
	Returning bool
}

// FileUploadAndLabel 上传文件并为每个文件打上文件类型标签
// Uploads are tagged with the file types the passport made required,
// recommended or optional; submission checks that every upload is tagged and
// every required file type has at least one upload.
type FileUploadAndLabel struct {
	//节点内容
	Config FileUploadAndLabelConfiguration
	engine *engine.Engine
}

// Type 组件类型
func (x *FileUploadAndLabel) Type() string {
	return "FileUploadAndLabel"
}

func (x *FileUploadAndLabel) New() types.Component {
	return &FileUploadAndLabel{Config: FileUploadAndLabelConfiguration{
		Title: DefaultFileUploadAndLabelTitle,
	}}
}

// Init 初始化
func (x *FileUploadAndLabel) Init(config types.Config, content types.Configuration) error {
	if err := decodeContent(content, &x.Config); err != nil {
		return err
	}
	if err := x.Config.Validate(); err != nil {
		return err
	}
	x.engine = engine.NewWithConfig(config)
	return nil
}

func (x *FileUploadAndLabel) getEngine() *engine.Engine {
	if x.engine == nil {
		x.engine = engine.New()
	}
	return x.engine
}

// Mount classifies the file types for the passport and, when the node was
// submitted before, restores its uploads and tags.
func (x *FileUploadAndLabel) Mount(passport types.Passport, previous *types.UserData) State {
	fileList := x.getEngine().Classify(passport, x.Config.FileTypes)
	if previous == nil {
		return State{Slots: []types.FileUploadSlot{}, FileList: fileList}
	}
	recovered := x.getEngine().Recover(previous, fileList)
	return State{Slots: recovered.Slots, FileList: recovered.FileList, Returning: true}
}

// Upload adds a new upload at the top of the list. A slot without id gets one
// from the configured id generator; a slot already in state is updated instead.
func (x *FileUploadAndLabel) Upload(state State, slot types.FileUploadSlot) State {
	if slot.ID == "" {
		slot.ID = x.getEngine().NewSlotID()
	}
	if indexOfSlot(state.Slots, slot.ID) >= 0 {
		state, _ = x.UpdateSlot(state, slot)
		return state
	}
	slots := make([]types.FileUploadSlot, 0, len(state.Slots)+1)
	slots = append(slots, slot)
	state.Slots = append(slots, state.Slots...)
	state.Returning = false
	return state
}

// UpdateSlot applies a status, progress or url change of an upload to the
// state and every file type tagged with it.
// An upload that is no longer in state (deleted while in flight) is discarded
// and ok is false.
func (x *FileUploadAndLabel) UpdateSlot(state State, slot types.FileUploadSlot) (result State, ok bool) {
	i := indexOfSlot(state.Slots, slot.ID)
	if i < 0 {
		return state, false
	}
	slots := make([]types.FileUploadSlot, len(state.Slots))
	copy(slots, state.Slots)
	slots[i] = slot
	state.Slots = slots
	state.FileList, _ = engine.UpdateSlot(slot, state.FileList)
	return state, true
}

// Tag makes tags the exact set of file types the upload is tagged with.
// ok is false when the upload is not in state.
func (x *FileUploadAndLabel) Tag(state State, slotID string, tags []string) (State, bool) {
	i := indexOfSlot(state.Slots, slotID)
	if i < 0 {
		return state, false
	}
	state.FileList = engine.SetTagsForSlot(tags, state.Slots[i], state.FileList)
	return state, true
}

// Tags returns the file types the upload is tagged with.
func (x *FileUploadAndLabel) Tags(state State, slotID string) []string {
	return engine.GetTagsForSlot(slotID, state.FileList)
}

// Delete removes the upload and all its tags.
func (x *FileUploadAndLabel) Delete(state State, slotID string) State {
	i := indexOfSlot(state.Slots, slotID)
	if i < 0 {
		return state
	}
	slot := state.Slots[i]
	slots := make([]types.FileUploadSlot, 0, len(state.Slots)-1)
	slots = append(slots, state.Slots[:i]...)
	state.Slots = append(slots, state.Slots[i+1:]...)
	state.FileList = engine.RemoveSlots(engine.GetTagsForSlot(slotID, state.FileList), slot, state.FileList)
	return state
}

// Submit validates the state and returns the record to persist.
// The error is a *types.ValidationError. In information-only mode
// (HideDropZone) nothing is validated or persisted and the record is nil.
func (x *FileUploadAndLabel) Submit(state State) (*types.UserData, error) {
	if x.Config.HideDropZone {
		return nil, nil
	}
	if err := x.getEngine().Validate(state.Slots, state.FileList); err != nil {
		return nil, err
	}
	return engine.GeneratePayload(state.FileList), nil
}

// VisibleCategories returns the categories shown to the user, in display order.
// All categories are shown in information-only mode. Otherwise required and
// recommended are shown when not empty, and optional only when it is all there is.
func (x *FileUploadAndLabel) VisibleCategories(fileList types.FileList) []types.Category {
	if x.Config.HideDropZone {
		return append([]types.Category(nil), types.Categories...)
	}
	var visible []types.Category
	for _, c := range types.Categories {
		switch c {
		case types.CategoryOptional:
			if len(fileList.Required) == 0 && len(fileList.Recommended) == 0 {
				visible = append(visible, c)
			}
		default:
			if len(fileList.Bucket(c)) > 0 {
				visible = append(visible, c)
			}
		}
	}
	return visible
}
