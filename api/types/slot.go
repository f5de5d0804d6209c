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

// SlotStatus 上传状态
// SlotStatus is the state of an upload as reported by the upload subsystem.
type SlotStatus string

const (
	StatusUploading SlotStatus = "uploading"
	StatusSuccess   SlotStatus = "success"
	StatusError     SlotStatus = "error"
)

// UploadedFile describes the local file behind an upload slot.
type UploadedFile struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name"`
	Path string `json:"path,omitempty" yaml:"path,omitempty" mapstructure:"path"`
	Type string `json:"type,omitempty" yaml:"type,omitempty" mapstructure:"type"`
	Size int64  `json:"size,omitempty" yaml:"size,omitempty" mapstructure:"size"`
}

// DisplayName returns the file name, falling back to its path.
func (f UploadedFile) DisplayName() string {
	if f.Name != "" {
		return f.Name
	}
	return f.Path
}

// FileUploadSlot 上传子系统产生的上传记录，引擎只做关联，不创建也不上传
// FileUploadSlot is an upload record owned by the upload subsystem.
// The engine only associates slots with file types; it never creates or uploads them.
type FileUploadSlot struct {
	ID       string       `json:"id" yaml:"id" mapstructure:"id"`
	File     UploadedFile `json:"file" yaml:"file" mapstructure:"file"`
	Status   SlotStatus   `json:"status" yaml:"status" mapstructure:"status"`
	Progress float64      `json:"progress" yaml:"progress" mapstructure:"progress"`
	URL      string       `json:"url,omitempty" yaml:"url,omitempty" mapstructure:"url"`
}

// Uploaded reports whether the upload finished successfully and has a url.
func (s FileUploadSlot) Uploaded() bool {
	return s.Status == StatusSuccess && s.URL != ""
}

// Cached returns the slot as persisted in a submission. Only the path, type
// and size of the local file are kept.
func (s FileUploadSlot) Cached() FileUploadSlot {
	s.File = UploadedFile{Path: s.File.Path, Type: s.File.Type, Size: s.File.Size}
	return s
}
