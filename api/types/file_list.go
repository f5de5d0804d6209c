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

// Category 文件列表分组
// Category names one bucket of a FileList.
type Category string

const (
	CategoryRequired    Category = "required"
	CategoryRecommended Category = "recommended"
	CategoryOptional    Category = "optional"
)

// Categories lists the buckets in display order.
var Categories = []Category{CategoryRequired, CategoryRecommended, CategoryOptional}

// FileList 按要求程度分组的文件类型列表
// FileList is the live tagging state: file types bucketed by requirement.
// A name appears in at most one bucket.
type FileList struct {
	Required    []UserFile `json:"required" yaml:"required" mapstructure:"required"`
	Recommended []UserFile `json:"recommended" yaml:"recommended" mapstructure:"recommended"`
	Optional    []UserFile `json:"optional" yaml:"optional" mapstructure:"optional"`
}

// NewFileList returns a FileList with three empty, non-nil buckets.
func NewFileList() FileList {
	return FileList{Required: []UserFile{}, Recommended: []UserFile{}, Optional: []UserFile{}}
}

// Bucket returns the user files in the given category.
func (l FileList) Bucket(c Category) []UserFile {
	switch c {
	case CategoryRequired:
		return l.Required
	case CategoryRecommended:
		return l.Recommended
	case CategoryOptional:
		return l.Optional
	}
	return nil
}

// WithBucket returns a copy of l whose category c is replaced by files.
func (l FileList) WithBucket(c Category, files []UserFile) FileList {
	switch c {
	case CategoryRequired:
		l.Required = files
	case CategoryRecommended:
		l.Recommended = files
	case CategoryOptional:
		l.Optional = files
	}
	return l
}

// All returns every user file in bucket order.
func (l FileList) All() []UserFile {
	all := make([]UserFile, 0, len(l.Required)+len(l.Recommended)+len(l.Optional))
	all = append(all, l.Required...)
	all = append(all, l.Recommended...)
	return append(all, l.Optional...)
}

// Names returns the names in the given category.
func (l FileList) Names(c Category) []string {
	bucket := l.Bucket(c)
	names := make([]string, 0, len(bucket))
	for _, item := range bucket {
		names = append(names, item.Name)
	}
	return names
}

// Len returns the number of file types across all buckets.
func (l FileList) Len() int {
	return len(l.Required) + len(l.Recommended) + len(l.Optional)
}
