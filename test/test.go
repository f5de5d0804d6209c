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

// Package test provides fixtures and helpers shared by the package tests.
package test

import (
	"fmt"
	"strings"

	"github.com/theopensystemslab/planx-new-sub000/api/types"
)

// Rules 每种条件一个规则
// Rules holds one rule per condition. Conditional rules test "testFn" == "testVal".
var Rules = map[types.Condition]types.Rule{
	types.AlwaysRequired:    types.AlwaysRequiredRule{},
	types.AlwaysRecommended: types.AlwaysRecommendedRule{},
	types.RequiredIf:        types.NewRequiredIf("testFn", "testVal"),
	types.RecommendedIf:     types.NewRecommendedIf("testFn", "testVal"),
	types.NotRequired:       types.NotRequiredRule{},
}

// FileType returns a file type named and keyed after its condition,
// e.g. name "AlwaysRequired file", fn "alwaysRequired".
func FileType(condition types.Condition) types.FileType {
	fn := string(condition)
	return types.FileType{
		Name: fmt.Sprintf("%s file", condition),
		Fn:   strings.ToLower(fn[:1]) + fn[1:],
		Rule: Rules[condition],
	}
}

// FileTypes returns one file type per condition, most binding first.
func FileTypes() []types.FileType {
	fileTypes := make([]types.FileType, 0, len(types.Conditions))
	for _, c := range types.Conditions {
		fileTypes = append(fileTypes, FileType(c))
	}
	return fileTypes
}

// Slot 构造一个已成功上传的文件
// Slot returns a successfully uploaded slot whose file and url derive from id.
func Slot(id string) types.FileUploadSlot {
	return types.FileUploadSlot{
		ID: id,
		File: types.UploadedFile{
			Name: id + ".pdf",
			Path: id + ".pdf",
			Type: "application/pdf",
			Size: 1024,
		},
		Status:   types.StatusSuccess,
		Progress: 1,
		URL:      "https://uploads.example.com/" + id + ".pdf",
	}
}

// UploadingSlot returns a slot still in flight.
func UploadingSlot(id string) types.FileUploadSlot {
	slot := Slot(id)
	slot.Status = types.StatusUploading
	slot.Progress = 0.5
	slot.URL = ""
	return slot
}

// UserFile wraps a file type with the given slots.
func UserFile(fileType types.FileType, slots ...types.FileUploadSlot) types.UserFile {
	userFile := types.UserFile{FileType: fileType}
	if len(slots) > 0 {
		userFile.Slots = slots
	}
	return userFile
}
