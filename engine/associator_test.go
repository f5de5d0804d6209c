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

package engine

import (
	"testing"

	"github.com/theopensystemslab/planx-new-sub000/api/types"
	"github.com/theopensystemslab/planx-new-sub000/test"
	"github.com/theopensystemslab/planx-new-sub000/test/assert"
)

func taggingFileList() types.FileList {
	return types.FileList{
		Required: []types.UserFile{
			test.UserFile(types.FileType{Name: "Floor plan", Fn: "floorPlan", Rule: types.AlwaysRequiredRule{}}),
			test.UserFile(types.FileType{Name: "Site plan", Fn: "sitePlan", Rule: types.AlwaysRequiredRule{}}),
		},
		Recommended: []types.UserFile{
			test.UserFile(types.FileType{Name: "Photographs", Fn: "photos", Rule: types.AlwaysRecommendedRule{}}),
		},
		Optional: []types.UserFile{
			test.UserFile(types.FileType{Name: "Heritage statement", Fn: "heritage", Rule: types.NotRequiredRule{}}),
		},
	}
}

func TestAddOrAppendSlots(t *testing.T) {
	fileList := taggingFileList()
	slot := test.Slot("a")

	result := AddOrAppendSlots([]string{"Floor plan", "Site plan"}, slot, fileList)
	assert.Equal(t, []types.FileUploadSlot{slot}, result.Required[0].Slots)
	assert.Equal(t, []types.FileUploadSlot{slot}, result.Required[1].Slots)
	assert.Nil(t, result.Recommended[0].Slots)
	assert.Equal(t, []string{"Floor plan", "Site plan"}, GetTagsForSlot("a", result))

	// input untouched
	assert.Nil(t, fileList.Required[0].Slots)
	assert.Nil(t, fileList.Required[1].Slots)
}

func TestAddOrAppendSlotsAppends(t *testing.T) {
	first, second := test.Slot("a"), test.Slot("b")
	fileList := AddOrAppendSlots([]string{"Photographs"}, first, taggingFileList())
	result := AddOrAppendSlots([]string{"Photographs"}, second, fileList)

	assert.Equal(t, []types.FileUploadSlot{first, second}, result.Recommended[0].Slots)
	assert.Equal(t, []types.FileUploadSlot{first}, fileList.Recommended[0].Slots)
}

func TestAddOrAppendSlotsIdempotent(t *testing.T) {
	slot := test.Slot("a")
	once := AddOrAppendSlots([]string{"Floor plan"}, slot, taggingFileList())
	twice := AddOrAppendSlots([]string{"Floor plan"}, slot, once)
	assert.Equal(t, once, twice)
}

func TestAddOrAppendSlotsUnknownTag(t *testing.T) {
	fileList := taggingFileList()
	result := AddOrAppendSlots([]string{"Not a file type"}, test.Slot("a"), fileList)
	assert.Equal(t, fileList, result)
	assert.Equal(t, []string{}, GetTagsForSlot("a", result))
}

func TestRemoveSlots(t *testing.T) {
	a, b := test.Slot("a"), test.Slot("b")
	fileList := AddOrAppendSlots([]string{"Floor plan", "Site plan"}, a, taggingFileList())
	fileList = AddOrAppendSlots([]string{"Site plan"}, b, fileList)

	result := RemoveSlots([]string{"Floor plan", "Site plan"}, a, fileList)
	// emptied, not reset
	assert.NotNil(t, result.Required[0].Slots)
	assert.Equal(t, 0, len(result.Required[0].Slots))
	assert.False(t, result.Required[0].HasSlots())
	assert.Equal(t, []types.FileUploadSlot{b}, result.Required[1].Slots)
	assert.Equal(t, []string{}, GetTagsForSlot("a", result))

	assert.Equal(t, []string{"Floor plan", "Site plan"}, GetTagsForSlot("a", fileList))
}

func TestRemoveSlotsUntagged(t *testing.T) {
	fileList := taggingFileList()
	result := RemoveSlots([]string{"Floor plan"}, test.Slot("a"), fileList)
	assert.Nil(t, result.Required[0].Slots)
}

func TestResetAllSlots(t *testing.T) {
	fileList := AddOrAppendSlots([]string{"Floor plan", "Photographs", "Heritage statement"}, test.Slot("a"), taggingFileList())
	fileList = RemoveSlots([]string{"Heritage statement"}, test.Slot("a"), fileList)

	result := ResetAllSlots(fileList)
	assert.Equal(t, taggingFileList(), result)
	assert.Equal(t, []string{"Floor plan", "Photographs"}, GetTagsForSlot("a", fileList))
}

func TestSetTagsForSlot(t *testing.T) {
	slot := test.Slot("a")
	fileList := AddOrAppendSlots([]string{"Floor plan", "Photographs"}, slot, taggingFileList())

	result := SetTagsForSlot([]string{"Photographs", "Heritage statement"}, slot, fileList)
	assert.Equal(t, []string{"Photographs", "Heritage statement"}, GetTagsForSlot("a", result))
	assert.Equal(t, []types.FileUploadSlot{slot}, result.Recommended[0].Slots)

	result = SetTagsForSlot(nil, slot, result)
	assert.Equal(t, []string{}, GetTagsForSlot("a", result))
}

func TestUpdateSlot(t *testing.T) {
	uploading := test.UploadingSlot("a")
	fileList := AddOrAppendSlots([]string{"Floor plan", "Photographs"}, uploading, taggingFileList())
	fileList = AddOrAppendSlots([]string{"Floor plan"}, test.Slot("b"), fileList)

	done := test.Slot("a")
	result, ok := UpdateSlot(done, fileList)
	assert.True(t, ok)
	assert.Equal(t, []types.FileUploadSlot{done, test.Slot("b")}, result.Required[0].Slots)
	assert.Equal(t, []types.FileUploadSlot{done}, result.Recommended[0].Slots)
	assert.Equal(t, uploading, fileList.Required[0].Slots[0])

	_, ok = UpdateSlot(test.Slot("gone"), fileList)
	assert.False(t, ok)
}

// taggedFileList is taggingFileList with a and b tagged on several file types
// and a still uploading.
func taggedFileList() types.FileList {
	fileList := AddOrAppendSlots([]string{"Floor plan", "Photographs"}, test.UploadingSlot("a"), taggingFileList())
	return AddOrAppendSlots([]string{"Floor plan", "Heritage statement"}, test.Slot("b"), fileList)
}

func TestOperationsLeaveInputUntouched(t *testing.T) {
	var tests = []struct {
		name string
		op   func(types.FileList) types.FileList
	}{
		{"RemoveSlots", func(fileList types.FileList) types.FileList {
			return RemoveSlots([]string{"Floor plan", "Photographs"}, test.Slot("a"), fileList)
		}},
		{"ResetAllSlots", ResetAllSlots},
		{"SetTagsForSlot", func(fileList types.FileList) types.FileList {
			return SetTagsForSlot([]string{"Site plan"}, test.Slot("b"), fileList)
		}},
		{"UpdateSlot", func(fileList types.FileList) types.FileList {
			result, _ := UpdateSlot(test.Slot("a"), fileList)
			return result
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileList := taggedFileList()
			result := tt.op(fileList)
			assert.NotEqual(t, taggedFileList(), result)
			assert.Equal(t, taggedFileList(), fileList)
		})
	}
}

func TestIsRequirementSatisfied(t *testing.T) {
	fileList := taggingFileList()
	assert.False(t, IsRequirementSatisfied(fileList))
	assert.Equal(t, []string{"Floor plan", "Site plan"}, MissingRequired(fileList))

	fileList = AddOrAppendSlots([]string{"Floor plan"}, test.Slot("a"), fileList)
	assert.False(t, IsRequirementSatisfied(fileList))
	assert.Equal(t, []string{"Site plan"}, MissingRequired(fileList))

	fileList = AddOrAppendSlots([]string{"Site plan"}, test.Slot("b"), fileList)
	assert.True(t, IsRequirementSatisfied(fileList))
	assert.Nil(t, MissingRequired(fileList))

	// recommended and optional never block
	assert.True(t, IsRequirementSatisfied(types.FileList{Recommended: taggingFileList().Recommended}))
}

func TestIsRequirementSatisfiedAfterUntag(t *testing.T) {
	slot := test.Slot("a")
	fileList := AddOrAppendSlots([]string{"Floor plan", "Site plan"}, slot, taggingFileList())
	assert.True(t, IsRequirementSatisfied(fileList))

	fileList = RemoveSlots([]string{"Site plan"}, slot, fileList)
	assert.False(t, IsRequirementSatisfied(fileList))
}
