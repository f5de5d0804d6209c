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
	"fmt"

	"github.com/theopensystemslab/planx-new-sub000/api/types"
)

const (
	MessageMinFileUploaded          = "Upload at least one file"
	MessageNonUploading             = "Wait for all files to finish uploading and remove any that failed"
	MessageAllFilesTagged           = "Please tag all files"
	MessageSlotNotTagged            = "File %s is not labelled"
	MessageAllRequiredFilesUploaded = "Please upload and label all required files"
)

// Validate runs the submission checks in order and returns the first failure
// as a *types.ValidationError, or nil.
func Validate(slots []types.FileUploadSlot, fileList types.FileList) error {
	if err := ValidateSlots(slots, fileList); err != nil {
		return err
	}
	if err := ValidateFileLabels(fileList, slots); err != nil {
		return err
	}
	return ValidateFileList(fileList)
}

// ValidateAll runs every submission check and returns all failures.
func ValidateAll(slots []types.FileUploadSlot, fileList types.FileList) []*types.ValidationError {
	var errs []*types.ValidationError
	for _, err := range []*types.ValidationError{
		validateSlots(slots, fileList),
		validateFileLabels(fileList, slots),
		validateFileList(fileList),
	} {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// ValidateSlots checks that at least one upload succeeded, unless only
// optional file types are shown, and that no upload is in flight or failed.
func ValidateSlots(slots []types.FileUploadSlot, fileList types.FileList) error {
	if err := validateSlots(slots, fileList); err != nil {
		return err
	}
	return nil
}

// ValidateFileLabels checks that every upload is tagged with at least one file type.
// The returned error maps each untagged slot id to its own message.
func ValidateFileLabels(fileList types.FileList, slots []types.FileUploadSlot) error {
	if err := validateFileLabels(fileList, slots); err != nil {
		return err
	}
	return nil
}

// ValidateFileList checks that every required file type has at least one upload.
func ValidateFileList(fileList types.FileList) error {
	if err := validateFileList(fileList); err != nil {
		return err
	}
	return nil
}

func validateSlots(slots []types.FileUploadSlot, fileList types.FileList) *types.ValidationError {
	uploaded := 0
	pending := false
	for _, slot := range slots {
		if slot.Status == types.StatusSuccess {
			uploaded++
		} else {
			pending = true
		}
	}
	mandatory := len(fileList.Required) > 0 || len(fileList.Recommended) > 0
	if mandatory && uploaded == 0 && !pending {
		return &types.ValidationError{Type: types.ValidationMinFileUploaded, Message: MessageMinFileUploaded}
	}
	if pending {
		return &types.ValidationError{Type: types.ValidationNonUploading, Message: MessageNonUploading}
	}
	return nil
}

func validateFileLabels(fileList types.FileList, slots []types.FileUploadSlot) *types.ValidationError {
	untagged := make(map[string]string)
	for _, slot := range slots {
		if len(GetTagsForSlot(slot.ID, fileList)) == 0 {
			untagged[slot.ID] = fmt.Sprintf(MessageSlotNotTagged, slot.File.DisplayName())
		}
	}
	if len(untagged) == 0 {
		return nil
	}
	return &types.ValidationError{Type: types.ValidationAllFilesTagged, Message: MessageAllFilesTagged, Slots: untagged}
}

func validateFileList(fileList types.FileList) *types.ValidationError {
	if IsRequirementSatisfied(fileList) {
		return nil
	}
	return &types.ValidationError{Type: types.ValidationAllRequiredFilesUploaded, Message: MessageAllRequiredFilesUploaded}
}
