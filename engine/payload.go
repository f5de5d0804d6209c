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
	"github.com/theopensystemslab/planx-new-sub000/api/types"
)

// GeneratePayload 把已打标签的上传文件整理为持久化记录
// GeneratePayload projects the tagged uploads into the persisted record.
//
// Every user file with at least one slot writes one entry per slot under its
// fn. User files sharing an fn are merged into the same list, in bucket order.
// User files without slots are left out. Validation is not done here.
func GeneratePayload(fileList types.FileList) *types.UserData {
	payload := types.NewUserData()
	for _, userFile := range fileList.All() {
		if !userFile.HasSlots() {
			continue
		}
		payload.Data[userFile.Fn] = append(payload.Data[userFile.Fn], formatUserFile(userFile)...)
	}
	return payload
}

func formatUserFile(userFile types.UserFile) []types.FormattedUserFile {
	formatted := make([]types.FormattedUserFile, 0, len(userFile.Slots))
	for _, slot := range userFile.Slots {
		formatted = append(formatted, types.FormattedUserFile{
			Name:       userFile.Name,
			Rule:       userFile.Rule,
			URL:        slot.URL,
			Filename:   slot.File.DisplayName(),
			CachedSlot: slot.Cached(),
		})
	}
	return formatted
}

// RecoveredData is the state restored when a user returns to the node.
type RecoveredData struct {
	// Slots every recovered upload once, in first seen order
	Slots []types.FileUploadSlot
	// FileList the freshly classified list with recovered tags
	FileList types.FileList
}

// GetRecoveredData 在重新分类后的列表上恢复之前提交的标签关联
// GetRecoveredData restores the tags of a previous submission onto a freshly
// classified FileList.
//
// Classification is re-derived from the current passport, so file types may
// have appeared or disappeared since the submission. For every user file
// still present, the entries persisted under its fn are attached as slots.
// Entries carrying a name are only attached to the file type of that name;
// entries without one (older payloads) go to every file type sharing the fn.
func GetRecoveredData(previous *types.UserData, fileList types.FileList) RecoveredData {
	seen := make(map[string]struct{})
	slots := []types.FileUploadSlot{}

	recovered := mapUserFiles(fileList, func(userFile types.UserFile) types.UserFile {
		cached, ok := cachedSlots(previous, userFile)
		if !ok {
			return userFile
		}
		userFile.Slots = cached
		for _, slot := range cached {
			if _, dup := seen[slot.ID]; dup {
				continue
			}
			seen[slot.ID] = struct{}{}
			slots = append(slots, slot)
		}
		return userFile
	})
	return RecoveredData{Slots: slots, FileList: recovered}
}

// cachedSlots returns the slots persisted for userFile, de-duplicated by id.
// ok is false when nothing was persisted under its fn.
func cachedSlots(previous *types.UserData, userFile types.UserFile) ([]types.FileUploadSlot, bool) {
	entries, ok := previous.Get(userFile.Fn)
	if !ok {
		return nil, false
	}
	seen := make(map[string]struct{}, len(entries))
	slots := make([]types.FileUploadSlot, 0, len(entries))
	for _, entry := range entries {
		if entry.Name != "" && entry.Name != userFile.Name {
			continue
		}
		if _, dup := seen[entry.CachedSlot.ID]; dup {
			continue
		}
		seen[entry.CachedSlot.ID] = struct{}{}
		slots = append(slots, entry.CachedSlot)
	}
	if len(slots) == 0 && len(entries) > 0 {
		// everything under fn belongs to other file types
		return nil, false
	}
	return slots, true
}

// GetRecoveredSlots returns the uploads persisted under fn by a component that
// does not tag its uploads.
func GetRecoveredSlots(previous *types.UserData, fn string) []types.FileUploadSlot {
	entries, _ := previous.Get(fn)
	slots := make([]types.FileUploadSlot, 0, len(entries))
	for _, entry := range entries {
		slots = append(slots, entry.CachedSlot)
	}
	return slots
}
