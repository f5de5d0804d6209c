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

// 以下函数均不修改入参，返回新的 FileList。未改动的 UserFile 与入参共享 Slots，
// 被改动的 UserFile 总是得到新分配的 Slots（写时复制）。
//
// None of the functions below modify their input. Buckets are always new
// slices; a UserFile whose slots change gets a freshly allocated Slots slice,
// untouched ones share it with the input (copy-on-write).

// GetTagsForSlot returns the name of every file type the slot is tagged with,
// in bucket order then insertion order.
func GetTagsForSlot(slotID string, fileList types.FileList) []string {
	tags := []string{}
	for _, userFile := range fileList.All() {
		if userFile.HasSlot(slotID) {
			tags = append(tags, userFile.Name)
		}
	}
	return tags
}

// AddOrAppendSlots tags the slot with every file type named in tags.
// Tags that match no file type are ignored; a slot already tagged with a file
// type is not added twice.
func AddOrAppendSlots(tags []string, slot types.FileUploadSlot, fileList types.FileList) types.FileList {
	wanted := toSet(tags)
	return mapUserFiles(fileList, func(userFile types.UserFile) types.UserFile {
		if _, ok := wanted[userFile.Name]; !ok || userFile.HasSlot(slot.ID) {
			return userFile
		}
		slots := make([]types.FileUploadSlot, len(userFile.Slots), len(userFile.Slots)+1)
		copy(slots, userFile.Slots)
		userFile.Slots = append(slots, slot)
		return userFile
	})
}

// RemoveSlots untags the slot from every file type named in tags. A file type
// left without slots keeps an empty, non-nil Slots.
func RemoveSlots(tags []string, slot types.FileUploadSlot, fileList types.FileList) types.FileList {
	wanted := toSet(tags)
	return mapUserFiles(fileList, func(userFile types.UserFile) types.UserFile {
		if _, ok := wanted[userFile.Name]; !ok || !userFile.HasSlot(slot.ID) {
			return userFile
		}
		slots := make([]types.FileUploadSlot, 0, len(userFile.Slots))
		for _, item := range userFile.Slots {
			if item.ID != slot.ID {
				slots = append(slots, item)
			}
		}
		userFile.Slots = slots
		return userFile
	})
}

// ResetAllSlots strips the slots from every file type.
func ResetAllSlots(fileList types.FileList) types.FileList {
	return mapUserFiles(fileList, func(userFile types.UserFile) types.UserFile {
		if userFile.Slots == nil {
			return userFile
		}
		userFile.Slots = nil
		return userFile
	})
}

// SetTagsForSlot makes tags the exact tag set of the slot: it is untagged from
// file types no longer listed and tagged with the new ones.
func SetTagsForSlot(tags []string, slot types.FileUploadSlot, fileList types.FileList) types.FileList {
	wanted := toSet(tags)
	var stale []string
	for _, tag := range GetTagsForSlot(slot.ID, fileList) {
		if _, ok := wanted[tag]; !ok {
			stale = append(stale, tag)
		}
	}
	return AddOrAppendSlots(tags, slot, RemoveSlots(stale, slot, fileList))
}

// UpdateSlot replaces the slot with the same id wherever it is tagged, used
// when its status, progress or url changes. ok is false when no file type holds it.
func UpdateSlot(slot types.FileUploadSlot, fileList types.FileList) (result types.FileList, ok bool) {
	result = mapUserFiles(fileList, func(userFile types.UserFile) types.UserFile {
		if !userFile.HasSlot(slot.ID) {
			return userFile
		}
		slots := make([]types.FileUploadSlot, len(userFile.Slots))
		for i, item := range userFile.Slots {
			if item.ID == slot.ID {
				item = slot
			}
			slots[i] = item
		}
		userFile.Slots = slots
		ok = true
		return userFile
	})
	return result, ok
}

// IsRequirementSatisfied reports whether every required file type has at least one slot.
// Recommended and optional file types never block.
func IsRequirementSatisfied(fileList types.FileList) bool {
	return len(MissingRequired(fileList)) == 0
}

// MissingRequired returns the names of required file types without slots.
func MissingRequired(fileList types.FileList) []string {
	var missing []string
	for _, userFile := range fileList.Required {
		if !userFile.HasSlots() {
			missing = append(missing, userFile.Name)
		}
	}
	return missing
}

// mapUserFiles applies fn to every user file and returns a FileList with new
// bucket slices.
func mapUserFiles(fileList types.FileList, fn func(types.UserFile) types.UserFile) types.FileList {
	result := fileList
	for _, c := range types.Categories {
		bucket := fileList.Bucket(c)
		if bucket == nil {
			continue
		}
		updated := make([]types.UserFile, len(bucket))
		for i, userFile := range bucket {
			updated[i] = fn(userFile)
		}
		result = result.WithBucket(c, updated)
	}
	return result
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
