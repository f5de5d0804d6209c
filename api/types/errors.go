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
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnknownCondition = errors.New("unknown rule condition")
	ErrUnknownOperator  = errors.New("unknown rule operator")
)

// ValidationType 校验失败类型，每种类型对应一个独立的用户可见错误
// ValidationType identifies which submission check failed.
type ValidationType string

const (
	// ValidationMinFileUploaded at least one file must be uploaded
	ValidationMinFileUploaded ValidationType = "minFileUploaded"
	// ValidationNonUploading no upload may still be in flight or failed
	ValidationNonUploading ValidationType = "nonUploading"
	// ValidationAllFilesTagged every upload must carry at least one tag
	ValidationAllFilesTagged ValidationType = "allFilesTagged"
	// ValidationAllRequiredFilesUploaded every required file type must have an upload
	ValidationAllRequiredFilesUploaded ValidationType = "allRequiredFilesUploaded"
)

// ValidationError is a recoverable, user-correctable submission failure.
type ValidationError struct {
	Type    ValidationType
	Message string
	// Slots maps slot id to a slot-scoped message. Only set for ValidationAllFilesTagged.
	Slots map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Slots) == 0 {
		return e.Message
	}
	ids := make([]string, 0, len(e.Slots))
	for id := range e.Slots {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var sb strings.Builder
	sb.WriteString(e.Message)
	for _, id := range ids {
		sb.WriteString("; ")
		sb.WriteString(e.Slots[id])
	}
	return sb.String()
}

// IsValidationType reports whether err is a ValidationError of type t.
func IsValidationType(err error, t ValidationType) bool {
	var v *ValidationError
	return errors.As(err, &v) && v.Type == t
}
