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

import (
	"fmt"

	"github.com/theopensystemslab/planx-new-sub000/api/types"
	"github.com/theopensystemslab/planx-new-sub000/utils/maps"
)

// Registry 文件上传组件注册器
var Registry = &types.SafeComponentSlice{}

// decodeContent decodes flow node content into target, parsing rule maps into
// the types.Rule union.
func decodeContent(content types.Configuration, target interface{}) error {
	if err := maps.Decode(map[string]interface{}(content), target, types.RuleHookFunc()); err != nil {
		return fmt.Errorf("invalid content: %w", err)
	}
	return nil
}

func validateFileTypes(fileTypes []types.FileType) error {
	for i, fileType := range fileTypes {
		if err := fileType.Validate(); err != nil {
			return fmt.Errorf("fileTypes[%d].%w", i, err)
		}
	}
	return nil
}

func indexOfSlot(slots []types.FileUploadSlot, slotID string) int {
	for i, slot := range slots {
		if slot.ID == slotID {
			return i
		}
	}
	return -1
}
