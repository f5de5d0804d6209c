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

package filetag

import (
	"bytes"
	"go/format"
	"os"
	"testing"

	"github.com/theopensystemslab/planx-new-sub000/test/assert"
	"github.com/theopensystemslab/planx-new-sub000/utils/fs"
)

// 源文件须已 gofmt，版权头须是本项目的
func TestSourceFormat(t *testing.T) {
	paths, err := fs.GetFilePaths("*.go", "_*", "testdata")
	assert.Nil(t, err)
	assert.True(t, len(paths) > 0)
	for _, path := range paths {
		src, err := os.ReadFile(path)
		assert.Nil(t, err)
		formatted, err := format.Source(src)
		assert.Nil(t, err, path)
		assert.True(t, bytes.Equal(src, formatted), "%s is not gofmt-ed", path)
		if bytes.Contains(src, []byte("Copyright")) {
			assert.True(t, bytes.Contains(src, []byte("The PlanX Authors.")), "%s: unexpected copyright holder", path)
		}
	}
}
