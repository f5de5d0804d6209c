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

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/theopensystemslab/planx-new-sub000/test/assert"
)

func TestLoadFile(t *testing.T) {
	tempDir := t.TempDir()
	testFilePath := filepath.Join(tempDir, "content.json")
	testData := []byte(`{"title":"Upload and label"}`)

	assert.Nil(t, os.WriteFile(testFilePath, testData, 0644))
	assert.Equal(t, testData, LoadFile(testFilePath))

	assert.Nil(t, LoadFile(filepath.Join(tempDir, "nonexistent.json")))
	// directories cannot be read
	assert.Nil(t, LoadFile(tempDir))
}

func TestGetFilePaths(t *testing.T) {
	tempDir := t.TempDir()
	assert.Nil(t, os.MkdirAll(filepath.Join(tempDir, "nodes", "skip"), 0755))
	for _, name := range []string{"a.json", "b.YAML", "c.yml", "d.txt", filepath.Join("nodes", "e.json"), filepath.Join("nodes", "skip", "f.json")} {
		assert.Nil(t, os.WriteFile(filepath.Join(tempDir, name), []byte("{}"), 0644))
	}

	paths, err := GetFilePaths(filepath.Join(tempDir, "*.json"), "skip")
	assert.Nil(t, err)
	assert.Equal(t, []string{filepath.Join(tempDir, "a.json"), filepath.Join(tempDir, "nodes", "e.json")}, paths)

	paths, err = GetFilePathsByExt(tempDir, ".yaml", ".yml")
	assert.Nil(t, err)
	assert.Equal(t, []string{filepath.Join(tempDir, "b.YAML"), filepath.Join(tempDir, "c.yml")}, paths)

	_, err = GetFilePathsByExt(filepath.Join(tempDir, "missing"), ".json")
	assert.NotNil(t, err)
}
