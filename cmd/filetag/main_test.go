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

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theopensystemslab/planx-new-sub000/test/assert"
	"github.com/theopensystemslab/planx-new-sub000/utils/json"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func names(t *testing.T, bucket interface{}) []string {
	t.Helper()
	var result []string
	list, _ := bucket.([]interface{})
	for _, item := range list {
		result = append(result, item.(map[string]interface{})["name"].(string))
	}
	return result
}

func TestClassify(t *testing.T) {
	out, err := run(t, "classify", "--content", "testdata/drawings.json", "--passport", "testdata/passport.json")
	assert.Nil(t, err)

	var result map[string]interface{}
	assert.Nil(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "drawings", result["id"])
	assert.Equal(t, "FileUploadAndLabel", result["type"])

	fileList := result["fileList"].(map[string]interface{})
	assert.Equal(t, []string{"Site plan", "Roof plan"}, names(t, fileList["required"]))
	assert.Equal(t, []string{"Heritage statement"}, names(t, fileList["optional"]))
	assert.Equal(t, []interface{}{"required"}, result["visible"])
}

func TestClassifyWithoutPassport(t *testing.T) {
	out, err := run(t, "classify", "--content", "testdata/drawings.json")
	assert.Nil(t, err)

	var result map[string]interface{}
	assert.Nil(t, json.Unmarshal([]byte(out), &result))
	fileList := result["fileList"].(map[string]interface{})
	assert.Equal(t, []string{"Site plan"}, names(t, fileList["required"]))
}

func TestClassifyNode(t *testing.T) {
	out, err := run(t, "classify", "--content", "../../testdata/nodes/upload_and_label.yaml",
		"--passport", "testdata/passport.json", "--output", "yaml")
	assert.Nil(t, err)

	var result map[string]interface{}
	assert.Nil(t, yaml.Unmarshal([]byte(out), &result))
	assert.Equal(t, "uploadAndLabel", result["id"])
	fileList := result["fileList"].(map[string]interface{})
	assert.Equal(t, []string{"Site plan", "Roof plan"}, names(t, fileList["required"]))
	assert.Equal(t, []string{"Photographs"}, names(t, fileList["recommended"]))

	out, err = run(t, "classify", "--content", "../../testdata/nodes/multiple_file_upload.json")
	assert.Nil(t, err)
	result = nil
	assert.Nil(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "MultipleFileUpload", result["type"])
}

func TestClassifyMissingContent(t *testing.T) {
	_, err := run(t, "classify")
	assert.EqualError(t, err, "--content is required")

	_, err = run(t, "classify", "--content", "testdata/nothing.yaml")
	assert.EqualError(t, err, "cannot read content file testdata/nothing.yaml")
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate", "--content", "../../testdata/nodes/upload_and_label.yaml")
	assert.Nil(t, err)
	var result validateResult
	assert.Nil(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Valid)
	assert.Equal(t, "uploadAndLabel", result.ID)

	out, err = run(t, "validate", "--content", "testdata/invalid.yaml")
	assert.EqualError(t, err, "node broken: fileTypes field must have at least 1 items")
	result = validateResult{}
	assert.Nil(t, json.Unmarshal([]byte(out), &result))
	assert.False(t, result.Valid)
	assert.Equal(t, err.Error(), result.Error)
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", "../../scenario/testdata/roof_alterations.yaml", "../../scenario/testdata/returning.json")
	assert.Nil(t, err)
	var reports []map[string]interface{}
	assert.Nil(t, json.Unmarshal([]byte(out), &reports))
	assert.Equal(t, 4, len(reports))
	for _, report := range reports {
		assert.Equal(t, true, report["passed"])
		assert.Nil(t, report["env"])
	}

	out, err = run(t, "check", "--env", "testdata/failing.yaml")
	assert.EqualError(t, err, "1 of 1 scenarios failed")
	reports = nil
	assert.Nil(t, json.Unmarshal([]byte(out), &reports))
	assert.Equal(t, false, reports[0]["passed"])
	assert.Equal(t, []interface{}{"valid"}, reports[0]["failures"])
	env := reports[0]["env"].(map[string]interface{})
	assert.Equal(t, "allRequiredFilesUploaded", env["error"])

	_, err = run(t, "check")
	assert.NotNil(t, err)
}

func TestRecover(t *testing.T) {
	out, err := run(t, "recover", "--content", "testdata/drawings.json",
		"--passport", "testdata/passport.json", "--previous", "testdata/previous.json")
	assert.Nil(t, err)

	var result recoverResult
	assert.Nil(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Returning)
	assert.Equal(t, 1, len(result.Slots))
	assert.Equal(t, "site", result.Slots[0].ID)
	assert.Equal(t, "site", result.FileList.Required[0].Slots[0].ID)
	assert.Nil(t, result.FileList.Required[1].Slots)

	out, err = run(t, "recover", "--content", "../../testdata/nodes/multiple_file_upload.json",
		"--previous", "testdata/previous.json")
	assert.Nil(t, err)
	result = recoverResult{}
	assert.Nil(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 1, len(result.Slots))
	assert.Equal(t, "other", result.Slots[0].ID)
	assert.Nil(t, result.FileList)

	_, err = run(t, "recover", "--content", "testdata/drawings.json")
	assert.EqualError(t, err, "--previous is required")
}

func TestConfig(t *testing.T) {
	c, err := loadConfig("")
	assert.Nil(t, err)
	assert.Equal(t, DefaultConfig(), c)

	c, err = loadConfig("testdata/filetag.ini")
	assert.Nil(t, err)
	assert.Equal(t, Config{LogLevel: "error", LogFormat: "json", Output: OutputYaml}, c)

	_, err = loadConfig("testdata/nothing.ini")
	assert.NotNil(t, err)

	// the config file sets yaml output
	out, err := run(t, "--config", "testdata/filetag.ini", "classify", "--content", "testdata/drawings.json")
	assert.Nil(t, err)
	assert.True(t, strings.HasPrefix(out, "id: drawings"))

	// flags override the config file
	out, err = run(t, "--config", "testdata/filetag.ini", "-o", "json", "classify", "--content", "testdata/drawings.json")
	assert.Nil(t, err)
	assert.True(t, strings.HasPrefix(out, "{"))

	_, err = run(t, "-o", "xml", "classify", "--content", "testdata/drawings.json")
	assert.EqualError(t, err, `unsupported output format "xml"`)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filetag.ini")
	assert.Nil(t, os.WriteFile(path, []byte("output = YAML\n"), 0644))
	out, err := run(t, "--config", path, "validate", "--content", "testdata/drawings.json")
	assert.Nil(t, err)
	var result validateResult
	assert.Nil(t, yaml.Unmarshal([]byte(out), &result))
	assert.True(t, result.Valid)
	assert.Equal(t, "drawings", result.ID)
}
