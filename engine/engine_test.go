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
	"bytes"
	"log"
	"strings"
	"sync"
	"testing"

	"github.com/theopensystemslab/planx-new-sub000/api/types"
	"github.com/theopensystemslab/planx-new-sub000/test"
	"github.com/theopensystemslab/planx-new-sub000/test/assert"
)

type debugCall struct {
	name      string
	condition types.Condition
	category  types.Category
	reason    string
}

func TestEngineClassify(t *testing.T) {
	var buf bytes.Buffer
	var calls []debugCall
	var classified types.FileList

	e := New(
		types.WithLogger(log.New(&buf, "", 0)),
		types.WithOnDebug(func(name string, condition types.Condition, category types.Category, reason string) {
			calls = append(calls, debugCall{name, condition, category, reason})
		}),
		types.WithOnClassified(func(passport types.Passport, fileList types.FileList) {
			classified = fileList
		}),
	)
	fileTypes := []types.FileType{
		test.FileType(types.NotRequired),
		test.FileType(types.RequiredIf),
		{Name: "NotRequired file", Fn: "dup", Rule: types.AlwaysRecommendedRule{}},
	}
	fileList := e.Classify(types.NewPassport(nil), fileTypes)

	assert.Equal(t, fileList, classified)
	assert.Equal(t, []string{"NotRequired file"}, fileList.Names(types.CategoryRecommended))
	assert.Equal(t, 0, len(fileList.Required))

	assert.Equal(t, []debugCall{
		{"NotRequired file", types.AlwaysRecommended, types.CategoryRecommended, reasonAlways},
		{"RequiredIf file", types.RequiredIf, "", reasonRuleNotMet},
		{"NotRequired file", types.NotRequired, "", reasonDuplicate},
	}, calls)
	assert.True(t, strings.Contains(buf.String(), "fileType=RequiredIf file condition=RequiredIf skipped: rule not met"))
	assert.True(t, strings.Contains(buf.String(), "required=0 recommended=1 optional=0"))
}

func TestEngineClassifyQuiet(t *testing.T) {
	var buf bytes.Buffer
	e := New(types.WithLogger(log.New(&buf, "", 0)))
	fileList := e.Classify(types.NewPassport(nil), test.FileTypes())
	assert.Equal(t, CreateFileList(types.NewPassport(nil), test.FileTypes()), fileList)
	assert.Equal(t, "", buf.String())
}

func TestEngineValidateAndRecover(t *testing.T) {
	var buf bytes.Buffer
	e := New(types.WithLogger(log.New(&buf, "", 0)), types.WithDebug(true))

	err := e.Validate(nil, taggingFileList())
	assert.True(t, types.IsValidationType(err, types.ValidationMinFileUploaded))
	assert.True(t, strings.Contains(buf.String(), "validation failed: Upload at least one file"))

	slot := test.Slot("a")
	fileList := AddOrAppendSlots([]string{"Floor plan"}, slot, taggingFileList())
	recovered := e.Recover(GeneratePayload(fileList), taggingFileList())
	assert.Equal(t, fileList, recovered.FileList)
	assert.True(t, strings.Contains(buf.String(), "recovered 1 slots"))
}

func TestEngineNewSlotID(t *testing.T) {
	e := New(types.WithIDGenerator(func() string { return "fixed" }))
	assert.Equal(t, "fixed", e.NewSlotID())

	e = NewWithConfig(types.Config{})
	first, second := e.NewSlotID(), e.NewSlotID()
	assert.Equal(t, 36, len(first))
	assert.NotEqual(t, first, second)
	assert.NotNil(t, e.Config().Logger)
}

func TestEngineConcurrentClassify(t *testing.T) {
	e := New(types.WithLogger(types.DiscardLogger()))
	passport := types.NewPassport(map[string]interface{}{"testFn": "testVal"})
	expected := CreateFileList(passport, test.FileTypes())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, expected, e.Classify(passport, test.FileTypes()))
		}()
	}
	wg.Wait()
}
