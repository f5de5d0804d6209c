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
	"sort"

	"github.com/theopensystemslab/planx-new-sub000/api/types"
)

// traceFunc receives every classification decision. category is empty when
// the file type was left out of the list.
type traceFunc func(fileType types.FileType, category types.Category, reason string)

const (
	reasonAlways     = "unconditional rule"
	reasonRuleMet    = "rule met"
	reasonRuleNotMet = "rule not met"
	reasonDuplicate  = "name already decided by a more binding rule"
	reasonNoRule     = "missing rule"
)

// CreateFileList 根据 passport 把文件类型分到 required/recommended/optional 三组
// CreateFileList classifies file types into required, recommended and optional buckets.
//
// File types are visited from the most to the least binding condition (stable,
// so equal conditions keep their input order). The first file type seen for a
// name decides that name for the whole pass: when it is a conditional rule that
// is not met, the name is left out entirely rather than falling through to a
// less binding duplicate.
func CreateFileList(passport types.Passport, fileTypes []types.FileType) types.FileList {
	return classify(passport, fileTypes, nil)
}

func classify(passport types.Passport, fileTypes []types.FileType, trace traceFunc) types.FileList {
	fileList := types.NewFileList()
	decided := make(map[string]struct{}, len(fileTypes))

	for _, fileType := range sortFileTypes(fileTypes) {
		if _, ok := decided[fileType.Name]; ok {
			emit(trace, fileType, "", reasonDuplicate)
			continue
		}
		decided[fileType.Name] = struct{}{}
		category, reason := categorize(passport, fileType.Rule)
		emit(trace, fileType, category, reason)
		if category == "" {
			continue
		}
		userFile := types.UserFile{FileType: fileType}
		fileList = fileList.WithBucket(category, append(fileList.Bucket(category), userFile))
	}
	return fileList
}

// categorize returns the bucket a rule places its file type in, or "" when
// the file type is not shown.
func categorize(passport types.Passport, rule types.Rule) (types.Category, string) {
	switch r := rule.(type) {
	case types.AlwaysRequiredRule:
		return types.CategoryRequired, reasonAlways
	case types.AlwaysRecommendedRule:
		return types.CategoryRecommended, reasonAlways
	case types.RequiredIfRule:
		if IsRuleMet(passport, r) {
			return types.CategoryRequired, reasonRuleMet
		}
		return "", reasonRuleNotMet
	case types.RecommendedIfRule:
		if IsRuleMet(passport, r) {
			return types.CategoryRecommended, reasonRuleMet
		}
		return "", reasonRuleNotMet
	case types.NotRequiredRule:
		return types.CategoryOptional, reasonAlways
	default:
		return "", reasonNoRule
	}
}

// sortFileTypes returns a copy of fileTypes ordered by condition precedence.
func sortFileTypes(fileTypes []types.FileType) []types.FileType {
	sorted := make([]types.FileType, len(fileTypes))
	copy(sorted, fileTypes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return precedence(sorted[i]) < precedence(sorted[j])
	})
	return sorted
}

func precedence(fileType types.FileType) int {
	if fileType.Rule == nil {
		return len(types.Conditions)
	}
	return fileType.Rule.Condition().Precedence()
}

func emit(trace traceFunc, fileType types.FileType, category types.Category, reason string) {
	if trace != nil {
		trace(fileType, category, reason)
	}
}
