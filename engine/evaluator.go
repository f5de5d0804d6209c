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
	"strings"

	"github.com/theopensystemslab/planx-new-sub000/api/types"
)

// IsRuleMet 判断条件规则的谓词是否被 passport 满足
// IsRuleMet reports whether the predicate of a conditional rule holds for the passport.
//
// The passport value stored under the rule fn matches when it
//   - equals the rule val, or
//   - is a list containing the rule val, or
//   - is a list containing a granular value under the rule val, that is the
//     val followed by a dot and any suffix ("documents" matches
//     "documents.designAndAccess" but neither "documentsExtra" nor "somedocuments").
//
// An absent or empty passport value never matches.
func IsRuleMet(passport types.Passport, rule types.ConditionalRule) bool {
	if rule == nil {
		return false
	}
	return isPredicateMet(passport, rule.Predicate())
}

func isPredicateMet(passport types.Passport, predicate types.Predicate) bool {
	value, ok := passport.Lookup(predicate.Fn)
	if !ok {
		return false
	}
	if !value.IsList {
		return value.Scalar == predicate.Val
	}
	for _, item := range value.List {
		if isGranularMatch(item, predicate.Val) {
			return true
		}
	}
	return false
}

// isGranularMatch is the equivalent of `^{val}(\.+.*|$)` with val taken literally.
func isGranularMatch(value, val string) bool {
	if !strings.HasPrefix(value, val) {
		return false
	}
	rest := value[len(val):]
	return rest == "" || rest[0] == '.'
}
