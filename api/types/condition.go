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

// Condition 文件类型规则条件
// Condition is the condition a file type rule applies.
//
// 顺序有意义：越靠前约束越强
// Order is significant: earlier conditions are more binding and win when
// the same file type name is defined more than once.
type Condition string

const (
	AlwaysRequired    Condition = "AlwaysRequired"
	AlwaysRecommended Condition = "AlwaysRecommended"
	RequiredIf        Condition = "RequiredIf"
	RecommendedIf     Condition = "RecommendedIf"
	NotRequired       Condition = "NotRequired"
)

// Conditions lists every condition from most to least binding.
var Conditions = []Condition{
	AlwaysRequired,
	AlwaysRecommended,
	RequiredIf,
	RecommendedIf,
	NotRequired,
}

// Precedence returns the position of the condition in the hierarchy, 0 being
// the most binding. Unknown conditions sort after every known one.
func (c Condition) Precedence() int {
	for i, item := range Conditions {
		if item == c {
			return i
		}
	}
	return len(Conditions)
}

// Valid reports whether c is one of the known conditions.
func (c Condition) Valid() bool {
	return c.Precedence() < len(Conditions)
}

// IsConditional reports whether rules with this condition carry a predicate.
func IsConditional(c Condition) bool {
	return c == RequiredIf || c == RecommendedIf
}

// Operator 条件规则比较操作符
// Operator compares a passport value against a rule value.
type Operator string

const (
	Equals Operator = "Equals"
)

// Valid reports whether o is a supported operator.
func (o Operator) Valid() bool {
	return o == Equals
}
