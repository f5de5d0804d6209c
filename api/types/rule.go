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
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Rule 文件类型规则，以 Condition 为判别字段的封闭联合类型
// Rule is the closed union of file type rules keyed by Condition.
// Only the rule types declared in this package implement it.
//
// Implementations:
//   - AlwaysRequiredRule, AlwaysRecommendedRule, NotRequiredRule: no predicate
//   - RequiredIfRule, RecommendedIfRule: carry a Predicate (see ConditionalRule)
type Rule interface {
	Condition() Condition
	isRule()
}

// ConditionalRule is a Rule that is only applied when its Predicate matches the passport.
type ConditionalRule interface {
	Rule
	Predicate() Predicate
}

// Predicate 条件规则的谓词：passport[Fn] Operator Val
// Predicate compares the passport value stored under Fn against Val.
type Predicate struct {
	Fn       string
	Operator Operator
	Val      string
}

type AlwaysRequiredRule struct{}

func (AlwaysRequiredRule) Condition() Condition { return AlwaysRequired }
func (AlwaysRequiredRule) isRule()              {}

type AlwaysRecommendedRule struct{}

func (AlwaysRecommendedRule) Condition() Condition { return AlwaysRecommended }
func (AlwaysRecommendedRule) isRule()              {}

type NotRequiredRule struct{}

func (NotRequiredRule) Condition() Condition { return NotRequired }
func (NotRequiredRule) isRule()              {}

// RequiredIfRule places the file type in the required bucket when its predicate matches.
type RequiredIfRule struct {
	Fn       string
	Operator Operator
	Val      string
}

func (RequiredIfRule) Condition() Condition { return RequiredIf }
func (RequiredIfRule) isRule()              {}

func (r RequiredIfRule) Predicate() Predicate {
	return Predicate{Fn: r.Fn, Operator: r.Operator, Val: r.Val}
}

// RecommendedIfRule places the file type in the recommended bucket when its predicate matches.
type RecommendedIfRule struct {
	Fn       string
	Operator Operator
	Val      string
}

func (RecommendedIfRule) Condition() Condition { return RecommendedIf }
func (RecommendedIfRule) isRule()              {}

func (r RecommendedIfRule) Predicate() Predicate {
	return Predicate{Fn: r.Fn, Operator: r.Operator, Val: r.Val}
}

// NewRequiredIf creates a RequiredIf rule using the Equals operator.
func NewRequiredIf(fn, val string) RequiredIfRule {
	return RequiredIfRule{Fn: fn, Operator: Equals, Val: val}
}

// NewRecommendedIf creates a RecommendedIf rule using the Equals operator.
func NewRecommendedIf(fn, val string) RecommendedIfRule {
	return RecommendedIfRule{Fn: fn, Operator: Equals, Val: val}
}

// RawRule 规则的边界（持久化/流程定义）形态
// RawRule is the flat shape a rule takes in flow definitions and payloads.
// It is only an input to ParseRule and an output of ToRawRule; the engine
// itself always works with Rule.
type RawRule struct {
	Condition Condition `json:"condition" yaml:"condition" mapstructure:"condition"`
	Fn        string    `json:"fn,omitempty" yaml:"fn,omitempty" mapstructure:"fn"`
	Operator  Operator  `json:"operator,omitempty" yaml:"operator,omitempty" mapstructure:"operator"`
	Val       string    `json:"val,omitempty" yaml:"val,omitempty" mapstructure:"val"`
}

// ParseRule selects the rule shape from raw.Condition and checks raw against it.
// Simple conditions must not carry fn, operator or val; conditional ones must carry all three.
func ParseRule(raw RawRule) (Rule, error) {
	if raw.Condition == "" {
		return nil, fmt.Errorf("rule.condition is a required field")
	}
	switch raw.Condition {
	case AlwaysRequired, AlwaysRecommended, NotRequired:
		if raw.Fn != "" || raw.Operator != "" || raw.Val != "" {
			return nil, fmt.Errorf("rule.fn, rule.operator and rule.val must not be set for condition %s", raw.Condition)
		}
		switch raw.Condition {
		case AlwaysRequired:
			return AlwaysRequiredRule{}, nil
		case AlwaysRecommended:
			return AlwaysRecommendedRule{}, nil
		default:
			return NotRequiredRule{}, nil
		}
	case RequiredIf, RecommendedIf:
		if raw.Fn == "" {
			return nil, fmt.Errorf("rule.fn is a required field")
		}
		if raw.Val == "" {
			return nil, fmt.Errorf("rule.val is a required field")
		}
		if raw.Operator == "" {
			return nil, fmt.Errorf("rule.operator is a required field")
		}
		if !raw.Operator.Valid() {
			return nil, fmt.Errorf("%w: %s", ErrUnknownOperator, raw.Operator)
		}
		if raw.Condition == RequiredIf {
			return RequiredIfRule{Fn: raw.Fn, Operator: raw.Operator, Val: raw.Val}, nil
		}
		return RecommendedIfRule{Fn: raw.Fn, Operator: raw.Operator, Val: raw.Val}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCondition, raw.Condition)
	}
}

// ToRawRule flattens a rule. A nil rule yields the zero RawRule.
func ToRawRule(rule Rule) RawRule {
	if rule == nil {
		return RawRule{}
	}
	raw := RawRule{Condition: rule.Condition()}
	if c, ok := rule.(ConditionalRule); ok {
		p := c.Predicate()
		raw.Fn, raw.Operator, raw.Val = p.Fn, p.Operator, p.Val
	}
	return raw
}

func unmarshalRule(data []byte) (Rule, error) {
	var raw RawRule
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return ParseRule(raw)
}

func (r AlwaysRequiredRule) MarshalJSON() ([]byte, error)    { return json.Marshal(ToRawRule(r)) }
func (r AlwaysRecommendedRule) MarshalJSON() ([]byte, error) { return json.Marshal(ToRawRule(r)) }
func (r NotRequiredRule) MarshalJSON() ([]byte, error)       { return json.Marshal(ToRawRule(r)) }
func (r RequiredIfRule) MarshalJSON() ([]byte, error)        { return json.Marshal(ToRawRule(r)) }
func (r RecommendedIfRule) MarshalJSON() ([]byte, error)     { return json.Marshal(ToRawRule(r)) }

func (r AlwaysRequiredRule) MarshalYAML() (interface{}, error)    { return ToRawRule(r), nil }
func (r AlwaysRecommendedRule) MarshalYAML() (interface{}, error) { return ToRawRule(r), nil }
func (r NotRequiredRule) MarshalYAML() (interface{}, error)       { return ToRawRule(r), nil }
func (r RequiredIfRule) MarshalYAML() (interface{}, error)        { return ToRawRule(r), nil }
func (r RecommendedIfRule) MarshalYAML() (interface{}, error)     { return ToRawRule(r), nil }

var ruleType = reflect.TypeOf((*Rule)(nil)).Elem()

// RuleHookFunc 返回 mapstructure 解码钩子，把 map 形态的规则解析为 Rule
// RuleHookFunc returns a mapstructure decode hook that parses map-shaped rules
// into the Rule union whenever the decode target is a Rule.
func RuleHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != ruleType {
			return data, nil
		}
		switch v := data.(type) {
		case Rule:
			return v, nil
		case RawRule:
			return ParseRule(v)
		case *RawRule:
			return ParseRule(*v)
		}
		var raw RawRule
		if err := mapstructure.Decode(data, &raw); err != nil {
			return nil, fmt.Errorf("rule: %w", err)
		}
		return ParseRule(raw)
	}
}
