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

// Package scenario replays uploads and tags against a FileUploadAndLabel node
// and checks the outcome with expressions.
//
// A scenario document, in YAML or JSON:
//
//	name: roof plan required for roof alterations
//	content:
//	  fileTypes:
//	    - name: Roof plan
//	      fn: roofPlan
//	      rule: {condition: RequiredIf, fn: proposal.projectType, operator: Equals, val: alter.roof}
//	passport:
//	  proposal.projectType: [alter.roof.dormer]
//	steps:
//	  - {action: upload, slot: s1, file: roof.pdf}
//	  - {action: tag, slot: s1, tags: [Roof plan]}
//	expect:
//	  - "Roof plan" in required
//	  - valid
//
// Expressions see the variables listed on Env. A document may also hold
// several scenarios under a top-level "scenarios" key.
package scenario

import (
	"errors"
	"fmt"

	"github.com/theopensystemslab/planx-new-sub000/api/types"
	"github.com/theopensystemslab/planx-new-sub000/utils/fs"
	"github.com/theopensystemslab/planx-new-sub000/utils/maps"
	"gopkg.in/yaml.v3"
)

// Action 场景步骤类型
type Action string

const (
	// ActionUpload adds an upload
	ActionUpload Action = "upload"
	// ActionUpdate changes the status of an upload, as when it resolves
	ActionUpdate Action = "update"
	// ActionTag replaces the tags of an upload
	ActionTag Action = "tag"
	// ActionUntag removes some tags of an upload
	ActionUntag Action = "untag"
	// ActionDelete removes an upload and its tags
	ActionDelete Action = "delete"
	// ActionReset removes every tag
	ActionReset Action = "reset"
)

// Step 场景步骤
type Step struct {
	Action Action `json:"action" yaml:"action" mapstructure:"action"`
	// Slot upload id. Generated for an upload step when empty.
	Slot string `json:"slot,omitempty" yaml:"slot,omitempty" mapstructure:"slot"`
	// File name of the uploaded file
	File string `json:"file,omitempty" yaml:"file,omitempty" mapstructure:"file"`
	// Status of the upload, success when empty
	Status types.SlotStatus `json:"status,omitempty" yaml:"status,omitempty" mapstructure:"status"`
	URL    string           `json:"url,omitempty" yaml:"url,omitempty" mapstructure:"url"`
	Tags   []string         `json:"tags,omitempty" yaml:"tags,omitempty" mapstructure:"tags"`
}

// Scenario 测试场景
type Scenario struct {
	Name string `json:"name" yaml:"name" mapstructure:"name"`
	// Content FileUploadAndLabel node content
	Content  types.Configuration    `json:"content" yaml:"content" mapstructure:"content"`
	Passport map[string]interface{} `json:"passport,omitempty" yaml:"passport,omitempty" mapstructure:"passport"`
	// Previous submission to recover before the steps run
	Previous *types.UserData `json:"previous,omitempty" yaml:"previous,omitempty" mapstructure:"previous"`
	Steps    []Step          `json:"steps,omitempty" yaml:"steps,omitempty" mapstructure:"steps"`
	Expect   []string        `json:"expect" yaml:"expect" mapstructure:"expect"`
}

// Parse decodes the scenarios of a YAML or JSON document.
func Parse(src []byte) ([]Scenario, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("empty scenario document")
	}
	var scenarios []Scenario
	if list, ok := doc["scenarios"]; ok {
		if err := maps.Decode(list, &scenarios, types.RuleHookFunc()); err != nil {
			return nil, err
		}
	} else {
		var s Scenario
		if err := maps.Decode(doc, &s, types.RuleHookFunc()); err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	for i, s := range scenarios {
		if len(s.Expect) == 0 {
			return nil, fmt.Errorf("scenario %d (%s): expect field must have at least 1 items", i, s.Name)
		}
	}
	return scenarios, nil
}

// LoadFile reads and parses a scenario document.
func LoadFile(path string) ([]Scenario, error) {
	src := fs.LoadFile(path)
	if src == nil {
		return nil, fmt.Errorf("cannot read scenario file %s", path)
	}
	scenarios, err := Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenarios, nil
}
