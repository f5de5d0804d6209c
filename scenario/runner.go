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

package scenario

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/theopensystemslab/planx-new-sub000/api/types"
	"github.com/theopensystemslab/planx-new-sub000/components/fileupload"
	"github.com/theopensystemslab/planx-new-sub000/engine"
)

// Report 场景执行结果
type Report struct {
	Name     string   `json:"name" yaml:"name"`
	Passed   bool     `json:"passed" yaml:"passed"`
	Failures []string `json:"failures,omitempty" yaml:"failures,omitempty"`
	// Env the variables the expectations were evaluated with
	Env map[string]interface{} `json:"env,omitempty" yaml:"env,omitempty"`
}

// Runner 场景执行器
type Runner struct {
	config types.Config
}

// NewRunner creates a runner whose nodes are initialised with opts.
func NewRunner(opts ...types.Option) *Runner {
	return &Runner{config: types.NewConfig(opts...)}
}

// Run replays the steps of s and evaluates its expectations.
// The error is set when the scenario itself is broken: invalid content, a
// step on an unknown upload or an expression that does not compile.
// Unmet expectations are reported as failures.
func (r *Runner) Run(s Scenario) (Report, error) {
	report := Report{Name: s.Name}
	component := (&fileupload.FileUploadAndLabel{}).New().(*fileupload.FileUploadAndLabel)
	if err := component.Init(r.config, s.Content); err != nil {
		return report, fmt.Errorf("scenario %s: %w", s.Name, err)
	}

	state := component.Mount(types.NewPassport(s.Passport), s.Previous)
	for i, step := range s.Steps {
		var err error
		if state, err = r.apply(component, state, step); err != nil {
			return report, fmt.Errorf("scenario %s: step %d: %w", s.Name, i, err)
		}
	}

	_, submitErr := component.Submit(state)
	report.Env = Env(component, state, submitErr)
	for _, expect := range s.Expect {
		program, err := expr.Compile(expect, expr.Env(report.Env), expr.AllowUndefinedVariables(), expr.AsBool())
		if err != nil {
			return report, fmt.Errorf("scenario %s: %w", s.Name, err)
		}
		out, err := expr.Run(program, report.Env)
		if err != nil {
			report.Failures = append(report.Failures, fmt.Sprintf("%s: %v", expect, err))
			continue
		}
		if ok, _ := out.(bool); !ok {
			report.Failures = append(report.Failures, expect)
		}
	}
	report.Passed = len(report.Failures) == 0
	return report, nil
}

func (r *Runner) apply(component *fileupload.FileUploadAndLabel, state fileupload.State, step Step) (fileupload.State, error) {
	switch step.Action {
	case ActionUpload:
		return component.Upload(state, slotOf(step)), nil
	case ActionUpdate:
		// an upload resolving after it was deleted is discarded
		state, _ = component.UpdateSlot(state, slotOf(step))
		return state, nil
	case ActionTag:
		result, ok := component.Tag(state, step.Slot, step.Tags)
		if !ok {
			return state, fmt.Errorf("upload %s not found", step.Slot)
		}
		return result, nil
	case ActionUntag:
		slot, ok := findSlot(state, step.Slot)
		if !ok {
			return state, fmt.Errorf("upload %s not found", step.Slot)
		}
		state.FileList = engine.RemoveSlots(step.Tags, slot, state.FileList)
		return state, nil
	case ActionDelete:
		return component.Delete(state, step.Slot), nil
	case ActionReset:
		state.FileList = engine.ResetAllSlots(state.FileList)
		return state, nil
	default:
		return state, fmt.Errorf("unknown action %q", step.Action)
	}
}

func slotOf(step Step) types.FileUploadSlot {
	status := step.Status
	if status == "" {
		status = types.StatusSuccess
	}
	file := step.File
	if file == "" {
		file = step.Slot
	}
	slot := types.FileUploadSlot{
		ID:     step.Slot,
		File:   types.UploadedFile{Name: file, Path: file},
		Status: status,
		URL:    step.URL,
	}
	if status == types.StatusSuccess {
		slot.Progress = 1
		if slot.URL == "" {
			slot.URL = "file:///" + file
		}
	}
	return slot
}

func findSlot(state fileupload.State, slotID string) (types.FileUploadSlot, bool) {
	for _, slot := range state.Slots {
		if slot.ID == slotID {
			return slot, true
		}
	}
	return types.FileUploadSlot{}, false
}

// Env 返回表达式可用的变量
// Env returns the variables expectations are evaluated with:
//
//   - required, recommended, optional: file type names per category
//   - visible: the categories shown to the user
//   - missing: required file types without uploads
//   - slots: upload ids, most recent first
//   - tags: upload id to the file types it is tagged with
//   - payload: fn to the number of entries submitted under it
//   - valid: whether the state can be submitted
//   - error: the type of the first failed submission check, or ""
//   - returning: whether the state was recovered from a previous submission
func Env(component *fileupload.FileUploadAndLabel, state fileupload.State, submitErr error) map[string]interface{} {
	tags := make(map[string]interface{}, len(state.Slots))
	slots := make([]string, 0, len(state.Slots))
	for _, slot := range state.Slots {
		slots = append(slots, slot.ID)
		tags[slot.ID] = component.Tags(state, slot.ID)
	}
	payload := map[string]interface{}{}
	for fn, entries := range engine.GeneratePayload(state.FileList).Data {
		payload[fn] = len(entries)
	}
	visible := []string{}
	for _, c := range component.VisibleCategories(state.FileList) {
		visible = append(visible, string(c))
	}
	missing := engine.MissingRequired(state.FileList)
	if missing == nil {
		missing = []string{}
	}
	errorType := ""
	if v, ok := submitErr.(*types.ValidationError); ok {
		errorType = string(v.Type)
	}
	return map[string]interface{}{
		"required":    state.FileList.Names(types.CategoryRequired),
		"recommended": state.FileList.Names(types.CategoryRecommended),
		"optional":    state.FileList.Names(types.CategoryOptional),
		"visible":     visible,
		"missing":     missing,
		"slots":       slots,
		"tags":        tags,
		"payload":     payload,
		"valid":       submitErr == nil,
		"error":       errorType,
		"returning":   state.Returning,
	}
}

// Run 使用默认配置执行场景
func Run(s Scenario, opts ...types.Option) (Report, error) {
	return NewRunner(opts...).Run(s)
}

// RunAll runs every scenario and stops at the first broken one.
func RunAll(scenarios []Scenario, opts ...types.Option) ([]Report, error) {
	runner := NewRunner(opts...)
	reports := make([]Report, 0, len(scenarios))
	for _, s := range scenarios {
		report, err := runner.Run(s)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}
