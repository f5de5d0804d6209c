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

// Package engine provides the file requirement classification and tagging engine.
//
// Package engine 提供文件要求分类与打标签引擎。
//
// The engine package is responsible for:
// engine 包负责：
//   - Evaluating conditional rules against a passport (IsRuleMet)
//     根据 passport 评估条件规则（IsRuleMet）
//   - Classifying file types into required/recommended/optional (CreateFileList)
//     把文件类型分为必需/推荐/可选（CreateFileList）
//   - Associating upload slots with file types (AddOrAppendSlots, RemoveSlots, ResetAllSlots)
//     关联上传文件与文件类型（AddOrAppendSlots、RemoveSlots、ResetAllSlots）
//   - Persisting and recovering the association (GeneratePayload, GetRecoveredData)
//     持久化与恢复关联关系（GeneratePayload、GetRecoveredData）
//   - Checking a submission (Validate)
//     校验提交（Validate）
//
// Every package level function is pure: inputs are never modified and a new
// FileList is returned. Engine wraps them with the configured logger and callbacks.
//
// 包级函数都是纯函数，不修改入参。Engine 在其之上增加日志与回调。
package engine

import (
	"github.com/theopensystemslab/planx-new-sub000/api/types"
)

// Engine 带配置的引擎实例
// Engine runs the pure engine functions with a types.Config.
// It holds no state between calls and is safe for concurrent use.
type Engine struct {
	config types.Config
}

// New creates an engine with the given options applied to types.NewConfig.
func New(opts ...types.Option) *Engine {
	return &Engine{config: types.NewConfig(opts...)}
}

// NewWithConfig creates an engine with an existing config.
func NewWithConfig(config types.Config) *Engine {
	if config.Logger == nil {
		config.Logger = types.DefaultLogger()
	}
	if config.NewID == nil {
		config.NewID = types.DefaultID
	}
	return &Engine{config: config}
}

// Config returns the engine configuration.
func (e *Engine) Config() types.Config {
	return e.config
}

// Classify builds the FileList for the passport, reporting each decision to
// OnDebug when debug mode is on and the result to OnClassified.
func (e *Engine) Classify(passport types.Passport, fileTypes []types.FileType) types.FileList {
	var trace traceFunc
	if e.config.Debug {
		trace = func(fileType types.FileType, category types.Category, reason string) {
			var condition types.Condition
			if fileType.Rule != nil {
				condition = fileType.Rule.Condition()
			}
			if e.config.OnDebug != nil {
				e.config.OnDebug(fileType.Name, condition, category, reason)
			}
			if category == "" {
				e.config.Logger.Printf("fileType=%s condition=%s skipped: %s", fileType.Name, condition, reason)
			} else {
				e.config.Logger.Printf("fileType=%s condition=%s category=%s: %s", fileType.Name, condition, category, reason)
			}
		}
	}
	fileList := classify(passport, fileTypes, trace)
	if e.config.Debug {
		e.config.Logger.Printf("classified %d file types: required=%d recommended=%d optional=%d",
			len(fileTypes), len(fileList.Required), len(fileList.Recommended), len(fileList.Optional))
	}
	if e.config.OnClassified != nil {
		e.config.OnClassified(passport, fileList)
	}
	return fileList
}

// Recover restores a previous submission onto fileList.
func (e *Engine) Recover(previous *types.UserData, fileList types.FileList) RecoveredData {
	recovered := GetRecoveredData(previous, fileList)
	if e.config.Debug {
		e.config.Logger.Printf("recovered %d slots", len(recovered.Slots))
	}
	return recovered
}

// Validate runs the submission checks, logging the failure in debug mode.
func (e *Engine) Validate(slots []types.FileUploadSlot, fileList types.FileList) error {
	err := Validate(slots, fileList)
	if err != nil && e.config.Debug {
		e.config.Logger.Printf("validation failed: %v", err)
	}
	return err
}

// NewSlotID returns an id for an upload that arrived without one.
func (e *Engine) NewSlotID() string {
	return e.config.NewID()
}
