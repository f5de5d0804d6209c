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

package test

import (
	"reflect"
	"testing"

	"github.com/theopensystemslab/planx-new-sub000/api/types"
	"github.com/theopensystemslab/planx-new-sub000/test/assert"
)

// CreateAndInitComponent 创建并初始化一个组件实例
func CreateAndInitComponent(targetType string, content types.Configuration, registry *types.SafeComponentSlice) (types.Component, error) {
	var factory types.Component
	for _, component := range registry.Components() {
		if component.Type() == targetType {
			factory = component
		}
	}
	if factory == nil {
		return nil, &notRegisteredError{targetType}
	}
	component := factory.New()
	err := component.Init(types.NewConfig(types.WithLogger(types.DiscardLogger())), content)
	return component, err
}

// ComponentNew 测试创建组件实例
func ComponentNew(t *testing.T, targetType string, target types.Component, registry *types.SafeComponentSlice) {
	t.Helper()
	var factory types.Component
	for _, component := range registry.Components() {
		if component.Type() == target.Type() {
			factory = component
		}
	}
	assert.NotNil(t, factory)
	if factory == nil {
		return
	}
	assert.Equal(t, targetType, factory.Type())

	component := factory.New()
	assert.True(t, reflect.TypeOf(component) == reflect.TypeOf(target))
	// New must hand out independent instances
	assert.True(t, component != factory.New())
}

type notRegisteredError struct {
	componentType string
}

func (e *notRegisteredError) Error() string {
	return "component not found.componentType=" + e.componentType
}
