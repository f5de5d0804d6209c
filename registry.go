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

package filetag

import (
	"errors"
	"fmt"
	"sync"

	"github.com/theopensystemslab/planx-new-sub000/api/types"
	"github.com/theopensystemslab/planx-new-sub000/components/fileupload"
)

// ErrComponentNotFound is returned for a component type nobody registered.
var ErrComponentNotFound = errors.New("component not found")

// Registry 默认组件注册器
var Registry = new(ComponentRegistry)

// 注册默认组件
func init() {
	for _, component := range fileupload.Registry.Components() {
		_ = Registry.Register(component)
	}
}

// ComponentRegistry 组件注册器
type ComponentRegistry struct {
	//组件列表
	components map[string]types.Component
	sync.RWMutex
}

var _ types.ComponentRegistry = (*ComponentRegistry)(nil)

// Register 注册组件，如果`component.Type()`已经存在则返回一个`已存在`错误
func (r *ComponentRegistry) Register(component types.Component) error {
	r.Lock()
	defer r.Unlock()
	if r.components == nil {
		r.components = make(map[string]types.Component)
	}
	if _, ok := r.components[component.Type()]; ok {
		return errors.New("the component already exists. componentType=" + component.Type())
	}
	r.components[component.Type()] = component
	return nil
}

// Unregister 删除组件
func (r *ComponentRegistry) Unregister(componentType string) error {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.components[componentType]; !ok {
		return fmt.Errorf("%w.componentType=%s", ErrComponentNotFound, componentType)
	}
	delete(r.components, componentType)
	return nil
}

// NewComponent 通过componentType创建一个新的组件实例
func (r *ComponentRegistry) NewComponent(componentType string) (types.Component, error) {
	r.RLock()
	defer r.RUnlock()
	if component, ok := r.components[componentType]; !ok {
		return nil, fmt.Errorf("%w.componentType=%s", ErrComponentNotFound, componentType)
	} else {
		return component.New(), nil
	}
}

// GetComponents 获取所有注册组件列表
func (r *ComponentRegistry) GetComponents() map[string]types.Component {
	r.RLock()
	defer r.RUnlock()
	var components = map[string]types.Component{}
	for k, v := range r.components {
		components[k] = v
	}
	return components
}
