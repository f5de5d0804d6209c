/*
 * Copyright 2023 The PlanX Authors.
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
	"sync"
)

// Configuration 组件内容，来自流程图节点数据
// Configuration is the content of a flow node, as stored by the editor.
type Configuration map[string]interface{}

// Component 表单组件接口
// 每个流程节点都会通过 New 创建一个独立实例，然后调用 Init 解析节点内容
// Component is a form component backed by the file requirement engine.
// Every flow node gets its own instance through New, configured once by Init.
type Component interface {
	//New 创建一个组件新实例
	New() Component
	//Type 组件类型，类型不能重复
	Type() string
	//Init 解析并校验节点内容，内容不合法时返回错误（流程保存时即失败）
	//Init decodes and validates the node content. An invalid content is an
	//authoring error and must fail at flow-save time.
	Init(config Config, content Configuration) error
}

// ComponentRegistry 组件注册器
type ComponentRegistry interface {
	//Register 注册组件，如果`component.Type()`已经存在则返回一个`已存在`错误
	Register(component Component) error
	//Unregister 删除组件
	Unregister(componentType string) error
	//NewComponent 通过componentType创建一个新的组件实例
	NewComponent(componentType string) (Component, error)
	//GetComponents 获取所有注册组件列表
	GetComponents() map[string]Component
}

// SafeComponentSlice 安全的组件列表切片
type SafeComponentSlice struct {
	//组件列表
	components []Component
	sync.Mutex
}

// Add 线程安全地添加元素
func (p *SafeComponentSlice) Add(components ...Component) {
	p.Lock()
	defer p.Unlock()
	p.components = append(p.components, components...)
}

// Components 获取组件列表
func (p *SafeComponentSlice) Components() []Component {
	p.Lock()
	defer p.Unlock()
	return p.components
}
