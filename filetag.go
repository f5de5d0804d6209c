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

// Package filetag provides the file requirement components of a planning
// application flow: which documents an applicant must, should or may upload,
// and which uploads satisfy them.
//
// # Usage
//
// A flow node is defined by its component type and content, in JSON or YAML:
//
//	id: uploads
//	type: FileUploadAndLabel
//	content:
//	  title: Upload and label
//	  fileTypes:
//	    - name: Site plan
//	      fn: sitePlan
//	      rule:
//	        condition: AlwaysRequired
//	    - name: Roof plan
//	      fn: roofPlan
//	      rule:
//	        condition: RequiredIf
//	        fn: proposal.projectType
//	        operator: Equals
//	        val: alter.roof
//
// Create Node Instance
//
//	node, err := filetag.New("uploads", []byte(nodeFile))
//
// Classify And Tag
//
//	component := node.Component.(*fileupload.FileUploadAndLabel)
//	state := component.Mount(types.NewPassport(passportData), nil)
//	state = component.Upload(state, slot)
//	state, _ = component.Tag(state, slot.ID, []string{"Site plan"})
//
// Submit
//
//	payload, err := component.Submit(state)
//
// Load All Nodes
//
//	err := filetag.Load("./nodes")
//
// Get Node Instance
//
//	node, ok := filetag.Get("uploads")
package filetag

import (
	"sync"

	"github.com/theopensystemslab/planx-new-sub000/api/types"
	"github.com/theopensystemslab/planx-new-sub000/utils/fs"
)

var DefaultPool = &Pool{}

// Pool 节点实例池
type Pool struct {
	nodes sync.Map
}

// Load 加载指定文件夹及其子文件夹所有节点定义（.json、.yaml、.yml 结尾文件），到节点实例池
// 节点ID，使用节点定义的 id
func (g *Pool) Load(folderPath string, opts ...types.Option) error {
	if folderPath == "" {
		folderPath = "."
	}
	paths, err := fs.GetFilePathsByExt(folderPath, ".json", ".yaml", ".yml")
	if err != nil {
		return err
	}
	for _, path := range paths {
		b := fs.LoadFile(path)
		if b != nil {
			if _, err = g.New("", b, opts...); err != nil {
				return err
			}
		}
	}
	return nil
}

// New 创建一个新的节点实例并将其存储在节点实例池中
// 如果指定id="",则使用节点定义的 id；如果 id 已经存在，返回已有实例
func (g *Pool) New(id string, src []byte, opts ...types.Option) (*Node, error) {
	if v, ok := g.nodes.Load(id); ok && id != "" {
		return v.(*Node), nil
	}
	def, err := DetectParser(src).DecodeNode(src)
	if err != nil {
		return nil, err
	}
	if id != "" {
		def.ID = id
	}
	if v, ok := g.nodes.Load(def.ID); ok && def.ID != "" {
		return v.(*Node), nil
	}
	config := types.NewConfig(append([]types.Option{types.WithComponentsRegistry(Registry)}, opts...)...)
	node, err := InitNode(config, def)
	if err != nil {
		return nil, err
	}
	if node.Def.ID != "" {
		g.nodes.Store(node.Def.ID, node)
	}
	return node, nil
}

// Get 获取指定ID节点实例
func (g *Pool) Get(id string) (*Node, bool) {
	v, ok := g.nodes.Load(id)
	if ok {
		return v.(*Node), ok
	} else {
		return nil, false
	}
}

// Del 删除指定ID节点实例
func (g *Pool) Del(id string) {
	g.nodes.Delete(id)
}

// Range 遍历所有节点实例，fn 返回 false 时停止
func (g *Pool) Range(fn func(id string, node *Node) bool) {
	g.nodes.Range(func(key, value any) bool {
		return fn(key.(string), value.(*Node))
	})
}

// Stop 释放所有节点实例
func (g *Pool) Stop() {
	g.nodes.Range(func(key, value any) bool {
		g.nodes.Delete(key)
		return true
	})
}

// Load 加载指定文件夹及其子文件夹所有节点定义到默认节点实例池
func Load(folderPath string, opts ...types.Option) error {
	return DefaultPool.Load(folderPath, opts...)
}

// New 创建一个新的节点实例并将其存储在默认节点实例池中
func New(id string, src []byte, opts ...types.Option) (*Node, error) {
	return DefaultPool.New(id, src, opts...)
}

// Get 获取指定ID节点实例
func Get(id string) (*Node, bool) {
	return DefaultPool.Get(id)
}

// Del 删除指定ID节点实例
func Del(id string) {
	DefaultPool.Del(id)
}

// Stop 释放默认节点实例池所有实例
func Stop() {
	DefaultPool.Stop()
}
