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
	"bytes"
	"errors"
	"fmt"

	"github.com/theopensystemslab/planx-new-sub000/api/types"
	"github.com/theopensystemslab/planx-new-sub000/utils/json"
	"gopkg.in/yaml.v3"
)

// NodeDef 流程节点定义
// NodeDef is a flow node as exported by the editor: its id, component type and content.
type NodeDef struct {
	ID      string              `json:"id" yaml:"id"`
	Type    string              `json:"type" yaml:"type"`
	Content types.Configuration `json:"content" yaml:"content"`
}

// Parser 节点定义解析器
type Parser interface {
	// DecodeNode 从描述文件解析节点定义
	DecodeNode(src []byte) (NodeDef, error)
	// EncodeNode 把节点定义转换成描述文件
	EncodeNode(def NodeDef) ([]byte, error)
}

// JsonParser Json
type JsonParser struct {
}

func (p *JsonParser) DecodeNode(src []byte) (NodeDef, error) {
	var def NodeDef
	if err := json.Unmarshal(src, &def); err != nil {
		return def, err
	}
	return def, checkNodeDef(def)
}

func (p *JsonParser) EncodeNode(def NodeDef) ([]byte, error) {
	return json.MarshalIndent(def)
}

// YamlParser Yaml
type YamlParser struct {
}

func (p *YamlParser) DecodeNode(src []byte) (NodeDef, error) {
	var def NodeDef
	if err := yaml.Unmarshal(src, &def); err != nil {
		return def, err
	}
	return def, checkNodeDef(def)
}

func (p *YamlParser) EncodeNode(def NodeDef) ([]byte, error) {
	return yaml.Marshal(def)
}

// DetectParser returns the JSON parser for sources starting with '{' and the
// YAML parser otherwise.
func DetectParser(src []byte) Parser {
	if bytes.HasPrefix(bytes.TrimSpace(src), []byte("{")) {
		return &JsonParser{}
	}
	return &YamlParser{}
}

func checkNodeDef(def NodeDef) error {
	if def.Type == "" {
		return errors.New("node type can not be empty")
	}
	return nil
}

// Node 已初始化的流程节点
type Node struct {
	Def       NodeDef
	Component types.Component
}

// InitNode creates the component registered for def.Type and initialises it
// with def.Content. Components are looked up in config.ComponentsRegistry,
// falling back to the default Registry.
func InitNode(config types.Config, def NodeDef) (*Node, error) {
	if err := checkNodeDef(def); err != nil {
		return nil, err
	}
	registry := config.ComponentsRegistry
	if registry == nil {
		registry = Registry
	}
	component, err := registry.NewComponent(def.Type)
	if err != nil {
		return nil, err
	}
	if err := component.Init(config, def.Content); err != nil {
		return nil, fmt.Errorf("node %s: %w", def.ID, err)
	}
	return &Node{Def: def, Component: component}, nil
}

// GetNodeId 节点ID
func (n *Node) GetNodeId() string {
	return n.Def.ID
}
