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
	"log"
	"strings"
	"testing"

	"github.com/theopensystemslab/planx-new-sub000/api/types"
	"github.com/theopensystemslab/planx-new-sub000/components/fileupload"
	"github.com/theopensystemslab/planx-new-sub000/test"
	"github.com/theopensystemslab/planx-new-sub000/test/assert"
	"github.com/theopensystemslab/planx-new-sub000/utils/fs"
)

func TestLoad(t *testing.T) {
	pool := &Pool{}
	err := pool.Load("./testdata/nodes")
	assert.Nil(t, err)

	var ids []string
	pool.Range(func(id string, node *Node) bool {
		ids = append(ids, id)
		return true
	})
	assert.Equal(t, 2, len(ids))

	node, ok := pool.Get("uploadAndLabel")
	assert.True(t, ok)
	component := node.Component.(*fileupload.FileUploadAndLabel)
	assert.Equal(t, 4, len(component.Config.FileTypes))
	assert.Equal(t, "Required in conservation areas", component.Config.FileTypes[3].MoreInformation.Info)

	node, ok = pool.Get("otherDrawings")
	assert.True(t, ok)
	assert.Equal(t, "proposal.drawing.other", node.Component.(*fileupload.MultipleFileUpload).Config.Fn)

	pool.Del("otherDrawings")
	_, ok = pool.Get("otherDrawings")
	assert.False(t, ok)

	pool.Stop()
	_, ok = pool.Get("uploadAndLabel")
	assert.False(t, ok)

	assert.NotNil(t, pool.Load("./testdata/missing"))
}

func TestNew(t *testing.T) {
	src := fs.LoadFile("./testdata/nodes/upload_and_label.yaml")
	var buf bytes.Buffer
	node, err := New("drawings", src, types.WithLogger(log.New(&buf, "", 0)), types.WithDebug(true))
	assert.Nil(t, err)
	defer Del("drawings")
	assert.Equal(t, "drawings", node.GetNodeId())

	same, err := New("drawings", nil)
	assert.Nil(t, err)
	assert.True(t, node == same)

	got, ok := Get("drawings")
	assert.True(t, ok)
	assert.True(t, node == got)

	component := node.Component.(*fileupload.FileUploadAndLabel)
	passport := types.NewPassport(map[string]interface{}{"proposal.projectType": []interface{}{"alter.roof.dormer"}})
	state := component.Mount(passport, nil)
	assert.Equal(t, []string{"Site plan", "Roof plan"}, state.FileList.Names(types.CategoryRequired))
	// debug mode traces every decision to the logger
	assert.True(t, strings.Contains(buf.String(), "fileType=Roof plan condition=RequiredIf category=required: rule met"))

	state = component.Upload(state, test.Slot("s1"))
	state, _ = component.Tag(state, "s1", []string{"Site plan", "Roof plan"})
	payload, err := component.Submit(state)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(payload.Data["proposal.drawing.roofPlan"]))
}

func TestNewInvalid(t *testing.T) {
	pool := &Pool{}
	_, err := pool.New("", []byte(`{"id":"a","content":{}}`))
	assert.EqualError(t, err, "node type can not be empty")

	_, err = pool.New("", []byte(`{"id":"a","type":"Unknown"}`))
	assert.EqualError(t, err, "component not found.componentType=Unknown")

	_, err = pool.New("", []byte(`{"id":"a","type":"FileUploadAndLabel","content":{"fileTypes":[]}}`))
	assert.EqualError(t, err, "node a: fileTypes field must have at least 1 items")
	_, ok := pool.Get("a")
	assert.False(t, ok)

	_, err = pool.New("", []byte("type: [unclosed"))
	assert.NotNil(t, err)
}

func TestNewWithCustomRegistry(t *testing.T) {
	registry := new(ComponentRegistry)
	_ = registry.Register(&noopComponent{})
	pool := &Pool{}
	node, err := pool.New("custom", []byte("type: test/noop"), types.WithComponentsRegistry(registry))
	assert.Nil(t, err)
	assert.True(t, node.Component.(*noopComponent).initialised)

	// not known to the default registry
	_, err = pool.New("other", []byte("type: test/noop"))
	assert.NotNil(t, err)
}

func TestParser(t *testing.T) {
	def := NodeDef{ID: "n1", Type: "MultipleFileUpload", Content: types.Configuration{"fn": "drawings"}}
	for _, parser := range []Parser{&JsonParser{}, &YamlParser{}} {
		src, err := parser.EncodeNode(def)
		assert.Nil(t, err)
		decoded, err := DetectParser(src).DecodeNode(src)
		assert.Nil(t, err)
		assert.Equal(t, def, decoded)
	}
	_, ok := DetectParser([]byte("  {\"type\":\"x\"}")).(*JsonParser)
	assert.True(t, ok)
	_, ok = DetectParser([]byte("type: x")).(*YamlParser)
	assert.True(t, ok)
}
