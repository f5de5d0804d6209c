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

package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	filetag "github.com/theopensystemslab/planx-new-sub000"
	"github.com/theopensystemslab/planx-new-sub000/api/types"
	"github.com/theopensystemslab/planx-new-sub000/components/fileupload"
	"github.com/theopensystemslab/planx-new-sub000/utils/fs"
	"github.com/theopensystemslab/planx-new-sub000/utils/maps"
	"gopkg.in/yaml.v3"
)

// readDocument reads a YAML or JSON file into a map.
func readDocument(kind, path string) ([]byte, map[string]interface{}, error) {
	if path == "" {
		return nil, nil, fmt.Errorf("--%s is required", kind)
	}
	src := fs.LoadFile(path)
	if src == nil {
		return nil, nil, fmt.Errorf("cannot read %s file %s", kind, path)
	}
	var doc map[string]interface{}
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc == nil {
		return nil, nil, fmt.Errorf("%s: empty %s document", path, kind)
	}
	return src, doc, nil
}

// loadNode reads a node definition. A document without a type is the bare
// content of a FileUploadAndLabel node named after the file.
func loadNode(path string, opts ...types.Option) (*filetag.Node, error) {
	src, doc, err := readDocument("content", path)
	if err != nil {
		return nil, err
	}
	var def filetag.NodeDef
	if _, ok := doc["type"]; ok {
		if def, err = filetag.DetectParser(src).DecodeNode(src); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	} else {
		name := filepath.Base(path)
		def = filetag.NodeDef{
			ID:      strings.TrimSuffix(name, filepath.Ext(name)),
			Type:    (&fileupload.FileUploadAndLabel{}).Type(),
			Content: doc,
		}
	}
	config := types.NewConfig(append([]types.Option{types.WithComponentsRegistry(filetag.Registry)}, opts...)...)
	return filetag.InitNode(config, def)
}

// loadPassport reads a passport, either {data: {...}} or the bare answers.
// An empty path is an empty passport.
func loadPassport(path string) (types.Passport, error) {
	if path == "" {
		return types.NewPassport(nil), nil
	}
	_, doc, err := readDocument("passport", path)
	if err != nil {
		return types.Passport{}, err
	}
	if data, ok := doc["data"].(map[string]interface{}); ok && len(doc) == 1 {
		return types.NewPassport(data), nil
	}
	return types.NewPassport(doc), nil
}

// loadPrevious reads a persisted submission record, either {data: {...}} or
// the bare fn map.
func loadPrevious(path string) (*types.UserData, error) {
	_, doc, err := readDocument("previous", path)
	if err != nil {
		return nil, err
	}
	if _, ok := doc["data"]; !ok || len(doc) != 1 {
		doc = map[string]interface{}{"data": doc}
	}
	previous := types.NewUserData()
	if err := maps.Decode(doc, previous, types.RuleHookFunc()); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return previous, nil
}

var errUnsupportedNode = errors.New("unsupported node type")
