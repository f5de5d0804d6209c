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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/theopensystemslab/planx-new-sub000/api/types"
	"github.com/theopensystemslab/planx-new-sub000/components/fileupload"
	"go.uber.org/zap"
)

// classifyResult 分类结果
type classifyResult struct {
	ID       string           `json:"id" yaml:"id"`
	Type     string           `json:"type" yaml:"type"`
	FileList types.FileList   `json:"fileList" yaml:"fileList"`
	Visible  []types.Category `json:"visible,omitempty" yaml:"visible,omitempty"`
}

func newClassifyCmd(a *app) *cobra.Command {
	var contentFile, passportFile string
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify the file types of a node for a passport",
		Long: `Classify buckets the file types of a node into required, recommended and
optional for the answers in the passport, and prints the resulting file list.`,
		Example: `  filetag classify --content node.yaml --passport passport.json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := loadNode(contentFile, a.options()...)
			if err != nil {
				return err
			}
			passport, err := loadPassport(passportFile)
			if err != nil {
				return err
			}
			result := classifyResult{ID: node.GetNodeId(), Type: node.Def.Type}
			switch component := node.Component.(type) {
			case *fileupload.FileUploadAndLabel:
				result.FileList = component.Mount(passport, nil).FileList
				result.Visible = component.VisibleCategories(result.FileList)
			case *fileupload.MultipleFileUpload:
				result.FileList = component.FileList(passport)
			default:
				return fmt.Errorf("%w: %s", errUnsupportedNode, node.Def.Type)
			}
			a.logger.Debug("classify", zap.String("node", result.ID), zap.Int("fileTypes", result.FileList.Len()))
			return a.print(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVarP(&contentFile, "content", "c", "", "Node definition or FileUploadAndLabel content (yaml or json)")
	cmd.Flags().StringVarP(&passportFile, "passport", "p", "", "Passport answers (yaml or json)")
	return cmd
}
