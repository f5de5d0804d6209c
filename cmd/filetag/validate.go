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
	"github.com/spf13/cobra"
)

// validateResult 节点内容校验结果
type validateResult struct {
	File  string `json:"file" yaml:"file"`
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
	Valid bool   `json:"valid" yaml:"valid"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

func newValidateCmd(a *app) *cobra.Command {
	var contentFile string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the content of a node",
		Long: `Validate checks that a node can be saved: its type is registered, its content
has a title and at least one file type, and every file type has a valid rule.`,
		Example: `  filetag validate --content node.yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := validateResult{File: contentFile}
			node, err := loadNode(contentFile, a.options()...)
			if err != nil {
				result.Error = err.Error()
				if printErr := a.print(cmd.OutOrStdout(), result); printErr != nil {
					return printErr
				}
				return err
			}
			result.ID, result.Type, result.Valid = node.GetNodeId(), node.Def.Type, true
			return a.print(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVarP(&contentFile, "content", "c", "", "Node definition or FileUploadAndLabel content (yaml or json)")
	return cmd
}
