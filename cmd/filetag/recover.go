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
)

// recoverResult 恢复结果
type recoverResult struct {
	ID        string                 `json:"id" yaml:"id"`
	Slots     []types.FileUploadSlot `json:"slots" yaml:"slots"`
	FileList  *types.FileList        `json:"fileList,omitempty" yaml:"fileList,omitempty"`
	Returning bool                   `json:"returning" yaml:"returning"`
}

func newRecoverCmd(a *app) *cobra.Command {
	var contentFile, passportFile, previousFile string
	cmd := &cobra.Command{
		Use:   "recover",
		Short: "Restore the uploads of a previous submission",
		Long: `Recover classifies the file types for the current passport and restores the
uploads and tags of a previous submission onto them, as a returning user sees them.`,
		Example: `  filetag recover --content node.yaml --passport passport.json --previous payload.json`,
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
			previous, err := loadPrevious(previousFile)
			if err != nil {
				return err
			}
			result := recoverResult{ID: node.GetNodeId()}
			switch component := node.Component.(type) {
			case *fileupload.FileUploadAndLabel:
				state := component.Mount(passport, previous)
				result.Slots, result.FileList, result.Returning = state.Slots, &state.FileList, state.Returning
			case *fileupload.MultipleFileUpload:
				result.Slots = component.Recover(previous)
				result.Returning = len(result.Slots) > 0
			default:
				return fmt.Errorf("%w: %s", errUnsupportedNode, node.Def.Type)
			}
			if result.Slots == nil {
				result.Slots = []types.FileUploadSlot{}
			}
			return a.print(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVarP(&contentFile, "content", "c", "", "Node definition or FileUploadAndLabel content (yaml or json)")
	cmd.Flags().StringVarP(&passportFile, "passport", "p", "", "Passport answers (yaml or json)")
	cmd.Flags().StringVar(&previousFile, "previous", "", "Previously submitted payload (yaml or json)")
	return cmd
}
