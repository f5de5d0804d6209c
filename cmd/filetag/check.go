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
	"github.com/theopensystemslab/planx-new-sub000/scenario"
	"go.uber.org/zap"
)

func newCheckCmd(a *app) *cobra.Command {
	var showEnv bool
	cmd := &cobra.Command{
		Use:   "check <scenario>...",
		Short: "Replay upload scenarios and check their expectations",
		Long: `Check replays the uploads and tags of each scenario through a
FileUploadAndLabel node and evaluates its expectations.
It exits with an error when any expectation is not met.`,
		Example: `  filetag check testdata/*.yaml`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var scenarios []scenario.Scenario
			for _, path := range args {
				loaded, err := scenario.LoadFile(path)
				if err != nil {
					return err
				}
				scenarios = append(scenarios, loaded...)
			}
			reports, err := scenario.RunAll(scenarios, a.options()...)
			if err != nil {
				return err
			}
			failed := 0
			for i := range reports {
				if !reports[i].Passed {
					failed++
					a.logger.Warn("scenario failed", zap.String("scenario", reports[i].Name), zap.Strings("failures", reports[i].Failures))
				}
				if !showEnv {
					reports[i].Env = nil
				}
			}
			if err := a.print(cmd.OutOrStdout(), reports); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d scenarios failed", failed, len(reports))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showEnv, "env", false, "Print the variables each expectation was evaluated with")
	return cmd
}
