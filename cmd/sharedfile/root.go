// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/sharedfile/cmd/sharedfile/commands"
	"github.com/walteh/sharedfile/cmd/sharedfile/opts"
)

// newRootCmd builds the command tree around one shared RootOpts
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	o := &opts.RootOpts{
		Stdout: stdout,
		Stderr: stderr,
	}

	cmd := &cobra.Command{
		Use:   "sharedfile",
		Short: "Publish work-in-progress project files to SHARED and ARCHIVE",
		Long: `sharedfile copies a project file from its 01_WIP folder into the matching
02_SHARED folder (renaming _W0 to _S0) and then into 02_SHARED/ARCHIVE with a
dated, user-stamped name.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), o)
			if err := o.Load(ctx); err != nil {
				return err
			}
			if !o.Debug {
				logger := zerolog.Ctx(ctx).Level(o.Config.LogLevel())
				ctx = logger.WithContext(ctx)
			}
			cmd.SetContext(ctx)
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	addRootFlags(cmd, o)

	cmd.AddCommand(
		commands.NewPublishCmd(o),
		commands.NewRibbonCmd(o),
		newVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", ".sharedfile.hcl", "config file path")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
}
