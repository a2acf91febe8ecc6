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

package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/sharedfile/cmd/sharedfile/opts"
	"github.com/walteh/sharedfile/pkg/ribbon"
	"gitlab.com/tozd/go/errors"
)

// NewRibbonCmd creates the ribbon command
func NewRibbonCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ribbon",
		Short: "Show the ribbon layout registered at startup",
		Long: `Ribbon registers the configured tab, panel and button on an in-memory
ribbon, the same way the host does at startup, and prints the result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "ribbon").Logger().WithContext(ctx)

			app := ribbon.NewMemory()
			if _, err := ribbon.Register(ctx, app, o.Config.Manifest()); err != nil {
				return errors.Errorf("registering ribbon: %w", err)
			}

			out, err := app.Render()
			if err != nil {
				return errors.Errorf("rendering ribbon: %w", err)
			}
			fmt.Fprint(o.Stdout, out)

			if err := ribbon.Shutdown(ctx, app); err != nil {
				return errors.Errorf("shutting down ribbon: %w", err)
			}
			return nil
		},
	}

	return cmd
}
