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
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/sharedfile/cmd/sharedfile/opts"
	"github.com/walteh/sharedfile/pkg/host"
	"github.com/walteh/sharedfile/pkg/log"
	"github.com/walteh/sharedfile/pkg/operation"
	"github.com/walteh/sharedfile/pkg/publish"
	"gitlab.com/tozd/go/errors"
)

// ExitError carries a non-zero exit code out of a command
type ExitError struct {
	Code   int
	Result host.Result
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("publish %s", e.Result)
}

// exitCode maps a command result to the process exit status
func exitCode(r host.Result) int {
	switch r {
	case host.ResultFailed:
		return 1
	case host.ResultCancelled:
		return 2
	default:
		return 0
	}
}

type publishFlags struct {
	central string
	date    string
	user    string
	jobs    int
}

// NewPublishCmd creates the publish command
func NewPublishCmd(o *opts.RootOpts) *cobra.Command {
	f := &publishFlags{}

	cmd := &cobra.Command{
		Use:   "publish <file>...",
		Short: "Copy project files to SHARED and ARCHIVE",
		Long: `Publish copies each file into its shared folder and then archives the
shared copy. Every file is an independent document; --jobs publishes several
at once.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "publish").Logger().WithContext(ctx)

			if f.central != "" && len(args) != 1 {
				return errors.New("--central requires exactly one file")
			}

			clock := time.Now
			if f.date != "" {
				d, err := time.ParseInLocation(publish.DateLayout, f.date, time.Local)
				if err != nil {
					return errors.Errorf("parsing --date: %w", err)
				}
				clock = func() time.Time { return d }
			}

			user := f.user
			if user == "" {
				user = host.CurrentUserName()
			}

			jobs := make([]operation.Job, 0, len(args))
			for _, arg := range args {
				path, err := filepath.Abs(arg)
				if err != nil {
					return errors.Errorf("resolving %s: %w", arg, err)
				}
				jobs = append(jobs, operation.Job{
					Name: arg,
					Env: host.StaticEnvironment{
						Clock:    clock,
						User:     host.StripDomain(user),
						Document: host.FileDocument{Path: path, Central: f.central},
					},
				})
			}

			console := log.New(o.Stdout, *zerolog.Ctx(ctx))
			console.Header(fmt.Sprintf("publishing %d document(s) via %s", len(jobs), o.Config.String()))

			command := host.NewCommand(console)
			outcomes := operation.NewRunner(command, f.jobs).Run(ctx, jobs)

			dialog := host.NewDialog(o.Stdout)
			for _, out := range outcomes {
				dialog.Show(out.Result, out.Message)
			}

			result := operation.Summarize(outcomes)
			if code := exitCode(result); code != 0 {
				return &ExitError{Code: code, Result: result}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&f.central, "central", "", "central model path; treats the document as workshared")
	cmd.Flags().StringVar(&f.date, "date", "", "publish date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&f.user, "user", "", "user name stamped on the archive copy (default current user)")
	cmd.Flags().IntVar(&f.jobs, "jobs", 1, "number of documents published at once")

	return cmd
}
