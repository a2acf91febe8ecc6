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

// Package host adapts the publish pipeline to a host application: it reads the
// active document, user and clock at the boundary and turns the outcome into a
// succeeded/failed/cancelled result.
package host

import (
	"context"
	"io"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/walteh/sharedfile/pkg/log"
	"github.com/walteh/sharedfile/pkg/publish"
	"gitlab.com/tozd/go/errors"
)

// CommandID is the identifier ribbon buttons bind to
const CommandID = "SharedFile.Command"

// MaxMessageLength is the longest failure message the host displays
const MaxMessageLength = 1023

var ErrNoActiveDocument = errors.Base("no active document")

// 🚦 Result is the outcome reported to the host
type Result int

const (
	ResultSucceeded Result = iota
	ResultFailed
	ResultCancelled
)

func (r Result) String() string {
	switch r {
	case ResultSucceeded:
		return "succeeded"
	case ResultFailed:
		return "failed"
	case ResultCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// TruncateMessage cuts msg to MaxMessageLength characters
func TruncateMessage(msg string) string {
	if utf8.RuneCountInString(msg) <= MaxMessageLength {
		return msg
	}
	runes := []rune(msg)
	return string(runes[:MaxMessageLength])
}

// 🎮 Command publishes the active document to SHARED and ARCHIVE
type Command struct {
	console   *log.Logger
	publisher *publish.Publisher
}

// 🏭 NewCommand creates a command reporting to console. A nil console discards output.
func NewCommand(console *log.Logger, opts ...publish.Option) *Command {
	if console == nil {
		console = log.New(io.Discard, zerolog.Nop())
	}
	opts = append([]publish.Option{publish.WithObserver(console)}, opts...)
	return &Command{
		console:   console,
		publisher: publish.NewPublisher(opts...),
	}
}

// ID returns CommandID
func (c *Command) ID() string {
	return CommandID
}

// Execute is the host entry point. The message is empty on success.
func (c *Command) Execute(ctx context.Context, env Environment) (Result, string) {
	if err := ctx.Err(); err != nil {
		return ResultCancelled, TruncateMessage(err.Error())
	}

	logger := zerolog.Ctx(ctx).With().
		Str("command", CommandID).
		Str("run_id", uuid.NewString()).
		Logger()
	ctx = logger.WithContext(ctx)

	if _, err := c.Run(ctx, env); err != nil {
		logger.Error().Err(err).Msg("publish failed")
		c.console.Error(err.Error())
		return ResultFailed, TruncateMessage(err.Error())
	}

	return ResultSucceeded, ""
}

// Run derives the plan for the active document and publishes it
func (c *Command) Run(ctx context.Context, env Environment) (*publish.Result, error) {
	doc := env.ActiveDocument()
	if doc == nil {
		return nil, errors.WithStack(ErrNoActiveDocument)
	}

	plan, err := publish.Derive(publish.Request{
		SourcePath: SourcePath(doc),
		Date:       env.Now(),
		User:       env.UserName(),
	})
	if err != nil {
		return nil, errors.Errorf("deriving names: %w", err)
	}

	c.console.StartPublish(ctx, plan.SourcePath)
	for _, w := range plan.Warnings {
		c.console.Warning(w.Message)
	}

	result, err := c.publisher.Publish(ctx, plan)
	if err != nil {
		return result, err
	}

	c.console.Successf("published %s", plan.SharedFileName)
	return result, nil
}
