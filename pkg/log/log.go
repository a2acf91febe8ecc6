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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/sharedfile/pkg/publish"
	"github.com/walteh/sharedfile/pkg/status"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 45 // Base width for filename
	stageWidth  = 10 // Width for stage name
	statusWidth = 12 // Width for status text
)

// 🎯 Logger writes publish progress to a console and to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger that mirrors console lines into zlog
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 📝 formatStep formats a copy step for display
func (l *Logger) formatStep(step publish.Step) string {
	var symbol rune
	var symbolColor color.Attribute
	switch step.Status {
	case status.StatusNew:
		symbol = '✓'
		symbolColor = color.FgGreen
	case status.StatusModified:
		symbol = '⟳'
		symbolColor = color.FgBlue
	default:
		symbol = '•'
		symbolColor = color.FgCyan
	}

	stageColor := color.FgCyan
	if step.Stage == publish.StageArchive {
		stageColor = color.FgYellow
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, displayName(step.Destination)),
		color.New(stageColor).Sprint(fmt.Sprintf("%-*s", stageWidth, step.Stage)),
		fmt.Sprintf("%-*s", statusWidth, step.Status))
}

// displayName trims a host path to its last element, whichever separator it uses
func displayName(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' || path[i] == '\\' {
			return path[i+1:]
		}
	}
	return path
}

// 📝 OnStep logs a completed copy; it makes Logger a publish.Observer
func (l *Logger) OnStep(ctx context.Context, step publish.Step) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if step.CreatedDir {
		fmt.Fprintf(l.console, "%*s%s %s\n", fileIndent, "",
			color.New(color.FgMagenta).Sprint("+"),
			color.New(color.Faint).Sprint(step.DestinationDir))
	}
	fmt.Fprintln(l.console, l.formatStep(step))

	l.zlog.Info().
		Str("stage", string(step.Stage)).
		Str("src", step.Source).
		Str("dst", step.Destination).
		Str("status", step.Status.String()).
		Bool("created_dir", step.CreatedDir).
		Msg("file copied")
}

// 📝 StartPublish prints the header for one document
func (l *Logger) StartPublish(ctx context.Context, source string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "%s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(source))

	l.zlog.Info().Str("source", source).Msg("publishing document")
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("sharedfile")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
