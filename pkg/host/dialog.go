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

package host

import (
	"io"

	"github.com/pterm/pterm"
)

// 💬 Dialog shows a command result the way the host's task dialog would
type Dialog struct {
	w io.Writer
}

// NewDialog creates a dialog writing to w
func NewDialog(w io.Writer) *Dialog {
	return &Dialog{w: w}
}

// Show prints one line for the result. Failure messages are shown truncated.
func (d *Dialog) Show(result Result, message string) {
	switch result {
	case ResultSucceeded:
		pterm.Success.WithWriter(d.w).Println("Published to SHARED")
	case ResultCancelled:
		pterm.Warning.WithWriter(d.w).Println("Cancelled")
	default:
		pterm.Error.WithWriter(d.w).Println(TruncateMessage(message))
	}
}
