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

package publish

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/sharedfile/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🏷️ Naming tokens
const (
	WorkToken        = "_W0"
	SharedToken      = "_S0"
	WorkFolder       = "01_WIP"
	SharedFolder     = "02_SHARED"
	ArchiveFolder    = "ARCHIVE"
	UserMarker       = "_(user)_"
	ProjectExtension = ".rvt"
	DateLayout       = "2006-01-02"
)

var (
	ErrNoSourcePath = errors.Base("document has no file path")
	ErrNoFileName   = errors.Base("source path has no file name")
	ErrNoUser       = errors.Base("user name is required")
)

var (
	fileNameRules  = text.MustSimpleTextReplacer(text.ReplacementRule{FromText: WorkToken, ToText: SharedToken})
	directoryRules = text.MustSimpleTextReplacer(text.ReplacementRule{FromText: WorkFolder, ToText: SharedFolder})

	// workLayoutPattern matches sources that sit under a 01_WIP path segment
	workLayoutPattern = "**/" + WorkFolder + "/**"
)

// 📥 Request holds everything a publish needs from its caller
type Request struct {
	SourcePath string
	Date       time.Time
	User       string
}

// WarningKind classifies a Warning
type WarningKind int

const (
	WarnFileNameUnchanged  WarningKind = iota // _W0 not found in the file name
	WarnDirectoryUnchanged                    // 01_WIP not found in the directory
	WarnWorkFolderSegment                     // 01_WIP found, but not as a whole folder name
)

// ⚠️ Warning describes a naming rule that did not do what the folder convention expects
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	return w.Message
}

// 📋 Plan is the derived set of names and paths for one publish
type Plan struct {
	SourcePath      string
	SourceDirectory string // with trailing separator, empty for a bare file name
	SourceFileName  string
	Separator       string

	SharedFileName   string
	ArchiveFileName  string
	SharedDirectory  string
	ArchiveDirectory string

	Warnings []Warning
}

// SharedPath is where stage 1 writes
func (p *Plan) SharedPath() string {
	return p.SharedDirectory + p.SharedFileName
}

// ArchivePath is where stage 2 writes
func (p *Plan) ArchivePath() string {
	return p.ArchiveDirectory + p.ArchiveFileName
}

// splitPath splits at the last '\' or '/' so host paths split the same way on every OS
func splitPath(path string) (dir, base, sep string) {
	i := strings.LastIndexAny(path, `\/`)
	if i < 0 {
		return "", path, string(filepath.Separator)
	}
	return path[:i+1], path[i+1:], path[i : i+1]
}

// ArchiveFileName builds "<date>_<shared name without .rvt>_(user)_<user>.rvt"
func ArchiveFileName(sharedFileName string, date time.Time, user string) string {
	return date.Format(DateLayout) + "_" +
		strings.ReplaceAll(sharedFileName, ProjectExtension, "") +
		UserMarker + user + ProjectExtension
}

// 🧮 Derive computes the shared and archive names for req. It has no side effects.
func Derive(req Request) (*Plan, error) {
	if req.SourcePath == "" {
		return nil, errors.WithStack(ErrNoSourcePath)
	}
	if req.User == "" {
		return nil, errors.WithStack(ErrNoUser)
	}

	dir, base, sep := splitPath(req.SourcePath)
	if base == "" {
		return nil, errors.Errorf("%w: %s", ErrNoFileName, req.SourcePath)
	}

	nameResult := fileNameRules.ReplaceText(base)
	dirResult := directoryRules.ReplaceText(dir)

	plan := &Plan{
		SourcePath:      req.SourcePath,
		SourceDirectory: dir,
		SourceFileName:  base,
		Separator:       sep,
		SharedFileName:  nameResult.Modified,
		SharedDirectory: dirResult.Modified,
	}
	plan.ArchiveFileName = ArchiveFileName(plan.SharedFileName, req.Date, req.User)
	plan.ArchiveDirectory = plan.SharedDirectory + ArchiveFolder + sep

	for _, rule := range nameResult.Unmatched() {
		plan.Warnings = append(plan.Warnings, Warning{
			Kind:    WarnFileNameUnchanged,
			Message: fmt.Sprintf("file name %q does not contain %q, shared copy keeps the same name", base, rule.FromText),
		})
	}
	for _, rule := range dirResult.Unmatched() {
		plan.Warnings = append(plan.Warnings, Warning{
			Kind:    WarnDirectoryUnchanged,
			Message: fmt.Sprintf("directory %q does not contain %q, shared copy is written next to the source", dir, rule.FromText),
		})
	}
	if dirResult.WasModified && !inWorkFolder(req.SourcePath) {
		plan.Warnings = append(plan.Warnings, Warning{
			Kind:    WarnWorkFolderSegment,
			Message: fmt.Sprintf("%q appears inside a folder name of %q, not as a folder of its own", WorkFolder, dir),
		})
	}

	return plan, nil
}

func inWorkFolder(path string) bool {
	slashed := strings.TrimLeft(strings.ReplaceAll(path, `\`, "/"), "/")
	matched, err := doublestar.Match(workLayoutPattern, slashed)
	return err == nil && matched
}
