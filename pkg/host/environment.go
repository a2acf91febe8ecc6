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
	"os"
	"os/user"
	"strings"
	"time"
)

// 📄 Document is the active project as the host sees it
type Document interface {
	// IsWorkshared reports whether the document is a local copy of a central model
	IsWorkshared() bool
	// CentralModelPath is the user-visible path of the central model
	CentralModelPath() string
	// PathName is the path of the document itself, empty when never saved
	PathName() string
}

// 🌍 Environment is everything the command reads from the host at invocation time
type Environment interface {
	Now() time.Time
	UserName() string
	ActiveDocument() Document
}

// SourcePath returns the path that gets published: the central model for
// workshared documents, the document path otherwise.
func SourcePath(doc Document) string {
	if doc.IsWorkshared() {
		return doc.CentralModelPath()
	}
	return doc.PathName()
}

// FileDocument is a Document backed by plain paths
type FileDocument struct {
	Path    string
	Central string // set for workshared documents
}

func (d FileDocument) IsWorkshared() bool       { return d.Central != "" }
func (d FileDocument) CentralModelPath() string { return d.Central }
func (d FileDocument) PathName() string         { return d.Path }

// StaticEnvironment is an Environment with fixed answers
type StaticEnvironment struct {
	Clock    func() time.Time
	User     string
	Document Document
}

func (e StaticEnvironment) Now() time.Time {
	if e.Clock == nil {
		return time.Now()
	}
	return e.Clock()
}

func (e StaticEnvironment) UserName() string         { return e.User }
func (e StaticEnvironment) ActiveDocument() Document { return e.Document }

// 🏭 NewLocalEnvironment reads the clock and user from the operating system
func NewLocalEnvironment(doc Document) StaticEnvironment {
	return StaticEnvironment{
		Clock:    time.Now,
		User:     CurrentUserName(),
		Document: doc,
	}
}

// CurrentUserName returns the login name of the current user without any DOMAIN\ prefix
func CurrentUserName() string {
	name := ""
	if u, err := user.Current(); err == nil {
		name = u.Username
	}
	if name == "" {
		name = os.Getenv("USERNAME")
	}
	if name == "" {
		name = os.Getenv("USER")
	}
	return StripDomain(name)
}

// StripDomain turns "DOMAIN\user" into "user"
func StripDomain(name string) string {
	if i := strings.LastIndex(name, `\`); i >= 0 {
		return name[i+1:]
	}
	return name
}
