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

package status

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrSourceNotFound is returned when the file to copy does not exist
var ErrSourceNotFound = errors.Base("source file not found")

// 📊 FileStatus represents what a copy did to its destination
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusNew                  // Destination did not exist
	StatusModified             // Destination existed with different content
	StatusUnchanged            // Destination existed with identical content
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusNew:
		return "new"
	case StatusModified:
		return "modified"
	case StatusUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// Compare derives the status of a destination from its checksum before and after a write
func Compare(existed bool, before, after string) FileStatus {
	switch {
	case !existed:
		return StatusNew
	case before == after:
		return StatusUnchanged
	default:
		return StatusModified
	}
}

// 💾 Manager performs the directory and copy operations of a publish
type Manager struct {
	dirMode os.FileMode
}

// 🏭 New creates a new status manager
func New() *Manager {
	return &Manager{
		dirMode: 0755,
	}
}

// 🔍 calculateChecksum generates a SHA-256 hash of the reader's content
func calculateChecksum(r io.Reader) (string, error) {
	hash := sha256.New()
	if _, err := io.Copy(hash, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

// EnsureDir creates dir and any missing parents. It reports whether anything was created.
// An empty dir is the working directory.
func (m *Manager) EnsureDir(ctx context.Context, dir string) (bool, error) {
	if dir == "" {
		dir = "."
	}
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return false, errors.Errorf("%s exists and is not a directory", dir)
		}
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, errors.Errorf("checking directory %s: %w", dir, err)
	}

	zerolog.Ctx(ctx).Debug().Str("dir", dir).Msg("creating directory")
	if err := os.MkdirAll(dir, m.dirMode); err != nil {
		return false, errors.Errorf("creating directory %s: %w", dir, err)
	}
	return true, nil
}

// Checksum returns the SHA-256 of the file at path and whether it exists
func (m *Manager) Checksum(ctx context.Context, path string) (string, bool, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sum, err := calculateChecksum(f)
	if err != nil {
		return "", true, errors.Errorf("reading %s: %w", path, err)
	}
	return sum, true, nil
}

// CopyFile copies src over dst and returns the checksum of the copied content.
// The content is written to a temp file in dst's directory and renamed into place,
// so dst keeps its previous content if anything fails. dst gets src's permissions.
func (m *Manager) CopyFile(ctx context.Context, src, dst string) (string, error) {
	srcFile, err := os.Open(src)
	if os.IsNotExist(err) {
		return "", errors.Errorf("%w: %s", ErrSourceNotFound, src)
	}
	if err != nil {
		return "", errors.Errorf("opening source file: %w", err)
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return "", errors.Errorf("reading source file info: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*.tmp")
	if err != nil {
		return "", errors.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	hash := sha256.New()
	if _, err := io.Copy(io.MultiWriter(tmp, hash), srcFile); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", errors.Errorf("copying file content: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, srcInfo.Mode().Perm()); err != nil {
		os.Remove(tmpPath)
		return "", errors.Errorf("setting file mode: %w", err)
	}

	// os.Rename replaces an existing dst
	if err := os.Rename(tmpPath, dst); err != nil {
		os.Remove(tmpPath)
		return "", errors.Errorf("replacing %s: %w", dst, err)
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
