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
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func TestFileStatusString(t *testing.T) {
	assert.Equal(t, "new", StatusNew.String())
	assert.Equal(t, "modified", StatusModified.String())
	assert.Equal(t, "unchanged", StatusUnchanged.String())
	assert.Equal(t, "unknown", StatusUnknown.String())
}

func TestCompare(t *testing.T) {
	assert.Equal(t, StatusNew, Compare(false, "", "abc"))
	assert.Equal(t, StatusUnchanged, Compare(true, "abc", "abc"))
	assert.Equal(t, StatusModified, Compare(true, "abc", "def"))
}

func TestEnsureDir(t *testing.T) {
	ctx := testContext(t)
	mgr := New()

	tests := []struct {
		name        string
		setup       func(t *testing.T, dir string) string
		wantCreated bool
		errContains string
	}{
		{
			name: "creates_missing_parents",
			setup: func(t *testing.T, dir string) string {
				return filepath.Join(dir, "02_SHARED", "ARCHIVE")
			},
			wantCreated: true,
		},
		{
			name: "existing_directory",
			setup: func(t *testing.T, dir string) string {
				target := filepath.Join(dir, "02_SHARED")
				require.NoError(t, os.MkdirAll(target, 0755))
				return target
			},
		},
		{
			name: "file_in_the_way",
			setup: func(t *testing.T, dir string) string {
				target := filepath.Join(dir, "ARCHIVE")
				require.NoError(t, os.WriteFile(target, []byte("x"), 0644))
				return target
			},
			errContains: "is not a directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := tt.setup(t, t.TempDir())

			created, err := mgr.EnsureDir(ctx, target)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCreated, created)
			info, err := os.Stat(target)
			require.NoError(t, err)
			assert.True(t, info.IsDir())
		})
	}
}

func TestEnsureDirEmptyIsWorkingDirectory(t *testing.T) {
	created, err := New().EnsureDir(testContext(t), "")
	require.NoError(t, err, "a file name without a directory lives in the working directory")
	assert.False(t, created)
}

func TestCopyFileKeepsSourcePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}
	ctx := testContext(t)
	mgr := New()
	dir := t.TempDir()

	for _, mode := range []os.FileMode{0600, 0640, 0755} {
		t.Run(mode.String(), func(t *testing.T) {
			src := filepath.Join(dir, "src_"+mode.String()+".rvt")
			dst := filepath.Join(dir, "dst_"+mode.String()+".rvt")
			require.NoError(t, os.WriteFile(src, []byte("model"), 0600))
			require.NoError(t, os.Chmod(src, mode))

			_, err := mgr.CopyFile(ctx, src, dst)
			require.NoError(t, err)

			info, err := os.Stat(dst)
			require.NoError(t, err)
			assert.Equal(t, mode, info.Mode().Perm(), "destination should carry the source permissions")
		})
	}
}

func TestCopyFile(t *testing.T) {
	ctx := testContext(t)
	mgr := New()
	dir := t.TempDir()

	src := filepath.Join(dir, "Bldg_W0.rvt")
	dst := filepath.Join(dir, "Bldg_S0.rvt")
	require.NoError(t, os.WriteFile(src, []byte("model v1"), 0600))

	sum1, err := mgr.CopyFile(ctx, src, dst)
	require.NoError(t, err)
	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "model v1", string(content))

	existing, ok, err := mgr.Checksum(ctx, dst)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, sum1, existing, "returned checksum should match the written file")

	// overwrite
	require.NoError(t, os.WriteFile(src, []byte("model v2"), 0600))
	sum2, err := mgr.CopyFile(ctx, src, dst)
	require.NoError(t, err)
	assert.NotEqual(t, sum1, sum2)
	content, err = os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "model v2", string(content))

	// no temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "unexpected temp file %s", e.Name())
	}
}

func TestCopyFileErrors(t *testing.T) {
	ctx := testContext(t)
	mgr := New()
	dir := t.TempDir()

	t.Run("missing_source", func(t *testing.T) {
		_, err := mgr.CopyFile(ctx, filepath.Join(dir, "missing.rvt"), filepath.Join(dir, "out.rvt"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrSourceNotFound), "error should wrap ErrSourceNotFound")
	})

	t.Run("missing_destination_directory", func(t *testing.T) {
		src := filepath.Join(dir, "in.rvt")
		require.NoError(t, os.WriteFile(src, []byte("x"), 0644))
		_, err := mgr.CopyFile(ctx, src, filepath.Join(dir, "nope", "out.rvt"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "creating temp file")
	})

	t.Run("destination_is_directory", func(t *testing.T) {
		src := filepath.Join(dir, "in2.rvt")
		require.NoError(t, os.WriteFile(src, []byte("x"), 0644))
		dst := filepath.Join(dir, "taken")
		require.NoError(t, os.MkdirAll(filepath.Join(dst, "child"), 0755))

		_, err := mgr.CopyFile(ctx, src, dst)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "replacing")

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "temp file should be removed on failure")
		}
	})
}

func TestChecksumMissingFile(t *testing.T) {
	sum, ok, err := New().Checksum(testContext(t), filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, sum)
}
