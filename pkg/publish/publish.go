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
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/sharedfile/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 💾 FileSystem is the file access a Publisher needs. *status.Manager implements it.
type FileSystem interface {
	EnsureDir(ctx context.Context, dir string) (bool, error)
	Checksum(ctx context.Context, path string) (string, bool, error)
	CopyFile(ctx context.Context, src, dst string) (string, error)
}

// Stage identifies a step of the pipeline
type Stage string

const (
	StageShared  Stage = "shared"
	StageArchive Stage = "archive"
)

// 📝 Step describes one completed copy
type Step struct {
	Stage          Stage
	Source         string
	Destination    string
	Status         status.FileStatus
	CreatedDir     bool
	DestinationDir string
}

// Observer is told about every completed copy
type Observer interface {
	OnStep(ctx context.Context, step Step)
}

// 📦 SharedArtifact is the output of stage 1 and the input of stage 2
type SharedArtifact struct {
	Path     string
	Checksum string
	Status   status.FileStatus
}

// 🗄️ ArchiveArtifact is the output of stage 2
type ArchiveArtifact struct {
	Path     string
	Source   string
	Checksum string
	Status   status.FileStatus
}

// Result is what a full publish produced
type Result struct {
	Plan    *Plan
	Shared  *SharedArtifact
	Archive *ArchiveArtifact
}

// 🚀 Publisher runs the two copy stages of a Plan
type Publisher struct {
	fs       FileSystem
	observer Observer
}

// Option configures a Publisher
type Option func(*Publisher)

// WithFileSystem replaces the default status.Manager
func WithFileSystem(fs FileSystem) Option {
	return func(p *Publisher) {
		p.fs = fs
	}
}

// WithObserver registers an observer for completed steps
func WithObserver(o Observer) Option {
	return func(p *Publisher) {
		p.observer = o
	}
}

// 🏭 NewPublisher creates a publisher backed by the real file system unless told otherwise
func NewPublisher(opts ...Option) *Publisher {
	p := &Publisher{fs: status.New()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// copyInto ensures dir exists and copies src to dst, reporting what changed
func (p *Publisher) copyInto(ctx context.Context, stage Stage, dir, src, dst string) (string, status.FileStatus, error) {
	created, err := p.fs.EnsureDir(ctx, dir)
	if err != nil {
		return "", status.StatusUnknown, errors.Errorf("ensuring %s directory: %w", stage, err)
	}

	before, existed, err := p.fs.Checksum(ctx, dst)
	if err != nil {
		return "", status.StatusUnknown, errors.Errorf("inspecting %s: %w", dst, err)
	}

	after, err := p.fs.CopyFile(ctx, src, dst)
	if err != nil {
		return "", status.StatusUnknown, errors.Errorf("copying %s to %s: %w", src, dst, err)
	}

	st := status.Compare(existed, before, after)
	zerolog.Ctx(ctx).Debug().
		Str("stage", string(stage)).
		Str("src", src).
		Str("dst", dst).
		Str("status", st.String()).
		Bool("created_dir", created).
		Msg("copied file")

	if p.observer != nil {
		p.observer.OnStep(ctx, Step{
			Stage:          stage,
			Source:         src,
			Destination:    dst,
			Status:         st,
			CreatedDir:     created,
			DestinationDir: dir,
		})
	}

	return after, st, nil
}

// PublishShared is stage 1: source -> shared directory
func (p *Publisher) PublishShared(ctx context.Context, plan *Plan) (*SharedArtifact, error) {
	if plan == nil {
		return nil, errors.New("plan is required")
	}

	dst := plan.SharedPath()
	sum, st, err := p.copyInto(ctx, StageShared, plan.SharedDirectory, plan.SourcePath, dst)
	if err != nil {
		return nil, err
	}

	return &SharedArtifact{Path: dst, Checksum: sum, Status: st}, nil
}

// Archive is stage 2: shared copy -> archive directory
func (p *Publisher) Archive(ctx context.Context, plan *Plan, shared *SharedArtifact) (*ArchiveArtifact, error) {
	if plan == nil {
		return nil, errors.New("plan is required")
	}
	if shared == nil || shared.Path == "" {
		return nil, errors.New("shared artifact is required")
	}

	dst := plan.ArchivePath()
	sum, st, err := p.copyInto(ctx, StageArchive, plan.ArchiveDirectory, shared.Path, dst)
	if err != nil {
		return nil, err
	}

	return &ArchiveArtifact{Path: dst, Source: shared.Path, Checksum: sum, Status: st}, nil
}

// 🏃 Publish runs stage 1 then stage 2. When stage 2 fails the returned
// Result still carries the stage 1 artifact.
func (p *Publisher) Publish(ctx context.Context, plan *Plan) (*Result, error) {
	result := &Result{Plan: plan}

	shared, err := p.PublishShared(ctx, plan)
	if err != nil {
		return result, errors.Errorf("publishing shared copy: %w", err)
	}
	result.Shared = shared

	archive, err := p.Archive(ctx, plan, shared)
	if err != nil {
		return result, errors.Errorf("archiving shared copy: %w", err)
	}
	result.Archive = archive

	return result, nil
}
