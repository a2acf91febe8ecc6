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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/sharedfile/pkg/host"
	"golang.org/x/sync/errgroup"
)

// 🎮 Executor is anything that can run against a host environment. *host.Command implements it.
type Executor interface {
	Execute(ctx context.Context, env host.Environment) (host.Result, string)
}

// 📄 Job is one document to publish
type Job struct {
	Name string
	Env  host.Environment
}

// 📊 Outcome is the result of one Job
type Outcome struct {
	Job     Job
	Result  host.Result
	Message string
}

// 🏃 OperationRunner executes jobs
type OperationRunner struct {
	executor Executor
	limit    int
}

// 🏗️ NewRunner creates a new runner. A limit below 2 runs jobs one at a time.
func NewRunner(executor Executor, limit int) *OperationRunner {
	return &OperationRunner{
		executor: executor,
		limit:    limit,
	}
}

// 🏃 Run executes every job and returns outcomes in job order
func (r *OperationRunner) Run(ctx context.Context, jobs []Job) []Outcome {
	if r.limit < 2 || len(jobs) < 2 {
		return r.runSync(ctx, jobs)
	}
	return r.runAsync(ctx, jobs)
}

func (r *OperationRunner) runOne(ctx context.Context, job Job) Outcome {
	logger := zerolog.Ctx(ctx).With().Str("job", job.Name).Logger()
	result, msg := r.executor.Execute(logger.WithContext(ctx), job.Env)
	logger.Debug().Str("result", result.String()).Msg("job finished")
	return Outcome{Job: job, Result: result, Message: msg}
}

// 🔄 runSync runs jobs one after another
func (r *OperationRunner) runSync(ctx context.Context, jobs []Job) []Outcome {
	outcomes := make([]Outcome, len(jobs))
	for i, job := range jobs {
		outcomes[i] = r.runOne(ctx, job)
	}
	return outcomes
}

// ⚡ runAsync runs up to limit jobs at once
func (r *OperationRunner) runAsync(ctx context.Context, jobs []Job) []Outcome {
	outcomes := make([]Outcome, len(jobs))

	var g errgroup.Group
	g.SetLimit(r.limit)
	for i, job := range jobs {
		g.Go(func() error {
			outcomes[i] = r.runOne(ctx, job)
			return nil
		})
	}
	_ = g.Wait() // jobs report through outcomes, never through the group

	return outcomes
}

// Summarize folds outcomes into one result: any failure wins, then any cancel
func Summarize(outcomes []Outcome) host.Result {
	result := host.ResultSucceeded
	for _, o := range outcomes {
		switch o.Result {
		case host.ResultFailed:
			return host.ResultFailed
		case host.ResultCancelled:
			result = host.ResultCancelled
		}
	}
	return result
}
