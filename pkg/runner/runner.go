package runner

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"runtime"
	"slices"
	"sync"

	"github.com/yaklabco/gramlint/internal/logging"
	"github.com/yaklabco/gramlint/pkg/fsutil"
	"github.com/yaklabco/gramlint/pkg/lint"
)

// Runner checks many inputs using a lint.Pipeline.
type Runner struct {
	// Pipeline reads and checks one input.
	Pipeline *lint.Pipeline
}

// New creates a new Runner with the given pipeline.
func New(pipeline *lint.Pipeline) *Runner {
	return &Runner{Pipeline: pipeline}
}

// Run discovers inputs under opts.Paths and checks them concurrently.
//
// Outcomes are returned in discovery order whatever order the workers finish
// in. An input that cannot be read is recorded in its FileOutcome and does not
// stop the run. Only discovery failures and cancellation return an error.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	type work struct {
		index int
		path  string
	}

	workCh := make(chan work)
	outcomes := make([]*FileOutcome, len(files))

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range workCh {
				outcome := r.process(ctx, item.path, stdin)
				outcomes[item.index] = &outcome
			}
		}()
	}

	go func() {
		defer close(workCh)
		for i, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- work{index: i, path: path}:
			}
		}
	}()

	wg.Wait()

	for _, outcome := range outcomes {
		if outcome != nil {
			result.accumulate(*outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// process checks a single input.
// Failures are recorded in the outcome and logged through the context's logger.
func (r *Runner) process(ctx context.Context, path string, stdin io.Reader) FileOutcome {
	outcome := FileOutcome{Path: path}
	ctx = logging.WithFields(ctx, logging.FieldPath, path)
	logger := logging.FromContext(ctx)

	var (
		fr  *lint.FileResult
		err error
	)
	if path == StdinPath {
		fr, err = r.processReader(ctx, stdin)
	} else {
		fr, err = r.Pipeline.ProcessFile(ctx, path)
	}

	if err != nil {
		logger.Debug("input not checked", logging.FieldError, err)
		outcome.Error = err
		return outcome
	}

	for _, ruleID := range slices.Sorted(maps.Keys(fr.RuleErrors)) {
		logger.Warn("rule failed", logging.FieldRule, ruleID, logging.FieldError, fr.RuleErrors[ruleID])
	}
	logger.Debug("input checked",
		logging.FieldInputFormat, fr.Format,
		logging.FieldIssuesTotal, len(fr.Issues),
	)

	outcome.Result = fr
	return outcome
}

func (r *Runner) processReader(ctx context.Context, reader io.Reader) (*lint.FileResult, error) {
	content, err := fsutil.ReadAll(ctx, reader)
	if err != nil {
		return nil, fmt.Errorf("read standard input: %w", err)
	}
	return r.Pipeline.ProcessContent(ctx, StdinPath, content)
}
