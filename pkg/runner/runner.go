package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/gomd2html/pkg/convert"
)

// Runner orchestrates multi-file conversion using a convert.Pipeline.
type Runner struct {
	// Pipeline reads, converts and writes a single file.
	Pipeline *convert.Pipeline
}

// New creates a new Runner with the given pipeline.
func New(pipeline *convert.Pipeline) *Runner {
	return &Runner{Pipeline: pipeline}
}

type job struct {
	input  string
	output string
}

// Run discovers files under opts.Paths and converts them concurrently.
// A failing file does not stop the run; it is recorded in its FileOutcome.
// Outcomes are returned in discovery order regardless of completion order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}
	opts.WorkingDir = workDir

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	processOpts := convert.ProcessOptions{
		DryRun:        opts.DryRun,
		CreateDirs:    true,
		SkipUnchanged: true,
	}

	workCh := make(chan job)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts, processOpts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- job{input: path, output: opts.OutputPath(path, workDir)}:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan job,
	outCh chan<- FileOutcome,
	opts Options,
	processOpts convert.ProcessOptions,
) {
	for work := range workCh {
		if ctx.Err() != nil {
			return
		}

		outcome := FileOutcome{Path: work.input, Output: work.output}

		fr, err := r.Pipeline.ProcessFile(ctx, work.input, work.output, opts.Config, processOpts)
		if err != nil {
			outcome.Error = err
		} else {
			outcome.Result = fr
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}
