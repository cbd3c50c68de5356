package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/yaklabco/gomd2html/pkg/config"
	"github.com/yaklabco/gomd2html/pkg/fsutil"
)

// StdoutPath as an output path writes to the pipeline's Stdout.
// As an input path it reads from the pipeline's Stdin.
const StdoutPath = "-"

// ProcessOptions controls pipeline behavior.
type ProcessOptions struct {
	// DryRun converts without writing any output.
	DryRun bool

	// CreateDirs creates the output's parent directory if missing.
	CreateDirs bool

	// SkipUnchanged leaves an output file alone when its content already matches.
	SkipUnchanged bool
}

// ProcessOptionsFromConfig creates ProcessOptions from config.Config.
func ProcessOptionsFromConfig(cfg *config.Config) ProcessOptions {
	if cfg == nil {
		return ProcessOptions{}
	}
	return ProcessOptions{DryRun: cfg.DryRun}
}

// FileResult contains the result of converting a single file.
type FileResult struct {
	// Result is the conversion output.
	*Result

	// Input is the path that was read.
	Input string

	// Output is the path that was (or would have been) written.
	Output string

	// Written is true if the output was written.
	Written bool

	// Unchanged is true if SkipUnchanged found identical existing output.
	Unchanged bool

	// BytesWritten is the size of the serialized output.
	BytesWritten int
}

// Pipeline reads an input file, converts it, and writes the output.
type Pipeline struct {
	// Engine performs the conversion.
	Engine *Engine

	// Stdin is read when the input path is StdoutPath. Defaults to os.Stdin.
	Stdin io.Reader

	// Stdout receives output when the output path is StdoutPath. Defaults to os.Stdout.
	Stdout io.Writer
}

// NewPipeline creates a new pipeline with the given engine.
func NewPipeline(engine *Engine) *Pipeline {
	return &Pipeline{Engine: engine}
}

// ProcessFile converts the file at in and writes the HTML to out.
//
// The steps are:
//  1. Read the input. A missing input fails with *InputNotFoundError
//     before anything is written.
//  2. Convert the content.
//  3. Unless DryRun is set, write the output atomically.
func (p *Pipeline) ProcessFile(
	ctx context.Context,
	in, out string,
	cfg *config.Config,
	opts ProcessOptions,
) (*FileResult, error) {
	content, err := p.read(ctx, in)
	if err != nil {
		return nil, err
	}

	res, err := p.Engine.Convert(ctx, NewDocument(in, content), cfg)
	if err != nil {
		return nil, err
	}

	html := res.HTML()
	result := &FileResult{
		Result:       res,
		Input:        in,
		Output:       out,
		BytesWritten: len(html),
	}

	if opts.DryRun {
		return result, nil
	}

	if out == StdoutPath {
		if _, err := p.stdout().Write(html); err != nil {
			return nil, &IOError{Op: "write", Path: out, Err: err}
		}
		result.Written = true
		return result, nil
	}

	if opts.CreateDirs {
		if err := fsutil.EnsureParent(out); err != nil {
			return nil, &IOError{Op: "write", Path: out, Err: err}
		}
	}

	if opts.SkipUnchanged {
		changed, err := fsutil.WriteAtomicIfChanged(ctx, out, html, fsutil.DefaultFileMode)
		if err != nil {
			return nil, categorizeError("write", out, err)
		}
		result.Written = changed
		result.Unchanged = !changed
		return result, nil
	}

	if err := fsutil.WriteAtomic(ctx, out, html, fsutil.DefaultFileMode); err != nil {
		return nil, categorizeError("write", out, err)
	}
	result.Written = true

	return result, nil
}

func (p *Pipeline) read(ctx context.Context, in string) ([]byte, error) {
	if in == StdoutPath {
		stdin := p.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, &IOError{Op: "read", Path: in, Err: err}
		}
		return content, nil
	}

	content, _, err := fsutil.ReadFile(ctx, in)
	if err != nil {
		return nil, categorizeError("read", in, err)
	}
	return content, nil
}

func (p *Pipeline) stdout() io.Writer {
	if p.Stdout == nil {
		return os.Stdout
	}
	return p.Stdout
}

// categorizeError maps fsutil errors to pipeline error types.
func categorizeError(op, path string, err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s %s: %w", op, path, err)
	case op == "read" && errors.Is(err, fsutil.ErrNotFound):
		return &InputNotFoundError{Path: path, Err: err}
	default:
		return &IOError{Op: op, Path: path, Err: err}
	}
}
