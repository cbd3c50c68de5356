package runner_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/yaklabco/gomd2html/pkg/convert"
	"github.com/yaklabco/gomd2html/pkg/runner"
)

func writeFiles(t *testing.T, dir string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(dir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("# "+f+"\n"), 0o644); err != nil {
			t.Fatalf("setup write: %v", err)
		}
	}
}

func relAll(t *testing.T, dir string, files []string) []string {
	t.Helper()
	out := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(dir, f)
		if err != nil {
			t.Fatalf("rel: %v", err)
		}
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestDiscover_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "readme.md")

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"readme.md"},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := filepath.Join(dir, "readme.md")
	if len(files) != 1 || files[0] != want {
		t.Fatalf("Discover() = %v, want [%s]", files, want)
	}
}

func TestDiscover_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir,
		"readme.md",
		"docs/guide.md",
		"docs/api.markdown",
		"docs/API.MD",
		"src/main.go",
		"notes.txt",
		"out/readme.html",
	)

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []string{"docs/API.MD", "docs/api.markdown", "docs/guide.md", "readme.md"}
	if got := relAll(t, dir, files); !slices.Equal(got, want) {
		t.Errorf("Discover() = %v, want %v", got, want)
	}
}

func TestDiscover_CustomExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "a.md", "b.txt", "c.mdx")

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Extensions: []string{".txt", ".mdx"},
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []string{"b.txt", "c.mdx"}
	if got := relAll(t, dir, files); !slices.Equal(got, want) {
		t.Errorf("Discover() = %v, want %v", got, want)
	}
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir,
		"readme.md",
		"notes.draft.md",
		"vendor/lib/readme.md",
		"docs/internal/secret.md",
		"docs/public.md",
	)

	tests := []struct {
		name    string
		exclude []string
		want    []string
	}{
		{
			name:    "base name glob at any depth",
			exclude: []string{"*.draft.md"},
			want:    []string{"docs/internal/secret.md", "docs/public.md", "readme.md", "vendor/lib/readme.md"},
		},
		{
			name:    "directory with double star",
			exclude: []string{"vendor/**"},
			want:    []string{"docs/internal/secret.md", "docs/public.md", "notes.draft.md", "readme.md"},
		},
		{
			name:    "leading double star",
			exclude: []string{"**/internal"},
			want:    []string{"docs/public.md", "notes.draft.md", "readme.md", "vendor/lib/readme.md"},
		},
		{
			name:    "plain directory",
			exclude: []string{"docs"},
			want:    []string{"notes.draft.md", "readme.md", "vendor/lib/readme.md"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			files, err := runner.Discover(context.Background(), runner.Options{
				WorkingDir:   dir,
				ExcludeGlobs: tt.exclude,
			})
			if err != nil {
				t.Fatalf("Discover() error = %v", err)
			}
			if got := relAll(t, dir, files); !slices.Equal(got, tt.want) {
				t.Errorf("Discover() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDiscover_HiddenEntriesSkipped(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "visible.md", ".hidden.md", ".git/notes.md")

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if got := relAll(t, dir, files); !slices.Equal(got, []string{"visible.md"}) {
		t.Errorf("Discover() = %v, want [visible.md]", got)
	}

	// Naming a hidden file explicitly still selects it.
	files, err = runner.Discover(context.Background(), runner.Options{
		Paths:      []string{".hidden.md"},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(files) != 1 {
		t.Errorf("explicit hidden file: got %v", files)
	}
}

func TestDiscover_Deduplication(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "a.md", "docs/b.md")

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{".", "a.md", "docs", "docs/b.md"},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []string{"a.md", "docs/b.md"}
	if got := relAll(t, dir, files); !slices.Equal(got, want) {
		t.Errorf("Discover() = %v, want %v", got, want)
	}
}

func TestDiscover_NonExistentPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"missing.md"},
		WorkingDir: t.TempDir(),
	})
	if !errors.Is(err, convert.ErrInputNotFound) {
		t.Fatalf("expected ErrInputNotFound, got %v", err)
	}
}

func TestDiscover_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "a.md")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := runner.Discover(ctx, runner.Options{WorkingDir: dir}); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestDiscover_DirectorySymlinks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := t.TempDir()
	writeFiles(t, dir, "a.md")
	writeFiles(t, target, "linked.md")

	if err := os.Symlink(target, filepath.Join(dir, "link")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(files) != 1 {
		t.Errorf("without FollowSymlinks: got %v", files)
	}

	files, err = runner.Discover(context.Background(), runner.Options{
		WorkingDir:     dir,
		FollowSymlinks: true,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(files) != 2 {
		t.Errorf("with FollowSymlinks: got %v", files)
	}
}

func TestOptions_OutputPath(t *testing.T) {
	t.Parallel()

	work := filepath.Join(string(filepath.Separator), "work")

	tests := []struct {
		name  string
		opts  runner.Options
		input string
		want  string
	}{
		{
			name:  "next to input",
			opts:  runner.Options{},
			input: filepath.Join(work, "docs", "guide.md"),
			want:  filepath.Join(work, "docs", "guide.html"),
		},
		{
			name:  "custom extension",
			opts:  runner.Options{OutputExtension: ".htm"},
			input: filepath.Join(work, "a.markdown"),
			want:  filepath.Join(work, "a.htm"),
		},
		{
			name:  "mirrored under relative out dir",
			opts:  runner.Options{OutDir: "site"},
			input: filepath.Join(work, "docs", "guide.md"),
			want:  filepath.Join(work, "site", "docs", "guide.html"),
		},
		{
			name:  "outside working dir keeps base name",
			opts:  runner.Options{OutDir: "site"},
			input: filepath.Join(string(filepath.Separator), "elsewhere", "x.md"),
			want:  filepath.Join(work, "site", "x.html"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.opts.OutputPath(tt.input, work); got != tt.want {
				t.Errorf("OutputPath() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDefaultExtensions(t *testing.T) {
	t.Parallel()

	if got := runner.DefaultExtensions(); !slices.Equal(got, []string{".md", ".markdown"}) {
		t.Errorf("DefaultExtensions() = %v", got)
	}
}
