package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/gomd2html/internal/configloader"
	"github.com/yaklabco/gomd2html/internal/logging"
	"github.com/yaklabco/gomd2html/pkg/config"
	"github.com/yaklabco/gomd2html/pkg/convert"
	"github.com/yaklabco/gomd2html/pkg/convert/rules"
	"github.com/yaklabco/gomd2html/pkg/fsutil"
)

// defaultConfigFile is the project configuration file name written by init.
const defaultConfigFile = ".gomd2html.yml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

// isTerminal reports whether stdin is interactive. Tests replace it.
//
//nolint:gochecknoglobals // Test seam for the overwrite prompt.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a gomd2html configuration file",
		Long: `Create a documented .gomd2html.yml in the current directory listing every
option with its default and every conversion rule.

If the file exists, init asks before overwriting it when run in a terminal
and refuses otherwise unless --force is given.`,
		Example: `  gomd2html init
  gomd2html init --output config/gomd2html.yml --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigFile, "output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractiveWithWriter(cmd.ErrOrStderr())

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if fsutil.Exists(absPath) && !flags.force {
		if !isTerminal() {
			return &UsageError{Msg: fmt.Sprintf("file %q already exists; use --force to overwrite", flags.output)}
		}
		ok, err := confirm(cmd.InOrStdin(), cmd.ErrOrStderr(),
			fmt.Sprintf("%s already exists. Overwrite? [y/N] ", flags.output))
		if err != nil {
			return err
		}
		if !ok {
			logger.Info("left existing file unchanged", logging.FieldPath, flags.output)
			return nil
		}
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{
		Rules: rules.RuleInfos(convert.DefaultRegistry),
	})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := fsutil.EnsureParent(absPath); err != nil {
		return &convert.IOError{Op: "write", Path: flags.output, Err: err}
	}
	if err := fsutil.WriteAtomic(cmd.Context(), absPath, content, fsutil.DefaultFileMode); err != nil {
		return &convert.IOError{Op: "write", Path: flags.output, Err: err}
	}

	// The template must load cleanly with the current rule set.
	_, validation, err := configloader.LoadFile(absPath)
	if err != nil {
		return err
	}
	for _, msg := range validation.AllMessages() {
		logger.Warn(msg)
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	logger.Info("run 'gomd2html rules' to see all available rules")

	return nil
}

// confirm asks prompt on w and reads a yes/no answer from r.
func confirm(r io.Reader, w io.Writer, prompt string) (bool, error) {
	if _, err := io.WriteString(w, prompt); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	answer, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
