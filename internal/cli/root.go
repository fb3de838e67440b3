package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/tilingwm/wmgen/internal/branding"
	"github.com/tilingwm/wmgen/internal/platform"
	"github.com/tilingwm/wmgen/internal/version"
)

// app carries the dependencies of one invocation.
type app struct {
	fsys   afero.Fs
	stdout io.Writer
	stderr io.Writer
	info   version.Info
}

// InvalidArgumentError reports a command line that does not name exactly one
// project directory. It is raised before any filesystem access.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string { return e.Reason }

func usageLine() string {
	return fmt.Sprintf("Usage: %s <project_dir>", branding.CLIName())
}

func exactlyOneDir(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &InvalidArgumentError{
			Reason: fmt.Sprintf("expected exactly 1 argument (project directory), got %d", len(args)),
		}
	}
	return nil
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   branding.CLIName() + " <project_dir>",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates the skeleton of a ` + branding.ProjectName() + ` tiling window manager
project: a CMake build file, src/main.cpp, src/wm.cpp and include/wm.h.

Missing directories are created. Existing files with the same names are
overwritten; every other file in the project directory is left alone.`,
		Version:       a.info.String(),
		Args:          exactlyOneDir,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(args[0])
		},
	}

	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	cmd.SetVersionTemplate(branding.CLIName() + " version {{.Version}}\n")
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &InvalidArgumentError{Reason: err.Error()}
	})
	return cmd
}

// run executes the command line and returns the process exit status.
func (a *app) run(args []string) int {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		var invalid *InvalidArgumentError
		if errors.As(err, &invalid) {
			fmt.Fprintln(a.stderr, usageLine())
		}
		return 1
	}
	return 0
}

// Execute runs wmgen against the host filesystem with build info injected
// via ldflags, and returns the process exit status.
func Execute(ver, commit, date string) int {
	a := &app{
		fsys:   platform.OS(),
		stdout: os.Stdout,
		stderr: os.Stderr,
		info:   version.New(ver, commit, date),
	}
	return a.run(os.Args[1:])
}
