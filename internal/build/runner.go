// Package build invokes the external CMake/Ninja toolchain on a freshly
// generated project. It runs strictly after a successful commit and has no
// bearing on the correctness of the generation core; a failure is surfaced
// once and never retried.
package build

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/picoforge/picoforge/internal/errors"
	"github.com/picoforge/picoforge/internal/logging"
)

// Runner drives the post-generation build.
type Runner struct {
	logger logging.Logger
}

// NewRunner creates a build runner.
func NewRunner(logger logging.Logger) *Runner {
	return &Runner{logger: logger.WithComponent("build")}
}

// Run configures and builds the project in projectDir, streaming toolchain
// output to the current process. The returned error wraps the first failing
// step's exit status.
func (r *Runner) Run(ctx context.Context, projectDir string) error {
	buildDir := filepath.Join(projectDir, "build")
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return errors.NewBuildError(err)
	}

	r.logger.Info("configuring project", "dir", projectDir)
	if err := r.exec(ctx, projectDir, "cmake", "-S", ".", "-B", "build", "-G", "Ninja"); err != nil {
		return errors.NewBuildError(err)
	}

	r.logger.Info("building project", "dir", projectDir)
	if err := r.exec(ctx, projectDir, "ninja", "-C", "build"); err != nil {
		return errors.NewBuildError(err)
	}

	return nil
}

func (r *Runner) exec(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}
