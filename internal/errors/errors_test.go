package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratorError_Message(t *testing.T) {
	err := NewUnknownFeature("flux-capacitor")

	assert.Contains(t, err.Error(), "flux-capacitor")
	assert.Contains(t, err.Error(), CodeUnknownFeature)
	assert.Equal(t, "flux-capacitor", err.Context["feature"])
}

func TestGeneratorError_IsMatchesTypeAndCode(t *testing.T) {
	err := NewConflictingFeatures("wireless-a", "wireless-b")

	assert.True(t, Is(err, NewConflictingFeatures("x", "y")))
	assert.False(t, Is(err, NewInvalidOption("x", "y")))
	assert.False(t, Is(err, stderrors.New("other")))
}

func TestGeneratorError_Unwrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := NewCommitError("/tmp/out", cause)

	assert.True(t, Is(err, cause))
	assert.Contains(t, err.Error(), "disk full")
}

func TestGeneratorError_WrappedStillMatches(t *testing.T) {
	err := fmt.Errorf("generating project: %w", NewUnknownBoard("board-x"))

	assert.True(t, IsType(err, ErrorTypeConfig))
	assert.Equal(t, ExitConfig, ExitCode(err))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"unknown feature", NewUnknownFeature("x"), ExitConfig},
		{"unknown board", NewUnknownBoard("x"), ExitConfig},
		{"conflict", NewConflictingFeatures("a", "b"), ExitValidation},
		{"console required", NewConsoleRequired("div"), ExitValidation},
		{"invalid option", NewInvalidOption("cpprtti", "needs c++"), ExitValidation},
		{"existing project", NewExistingProject("/tmp/p"), ExitExists},
		{"render", NewRenderError("cmake", stderrors.New("boom")), ExitCommit},
		{"commit", NewCommitError("/tmp/f", stderrors.New("boom")), ExitCommit},
		{"build", NewBuildError(stderrors.New("exit status 1")), ExitBuild},
		{"plain error", stderrors.New("boom"), ExitGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
