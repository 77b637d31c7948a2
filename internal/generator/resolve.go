package generator

import (
	"strings"

	"github.com/picoforge/picoforge/internal/catalog"
)

// Library names appended by console mode and board platform. These come
// after all feature-contributed libraries, so generated build files stay
// diff-friendly when the feature selection changes.
const (
	libStdioUART     = "pico_stdio_uart"
	libStdioUSB      = "pico_stdio_usb"
	libCYW43ArchNone = "pico_cyw43_arch_none"

	cyw43ArchPrefix = "pico_cyw43_arch"
)

// ResolvedFragment is an example fragment together with the feature that
// contributed it. Fragments are deduplicated by feature id, not by text.
type ResolvedFragment struct {
	FeatureID string
	Fragment  catalog.Fragment
}

// BuildPlan is the resolved output of one generation pass: deduplicated,
// deterministically ordered libraries, includes and example fragments,
// carried alongside the originating configuration. The same validated
// configuration always resolves to an identical plan.
type BuildPlan struct {
	Config      ProjectConfig
	Board       catalog.Board
	Libraries   []string
	Includes    []string
	Ancillaries []string
	Fragments   []ResolvedFragment
}

// Resolve expands a validated configuration into a build plan. There is no
// failure path: validation already guarantees every referenced identifier
// resolves.
func Resolve(v ValidatedConfig) BuildPlan {
	plan := BuildPlan{
		Config: v.Config(),
		Board:  v.Board(),
	}

	seenLib := make(map[string]bool)
	seenInclude := make(map[string]bool)
	seenAncillary := make(map[string]bool)

	appendLib := func(lib string) {
		if lib == "" || seenLib[lib] {
			return
		}
		seenLib[lib] = true
		plan.Libraries = append(plan.Libraries, lib)
	}

	// Selected() is already in catalog order; that order is the documented
	// tie-break for everything the features contribute.
	for _, f := range v.Selected() {
		for _, lib := range f.Libraries {
			appendLib(lib)
		}
		if f.Header != "" && !seenInclude[f.Header] {
			seenInclude[f.Header] = true
			plan.Includes = append(plan.Includes, f.Header)
		}
		if f.Ancillary != "" && !seenAncillary[f.Ancillary] {
			seenAncillary[f.Ancillary] = true
			plan.Ancillaries = append(plan.Ancillaries, f.Ancillary)
		}
		if !f.Fragment.Empty() {
			plan.Fragments = append(plan.Fragments, ResolvedFragment{
				FeatureID: f.ID,
				Fragment:  f.Fragment,
			})
		}
	}

	// Console-derived libraries come after all feature libraries.
	cfg := v.Config()
	if cfg.Console.UART() {
		appendLib(libStdioUART)
	}
	if cfg.Console.USB() {
		appendLib(libStdioUSB)
	}

	// Board-derived libraries come last. A wireless board needs the CYW43
	// driver; if a selected feature already pulled in an arch variant the
	// plain one would clash, so it is only added when none is present.
	if plan.Board.Platform == catalog.PlatformPicoW && !hasCYW43Arch(plan.Libraries) {
		appendLib(libCYW43ArchNone)
	}

	return plan
}

func hasCYW43Arch(libs []string) bool {
	for _, lib := range libs {
		if strings.HasPrefix(lib, cyw43ArchPrefix) {
			return true
		}
	}

	return false
}
