// Package generator implements the core generation pipeline: configuration
// validation, build-plan resolution and the types shared between stages.
// Every stage is a pure transform; the only side effects live in the
// committer package.
package generator

import (
	"fmt"
)

// ConsoleMode selects the stdio destination of the generated firmware.
type ConsoleMode int

const (
	ConsoleUART ConsoleMode = iota
	ConsoleUSB
	ConsoleBoth
	ConsoleNone
)

// String returns the console mode name used in logs and list output.
func (m ConsoleMode) String() string {
	switch m {
	case ConsoleUART:
		return "uart"
	case ConsoleUSB:
		return "usb"
	case ConsoleBoth:
		return "both"
	case ConsoleNone:
		return "none"
	default:
		return "unknown"
	}
}

// UART reports whether UART stdio is enabled.
func (m ConsoleMode) UART() bool { return m == ConsoleUART || m == ConsoleBoth }

// USB reports whether USB stdio is enabled.
func (m ConsoleMode) USB() bool { return m == ConsoleUSB || m == ConsoleBoth }

// Dialect selects the language of the generated entry point.
type Dialect int

const (
	DialectC Dialect = iota
	DialectCPP
)

// String returns the dialect name.
func (d Dialect) String() string {
	if d == DialectCPP {
		return "c++"
	}
	return "c"
}

// SourceExtension returns the entry-point file extension for the dialect.
func (d Dialect) SourceExtension() string {
	if d == DialectCPP {
		return ".cpp"
	}
	return ".c"
}

// Debugger selects the debug adapter encoded into the IDE configuration.
type Debugger int

const (
	DebuggerDebugProbe Debugger = iota
	DebuggerSWD
)

// String returns the debugger name accepted on the command line.
func (d Debugger) String() string {
	if d == DebuggerSWD {
		return "swd"
	}
	return "debugprobe"
}

// OpenOCDInterface returns the OpenOCD interface config file for the
// debugger.
func (d Debugger) OpenOCDInterface() string {
	if d == DebuggerSWD {
		return "raspberrypi-swd.cfg"
	}
	return "cmsis-dap.cfg"
}

// ParseDebugger converts a command-line debugger name.
func ParseDebugger(s string) (Debugger, error) {
	switch s {
	case "debugprobe", "cmsis-dap", "":
		return DebuggerDebugProbe, nil
	case "swd":
		return DebuggerSWD, nil
	default:
		return DebuggerDebugProbe, fmt.Errorf("unknown debugger %q (expected debugprobe or swd)", s)
	}
}

// Toolchain carries the host paths baked into rendered output. Filling it in
// before rendering keeps the renderer a pure function of its inputs.
type Toolchain struct {
	// SDKPath is the Pico SDK checkout referenced from CMakeLists.txt.
	SDKPath string
	// CompilerPath is the cross-compiler path for IDE IntelliSense.
	CompilerPath string
	// GDBPath is the debugger client used by IDE launch configs.
	GDBPath string
}

// ProjectConfig is the complete, validated-input-ready description of one
// generation pass. It is created once from user input and never mutated.
type ProjectConfig struct {
	Name      string
	OutputDir string

	Features []string
	Board    string

	Console       ConsoleMode
	Dialect       Dialect
	CppRTTI       bool
	CppExceptions bool
	Debugger      Debugger
	RunFromRAM    bool
	GenerateIDE   bool
	BuildAfter    bool
	Overwrite     bool

	Toolchain Toolchain
}
