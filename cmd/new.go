package cmd

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/picoforge/picoforge/internal/build"
	"github.com/picoforge/picoforge/internal/committer"
	"github.com/picoforge/picoforge/internal/generator"
	"github.com/picoforge/picoforge/internal/logging"
	"github.com/picoforge/picoforge/internal/renderer"
	"github.com/picoforge/picoforge/internal/sdk"
)

// envSDKReference is written into CMakeLists.txt when no SDK checkout was
// located at generation time; CMake resolves it from the environment.
const envSDKReference = "$ENV{PICO_SDK_PATH}"

var newCmd = &cobra.Command{
	Use:     "new <name>",
	Aliases: []string{"n"},
	Short:   "Generate a new Pico project",
	Long: `Generate a build-ready Pico SDK project in a subdirectory named after the
project. The selected features determine the linked SDK libraries and the
example code placed in the entry point.

Examples:
  picoforge new blink -f gpio                 GPIO example project
  picoforge new sensor -f spi -f i2c          SPI + I2C project
  picoforge new app --cpp --cppexceptions     C++ project with exceptions
  picoforge new probe -f uart --project vscode --debugger swd
  picoforge new demo -x --usb --overwrite     All stdlib examples, USB console`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

type newOptions struct {
	output        string
	features      []string
	examples      bool
	board         string
	usb           bool
	noUART        bool
	cpp           bool
	cppRTTI       bool
	cppExceptions bool
	debugger      string
	runFromRAM    bool
	ideProjects   []string
	overwrite     bool
	buildAfter    bool
	catalogPath   string
	sdkPath       string
	compilerPath  string
}

var newFlags newOptions

func init() {
	rootCmd.AddCommand(newCmd)

	f := newCmd.Flags()
	f.StringVarP(&newFlags.output, "output", "o", ".", "Directory the project folder is created in")
	f.StringArrayVarP(&newFlags.features, "feature", "f", nil, "Add a feature to the generated project (repeatable)")
	f.BoolVarP(&newFlags.examples, "examples", "x", false, "Add example code for the Pico standard library")
	f.StringVar(&newFlags.board, "board", "pico", "Board type (see 'picoforge list boards')")
	f.BoolVar(&newFlags.usb, "usb", false, "Console output to USB")
	f.BoolVar(&newFlags.noUART, "nouart", false, "Disable console output to UART")
	f.BoolVar(&newFlags.cpp, "cpp", false, "Generate C++ code")
	f.BoolVar(&newFlags.cppRTTI, "cpprtti", false, "Enable C++ RTTI (uses more memory)")
	f.BoolVar(&newFlags.cppExceptions, "cppexceptions", false, "Enable C++ exceptions (uses more memory)")
	f.VarP(newChoiceValue(&newFlags.debugger, "debugprobe", "debugprobe", "cmsis-dap", "swd"), "debugger", "d", "Debugger (debugprobe, swd)")
	f.BoolVarP(&newFlags.runFromRAM, "ram", "r", false, "Run the program from RAM rather than flash")
	f.StringArrayVarP(&newFlags.ideProjects, "project", "p", nil, "Generate IDE project files (vscode)")
	f.BoolVar(&newFlags.overwrite, "overwrite", false, "Overwrite an existing project and its files")
	f.BoolVarP(&newFlags.buildAfter, "build", "b", false, "Build after the project is created")
	f.StringVarP(&newFlags.catalogPath, "catalog", "t", "", "YAML feature catalog overlay file")
	f.StringVar(&newFlags.sdkPath, "sdk-path", "", "Pico SDK location (default $PICO_SDK_PATH)")
	f.StringVar(&newFlags.compilerPath, "compiler-path", "", "Override the compiler path written to IDE files")
}

func runNew(cmd *cobra.Command, args []string) error {
	logger := newLogger().WithComponent("new")

	features, err := loadFeatureCatalog(newFlags.catalogPath)
	if err != nil {
		return err
	}
	boards, sdkPath := loadBoardCatalog(newFlags.sdkPath, logger)

	cfg, err := buildProjectConfig(args[0], sdkPath, features.StdlibExamples())
	if err != nil {
		return err
	}

	validated, err := generator.Validate(cfg, features, boards)
	if err != nil {
		return err
	}

	plan := generator.Resolve(validated)
	logger.Debug("resolved build plan",
		"libraries", len(plan.Libraries),
		"fragments", len(plan.Fragments))

	files, err := renderer.Render(plan)
	if err != nil {
		return err
	}
	applySDKImport(files, sdkPath, logger)

	written, err := committer.Commit(files, cfg.OutputDir, cfg.Overwrite)
	if err != nil {
		return err
	}
	for _, path := range written {
		logger.Info("wrote", "path", path)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Generated project %s in %s\n", cfg.Name, cfg.OutputDir)

	if cfg.BuildAfter {
		return build.NewRunner(logger).Run(cmd.Context(), cfg.OutputDir)
	}

	return nil
}

// applySDKImport swaps the rendered pico_sdk_import.cmake fallback for the
// installed SDK's own copy when one was located. Failure to read it keeps
// the fallback; the generated project still configures.
func applySDKImport(files renderer.FileSet, sdkPath string, logger logging.Logger) {
	if sdkPath == "" {
		return
	}
	shim, err := sdk.ImportShim(sdkPath)
	if err != nil {
		logger.Debug("keeping built-in SDK import shim", "reason", err.Error())
		return
	}
	files[renderer.SDKImportName] = shim
}

// buildProjectConfig assembles the immutable ProjectConfig for this pass
// from flags, configuration and the SDK location.
func buildProjectConfig(name, sdkPath string, stdlibExamples []string) (generator.ProjectConfig, error) {
	debugger, err := generator.ParseDebugger(newFlags.debugger)
	if err != nil {
		return generator.ProjectConfig{}, err
	}

	for _, p := range newFlags.ideProjects {
		if p != "vscode" {
			return generator.ProjectConfig{}, fmt.Errorf("unknown IDE project kind %q (supported: vscode)", p)
		}
	}

	selected := newFlags.features
	if newFlags.examples {
		// Stdlib examples come first, matching their catalog position.
		selected = append(append([]string{}, stdlibExamples...), selected...)
	}

	dialect := generator.DialectC
	if newFlags.cpp {
		dialect = generator.DialectCPP
	}

	cmakeSDKPath := sdkPath
	if cmakeSDKPath == "" {
		cmakeSDKPath = envSDKReference
	} else {
		// CMake accepts forward slashes on every host platform.
		cmakeSDKPath = filepath.ToSlash(cmakeSDKPath)
	}

	return generator.ProjectConfig{
		Name:          name,
		OutputDir:     filepath.Join(newFlags.output, name),
		Features:      selected,
		Board:         newFlags.board,
		Console:       consoleMode(newFlags.usb, newFlags.noUART),
		Dialect:       dialect,
		CppRTTI:       newFlags.cppRTTI,
		CppExceptions: newFlags.cppExceptions,
		Debugger:      debugger,
		RunFromRAM:    newFlags.runFromRAM,
		GenerateIDE:   wantsVSCode(newFlags.ideProjects),
		BuildAfter:    newFlags.buildAfter,
		Overwrite:     newFlags.overwrite,
		Toolchain: generator.Toolchain{
			SDKPath:      cmakeSDKPath,
			CompilerPath: firstNonEmpty(newFlags.compilerPath, viper.GetString("compiler-path"), "arm-none-eabi-gcc"),
			GDBPath:      defaultGDBPath(),
		},
	}, nil
}

// consoleMode derives the console selection from the UART/USB flags. UART is
// the default channel; --nouart without --usb disables the console entirely.
func consoleMode(usb, noUART bool) generator.ConsoleMode {
	switch {
	case usb && noUART:
		return generator.ConsoleUSB
	case usb:
		return generator.ConsoleBoth
	case noUART:
		return generator.ConsoleNone
	default:
		return generator.ConsoleUART
	}
}

func wantsVSCode(projects []string) bool {
	for _, p := range projects {
		if p == "vscode" {
			return true
		}
	}
	return false
}

// defaultGDBPath picks the gdb client name conventional for the host OS.
func defaultGDBPath() string {
	if runtime.GOOS == "windows" {
		return "arm-none-eabi-gdb"
	}
	return "gdb-multiarch"
}
