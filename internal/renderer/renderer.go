// Package renderer turns a build plan into the textual content of every
// generated file. Rendering is a pure function: the same plan always
// produces byte-identical output, with no reliance on the clock, random
// values or filesystem state. The only failure mode is a structurally
// missing template variable, which indicates a catalog/template
// inconsistency rather than a user error.
package renderer

import (
	"bytes"
	"fmt"
	"sort"
	"text/template"

	"github.com/picoforge/picoforge/internal/errors"
	"github.com/picoforge/picoforge/internal/generator"
)

// Output file names. IDE files live under the VSCodeDir subdirectory.
const (
	CMakeListsName = "CMakeLists.txt"
	SDKImportName  = "pico_sdk_import.cmake"
	LwipoptsName   = "lwipopts.h"
	VSCodeDir      = ".vscode"

	LaunchName      = ".vscode/launch.json"
	CPropertiesName = ".vscode/c_cpp_properties.json"
	SettingsName    = ".vscode/settings.json"
	ExtensionsName  = ".vscode/extensions.json"
)

// FileSet maps a relative output path to its final text content.
type FileSet map[string]string

// Paths returns the file paths in sorted order so every consumer iterates
// deterministically.
func (fs FileSet) Paths() []string {
	paths := make([]string, 0, len(fs))
	for p := range fs {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	return paths
}

var templates = template.Must(template.New("cmake").Option("missingkey=error").Parse(cmakeTemplate))

func init() {
	template.Must(templates.New("main").Parse(mainTemplate))
	template.Must(templates.New("launch").Parse(launchTemplate))
	template.Must(templates.New("c_properties").Parse(cPropertiesTemplate))
	template.Must(templates.New("settings").Parse(settingsTemplate))
	template.Must(templates.New("extensions").Parse(extensionsTemplate))
}

// cmakeView is the data for the build-description template.
type cmakeView struct {
	Name       string
	Board      string
	SDKPath    string
	SourceExt  string
	Exceptions bool
	RTTI       bool
	RunFromRAM bool
	UART       bool
	USB        bool
	Libraries  []string
}

// fragmentView is one feature's contribution to the entry point.
type fragmentView struct {
	FeatureID    string
	Defines      []string
	Initialisers []string
}

// mainView is the data for the entry-point template.
type mainView struct {
	Includes  []string
	Fragments []fragmentView
}

// ideView is the data shared by the IDE config templates.
type ideView struct {
	Interface    string
	GDBPath      string
	CompilerPath string
}

// Render produces the complete file set for a build plan. The set of keys
// depends only on configuration flags: IDE files appear exactly when the
// plan's configuration requests them.
func Render(plan generator.BuildPlan) (FileSet, error) {
	cfg := plan.Config

	files := make(FileSet)

	cmake, err := execute("cmake", cmakeView{
		Name:       cfg.Name,
		Board:      plan.Board.ID,
		SDKPath:    cfg.Toolchain.SDKPath,
		SourceExt:  cfg.Dialect.SourceExtension(),
		Exceptions: cfg.CppExceptions,
		RTTI:       cfg.CppRTTI,
		RunFromRAM: cfg.RunFromRAM,
		UART:       cfg.Console.UART(),
		USB:        cfg.Console.USB(),
		Libraries:  plan.Libraries,
	})
	if err != nil {
		return nil, err
	}
	files[CMakeListsName] = cmake

	// CMakeLists.txt includes the shim before project(); the fallback copy
	// here may be replaced with the installed SDK's own copy at commit time.
	files[SDKImportName] = sdkImportFile

	for _, name := range plan.Ancillaries {
		content, ok := ancillaryFiles[name]
		if !ok {
			return nil, errors.NewRenderError(name, fmt.Errorf("no content registered for ancillary file %q", name))
		}
		files[name] = content
	}

	mv := mainView{Includes: plan.Includes}
	for _, frag := range plan.Fragments {
		mv.Fragments = append(mv.Fragments, fragmentView{
			FeatureID:    frag.FeatureID,
			Defines:      frag.Fragment.Defines,
			Initialisers: frag.Fragment.Initialisers,
		})
	}

	source, err := execute("main", mv)
	if err != nil {
		return nil, err
	}
	files[cfg.Name+cfg.Dialect.SourceExtension()] = source

	if cfg.GenerateIDE {
		ide := ideView{
			Interface:    cfg.Debugger.OpenOCDInterface(),
			GDBPath:      cfg.Toolchain.GDBPath,
			CompilerPath: cfg.Toolchain.CompilerPath,
		}

		for name, path := range map[string]string{
			"launch":       LaunchName,
			"c_properties": CPropertiesName,
			"settings":     SettingsName,
			"extensions":   ExtensionsName,
		} {
			content, err := execute(name, ide)
			if err != nil {
				return nil, err
			}
			files[path] = content
		}
	}

	return files, nil
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.NewRenderError(name, err)
	}

	return buf.String(), nil
}
