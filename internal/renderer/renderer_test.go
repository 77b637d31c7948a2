package renderer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picoforge/picoforge/internal/catalog"
	"github.com/picoforge/picoforge/internal/generator"
)

func testPlan(t *testing.T, mutate func(*generator.ProjectConfig)) generator.BuildPlan {
	t.Helper()

	cfg := generator.ProjectConfig{
		Name:    "testproj",
		Board:   "pico",
		Console: generator.ConsoleUART,
		Dialect: generator.DialectC,
		Toolchain: generator.Toolchain{
			SDKPath:      "/opt/pico-sdk",
			CompilerPath: "arm-none-eabi-gcc",
			GDBPath:      "gdb-multiarch",
		},
	}
	if mutate != nil {
		mutate(&cfg)
	}

	boards := catalog.NewBoardCatalog(
		catalog.Board{ID: "pico", Platform: catalog.PlatformRP2040},
		catalog.Board{ID: "pico_w", Platform: catalog.PlatformPicoW},
	)
	v, err := generator.Validate(cfg, catalog.DefaultFeatures(), boards)
	require.NoError(t, err)

	return generator.Resolve(v)
}

func TestRender_AlwaysProducesBuildAndSourceFiles(t *testing.T) {
	files, err := Render(testPlan(t, nil))
	require.NoError(t, err)

	assert.Contains(t, files, CMakeListsName)
	assert.Contains(t, files, SDKImportName)
	assert.Contains(t, files, "testproj.c")
	assert.Len(t, files, 3)
}

func TestRender_SDKImportShim(t *testing.T) {
	files, err := Render(testPlan(t, nil))
	require.NoError(t, err)

	// CMakeLists.txt includes the shim, so the project must carry it.
	assert.Contains(t, files[CMakeListsName], "include(pico_sdk_import.cmake)")
	shim := files[SDKImportName]
	assert.Contains(t, shim, "pico_sdk_init.cmake")
	assert.Contains(t, shim, "PICO_SDK_FETCH_FROM_GIT")
}

func TestRender_WirelessFeatureShipsLwipopts(t *testing.T) {
	plan := testPlan(t, func(cfg *generator.ProjectConfig) {
		cfg.Board = "pico_w"
		cfg.Features = []string{"picow_poll"}
	})

	files, err := Render(plan)
	require.NoError(t, err)

	require.Contains(t, files, LwipoptsName)
	assert.Contains(t, files[LwipoptsName], "#define LWIP_TCP")

	// Non-wireless selections do not ship lwIP options.
	plain, err := Render(testPlan(t, nil))
	require.NoError(t, err)
	assert.NotContains(t, plain, LwipoptsName)
}

func TestRender_UnknownAncillaryFails(t *testing.T) {
	plan := testPlan(t, nil)
	plan.Ancillaries = []string{"mystery.h"}

	_, err := Render(plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mystery.h")
}

func TestRender_ByteIdentical(t *testing.T) {
	plan := testPlan(t, func(cfg *generator.ProjectConfig) {
		cfg.Features = []string{"spi", "uart", "timer"}
		cfg.GenerateIDE = true
	})

	first, err := Render(plan)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := Render(plan)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRender_CMakeContent(t *testing.T) {
	plan := testPlan(t, func(cfg *generator.ProjectConfig) {
		cfg.Features = []string{"spi", "i2c"}
	})

	files, err := Render(plan)
	require.NoError(t, err)
	cmake := files[CMakeListsName]

	assert.Contains(t, cmake, "project(testproj C CXX ASM)")
	assert.Contains(t, cmake, `set(PICO_SDK_PATH "/opt/pico-sdk")`)
	assert.Contains(t, cmake, `set(PICO_BOARD pico CACHE STRING "Board type")`)
	assert.Contains(t, cmake, "add_executable(testproj testproj.c )")
	assert.Contains(t, cmake, "pico_enable_stdio_uart(testproj 1)")
	assert.Contains(t, cmake, "pico_enable_stdio_usb(testproj 0)")
	assert.Contains(t, cmake, "pico_add_extra_outputs(testproj)")

	// Feature libraries in plan order, console library last.
	spi := strings.Index(cmake, "hardware_spi")
	i2c := strings.Index(cmake, "hardware_i2c")
	stdio := strings.Index(cmake, "pico_stdio_uart")
	require.True(t, spi > 0 && i2c > 0 && stdio > 0)
	assert.Less(t, spi, i2c)
	assert.Less(t, i2c, stdio)

	assert.NotContains(t, cmake, "PICO_CXX_ENABLE_EXCEPTIONS")
	assert.NotContains(t, cmake, "PICO_CXX_ENABLE_RTTI")
	assert.NotContains(t, cmake, "no_flash")
}

func TestRender_CppOptions(t *testing.T) {
	plan := testPlan(t, func(cfg *generator.ProjectConfig) {
		cfg.Dialect = generator.DialectCPP
		cfg.CppRTTI = true
		cfg.CppExceptions = true
	})

	files, err := Render(plan)
	require.NoError(t, err)

	assert.Contains(t, files, "testproj.cpp")
	cmake := files[CMakeListsName]
	assert.Contains(t, cmake, "set(PICO_CXX_ENABLE_EXCEPTIONS 1)")
	assert.Contains(t, cmake, "set(PICO_CXX_ENABLE_RTTI 1)")
	assert.Contains(t, cmake, "add_executable(testproj testproj.cpp )")
}

func TestRender_RunFromRAM(t *testing.T) {
	plan := testPlan(t, func(cfg *generator.ProjectConfig) {
		cfg.RunFromRAM = true
	})

	files, err := Render(plan)
	require.NoError(t, err)
	assert.Contains(t, files[CMakeListsName], "pico_set_binary_type(testproj no_flash)")
}

func TestRender_ConsoleModes(t *testing.T) {
	tests := []struct {
		mode generator.ConsoleMode
		uart string
		usb  string
	}{
		{generator.ConsoleUART, "pico_enable_stdio_uart(testproj 1)", "pico_enable_stdio_usb(testproj 0)"},
		{generator.ConsoleUSB, "pico_enable_stdio_uart(testproj 0)", "pico_enable_stdio_usb(testproj 1)"},
		{generator.ConsoleBoth, "pico_enable_stdio_uart(testproj 1)", "pico_enable_stdio_usb(testproj 1)"},
		{generator.ConsoleNone, "pico_enable_stdio_uart(testproj 0)", "pico_enable_stdio_usb(testproj 0)"},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			plan := testPlan(t, func(cfg *generator.ProjectConfig) {
				cfg.Console = tt.mode
			})

			files, err := Render(plan)
			require.NoError(t, err)
			assert.Contains(t, files[CMakeListsName], tt.uart)
			assert.Contains(t, files[CMakeListsName], tt.usb)
		})
	}
}

func TestRender_SourceFileFragments(t *testing.T) {
	plan := testPlan(t, func(cfg *generator.ProjectConfig) {
		cfg.Features = []string{"uart", "spi"}
	})

	files, err := Render(plan)
	require.NoError(t, err)
	source := files["testproj.c"]

	assert.True(t, strings.HasPrefix(source, "#include <stdio.h>\n#include \"pico/stdlib.h\"\n"))
	assert.Contains(t, source, `#include "hardware/spi.h"`)
	assert.Contains(t, source, `#include "hardware/uart.h"`)

	// Each fragment is demarcated with the contributing feature id.
	assert.Contains(t, source, "// [spi] example declarations")
	assert.Contains(t, source, "// [spi] example code")
	assert.Contains(t, source, "// [uart] example code")
	assert.Contains(t, source, "#define SPI_PORT spi0")
	assert.Contains(t, source, "    spi_init(SPI_PORT, 1000*1000);")

	assert.Contains(t, source, "int main()")
	assert.Contains(t, source, "    stdio_init_all();")
	assert.Contains(t, source, `    puts("Hello, world!");`)
	assert.True(t, strings.HasSuffix(source, "    return 0;\n}\n"))
}

func TestRender_EmptySelectionSource(t *testing.T) {
	files, err := Render(testPlan(t, nil))
	require.NoError(t, err)
	source := files["testproj.c"]

	assert.NotContains(t, source, "example declarations")
	assert.Contains(t, source, "int main()")
}

func TestRender_IDEFilesGatedByFlag(t *testing.T) {
	withIDE := testPlan(t, func(cfg *generator.ProjectConfig) {
		cfg.GenerateIDE = true
	})

	files, err := Render(withIDE)
	require.NoError(t, err)

	assert.Contains(t, files, LaunchName)
	assert.Contains(t, files, CPropertiesName)
	assert.Contains(t, files, SettingsName)
	assert.Contains(t, files, ExtensionsName)

	assert.Contains(t, files[LaunchName], `"interface/cmsis-dap.cfg"`)
	assert.Contains(t, files[LaunchName], `"gdbPath": "gdb-multiarch"`)
	assert.Contains(t, files[CPropertiesName], `"compilerPath": "arm-none-eabi-gcc"`)
}

func TestRender_DebuggerSelection(t *testing.T) {
	plan := testPlan(t, func(cfg *generator.ProjectConfig) {
		cfg.GenerateIDE = true
		cfg.Debugger = generator.DebuggerSWD
	})

	files, err := Render(plan)
	require.NoError(t, err)
	assert.Contains(t, files[LaunchName], `"interface/raspberrypi-swd.cfg"`)
	assert.NotContains(t, files[LaunchName], "cmsis-dap.cfg")
}

func TestFileSet_PathsSorted(t *testing.T) {
	fs := FileSet{"b.txt": "", "a.txt": "", ".vscode/launch.json": ""}
	assert.Equal(t, []string{".vscode/launch.json", "a.txt", "b.txt"}, fs.Paths())
}
