package renderer

// Output templates. Rendering must stay byte-deterministic: no timestamps,
// no environment reads, no map-ordered iteration inside any template.

const cmakeTemplate = `# Generated Cmake Pico project file

cmake_minimum_required(VERSION 3.13)

set(CMAKE_C_STANDARD 11)
set(CMAKE_CXX_STANDARD 17)

# Initialise pico_sdk from installed location
# (note this can come from environment, CMake cache etc)
set(PICO_SDK_PATH "{{.SDKPath}}")

set(PICO_BOARD {{.Board}} CACHE STRING "Board type")

# Pull in Raspberry Pi Pico SDK (must be before project)
include(pico_sdk_import.cmake)

project({{.Name}} C CXX ASM)
{{- if .Exceptions}}

set(PICO_CXX_ENABLE_EXCEPTIONS 1)
{{- end}}
{{- if .RTTI}}

set(PICO_CXX_ENABLE_RTTI 1)
{{- end}}

# Initialise the Raspberry Pi Pico SDK
pico_sdk_init()

# Add executable. Default name is the project name, version 0.1

add_executable({{.Name}} {{.Name}}{{.SourceExt}} )

pico_set_program_name({{.Name}} "{{.Name}}")
pico_set_program_version({{.Name}} "0.1")
{{- if .RunFromRAM}}

# no_flash means the target is to run from RAM
pico_set_binary_type({{.Name}} no_flash)
{{- end}}

# Console output destinations
pico_enable_stdio_uart({{.Name}} {{if .UART}}1{{else}}0{{end}})
pico_enable_stdio_usb({{.Name}} {{if .USB}}1{{else}}0{{end}})

# Add the standard library to the build
target_link_libraries({{.Name}}
        pico_stdlib)

# Add the standard include files to the build
target_include_directories({{.Name}} PRIVATE
  ${CMAKE_CURRENT_LIST_DIR}
)
{{- if .Libraries}}

# Add any user requested libraries
target_link_libraries({{.Name}}
{{- range .Libraries}}
        {{.}}
{{- end}}
        )
{{- end}}

pico_add_extra_outputs({{.Name}})
`

const mainTemplate = `#include <stdio.h>
#include "pico/stdlib.h"
{{- range .Includes}}
#include "{{.}}"
{{- end}}
{{- range .Fragments}}
{{- if .Defines}}

// [{{.FeatureID}}] example declarations
{{- range .Defines}}
{{.}}
{{- end}}
{{- end}}
{{- end}}

int main()
{
    stdio_init_all();
{{- range .Fragments}}
{{- if .Initialisers}}

    // [{{.FeatureID}}] example code
{{- range .Initialisers}}
{{- if .}}
    {{.}}
{{- else}}
{{end}}
{{- end}}
{{- end}}
{{- end}}

    puts("Hello, world!");

    return 0;
}
`

const launchTemplate = `{
  "version": "0.2.0",
  "configurations": [
    {
      "name": "Pico Debug (Cortex-Debug)",
      "cwd": "${workspaceRoot}",
      "executable": "${command:cmake.launchTargetPath}",
      "request": "launch",
      "type": "cortex-debug",
      "servertype": "openocd",
      "gdbPath": "{{.GDBPath}}",
      "device": "RP2040",
      "configFiles": [
        "interface/{{.Interface}}",
        "target/rp2040.cfg"
      ],
      "svdFile": "${env:PICO_SDK_PATH}/src/rp2040/hardware_regs/rp2040.svd",
      "runToEntryPoint": "main",
      "postRestartCommands": [
        "break main",
        "continue"
      ],
      "openOCDLaunchCommands": [
        "adapter speed 5000"
      ]
    },
    {
      "name": "Pico Debug (Cortex-Debug with external OpenOCD)",
      "cwd": "${workspaceRoot}",
      "executable": "${command:cmake.launchTargetPath}",
      "request": "launch",
      "type": "cortex-debug",
      "servertype": "external",
      "gdbTarget": "localhost:3333",
      "gdbPath": "{{.GDBPath}}",
      "device": "RP2040",
      "svdFile": "${env:PICO_SDK_PATH}/src/rp2040/hardware_regs/rp2040.svd",
      "runToEntryPoint": "main",
      "postRestartCommands": [
        "break main",
        "continue"
      ]
    }
  ]
}
`

const cPropertiesTemplate = `{
  "configurations": [
    {
      "name": "Pico",
      "includePath": [
        "${workspaceFolder}/**",
        "${env:PICO_SDK_PATH}/**"
      ],
      "defines": [],
      "compilerPath": "{{.CompilerPath}}",
      "cStandard": "c17",
      "cppStandard": "c++14",
      "intelliSenseMode": "linux-gcc-arm",
      "configurationProvider": "ms-vscode.cmake-tools"
    }
  ],
  "version": 4
}
`

const settingsTemplate = `{
  "cmake.statusbar.advanced": {
    "debug": {
      "visibility": "hidden"
    },
    "launch": {
      "visibility": "hidden"
    },
    "build": {
      "visibility": "hidden"
    },
    "buildTarget": {
      "visibility": "hidden"
    }
  },
  "cmake.buildBeforeRun": true,
  "cmake.configureOnOpen": true,
  "cmake.generator": "Ninja",
  "C_Cpp.default.configurationProvider": "ms-vscode.cmake-tools"
}
`

const extensionsTemplate = `{
  "recommendations": [
    "marus25.cortex-debug",
    "ms-vscode.cmake-tools",
    "ms-vscode.cpptools",
    "ms-vscode.cpptools-extension-pack",
    "ms-vscode.vscode-serial-monitor"
  ]
}
`
