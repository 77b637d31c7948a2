// Package sdk locates the Raspberry Pi Pico SDK on the host and scans it for
// available board definitions. The scan result is handed to the board
// catalog as a plain slice, so the generation core itself never reads the
// filesystem.
package sdk

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/picoforge/picoforge/internal/catalog"
)

// Environment variables honoured during discovery.
const (
	EnvSDKPath         = "PICO_SDK_PATH"
	EnvBoardHeaderDirs = "PICO_BOARD_HEADER_DIRS"
)

// Paths inside an SDK checkout.
const (
	boardsSubdir  = "src/boards/include/boards"
	importShimRel = "external/pico_sdk_import.cmake"
)

// Locate resolves the SDK path. An explicit path wins over the PICO_SDK_PATH
// environment variable; either way the directory must exist.
func Locate(explicit string) (string, error) {
	path := explicit
	if path == "" {
		path = os.Getenv(EnvSDKPath)
	}
	if path == "" {
		return "", fmt.Errorf("SDK not found: set %s or pass --sdk-path", EnvSDKPath)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("SDK path %s: %w", path, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("SDK path %s is not a directory", path)
	}

	return filepath.Clean(path), nil
}

// ScanBoards collects board definitions from the SDK tree and any extra
// directories named in PICO_BOARD_HEADER_DIRS. SDK boards are listed first
// and win on duplicate ids; within each directory the result is sorted by id
// so repeated scans yield the same catalog.
func ScanBoards(sdkPath string) ([]catalog.Board, error) {
	boards, err := scanDir(filepath.Join(sdkPath, boardsSubdir))
	if err != nil {
		return nil, fmt.Errorf("scanning SDK boards: %w", err)
	}

	if extra := os.Getenv(EnvBoardHeaderDirs); extra != "" {
		for _, dir := range filepath.SplitList(extra) {
			more, err := scanDir(dir)
			if err != nil {
				// Extra directories are best effort; a stale entry in the
				// environment should not break generation.
				continue
			}
			boards = append(boards, more...)
		}
	}

	return boards, nil
}

// ImportShim reads the SDK's own copy of pico_sdk_import.cmake, so a
// generated project ships the shim matching the installed SDK revision
// rather than the built-in fallback.
func ImportShim(sdkPath string) (string, error) {
	data, err := os.ReadFile(filepath.Join(sdkPath, filepath.FromSlash(importShimRel)))
	if err != nil {
		return "", fmt.Errorf("reading SDK import shim: %w", err)
	}

	return string(data), nil
}

// DefaultBoards returns the minimal built-in board list used when no SDK is
// available, e.g. for listing features or dry runs on a host without the
// toolchain installed.
func DefaultBoards() []catalog.Board {
	return []catalog.Board{
		{ID: "pico", Header: "boards/pico.h", Platform: catalog.PlatformRP2040},
		{ID: "pico_w", Header: "boards/pico_w.h", Platform: catalog.PlatformPicoW},
	}
}

func scanDir(dir string) ([]catalog.Board, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var boards []catalog.Board
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".h" {
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".h")
		boards = append(boards, catalog.Board{
			ID:       id,
			Header:   filepath.Join(dir, e.Name()),
			Platform: platformFor(id),
		})
	}

	sort.Slice(boards, func(i, j int) bool { return boards[i].ID < boards[j].ID })

	return boards, nil
}

// platformFor tags a board id with its chip family. Wireless boards carry
// the CYW43 radio and need its driver library at link time.
func platformFor(id string) string {
	if strings.Contains(id, "pico_w") {
		return catalog.PlatformPicoW
	}
	return catalog.PlatformRP2040
}
