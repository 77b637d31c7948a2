package cmd

import (
	"github.com/spf13/viper"

	"github.com/picoforge/picoforge/internal/catalog"
	"github.com/picoforge/picoforge/internal/logging"
	"github.com/picoforge/picoforge/internal/sdk"
)

// loadFeatureCatalog builds the feature registry, applying a YAML overlay
// when one is configured.
func loadFeatureCatalog(overlayPath string) (*catalog.FeatureCatalog, error) {
	features := catalog.DefaultFeatures()
	if overlayPath == "" {
		overlayPath = viper.GetString("catalog")
	}
	if overlayPath == "" {
		return features, nil
	}

	return catalog.LoadOverlay(features, overlayPath)
}

// loadBoardCatalog scans the SDK for board headers. Without a usable SDK the
// built-in board list keeps listing and validation working; sdkPath comes
// back empty in that case so callers can substitute an environment
// reference in generated output.
func loadBoardCatalog(explicitSDK string, logger logging.Logger) (*catalog.BoardCatalog, string) {
	sdkPath, err := sdk.Locate(firstNonEmpty(explicitSDK, viper.GetString("sdk-path")))
	if err != nil {
		logger.Warn("SDK not located, using built-in board list", "reason", err.Error())
		return catalog.NewBoardCatalog(sdk.DefaultBoards()...), ""
	}

	boards, err := sdk.ScanBoards(sdkPath)
	if err != nil || len(boards) == 0 {
		logger.Warn("board scan failed, using built-in board list", "sdk", sdkPath)
		return catalog.NewBoardCatalog(sdk.DefaultBoards()...), sdkPath
	}

	return catalog.NewBoardCatalog(boards...), sdkPath
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
