package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/jakoblorz/go-keil2cmake/internal/models"
	"github.com/jakoblorz/go-keil2cmake/internal/paths"
	"github.com/jakoblorz/go-keil2cmake/internal/settings"
)

const (
	presetPrefix    = "keil2cmake"
	presetsVersion  = 3
	toolchainPreset = "${sourceDir}/" + ToolchainFile
)

type cmakePresets struct {
	Version              int               `json:"version"`
	CMakeMinimumRequired cmakeVersion      `json:"cmakeMinimumRequired"`
	ConfigurePresets     []configurePreset `json:"configurePresets"`
	BuildPresets         []buildPreset     `json:"buildPresets"`
}

type cmakeVersion struct {
	Major uint64 `json:"major"`
	Minor uint64 `json:"minor"`
	Patch uint64 `json:"patch"`
}

type configurePreset struct {
	Name           string            `json:"name"`
	DisplayName    string            `json:"displayName"`
	Generator      string            `json:"generator"`
	BinaryDir      string            `json:"binaryDir"`
	CacheVariables map[string]string `json:"cacheVariables"`
}

type buildPreset struct {
	Name            string `json:"name"`
	ConfigurePreset string `json:"configurePreset"`
}

// minimumRequired reads MAJOR.MINOR from the configured version. The patch
// is always 0 so that any 3.x.y release satisfies the presets file.
func minimumRequired(version string) cmakeVersion {
	v, err := semver.NewVersion(version)
	if err != nil {
		v = semver.MustParse(settings.Default().CMake.MinVersion)
	}
	return cmakeVersion{Major: v.Major(), Minor: v.Minor()}
}

func renderPresets(defaultCompiler models.Compiler, snap settings.Snapshot) ([]byte, error) {
	if !defaultCompiler.IsValid() {
		defaultCompiler = models.CompilerArmCC
	}

	generator := "Unix Makefiles"
	if snap.NinjaEnabled {
		generator = "Ninja"
	}

	cacheFor := func(c models.Compiler) map[string]string {
		vars := map[string]string{
			"CMAKE_TOOLCHAIN_FILE": toolchainPreset,
			"K2C_COMPILER":         c.String(),
		}
		if snap.NinjaEnabled && snap.NinjaPath != "" && !strings.EqualFold(snap.NinjaPath, "ninja") {
			vars["CMAKE_MAKE_PROGRAM"] = paths.Norm(snap.NinjaPath)
		}
		return vars
	}

	presets := cmakePresets{
		Version:              presetsVersion,
		CMakeMinimumRequired: minimumRequired(snap.MinVersion),
	}
	for _, c := range models.AllCompilers {
		name := presetPrefix + "-" + c.String()
		presets.ConfigurePresets = append(presets.ConfigurePresets, configurePreset{
			Name:           name,
			DisplayName:    fmt.Sprintf("Keil2Cmake %s (%s)", c, generator),
			Generator:      generator,
			BinaryDir:      "${sourceDir}/build/" + c.String(),
			CacheVariables: cacheFor(c),
		})
		presets.BuildPresets = append(presets.BuildPresets, buildPreset{Name: name, ConfigurePreset: name})
	}
	presets.ConfigurePresets = append(presets.ConfigurePresets, configurePreset{
		Name:           presetPrefix,
		DisplayName:    fmt.Sprintf("Keil2Cmake default (%s) (%s)", defaultCompiler, generator),
		Generator:      generator,
		BinaryDir:      "${sourceDir}/build/" + defaultCompiler.String(),
		CacheVariables: cacheFor(defaultCompiler),
	})
	presets.BuildPresets = append(presets.BuildPresets, buildPreset{Name: presetPrefix, ConfigurePreset: presetPrefix})

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(presets); err != nil {
		return nil, fmt.Errorf("failed to encode presets: %w", err)
	}
	return buf.Bytes(), nil
}
