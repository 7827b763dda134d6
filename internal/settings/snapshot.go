package settings

import (
	"strings"

	"github.com/jakoblorz/go-keil2cmake/internal/filesystem"
	"github.com/jakoblorz/go-keil2cmake/internal/i18n"
	"github.com/jakoblorz/go-keil2cmake/internal/models"
	"github.com/jakoblorz/go-keil2cmake/internal/paths"
)

// Snapshot is the resolved view of the settings used for one generation
// run. Paths are env and home expanded.
type Snapshot struct {
	toolchains map[models.Compiler]string
	includes   map[models.Compiler]string

	Sysroot      string
	GCCIncludes  []string
	NinjaEnabled bool
	NinjaPath    string
	MinVersion   string
	Language     string
}

var ninjaDisabled = map[string]bool{
	"0": true, "false": true, "False": true, "no": true, "NO": true,
}

// Snapshot resolves the configuration. The armgcc sysroot falls back to the
// layout around ARMGCC_PATH when it is not configured.
func (c *Config) Snapshot(fs filesystem.FileSystem) Snapshot {
	armgcc := paths.ExpandPath(c.Toolchains.ArmGCC)

	sysroot := paths.ExpandPath(c.Includes.ArmGCCSysroot)
	if sysroot == "" {
		sysroot = paths.InferSysroot(fs, armgcc)
	}

	ninjaPath := paths.ExpandPath(c.Ninja.Path)
	if ninjaPath == "" {
		ninjaPath = "ninja"
	}
	minVersion := strings.TrimSpace(c.CMake.MinVersion)
	if !isCMakeVersion(minVersion) {
		minVersion = Default().CMake.MinVersion
	}

	return Snapshot{
		toolchains: map[models.Compiler]string{
			models.CompilerArmCC:    paths.ExpandPath(c.Toolchains.ArmCC),
			models.CompilerArmClang: paths.ExpandPath(c.Toolchains.ArmClang),
			models.CompilerArmGCC:   armgcc,
		},
		includes: map[models.Compiler]string{
			models.CompilerArmCC:    paths.ExpandPath(c.Includes.ArmCC),
			models.CompilerArmClang: paths.ExpandPath(c.Includes.ArmClang),
			models.CompilerArmGCC:   paths.ExpandPath(c.Includes.ArmGCC),
		},
		Sysroot:      sysroot,
		GCCIncludes:  paths.InferGCCIncludes(fs, armgcc),
		NinjaEnabled: !ninjaDisabled[strings.TrimSpace(c.Ninja.Enabled)],
		NinjaPath:    ninjaPath,
		MinVersion:   minVersion,
		Language:     i18n.Normalize(c.General.Language),
	}
}

// ToolchainPath returns the bin directory configured for c.
func (s Snapshot) ToolchainPath(c models.Compiler) string {
	return s.toolchains[c]
}

// IncludePath returns the system include directory configured for c. For
// armgcc this is the optional extra include on top of the sysroot.
func (s Snapshot) IncludePath(c models.Compiler) string {
	return s.includes[c]
}
