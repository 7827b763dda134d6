package generator

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jakoblorz/go-keil2cmake/internal/device"
	"github.com/jakoblorz/go-keil2cmake/internal/i18n"
	"github.com/jakoblorz/go-keil2cmake/internal/models"
	"github.com/jakoblorz/go-keil2cmake/internal/paths"
	"github.com/jakoblorz/go-keil2cmake/internal/settings"
)

type clangdConfig struct {
	CompileFlags clangdCompileFlags `yaml:"CompileFlags"`
	Diagnostics  clangdDiagnostics  `yaml:"Diagnostics"`
	Index        clangdIndex        `yaml:"Index"`
}

type clangdCompileFlags struct {
	Remove []string `yaml:"Remove"`
	Add    []string `yaml:"Add"`
}

type clangdDiagnostics struct {
	Suppress []string `yaml:"Suppress"`
}

type clangdIndex struct {
	Background string `yaml:"Background"`
}

// Flags clang cannot digest: cross-compiler arch and codegen switches plus
// the Keil-only spellings of armcc.
var clangdRemove = []string{
	"-mcpu=*",
	"-mthumb*",
	"-mfloat-abi=*",
	"-mfpu=*",
	"-ffunction-sections",
	"-fdata-sections",
	"-g",
	"-O*",
	"-std=*",
	"-W*",
	"--cpu=*",
	"--apcs=*",
	"--split_sections",
	"--debug",
	"--c99",
	"--cpp",
	"--strict",
	"--sysroot=*",
	"--specs=*",
}

var clangdSuppress = []string{
	"unknown-warning-option",
	"invalid_token_after_toplevel_declarator",
	"option_ignored",
	"unused-command-line-argument",
	"pp_file_not_found",
}

// armclang 6.19, the release shipped with current µVision.
const armclangVersionMacro = "__ARMCC_VERSION=6190004"

func clangdTarget(c models.Compiler) string {
	if c == models.CompilerArmGCC {
		return "--target=arm-none-eabi"
	}
	return "--target=arm-arm-none-eabi"
}

func clangdCompilerMacro(c models.Compiler) string {
	switch c {
	case models.CompilerArmCC:
		return "__CC_ARM"
	case models.CompilerArmClang:
		return armclangVersionMacro
	default:
		return ""
	}
}

// clangdIncludes returns the system include directories of the compiler in
// use: the configured Keil include, or for armgcc the sysroot, the GCC
// internal headers and the optional extra include.
func clangdIncludes(c models.Compiler, snap settings.Snapshot) []string {
	var dirs []string
	if c == models.CompilerArmGCC {
		if snap.Sysroot != "" {
			dirs = append(dirs, paths.Norm(snap.Sysroot)+"/include")
		}
		dirs = append(dirs, snap.GCCIncludes...)
	}
	if inc := snap.IncludePath(c); inc != "" {
		dirs = append(dirs, paths.Norm(inc))
	}
	return dirs
}

func renderClangd(plan *Plan, snap settings.Snapshot, tr i18n.Translator) ([]byte, error) {
	add := []string{clangdTarget(plan.Compiler)}
	for _, dir := range clangdIncludes(plan.Compiler, snap) {
		add = append(add, "-isystem", dir)
	}
	if macro := clangdCompilerMacro(plan.Compiler); macro != "" {
		add = append(add, "-D"+macro)
	}
	add = append(add, "-D"+device.ArchMacro(plan.Family))

	cfg := clangdConfig{
		CompileFlags: clangdCompileFlags{Remove: clangdRemove, Add: add},
		Diagnostics:  clangdDiagnostics{Suppress: clangdSuppress},
		Index:        clangdIndex{Background: "Build"},
	}

	var buf bytes.Buffer
	buf.WriteString(tr.T("gen.clangd.header.title") + "\n")
	buf.WriteString(tr.T("gen.clangd.header.compiler", plan.Compiler.String()) + "\n\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode .clangd: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode .clangd: %w", err)
	}
	return buf.Bytes(), nil
}
