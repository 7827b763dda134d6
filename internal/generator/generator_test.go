package generator

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/jakoblorz/go-keil2cmake/internal/filesystem"
	"github.com/jakoblorz/go-keil2cmake/internal/i18n"
	"github.com/jakoblorz/go-keil2cmake/internal/logging"
	"github.com/jakoblorz/go-keil2cmake/internal/models"
	"github.com/jakoblorz/go-keil2cmake/internal/settings"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testRoot = "/work/demo"

func qrProject() *models.Project {
	return &models.Project{
		Name:            "qr",
		Device:          "STM32F103C8",
		OutputDir:       "build/",
		SourceFiles:     []string{"../Core/startup.s", `..\Core\main.c`},
		IncludePaths:    []string{`..\Core`, "../Drivers/CMSIS/Include"},
		Defines:         []string{"USE_HAL", " TEST=1 "},
		LinkerScript:    `..\MDK-ARM\Template.sct`,
		CFlags:          `-Wall -DNAME="qr"`,
		RawOptimization: "11",
		ProjectFile:     testRoot + "/MDK-ARM/qr.uvprojx",
		ProjectDir:      testRoot + "/MDK-ARM",
	}
}

func testSnapshot() settings.Snapshot {
	fs := filesystem.NewMockFileSystem()
	cfg := settings.Default()
	cfg.Toolchains.ArmGCC = "/opt/gcc-arm/bin"
	cfg.Includes.ArmGCCSysroot = "/opt/gcc-arm/arm-none-eabi"
	return cfg.Snapshot(fs)
}

func newTestGenerator(fs filesystem.FileSystem, lang string) *Generator {
	return NewGenerator(fs, testSnapshot(), i18n.New(lang), logging.Nop())
}

func artifactMap(t *testing.T, artifacts []Artifact) map[string]string {
	t.Helper()
	m := make(map[string]string, len(artifacts))
	for _, a := range artifacts {
		m[a.Path] = string(a.Content)
	}
	return m
}

func TestNewPlan(t *testing.T) {
	plan := NewPlan(qrProject(), testRoot, Options{})

	require.Equal(t, models.CompilerArmCC, plan.Compiler)
	require.Equal(t, "s", plan.Optimize)
	require.Equal(t, "-Ospace", plan.OptimizeFlag())
	require.Equal(t, []string{"Core/startup.s", "Core/main.c"}, plan.Sources)
	require.Equal(t, []string{"Core", "Drivers/CMSIS/Include"}, plan.IncludeDirs)
	require.Equal(t, []string{"USE_HAL", "TEST=1"}, plan.Defines)
	require.Equal(t, "MDK-ARM/Template.sct", plan.LinkerScript)
	require.Equal(t, "Cortex-M3", plan.Family.String())
}

func TestNewPlan_Overrides(t *testing.T) {
	project := qrProject()
	project.UseArmClang = true

	plan := NewPlan(project, testRoot, Options{})
	require.Equal(t, models.CompilerArmClang, plan.Compiler)
	require.Equal(t, "z", plan.Optimize)

	plan = NewPlan(project, testRoot, Options{Compiler: models.CompilerArmGCC})
	require.Equal(t, models.CompilerArmGCC, plan.Compiler)
	require.Equal(t, "s", plan.Optimize)
	require.Equal(t, "-Os", plan.OptimizeFlag())

	plan = NewPlan(project, testRoot, Options{Compiler: models.CompilerArmGCC, Optimize: "2"})
	require.Equal(t, "2", plan.Optimize)
}

func TestRender_Snapshots(t *testing.T) {
	gen := newTestGenerator(filesystem.NewMockFileSystem(), "en")

	artifacts, err := gen.Render(NewPlan(qrProject(), testRoot, Options{}))
	require.NoError(t, err)

	for _, a := range artifacts {
		t.Run(a.Path, func(t *testing.T) {
			snaps.MatchSnapshot(t, string(a.Content))
		})
	}
}

func TestRender_RootFile(t *testing.T) {
	gen := newTestGenerator(filesystem.NewMockFileSystem(), "en")

	artifacts, err := gen.Render(NewPlan(qrProject(), testRoot, Options{}))
	require.NoError(t, err)
	root := artifactMap(t, artifacts)[RootFile]

	require.Contains(t, root, "cmake_minimum_required(VERSION 3.20)")
	include := strings.Index(root, "include(${CMAKE_SOURCE_DIR}/cmake/user/keil2cmake_user.cmake)")
	project := strings.Index(root, "project(${K2C_PROJECT_NAME} LANGUAGES C CXX ASM)")
	require.NotEqual(t, -1, include)
	require.Greater(t, project, include)
	require.NotContains(t, root, "project(qr")
	require.Contains(t, root, "$<$<COMPILE_LANGUAGE:C>:${_K2C_OPT_FLAG}>")
	require.Contains(t, root, "$<$<COMPILE_LANGUAGE:CXX>:${_K2C_OPT_FLAG}>")
	require.NotContains(t, root, "$<$<COMPILE_LANGUAGE:ASM>:${_K2C_OPT_FLAG}>")
	require.Contains(t, root, `"--scatter=${K2C_LINKER_SCRIPT_SCT}"`)
	require.Contains(t, root, `"-T${K2C_LINKER_SCRIPT_LD}"`)
	require.Contains(t, root, "add_custom_target(show-options")
	require.Contains(t, root, "cmake --preset keil2cmake-armgcc")
	require.NotContains(t, root, "K2C_EXTRA_")
	require.NotContains(t, root, "Core/startup.s")
}

func TestRender_CXXSourcesAreBuilt(t *testing.T) {
	gen := newTestGenerator(filesystem.NewMockFileSystem(), "en")

	p := qrProject()
	p.SourceFiles = append(p.SourceFiles, "../Core/app.cpp")
	artifacts, err := gen.Render(NewPlan(p, testRoot, Options{}))
	require.NoError(t, err)
	files := artifactMap(t, artifacts)

	require.Contains(t, files[UserFile], `"Core/app.cpp"`)
	require.Contains(t, files[RootFile], "LANGUAGES C CXX ASM")
	require.Contains(t, files[ToolchainFile], "CMAKE_CXX_COMPILER")
}

func TestRender_TargetNameIsSanitized(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"qr", "qr"},
		{"Target 1", "Target_1"},
		{" app(v2).debug ", "app_v2_.debug"},
		{"fw+boot-1", "fw+boot-1"},
		{"   ", "keil2cmake"},
	}

	gen := newTestGenerator(filesystem.NewMockFileSystem(), "en")
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			p := qrProject()
			p.Name = tt.name

			artifacts, err := gen.Render(NewPlan(p, testRoot, Options{}))
			require.NoError(t, err)
			files := artifactMap(t, artifacts)

			require.Contains(t, files[UserFile], `set(K2C_PROJECT_NAME "`+tt.want+`")`)
			require.NotContains(t, files[RootFile], tt.name+" LANGUAGES")
		})
	}
}

func TestRender_UserFile(t *testing.T) {
	gen := newTestGenerator(filesystem.NewMockFileSystem(), "en")

	artifacts, err := gen.Render(NewPlan(qrProject(), testRoot, Options{}))
	require.NoError(t, err)

	var user Artifact
	for _, a := range artifacts {
		if a.Path == UserFile {
			user = a
		}
	}
	require.True(t, user.WriteOnce)

	content := string(user.Content)
	require.True(t, strings.HasPrefix(content, "# Generated user configuration for Keil2Cmake"), content)
	require.Contains(t, content, `set(K2C_PROJECT_NAME "qr")`)
	require.Contains(t, content, `set(K2C_DEVICE "STM32F103C8")`)
	require.Contains(t, content, `set(K2C_CPU_ARCH "Cortex-M3")`)
	require.Contains(t, content, `set(K2C_DEFAULT_COMPILER "armcc")`)
	require.Contains(t, content, `set(K2C_DEFAULT_OPTIMIZE_LEVEL "s")`)
	require.Contains(t, content, `set(K2C_LINKER_SCRIPT_SCT "MDK-ARM/Template.sct" CACHE FILEPATH`)
	require.Contains(t, content, `set(K2C_LINKER_SCRIPT_LD  "" CACHE FILEPATH`)
	require.Contains(t, content, "set(K2C_SOURCES\n    \"Core/startup.s\"\n    \"Core/main.c\"\n)")
	require.Contains(t, content, "set(K2C_INCLUDE_DIRS\n    \"Core\"\n    \"Drivers/CMSIS/Include\"\n)")
	require.Contains(t, content, "set(K2C_DEFINES\n    USE_HAL\n    TEST=1\n)")
	require.Contains(t, content, `set(K2C_KEIL_MISC_C_FLAGS "-Wall -DNAME=\"qr\"")`)
	require.Contains(t, content, `set(K2C_KEIL_MISC_ASM_FLAGS "")`)
}

func TestRender_UserFileTranslated(t *testing.T) {
	gen := newTestGenerator(filesystem.NewMockFileSystem(), "zh")

	artifacts, err := gen.Render(NewPlan(qrProject(), testRoot, Options{}))
	require.NoError(t, err)

	content := artifactMap(t, artifacts)[UserFile]
	require.True(t, strings.HasPrefix(content, "# Keil2Cmake 生成的用户配置文件"), content)
}

func TestRender_Toolchain(t *testing.T) {
	gen := newTestGenerator(filesystem.NewMockFileSystem(), "en")

	artifacts, err := gen.Render(NewPlan(qrProject(), testRoot, Options{Compiler: models.CompilerArmGCC}))
	require.NoError(t, err)
	toolchain := artifactMap(t, artifacts)[ToolchainFile]

	require.Contains(t, toolchain, "set(CMAKE_SYSTEM_NAME Generic)")
	require.Contains(t, toolchain, "set(CMAKE_SYSTEM_PROCESSOR cortex-m3)")
	require.Contains(t, toolchain, "set(CMAKE_SYSTEM_ARCH armv7-m)")
	require.Contains(t, toolchain, `set(K2C_COMPILER "armgcc" CACHE STRING`)
	require.Contains(t, toolchain, `set(K2C_ARMCC_BIN "D:/Program/Keil_v5/ARM/ARMCC/bin/")`)
	require.Contains(t, toolchain, `set(K2C_ARMGCC_BIN "/opt/gcc-arm/bin/")`)
	require.Contains(t, toolchain, `set(K2C_ARMGCC_SYSROOT "/opt/gcc-arm/arm-none-eabi")`)
	require.Contains(t, toolchain, `--cpu=Cortex-M3 --apcs=interwork`)
	require.Contains(t, toolchain, `--target=arm-arm-none-eabi -mcpu=cortex-m3 -mthumb`)
	require.Contains(t, toolchain, `message(FATAL_ERROR "Unsupported K2C_COMPILER: ${K2C_COMPILER}`)
}

func TestRender_UnknownCompiler(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	gen := newTestGenerator(fs, "en")

	plan := NewPlan(qrProject(), testRoot, Options{Compiler: models.Compiler("iar")})
	artifacts, err := gen.Render(plan)
	require.Nil(t, artifacts)

	var unknown *models.UnknownCompilerError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "iar", unknown.Name)

	_, err = gen.Generate(plan)
	require.Error(t, err)
	require.Empty(t, fs.Paths())
}

func TestRender_Presets(t *testing.T) {
	tests := []struct {
		name         string
		compiler     models.Compiler
		ninjaEnabled string
		ninjaPath    string
		minVersion   string
		generator    string
		makeProgram  string
		major, minor uint64
	}{
		{
			name:         "ninja on PATH",
			compiler:     models.CompilerArmClang,
			ninjaEnabled: "1",
			ninjaPath:    "ninja",
			minVersion:   "3.20",
			generator:    "Ninja",
			major:        3,
			minor:        20,
		},
		{
			name:         "explicit ninja",
			compiler:     models.CompilerArmCC,
			ninjaEnabled: "true",
			ninjaPath:    `C:\tools\ninja.exe`,
			minVersion:   "3.25.2",
			generator:    "Ninja",
			makeProgram:  "C:/tools/ninja.exe",
			major:        3,
			minor:        25,
		},
		{
			name:         "makefiles",
			compiler:     models.CompilerArmGCC,
			ninjaEnabled: "no",
			ninjaPath:    "/usr/bin/ninja",
			minVersion:   "garbage",
			generator:    "Unix Makefiles",
			major:        3,
			minor:        20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := settings.Default()
			cfg.Ninja.Enabled = tt.ninjaEnabled
			cfg.Ninja.Path = tt.ninjaPath
			cfg.CMake.MinVersion = tt.minVersion
			snap := cfg.Snapshot(filesystem.NewMockFileSystem())

			data, err := renderPresets(tt.compiler, snap)
			require.NoError(t, err)

			var presets cmakePresets
			require.NoError(t, json.Unmarshal(data, &presets))

			require.Equal(t, 3, presets.Version)
			require.Equal(t, cmakeVersion{Major: tt.major, Minor: tt.minor}, presets.CMakeMinimumRequired)
			require.Len(t, presets.ConfigurePresets, 4)
			require.Len(t, presets.BuildPresets, 4)

			names := make([]string, 0, 4)
			for _, p := range presets.ConfigurePresets {
				names = append(names, p.Name)
				require.Equal(t, tt.generator, p.Generator)
				require.Equal(t, "${sourceDir}/cmake/internal/toolchain.cmake", p.CacheVariables["CMAKE_TOOLCHAIN_FILE"])
				if tt.makeProgram == "" {
					require.NotContains(t, p.CacheVariables, "CMAKE_MAKE_PROGRAM")
				} else {
					require.Equal(t, tt.makeProgram, p.CacheVariables["CMAKE_MAKE_PROGRAM"])
				}
			}
			require.Equal(t, []string{"keil2cmake-armcc", "keil2cmake-armclang", "keil2cmake-armgcc", "keil2cmake"}, names)

			def := presets.ConfigurePresets[3]
			require.Equal(t, tt.compiler.String(), def.CacheVariables["K2C_COMPILER"])
			require.Equal(t, "${sourceDir}/build/"+tt.compiler.String(), def.BinaryDir)
			require.Equal(t, "Keil2Cmake default ("+tt.compiler.String()+") ("+tt.generator+")", def.DisplayName)
			require.Equal(t, buildPreset{Name: "keil2cmake", ConfigurePreset: "keil2cmake"}, presets.BuildPresets[3])
		})
	}
}

func TestRenderPresets_InvalidDefaultFallsBack(t *testing.T) {
	data, err := renderPresets(models.Compiler("keil"), testSnapshot())
	require.NoError(t, err)

	var presets cmakePresets
	require.NoError(t, json.Unmarshal(data, &presets))
	require.Equal(t, "armcc", presets.ConfigurePresets[3].CacheVariables["K2C_COMPILER"])
}

func TestRender_Clangd(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/opt/gcc-arm/lib/gcc/arm-none-eabi/13.2.1/include")

	cfg := settings.Default()
	cfg.Toolchains.ArmGCC = "/opt/gcc-arm/bin"
	cfg.Includes.ArmGCCSysroot = "/opt/gcc-arm/arm-none-eabi"
	cfg.Includes.ArmGCC = `C:\extra\include`
	snap := cfg.Snapshot(fs)

	tests := []struct {
		compiler models.Compiler
		add      []string
	}{
		{
			compiler: models.CompilerArmCC,
			add: []string{
				"--target=arm-arm-none-eabi",
				"-isystem", "D:/Program/Keil_v5/ARM/ARMCC/include/",
				"-D__CC_ARM",
				"-D__ARM_ARCH_7M__",
			},
		},
		{
			compiler: models.CompilerArmClang,
			add: []string{
				"--target=arm-arm-none-eabi",
				"-isystem", "D:/Program/Keil_v5/ARM/ARMCLANG/include/",
				"-D__ARMCC_VERSION=6190004",
				"-D__ARM_ARCH_7M__",
			},
		},
		{
			compiler: models.CompilerArmGCC,
			add: []string{
				"--target=arm-none-eabi",
				"-isystem", "/opt/gcc-arm/arm-none-eabi/include",
				"-isystem", "/opt/gcc-arm/lib/gcc/arm-none-eabi/13.2.1/include",
				"-isystem", "C:/extra/include",
				"-D__ARM_ARCH_7M__",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.compiler.String(), func(t *testing.T) {
			plan := NewPlan(qrProject(), testRoot, Options{Compiler: tt.compiler})

			data, err := renderClangd(plan, snap, i18n.New("en"))
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(string(data), "# clangd configuration generated by Keil2Cmake\n"), string(data))
			require.Contains(t, string(data), tt.compiler.String())

			var cfg clangdConfig
			require.NoError(t, yaml.Unmarshal(data, &cfg))
			require.Equal(t, tt.add, cfg.CompileFlags.Add)
			require.Contains(t, cfg.CompileFlags.Remove, "-mcpu=*")
			require.Contains(t, cfg.CompileFlags.Remove, "--cpu=*")
			require.Contains(t, cfg.Diagnostics.Suppress, "unknown-warning-option")
			require.Equal(t, "Build", cfg.Index.Background)
		})
	}
}

func TestWrite_UserFileIsWriteOnce(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir(testRoot)
	gen := newTestGenerator(fs, "en")

	results, err := gen.Generate(NewPlan(qrProject(), testRoot, Options{}))
	require.NoError(t, err)
	require.Len(t, results, 7)
	for _, r := range results {
		require.True(t, r.Written, r.Path)
	}

	userPath := filepath.Join(testRoot, "cmake", "user", "keil2cmake_user.cmake")
	rootPath := filepath.Join(testRoot, "CMakeLists.txt")
	fs.AddFile(userPath, []byte("# edited by hand\n"))
	fs.AddFile(rootPath, []byte("# stale\n"))

	project := qrProject()
	project.SourceFiles = append(project.SourceFiles, "../Core/extra.c")
	results, err = gen.Generate(NewPlan(project, testRoot, Options{}))
	require.NoError(t, err)

	for _, r := range results {
		require.Equal(t, r.Path != UserFile, r.Written, r.Path)
	}

	user, err := fs.ReadFile(userPath)
	require.NoError(t, err)
	require.Equal(t, "# edited by hand\n", string(user))

	root, err := fs.ReadFile(rootPath)
	require.NoError(t, err)
	require.Contains(t, string(root), "project(${K2C_PROJECT_NAME} LANGUAGES C CXX ASM)")

	for _, rel := range []string{
		"CMakePresets.json",
		".clangd",
		"cmake/internal/toolchain.cmake",
		"cmake/internal/keil2cmake_default.sct",
		"cmake/internal/keil2cmake_default.ld",
	} {
		require.True(t, fs.Exists(filepath.Join(testRoot, rel)), rel)
	}
}
