package generator

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/phuslu/log"

	"github.com/jakoblorz/go-keil2cmake/internal/device"
	"github.com/jakoblorz/go-keil2cmake/internal/filesystem"
	"github.com/jakoblorz/go-keil2cmake/internal/i18n"
	"github.com/jakoblorz/go-keil2cmake/internal/models"
	"github.com/jakoblorz/go-keil2cmake/internal/optimize"
	"github.com/jakoblorz/go-keil2cmake/internal/paths"
	"github.com/jakoblorz/go-keil2cmake/internal/settings"
)

// Output layout, relative to the output root.
const (
	RootFile          = "CMakeLists.txt"
	PresetsFile       = "CMakePresets.json"
	ClangdFile        = ".clangd"
	UserFile          = "cmake/user/keil2cmake_user.cmake"
	ToolchainFile     = "cmake/internal/toolchain.cmake"
	DefaultScatter    = "cmake/internal/keil2cmake_default.sct"
	DefaultLinkScript = "cmake/internal/keil2cmake_default.ld"
)

// Artifact is one rendered file. WriteOnce files are seeded for the user and
// never replaced once they exist.
type Artifact struct {
	Path      string
	Content   []byte
	WriteOnce bool
}

// WriteResult reports what happened to an artifact on disk.
type WriteResult struct {
	Path    string
	Written bool
}

// Generator renders and writes the CMake project for a Plan.
type Generator struct {
	fs       filesystem.FileSystem
	settings settings.Snapshot
	tr       i18n.Translator
	logger   *log.Logger
}

func NewGenerator(fs filesystem.FileSystem, snapshot settings.Snapshot, tr i18n.Translator, logger *log.Logger) *Generator {
	return &Generator{fs: fs, settings: snapshot, tr: tr, logger: logger}
}

var parseTemplates = sync.OnceValues(func() (*template.Template, error) {
	funcs := sprig.TxtFuncMap()
	funcs["cmakeList"] = paths.FormatCMakeList
	funcs["cmakeQuote"] = paths.CMakeQuote
	funcs["escapeQuotes"] = paths.EscapeQuotes
	funcs["binPrefix"] = binPrefix

	root := template.New("keil2cmake").Funcs(funcs)
	for name, text := range map[string]string{
		RootFile:          rootTemplate,
		UserFile:          userTemplate,
		ToolchainFile:     toolchainTemplate,
		DefaultScatter:    scatterTemplate,
		DefaultLinkScript: linkerTemplate,
	} {
		if _, err := root.New(name).Parse(text); err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
	}
	return root, nil
})

// binPrefix turns a configured bin directory into a prefix for tool names.
// An empty directory leaves the tools to be found on PATH.
func binPrefix(dir string) string {
	dir = paths.Norm(strings.TrimSpace(dir))
	if dir == "" || strings.HasSuffix(dir, "/") {
		return dir
	}
	return dir + "/"
}

var unsafeTargetChars = regexp.MustCompile(`[^A-Za-z0-9_.+-]`)

// targetName turns a Keil target name such as "Target 1" into a valid CMake
// project and target name.
func targetName(name string) string {
	name = unsafeTargetChars.ReplaceAllString(strings.TrimSpace(name), "_")
	if name == "" {
		return "keil2cmake"
	}
	return name
}

// templateData is what the CMake templates see.
type templateData struct {
	tr i18n.Translator

	ProjectName string
	Device      string
	CPU         string
	CPUFlag     string
	Arch        string
	Compiler    string
	Optimize    string
	MinVersion  string

	Sources     []string
	IncludeDirs []string
	Defines     []string

	LinkerScriptSCT string
	LinkerScriptLD  string

	CFlags   string
	ASMFlags string
	LDFlags  string

	ArmCCBin    string
	ArmClangBin string
	ArmGCCBin   string
	Sysroot     string

	Compilers      []string
	OptimizeLevels []string
}

func (d templateData) T(key string, args ...any) string {
	return d.tr.T(key, args...)
}

func (g *Generator) templateData(plan *Plan) templateData {
	p := plan.Project

	var sct, ld string
	if plan.LinkerScript != "" {
		if strings.EqualFold(filepath.Ext(plan.LinkerScript), ".ld") {
			ld = plan.LinkerScript
		} else {
			sct = plan.LinkerScript
		}
	}

	compilers := make([]string, len(models.AllCompilers))
	for i, c := range models.AllCompilers {
		compilers[i] = c.String()
	}

	return templateData{
		tr:              g.tr,
		ProjectName:     targetName(p.Name),
		Device:          p.Device,
		CPU:             plan.Family.String(),
		CPUFlag:         device.FlagName(plan.Family),
		Arch:            device.ArchString(plan.Family),
		Compiler:        plan.Compiler.String(),
		Optimize:        plan.Optimize,
		MinVersion:      g.settings.MinVersion,
		Sources:         plan.Sources,
		IncludeDirs:     plan.IncludeDirs,
		Defines:         plan.Defines,
		LinkerScriptSCT: sct,
		LinkerScriptLD:  ld,
		CFlags:          p.CFlags,
		ASMFlags:        p.ASMFlags,
		LDFlags:         p.LDFlags,
		ArmCCBin:        g.settings.ToolchainPath(models.CompilerArmCC),
		ArmClangBin:     g.settings.ToolchainPath(models.CompilerArmClang),
		ArmGCCBin:       g.settings.ToolchainPath(models.CompilerArmGCC),
		Sysroot:         paths.Norm(g.settings.Sysroot),
		Compilers:       compilers,
		OptimizeLevels:  optimize.ValidOverrides,
	}
}

// Render produces every artifact in memory. Nothing is written, so a
// failure leaves the output root untouched.
func (g *Generator) Render(plan *Plan) ([]Artifact, error) {
	if !plan.Compiler.IsValid() {
		return nil, &models.UnknownCompilerError{Name: plan.Compiler.String()}
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	data := g.templateData(plan)

	var artifacts []Artifact
	for _, spec := range []struct {
		path      string
		writeOnce bool
	}{
		{RootFile, false},
		{UserFile, true},
		{ToolchainFile, false},
		{DefaultScatter, false},
		{DefaultLinkScript, false},
	} {
		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, spec.path, data); err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", spec.path, err)
		}
		artifacts = append(artifacts, Artifact{Path: spec.path, Content: buf.Bytes(), WriteOnce: spec.writeOnce})
	}

	presets, err := renderPresets(plan.Compiler, g.settings)
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, Artifact{Path: PresetsFile, Content: presets})

	clangd, err := renderClangd(plan, g.settings, g.tr)
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, Artifact{Path: ClangdFile, Content: clangd})

	return artifacts, nil
}

// Write stores artifacts below root. Generated files are always replaced;
// WriteOnce files are kept when they already exist.
func (g *Generator) Write(root string, artifacts []Artifact) ([]WriteResult, error) {
	results := make([]WriteResult, 0, len(artifacts))
	for _, a := range artifacts {
		path := filepath.Join(root, filepath.FromSlash(a.Path))

		if a.WriteOnce && g.fs.Exists(path) {
			g.logger.Debug().Str("path", path).Msg("keeping existing user file")
			results = append(results, WriteResult{Path: a.Path, Written: false})
			continue
		}

		if err := g.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return results, fmt.Errorf("failed to create directory for %s: %w", a.Path, err)
		}
		if err := g.fs.WriteFile(path, a.Content, 0644); err != nil {
			return results, fmt.Errorf("failed to write %s: %w", a.Path, err)
		}
		g.logger.Debug().Str("path", path).Int("bytes", len(a.Content)).Msg("wrote artifact")
		results = append(results, WriteResult{Path: a.Path, Written: true})
	}
	return results, nil
}

// Generate renders the plan and writes it to plan.Root.
func (g *Generator) Generate(plan *Plan) ([]WriteResult, error) {
	artifacts, err := g.Render(plan)
	if err != nil {
		return nil, err
	}
	return g.Write(plan.Root, artifacts)
}
