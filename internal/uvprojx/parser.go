// Package uvprojx reads Keil µVision 5 project files into models.Project.
package uvprojx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jakoblorz/go-keil2cmake/internal/filesystem"
	"github.com/jakoblorz/go-keil2cmake/internal/i18n"
	"github.com/jakoblorz/go-keil2cmake/internal/models"
	"golang.org/x/text/encoding/htmlindex"
)

// ParseError reports a project file that cannot be converted.
type ParseError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Path, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Progress receives one line per extraction phase.
type Progress interface {
	Step(msg string)
}

// sourceExtensions are the file types Keil compiles or assembles. Only the C
// extension is matched case-insensitively: ".S" and ".s" are both assembly,
// but ".CPP" or ".ASM" are not used by Keil.
var sourceExtensions = []string{".c", ".cpp", ".s", ".S", ".asm"}

// IsSourceFile reports whether path names a C, C++ or assembly source.
func IsSourceFile(path string) bool {
	ext := filepath.Ext(path)
	if strings.EqualFold(ext, ".c") {
		return true
	}
	for _, e := range sourceExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Parser extracts the normalized project model from a .uvprojx file.
type Parser struct {
	fs       filesystem.FileSystem
	tr       i18n.Translator
	progress Progress
}

// NewParser creates a Parser. progress may be nil.
func NewParser(fs filesystem.FileSystem, tr i18n.Translator, progress Progress) *Parser {
	return &Parser{fs: fs, tr: tr, progress: progress}
}

func (p *Parser) step(key string, args ...any) {
	if p.progress != nil {
		p.progress.Step(p.tr.T(key, args...))
	}
}

// Parse reads path and returns the first target of the project. It fails
// only for malformed XML or a missing target name; every other node falls
// back to its default.
func (p *Parser) Parse(path string) (*models.Project, error) {

	absPath, err := p.abs(path)
	if err != nil {
		return nil, &ParseError{Path: path, Reason: "cannot resolve project path", Err: err}
	}

	data, err := p.fs.ReadFile(absPath)
	if err != nil {
		return nil, &ParseError{Path: path, Reason: "cannot read project file", Err: err}
	}

	var doc xmlProject
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charsetReader
	if err := decoder.Decode(&doc); err != nil {
		return nil, &ParseError{Path: path, Reason: "malformed XML", Err: err}
	}

	p.step("uvprojx.get_target")
	if len(doc.Targets) == 0 || doc.Targets[0].TargetName == nil || strings.TrimSpace(*doc.Targets[0].TargetName) == "" {
		return nil, &ParseError{Path: path, Reason: "missing Targets/Target/TargetName"}
	}
	target := doc.Targets[0]
	opts := target.TargetOption

	project := &models.Project{
		Name:            strings.TrimSpace(*target.TargetName),
		OutputDir:       models.DefaultOutputDir,
		Device:          models.UnknownDevice,
		RawOptimization: models.DefaultRawOptimization,
		ProjectFile:     absPath,
		ProjectDir:      filepath.Dir(absPath),
	}
	if out := text(opts.Common.OutputDirectory); out != "" {
		project.OutputDir = out
	}

	p.step("uvprojx.collect_sources")
	project.SourceFiles = collectSources(target.Groups)

	p.step("uvprojx.set_includes")
	project.IncludePaths = splitList(text(opts.ArmAds.Cads.VariousControls.IncludePath), ";")

	p.step("uvprojx.load_defines")
	project.Defines = splitList(text(opts.ArmAds.Cads.VariousControls.Define), ",")

	p.step("uvprojx.scatter")
	project.LinkerScript = strings.TrimSpace(text(opts.ArmAds.LDads.ScatterFile))

	p.step("uvprojx.device")
	if device := strings.TrimSpace(text(opts.Common.Device)); device != "" {
		project.Device = device
	}

	p.step("uvprojx.compiler")
	if flag := compilerFlag(target); flag != nil {
		p.step("uvprojx.compiler.value", strings.TrimSpace(*flag))
		project.UseArmClang = strings.TrimSpace(*flag) == "1"
	} else {
		p.step("uvprojx.compiler.absent")
	}

	p.step("uvprojx.flags")
	project.CFlags = text(opts.ArmAds.Cads.VariousControls.MiscControls)
	project.ASMFlags = text(opts.ArmAds.Aads.VariousControls.MiscControls)
	project.LDFlags = text(opts.ArmAds.LDads.VariousControls.MiscControls)

	p.step("uvprojx.optimize")
	optim := opts.ArmAds.Cads.Optim
	if optim == nil {
		optim = opts.ArmAds.Cads.Optimization
	}
	if raw := strings.TrimSpace(text(optim)); raw != "" {
		project.RawOptimization = raw
		p.step("uvprojx.optimize.value", raw)
	} else {
		p.step("uvprojx.optimize.absent")
	}

	return project, nil
}

// charsetReader lets older projects declared as GB2312 or Windows-1252 decode.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	return enc.NewDecoder().Reader(input), nil
}

func (p *Parser) abs(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	cwd, err := p.fs.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, path), nil
}

// compilerFlag returns the node selecting Arm Compiler 6: uAC6 on the target
// (µVision 5.2x+), or the older TargetArmAds spellings.
func compilerFlag(target xmlTarget) *string {
	for _, node := range []*string{
		target.UAC6,
		target.TargetOption.ArmAds.UAC6,
		target.TargetOption.ArmAds.UseArmClang,
	} {
		if node != nil {
			return node
		}
	}
	return nil
}

func collectSources(groups []xmlGroup) []string {
	var sources []string
	for _, group := range groups {
		for _, file := range group.Files {
			path := strings.TrimSpace(text(file.FilePath))
			if path != "" && IsSourceFile(path) {
				sources = append(sources, path)
			}
		}
	}
	return sources
}

func splitList(raw, sep string) []string {
	var items []string
	for _, item := range strings.Split(raw, sep) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
