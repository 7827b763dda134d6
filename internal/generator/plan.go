// Package generator turns a parsed Keil project into the CMake project
// files and removes them again on --clean.
package generator

import (
	"strings"

	"github.com/jakoblorz/go-keil2cmake/internal/device"
	"github.com/jakoblorz/go-keil2cmake/internal/models"
	"github.com/jakoblorz/go-keil2cmake/internal/optimize"
	"github.com/jakoblorz/go-keil2cmake/internal/paths"
)

// Options carries the command line overrides. Zero values keep what the
// project file says.
type Options struct {
	Compiler models.Compiler
	Optimize string
}

// Plan is the project enriched with everything the templates need. Paths
// are relative to Root where possible and always use forward slashes.
type Plan struct {
	Project  *models.Project
	Root     string
	Compiler models.Compiler
	Optimize string
	Family   device.Family

	Sources      []string
	IncludeDirs  []string
	Defines      []string
	LinkerScript string
}

func NewPlan(project *models.Project, root string, opts Options) *Plan {
	compiler := opts.Compiler
	if compiler == "" {
		compiler = project.DefaultCompiler()
	}

	level := opts.Optimize
	if level == "" {
		level = optimize.Map(project.RawOptimization, compiler)
	}

	var defines []string
	for _, d := range project.Defines {
		if d = strings.TrimSpace(d); d != "" {
			defines = append(defines, d)
		}
	}

	var linker string
	if project.LinkerScript != "" {
		if rel := paths.Relativize([]string{project.LinkerScript}, project.ProjectDir, root); len(rel) == 1 {
			linker = rel[0]
		}
	}

	return &Plan{
		Project:      project,
		Root:         root,
		Compiler:     compiler,
		Optimize:     level,
		Family:       device.CPUFamily(project.Device),
		Sources:      paths.Relativize(project.SourceFiles, project.ProjectDir, root),
		IncludeDirs:  paths.Relativize(project.IncludePaths, project.ProjectDir, root),
		Defines:      defines,
		LinkerScript: linker,
	}
}

// OptimizeFlag is the flag the selected compiler receives for the planned level.
func (p *Plan) OptimizeFlag() string {
	return optimize.Flag(p.Optimize, p.Compiler)
}
