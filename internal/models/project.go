package models

// DefaultOutputDir is the output directory hint used when the project file has none.
const DefaultOutputDir = "build/"

// UnknownDevice is the device name recorded when the project file names none.
const UnknownDevice = "Unknown"

// DefaultRawOptimization is the Keil optimization code assumed when the project file has none.
const DefaultRawOptimization = "0"

// Project is the normalized view of a Keil µVision target.
type Project struct {
	// Name is the target name (mandatory in the project file)
	Name string

	// Device is the device name, UnknownDevice if absent
	Device string

	// OutputDir is the Keil output directory hint
	OutputDir string

	// SourceFiles are the C/C++/assembly files in group order, as written in
	// the project file (usually relative to ProjectDir).
	SourceFiles []string

	// IncludePaths are the user include directories in declaration order.
	IncludePaths []string

	// Defines are bare macros or NAME=VALUE pairs.
	Defines []string

	// LinkerScript is the scatter file path, empty when not set.
	LinkerScript string

	CFlags   string
	ASMFlags string
	LDFlags  string

	// UseArmClang reports whether the project selects Arm Compiler 6.
	UseArmClang bool

	// RawOptimization is the Keil optimization code ("0".."4", "11").
	RawOptimization string

	// ProjectFile is the absolute path of the .uvprojx file.
	ProjectFile string

	// ProjectDir is the directory containing ProjectFile. Keil stores paths
	// relative to it.
	ProjectDir string
}

// DefaultCompiler returns the compiler the Keil project itself selects.
func (p *Project) DefaultCompiler() Compiler {
	if p.UseArmClang {
		return CompilerArmClang
	}
	return CompilerArmCC
}
