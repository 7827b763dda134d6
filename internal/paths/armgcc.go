package paths

import (
	"path/filepath"
	"strings"

	"github.com/jakoblorz/go-keil2cmake/internal/filesystem"
)

const gccTriple = "arm-none-eabi"

// toolchainBinDir returns the directory holding the armgcc executables for a
// configured ARMGCC_PATH, which may also point at the gcc binary itself.
func toolchainBinDir(fs filesystem.FileSystem, armgccPath string) string {
	p := filepath.Clean(filepath.FromSlash(Norm(armgccPath)))
	if strings.EqualFold(filepath.Ext(p), ".exe") || (fs.Exists(p) && !fs.IsDir(p)) {
		p = filepath.Dir(p)
	}
	return p
}

// InferSysroot guesses the --sysroot for armgcc from ARMGCC_PATH.
//
// Supported layouts:
//   - <toolchain>/bin
//   - <toolchain>/arm-none-eabi/bin
//   - <toolchain>/bin/arm-none-eabi-gcc(.exe)
//
// Returns "" when no candidate has an include directory.
func InferSysroot(fs filesystem.FileSystem, armgccPath string) string {
	armgccPath = ExpandPath(armgccPath)
	if armgccPath == "" {
		return ""
	}

	p := toolchainBinDir(fs, armgccPath)

	var candidates []string
	if strings.EqualFold(filepath.Base(p), "bin") {
		parent := filepath.Dir(p)
		if strings.EqualFold(filepath.Base(parent), gccTriple) {
			candidates = append(candidates, parent)
		}
		candidates = append(candidates, filepath.Join(parent, gccTriple))
	} else {
		candidates = append(candidates, filepath.Join(p, gccTriple))
	}
	candidates = append(candidates, filepath.Join(filepath.Dir(p), gccTriple))

	for _, candidate := range candidates {
		if fs.IsDir(filepath.Join(candidate, "include")) {
			return Norm(candidate)
		}
	}
	return ""
}

// InferGCCIncludes finds the compiler-internal include directories
// (lib/gcc/arm-none-eabi/<version>/include and include-fixed) of an armgcc install.
func InferGCCIncludes(fs filesystem.FileSystem, armgccPath string) []string {
	armgccPath = ExpandPath(armgccPath)
	if armgccPath == "" {
		return nil
	}

	root := toolchainBinDir(fs, armgccPath)
	if strings.EqualFold(filepath.Base(root), "bin") {
		root = filepath.Dir(root)
		if strings.EqualFold(filepath.Base(root), gccTriple) {
			root = filepath.Dir(root)
		}
	}

	base := filepath.Join(root, "lib", "gcc", gccTriple)
	seen := make(map[string]bool)
	var found []string
	for _, pattern := range []string{
		filepath.Join(base, "*", "include"),
		filepath.Join(base, "*", "include-fixed"),
	} {
		matches, err := fs.Glob(pattern)
		if err != nil {
			continue
		}
		for _, match := range matches {
			if !fs.IsDir(match) {
				continue
			}
			n := Norm(match)
			if !seen[n] {
				seen[n] = true
				found = append(found, n)
			}
		}
	}
	return found
}
