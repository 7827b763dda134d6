// Package paths holds the path and string primitives shared by the parser,
// the settings store and the CMake generators.
package paths

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var driveLetter = regexp.MustCompile(`^[A-Za-z]:[/\\]`)

// ExpandPath expands $VAR, ${VAR} and a leading ~ in a settings value.
// Unset variables are left untouched.
func ExpandPath(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	value = os.Expand(value, func(name string) string {
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		return "${" + name + "}"
	})

	if value == "~" || strings.HasPrefix(value, "~/") || strings.HasPrefix(value, `~\`) {
		if home, err := os.UserHomeDir(); err == nil {
			value = home + value[1:]
		}
	}

	return value
}

// Norm converts backslashes to forward slashes.
func Norm(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// CMakeQuote normalizes p and wraps it in double quotes for a CMake list.
func CMakeQuote(p string) string {
	p = Norm(p)
	if p == "" {
		return `""`
	}
	return `"` + strings.ReplaceAll(p, `"`, `\"`) + `"`
}

// FormatCMakeList quotes every non-blank item, one per indented line.
func FormatCMakeList(items []string) string {
	quoted := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		quoted = append(quoted, CMakeQuote(item))
	}
	return strings.Join(quoted, "\n    ")
}

// EscapeQuotes escapes double quotes for a CMake string literal.
func EscapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// IsAbs reports whether p is absolute on the host or carries a Windows drive letter.
func IsAbs(p string) bool {
	return filepath.IsAbs(p) || driveLetter.MatchString(p)
}

// Relativize resolves every path the way Keil does (relative to projectDir),
// then expresses it relative to outputRoot with forward slashes. A path that
// has no relative form is emitted as its normalized absolute path. Order and
// duplicates are preserved, blank entries are skipped.
func Relativize(items []string, projectDir, outputRoot string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		raw := strings.TrimSpace(item)
		if raw == "" {
			continue
		}
		out = append(out, relativizeOne(raw, projectDir, outputRoot))
	}
	return out
}

func relativizeOne(raw, projectDir, outputRoot string) string {
	abs := Resolve(raw, projectDir)

	if !sameVolume(abs, Norm(outputRoot)) {
		return abs
	}

	rel, err := filepath.Rel(filepath.FromSlash(outputRoot), filepath.FromSlash(abs))
	if err != nil {
		return abs
	}
	return filepath.ToSlash(rel)
}

func sameVolume(a, b string) bool {
	aDrive, bDrive := driveLetter.MatchString(a), driveLetter.MatchString(b)
	if aDrive != bDrive {
		return false
	}
	return !aDrive || strings.EqualFold(a[:1], b[:1])
}

// Resolve returns the cleaned absolute form of raw, using base for relative
// paths. Backslashes count as separators because Keil writes Windows paths.
func Resolve(raw, base string) string {
	p := Norm(raw)
	if !IsAbs(p) {
		p = Norm(base) + "/" + p
	}
	return cleanSlash(p)
}

// cleanSlash cleans a forward-slash path without touching a drive prefix.
func cleanSlash(p string) string {
	if driveLetter.MatchString(p) {
		return p[:2] + cleanPosix(p[2:])
	}
	return cleanPosix(p)
}

func cleanPosix(p string) string {
	return filepath.ToSlash(filepath.Clean(filepath.FromSlash(p)))
}

// vendorProjectDirs are the folder names Keil/CubeMX use for the MDK project.
var vendorProjectDirs = map[string]bool{
	"mdk-arm": true,
	"mdk_arm": true,
	"mdkarm":  true,
}

// OutputRoot derives the directory that receives the generated CMake tree.
//
// An explicit output other than "." wins. Otherwise the project file's
// directory is used, one level up when it is the MDK-ARM folder CubeMX
// creates next to Core/ and Drivers/.
func OutputRoot(output, projectFile, cwd string) string {
	output = strings.TrimSpace(output)
	if projectFile == "" || (output != "" && output != ".") {
		if output == "" {
			output = "."
		}
		return absFrom(output, cwd)
	}

	projectDir := filepath.Dir(absFrom(projectFile, cwd))
	if vendorProjectDirs[strings.ToLower(filepath.Base(projectDir))] {
		return filepath.Dir(projectDir)
	}
	return projectDir
}

func absFrom(p, cwd string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(cwd, p)
}
