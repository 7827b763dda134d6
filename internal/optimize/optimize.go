// Package optimize maps Keil's optimization code onto compiler flag levels.
package optimize

import "github.com/jakoblorz/go-keil2cmake/internal/models"

// DefaultLevel is returned for codes the table does not know.
const DefaultLevel = "0"

// Size levels as each compiler spells "minimize size".
const (
	SizeLevelCompiler5 = "s"
	SizeLevelCompiler6 = "z"
)

// Keil stores <Optim> as the index of its drop-down; 4 is the AC5/AC6
// "default" entry and 11 is "minimize size".
var compiler5Levels = map[string]string{
	"0":  "0",
	"1":  "1",
	"2":  "2",
	"3":  "3",
	"4":  "1",
	"11": SizeLevelCompiler5,
}

var compiler6Levels = map[string]string{
	"0":  "0",
	"1":  "1",
	"2":  "2",
	"3":  "3",
	"4":  "1",
	"11": SizeLevelCompiler6,
}

// Map translates a raw Keil optimization code into the level used by the
// generated build. armclang uses the Compiler 6 table; armcc and armgcc use
// the Compiler 5 table, and armgcc spells its size level at generation time.
func Map(raw string, c models.Compiler) string {
	table := compiler5Levels
	if c == models.CompilerArmClang {
		table = compiler6Levels
	}
	if level, ok := table[raw]; ok {
		return level
	}
	return DefaultLevel
}

// Flag renders a level as the compiler's -O flag.
func Flag(level string, c models.Compiler) string {
	switch {
	case c == models.CompilerArmCC && level == SizeLevelCompiler5:
		return "-Ospace"
	case c == models.CompilerArmClang && level == SizeLevelCompiler6:
		return "-Oz"
	case c == models.CompilerArmGCC && level == SizeLevelCompiler5:
		return "-Os"
	default:
		return "-O" + level
	}
}

// ValidOverrides lists the levels accepted from the command line.
var ValidOverrides = []string{"0", "1", "2", "3", SizeLevelCompiler5, SizeLevelCompiler6}

// IsValidOverride reports whether level may be forced from the command line.
func IsValidOverride(level string) bool {
	for _, v := range ValidOverrides {
		if v == level {
			return true
		}
	}
	return false
}
