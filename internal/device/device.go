// Package device infers Cortex-M facts from a Keil device name.
//
// The facts are best-effort metadata for the toolchain file and editor
// tooling, so every lookup degrades to DefaultFamily instead of failing.
package device

import "strings"

// Family is a Cortex-M CPU family as Keil and armcc spell it.
type Family string

const (
	CortexM0     Family = "Cortex-M0"
	CortexM0Plus Family = "Cortex-M0+"
	CortexM1     Family = "Cortex-M1"
	CortexM3     Family = "Cortex-M3"
	CortexM4     Family = "Cortex-M4"
	CortexM7     Family = "Cortex-M7"
	CortexM23    Family = "Cortex-M23"
	CortexM33    Family = "Cortex-M33"
	CortexM35P   Family = "Cortex-M35P"
	CortexM55    Family = "Cortex-M55"
	CortexM85    Family = "Cortex-M85"
)

// DefaultFamily is returned for device names no series matches.
const DefaultFamily = CortexM4

type seriesEntry struct {
	series string
	family Family
}

// seriesTable is matched in order against the upper-cased device name, so a
// longer series must precede any series that is a substring of it.
var seriesTable = []seriesEntry{
	{"STM32F0", CortexM0},
	{"STM32L0", CortexM0Plus},
	{"STM32G0", CortexM0Plus},
	{"STM32C0", CortexM0Plus},
	{"STM32U0", CortexM0Plus},
	{"STM32F1", CortexM3},
	{"STM32L1", CortexM3},
	{"STM32F2", CortexM3},
	{"STM32F3", CortexM4},
	{"STM32L4", CortexM4},
	{"STM32G4", CortexM4},
	{"STM32F4", CortexM4},
	{"STM32L5", CortexM33},
	{"STM32U5", CortexM33},
	{"STM32H5", CortexM33},
	{"STM32F7", CortexM7},
	{"STM32H7", CortexM7},
	{"STM32WBA", CortexM33},
	{"STM32WB", CortexM4},
	{"STM32WL", CortexM4},
	{"STM32N6", CortexM55},
	{"GD32F1", CortexM3},
	{"GD32F3", CortexM4},
	{"GD32F4", CortexM4},
	{"GD32E23", CortexM23},
	{"ARMCM0P", CortexM0Plus},
	{"ARMCM0", CortexM0},
	{"ARMCM1", CortexM1},
	{"ARMCM23", CortexM23},
	{"ARMCM33", CortexM33},
	{"ARMCM35P", CortexM35P},
	{"ARMCM3", CortexM3},
	{"ARMCM4", CortexM4},
	{"ARMCM55", CortexM55},
	{"ARMCM7", CortexM7},
	{"ARMCM85", CortexM85},
}

type familyFacts struct {
	arch  string
	flag  string
	macro string
}

var facts = map[Family]familyFacts{
	CortexM0:     {"armv6-m", "cortex-m0", "__ARM_ARCH_6M__"},
	CortexM0Plus: {"armv6-m", "cortex-m0plus", "__ARM_ARCH_6M__"},
	CortexM1:     {"armv6-m", "cortex-m1", "__ARM_ARCH_6M__"},
	CortexM3:     {"armv7-m", "cortex-m3", "__ARM_ARCH_7M__"},
	CortexM4:     {"armv7e-m", "cortex-m4", "__ARM_ARCH_7EM__"},
	CortexM7:     {"armv7e-m", "cortex-m7", "__ARM_ARCH_7EM__"},
	CortexM23:    {"armv8-m.base", "cortex-m23", "__ARM_ARCH_8M_BASE__"},
	CortexM33:    {"armv8-m.main", "cortex-m33", "__ARM_ARCH_8M_MAIN__"},
	CortexM35P:   {"armv8-m.main", "cortex-m35p", "__ARM_ARCH_8M_MAIN__"},
	CortexM55:    {"armv8.1-m.main", "cortex-m55", "__ARM_ARCH_8_1M_MAIN__"},
	CortexM85:    {"armv8.1-m.main", "cortex-m85", "__ARM_ARCH_8_1M_MAIN__"},
}

// CPUFamily infers the CPU family from a device name such as "STM32F103C8".
func CPUFamily(deviceName string) Family {
	upper := strings.ToUpper(deviceName)
	for _, entry := range seriesTable {
		if strings.Contains(upper, entry.series) {
			return entry.family
		}
	}
	return DefaultFamily
}

func lookup(f Family) familyFacts {
	if ff, ok := facts[f]; ok {
		return ff
	}
	return facts[DefaultFamily]
}

// ArchString returns the architecture armclang expects in -march.
func ArchString(f Family) string {
	return lookup(f).arch
}

// FlagName returns the -mcpu value for the family.
func FlagName(f Family) string {
	return lookup(f).flag
}

// ArchMacro returns the __ARM_ARCH_* macro a compiler predefines for the family.
func ArchMacro(f Family) string {
	return lookup(f).macro
}

// String returns the armcc spelling (also used for --cpu).
func (f Family) String() string {
	return string(f)
}
