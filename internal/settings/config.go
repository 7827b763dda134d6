// Package settings manages the per-user keil2cmake configuration file.
package settings

// Config mirrors the on-disk layout. Section and key names are upper case
// to stay compatible with the INI store of earlier versions.
type Config struct {
	Toolchains Toolchains `toml:"TOOLCHAINS"`
	Includes   Includes   `toml:"INCLUDES"`
	Ninja      Ninja      `toml:"NINJA"`
	CMake      CMake      `toml:"CMAKE"`
	General    General    `toml:"GENERAL"`
}

type Toolchains struct {
	ArmCC    string `toml:"ARMCC_PATH"`
	ArmClang string `toml:"ARMCLANG_PATH"`
	ArmGCC   string `toml:"ARMGCC_PATH"`
}

type Includes struct {
	ArmCC         string `toml:"ARMCC_INCLUDE"`
	ArmClang      string `toml:"ARMCLANG_INCLUDE"`
	ArmGCCSysroot string `toml:"ARMGCC_SYSROOT"`
	ArmGCC        string `toml:"ARMGCC_INCLUDE"`
}

type Ninja struct {
	Enabled string `toml:"ENABLED" validate:"oneof=0 1 true false True False yes no YES NO"`
	Path    string `toml:"PATH" validate:"required"`
}

type CMake struct {
	MinVersion string `toml:"MIN_VERSION" validate:"cmake_version"`
}

type General struct {
	Language string `toml:"LANGUAGE" validate:"oneof=zh en"`
}

// Default returns the configuration written on first use.
func Default() *Config {
	return &Config{
		Toolchains: Toolchains{
			ArmCC:    "D:/Program/Keil_v5/ARM/ARMCC/bin/",
			ArmClang: "D:/Program/Keil_v5/ARM/ARMCLANG/bin/",
			ArmGCC:   "D:/Program/GNUArmEmbeddedToolchain/bin/",
		},
		Includes: Includes{
			ArmCC:    "D:/Program/Keil_v5/ARM/ARMCC/include/",
			ArmClang: "D:/Program/Keil_v5/ARM/ARMCLANG/include/",
		},
		Ninja: Ninja{
			Enabled: "1",
			Path:    "ninja",
		},
		CMake: CMake{
			MinVersion: "3.20",
		},
		General: General{
			Language: "zh",
		},
	}
}

// editKey binds a user-facing KEY of --edit to its field.
type editKey struct {
	name  string
	rule  string
	field func(c *Config) *string
}

var editKeys = []editKey{
	{"ARMCC_PATH", "", func(c *Config) *string { return &c.Toolchains.ArmCC }},
	{"ARMCLANG_PATH", "", func(c *Config) *string { return &c.Toolchains.ArmClang }},
	{"ARMGCC_PATH", "", func(c *Config) *string { return &c.Toolchains.ArmGCC }},
	{"ARMCC_INCLUDE", "", func(c *Config) *string { return &c.Includes.ArmCC }},
	{"ARMCLANG_INCLUDE", "", func(c *Config) *string { return &c.Includes.ArmClang }},
	{"ARMGCC_SYSROOT", "", func(c *Config) *string { return &c.Includes.ArmGCCSysroot }},
	{"ARMGCC_INCLUDE", "", func(c *Config) *string { return &c.Includes.ArmGCC }},
	{"MIN_VERSION", "cmake_version", func(c *Config) *string { return &c.CMake.MinVersion }},
	{"NINJA_ENABLED", "oneof=0 1 true false True False yes no YES NO", func(c *Config) *string { return &c.Ninja.Enabled }},
	{"NINJA_PATH", "required", func(c *Config) *string { return &c.Ninja.Path }},
	{"LANGUAGE", "oneof=zh en", func(c *Config) *string { return &c.General.Language }},
}

// ValidKeys lists the keys accepted by Store.Edit, in display order.
func ValidKeys() []string {
	keys := make([]string, len(editKeys))
	for i, k := range editKeys {
		keys[i] = k.name
	}
	return keys
}

func findKey(name string) (editKey, bool) {
	for _, k := range editKeys {
		if k.name == name {
			return k, true
		}
	}
	return editKey{}, false
}

// Item is one key/value line of a section listing.
type Item struct {
	Key   string
	Value string
}

// Section groups the items shown under one heading by --show-config.
type Section struct {
	TitleKey string
	Items    []Item
}

// Sections returns the raw (unexpanded) values grouped the way they are
// stored.
func (c *Config) Sections() []Section {
	return []Section{
		{TitleKey: "cli.show_config.toolchains", Items: []Item{
			{"ARMCC_PATH", c.Toolchains.ArmCC},
			{"ARMCLANG_PATH", c.Toolchains.ArmClang},
			{"ARMGCC_PATH", c.Toolchains.ArmGCC},
		}},
		{TitleKey: "cli.show_config.includes", Items: []Item{
			{"ARMCC_INCLUDE", c.Includes.ArmCC},
			{"ARMCLANG_INCLUDE", c.Includes.ArmClang},
			{"ARMGCC_SYSROOT", c.Includes.ArmGCCSysroot},
			{"ARMGCC_INCLUDE", c.Includes.ArmGCC},
		}},
		{TitleKey: "cli.show_config.ninja", Items: []Item{
			{"ENABLED", c.Ninja.Enabled},
			{"PATH", c.Ninja.Path},
		}},
		{TitleKey: "cli.show_config.cmake", Items: []Item{
			{"MIN_VERSION", c.CMake.MinVersion},
		}},
		{TitleKey: "cli.show_config.general", Items: []Item{
			{"LANGUAGE", c.General.Language},
		}},
	}
}
