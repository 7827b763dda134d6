package generator

import (
	"fmt"
	"path/filepath"

	"github.com/phuslu/log"

	"github.com/jakoblorz/go-keil2cmake/internal/filesystem"
)

// cleanFiles is every file keil2cmake has ever generated, including the
// layouts of earlier versions. Nothing outside this list is removed.
var cleanFiles = []string{
	RootFile,
	PresetsFile,
	ClangdFile,

	ToolchainFile,
	DefaultScatter,
	DefaultLinkScript,
	"cmake/internal/armcc/toolchain.cmake",
	"cmake/internal/armclang/toolchain.cmake",
	"cmake/internal/armgcc/toolchain.cmake",
	"cmake/internal/keil2cmake_generated.cmake",
	"cmake/internal/common/keil2cmake_generated.cmake",

	UserFile,
	"cmake/user/common/keil2cmake_project.cmake",
	"cmake/user/common/keil2cmake_user.cmake",
	"cmake/user/common/Template.sct",
	"cmake/user/common/Template.ld",
	"cmake/user/armcc/keil2cmake_user.cmake",
	"cmake/user/armclang/keil2cmake_user.cmake",
	"cmake/user/armgcc/keil2cmake_user.cmake",
	"cmake/user/armcc/Template.sct",
	"cmake/user/armclang/Template.sct",
	"cmake/user/armgcc/Template.ld",
}

// cleanDirs are removed when empty, deepest first.
var cleanDirs = []string{
	"cmake/internal/armcc",
	"cmake/internal/armclang",
	"cmake/internal/armgcc",
	"cmake/internal/common",
	"cmake/user/armcc",
	"cmake/user/armclang",
	"cmake/user/armgcc",
	"cmake/user/common",
	"cmake/internal",
	"cmake/user",
	"cmake",
}

// Cleaner removes generated files from an output root.
type Cleaner struct {
	fs     filesystem.FileSystem
	logger *log.Logger
}

func NewCleaner(fs filesystem.FileSystem, logger *log.Logger) *Cleaner {
	return &Cleaner{fs: fs, logger: logger}
}

// Clean removes the known generated files below root and returns how many
// were deleted. A file that cannot be removed is logged and skipped; user
// content in the cmake directories keeps them from being removed.
func (c *Cleaner) Clean(root string) (int, error) {
	if c.fs.Exists(root) && !c.fs.IsDir(root) {
		return 0, fmt.Errorf("output root %s is not a directory", root)
	}

	removed := 0
	for _, rel := range cleanFiles {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if !c.fs.Exists(path) || c.fs.IsDir(path) {
			continue
		}
		if err := c.fs.Remove(path); err != nil {
			c.logger.Warn().Str("path", path).Err(err).Msg("failed to remove generated file")
			continue
		}
		c.logger.Debug().Str("path", path).Msg("removed")
		removed++
	}

	for _, rel := range cleanDirs {
		dir := filepath.Join(root, filepath.FromSlash(rel))
		if !c.fs.IsDir(dir) {
			continue
		}
		entries, err := c.fs.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			continue
		}
		if err := c.fs.Remove(dir); err != nil {
			c.logger.Debug().Str("path", dir).Err(err).Msg("failed to remove empty directory")
		}
	}

	return removed, nil
}
