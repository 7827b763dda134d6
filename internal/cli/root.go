package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jakoblorz/go-keil2cmake/internal/filesystem"
	"github.com/jakoblorz/go-keil2cmake/internal/tui"
)

// NewRootCommand creates the keil2cmake command
func NewRootCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &RootCommand{fs: fs}

	rootCmd := &cobra.Command{
		Use:   "keil2cmake [project.uvprojx]",
		Short: "Convert Keil µVision projects to CMake",
		Long: `Converts a Keil µVision 5 project (.uvprojx) into a CMake project with
presets for armcc, armclang and armgcc, plus a .clangd file for editor support.

The user file cmake/user/keil2cmake_user.cmake is created once and never
overwritten; everything else is regenerated on every run.`,
		Example: `  keil2cmake MDK-ARM/project.uvprojx
  keil2cmake -e ARMCC_PATH=D:/Keil/ARM/ARMCC/bin/
  keil2cmake --show-config --lang en
  keil2cmake --compiler armgcc --optimize s project.uvprojx
  keil2cmake --clean -o .`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          cmd.Run,
	}

	flags := rootCmd.Flags()
	flags.StringP("output", "o", "", "Output root (default: derived from the project file, MDK-ARM goes one level up)")
	flags.Bool("clean", false, "Remove generated CMake files from the output root")
	flags.String("lang", "", "Message language: zh or en (default from settings)")
	flags.String("compiler", "", "Override compiler: armcc, armclang or armgcc")
	flags.String("optimize", "", "Override optimization level: 0, 1, 2, 3, s or z")
	flags.StringP("edit", "e", "", "Edit a setting: KEY=VALUE")
	flags.Bool("show-config", false, "Show the current settings")
	flags.BoolP("verbose", "v", false, "Log file operations to stderr")

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()

	rootCmd := NewRootCommand(fs)

	if err := rootCmd.Execute(); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			tui.NewPrinter(os.Stderr).Error(err.Error())
		}
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
