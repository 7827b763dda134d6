package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/phuslu/log"
	"github.com/spf13/cobra"

	"github.com/jakoblorz/go-keil2cmake/internal/filesystem"
	"github.com/jakoblorz/go-keil2cmake/internal/generator"
	"github.com/jakoblorz/go-keil2cmake/internal/i18n"
	"github.com/jakoblorz/go-keil2cmake/internal/logging"
	"github.com/jakoblorz/go-keil2cmake/internal/models"
	"github.com/jakoblorz/go-keil2cmake/internal/optimize"
	"github.com/jakoblorz/go-keil2cmake/internal/paths"
	"github.com/jakoblorz/go-keil2cmake/internal/settings"
	"github.com/jakoblorz/go-keil2cmake/internal/tui"
	"github.com/jakoblorz/go-keil2cmake/internal/uvprojx"
)

// RootCommand converts, cleans and configures keil2cmake projects
type RootCommand struct {
	fs filesystem.FileSystem
}

type rootOptions struct {
	project    string
	output     string
	clean      bool
	lang       string
	compiler   string
	optimize   string
	edit       string
	showConfig bool
	verbose    bool
}

func readOptions(cmd *cobra.Command, args []string) rootOptions {
	var opts rootOptions
	if len(args) > 0 {
		opts.project = args[0]
	}
	opts.output, _ = cmd.Flags().GetString("output")
	opts.clean, _ = cmd.Flags().GetBool("clean")
	opts.lang, _ = cmd.Flags().GetString("lang")
	opts.compiler, _ = cmd.Flags().GetString("compiler")
	opts.optimize, _ = cmd.Flags().GetString("optimize")
	opts.edit, _ = cmd.Flags().GetString("edit")
	opts.showConfig, _ = cmd.Flags().GetBool("show-config")
	opts.verbose, _ = cmd.Flags().GetBool("verbose")
	return opts
}

// session bundles what one invocation needs after flags are read.
type session struct {
	opts   rootOptions
	store  *settings.Store
	tr     i18n.Translator
	out    *tui.Printer
	errOut *tui.Printer
	logger *log.Logger
}

func (s *session) fail(err error) error {
	s.errOut.Error(err.Error())
	return &reportedError{err: err}
}

func (s *session) failf(cause error, key string, args ...any) error {
	return s.fail(&localizedError{msg: s.tr.T(key, args...), err: cause})
}

// Run executes the root command
func (c *RootCommand) Run(cmd *cobra.Command, args []string) error {
	opts := readOptions(cmd, args)
	logger := logging.New(cmd.ErrOrStderr(), opts.verbose)
	errOut := tui.NewPrinter(cmd.ErrOrStderr())

	if opts.lang != "" && !i18n.IsSupported(opts.lang) {
		err := fmt.Errorf("unsupported language %q (expected zh or en)", opts.lang)
		errOut.Error(err.Error())
		return &reportedError{err: err}
	}

	configPath, err := settings.DefaultPath()
	if err != nil {
		errOut.Error(err.Error())
		return &reportedError{err: err}
	}
	logger.Debug().Str("path", configPath).Msg("using settings file")
	store := settings.NewStore(c.fs, configPath, logger)

	s := &session{
		opts:   opts,
		store:  store,
		tr:     i18n.New(c.language(store, opts.lang, logger)),
		out:    tui.NewPrinter(cmd.OutOrStdout()),
		errOut: errOut,
		logger: logger,
	}

	switch {
	case opts.edit != "":
		return c.runEdit(s)
	case opts.showConfig:
		return c.runShowConfig(s)
	default:
		return c.runConvert(s)
	}
}

// language picks --lang, then the stored setting. Reading the store here
// must not write it: a rejected --edit leaves the file untouched.
func (c *RootCommand) language(store *settings.Store, flag string, logger *log.Logger) string {
	if flag != "" {
		return flag
	}
	cfg, err := store.Read()
	if err != nil {
		logger.Warn().Err(err).Msg("falling back to default language")
		return i18n.DefaultLanguage
	}
	return i18n.Normalize(cfg.General.Language)
}

func (c *RootCommand) runEdit(s *session) error {
	key, value, err := s.store.Edit(s.opts.edit)
	if err != nil {
		var cfgErr *settings.ConfigError
		if !errors.As(err, &cfgErr) {
			return s.fail(err)
		}
		switch cfgErr.Kind {
		case settings.ErrorFormat:
			return s.failf(err, cfgErr.MessageKey(), cfgErr.Input)
		case settings.ErrorInvalidKey:
			return s.failf(err, cfgErr.MessageKey(), cfgErr.Key, strings.Join(settings.ValidKeys(), ", "))
		default:
			return s.failf(err, cfgErr.MessageKey(), cfgErr.Key, cfgErr.Value)
		}
	}

	s.out.Success(s.tr.T("config.updated", key, value))
	return nil
}

func (c *RootCommand) runShowConfig(s *session) error {
	cfg, err := s.store.Load()
	if err != nil {
		return s.fail(err)
	}

	for i, section := range cfg.Sections() {
		if i > 0 {
			s.out.Blank()
		}
		s.out.Title(s.tr.T(section.TitleKey))
		for _, item := range section.Items {
			s.out.Item(item.Key, item.Value)
		}
	}
	s.out.Blank()
	s.out.Subtle(s.tr.T("cli.show_config.path", s.store.Path()))
	return nil
}

func (c *RootCommand) runConvert(s *session) error {
	opts := s.opts

	if opts.clean && opts.project == "" && opts.output == "" {
		return s.failf(nil, "cli.error.clean_requires_target")
	}
	if !opts.clean && opts.project == "" {
		return s.failf(nil, "cli.error.project_required")
	}

	var genOpts generator.Options
	if opts.compiler != "" {
		compiler, err := models.ParseCompiler(strings.ToLower(strings.TrimSpace(opts.compiler)))
		if err != nil {
			return s.failf(err, "cli.error.invalid_compiler", opts.compiler)
		}
		genOpts.Compiler = compiler
	}
	if opts.optimize != "" {
		if !optimize.IsValidOverride(opts.optimize) {
			return s.failf(nil, "cli.error.invalid_optimize", opts.optimize)
		}
		genOpts.Optimize = opts.optimize
	}

	cwd, err := c.fs.Getwd()
	if err != nil {
		return s.fail(fmt.Errorf("failed to get working directory: %w", err))
	}

	var project *models.Project
	if opts.project != "" {
		projectPath := opts.project
		if !filepath.IsAbs(projectPath) {
			projectPath = filepath.Join(cwd, projectPath)
		}
		if !c.fs.Exists(projectPath) {
			return s.failf(nil, "cli.error.file_not_found", opts.project)
		}
		parser := uvprojx.NewParser(c.fs, s.tr, s.out)
		project, err = parser.Parse(opts.project)
		if err != nil {
			return s.failf(err, "cli.error.parse_failed", err.Error())
		}
	}

	root := paths.OutputRoot(opts.output, opts.project, cwd)
	if err := c.fs.MkdirAll(root, 0755); err != nil {
		return s.fail(fmt.Errorf("failed to create output root: %w", err))
	}

	if opts.clean {
		removed, err := generator.NewCleaner(c.fs, s.logger).Clean(root)
		if err != nil {
			return s.fail(err)
		}
		if removed > 0 {
			s.out.Success(s.tr.T("clean.done", removed))
		} else {
			s.out.Success(s.tr.T("clean.none"))
		}
		if project == nil {
			return nil
		}
	}

	cfg, err := s.store.Load()
	if err != nil {
		return s.fail(err)
	}

	plan := generator.NewPlan(project, root, genOpts)
	gen := generator.NewGenerator(c.fs, cfg.Snapshot(c.fs), s.tr, s.logger)
	results, err := gen.Generate(plan)
	if err != nil {
		return s.fail(fmt.Errorf("failed to generate CMake project: %w", err))
	}

	c.printSummary(s, plan, results)
	return nil
}

func (c *RootCommand) printSummary(s *session, plan *generator.Plan, results []generator.WriteResult) {
	out, tr := s.out, s.tr

	out.Blank()
	out.Success(tr.T("cli.done"))
	out.Field(tr.T("cli.summary.project"), plan.Project.Name)
	out.Field(tr.T("cli.summary.device"), plan.Project.Device)
	out.Field(tr.T("cli.summary.cpu"), plan.Family.String())
	out.Field(tr.T("cli.summary.compiler"), plan.Compiler.String())
	out.Field(tr.T("cli.summary.optimize"), plan.OptimizeFlag())
	out.Field(tr.T("cli.summary.output"), plan.Root)
	for _, r := range results {
		if r.Written {
			out.Subtle("  " + tr.T("cli.summary.written", r.Path))
		} else {
			out.Subtle("  " + tr.T("cli.summary.kept", r.Path))
		}
	}

	out.Blank()
	out.Success(tr.T("cli.build_cmds"))
	out.Plain("  cmake --preset keil2cmake")
	out.Plain("  cmake --build --preset keil2cmake")
	out.Subtle("  " + tr.T("cli.build_cmds.explicit"))
	for _, compiler := range models.AllCompilers {
		out.Plain("  cmake --preset keil2cmake-" + compiler.String())
	}
}
