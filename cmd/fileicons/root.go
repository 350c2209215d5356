package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/fileicons/internal/version"
	"github.com/arthur-debert/fileicons/pkg/config"
	"github.com/arthur-debert/fileicons/pkg/errors"
	"github.com/arthur-debert/fileicons/pkg/fileicons"
	"github.com/arthur-debert/fileicons/pkg/icondb"
	"github.com/arthur-debert/fileicons/pkg/icontables"
	"github.com/arthur-debert/fileicons/pkg/logging"
	"github.com/arthur-debert/fileicons/pkg/ui"
	"github.com/arthur-debert/fileicons/pkg/ui/styles"
)

// flagKeys maps flags to the config keys they override when set
var flagKeys = map[string]string{
	"format":      "output.format",
	"database":    "database.path",
	"color-mode":  "classify.color_mode",
	"no-fallback": "classify.skip_fallback",
}

// app carries global flag values and the state built before a command runs
type app struct {
	verbosity  int
	configPath string

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "fileicons",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().String("format", "", MsgFlagFormat)
	rootCmd.PersistentFlags().String("database", "", MsgFlagDatabase)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.AddCommand(newClassCmd(a))
	rootCmd.AddCommand(newMatchCmd(a))
	rootCmd.AddCommand(newRulesCmd(a))
	rootCmd.AddCommand(newSpecialCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// setup configures logging, loads configuration and swaps in a custom
// icon database or style sheet when one is configured
func (a *app) setup(cmd *cobra.Command) error {
	logging.SetupLogger(a.verbosity)
	log.Debug().Str("command", cmd.Name()).Msg(MsgCommandStarted)

	cfg, err := config.Load(config.LoadOptions{
		ConfigPath: a.configPath,
		Overrides:  flagOverrides(cmd),
	})
	if err != nil {
		return err
	}
	config.Initialize(cfg)
	a.cfg = cfg

	if cfg.Output.Styles != "" {
		if err := styles.LoadStyles(cfg.Output.Styles); err != nil {
			return errors.Wrapf(err, errors.ErrConfigLoad, MsgErrLoadStyles, cfg.Output.Styles)
		}
	}

	if cfg.Database.Path != "" {
		db, err := icondb.Load(cfg.Database.Path)
		if err != nil {
			return err
		}
		tables, err := icontables.New(db)
		if err != nil {
			return err
		}
		fileicons.SetDB(tables)
	}
	return nil
}

// flagOverrides collects the config overrides of flags given on the
// command line. Flags left at their defaults do not mask config values.
func flagOverrides(cmd *cobra.Command) map[string]interface{} {
	overrides := map[string]interface{}{}
	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag != nil && flag.Changed {
			overrides[key] = flag.Value.String()
		}
	}
	return overrides
}

// renderer returns a renderer for the configured output format
func (a *app) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid output format")
	}
	r, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrOutputRender, "failed to create renderer")
	}
	return r, nil
}

func (a *app) render(cmd *cobra.Command, result interface{}) error {
	r, err := a.renderer(cmd)
	if err != nil {
		return err
	}
	if err := r.RenderResult(result); err != nil {
		return errors.Wrap(err, errors.ErrOutputRender, "failed to render output")
	}
	return nil
}
