package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/fileicons/internal/version"
	"github.com/arthur-debert/fileicons/pkg/config"
	"github.com/arthur-debert/fileicons/pkg/errors"
	"github.com/arthur-debert/fileicons/pkg/fileicons"
	"github.com/arthur-debert/fileicons/pkg/icons"
	"github.com/arthur-debert/fileicons/pkg/icontables"
	"github.com/arthur-debert/fileicons/pkg/logging"
	"github.com/arthur-debert/fileicons/pkg/ui/view"
)

func tableName(dir bool) string {
	if dir {
		return "directories"
	}
	return "files"
}

func newClassCmd(a *app) *cobra.Command {
	var dir, list bool

	cmd := &cobra.Command{
		Use:     "class <name>...",
		Short:   MsgClassShort,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.class")
			opts := fileicons.Options{
				ColorMode:    a.cfg.Classify.ColorMode,
				IsDir:        dir,
				SkipFallback: a.cfg.Classify.SkipFallback,
			}

			result := &view.ClassificationList{
				ColorMode: opts.ColorMode.String(),
				Directory: dir,
				Tokens:    list,
			}
			tables := fileicons.DB()
			for _, name := range args {
				classes, ok := fileicons.GetIconClassList(name, opts)
				result.Items = append(result.Items, view.Classification{
					Name:     name,
					Classes:  classes,
					Found:    ok,
					Fallback: ok && tables.MatchName(name, dir) == nil,
				})
			}

			logger.Debug().
				Int("names", len(args)).
				Interface("cache", tables.CacheStats()).
				Msg("Classified names")
			return a.render(cmd, result)
		},
	}

	cmd.Flags().String("color-mode", "", MsgFlagColorMode)
	cmd.Flags().BoolVar(&dir, "dir", false, MsgFlagDir)
	cmd.Flags().Bool("no-fallback", false, MsgFlagNoFallback)
	cmd.Flags().BoolVar(&list, "list", false, MsgFlagList)
	_ = cmd.RegisterFlagCompletionFunc("color-mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{
			string(icons.ColorModeLight),
			string(icons.ColorModeDark),
			string(icons.ColorModeMono),
		}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newMatchCmd(a *app) *cobra.Command {
	var dir bool

	cmd := &cobra.Command{
		Use:     "match <dimension> <key>",
		Short:   MsgMatchShort,
		Long:    MsgMatchLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveDefault
			}
			names := make([]string, 0, len(icontables.Dimensions()))
			for _, d := range icontables.Dimensions() {
				names = append(names, d.String())
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dim, err := icontables.ParseDimension(args[0])
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid dimension")
			}
			key := args[1]

			icon, err := fileicons.DB().Match(dim, key, dir)
			if err != nil {
				return err
			}
			if icon == nil {
				return errors.Newf(errors.ErrNotFound, MsgErrNoMatch, dim, key).
					WithDetail("dimension", dim.String()).
					WithDetail("key", key)
			}

			return a.render(cmd, &view.Match{
				Dimension: dim.String(),
				Key:       key,
				Rule:      view.NewRule(tableName(dir), icon),
			})
		},
	}

	cmd.Flags().BoolVar(&dir, "dir", false, MsgFlagDir)
	return cmd
}

func newRulesCmd(a *app) *cobra.Command {
	var dir bool

	cmd := &cobra.Command{
		Use:     "rules",
		Short:   MsgRulesShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tables := fileicons.DB()
			table := tables.Files()
			if dir {
				table = tables.Directories()
			}

			result := &view.RuleList{Table: tableName(dir)}
			for _, icon := range table.ByName {
				result.Rules = append(result.Rules, view.NewRule(result.Table, icon))
			}
			return a.render(cmd, result)
		},
	}

	cmd.Flags().BoolVar(&dir, "dir", false, MsgFlagDir)
	return cmd
}

func newSpecialCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "special",
		Short:   MsgSpecialShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tables := fileicons.DB()
			result := &view.SpecialIcons{}
			if icon := tables.BinaryIcon(); icon != nil {
				rule := view.NewRule(tableName(false), icon)
				result.Binary = &rule
			}
			if icon := tables.ExecutableIcon(); icon != nil {
				rule := view.NewRule(tableName(false), icon)
				result.Executable = &rule
			}
			return a.render(cmd, result)
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	var template bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if template {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), config.Template())
				return err
			}

			out, err := config.Generate(a.cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&template, "template", false, MsgFlagTemplate)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(fileicons completion bash)

Zsh:
  $ fileicons completion zsh > "${fpath[1]}/_fileicons"

Fish:
  $ fileicons completion fish | source

PowerShell:
  PS> fileicons completion powershell | Out-String | Invoke-Expression
`,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			switch args[0] {
			case "bash":
				err = cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				err = cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				err = cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			if err != nil {
				log.Error().Err(err).Str("shell", args[0]).Msg("Failed to generate completion")
			}
			return err
		},
	}
}
