package stencil

import (
	"fmt"
	"os"

	"github.com/arthur-debert/stencil/internal/version"
	"github.com/arthur-debert/stencil/pkg/config"
	"github.com/arthur-debert/stencil/pkg/errors"
	"github.com/arthur-debert/stencil/pkg/logging"
	"github.com/arthur-debert/stencil/pkg/manifest"
	"github.com/arthur-debert/stencil/pkg/paths"
	"github.com/arthur-debert/stencil/pkg/reconcile"
	"github.com/arthur-debert/stencil/pkg/template"
	"github.com/arthur-debert/stencil/pkg/ui"
	"github.com/arthur-debert/stencil/pkg/ui/confirmations"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// environment bundles what every project-facing command needs
type environment struct {
	paths    *paths.Paths
	config   *config.Config
	renderer ui.Renderer
}

// loadEnvironment resolves paths, configuration and the output renderer for
// the project in dir (empty means the current directory). Flags the user set
// explicitly are layered over every config source.
func loadEnvironment(cmd *cobra.Command, dir string, overrides map[string]interface{}) (*environment, error) {
	p, err := paths.New(dir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, MsgErrInitPaths)
	}

	if overrides == nil {
		overrides = map[string]interface{}{}
	}
	if flag := cmd.Flags().Lookup("format"); flag != nil && flag.Changed {
		overrides["output.format"] = flag.Value.String()
	}

	cfg, err := config.LoadWithOverrides(p, overrides)
	if err != nil {
		return nil, err
	}

	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, MsgErrFormat).WithDetail("format", cfg.Output.Format)
	}

	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, MsgErrFormat)
	}

	return &environment{paths: p, config: cfg, renderer: renderer}, nil
}

// newChecker wires the reconciliation core from configuration. The template
// settings only ever come from tool-level sources, never from the project.
func (e *environment) newChecker(prompter reconcile.Prompter) *reconcile.Checker {
	var renderer reconcile.Renderer = template.NewEmbeddedRenderer()
	if dir := e.config.Template.OverrideDir; dir != "" {
		renderer = template.NewDirRenderer(dir)
	}

	loader := reconcile.NewLoader(renderer,
		reconcile.WithTemplate(e.config.Template.Dir, e.config.Template.Target))
	detector := reconcile.NewDetector(prompter,
		reconcile.WithSelfName(e.config.Self.Name))

	return reconcile.NewChecker(loader, detector, version.Version)
}

// readProjectManifest loads the project's package.json
func (e *environment) readProjectManifest() (manifest.Manifest, error) {
	path := e.paths.ManifestPath()
	data, err := os.ReadFile(path)
	if err != nil {
		code := errors.ErrFileAccess
		if os.IsNotExist(err) {
			code = errors.ErrFileNotFound
		}
		return manifest.Manifest{}, errors.Wrapf(err, code, MsgErrReadManifest, path).WithDetail("path", path)
	}
	return manifest.ParseProject(data)
}

type checkOptions struct {
	dev    bool
	sel    bool
	yes    bool
	dryRun bool
}

func newCheckCmd() *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:     "check [project-dir]",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: MsgCheckExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("dev") {
				opts.dev = version.IsDevBuild()
			}
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.dev, "dev", false, MsgFlagDev)
	cmd.Flags().BoolVarP(&opts.sel, "select", "s", false, MsgFlagSelect)
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, MsgFlagYes)
	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, MsgFlagDryRun)

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, opts checkOptions) error {
	if opts.yes && opts.dryRun {
		return errors.New(errors.ErrInvalidInput, MsgErrYesAndDryRun)
	}
	if opts.yes && opts.sel {
		return errors.New(errors.ErrInvalidInput, MsgErrSelectAndYes)
	}

	var dir string
	if len(args) > 0 {
		dir = args[0]
	}

	overrides := map[string]interface{}{}
	if opts.sel {
		overrides["prompt.select"] = true
	}

	env, err := loadEnvironment(cmd, dir, overrides)
	if err != nil {
		return err
	}

	project, err := env.readProjectManifest()
	if err != nil {
		return err
	}

	logger := logging.WithFields(map[string]interface{}{
		"component": "cmd.check",
		"project":   env.paths.ProjectRoot(),
	})
	logger.Info().
		Str("version", version.Version).
		Bool("dev", opts.dev).
		Bool("dryRun", opts.dryRun).
		Msg("Checking project dependencies")

	if opts.dryRun {
		report, err := env.newChecker(nil).Report(project, opts.dev)
		if err != nil {
			return err
		}
		return env.renderer.RenderReport(report)
	}

	var prompter reconcile.Prompter
	if opts.yes {
		prompter = confirmations.AutoApprove()
	} else {
		console := confirmations.NewConsolePrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
		console.Select = env.config.Prompt.Select
		prompter = console
	}

	decision, err := env.newChecker(prompter).CheckForMismatch(cmd.Context(), project, opts.dev)
	if err != nil {
		return err
	}

	logger.Info().
		Bool("shouldFix", decision.ShouldFix).
		Int("mismatched", decision.MismatchedModules.Len()).
		Msg("Check finished")

	return env.renderer.RenderDecision(decision)
}

func newTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "template [project-dir]",
		Short:   MsgTemplateShort,
		Long:    MsgTemplateLong,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dir string
			if len(args) > 0 {
				dir = args[0]
			}

			env, err := loadEnvironment(cmd, dir, nil)
			if err != nil {
				return err
			}

			m, err := env.newChecker(nil).TemplateManifest()
			if err != nil {
				return err
			}
			return env.renderer.RenderManifest(m)
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "gen-config [project-dir]",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !write {
				data, err := config.GenerateDefault()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			data, err := config.GenerateProject(config.Default())
			if err != nil {
				return err
			}

			var dir string
			if len(args) > 0 {
				dir = args[0]
			}
			p, err := paths.New(dir)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, MsgErrInitPaths)
			}

			target := p.ProjectConfigCandidates()[0]
			if _, err := os.Stat(target); err == nil {
				return errors.Newf(errors.ErrFileWrite, MsgErrConfigExists, target).WithDetail("path", target)
			}
			if err := os.WriteFile(target, data, 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, MsgErrWriteConfig, target).WithDetail("path", target)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten+"\n", target)
			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run: func(cmd *cobra.Command, args []string) {
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
		},
	}
}
