package gencisco

import (
	"io"

	"github.com/netscript/gencisco/internal/version"
	"github.com/netscript/gencisco/pkg/config"
	"github.com/netscript/gencisco/pkg/generator"
	"github.com/netscript/gencisco/pkg/logging"
	"github.com/netscript/gencisco/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// setupLogger is replaced in tests to keep log output off the console.
var setupLogger = logging.SetupLogger

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	verbosity  int
	format     string
	configFile string
}

// generateOptions are the root command's own flags.
type generateOptions struct {
	input     string
	output    string
	override  bool
	echo      bool
	device    string
	templates string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs())
}

func newRootCmd(fsys afero.Fs) *cobra.Command {
	global := &globalOptions{}
	gen := &generateOptions{}

	rootCmd := &cobra.Command{
		Use:     "gencisco -i SOURCE [-o DEST]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(global.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a source there is nothing to convert
			if gen.input == "" {
				return cmd.Help()
			}
			return runGenerate(cmd, fsys, global, gen)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&global.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&global.format, "format", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&global.configFile, "config", "", MsgFlagConfig)

	// Generation flags
	rootCmd.Flags().StringVarP(&gen.input, "input", "i", "", MsgFlagInput)
	rootCmd.Flags().StringVarP(&gen.output, "output", "o", "", MsgFlagOutput)
	rootCmd.Flags().BoolVar(&gen.override, "override", false, MsgFlagOverride)
	rootCmd.Flags().BoolVarP(&gen.echo, "log", "l", false, MsgFlagLog)
	rootCmd.Flags().StringVarP(&gen.device, "device", "d", "", MsgFlagDevice)
	rootCmd.Flags().StringVarP(&gen.templates, "templates", "t", "", MsgFlagTemplates)

	_ = rootCmd.RegisterFlagCompletionFunc("device", deviceCompletion(global))
	_ = rootCmd.MarkFlagFilename("input", "ini", "cfg", "conf", "yaml", "yml", "toml")
	_ = rootCmd.MarkFlagDirname("templates")

	rootCmd.AddCommand(newInitCmd(fsys, global))
	rootCmd.AddCommand(newProfilesCmd(fsys, global))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	if err := addHelpTopics(rootCmd); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func runGenerate(cmd *cobra.Command, fsys afero.Fs, global *globalOptions, gen *generateOptions) error {
	logger := logging.GetLogger("cmd.generate")

	overrides := map[string]interface{}{}
	if gen.templates != "" {
		overrides["templates.dir"] = gen.templates
	}
	settings, err := loadSettings(global, overrides)
	if err != nil {
		return err
	}

	result, err := generator.Run(generator.Options{
		Source:      gen.input,
		Destination: gen.output,
		Override:    gen.override,
		Echo:        gen.echo,
		Device:      gen.device,
		Settings:    settings,
		FS:          fsys,
		Stdout:      cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	logger.Info().
		Str("destination", result.Destination).
		Str("device", result.Device).
		Msg("Generation complete")

	// The script itself may be on stdout, so the summary goes to stderr
	renderer, err := newRenderer(global, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	return renderer.RenderResult(ui.NewResultView(result))
}

func loadSettings(global *globalOptions, overrides map[string]interface{}) (*config.Settings, error) {
	return config.Load(config.LoadOptions{
		ConfigFile: global.configFile,
		Overrides:  overrides,
	})
}

func newRenderer(global *globalOptions, w io.Writer) (ui.Renderer, error) {
	format, err := ui.ParseFormat(global.format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, w)
}

// deviceCompletion completes profile names.
func deviceCompletion(global *globalOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		settings, err := loadSettings(global, nil)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		set, err := settings.ProfileSet()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return set.Names(), cobra.ShellCompDirectiveNoFileComp
	}
}
