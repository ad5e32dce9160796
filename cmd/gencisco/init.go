package gencisco

import (
	"fmt"

	"github.com/netscript/gencisco/pkg/devicecfg"
	"github.com/netscript/gencisco/pkg/logging"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newInitCmd(fsys afero.Fs, global *globalOptions) *cobra.Command {
	var device string

	cmd := &cobra.Command{
		Use:   "init [PATH]",
		Short: MsgInitShort,
		Long:  MsgInitLong,
		Example: `  gencisco init
  gencisco init --device switch lab/core-switch.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.init")

			settings, err := loadSettings(global, nil)
			if err != nil {
				return err
			}
			set, err := settings.ProfileSet()
			if err != nil {
				return err
			}
			profile, err := set.Get(device)
			if err != nil {
				return err
			}

			path := profile.Name + devicecfg.FormatINI.Extension()
			if len(args) == 1 {
				path = args[0]
			}

			if err := devicecfg.NewLoader(fsys).WriteDefault(path, profile.Name); err != nil {
				return err
			}
			logger.Info().Str("path", path).Str("device", profile.Name).Msg("Example configuration written")

			renderer, err := newRenderer(global, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderMessage(fmt.Sprintf(MsgConfigCreated, path, profile.Name))
		},
	}

	cmd.Flags().StringVarP(&device, "device", "d", "router", MsgFlagInitType)
	_ = cmd.RegisterFlagCompletionFunc("device", deviceCompletion(global))

	return cmd
}
