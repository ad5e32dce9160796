package gencisco

import (
	"github.com/netscript/gencisco/pkg/profiles"
	"github.com/netscript/gencisco/pkg/templates"
	"github.com/netscript/gencisco/pkg/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newProfilesCmd(fsys afero.Fs, global *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profiles",
		Aliases: []string{"devices"},
		Short:   MsgProfilesShort,
		Long:    MsgProfilesLong,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, store, err := loadProfiles(fsys, global)
			if err != nil {
				return err
			}

			views := make([]ui.ProfileView, 0, len(set.Names()))
			for _, name := range set.Names() {
				p, err := set.Get(name)
				if err != nil {
					return err
				}
				views = append(views, ui.NewProfileView(p, store))
			}

			renderer, err := newRenderer(global, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderProfiles(views)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:               "show NAME",
		Short:             MsgProfilesShowShort,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: deviceCompletion(global),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, store, err := loadProfiles(fsys, global)
			if err != nil {
				return err
			}
			p, err := set.Get(args[0])
			if err != nil {
				return err
			}

			renderer, err := newRenderer(global, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderProfile(ui.NewProfileView(p, store))
		},
	})

	return cmd
}

// loadProfiles returns the configured profiles and the template store used
// to list their options.
func loadProfiles(fsys afero.Fs, global *globalOptions) (*profiles.Set, *templates.Store, error) {
	settings, err := loadSettings(global, nil)
	if err != nil {
		return nil, nil, err
	}
	set, err := settings.ProfileSet()
	if err != nil {
		return nil, nil, err
	}
	store, err := templates.FromDir(fsys, settings.Templates.Dir)
	if err != nil {
		return nil, nil, err
	}
	return set, store, nil
}
