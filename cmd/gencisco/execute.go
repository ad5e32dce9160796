package gencisco

import (
	"fmt"

	"github.com/netscript/gencisco/pkg/ui"
	"github.com/spf13/cobra"
)

// Execute runs the command line and returns the process exit code.
func Execute() int {
	return execute(NewRootCmd())
}

func execute(rootCmd *cobra.Command) int {
	if err := rootCmd.Execute(); err != nil {
		renderError(rootCmd, err)
		return 1
	}
	return 0
}

// renderError prints err on stderr in the format selected by --format.
func renderError(rootCmd *cobra.Command, err error) {
	name, _ := rootCmd.PersistentFlags().GetString("format")
	format, parseErr := ui.ParseFormat(name)
	if parseErr != nil {
		format = ui.FormatAuto
	}

	renderer, rendererErr := ui.NewRenderer(format, rootCmd.ErrOrStderr())
	if rendererErr != nil {
		_, _ = fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}
	_ = renderer.RenderError(err)
}
