package gencisco

import (
	"embed"
	"io/fs"

	"github.com/netscript/gencisco/pkg/cobrax/topics"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// addHelpTopics replaces the help command with one that also serves the
// embedded topics.
func addHelpTopics(rootCmd *cobra.Command) error {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return err
	}
	_, err = topics.Initialize(rootCmd, sub, topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	})
	return err
}
