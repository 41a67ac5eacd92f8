package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pinecoast",
	Short: "Website for Pine Coast BBQ",
	Long: `Pine Coast BBQ serves the restaurant's website: the home page with a
rotating hero, the menu, the story, and a contact form that forwards
messages by email or webhook. It can also export the site as static HTML.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".pinecoast.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
