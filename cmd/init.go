package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pinecoastbbq/pinecoast/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize pinecoast configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the site and generates a .pinecoast.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
