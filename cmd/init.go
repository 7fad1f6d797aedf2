package cmd

import (
	"github.com/spf13/cobra"

	"github.com/renlliang3/astrobase/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize cpviewer configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the viewer for a checkplot directory and writes a .cpviewer.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
