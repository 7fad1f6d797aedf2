package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "cpviewer",
	Short: "Browse directories of checkplot images",
	Long: `cpviewer builds a JSON file list for a directory of pre-generated
checkplot images and lets you browse them in order, either in the
browser (a single-page viewer with prev/next, a sidebar, and arrow-key
navigation) or directly in the terminal.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".cpviewer.yml", "config file path")
}
