package cmd

import (
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive word lookup",
	Long: `Interactive starts the terminal UI: type a word, press Enter for the
full breakdown, ctrl+y to copy the IPA transcription. Running 'phonics'
with no arguments does the same thing.`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
