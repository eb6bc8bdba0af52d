package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/f3rmion/phonics/internal/cmudict"
	"github.com/f3rmion/phonics/internal/config"
)

var compileOut string

var compileCmd = &cobra.Command{
	Use:   "compile <cmudict file>",
	Short: "Compile a CMU dictionary file into a SQLite database",
	Long: `Compile parses a CMU pronouncing dictionary text file and writes it
into a SQLite database in the config directory. The compiled database
loads faster than the text file and is picked up automatically by all
other commands.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().StringVar(&compileOut, "out", "", "output database path (default <config dir>/cmudict.db)")
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	log := newLogger()

	out := compileOut
	if out == "" {
		if err := config.EnsureDir(getConfigDir()); err != nil {
			return err
		}
		out = filepath.Join(getConfigDir(), "cmudict.db")
	}

	count, err := cmudict.Compile(args[0], out)
	if err != nil {
		return err
	}

	log.Info().Str("path", out).Int("words", count).Msg("dictionary compiled")
	fmt.Printf("Compiled %d words into %s\n", count, out)
	return nil
}
