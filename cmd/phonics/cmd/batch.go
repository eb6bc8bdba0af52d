package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var batchJSON bool

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Analyze a word list from a file or stdin",
	Long: `Batch reads one word per line and analyzes each. Blank lines and
lines starting with '#' are skipped. With no file argument, words are
read from stdin.

Words missing from the dictionary are reported on stderr and counted,
but do not stop the run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "print one JSON object per word")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	log := newLogger()
	svc, err := loadService(log)
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	enc := json.NewEncoder(os.Stdout)
	done, failed := 0, 0

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}

		result, err := svc.Analyze(word)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", word, err)
			failed++
			continue
		}
		done++

		if batchJSON {
			if err := enc.Encode(result.Response()); err != nil {
				return err
			}
			continue
		}
		printResult(result)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	log.Info().Int("analyzed", done).Int("failed", failed).Msg("batch complete")
	return nil
}
