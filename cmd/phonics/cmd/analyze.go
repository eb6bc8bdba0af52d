package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/phonics/internal/ipa"
	"github.com/f3rmion/phonics/internal/phonics"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [words...]",
	Short: "Analyze one or more English words",
	Long: `Analyze looks up each word in the pronunciation dictionary and prints
its IPA transcription, syllable breakdown, and natural reading units.

Examples:
  phonics analyze hunter
  phonics analyze --json registration
  phonics analyze good paper water`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the analysis as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	log := newLogger()
	svc, err := loadService(log)
	if err != nil {
		return err
	}

	var failed bool
	for _, word := range args {
		result, err := svc.Analyze(word)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", word, err)
			failed = true
			continue
		}
		if analyzeJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(result.Response()); err != nil {
				return err
			}
			continue
		}
		printResult(result)
	}
	if failed {
		return fmt.Errorf("some words could not be analyzed")
	}
	return nil
}

// printResult writes the plain-text breakdown of one analysis.
func printResult(r *phonics.Result) {
	fmt.Printf("%s  /%s/\n", r.Word, strings.Join(ipa.Render(r.Phonemes), ""))

	var sylls []string
	for _, syl := range r.Syllables {
		sylls = append(sylls, fmt.Sprintf("%s [%s]", syl.Text, strings.Join(ipa.Render(syl.Phonemes), " ")))
	}
	fmt.Printf("  syllables: %s\n", strings.Join(sylls, " | "))

	var units []string
	for _, unit := range r.Reading {
		phon := strings.Join(ipa.Render(unit.Phonemes), "")
		if phon == "" {
			units = append(units, unit.Text)
			continue
		}
		units = append(units, fmt.Sprintf("%s(%s)", unit.Text, phon))
	}
	fmt.Printf("  reading:   %s\n", strings.Join(units, " "))
}
