package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/phonics/internal/anki"
	"github.com/f3rmion/phonics/internal/ipa"
)

var (
	ankiField string
	ankiOut   string
	ankiInfo  bool
)

var ankiCmd = &cobra.Command{
	Use:   "anki <deck.apkg>",
	Short: "Augment an Anki deck with pronunciation fields",
	Long: `Anki reads an exported .apkg deck, analyzes the word in each note's
source field, and writes a new deck with three extra fields per note:
Phonics_IPA, Phonics_Syllables, and Phonics_Reading.

Notes whose source field is not a single dictionary word are left
unchanged. The original deck file is never modified.

Examples:
  phonics anki vocab.apkg
  phonics anki --field Word --out vocab_phonics.apkg vocab.apkg
  phonics anki --info vocab.apkg`,
	Args: cobra.ExactArgs(1),
	RunE: runAnki,
}

func init() {
	ankiCmd.Flags().StringVar(&ankiField, "field", "Front", "note field holding the word")
	ankiCmd.Flags().StringVar(&ankiOut, "out", "", "output path (default <deck>_phonics.apkg)")
	ankiCmd.Flags().BoolVar(&ankiInfo, "info", false, "show deck contents without augmenting")
	rootCmd.AddCommand(ankiCmd)
}

func runAnki(cmd *cobra.Command, args []string) error {
	log := newLogger()

	deck, err := anki.Open(args[0])
	if err != nil {
		return err
	}
	defer deck.Close()

	if ankiInfo {
		fmt.Print(deck.Summary())
		return nil
	}

	svc, err := loadService(log)
	if err != nil {
		return err
	}

	done, skipped, err := deck.Augment(ankiField, func(word string) (anki.PhonicsFields, bool) {
		result, err := svc.Analyze(word)
		if err != nil {
			return anki.PhonicsFields{}, false
		}

		var sylls []string
		for _, syl := range result.Syllables {
			sylls = append(sylls, fmt.Sprintf("%s [%s]", syl.Text, strings.Join(ipa.Render(syl.Phonemes), " ")))
		}
		var units []string
		for _, unit := range result.Reading {
			phon := strings.Join(ipa.Render(unit.Phonemes), "")
			if phon == "" {
				units = append(units, unit.Text)
				continue
			}
			units = append(units, fmt.Sprintf("%s(%s)", unit.Text, phon))
		}

		return anki.PhonicsFields{
			IPA:       "/" + strings.Join(ipa.Render(result.Phonemes), "") + "/",
			Syllables: strings.Join(sylls, " | "),
			Reading:   strings.Join(units, " "),
		}, true
	})
	if err != nil {
		return err
	}

	out := ankiOut
	if out == "" {
		out = strings.TrimSuffix(args[0], ".apkg") + "_phonics.apkg"
	}
	if err := deck.SaveAs(out); err != nil {
		return err
	}

	log.Info().Int("augmented", done).Int("skipped", skipped).Str("out", out).Msg("deck written")
	fmt.Printf("Augmented %d notes (%d skipped) -> %s\n", done, skipped, out)
	return nil
}
