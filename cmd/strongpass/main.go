// Command strongpass generates a password on the command line.
//
//	strongpass -t memorable -l 5
//	Stubbed Congress Tiptop Playmate Stagnate
//
//	strongpass -t random -l 16
//	aB3$cD9#eF2@gH7!
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/strongpass/strongpass-go/internal/generator"
	"github.com/strongpass/strongpass-go/internal/strength"
	"github.com/strongpass/strongpass-go/internal/wordlist"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		typeFlag     string
		length       int
		wordlistPath string
		showStrength bool
	)

	cmd := &cobra.Command{
		Use:           "strongpass",
		Short:         "Generate memorable or random passwords",
		Long:          "Generates passwords under two strategies: memorable (space-separated words drawn from a word list) and random (mixed characters across four classes).",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := generator.ParseStrategy(typeFlag)
			if err != nil {
				return err
			}

			words, err := loadWords(wordlistPath)
			if err != nil {
				return err
			}

			cfg := generator.Config{Length: length, Strategy: strategy}
			gen := generator.New(words)

			password, err := gen.Generate(cfg)
			if err != nil {
				return err
			}

			if strategy == generator.StrategyRandom && length < generator.MinCoverageLength {
				fmt.Fprintf(cmd.ErrOrStderr(),
					"warning: length %d cannot guarantee all four character classes\n", length)
			}

			fmt.Fprintln(cmd.OutOrStdout(), password)

			if showStrength {
				report := strength.Analyze(password)
				fmt.Fprintf(cmd.OutOrStdout(), "Score: %d/4\n", report.Score)
				fmt.Fprintf(cmd.OutOrStdout(), "Crack time: %s\n",
					report.CrackTimesDisplay["offline_slow_hashing_1e4_per_second"])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "", "password type: memorable (words) or random (characters)")
	cmd.Flags().IntVarP(&length, "length", "l", 12, "number of words (memorable) or characters (random)")
	cmd.Flags().StringVar(&wordlistPath, "wordlist", "", "path to a dice-format word list (default: embedded list)")
	cmd.Flags().BoolVarP(&showStrength, "strength", "s", false, "print a zxcvbn strength report")
	cmd.MarkFlagRequired("type")

	return cmd
}

func loadWords(path string) (*wordlist.List, error) {
	if path != "" {
		return wordlist.Load(path)
	}
	return wordlist.Default()
}
