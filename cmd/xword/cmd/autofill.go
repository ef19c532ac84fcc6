package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/crossplay/xword/pkg/fill"
)

var (
	autofillDict          string
	autofillSeconds       int
	autofillBranching     int
	autofillEntropy       int
	autofillEntropyDecay  float64
	autofillScoreMin      int
	autofillScoreMinDecay float64
	autofillRollback      bool
)

var autofillCmd = &cobra.Command{
	Use:   "autofill <file>",
	Short: "Run one autofill search against a grid file and write the result back",
	Args:  cobra.ExactArgs(1),
	RunE:  runAutofill,
}

func init() {
	rootCmd.AddCommand(autofillCmd)

	d := fill.DefaultParams()
	autofillCmd.Flags().StringVar(&autofillDict, "dict", "", "dictionary file (defaults to the config's dict_path)")
	autofillCmd.Flags().IntVar(&autofillSeconds, "seconds", d.SecondsLimit, "wall-clock search budget")
	autofillCmd.Flags().IntVar(&autofillBranching, "branching-limit", d.BranchingFactorLimit, "branching factor cap (0 = unlimited)")
	autofillCmd.Flags().IntVar(&autofillEntropy, "entropy", d.Entropy, "initial shuffle entropy, 0-100")
	autofillCmd.Flags().Float64Var(&autofillEntropyDecay, "entropy-decay", d.EntropyDecay, "entropy decay factor per relaxation step")
	autofillCmd.Flags().IntVar(&autofillScoreMin, "score-min", d.ScoreMin, "initial minimum frequency score, 1-100")
	autofillCmd.Flags().Float64Var(&autofillScoreMinDecay, "score-min-decay", d.ScoreMinDecay, "score-min decay factor per relaxation step")
	autofillCmd.Flags().BoolVar(&autofillRollback, "rollback", d.Rollback, "restore the grid to its starting state on anything but Solved")
}

func runAutofill(c *cobra.Command, args []string) error {
	path := args[0]

	e, err := loadEngine(path)
	if err != nil {
		return err
	}

	dictPath := autofillDict
	if dictPath == "" {
		dictPath = cfg.DictPath
	}
	if dictPath != "" {
		if err := e.LoadFromFile(dictPath); err != nil {
			return fmt.Errorf("xword: loading dictionary: %w", err)
		}
	}

	params := fill.Params{
		SecondsLimit:         autofillSeconds,
		BranchingFactorLimit: autofillBranching,
		Entropy:              autofillEntropy,
		EntropyDecay:         autofillEntropyDecay,
		ScoreMin:             autofillScoreMin,
		ScoreMinDecay:        autofillScoreMinDecay,
		Rollback:             autofillRollback,
		Rand:                 rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if err := validator.New().Struct(params); err != nil {
		return fmt.Errorf("xword: invalid autofill parameters: %w", err)
	}

	outcome := e.Autofill(params)
	if err := saveEngine(e, path); err != nil {
		return err
	}

	fmt.Printf("%s: %s\n", path, outcome)
	return nil
}
