// Command morfessor is a thin driver over the core training/segmentation
// engine: it binds config.Config to flags, loads a tab-separated
// training file, trains, and writes segmentations. Richer CLI surface
// (annotation files, evaluation reports, exit-code conventions) is out
// of scope for the core and intentionally absent here.
package main

import (
	"context"
	"math/rand"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Waino/morfessor-cognates/config"
	"github.com/Waino/morfessor-cognates/ioformat"
	"github.com/Waino/morfessor-cognates/morfessor"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Default()
	var (
		inputPath  string
		outputPath string
		cognate    bool
		corpusW    float64
		maxEpochs  int
		seed       int64
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "morfessor",
		Short: "Train an MDL morph segmentation model",
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				morfessor.SetLogger(zerolog.New(os.Stderr).With().Timestamp().Logger())
			}
			if cmd.Flags().Changed("corpusweight") {
				cfg.CorpusWeight = &corpusW
			}
			if cmd.Flags().Changed("max-epochs") && maxEpochs > 0 {
				cfg.MaxEpochs = &maxEpochs
			}

			f, err := os.Open(inputPath)
			if err != nil {
				return err
			}
			defer f.Close()
			records, err := ioformat.ReadTrainingData(f)
			if err != nil {
				return err
			}

			out := os.Stdout
			if outputPath != "" {
				w, err := os.Create(outputPath)
				if err != nil {
					return err
				}
				defer w.Close()
				out = w
			}

			rnd := rand.New(rand.NewSource(seed))
			ctx := context.Background()

			if cognate {
				m := morfessor.NewCognateModel(cfg)
				if err := m.LoadData(records); err != nil {
					return err
				}
				if _, _, err := m.Train(ctx, cfg, rnd); err != nil {
					return err
				}
				return ioformat.WriteSegmentations(out, m.Segmentations())
			}

			m := morfessor.NewBaselineModel(cfg)
			if err := m.LoadData(records); err != nil {
				return err
			}
			if _, _, err := m.Train(ctx, cfg, rnd); err != nil {
				return err
			}
			return ioformat.WriteSegmentations(out, m.Segmentations())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&inputPath, "input", "i", "", "training data file (count\\tcompound[\\tseg1 seg2 ...])")
	flags.StringVarP(&outputPath, "output", "o", "", "segmentation output file (default stdout)")
	flags.BoolVar(&cognate, "cognate", false, "train a cognate (source/target pair) model instead of baseline")
	flags.StringVar(&cfg.Algorithm, "algorithm", cfg.Algorithm, "recursive | viterbi | flatten")
	flags.Float64Var(&cfg.FinishThreshold, "finish-threshold", cfg.FinishThreshold, "stopping slack per compound boundary")
	flags.Float64Var(&corpusW, "corpusweight", 1.0, "corpus code length multiplier")
	flags.IntVar(&maxEpochs, "max-epochs", 0, "epoch cap (0 = unbounded)")
	flags.Float64Var(&cfg.AddCount, "addcount", cfg.AddCount, "Viterbi additive-smoothing constant")
	flags.IntVar(&cfg.MaxLen, "maxlen", cfg.MaxLen, "Viterbi maximum segment length")
	flags.Float64Var(&cfg.EditWeight, "edit-weight", cfg.EditWeight, "cognate edit sub-cost weight")
	flags.Int64Var(&seed, "seed", 1, "per-epoch shuffle seed")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log training progress")
	cmd.MarkFlagRequired("input")

	return cmd
}
