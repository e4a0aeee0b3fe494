package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/semgraph/builder"
	"github.com/katalvlaran/semgraph/internal/config"
)

func newBuildCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a graph by scoring every pair of concepts",
		Long: `Score every pair of concepts with the configured similarity backend and
keep the pairs that reach the threshold as bidirectional edges.

Backends:
  table      built-in computer-hardware vocabulary
  word       Jaccard overlap of words
  char       shared characters
  embedding  OpenAI-compatible /embeddings endpoint (LM Studio by default)

Examples:
  semgraph build --concepts CPU,processor,hardware,RAM,memory --backend table -o hw.json
  semgraph build --concepts-file concepts.txt --backend embedding --top-k 3 -o graph.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			concepts, _ := cmd.Flags().GetStringSlice("concepts")
			file, _ := cmd.Flags().GetString("concepts-file")
			output, _ := cmd.Flags().GetString("output")

			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("failed to open concepts file: %w", err)
				}
				more, err := readConcepts(f)
				f.Close()
				if err != nil {
					return fmt.Errorf("failed to read concepts file: %w", err)
				}
				concepts = append(concepts, more...)
			}
			if len(concepts) == 0 {
				return fmt.Errorf("no concepts given; use --concepts or --concepts-file")
			}

			cfg := a.cfg
			if cmd.Flags().Changed("backend") {
				cfg.Backend.Kind, _ = cmd.Flags().GetString("backend")
			}
			if cmd.Flags().Changed("threshold") {
				cfg.SimilarityThreshold, _ = cmd.Flags().GetFloat64("threshold")
			}
			if cmd.Flags().Changed("top-k") {
				cfg.TopK, _ = cmd.Flags().GetInt("top-k")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			sim, err := config.NewBackend(cfg.Backend, a.logger)
			if err != nil {
				return err
			}
			g, err := builder.FromTexts(cmd.Context(), concepts, sim,
				builder.WithThreshold(cfg.SimilarityThreshold),
				builder.WithTopK(cfg.TopK),
				builder.WithConcurrency(cfg.Backend.Concurrency),
				builder.WithBatchSize(cfg.Backend.BatchSize),
				builder.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return saveGraph(g, output, cmd.OutOrStdout())
			}
			if err = saveGraph(g, output, nil); err != nil {
				return err
			}
			return a.out.Stats("graph built", output, g.Stats())
		},
	}

	cmd.Flags().StringSlice("concepts", nil, "Comma-separated concept labels")
	cmd.Flags().String("concepts-file", "", "File with one concept per line")
	cmd.Flags().String("backend", "", "Similarity backend: table, word, char, embedding")
	cmd.Flags().Float64("threshold", 0, "Admission threshold (default from config)")
	cmd.Flags().Int("top-k", 0, "Keep at most k strongest neighbours per concept (0 = all)")
	cmd.Flags().StringP("output", "o", "-", "Output file (.json, .yaml); - for JSON on stdout")

	return cmd
}
