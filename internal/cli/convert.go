package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skuforge/skuforge/internal/convert/profiles"
	"github.com/skuforge/skuforge/internal/model"
	"github.com/skuforge/skuforge/internal/pipeline"
)

var (
	outputDir      string
	sqlitePath     string
	denylist       []string
	maxCellLen     int
	convertTimeout time.Duration
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <document>",
	Short: "Convert a single price-list document to canonical records",
	Long: `Convert reads one extracted price-list document (CSV, HTML, PDF, or
plain text), binds it to a format profile by its structural signature,
and writes the canonical record list as a JSON artifact named after the
document.

A document whose layout matches no known profile is rejected; no
partial output is written for failed documents.

Example:
  skuforge convert sku_list_1.csv
  skuforge convert pricelist.html --out-dir ./exported-jsons
  skuforge convert catalog.pdf --sqlite catalog.db`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&outputDir, "out-dir", "./exported-jsons", "output directory for JSON artifacts")
	convertCmd.Flags().StringVar(&sqlitePath, "sqlite", "", "also store records in this SQLite catalog")
	convertCmd.Flags().StringSliceVar(&denylist, "deny", nil, "extra forbidden-content substrings (rows containing them are dropped)")
	convertCmd.Flags().IntVar(&maxCellLen, "max-cell-len", 0, "override the noise cell-length threshold")
	convertCmd.Flags().DurationVar(&convertTimeout, "timeout", time.Minute, "conversion timeout")
}

func runConvert(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), convertTimeout)
	defer cancel()

	cfg := buildConfig()

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }()

	summary := p.ConvertFile(ctx, path)
	pipeline.NewRenderer(cfg.Output.Dir, cfg.Output.Verbose).RenderSummary(summary)

	if summary.Failed() {
		if errors.Is(summary.Err, profiles.ErrUnsupportedFormat) {
			return fmt.Errorf("document rejected: %w", summary.Err)
		}
		return summary.Err
	}
	return nil
}

// buildConfig layers the config file and flags over the defaults.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring malformed config: %v\n", err)
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	cfg.Output.Verbose = verbose
	if sqlitePath != "" {
		cfg.Sink.SQLitePath = sqlitePath
	}
	if maxCellLen > 0 {
		cfg.Noise.MaxCellLen = maxCellLen
	}
	cfg.Noise.Denylist = append(cfg.Noise.Denylist, denylist...)
	return cfg
}

func printSummaries(summaries []*model.DocumentSummary, renderer *pipeline.Renderer) (success, failure int) {
	for _, s := range summaries {
		renderer.RenderSummary(s)
		if s.Failed() {
			failure++
		} else {
			success++
		}
	}
	fmt.Fprintln(os.Stderr)
	return success, failure
}
