package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/skuforge/skuforge/internal/model"
	"github.com/skuforge/skuforge/internal/pipeline"
	"github.com/skuforge/skuforge/internal/worker"
)

var (
	concurrency  int
	batchTimeout time.Duration
	// outputDir and sqlitePath are defined in convert.go and shared here
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir-or-list-file>",
	Short: "Convert many price-list documents in parallel",
	Long: `Batch converts a whole corpus concurrently:
- Point it at a directory of documents, or a file listing one path per line
- Documents are converted in parallel with a configurable worker count
- Each document gets its own section state; one failure never affects siblings
- Per-document artifacts plus a success/failure summary

Example:
  skuforge batch ./csvs/cleaned
  skuforge batch docs.txt --concurrency 8 --out-dir ./exported-jsons
  skuforge batch ./pricelists --sqlite catalog.db`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "out-dir", "./exported-jsons", "output directory for JSON artifacts")
	batchCmd.Flags().StringVar(&sqlitePath, "sqlite", "", "also store records in this SQLite catalog")
	batchCmd.Flags().StringSliceVar(&denylist, "deny", nil, "extra forbidden-content substrings")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
}

func runBatch(cmd *cobra.Command, args []string) error {
	target := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := buildConfig()
	cfg.Concurrency.Workers = concurrency

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input:      %s\n", target)
	fmt.Fprintf(os.Stderr, "  Workers:    %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir: %s\n", cfg.Output.Dir)
	fmt.Fprintf(os.Stderr, "\n")

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }()

	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Workers)

	var summaries []*model.DocumentSummary
	info, err := os.Stat(target)
	switch {
	case err != nil:
		return fmt.Errorf("stat input: %w", err)
	case info.IsDir():
		summaries, err = processor.ProcessDir(ctx, target)
	default:
		summaries, err = processor.ProcessFile(ctx, target)
	}
	if err != nil {
		return err
	}

	renderer := pipeline.NewRenderer(cfg.Output.Dir, cfg.Output.Verbose)
	success, failure := printSummaries(summaries, renderer)

	fmt.Fprintf(os.Stderr, "  Total:    %d documents\n", len(summaries))
	fmt.Fprintf(os.Stderr, "  Success:  %d\n", success)
	fmt.Fprintf(os.Stderr, "  Failures: %d\n", failure)
	fmt.Fprintf(os.Stderr, "\n")

	if failure > 0 && success == 0 {
		return fmt.Errorf("all %d documents failed", failure)
	}
	return nil
}
