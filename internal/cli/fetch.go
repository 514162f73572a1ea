package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/skuforge/skuforge/internal/cache"
	"github.com/skuforge/skuforge/internal/fetch"
)

var (
	fetchDest    string
	fetchTimeout time.Duration
	noCache      bool
	noRobots     bool
	httpProxy    string
	httpsProxy   string
	reqPerSec    float64
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch <url>...",
	Short: "Download remote price-list documents for later conversion",
	Long: `Fetch downloads one or more price-list documents into a local
directory, ready for convert/batch. Downloads respect robots.txt, are
rate-limited per host, and are cached so re-runs don't re-download an
unchanged corpus.

Example:
  skuforge fetch https://vendor.example/pricelists/sku_list_2.csv
  skuforge fetch https://vendor.example/catalog.html --dest ./pricelists
  skuforge fetch https://vendor.example/list.csv --no-cache --rps 0.5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVar(&fetchDest, "dest", "./pricelists", "destination directory for downloaded documents")
	fetchCmd.Flags().DurationVar(&fetchTimeout, "timeout", 2*time.Minute, "per-download timeout")
	fetchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the download cache")
	fetchCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks")
	fetchCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	fetchCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
	fetchCmd.Flags().Float64Var(&reqPerSec, "rps", 0, "override requests per second per host")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()
	if httpProxy != "" {
		cfg.HTTP.HTTPProxy = httpProxy
	}
	if httpsProxy != "" {
		cfg.HTTP.HTTPSProxy = httpsProxy
	}
	if noRobots {
		cfg.HTTP.RespectRobots = false
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	if reqPerSec > 0 {
		cfg.RateLimit.RequestsPerSecond = reqPerSec
	}

	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
	}
	fetcher := fetch.NewFetcher(cfg, c)

	failures := 0
	for _, rawURL := range args {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		dest, err := fetcher.Download(ctx, rawURL, fetchDest)
		cancel()
		if err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", rawURL, err)
			continue
		}
		fmt.Fprintf(os.Stderr, "✓ %s → %s\n", rawURL, dest)
	}

	if failures == len(args) {
		return fmt.Errorf("all %d downloads failed", failures)
	}
	return nil
}
