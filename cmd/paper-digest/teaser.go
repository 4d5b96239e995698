// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/paper-digest/internal/fetch"
	"github.com/pdiddy/paper-digest/internal/teaser"
	"github.com/pdiddy/paper-digest/pkg/types"
)

var teaserCmd = &cobra.Command{
	Use:   "teaser <arxiv-id-or-url>...",
	Short: "Extract the teaser figure of one or more papers",
	Long: `Teaser downloads each paper's PDF (reusing the local cache), scans the first
pages for the first embedded image at least min_width x min_height pixels,
and writes it as <id>.png in the output directory. Papers without a
qualifying image are reported and skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTeaser,
}

func init() {
	teaserCmd.Flags().StringP("out", "o", ".", "output directory for PNG files")
	teaserCmd.Flags().Int("concurrency", 4, "papers processed in parallel")

	rootCmd.AddCommand(teaserCmd)
}

func runTeaser(cmd *cobra.Command, args []string) error {
	a := newApp()
	outDir, _ := cmd.Flags().GetString("out")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f := a.fetcher()
	h := a.harvester()
	w := cmd.OutOrStdout()

	var (
		mu      sync.Mutex
		written int
		missing int
	)
	g, ctx := errgroup.WithContext(cmd.Context())
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for _, arg := range args {
		paper := paperFromArg(arg)
		g.Go(func() error {
			out, size, err := harvestOne(ctx, h, f, paper, outDir)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case errors.Is(err, teaser.ErrNotFound):
				missing++
				fmt.Fprintf(w, "%-16s  no teaser image\n", paper.ID)
				return nil
			case err != nil:
				return err
			}
			written++
			fmt.Fprintf(w, "%-16s  %s (%s)\n", paper.ID, out, humanize.Bytes(uint64(size)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d written, %d without teaser\n", written, missing)
	if written == 0 {
		return fmt.Errorf("no teaser images found")
	}
	return nil
}

// harvestOne extracts the teaser of paper and writes it to outDir. It
// returns the written path and its size in bytes.
func harvestOne(ctx context.Context, h *teaser.Harvester, f *fetch.Fetcher, paper types.Paper, outDir string) (string, int, error) {
	img, err := h.ForPaper(ctx, f, paper)
	if err != nil {
		return "", 0, err
	}
	out := filepath.Join(outDir, fetch.CacheKey(paper.ID)+".png")
	if err := os.WriteFile(out, img.Data, 0o644); err != nil {
		return "", 0, fmt.Errorf("writing %s: %w", out, err)
	}
	return out, len(img.Data), nil
}
