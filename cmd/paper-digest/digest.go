// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/paper-digest/internal/fetch"
	"github.com/pdiddy/paper-digest/internal/llm"
	"github.com/pdiddy/paper-digest/internal/session"
	"github.com/pdiddy/paper-digest/internal/teaser"
	"github.com/pdiddy/paper-digest/pkg/types"
)

var digestCmd = &cobra.Command{
	Use:   "digest [topic...]",
	Short: "Summarize the newest papers of every subscribed topic",
	Long: `Digest lists the newest papers for each subscribed topic (or the topics
given as arguments) and prints an LLM summary of each. With --teasers it also
writes each paper's teaser figure. Papers shared by several topics are
summarized and downloaded once per run.`,
	RunE: runDigest,
}

func init() {
	digestCmd.Flags().String("lang", "", "summary language: zh-CN, zh-TW, en, ja, ko (default from config)")
	digestCmd.Flags().Int("max-results", 0, "papers per topic (default from config, 5)")
	digestCmd.Flags().String("teasers", "", "write teaser PNGs to this directory")
	digestCmd.Flags().Bool("no-summary", false, "skip LLM summaries")
	digestCmd.Flags().Int("concurrency", 4, "papers processed in parallel")

	rootCmd.AddCommand(digestCmd)
}

func runDigest(cmd *cobra.Command, args []string) error {
	a := newApp()
	flagLang, _ := cmd.Flags().GetString("lang")
	lang := a.lang(flagLang)
	maxResults, _ := cmd.Flags().GetInt("max-results")
	teaserDir, _ := cmd.Flags().GetString("teasers")
	noSummary, _ := cmd.Flags().GetBool("no-summary")
	concurrency, _ := cmd.Flags().GetInt("concurrency")

	topics := args
	if len(topics) == 0 {
		var err error
		if topics, err = a.store().Topics(); err != nil {
			return err
		}
	}
	if len(topics) == 0 {
		return fmt.Errorf("no topics: add one with paper-digest topics add <topic>")
	}

	cache := session.New(a.logger)
	d := &session.Digester{Cache: cache}
	if !noSummary {
		backend, err := a.llm()
		if err != nil {
			return err
		}
		d.Summarize = func(ctx context.Context, p types.Paper, lang string) (string, error) {
			return llm.Summarize(ctx, backend, p.Abstract, lang)
		}
	}
	if teaserDir != "" {
		if err := os.MkdirAll(teaserDir, 0o755); err != nil {
			return fmt.Errorf("creating teaser directory: %w", err)
		}
		f, h := a.fetcher(), a.harvester()
		d.Teaser = func(ctx context.Context, p types.Paper) (*types.ExtractedImage, error) {
			return h.ForPaper(ctx, f, p)
		}
	}

	client := a.search()
	w := cmd.OutOrStdout()
	for _, topic := range topics {
		papers, err := client.Recent(cmd.Context(), topic, maxResults)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", topic, err)
			continue
		}

		digests := make([]session.Digest, len(papers))
		g, ctx := errgroup.WithContext(cmd.Context())
		if concurrency > 0 {
			g.SetLimit(concurrency)
		}
		for i, p := range papers {
			i, p := i, p
			g.Go(func() error {
				digests[i] = d.Digest(ctx, p, lang)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		fmt.Fprintf(w, "## %s\n\n", topic)
		for _, dg := range digests {
			writeDigest(w, dg, lang, teaserDir)
		}
	}

	t, s, _ := cache.Len()
	a.logger.Info("digest finished", "session", cache.ID(), "summaries", s, "teasers", t)
	return nil
}

func writeDigest(w io.Writer, dg session.Digest, lang, teaserDir string) {
	p := dg.Paper
	fmt.Fprintf(w, "### %s\n%s  %s\n", p.Title, p.ID, p.PublishedDate())
	if len(p.Authors) > 0 {
		fmt.Fprintf(w, "%s\n", strings.Join(p.Authors, ", "))
	}
	for _, u := range p.CodeURLs {
		fmt.Fprintf(w, "code: %s\n", u)
	}

	switch {
	case dg.Teaser != nil:
		out := filepath.Join(teaserDir, fetch.CacheKey(p.ID)+".png")
		if err := os.WriteFile(out, dg.Teaser.Data, 0o644); err != nil {
			fmt.Fprintf(w, "teaser: %v\n", err)
		} else {
			fmt.Fprintf(w, "teaser: %s (%dx%d, page %d)\n", out, dg.Teaser.Width, dg.Teaser.Height, dg.Teaser.Page)
		}
	case errors.Is(dg.TeaserErr, teaser.ErrNotFound):
		fmt.Fprintln(w, "teaser: none")
	case dg.TeaserErr != nil:
		fmt.Fprintf(w, "teaser: %v\n", dg.TeaserErr)
	}

	switch {
	case dg.SummaryErr != nil:
		fmt.Fprintf(w, "\n%s\n", llm.Message(dg.SummaryErr, lang))
	case dg.Summary != "":
		fmt.Fprintf(w, "\n%s\n", strings.TrimSpace(dg.Summary))
	}
	fmt.Fprintln(w)
}
