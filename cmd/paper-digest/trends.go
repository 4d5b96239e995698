// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-digest/internal/keywords"
	"github.com/pdiddy/paper-digest/internal/search"
)

var trendsCmd = &cobra.Command{
	Use:   "trends [query]",
	Short: "Show keyword trends across the newest papers for a query",
	Long: `Trends counts the words of the abstracts of the newest papers for a query,
dropping stop words and generic academic vocabulary, and prints the most
frequent keywords. With --cloud it also renders a word cloud PNG. Use --from
to mine a listing saved by papers --save instead of querying arXiv.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTrends,
}

func init() {
	trendsCmd.Flags().Int("max-results", 50, "number of papers to mine")
	trendsCmd.Flags().Int("top", 20, "number of keywords to print")
	trendsCmd.Flags().String("from", "", "mine a saved listing instead of querying arXiv")
	trendsCmd.Flags().String("cloud", "", "write a word cloud PNG to this path")

	rootCmd.AddCommand(trendsCmd)
}

func runTrends(cmd *cobra.Command, args []string) error {
	a := newApp()
	from, _ := cmd.Flags().GetString("from")

	var abstracts []string
	switch {
	case from != "":
		l, err := search.ReadListing(from)
		if err != nil {
			return err
		}
		abstracts = l.Abstracts()
	case len(args) == 1:
		maxResults, _ := cmd.Flags().GetInt("max-results")
		papers, err := a.search().Recent(cmd.Context(), args[0], maxResults)
		if err != nil {
			return err
		}
		for _, p := range papers {
			abstracts = append(abstracts, p.Abstract)
		}
	default:
		return fmt.Errorf("provide a query or --from <listing.yaml>")
	}

	ranked := keywords.Extract(abstracts, a.cfg.Keywords.MinWordLength, a.cfg.Keywords.MaxWords)
	top, _ := cmd.Flags().GetInt("top")
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Keywords from %d abstracts\n", len(abstracts))
	fmt.Fprintln(w, strings.Repeat("-", 32))
	for i, kc := range ranked {
		if top > 0 && i >= top {
			break
		}
		fmt.Fprintf(w, "%3d. %-22s %d\n", i+1, kc.Word, kc.Count)
	}

	cloud, _ := cmd.Flags().GetString("cloud")
	if cloud == "" {
		return nil
	}
	png, err := keywords.NewCloudRenderer(a.cfg.WordCloud).Render(ranked)
	if err != nil {
		return fmt.Errorf("rendering word cloud: %w", err)
	}
	if err := os.WriteFile(cloud, png, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", cloud, err)
	}
	fmt.Fprintf(w, "\nWord cloud written to %s (%s)\n", cloud, humanize.Bytes(uint64(len(png))))
	return nil
}
