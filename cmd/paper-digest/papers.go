package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-digest/internal/search"
)

var papersCmd = &cobra.Command{
	Use:   "papers <query>",
	Short: "List the newest arXiv papers for a query",
	Long: `Papers queries the arXiv API for the most recently submitted papers matching
the query and prints their id, date, title, authors and any code or project
links found in the abstract. Use --save to keep the listing for trends --from.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPapers,
}

func init() {
	papersCmd.Flags().Int("max-results", 0, "number of papers to list (default from config, 5)")
	papersCmd.Flags().Bool("json", false, "output results as JSON")
	papersCmd.Flags().Bool("code-only", false, "only show papers that link to code")
	papersCmd.Flags().String("save", "", "write the listing to a YAML file")

	rootCmd.AddCommand(papersCmd)
}

func runPapers(cmd *cobra.Command, args []string) error {
	a := newApp()
	query := strings.Join(args, " ")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	papers, err := a.search().Recent(cmd.Context(), query, maxResults)
	if err != nil {
		return err
	}

	if codeOnly, _ := cmd.Flags().GetBool("code-only"); codeOnly {
		kept := papers[:0]
		for _, p := range papers {
			if p.HasCode() {
				kept = append(kept, p)
			}
		}
		papers = kept
	}

	if out, _ := cmd.Flags().GetString("save"); out != "" {
		if err := search.WriteListing(out, query, maxResults, papers); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved %d papers to %s\n", len(papers), out)
	}

	w := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return search.FormatJSON(papers, w)
	}
	search.FormatTable(papers, w)
	return nil
}
