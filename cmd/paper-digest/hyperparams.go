// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-digest/internal/experiment"
	"github.com/pdiddy/paper-digest/internal/fetch"
)

var hyperparamsCmd = &cobra.Command{
	Use:   "hyperparams <arxiv-id-or-url>",
	Short: "Summarize a paper's experimental setup and hyperparameters",
	Long: `Hyperparams downloads the paper's PDF, extracts the text of its first pages,
locates the experiments / implementation details section (falling back to
the middle of the document), and asks the configured model for a
hyperparameter card.`,
	Args: cobra.ExactArgs(1),
	RunE: runHyperparams,
}

func init() {
	hyperparamsCmd.Flags().String("lang", "", "output language: zh-CN, zh-TW, en, ja, ko (default from config)")
	hyperparamsCmd.Flags().Bool("section", false, "print the located section instead of calling the model")

	rootCmd.AddCommand(hyperparamsCmd)
}

func runHyperparams(cmd *cobra.Command, args []string) error {
	a := newApp()
	flagLang, _ := cmd.Flags().GetString("lang")
	lang := a.lang(flagLang)
	paper := paperFromArg(args[0])
	w := cmd.OutOrStdout()

	if sectionOnly, _ := cmd.Flags().GetBool("section"); sectionOnly {
		text, err := experiment.NewTextExtractor(a.cfg.Text.Backend)
		if err != nil {
			return err
		}
		h := &experiment.Hyperparams{Fetcher: a.fetcher(), Text: text, MaxPages: a.cfg.Text.MaxPages, Logger: a.logger}
		section, err := h.Section(cmd.Context(), paper)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, section)
		return nil
	}

	h, err := a.hyperparams()
	if err != nil {
		return err
	}
	card, err := h.Extract(cmd.Context(), paper, lang)
	switch {
	case errors.Is(err, fetch.ErrNotFound):
		return fmt.Errorf("could not download the PDF for %s: %w", paper.ID, err)
	case errors.Is(err, experiment.ErrNoText):
		return fmt.Errorf("no text could be extracted from %s (scanned PDF?)", paper.ID)
	case err != nil:
		return llmError(err, lang)
	}

	fmt.Fprintf(w, "# %s\n\n%s\n", paper.ID, card)
	return nil
}
