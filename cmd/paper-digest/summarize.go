// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-digest/internal/llm"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <arxiv-id-or-url>",
	Short: "Summarize a paper's abstract with the configured model",
	Long: `Summarize looks the paper up on arXiv and asks the configured
OpenAI-compatible model for a structured summary of its abstract: core
problem, method, contributions, results and limitations.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().String("lang", "", "output language: zh-CN, zh-TW, en, ja, ko (default from config)")

	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	a := newApp()
	flagLang, _ := cmd.Flags().GetString("lang")
	lang := a.lang(flagLang)

	backend, err := a.llm()
	if err != nil {
		return err
	}

	paper := paperFromArg(args[0])
	paper, err = a.search().Lookup(cmd.Context(), paper.ID)
	if err != nil {
		return err
	}

	summary, err := llm.Summarize(cmd.Context(), backend, paper.Abstract, lang)
	if err != nil {
		return llmError(err, lang)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "# %s\n%s\n\n%s\n", paper.Title, paper.URL, strings.TrimSpace(summary))
	return nil
}

// localizedError shows the user-facing message for an LLM failure while
// keeping the cause for errors.Is.
type localizedError struct {
	msg string
	err error
}

func (e *localizedError) Error() string { return e.msg }
func (e *localizedError) Unwrap() error { return e.err }

func llmError(err error, lang string) error {
	return &localizedError{msg: llm.Message(err, lang), err: err}
}
