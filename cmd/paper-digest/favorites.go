// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-digest/internal/search"
	"github.com/pdiddy/paper-digest/pkg/types"
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage favorite papers grouped by category",
}

var favoritesListCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List favorites, optionally of one category",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := ""
		if len(args) == 1 {
			cat = args[0]
		}
		favs, err := newApp().store().Favorites(cat)
		if err != nil {
			return err
		}
		papers := make([]types.Paper, 0, len(favs))
		for _, f := range favs {
			papers = append(papers, f.Paper)
		}
		w := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return search.FormatJSON(papers, w)
		}
		search.FormatTable(papers, w)
		return nil
	},
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <arxiv-id-or-url> <category>",
	Short: "Save a paper under a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		paper, err := a.search().Lookup(cmd.Context(), paperFromArg(args[0]).ID)
		if err != nil {
			return err
		}
		if err := a.store().AddFavorite(paper, args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s to %s\n", paper.ID, args[1])
		return nil
	},
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove <arxiv-id> <category>",
	Short: "Remove a paper from a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := paperFromArg(args[0]).ID
		if err := newApp().store().RemoveFavorite(id, args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s\n", id, args[1])
		return nil
	},
}

var favoritesCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List favorite categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newApp().store()
		cats, err := s.Categories()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for _, c := range cats {
			favs, err := s.Favorites(c)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%-30s %d\n", c, len(favs))
		}
		return nil
	},
}

var favoritesDeleteCategoryCmd = &cobra.Command{
	Use:   "delete-category <category>",
	Short: "Delete a category and every paper in it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newApp().store().DeleteCategory(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted category %s\n", args[0])
		return nil
	},
}

var favoritesCheckCmd = &cobra.Command{
	Use:   "check <arxiv-id>",
	Short: "Report whether a paper is saved and where",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := paperFromArg(args[0]).ID
		ok, cat, err := newApp().store().IsFavorited(id)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is not in favorites\n", id)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is in %s\n", id, cat)
		return nil
	},
}

func init() {
	favoritesListCmd.Flags().Bool("json", false, "output as JSON")

	favoritesCmd.AddCommand(favoritesListCmd, favoritesAddCmd, favoritesRemoveCmd,
		favoritesCategoriesCmd, favoritesDeleteCategoryCmd, favoritesCheckCmd)
	rootCmd.AddCommand(favoritesCmd)
}
