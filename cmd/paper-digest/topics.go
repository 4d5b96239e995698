package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Manage subscribed research topics",
}

var topicsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subscribed topics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		topics, err := newApp().store().Topics()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if len(topics) == 0 {
			fmt.Fprintln(w, "No topics. Add one with: paper-digest topics add <topic>")
			return nil
		}
		for _, t := range topics {
			fmt.Fprintln(w, t)
		}
		return nil
	},
}

var topicsAddCmd = &cobra.Command{
	Use:   "add <topic>",
	Short: "Subscribe to a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, err := newApp().store().AddTopic(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added topic: %s\n", topic)
		return nil
	},
}

var topicsRemoveCmd = &cobra.Command{
	Use:   "remove <topic>",
	Short: "Unsubscribe from a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.Join(args, " ")
		if err := newApp().store().RemoveTopic(topic); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed topic: %s\n", topic)
		return nil
	},
}

func init() {
	topicsCmd.AddCommand(topicsListCmd, topicsAddCmd, topicsRemoveCmd)
	rootCmd.AddCommand(topicsCmd)
}
