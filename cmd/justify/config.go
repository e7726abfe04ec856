package main

import (
	"github.com/rwx-cloud/justify/internal/cli"

	"github.com/spf13/cobra"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage stored defaults",
	}

	configGetCmd = &cobra.Command{
		Args:  cobra.ExactArgs(1),
		Short: "Print a stored default",
		Use:   "get width",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireWidthKey(args[0]); err != nil {
				return err
			}
			return service.GetWidth()
		},
	}

	configSetCmd = &cobra.Command{
		Args:  cobra.ExactArgs(2),
		Short: "Store a default",
		Use:   "set width VALUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireWidthKey(args[0]); err != nil {
				return err
			}
			return service.SetWidth(cli.SetWidthConfig{Value: args[1]})
		},
	}

	configUnsetCmd = &cobra.Command{
		Args:  cobra.ExactArgs(1),
		Short: "Remove a stored default",
		Use:   "unset width",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireWidthKey(args[0]); err != nil {
				return err
			}
			return service.UnsetWidth()
		},
	}
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
}
