package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rawCmd)
}

// rawCmd sends an arbitrary command code without verb validation, for hub
// features the higher-level verbs do not cover (FDUP, BRT, DIM, beep).
var rawCmd = &cobra.Command{
	Use:   "cmd <address> <code>",
	Short: "Send a raw command code to a node",
	Long: `Send a raw command code to a node by address.

The code is passed through to the hub unvalidated, so any REST command
code the node supports can be issued, including codes with parameters
such as DON/128.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, log, err := newController()
		if err != nil {
			return err
		}
		if err := ctrl.NodeCommand(args[0], args[1]); err != nil {
			return err
		}
		log.Info("raw command acknowledged", "address", args[0], "code", args[1])
		fmt.Printf("%s: %s ok\n", args[0], args[1])
		return nil
	},
}
