package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	runThen bool
	runElse bool
)

func init() {
	runCmd.Flags().BoolVar(&runThen, "then", false, "execute the 'then' clause directly")
	runCmd.Flags().BoolVar(&runElse, "else", false, "execute the 'else' clause directly")
	runCmd.MarkFlagsMutuallyExclusive("then", "else")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run <program>",
	Short: "Run a program, by ID or name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, log, err := newController()
		if err != nil {
			return err
		}
		prog, err := ctrl.GetProgram(args[0])
		if err != nil {
			return err
		}

		switch {
		case runThen:
			err = prog.RunThen()
		case runElse:
			err = prog.RunElse()
		default:
			err = prog.Run()
		}
		if err != nil {
			return err
		}
		log.Info("program triggered", "id", prog.ID(), "name", prog.Name())
		fmt.Printf("%s: running\n", prog.Name())
		return nil
	},
}
