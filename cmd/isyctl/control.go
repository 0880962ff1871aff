package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var onLevel int

func init() {
	onCmd.Flags().IntVar(&onLevel, "level", 100, "brightness percentage (0-100)")
	rootCmd.AddCommand(onCmd)
	rootCmd.AddCommand(offCmd)
}

var onCmd = &cobra.Command{
	Use:   "on <device>",
	Short: "Turn a device or group on, by address or name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, log, err := newController()
		if err != nil {
			return err
		}
		dev, err := ctrl.GetDevice(args[0])
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("level") {
			err = dev.TurnOnLevel(onLevel)
		} else {
			err = dev.TurnOn()
		}
		if err != nil {
			return err
		}
		log.Info("device switched on", "address", dev.Address(), "name", dev.Name())
		fmt.Printf("%s: on\n", dev.Name())
		return nil
	},
}

var offCmd = &cobra.Command{
	Use:   "off <device>",
	Short: "Turn a device or group off, by address or name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, log, err := newController()
		if err != nil {
			return err
		}
		dev, err := ctrl.GetDevice(args[0])
		if err != nil {
			return err
		}
		if err := dev.TurnOff(); err != nil {
			return err
		}
		log.Info("device switched off", "address", dev.Address(), "name", dev.Name())
		fmt.Printf("%s: off\n", dev.Name())
		return nil
	},
}
