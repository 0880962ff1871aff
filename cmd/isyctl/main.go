// Command isyctl is a command-line client for ISY994-family hubs.
//
// It discovers the hub's nodes and programs over the REST interface and
// can switch devices and trigger programs from the shell.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
)

func main() {
	Execute()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "isyctl",
	Short:         "Control an ISY994-family hub from the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagHost, "host", "", "hub host (host or host:port)")
	rootCmd.PersistentFlags().StringVar(&flagUsername, "username", "", "hub username")
	rootCmd.PersistentFlags().StringVar(&flagPassword, "password", "", "hub password")
	rootCmd.PersistentFlags().BoolVar(&flagHTTPS, "https", false, "connect over HTTPS")
	rootCmd.PersistentFlags().BoolVar(&flagInsecure, "insecure", false, "skip TLS certificate verification (requires --https)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("isyctl %s (%s)\n", version, commit)
	},
}
