package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cseelye/simpleisy/entity"
)

var nodesKind string

func init() {
	nodesCmd.Flags().StringVar(&nodesKind, "kind", "", "only list entities of this kind (device, group, folder)")
	rootCmd.AddCommand(nodesCmd)
	rootCmd.AddCommand(programsCmd)
}

var nodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "List the hub's devices, groups, and folders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var kind entity.Kind
		if nodesKind != "" {
			k, err := parseKind(nodesKind)
			if err != nil {
				return err
			}
			kind = k
		}

		ctrl, _, err := newController()
		if err != nil {
			return err
		}
		nodes, err := ctrl.ListAllNodes()
		if err != nil {
			return err
		}
		if kind != "" {
			nodes = filterByKind(nodes, kind)
		}
		return printEntities(nodes, "ADDRESS\tNAME\tKIND\tSTATE")
	},
}

var programsCmd = &cobra.Command{
	Use:   "programs",
	Short: "List the hub's programs and program folders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, err := newController()
		if err != nil {
			return err
		}
		programs, err := ctrl.ListAllPrograms()
		if err != nil {
			return err
		}
		return printEntities(programs, "ID\tNAME\tKIND\tSTATE")
	},
}

// parseKind validates a kind flag value against the known entity kinds.
func parseKind(value string) (entity.Kind, error) {
	kind := entity.Kind(strings.ToLower(value))
	for _, known := range entity.AllKinds() {
		if kind == known {
			return kind, nil
		}
	}
	names := make([]string, len(entity.AllKinds()))
	for i, k := range entity.AllKinds() {
		names[i] = string(k)
	}
	return "", fmt.Errorf("unknown kind %q (valid: %s)", value, strings.Join(names, ", "))
}

func filterByKind(entities []entity.Entity, kind entity.Kind) []entity.Entity {
	filtered := make([]entity.Entity, 0, len(entities))
	for _, e := range entities {
		if e.Kind == kind {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func printEntities(entities []entity.Entity, header string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, header)
	for _, e := range entities {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Address, e.Name, e.Kind, e.State)
	}
	return w.Flush()
}
