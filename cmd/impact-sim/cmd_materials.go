package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMaterialsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "materials",
		Short: "List known meteor materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, m := range a.materials.All() {
				fmt.Printf("%-12s %-12s %6.0f kg/m³  %s\n", m.Key, m.Name, m.DensityKgM3, m.Description)
			}
			fmt.Println("\nUnknown material names fall back to stone.")
			return nil
		},
	}
}
