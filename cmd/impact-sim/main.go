package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mr1hm/go-impact-sim/internal/atlas"
	"github.com/mr1hm/go-impact-sim/internal/config"
	"github.com/mr1hm/go-impact-sim/internal/logging"
	"github.com/mr1hm/go-impact-sim/internal/material"
)

// app bundles the read-only registries every command consumes.
type app struct {
	cfg       *config.Config
	materials *material.Registry
	cities    *atlas.SQLiteAtlas
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	materials, err := material.Load()
	if err != nil {
		logging.Fatalf("Failed to load material registry: %v", err)
	}

	cities, err := atlas.NewSQLiteAtlas(cfg.Atlas.DSN)
	if err != nil {
		logging.Fatalf("Failed to initialize city atlas: %v", err)
	}

	a := &app{cfg: cfg, materials: materials, cities: cities}

	err = newRootCmd(a).Execute()
	cities.Close()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "impact-sim",
		Short: "Meteor impact effects simulator",
		Long: "impact-sim computes the physical effects of a meteor impact\n" +
			"(mass, energy, crater, destruction zones, dust and climate effects,\n" +
			"casualty estimates) and renders them as text and an ASCII map.",
		// Running the bare binary drops straight into the interactive
		// simulation, like the original prompt-driven tool.
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSimulate(cmd.Context())
		},
		SilenceUsage: true,
	}

	root.AddCommand(
		newSimulateCmd(a),
		newBatchCmd(a),
		newCitiesCmd(a),
		newMaterialsCmd(a),
	)

	return root
}
