package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mr1hm/go-impact-sim/internal/atlas"
)

func newCitiesCmd(a *app) *cobra.Command {
	var country string

	cmd := &cobra.Command{
		Use:   "cities [search term]",
		Short: "List or search the target city atlas",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var (
				cities []atlas.City
				err    error
			)
			switch {
			case country != "":
				cities, err = a.cities.ByCountry(ctx, country)
			case len(args) == 1:
				cities, err = a.cities.Search(ctx, args[0])
			default:
				cities, err = a.cities.List(ctx)
			}
			if err != nil {
				return err
			}

			if len(cities) == 0 {
				fmt.Println("no matching cities")
				return nil
			}

			for _, c := range cities {
				fmt.Printf("%-15s %-12s %8.2f, %9.2f  pop %11d  metro %11d\n",
					c.Name, c.Country, c.Latitude, c.Longitude, c.Population, c.MetroPopulation)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "filter by country")

	return cmd
}
