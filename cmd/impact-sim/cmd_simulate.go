package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mr1hm/go-impact-sim/internal/models"
	"github.com/mr1hm/go-impact-sim/internal/physics"
	"github.com/mr1hm/go-impact-sim/internal/render"
)

func newSimulateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "simulate",
		Short: "Run an interactive impact simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSimulate(cmd.Context())
		},
	}
}

func (a *app) runSimulate(ctx context.Context) error {
	fmt.Println(render.Styles.Banner.Render("PLANET KILLER SIMULATOR\nMeteor Impact Analysis System"))
	fmt.Println()

	for {
		err := a.simulateOnce(ctx)
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println(render.Styles.Muted.Render("Simulation terminated."))
			return nil
		}
		if err != nil {
			return err
		}

		again := false
		confirm := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Run another simulation?").
				Value(&again),
		))
		if err := confirm.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		if !again {
			fmt.Println(render.Styles.Muted.Render("Thank you for using the impact simulator. Please don't try this at home."))
			return nil
		}
	}
}

func (a *app) simulateOnce(ctx context.Context) error {
	cityList, err := a.cities.List(ctx)
	if err != nil {
		return fmt.Errorf("error listing cities: %w", err)
	}

	matOpts := make([]huh.Option[string], 0, 4)
	for _, m := range a.materials.All() {
		label := fmt.Sprintf("%s - %.0f kg/m³ (%s)", m.Name, m.DensityKgM3, m.Description)
		matOpts = append(matOpts, huh.NewOption(label, m.Key))
	}

	cityOpts := make([]huh.Option[string], 0, len(cityList))
	for _, c := range cityList {
		cityOpts = append(cityOpts, huh.NewOption(fmt.Sprintf("%s (%s)", c.Name, c.Country), c.Name))
	}

	var (
		diameterStr = "500"
		velocityStr = "20000"
		angleStr    = "45"
		materialKey string
		surfaceStr  string
		cityName    string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Meteor diameter (meters)").
				Description("Chelyabinsk was ~20 m, Chicxulub ~10,000 m").
				Validate(validatePositive).
				Value(&diameterStr),
			huh.NewInput().
				Title("Impact velocity (m/s)").
				Description("Typical range: 11,000-72,000").
				Validate(validatePositive).
				Value(&velocityStr),
			huh.NewInput().
				Title("Impact angle (degrees)").
				Description("0 = grazing, 90 = vertical").
				Validate(validateAngle).
				Value(&angleStr),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Meteor material").
				Options(matOpts...).
				Value(&materialKey),
			huh.NewSelect[string]().
				Title("Target surface").
				Options(
					huh.NewOption("Land", "land"),
					huh.NewOption("Ocean", "ocean"),
					huh.NewOption("Desert", "desert"),
					huh.NewOption("Ice", "ice"),
				).
				Value(&surfaceStr),
			huh.NewSelect[string]().
				Title("Target city").
				Options(cityOpts...).
				Value(&cityName),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	// The validators already vetted these.
	diameter, _ := strconv.ParseFloat(strings.TrimSpace(diameterStr), 64)
	velocity, _ := strconv.ParseFloat(strings.TrimSpace(velocityStr), 64)
	angle, _ := strconv.ParseFloat(strings.TrimSpace(angleStr), 64)

	city, err := a.cities.Get(ctx, cityName)
	if err != nil {
		return err
	}

	profile, _ := a.materials.Profile(materialKey)

	params := models.ImpactParameters{
		DiameterM:      diameter,
		VelocityMS:     velocity,
		DensityKgM3:    profile.DensityKgM3,
		ImpactAngleDeg: angle,
		TargetSurface:  models.ParseSurface(surfaceStr),
		Latitude:       city.Latitude,
		Longitude:      city.Longitude,
	}

	result, err := physics.Calculate(params)
	if err != nil {
		return err
	}

	density := city.MetroDensity
	if density <= 0 {
		density = a.cfg.Casualty.DefaultDensity
	}
	casualties := physics.EstimateCasualties(result.Zones, result.Thermal.FireballRadiusKm, density)

	fmt.Println(render.Summary(profile.Name, result))
	fmt.Println(render.Comparisons(result))
	fmt.Println(render.CasualtyTable(casualties))
	fmt.Println(render.ImpactMap(a.cfg.Map.Width, a.cfg.Map.Height, city, result.Zones, result.Thermal.FireballRadiusKm))

	return nil
}

func validatePositive(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.New("enter a valid number")
	}
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.New("must be greater than zero")
	}
	return nil
}

func validateAngle(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.New("enter a valid number")
	}
	if math.IsNaN(v) || v < 0 || v > 90 {
		return errors.New("angle must be between 0 and 90")
	}
	return nil
}
