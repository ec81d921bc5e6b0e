package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"shutterplan/pkg/guide"
	"shutterplan/pkg/model"
)

var planFlags struct {
	photoType   string
	location    string
	camera      string
	lenses      []string
	timeOfDay   string
	duration    int
	lighting    string
	weather     string
	colorMode   string
	film        bool
	filmStock   string
	filmISO     string
	constraints string
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate today's photography task",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		params, err := sessionParams()
		if err != nil {
			return err
		}

		s, err := buildStack(cfg)
		if err != nil {
			return err
		}
		defer s.close()

		task, err := s.planner(cfg).Generate(ctx, params)
		if err != nil {
			return err
		}
		if err := s.history.Append(*task); err != nil {
			return fmt.Errorf("saving task to history: %w", err)
		}
		s.logUsage()

		printTask(task)
		return nil
	},
}

func sessionParams() (*model.SessionParams, error) {
	lenses := make([]model.Lens, 0, 2)
	for _, label := range planFlags.lenses {
		lenses = append(lenses, guide.LensFor(label))
	}
	if len(lenses) == 0 {
		options := guide.LensesForCamera(planFlags.camera)
		lenses = append(lenses, options[0])
	}
	if len(lenses) > 2 {
		return nil, fmt.Errorf("at most two lenses supported, got %d", len(lenses))
	}

	filmISO := planFlags.filmISO
	if planFlags.film && filmISO == "" {
		filmISO = guide.FilmISOFromStock(planFlags.filmStock)
	}

	return &model.SessionParams{
		PhotoType:   planFlags.photoType,
		Location:    planFlags.location,
		Camera:      planFlags.camera,
		Lenses:      lenses,
		TimeOfDay:   planFlags.timeOfDay,
		DurationMin: planFlags.duration,
		Lighting:    planFlags.lighting,
		Weather:     planFlags.weather,
		ColorMode:   planFlags.colorMode,
		IsDigital:   !planFlags.film,
		FilmStock:   planFlags.filmStock,
		FilmISO:     filmISO,
		Constraints: planFlags.constraints,
	}, nil
}

func printTask(t *model.Task) {
	fmt.Printf("%s\n%s\n\n", t.Title, strings.Repeat("=", len(t.Title)))
	fmt.Printf("When/Where: %s\n", t.WhenWhere)
	fmt.Printf("Gear:       %s\n", t.Gear)
	fmt.Printf("Why this lens? %s\n", t.LensRationale)
	if t.WeatherSummary != "" {
		fmt.Printf("Weather:    %s\n", t.WeatherSummary)
	}
	if t.Sunrise != "" {
		fmt.Printf("Sun:        rise %s / set %s\n", t.Sunrise, t.Sunset)
	}
	if len(t.POINames) > 0 {
		fmt.Printf("Route:      %s (%.0f m total)\n", strings.Join(t.POINames, " -> "), t.TotalDistanceM)
	}

	fmt.Println("\nExposure starting points:")
	for _, e := range t.ExposurePresets {
		fmt.Printf("  - %s\n", e)
	}

	fmt.Println("\nChecklist:")
	for i, s := range t.Steps {
		fmt.Printf("  %2d. %s\n", i+1, s)
	}

	fmt.Println("\nComposition prompts:")
	for _, p := range t.CompositionPrompts {
		fmt.Printf("  - %s\n", p)
	}

	fmt.Println("\nSuccess criteria:")
	for _, c := range t.SuccessCriteria {
		fmt.Printf("  [ ] %s\n", c)
	}

	fmt.Printf("\nContingencies: %s\n", t.Contingencies)
	fmt.Printf("Safety: %s\n", t.SafetyNote)
}

func init() {
	f := planCmd.Flags()
	f.StringVarP(&planFlags.photoType, "type", "t", "street", "Photography type/genre")
	f.StringVarP(&planFlags.location, "location", "l", "", "Location (any free text)")
	f.StringVar(&planFlags.camera, "camera", "Ricoh GR IIIx", "Camera body")
	f.StringSliceVar(&planFlags.lenses, "lens", nil, "Lens label (repeat for a two-lens session)")
	f.StringVar(&planFlags.timeOfDay, "time", "golden hour", "Time of day (morning|midday|golden hour|blue hour|night)")
	f.IntVarP(&planFlags.duration, "duration", "d", 30, "Session duration in minutes")
	f.StringVar(&planFlags.lighting, "lighting", "daylight", "Lighting (daylight|shade|mixed|artificial)")
	f.StringVar(&planFlags.weather, "weather", "clear", "Weather bucket (clear|cloudy|overcast|rain|fog|windy)")
	f.StringVar(&planFlags.colorMode, "color", "Color", "Color mode (Color|Black & White)")
	f.BoolVar(&planFlags.film, "film", false, "Shooting film instead of digital")
	f.StringVar(&planFlags.filmStock, "film-stock", "", "Film stock name")
	f.StringVar(&planFlags.filmISO, "film-iso", "", "Film ISO (default: extracted from stock name)")
	f.StringVar(&planFlags.constraints, "constraints", "", "Constraints or preferences")
	planCmd.MarkFlagRequired("location")
	rootCmd.AddCommand(planCmd)
}
