package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var sunFlags struct {
	location string
	date     string
}

var sunCmd = &cobra.Command{
	Use:   "sun",
	Short: "Look up sunrise and sunset times for a location",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s, err := buildStack(cfg)
		if err != nil {
			return err
		}
		defer s.close()

		loc, err := s.resolver.Resolve(ctx, sunFlags.location)
		if err != nil {
			return fmt.Errorf("resolving %q: %w", sunFlags.location, err)
		}

		date := sunFlags.date
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}
		times, err := s.sun.Times(ctx, loc.Lat, loc.Lon, date)
		if err != nil {
			return fmt.Errorf("sun times for %s: %w", loc.DisplayName, err)
		}

		fmt.Printf("%s (%s) on %s\n", loc.DisplayName, loc.Source, date)
		fmt.Printf("  Sunrise: %s\n", times.Sunrise)
		fmt.Printf("  Sunset:  %s\n", times.Sunset)
		return nil
	},
}

func init() {
	sunCmd.Flags().StringVarP(&sunFlags.location, "location", "l", "", "Location (any free text)")
	sunCmd.Flags().StringVar(&sunFlags.date, "date", "", "Date (YYYY-MM-DD, default today)")
	sunCmd.MarkFlagRequired("location")
	rootCmd.AddCommand(sunCmd)
}
