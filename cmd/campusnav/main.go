// Package main is a command-line client for the campus graph: it answers
// route queries, lists locations and snaps coordinates to the nearest
// location without running the HTTP server.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/campusnav/core/internal/locator"
	"github.com/campusnav/core/internal/models"
	"github.com/campusnav/core/internal/navigator"
	"github.com/campusnav/core/internal/parser"
	"github.com/spf13/cobra"
)

type options struct {
	campusFile string
	validation string
	asJSON     bool
	lat        float64
	lon        float64
	radius     float64
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "campusnav",
		Short:         "Shortest walking routes between campus locations",
		Long:          `Query the campus graph directly: compute shortest routes with Dijkstra's algorithm, list locations, or find the location nearest to a coordinate.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.campusFile, "campus", "c", os.Getenv("CAMPUSNAV_CAMPUS_FILE"), "Campus definition file (YAML or JSON); built-in campus when empty")
	rootCmd.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "Print results as JSON")

	routeCmd := &cobra.Command{
		Use:   "route <start> <destination>",
		Short: "Compute the shortest route between two locations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoute(cmd.OutOrStdout(), opts, models.Location(args[0]), models.Location(args[1]))
		},
	}
	routeCmd.Flags().StringVar(&opts.validation, "validation", "any", "Which names are accepted: any or declared")

	locationsCmd := &cobra.Command{
		Use:   "locations",
		Short: "List every location in the campus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocations(cmd.OutOrStdout(), opts)
		},
	}

	nearestCmd := &cobra.Command{
		Use:   "nearest",
		Short: "Find the location nearest to a coordinate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNearest(cmd.OutOrStdout(), opts)
		},
	}
	nearestCmd.Flags().Float64Var(&opts.lat, "lat", 0, "Latitude")
	nearestCmd.Flags().Float64Var(&opts.lon, "lon", 0, "Longitude")
	nearestCmd.Flags().Float64VarP(&opts.radius, "radius", "r", 0, "List every location within this many meters instead")
	_ = nearestCmd.MarkFlagRequired("lat")
	_ = nearestCmd.MarkFlagRequired("lon")

	rootCmd.AddCommand(routeCmd, locationsCmd, nearestCmd)
	return rootCmd
}

func runRoute(out io.Writer, opts *options, start, target models.Location) error {
	validation, err := navigator.ParseValidation(opts.validation)
	if err != nil {
		return err
	}

	_, g, err := parser.LoadCampus(opts.campusFile)
	if err != nil {
		return err
	}

	result, err := navigator.New(g, navigator.WithValidation(validation)).Route(start, target)
	if err != nil {
		return err
	}

	if opts.asJSON {
		return writeJSON(out, result)
	}

	if !result.Reachable() {
		fmt.Fprintf(out, "%s is unreachable from %s\n", target, start)
		return nil
	}

	stops := make([]string, len(result.Path))
	for i, loc := range result.Path {
		stops[i] = string(loc)
	}
	fmt.Fprintf(out, "%s\n", strings.Join(stops, " -> "))
	fmt.Fprintf(out, "distance: %g m\n", result.Distance)
	return nil
}

func runLocations(out io.Writer, opts *options) error {
	def, g, err := parser.LoadCampus(opts.campusFile)
	if err != nil {
		return err
	}

	if opts.asJSON {
		infos := make([]models.LocationInfo, 0, len(g.Locations()))
		for _, loc := range g.Locations() {
			info := models.LocationInfo{Name: loc, Source: g.Contains(loc)}
			if c, ok := def.Coordinates[loc]; ok {
				info.Coordinate = &c
			}
			infos = append(infos, info)
		}
		stats := g.Stats()
		return writeJSON(out, models.LocationsResponse{Campus: def.Name, Locations: infos, Stats: &stats})
	}

	if def.Name != "" {
		fmt.Fprintf(out, "%s\n", def.Name)
	}
	for _, loc := range g.Locations() {
		marker := ""
		if !g.Contains(loc) {
			marker = " (destination only)"
		}
		fmt.Fprintf(out, "  %s%s\n", loc, marker)
	}
	return nil
}

func runNearest(out io.Writer, opts *options) error {
	def, _, err := parser.LoadCampus(opts.campusFile)
	if err != nil {
		return err
	}

	loc, err := locator.New(def.Coordinates)
	if err != nil {
		return err
	}

	query := models.Coordinate{Lat: opts.lat, Lon: opts.lon}

	if opts.radius > 0 {
		matches, err := loc.Within(query, opts.radius)
		if err != nil {
			return err
		}
		if opts.asJSON {
			return writeJSON(out, matches)
		}
		for _, m := range matches {
			fmt.Fprintf(out, "%s\t%.1f m\n", m.Location, m.Meters)
		}
		return nil
	}

	match, err := loc.Nearest(query)
	if err != nil {
		return err
	}

	if opts.asJSON {
		return writeJSON(out, models.NearestResponse{Location: match.Location, Query: query, Meters: match.Meters})
	}
	fmt.Fprintf(out, "%s\t%.1f m\n", match.Location, match.Meters)
	return nil
}

func writeJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
