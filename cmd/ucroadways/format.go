package main

import (
	"fmt"
	"strings"

	"github.com/Shaloh69/UCRoadWays-sub000/pkg/engine"
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/model"
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/scoring"
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/validation"
)

type buildingRow struct {
	Building      *model.Building
	Connectivity  *engine.ConnectivityResult
	Accessibility *scoring.AccessibilityResult
}

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			printIssue(e)
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			printIssue(w)
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printIssue(is validation.Issue) {
	fmt.Printf("  [%s] %s\n", is.Level, is.Message)
	if is.Path != "" {
		fmt.Printf("    -> %s = %v\n", is.Path, is.ActualValue)
	}
	if is.Expected != "" {
		fmt.Printf("    expected: %s\n", is.Expected)
	}
	for _, s := range is.Suggestions {
		fmt.Printf("    * %s\n", s)
	}
}

func printAnalysis(sys *model.RoadSystem, rows []buildingRow) {
	fmt.Printf("%s (%d buildings)\n", sys.Name, len(sys.Buildings))
	fmt.Println()
	fmt.Printf("%-20s %6s %9s %9s %7s %-10s\n",
		"Building", "Floors", "Isolated", "Connect", "Access", "Rating")
	fmt.Printf("%-20s %6s %9s %9s %7s %-10s\n",
		"--------------------", "------", "---------", "---------", "-------", "----------")

	for _, r := range rows {
		fmt.Printf("%-20s %6d %9d %9.2f %7.2f %-10s\n",
			truncate(r.Building.ID, 20),
			len(r.Building.Floors),
			len(r.Connectivity.IsolatedFloors),
			r.Connectivity.Score,
			r.Accessibility.Score,
			r.Accessibility.Rating)
	}

	for _, r := range rows {
		if len(r.Connectivity.IsolatedFloors) == 0 {
			continue
		}
		fmt.Printf("\n%s isolated floors: %s\n", r.Building.ID, strings.Join(r.Connectivity.IsolatedFloors, ", "))
	}
}

func printNetwork(a *scoring.NetworkAnalysis) {
	fmt.Println("Road Network")
	fmt.Println("============")
	fmt.Printf("  Buildings:        %d\n", a.TotalBuildings)
	fmt.Printf("  Outdoor roads:    %d (%s)\n", a.TotalRoads, formatDistance(a.TotalLengthM))
	fmt.Printf("  Connected roads:  %d (%d%%)\n", a.ConnectedRoads, a.ConnectivityPct)
	fmt.Printf("  Components:       %d\n", a.Components)
	fmt.Printf("  Intersections:    %d\n", a.TotalIntersections)
	fmt.Printf("  Landmarks:        %d\n", a.TotalLandmarks)

	if len(a.Candidates) == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("CANDIDATE CONNECTIONS (%d):\n", len(a.Candidates))
	for _, c := range a.Candidates {
		fmt.Printf("  %s <-> %s  %.1f m at %s\n", c.RoadAName, c.RoadBName, c.DistanceM, c.Point)
	}
}

func printIntersections(found []model.Intersection) {
	fmt.Printf("DETECTED INTERSECTIONS (%d):\n", len(found))
	for _, is := range found {
		fmt.Printf("  %s  %s\n", is.Name, is.Point)
	}
}

func printPath(path []model.Floor) {
	names := make([]string, len(path))
	for i, f := range path {
		names[i] = fmt.Sprintf("%s (L%d)", f.ID, f.Level)
	}
	fmt.Println(strings.Join(names, " -> "))
	fmt.Printf("%d hops\n", len(path)-1)
}

func formatDistance(m float64) string {
	if m >= 1000 {
		return fmt.Sprintf("%.2f km", m/1000)
	}
	return fmt.Sprintf("%.0f m", m)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "~"
}
