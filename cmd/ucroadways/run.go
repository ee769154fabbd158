package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Shaloh69/UCRoadWays-sub000/internal/logger"
	"github.com/Shaloh69/UCRoadWays-sub000/internal/metrics"
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/engine"
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/model"
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/snapshot"
)

// newEngine builds an engine from the project's engine.yaml, if any.
func newEngine(projectPath string) (*engine.Engine, error) {
	cfg, err := snapshot.LoadProjectConfig(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return engine.New(
		engine.WithConfig(cfg),
		engine.WithLogger(logger.L()),
		engine.WithRecorder(metrics.Recorder{}),
	), nil
}

// load reads the project snapshot and builds its engine.
func load(projectPath string) (*model.RoadSystem, *engine.Engine, error) {
	sys, err := snapshot.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading snapshot: %w", err)
	}
	eng, err := newEngine(projectPath)
	if err != nil {
		return nil, nil, err
	}
	return sys, eng, nil
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runAnalyze(projectPath string, asJSON bool) error {
	sys, eng, err := load(projectPath)
	if err != nil {
		return err
	}

	rows := make([]buildingRow, 0, len(sys.Buildings))
	for i := range sys.Buildings {
		b := &sys.Buildings[i]
		rows = append(rows, buildingRow{
			Building:      b,
			Connectivity:  eng.ComputeConnectivity(b),
			Accessibility: eng.ComputeAccessibility(b),
		})
	}

	if asJSON {
		out := make([]map[string]any, 0, len(rows))
		for _, r := range rows {
			out = append(out, map[string]any{
				"building":      r.Building.ID,
				"connectivity":  r.Connectivity,
				"accessibility": r.Accessibility,
			})
		}
		return writeJSON(out)
	}
	printAnalysis(sys, rows)
	return nil
}

func runValidate(projectPath string, buildingIDs []string) error {
	sys, eng, err := load(projectPath)
	if err != nil {
		return err
	}

	targets := make([]*model.Building, 0, len(sys.Buildings))
	if len(buildingIDs) == 0 {
		for i := range sys.Buildings {
			targets = append(targets, &sys.Buildings[i])
		}
	}
	for _, id := range buildingIDs {
		b, err := eng.Building(sys, id)
		if err != nil {
			return err
		}
		targets = append(targets, b)
	}

	valid := true
	for _, b := range targets {
		r := eng.ValidationReport(b)
		fmt.Printf("== %s (%s)\n", b.ID, b.Name)
		printValidationReport(r)
		fmt.Println()
		valid = valid && r.Valid
	}

	if !valid {
		os.Exit(1)
	}
	return nil
}

func runNetwork(projectPath string, detect bool) error {
	sys, eng, err := load(projectPath)
	if err != nil {
		return err
	}

	printNetwork(eng.AnalyzeRoadNetwork(sys))
	if detect {
		fmt.Println()
		printIntersections(eng.DetectRoadIntersections(sys))
	}
	return nil
}

func runPath(projectPath, buildingID, from, to string) error {
	sys, eng, err := load(projectPath)
	if err != nil {
		return err
	}
	b, err := eng.Building(sys, buildingID)
	if err != nil {
		return err
	}

	path, err := eng.ShortestPath(b, from, to)
	if err != nil {
		return err
	}
	if len(path) == 0 {
		return fmt.Errorf("floor %s is not reachable from %s", to, from)
	}
	printPath(path)
	return nil
}
