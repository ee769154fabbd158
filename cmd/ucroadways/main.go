package main

import (
	"os"

	"github.com/Shaloh69/UCRoadWays-sub000/internal/logger"
	"github.com/Shaloh69/UCRoadWays-sub000/internal/server"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()
	logger.Setup()

	rootCmd := &cobra.Command{
		Use:   "ucroadways",
		Short: "Campus navigation graph analysis",
	}

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(networkCmd())
	rootCmd.AddCommand(pathCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func analyzeCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze [project-path]",
		Short: "Report floor connectivity and accessibility for every building",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runAnalyze(args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a table")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path] [building-id...]",
		Short: "Validate building structure and floor connectivity",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0], args[1:])
		},
	}
}

func networkCmd() *cobra.Command {
	var detect bool

	cmd := &cobra.Command{
		Use:   "network [project-path]",
		Short: "Analyze the outdoor road network",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runNetwork(args[0], detect)
		},
	}

	cmd.Flags().BoolVar(&detect, "detect-intersections", false, "also list proposed intersections")
	return cmd
}

func pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path [project-path] [building-id] [from-floor] [to-floor]",
		Short: "Print the fewest-hop floor route inside a building",
		Args:  cobra.ExactArgs(4),
		RunE: func(_ *cobra.Command, args []string) error {
			return runPath(args[0], args[1], args[2], args[3])
		},
	}
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Serve the analysis API for a project snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			eng, err := newEngine(args[0])
			if err != nil {
				return err
			}
			srv := server.New(args[0], port, eng)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
