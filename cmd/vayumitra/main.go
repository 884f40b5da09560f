package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vayumitra",
		Short: "Air-quality exposure and policy-impact analytics engine",
	}

	rootCmd.AddCommand(assessCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(healthCmd())
	rootCmd.AddCommand(forecastCmd())
	rootCmd.AddCommand(simulateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func assessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assess [project-path]",
		Short: "Run the full analytics pipeline and emit a JSON assessment",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runAssess(args[0])
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a scenario without running the full pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health [project-path]",
		Short: "Compute and display the health-impact estimate",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runHealth(args[0])
		},
	}
}

func forecastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forecast [project-path]",
		Short: "Display the normalized forecast summary and best windows",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runForecast(args[0])
		},
	}
}

func simulateCmd() *cobra.Command {
	var policies []string

	cmd := &cobra.Command{
		Use:   "simulate [project-path]",
		Short: "Project the combined effect of selected policy interventions",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSimulate(args[0], policies)
		},
	}

	cmd.Flags().StringSliceVarP(&policies, "policies", "p", nil, "comma-separated policy ids to apply")
	return cmd
}
