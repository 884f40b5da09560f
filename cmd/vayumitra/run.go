package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/manasvaidya18/vayumitra-sub000/pkg/aqi"
	"github.com/manasvaidya18/vayumitra-sub000/pkg/forecast"
	"github.com/manasvaidya18/vayumitra-sub000/pkg/health"
	"github.com/manasvaidya18/vayumitra-sub000/pkg/policy"
	"github.com/manasvaidya18/vayumitra-sub000/pkg/scenario"
	"github.com/manasvaidya18/vayumitra-sub000/pkg/validation"
	"github.com/manasvaidya18/vayumitra-sub000/pkg/zones"
)

// loadAndValidate loads the scenario and runs schema validation.
func loadAndValidate(projectPath string) (*scenario.Scenario, *validation.Report, error) {
	sc, err := scenario.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading scenario: %w", err)
	}
	schemaReport := validation.ValidateSchema(sc)
	return sc, schemaReport, nil
}

func runValidate(projectPath string) error {
	sc, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	// Run the estimator so analytical findings (unmapped stations,
	// severe-band readings) appear alongside the schema results.
	if schemaReport.Valid {
		table := zones.FromScenario(sc.Zones)
		assessment, err := health.Estimate(sc.Stations, table)
		if err != nil {
			return fmt.Errorf("health estimate: %w", err)
		}
		schemaReport.Merge(health.Findings(assessment))
	}

	printValidationReport(schemaReport)

	if !schemaReport.Valid {
		os.Exit(1)
	}
	return nil
}

func runHealth(projectPath string) error {
	sc, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("scenario has validation errors; fix before estimating health impact")
	}

	table := zones.FromScenario(sc.Zones)
	assessment, err := health.Estimate(sc.Stations, table)
	if err != nil {
		return fmt.Errorf("health estimate: %w", err)
	}

	printHealthReport(sc, assessment)

	findings := health.Findings(assessment)
	if len(findings.Warnings) > 0 {
		fmt.Println()
		printValidationReport(findings)
	}
	return nil
}

func runForecast(projectPath string) error {
	sc, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("scenario has validation errors")
	}

	summary, err := forecast.BuildSummary(sc.Forecast, sc.City.CurrentAQI, time.Now())
	if err != nil {
		return fmt.Errorf("forecast summary: %w", err)
	}

	printForecastSummary(sc, summary)
	return nil
}

func runSimulate(projectPath string, policyIDs []string) error {
	sc, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("scenario has validation errors")
	}

	selected := make([]scenario.Policy, 0, len(policyIDs))
	for _, id := range policyIDs {
		p := sc.PolicyByID(id)
		if p == nil {
			return fmt.Errorf("unknown policy id %q", id)
		}
		selected = append(selected, *p)
	}

	result, err := policy.Simulate(selected, sc.City.CurrentAQI)
	if err != nil {
		return fmt.Errorf("policy simulation: %w", err)
	}

	printSimulationResult(sc, selected, result)
	return nil
}

func runAssess(projectPath string) error {
	sc, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("scenario has validation errors")
	}

	category, err := aqi.Classify(sc.City.CurrentAQI)
	if err != nil {
		return fmt.Errorf("classifying current AQI: %w", err)
	}

	table := zones.FromScenario(sc.Zones)
	assessment, err := health.Estimate(sc.Stations, table)
	if err != nil {
		return fmt.Errorf("health estimate: %w", err)
	}
	schemaReport.Merge(health.Findings(assessment))

	var summary *forecast.Summary
	if len(sc.Forecast) > 0 {
		summary, err = forecast.BuildSummary(sc.Forecast, sc.City.CurrentAQI, time.Now())
		if err != nil {
			return fmt.Errorf("forecast summary: %w", err)
		}
	}

	output := map[string]any{
		"city":       sc.City,
		"category":   category,
		"health":     assessment,
		"forecast":   summary,
		"policies":   sc.Policies,
		"validation": schemaReport,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
