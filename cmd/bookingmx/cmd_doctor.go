package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose configuration and connectivity",
		Long:  "Run diagnostic checks against config, server liveness, and readiness",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor()
		},
	}
}

type checkResult struct {
	Name   string
	Passed bool
	Detail string
	Hint   string
}

func doctorChecks(ctx context.Context) []checkResult {
	var results []checkResult

	cfgPath, _, cfgErr := loadConfigFile()
	if cfgErr != nil {
		// A missing config file is fine when --url or BOOKINGMX_URL is used.
		results = append(results, checkResult{
			Name: "Config file", Passed: true,
			Detail: fmt.Sprintf("not found (%s), using %s", cfgPath, flagURL),
		})
	} else {
		results = append(results, checkResult{
			Name: "Config file", Passed: true,
			Detail: fmt.Sprintf("found (%s)", cfgPath),
		})
	}

	health, err := apiClient.Health(ctx)
	if err != nil {
		return append(results, checkResult{
			Name: "Server reachable", Passed: false,
			Detail: flagURL,
			Hint:   fmt.Sprintf("Is bookingmx-server running? Error: %v", err),
		})
	}

	results = append(results, checkResult{
		Name: "Server reachable", Passed: true,
		Detail: fmt.Sprintf("%s (store: %s, cities: %d)", health.Version, health.Store, health.Cities),
	})

	ready, err := apiClient.Ready(ctx)
	if err != nil {
		results = append(results, checkResult{
			Name: "Server ready", Passed: false,
			Hint: fmt.Sprintf("Check the database connection and migrations. Error: %v", err),
		})
	} else {
		results = append(results, checkResult{
			Name: "Server ready", Passed: ready.Status == "ready", Detail: ready.Status,
		})
	}

	return results
}

func runDoctor() error {
	fmt.Println("\nBookingMx Doctor")
	fmt.Println("================")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	results := doctorChecks(ctx)

	fmt.Println()
	allPassed := true
	for _, r := range results {
		mark := "✅"
		if !r.Passed {
			mark = "❌"
			allPassed = false
		}
		if r.Detail != "" {
			fmt.Printf("%s %s: %s\n", mark, r.Name, r.Detail)
		} else {
			fmt.Printf("%s %s\n", mark, r.Name)
		}
		if !r.Passed && r.Hint != "" {
			fmt.Printf("   Hint: %s\n", r.Hint)
		}
	}

	fmt.Println()
	if !allPassed {
		fmt.Println("❌ Some checks failed.")
		return fmt.Errorf("doctor found issues")
	}
	fmt.Println("✅ All checks passed!")
	return nil
}
