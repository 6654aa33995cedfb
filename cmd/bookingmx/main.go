// Command bookingmx is the command-line client for the BookingMx API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bookingmx/bookingmx/client"
)

// Build-time variables set via ldflags.
var (
	version   = "1.0.0"
	commit    = ""
	buildDate = ""
)

const defaultURL = "http://localhost:8080"

var (
	apiClient *client.Client
	flagURL   string
	flagFmt   string
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("bookingmx version %s (commit: %s, built: %s)", version, commit, buildDate)
	}
	return fmt.Sprintf("bookingmx version %s-dev", version)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bookingmx",
		Short:   "BookingMx CLI for hotel reservations and nearby destinations",
		Version: versionString(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(flagFmt); err != nil {
				return err
			}
			resolveConfig()
			apiClient = client.New(flagURL)
			return nil
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagURL, "url", defaultURL, "BookingMx server URL (env: BOOKINGMX_URL)")
	rootCmd.PersistentFlags().StringVar(&flagFmt, "format", "json", "Output format: json|table|quiet")

	initCmd := newInitCmd()
	initCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error { return nil } // skip client setup

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newReservationCmd())
	rootCmd.AddCommand(newCityCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
