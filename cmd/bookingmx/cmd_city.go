package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bookingmx/bookingmx/internal/cities"
)

func newCityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "city",
		Short: "Query the city graph",
	}
	cmd.AddCommand(cityListCmd())
	cmd.AddCommand(cityNeighborsCmd())
	cmd.AddCommand(cityNearbyCmd())
	cmd.AddCommand(cityValidateCmd())
	return cmd
}

func formatKm(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}

func cityListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known cities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := apiClient.Cities.List(context.Background())
			if err != nil {
				return fmt.Errorf("list cities: %w", err)
			}
			if flagFmt == "table" || flagFmt == "quiet" {
				for _, c := range catalog.Cities {
					fmt.Println(c)
				}
				return nil
			}
			return formatJSON(catalog)
		},
	}
}

func cityNeighborsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors <city>",
		Short: "List cities one road away",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := apiClient.Cities.Neighbors(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("list neighbors: %w", err)
			}
			switch flagFmt {
			case "table":
				rows := make([][]string, 0, len(list))
				for _, n := range list {
					rows = append(rows, []string{n.To, formatKm(n.Distance)})
				}
				formatTable([]string{"CITY", "KM"}, rows)
				return nil
			case "quiet":
				for _, n := range list {
					fmt.Println(n.To)
				}
				return nil
			}
			return formatJSON(list)
		},
	}
}

func cityNearbyCmd() *cobra.Command {
	var maxKm float64
	cmd := &cobra.Command{
		Use:   "nearby <destination>",
		Short: "Suggest nearby cities, closest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := apiClient.Cities.Nearby(context.Background(), args[0], maxKm)
			if err != nil {
				return fmt.Errorf("nearby cities: %w", err)
			}
			switch flagFmt {
			case "table":
				rows := make([][]string, 0, len(list))
				for _, n := range list {
					rows = append(rows, []string{n.City, formatKm(n.Distance)})
				}
				formatTable([]string{"CITY", "KM"}, rows)
				return nil
			case "quiet":
				for _, n := range list {
					fmt.Println(n.City)
				}
				return nil
			}
			return formatJSON(list)
		},
	}
	cmd.Flags().Float64Var(&maxKm, "max-km", 0, "Maximum distance in km (default: server setting)")
	return cmd
}

// cityValidateCmd checks a dataset file. It runs locally unless --remote is
// set, so datasets can be checked before a server is deployed with them.
func cityValidateCmd() *cobra.Command {
	var remote bool
	cmd := &cobra.Command{
		Use:   "validate <file.json>",
		Short: "Validate a city dataset file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read dataset: %w", err)
			}

			var v cities.Validation
			if remote {
				var body any
				if err := json.Unmarshal(data, &body); err != nil {
					return fmt.Errorf("parse dataset: %w", err)
				}
				res, err := apiClient.Cities.Validate(context.Background(), body)
				if err != nil {
					return fmt.Errorf("validate dataset: %w", err)
				}
				v = cities.Validation{OK: res.OK, Reason: res.Reason}
			} else {
				v, err = validateLocal(data)
				if err != nil {
					return err
				}
			}

			if err := output(v, strconv.FormatBool(v.OK)); err != nil {
				return err
			}
			if !v.OK {
				return fmt.Errorf("invalid dataset: %s", v.Reason)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&remote, "remote", false, "Validate on the server instead of locally")
	return cmd
}

func validateLocal(data []byte) (cities.Validation, error) {
	var raw cities.RawDataset
	if err := json.Unmarshal(data, &raw); err != nil {
		return cities.Validation{}, fmt.Errorf("parse dataset: %w", err)
	}
	return cities.ValidateGraphData(raw), nil
}
