package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bookingmx/bookingmx/client"
)

func newReservationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reservation",
		Aliases: []string{"res"},
		Short:   "Manage reservations",
	}
	cmd.AddCommand(reservationListCmd())
	cmd.AddCommand(reservationGetCmd())
	cmd.AddCommand(reservationCreateCmd())
	cmd.AddCommand(reservationUpdateCmd())
	cmd.AddCommand(reservationCancelCmd())
	cmd.AddCommand(reservationDeleteCmd())
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid reservation id %q", s)
	}
	return id, nil
}

func reservationRows(list []client.Reservation) [][]string {
	rows := make([][]string, 0, len(list))
	for _, r := range list {
		rows = append(rows, []string{
			strconv.FormatInt(r.ID, 10), r.GuestName, r.HotelName, r.CheckIn, r.CheckOut, r.Status,
		})
	}
	return rows
}

var reservationHeaders = []string{"ID", "GUEST", "HOTEL", "CHECK-IN", "CHECK-OUT", "STATUS"}

func printReservation(r *client.Reservation) error {
	if flagFmt == "table" {
		formatTable(reservationHeaders, reservationRows([]client.Reservation{*r}))
		return nil
	}
	return output(r, strconv.FormatInt(r.ID, 10))
}

func reservationListCmd() *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reservations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := apiClient.Reservations.List(context.Background())
			if err != nil {
				return fmt.Errorf("list reservations: %w", err)
			}
			if status != "" {
				filtered := list[:0]
				for _, r := range list {
					if r.Status == status {
						filtered = append(filtered, r)
					}
				}
				list = filtered
			}
			switch flagFmt {
			case "table":
				formatTable(reservationHeaders, reservationRows(list))
				return nil
			case "quiet":
				for _, r := range list {
					fmt.Println(r.ID)
				}
				return nil
			}
			return formatJSON(list)
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (ACTIVE or CANCELED)")
	return cmd
}

func reservationGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a reservation by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			r, err := apiClient.Reservations.Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("get reservation: %w", err)
			}
			return printReservation(r)
		},
	}
}

// reservationFlags binds the request fields shared by create and update.
func reservationFlags(cmd *cobra.Command, req *client.ReservationRequest) {
	cmd.Flags().StringVar(&req.GuestName, "guest", "", "Guest name")
	cmd.Flags().StringVar(&req.HotelName, "hotel", "", "Hotel name")
	cmd.Flags().StringVar(&req.CheckIn, "check-in", "", "Check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.CheckOut, "check-out", "", "Check-out date (YYYY-MM-DD)")
	for _, f := range []string{"guest", "hotel", "check-in", "check-out"} {
		_ = cmd.MarkFlagRequired(f)
	}
}

func reservationCreateCmd() *cobra.Command {
	var req client.ReservationRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Book a reservation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := apiClient.Reservations.Create(context.Background(), &req)
			if err != nil {
				return fmt.Errorf("create reservation: %w", err)
			}
			return printReservation(r)
		},
	}
	reservationFlags(cmd, &req)
	return cmd
}

func reservationUpdateCmd() *cobra.Command {
	var req client.ReservationRequest
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace the guest, hotel and dates of an active reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			r, err := apiClient.Reservations.Update(context.Background(), id, &req)
			if err != nil {
				return fmt.Errorf("update reservation: %w", err)
			}
			return printReservation(r)
		},
	}
	reservationFlags(cmd, &req)
	return cmd
}

func reservationCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			r, err := apiClient.Reservations.Cancel(context.Background(), id)
			if err != nil {
				return fmt.Errorf("cancel reservation: %w", err)
			}
			return printReservation(r)
		},
	}
}

func reservationDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a reservation permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := apiClient.Reservations.Delete(context.Background(), id); err != nil {
				return fmt.Errorf("delete reservation: %w", err)
			}
			fmt.Println("deleted")
			return nil
		},
	}
}
