package client

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/vaughan-dsouza/bistro/internal/models"
)

func RenderMenu(w io.Writer, items []models.MenuItem) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No menu items available.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCATEGORY\tPRICE\tDESCRIPTION")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t$%s\t%s\n", it.Name, it.Category, it.Price.StringFixed(2), it.Description)
	}
	return tw.Flush()
}

func RenderReservations(w io.Writer, list []models.Reservation) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "No reservations found.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTIME\tPARTY SIZE\tBOOKING NAME")
	for _, r := range list {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", r.Date, r.Time, r.PartySize, r.CustomerName)
	}
	return tw.Flush()
}
