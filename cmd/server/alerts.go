package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/h4ks-com/brewlog/internal/services"
	"github.com/spf13/cobra"
)

var alertsUser string

var alertsCmd = &cobra.Command{
	Use:     "alerts",
	Short:   "Print the freshness alerts of a user",
	Example: `  brewlog alerts -u alice`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		user, err := a.users.FindByUsername(alertsUser)
		if err != nil {
			return err
		}
		alerts, err := a.freshness.Alerts(user.ID)
		if err != nil {
			return err
		}
		return printAlerts(cmd.OutOrStdout(), alerts)
	},
}

func init() {
	alertsCmd.Flags().StringVarP(&alertsUser, "user", "u", "", "Username to report on (required)")
	alertsCmd.MarkFlagRequired("user")
}

func printAlerts(w io.Writer, alerts []services.FreshnessAlert) error {
	if len(alerts) == 0 {
		_, err := fmt.Fprintln(w, "no freshness alerts")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STATUS\tBEAN\tORIGIN\tSTOCK (g)\tROASTED\tBEST BY")
	for _, alert := range alerts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.0f\t%s\t%s\n",
			alert.Status,
			alert.Name,
			alert.Origin,
			alert.TotalInventory,
			formatDay(alert.RoastDate, alert.DaysSinceRoast, "ago"),
			formatDay(alert.BestByDate, alert.DaysUntilExpiry, "left"))
	}
	return tw.Flush()
}

// formatDay renders a date with its distance from today, e.g.
// "2026-09-30 (16d ago)", or "-" when unset.
func formatDay(day *time.Time, days *int, suffix string) string {
	if day == nil {
		return "-"
	}
	out := day.Format(models.DateLayout)
	if days != nil {
		n := *days
		if n < 0 {
			n = -n
			if suffix == "left" {
				suffix = "over"
			}
		}
		out += fmt.Sprintf(" (%dd %s)", n, suffix)
	}
	return out
}
