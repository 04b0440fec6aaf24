package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	analyticsapp "ecomdash/internal/analytics/application"
	analyticsdomain "ecomdash/internal/analytics/domain"
	shareddomain "ecomdash/internal/shared/domain"
)

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Affiche le tableau de bord dans le terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := windowFromFlags(cmd)
			if err != nil {
				return err
			}
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			dashboard, err := a.analytics.Dashboard(cmd.Context(), window)
			if err != nil {
				return err
			}
			metrics, err := a.analytics.KeyMetrics(cmd.Context(), window)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), dashboard, metrics)
			return nil
		},
	}
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	table.SetBorder(true)
	table.SetHeader(header)
	return table
}

func printReport(w io.Writer, d analyticsdomain.Dashboard, m analyticsdomain.KeyMetrics) {
	fmt.Fprintf(w, "Période: %d (comparée à %d)\n", d.CurrentYear, d.PreviousYear)

	kpis := newTable(w, "KPI", "Valeur", "Tendance")
	for _, k := range d.KPIs {
		kpis.Append([]string{k.Label, k.Value, k.Trend.Text})
	}
	kpis.Append([]string{"Average Delivery Time", fmt.Sprintf("%.1f days", d.Delivery.AverageDays), d.Delivery.Trend.Text})
	kpis.Append([]string{"Review Score", d.Review.Display, ""})
	kpis.Append([]string{"Unique Customers", strconv.Itoa(m.UniqueCustomers), ""})
	kpis.Render()

	categories := newTable(w, "Catégorie", "Revenu")
	for _, c := range d.TopCategories {
		categories.Append([]string{c.Category, shareddomain.USD(c.Revenue).Compact()})
	}
	categories.Render()

	states := newTable(w, "État", "Revenu")
	for _, s := range d.RevenueByState {
		states.Append([]string{s.State, shareddomain.USD(s.Revenue).Compact()})
	}
	states.Render()

	delivery := newTable(w, "Délai de livraison", "Note moyenne")
	for _, r := range d.DeliveryRatings {
		delivery.Append([]string{string(r.DeliveryTime), analyticsapp.StarRating(r.AvgReviewScore).Display})
	}
	delivery.Render()
}
