package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	exportdomain "ecomdash/internal/export/domain"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exporte la table de faits ou le rapport de métriques",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatFlag, err := cmd.Flags().GetString("format")
			if err != nil {
				return err
			}
			typeFlag, err := cmd.Flags().GetString("type")
			if err != nil {
				return err
			}
			out, err := cmd.Flags().GetString("out")
			if err != nil {
				return err
			}

			format, err := exportdomain.ParseExportFormat(formatFlag)
			if err != nil {
				return err
			}
			exportType := exportdomain.ExportType(typeFlag)
			if exportType != exportdomain.ExportTypeSales && exportType != exportdomain.ExportTypeMetrics {
				return fmt.Errorf("invalid export type %q", typeFlag)
			}
			window, err := windowFromFlags(cmd)
			if err != nil {
				return err
			}
			job, err := exportdomain.NewExportJob(format, exportType, window)
			if err != nil {
				return err
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			data, err := a.export.Run(cmd.Context(), job)
			if err != nil {
				return err
			}
			if out == "" {
				out = job.FileName()
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d octets)\n", out, len(data))
			return nil
		},
	}

	cmd.Flags().String("format", "csv", "format d'export (csv, parquet)")
	cmd.Flags().String("type", string(exportdomain.ExportTypeSales), "type d'export (sales, metrics)")
	cmd.Flags().String("out", "", "fichier de sortie (défaut: nom généré)")
	return cmd
}
