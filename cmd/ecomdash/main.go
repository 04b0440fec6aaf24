package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ecomdash",
		Short:         "Analyse des ventes e-commerce: API, rapports et exports",
		SilenceUsage:  true,
	}

	root.PersistentFlags().String("env-file", ".env", "fichier .env chargé avant l'environnement")
	root.PersistentFlags().Int("start-year", 0, "année de début de la période (0: sans borne)")
	root.PersistentFlags().Int("start-month", 0, "mois de début de la période")
	root.PersistentFlags().Int("end-year", 0, "année de fin de la période (0: sans borne)")
	root.PersistentFlags().Int("end-month", 0, "mois de fin de la période")

	root.AddCommand(
		newServeCmd(),
		newReportCmd(),
		newExportCmd(),
		newSeedCmd(),
	)
	return root
}
