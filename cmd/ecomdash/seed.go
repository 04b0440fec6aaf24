package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ecomdash/internal/config"
	datasetapp "ecomdash/internal/dataset/application"
	datasetinfra "ecomdash/internal/dataset/infrastructure"
	sharedinfra "ecomdash/internal/shared/infrastructure"
)

func newSeedCmd() *cobra.Command {
	defaults := datasetapp.DefaultGeneratorOptions()

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Génère un jeu de données synthétique",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := defaults
			var err error
			if opts.Orders, err = cmd.Flags().GetInt("orders"); err != nil {
				return err
			}
			if opts.Seed, err = cmd.Flags().GetInt64("seed"); err != nil {
				return err
			}
			if opts.StartYear, err = cmd.Flags().GetInt("from-year"); err != nil {
				return err
			}
			if opts.Years, err = cmd.Flags().GetInt("years"); err != nil {
				return err
			}
			out, err := cmd.Flags().GetString("out")
			if err != nil {
				return err
			}
			toPostgres, err := cmd.Flags().GetBool("postgres")
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := cfg.NewLogger("ecomdash-seed")
			ctx := cmd.Context()

			gen, err := datasetapp.NewGenerator(opts)
			if err != nil {
				return err
			}
			ds, err := gen.Generate()
			if err != nil {
				return err
			}

			if out == "" {
				out = cfg.Data.Dir
			}
			if err := datasetinfra.WriteCSVDataset(out, ds); err != nil {
				return err
			}
			logger.Info(ctx, "dataset written", map[string]any{"dir": out, "orders": len(ds.Orders), "items": len(ds.OrderItems)})

			if toPostgres || cfg.Data.Source == config.SourcePostgres {
				db, err := sharedinfra.OpenDatabase(ctx, cfg.DB.Options())
				if err != nil {
					return fmt.Errorf("connecting to postgres: %w", err)
				}
				defer db.Close()

				if err := datasetinfra.NewPostgresWriter(db).Write(ctx, ds); err != nil {
					return err
				}
				logger.Info(ctx, "dataset loaded into postgres", map[string]any{"database": cfg.DB.Name})
			}
			return nil
		},
	}

	cmd.Flags().String("out", "", "répertoire de sortie (défaut: ECOMDASH_DATA_DIR)")
	cmd.Flags().Int("orders", defaults.Orders, "nombre de commandes")
	cmd.Flags().Int64("seed", defaults.Seed, "graine du générateur")
	cmd.Flags().Int("from-year", defaults.StartYear, "première année générée")
	cmd.Flags().Int("years", defaults.Years, "nombre d'années générées")
	cmd.Flags().Bool("postgres", false, "charge aussi le jeu de données dans PostgreSQL")
	return cmd
}
