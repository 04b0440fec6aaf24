package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute(), out.String())
	return out.String()
}

func TestSeedReportExport(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "missing.env")
	t.Setenv("ECOMDASH_SOURCE", "csv")
	t.Setenv("ECOMDASH_DATA_DIR", dir)
	t.Setenv("ECOMDASH_LOG_LEVEL", "error")

	runCLI(t, "seed", "--env-file", envFile, "--orders", "300", "--seed", "7")
	for _, name := range []string{"orders_dataset.csv", "order_items_dataset.csv", "products_dataset.csv", "customers_dataset.csv", "order_reviews_dataset.csv"} {
		require.FileExists(t, filepath.Join(dir, name))
	}

	report := runCLI(t, "report", "--env-file", envFile)
	require.Contains(t, report, "Total Revenue")
	require.Contains(t, report, "Average Delivery Time")

	out := filepath.Join(dir, "sales.parquet")
	runCLI(t, "export", "--env-file", envFile, "--format", "parquet", "--out", out)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "PAR1", string(data[:4]))
}

func TestExportRejectsParquetMetrics(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"export", "--env-file", filepath.Join(t.TempDir(), "missing.env"), "--format", "parquet", "--type", "metrics"})
	require.Error(t, root.Execute())
}
