package infrastructure_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"ecomdash/internal/dataset/domain"
	"ecomdash/internal/dataset/infrastructure"
	shareddomain "ecomdash/internal/shared/domain"
	"ecomdash/internal/testhelpers"
)

func TestCSVSource_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := testhelpers.SampleDataset(t)

	require.NoError(t, infrastructure.WriteCSVDataset(dir, want))

	got, err := infrastructure.NewCSVSource(dir).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, want.RowCounts(), got.RowCounts())

	require.Equal(t, "o1", string(got.Orders[0].ID()))
	require.Equal(t, "2023-03-04 12:00:00", got.Orders[0].DeliveredCustomerDate())
	require.Equal(t, "", got.Orders[4].DeliveredCustomerDate())
	require.InDelta(t, 100.0, got.OrderItems[0].Price(), 1e-9)

	_, ok := got.Products[2].Category()
	require.False(t, ok, "empty category is null")

	score, ok := got.Reviews[0].Score()
	require.True(t, ok)
	require.Equal(t, 5, score)
	_, ok = got.Reviews[5].Score()
	require.False(t, ok, "empty score is null")
}

func TestCSVSource_MissingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, infrastructure.WriteCSVDataset(dir, testhelpers.SampleDataset(t)))
	require.NoError(t, os.Remove(filepath.Join(dir, domain.TableCustomers.FileName())))

	ds, err := infrastructure.NewCSVSource(dir).Load(context.Background())
	require.Error(t, err)
	require.Nil(t, ds)
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestCSVSource_MissingColumn(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, infrastructure.WriteCSVDataset(dir, testhelpers.SampleDataset(t)))
	writeFile(t, dir, domain.TableProducts.FileName(), "product_id,weight\np1,12\n")

	_, err := infrastructure.NewCSVSource(dir).Load(context.Background())
	require.ErrorIs(t, err, shareddomain.ErrMalformedTable)
	require.Contains(t, err.Error(), "product_category_name")
}

func TestCSVSource_UnparsableNumber(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, infrastructure.WriteCSVDataset(dir, testhelpers.SampleDataset(t)))
	writeFile(t, dir, domain.TableOrderItems.FileName(),
		"order_id,order_item_id,product_id,price,freight_value\no1,1,p1,abc,1.0\n")

	_, err := infrastructure.NewCSVSource(dir).Load(context.Background())
	require.ErrorIs(t, err, shareddomain.ErrMalformedTable)
	require.Contains(t, err.Error(), "line 2")
}

func TestCSVSource_HeaderVariants(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, infrastructure.WriteCSVDataset(dir, testhelpers.SampleDataset(t)))
	// BOM, colonnes supplémentaires, ordre différent, note flottante
	writeFile(t, dir, domain.TableReviews.FileName(),
		"\ufeffreview_id,review_score,order_id\nr1,4.0,o1\nr2,,o2\n")

	ds, err := infrastructure.NewCSVSource(dir).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, ds.Reviews, 2)

	score, ok := ds.Reviews[0].Score()
	require.True(t, ok)
	require.Equal(t, 4, score)
}

func TestCSVSource_KeepsRowsAsStored(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, infrastructure.WriteCSVDataset(dir, testhelpers.SampleDataset(t)))
	// identifiants vides, prix négatif et horodatage d'achat absent sont chargés tels quels
	writeFile(t, dir, domain.TableOrders.FileName(),
		"order_id,customer_id,order_status,order_purchase_timestamp,order_delivered_customer_date\n"+
			",c1,canceled,,\no9,,delivered,2024-01-02 10:00:00,\n")
	writeFile(t, dir, domain.TableOrderItems.FileName(),
		"order_id,order_item_id,product_id,price,freight_value\no9,1,,-5.5,0\n")
	writeFile(t, dir, domain.TableProducts.FileName(), "product_id,product_category_name\n,toys\n")
	writeFile(t, dir, domain.TableCustomers.FileName(), "customer_id,customer_state\n,SP\n")
	writeFile(t, dir, domain.TableReviews.FileName(), "order_id,review_score\n,3\n")

	ds, err := infrastructure.NewCSVSource(dir).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, ds.Orders, 2)
	require.Equal(t, "", string(ds.Orders[0].ID()))
	require.Equal(t, "", ds.Orders[0].PurchaseTimestamp())
	require.InDelta(t, -5.5, ds.OrderItems[0].Price(), 1e-9)
	require.Equal(t, "", string(ds.Products[0].ID()))
	require.Equal(t, "", string(ds.Customers[0].ID()))
	require.Equal(t, "", string(ds.Reviews[0].OrderID()))
}

func TestCSVSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := infrastructure.NewCSVSource(t.TempDir()).Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func BenchmarkCSVSource_Load(b *testing.B) {
	dir := b.TempDir()
	if err := infrastructure.WriteCSVDataset(dir, testhelpers.SampleDataset(b)); err != nil {
		b.Fatal(err)
	}
	src := infrastructure.NewCSVSource(dir)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := src.Load(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}
