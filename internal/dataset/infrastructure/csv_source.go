package infrastructure

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	catalogdomain "ecomdash/internal/catalog/domain"
	customersdomain "ecomdash/internal/customers/domain"
	"ecomdash/internal/dataset/domain"
	ordersdomain "ecomdash/internal/orders/domain"
	reviewsdomain "ecomdash/internal/reviews/domain"
	shareddomain "ecomdash/internal/shared/domain"
)

// CSVSource charge le jeu de données depuis cinq fichiers CSV sous un répertoire racine
type CSVSource struct {
	root string
}

// NewCSVSource crée une source CSV
func NewCSVSource(root string) *CSVSource {
	return &CSVSource{root: root}
}

// Describe retourne une description lisible de la source
func (s *CSVSource) Describe() string {
	return "csv:" + s.root
}

// Load lit les cinq tables. Toute erreur annule le chargement complet.
func (s *CSVSource) Load(ctx context.Context) (*domain.Dataset, error) {
	ds := &domain.Dataset{}

	loaders := []struct {
		table    domain.Table
		required []string
		decode   func(*csvTable) error
	}{
		{domain.TableOrders, orderColumns, func(t *csvTable) error { ds.Orders = decodeOrders(t); return nil }},
		{domain.TableOrderItems, orderItemColumns, func(t *csvTable) (err error) { ds.OrderItems, err = decodeOrderItems(t); return }},
		{domain.TableProducts, productColumns, func(t *csvTable) error { ds.Products = decodeProducts(t); return nil }},
		{domain.TableCustomers, customerColumns, func(t *csvTable) error { ds.Customers = decodeCustomers(t); return nil }},
		{domain.TableReviews, reviewColumns, func(t *csvTable) (err error) { ds.Reviews, err = decodeReviews(t); return }},
	}

	for _, l := range loaders {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(s.root, l.table.FileName())
		table, err := readTable(path, l.required)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.table, err)
		}
		if err := l.decode(table); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.table, err)
		}
	}

	return ds, nil
}

var (
	orderColumns     = []string{"order_id", "customer_id", "order_status", "order_purchase_timestamp", "order_delivered_customer_date"}
	orderItemColumns = []string{"order_id", "order_item_id", "product_id", "price", "freight_value"}
	productColumns   = []string{"product_id", "product_category_name"}
	customerColumns  = []string{"customer_id", "customer_state"}
	reviewColumns    = []string{"order_id", "review_score"}
)

// csvTable contenu brut d'un fichier avec index des colonnes
type csvTable struct {
	path    string
	columns map[string]int
	records [][]string
}

func (t *csvTable) value(record []string, column string) string {
	return record[t.columns[column]]
}

// malformed contextualise une erreur de ligne (ligne 1 = en-tête)
func (t *csvTable) malformed(row int, format string, args ...any) error {
	return fmt.Errorf("%w: %s line %d: %s", shareddomain.ErrMalformedTable, t.path, row+2, fmt.Sprintf(format, args...))
}

func readTable(path string, required []string) (*csvTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s: missing header", shareddomain.ErrMalformedTable, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", shareddomain.ErrMalformedTable, path, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		columns[name] = i
	}
	for _, col := range required {
		if _, ok := columns[col]; !ok {
			return nil, fmt.Errorf("%w: %s: missing column %q", shareddomain.ErrMalformedTable, path, col)
		}
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", shareddomain.ErrMalformedTable, path, err)
	}

	return &csvTable{path: path, columns: columns, records: records}, nil
}

func decodeOrders(t *csvTable) []*ordersdomain.Order {
	orders := make([]*ordersdomain.Order, 0, len(t.records))
	for _, rec := range t.records {
		orders = append(orders, ordersdomain.NewOrder(
			ordersdomain.OrderID(t.value(rec, "order_id")),
			ordersdomain.CustomerID(t.value(rec, "customer_id")),
			ordersdomain.OrderStatus(t.value(rec, "order_status")),
			t.value(rec, "order_purchase_timestamp"),
			t.value(rec, "order_delivered_customer_date"),
		))
	}
	return orders
}

func decodeOrderItems(t *csvTable) ([]*ordersdomain.OrderItem, error) {
	items := make([]*ordersdomain.OrderItem, 0, len(t.records))
	for i, rec := range t.records {
		itemID, err := parseInt(t.value(rec, "order_item_id"))
		if err != nil {
			return nil, t.malformed(i, "order_item_id: %v", err)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(t.value(rec, "price")), 64)
		if err != nil {
			return nil, t.malformed(i, "price: %v", err)
		}
		freight, err := strconv.ParseFloat(strings.TrimSpace(t.value(rec, "freight_value")), 64)
		if err != nil {
			return nil, t.malformed(i, "freight_value: %v", err)
		}

		items = append(items, ordersdomain.NewOrderItem(
			ordersdomain.OrderID(t.value(rec, "order_id")),
			itemID,
			catalogdomain.ProductID(t.value(rec, "product_id")),
			price,
			freight,
		))
	}
	return items, nil
}

func decodeProducts(t *csvTable) []*catalogdomain.Product {
	products := make([]*catalogdomain.Product, 0, len(t.records))
	for _, rec := range t.records {
		products = append(products, catalogdomain.NewProduct(
			catalogdomain.ProductID(t.value(rec, "product_id")),
			strings.TrimSpace(t.value(rec, "product_category_name")),
		))
	}
	return products
}

func decodeCustomers(t *csvTable) []*customersdomain.Customer {
	customers := make([]*customersdomain.Customer, 0, len(t.records))
	for _, rec := range t.records {
		customers = append(customers, customersdomain.NewCustomer(
			ordersdomain.CustomerID(t.value(rec, "customer_id")),
			strings.TrimSpace(t.value(rec, "customer_state")),
		))
	}
	return customers
}

func decodeReviews(t *csvTable) ([]*reviewsdomain.Review, error) {
	reviews := make([]*reviewsdomain.Review, 0, len(t.records))
	for i, rec := range t.records {
		var score *int
		if raw := strings.TrimSpace(t.value(rec, "review_score")); raw != "" {
			v, err := parseInt(raw)
			if err != nil {
				return nil, t.malformed(i, "review_score: %v", err)
			}
			score = &v
		}

		reviews = append(reviews, reviewsdomain.NewReview(ordersdomain.OrderID(t.value(rec, "order_id")), score))
	}
	return reviews, nil
}

// parseInt accepte aussi les entiers écrits en flottant ("4.0")
func parseInt(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if v, err := strconv.Atoi(raw); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, fmt.Errorf("%q is not an integer", raw)
	}
	return int(f), nil
}
