package infrastructure

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"ecomdash/internal/dataset/domain"
)

// WriteCSVDataset écrit les cinq tables sous root avec les noms attendus par CSVSource
func WriteCSVDataset(root string, ds *domain.Dataset) error {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return err
	}

	for _, table := range domain.Tables {
		header, rows := tableRows(ds, table)
		if err := writeCSVFile(filepath.Join(root, table.FileName()), header, rows); err != nil {
			return fmt.Errorf("writing %s: %w", table, err)
		}
	}
	return nil
}

func writeCSVFile(path string, header []string, rows [][]string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return w.Error()
}

// tableRows projette une table du Dataset en lignes texte (vide = NULL)
func tableRows(ds *domain.Dataset, table domain.Table) ([]string, [][]string) {
	switch table {
	case domain.TableOrders:
		rows := make([][]string, 0, len(ds.Orders))
		for _, o := range ds.Orders {
			rows = append(rows, []string{
				string(o.ID()), string(o.CustomerID()), string(o.Status()),
				o.PurchaseTimestamp(), o.DeliveredCustomerDate(),
			})
		}
		return orderColumns, rows
	case domain.TableOrderItems:
		rows := make([][]string, 0, len(ds.OrderItems))
		for _, it := range ds.OrderItems {
			rows = append(rows, []string{
				string(it.OrderID()), strconv.Itoa(it.ItemID()), string(it.ProductID()),
				strconv.FormatFloat(it.Price(), 'f', 2, 64),
				strconv.FormatFloat(it.FreightValue(), 'f', 2, 64),
			})
		}
		return orderItemColumns, rows
	case domain.TableProducts:
		rows := make([][]string, 0, len(ds.Products))
		for _, p := range ds.Products {
			category, _ := p.Category()
			rows = append(rows, []string{string(p.ID()), category})
		}
		return productColumns, rows
	case domain.TableCustomers:
		rows := make([][]string, 0, len(ds.Customers))
		for _, c := range ds.Customers {
			state, _ := c.State()
			rows = append(rows, []string{string(c.ID()), state})
		}
		return customerColumns, rows
	case domain.TableReviews:
		rows := make([][]string, 0, len(ds.Reviews))
		for _, r := range ds.Reviews {
			score := ""
			if s, ok := r.Score(); ok {
				score = strconv.Itoa(s)
			}
			rows = append(rows, []string{string(r.OrderID()), score})
		}
		return reviewColumns, rows
	}
	return nil, nil
}
