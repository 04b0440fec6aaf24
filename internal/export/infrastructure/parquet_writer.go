package infrastructure

import (
	"fmt"
	"io"

	"github.com/xitongsys/parquet-go-source/writerfile"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"ecomdash/internal/export/domain"
)

// SaleParquet schéma Parquet d'une ligne de la table de faits
type SaleParquet struct {
	OrderID               string  `parquet:"name=order_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	OrderItemID           int32   `parquet:"name=order_item_id, type=INT32"`
	ProductID             string  `parquet:"name=product_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	CustomerID            string  `parquet:"name=customer_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Price                 float64 `parquet:"name=price, type=DOUBLE"`
	FreightValue          float64 `parquet:"name=freight_value, type=DOUBLE"`
	OrderStatus           string  `parquet:"name=order_status, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	PurchaseTimestamp     *int64  `parquet:"name=order_purchase_timestamp, type=INT64, convertedtype=TIMESTAMP_MILLIS, repetitiontype=OPTIONAL"`
	DeliveredCustomerDate *int64  `parquet:"name=order_delivered_customer_date, type=INT64, convertedtype=TIMESTAMP_MILLIS, repetitiontype=OPTIONAL"`
	Year                  *int32  `parquet:"name=year, type=INT32, repetitiontype=OPTIONAL"`
	Month                 *int32  `parquet:"name=month, type=INT32, repetitiontype=OPTIONAL"`
	DeliverySpeed         *int32  `parquet:"name=delivery_speed, type=INT32, repetitiontype=OPTIONAL"`
}

// NewSaleParquet convertit une ligne d'export au schéma Parquet
func NewSaleParquet(row *domain.SaleExportRow) SaleParquet {
	rec := SaleParquet{
		OrderID:      row.OrderID,
		OrderItemID:  int32(row.OrderItemID),
		ProductID:    row.ProductID,
		CustomerID:   row.CustomerID,
		Price:        row.Price,
		FreightValue: row.FreightValue,
		OrderStatus:  row.OrderStatus,
	}
	if !row.PurchaseTimestamp.IsZero() {
		ms := row.PurchaseTimestamp.UnixMilli()
		year, month := int32(row.Year), int32(row.Month)
		rec.PurchaseTimestamp, rec.Year, rec.Month = &ms, &year, &month
	}
	if row.DeliveredCustomerDate != nil {
		ms := row.DeliveredCustomerDate.UnixMilli()
		rec.DeliveredCustomerDate = &ms
	}
	if row.DeliverySpeed != nil {
		speed := int32(*row.DeliverySpeed)
		rec.DeliverySpeed = &speed
	}
	return rec
}

// WriteSalesParquet écrit les lignes au format Parquet (snappy) dans w
func WriteSalesParquet(w io.Writer, rows []*domain.SaleExportRow, parallelism int64) error {
	if parallelism <= 0 {
		parallelism = 1
	}

	pf := writerfile.NewWriterFile(w)
	pw, err := writer.NewParquetWriter(pf, new(SaleParquet), parallelism)
	if err != nil {
		return fmt.Errorf("create parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for i, row := range rows {
		if err := pw.Write(NewSaleParquet(row)); err != nil {
			return fmt.Errorf("write parquet row %d: %w", i, err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("finalize parquet: %w", err)
	}
	return pf.Close()
}
