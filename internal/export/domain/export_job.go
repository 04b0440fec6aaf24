package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	analyticsdomain "ecomdash/internal/analytics/domain"
	"ecomdash/internal/shared/domain"
)

// ExportFormat représente le format d'export
type ExportFormat string

const (
	ExportFormatCSV     ExportFormat = "CSV"
	ExportFormatParquet ExportFormat = "Parquet"
)

// ParseExportFormat convertit un format texte ("csv", "parquet"), insensible à la casse
func ParseExportFormat(value string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "csv":
		return ExportFormatCSV, nil
	case "parquet":
		return ExportFormatParquet, nil
	}
	return "", fmt.Errorf("invalid export format %q", value)
}

// Extension retourne l'extension de fichier du format
func (f ExportFormat) Extension() string {
	if f == ExportFormatParquet {
		return "parquet"
	}
	return "csv"
}

// ExportType représente le type d'export
type ExportType string

const (
	ExportTypeSales   ExportType = "sales"
	ExportTypeMetrics ExportType = "metrics"
)

// ExportJob représente un job d'export
type ExportJob struct {
	format     ExportFormat
	exportType ExportType
	window     domain.MonthWindow
	createdAt  time.Time
}

// NewExportJob crée un nouveau job d'export avec validation
func NewExportJob(
	format ExportFormat,
	exportType ExportType,
	window domain.MonthWindow,
) (*ExportJob, error) {
	if format != ExportFormatCSV && format != ExportFormatParquet {
		return nil, errors.New("invalid export format")
	}
	if exportType != ExportTypeSales && exportType != ExportTypeMetrics {
		return nil, errors.New("invalid export type")
	}
	if format == ExportFormatParquet && exportType != ExportTypeSales {
		return nil, errors.New("parquet export is only available for sales")
	}
	if err := window.Validate(); err != nil {
		return nil, err
	}

	return &ExportJob{
		format:     format,
		exportType: exportType,
		window:     window,
		createdAt:  time.Now(),
	}, nil
}

// Format retourne le format d'export
func (ej *ExportJob) Format() ExportFormat {
	return ej.format
}

// ExportType retourne le type d'export
func (ej *ExportJob) ExportType() ExportType {
	return ej.exportType
}

// Window retourne la période d'export
func (ej *ExportJob) Window() domain.MonthWindow {
	return ej.window
}

// CreatedAt retourne la date de création
func (ej *ExportJob) CreatedAt() time.Time {
	return ej.createdAt
}

// FileName nom de fichier suggéré ("sales.csv", "metrics.csv", "sales.parquet")
func (ej *ExportJob) FileName() string {
	return string(ej.exportType) + "." + ej.format.Extension()
}

// SaleExportRow représente une ligne d'export de la table de faits
type SaleExportRow struct {
	OrderID               string
	OrderItemID           int
	ProductID             string
	CustomerID            string
	Price                 float64
	FreightValue          float64
	OrderStatus           string
	PurchaseTimestamp     time.Time
	DeliveredCustomerDate *time.Time
	Year                  int
	Month                 int
	DeliverySpeed         *int
}

// NewSaleExportRow crée une ligne d'export à partir d'une ligne de faits
func NewSaleExportRow(f analyticsdomain.SalesFact) *SaleExportRow {
	return &SaleExportRow{
		OrderID:               string(f.OrderID),
		OrderItemID:           f.OrderItemID,
		ProductID:             string(f.ProductID),
		CustomerID:            string(f.CustomerID),
		Price:                 f.Price,
		FreightValue:          f.FreightValue,
		OrderStatus:           string(f.OrderStatus),
		PurchaseTimestamp:     f.PurchaseTimestamp,
		DeliveredCustomerDate: f.DeliveredCustomerDate,
		Year:                  f.Year,
		Month:                 f.Month,
		DeliverySpeed:         f.DeliverySpeed,
	}
}

const timestampLayout = "2006-01-02 15:04:05"

// ToCSVRow convertit en tableau pour CSV; les valeurs nulles sont vides
func (ser *SaleExportRow) ToCSVRow() []string {
	purchase, year, month := "", "", ""
	if !ser.PurchaseTimestamp.IsZero() {
		purchase = ser.PurchaseTimestamp.Format(timestampLayout)
		year, month = strconv.Itoa(ser.Year), strconv.Itoa(ser.Month)
	}
	delivered, speed := "", ""
	if ser.DeliveredCustomerDate != nil {
		delivered = ser.DeliveredCustomerDate.Format(timestampLayout)
	}
	if ser.DeliverySpeed != nil {
		speed = strconv.Itoa(*ser.DeliverySpeed)
	}

	return []string{
		ser.OrderID,
		strconv.Itoa(ser.OrderItemID),
		ser.ProductID,
		ser.CustomerID,
		strconv.FormatFloat(ser.Price, 'f', 2, 64),
		strconv.FormatFloat(ser.FreightValue, 'f', 2, 64),
		ser.OrderStatus,
		purchase,
		delivered,
		year,
		month,
		speed,
	}
}

// CSVHeaders retourne les en-têtes CSV
func CSVHeaders() []string {
	return []string{
		"order_id",
		"order_item_id",
		"product_id",
		"customer_id",
		"price",
		"freight_value",
		"order_status",
		"order_purchase_timestamp",
		"order_delivered_customer_date",
		"year",
		"month",
		"delivery_speed",
	}
}
