// Package codec maps sales reports to and from delimited text. The import
// side is deliberately tolerant: unknown columns are ignored, missing ones
// fall back to defaults, and malformed rows are skipped rather than failing
// the batch.
package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/partsmetrics/dashboard/internal/domain"
	"github.com/partsmetrics/dashboard/pkg/logger"
)

// ErrNoRows is returned when an import yields zero valid rows.
var ErrNoRows = errors.New("no valid rows found in import data")

// exportHeader is the fixed export column order.
var exportHeader = []string{
	"ID", "Date", "Product", "Category", "Quantity", "Unit Price",
	"Total", "Customer", "Payment", "Status", "Order #",
}

// ImportResult carries the parsed records of one import batch, in file order.
// IDs and created/updated timestamps are left for the owning store to assign.
type ImportResult struct {
	Count   int
	Reports []domain.SalesReport
}

// ImportSalesReports parses comma-delimited text with a mandatory header
// row. Rows whose column count differs from the header are skipped silently;
// an import that produces zero rows is an error.
func ImportSalesReports(text string) (ImportResult, error) {
	log := logger.With("codec")

	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return ImportResult{}, ErrNoRows
	}

	headers := splitRow(lines[0])

	var reports []domain.SalesReport
	for i := 1; i < len(lines); i++ {
		values := splitRow(lines[i])
		if len(values) != len(headers) {
			log.Debug().Int("line", i+1).
				Int("columns", len(values)).
				Int("expected", len(headers)).
				Msg("skipping row with mismatched column count")
			continue
		}

		row := make(map[string]string, len(headers))
		for j, h := range headers {
			row[h] = values[j]
		}

		reports = append(reports, reportFromRow(row))
	}

	if len(reports) == 0 {
		return ImportResult{}, ErrNoRows
	}

	log.Info().Int("count", len(reports)).Msg("import parsed")

	return ImportResult{Count: len(reports), Reports: reports}, nil
}

// reportFromRow maps one header-keyed row to a sales report, applying the
// per-field defaults and header aliases.
func reportFromRow(row map[string]string) domain.SalesReport {
	status, ok := domain.ParseReportStatus(pick(row, "status"))
	if !ok {
		status = domain.ReportCompleted
	}

	orderNumber := pick(row, "orderNumber", "order")
	if orderNumber == "" {
		orderNumber = fmt.Sprintf("ORD-%d", time.Now().UnixMilli())
	}

	return domain.SalesReport{
		ReportDate:    parseDate(pick(row, "reportDate", "date")),
		ProductName:   withDefault(pick(row, "productName", "product"), "Unknown Product"),
		Category:      withDefault(pick(row, "category"), "Uncategorized"),
		Quantity:      parseQuantity(pick(row, "quantity")),
		UnitPrice:     parseAmount(pick(row, "unitPrice", "price")),
		TotalAmount:   parseAmount(pick(row, "totalAmount", "total")),
		CustomerName:  withDefault(pick(row, "customerName", "customer"), "Unknown Customer"),
		PaymentMethod: withDefault(pick(row, "paymentMethod", "payment"), "Cash"),
		Status:        status,
		OrderNumber:   orderNumber,
		Notes:         pick(row, "notes"),
	}
}

// ExportSalesReports serializes the collection in store order under the
// fixed header. Field values are written as-is: a value containing a comma
// will corrupt the row (known limitation of the format).
func ExportSalesReports(reports []domain.SalesReport) string {
	rows := make([]string, 0, len(reports)+1)
	rows = append(rows, strings.Join(exportHeader, ","))

	for _, r := range reports {
		rows = append(rows, strings.Join([]string{
			r.ID,
			r.ReportDate.Format("2006-01-02"),
			r.ProductName,
			r.Category,
			strconv.Itoa(r.Quantity),
			r.UnitPrice.String(),
			r.TotalAmount.String(),
			r.CustomerName,
			r.PaymentMethod,
			r.Status.String(),
			r.OrderNumber,
		}, ","))
	}

	return strings.Join(rows, "\n")
}

// ExportFilename returns the download name for an export taken at t.
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("sales-reports-%s.csv", t.Format("2006-01-02"))
}

// Template returns the import header plus one example row.
func Template() string {
	return strings.Join([]string{
		"reportDate,productName,category,quantity,unitPrice,totalAmount,customerName,paymentMethod,status,orderNumber,notes",
		"2025-10-20,Sample Product,Engine Parts,2,100,200,Sample Customer,Credit Card,Completed,ORD-SAMPLE,Sample notes",
	}, "\n")
}

func splitRow(line string) []string {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// pick returns the first non-empty value among the aliased column names.
func pick(row map[string]string, names ...string) string {
	for _, name := range names {
		if v := row[name]; v != "" {
			return v
		}
	}
	return ""
}

func withDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func parseDate(v string) time.Time {
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t
	}
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func parseQuantity(v string) int {
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return 1
}

func parseAmount(v string) decimal.Decimal {
	if d, err := decimal.NewFromString(v); err == nil {
		return d
	}
	return decimal.Zero
}
