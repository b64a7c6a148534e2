package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/EduardoCSampaio/financas-app/internal/domain/transaction"
	appErrors "github.com/EduardoCSampaio/financas-app/internal/errors"

	"github.com/oklog/ulid/v2"
	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

func (f Format) IsValid() bool {
	return f == FormatCSV || f == FormatXLSX
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

func (f Format) Filename() string {
	return "transacoes." + string(f)
}

var exportHeader = []string{"Data", "Descrição", "Categoria", "Tipo", "Valor", "Pago"}

type Service struct {
	TransactionService *transaction.Service
}

func NewService(txSvc *transaction.Service) *Service {
	return &Service{TransactionService: txSvc}
}

// Export gera a planilha de transações da conta, em CSV ou XLSX.
func (s *Service) Export(ctx context.Context, userID ulid.ULID, filter transaction.Filter, format Format) ([]byte, error) {
	if !format.IsValid() {
		return nil, appErrors.NewValidationError("format", "formato deve ser csv ou xlsx")
	}

	items, err := s.TransactionService.ListAll(ctx, filter, userID)
	if err != nil {
		return nil, err
	}

	if format == FormatXLSX {
		return buildXLSX(items)
	}
	return buildCSV(items)
}

func buildCSV(items []*transaction.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	for _, t := range items {
		row := []string{
			t.Date.Format("2006-01-02"),
			t.Description,
			t.CategoryName,
			string(t.Type),
			strconv.FormatFloat(t.Value, 'f', 2, 64),
			formatPaid(t.Paid),
		}
		if err := w.Write(row); err != nil {
			return nil, appErrors.ErrInternalServer.WithError(err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return buf.Bytes(), nil
}

func buildXLSX(items []*transaction.Transaction) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Transações"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, appErrors.ErrInternalServer.WithError(err)
		}
	}

	for i, t := range items {
		row := i + 2
		values := []interface{}{
			t.Date.Format("2006-01-02"),
			t.Description,
			t.CategoryName,
			string(t.Type),
			t.Value,
			formatPaid(t.Paid),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, appErrors.ErrInternalServer.WithError(err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, appErrors.ErrInternalServer.WithError(fmt.Errorf("escrevendo xlsx: %w", err))
	}
	return buf.Bytes(), nil
}

func formatPaid(paid bool) string {
	if paid {
		return "Sim"
	}
	return "Não"
}
