package service

import (
	"context"
	"fmt"

	"github.com/modernointeriors/modernointeriors-sub000/internal/repository"
	"github.com/xuri/excelize/v2"
)

// ExportService 后台XLSX导出服务
type ExportService struct {
	repos *repository.Repositories
}

// NewExportService 创建导出服务
func NewExportService(repos *repository.Repositories) *ExportService {
	return &ExportService{repos: repos}
}

var clientExportHeaders = []string{
	"First Name", "Last Name", "Email", "Phone", "Company",
	"Stage", "Status", "Tier",
	"Total Spending", "Refund Amount", "Commission", "Order Count",
	"Referral Revenue", "Referral Count",
	"Warranty Status", "Warranty Expiry",
}

var transactionExportHeaders = []string{
	"Title", "Type", "Status", "Amount", "Payment Date", "Description", "Notes",
}

// headerStyle 表头样式：加粗带底色
func headerStyle(f *excelize.File) int {
	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	return style
}

// ExportClients 导出客户清单，含财务汇总列
func (s *ExportService) ExportClients(ctx context.Context, filters map[string]string) (*excelize.File, error) {
	clients, _, err := s.repos.Client.List(ctx, 1, 10000, filters)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	f := excelize.NewFile()
	sheet := "Clients"
	f.SetSheetName("Sheet1", sheet)

	style := headerStyle(f)
	for i, h := range clientExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, style)
	}

	for rowIdx, c := range clients {
		row := rowIdx + 2
		expiry := ""
		if c.WarrantyExpiry != nil && !c.WarrantyExpiry.IsZero() {
			expiry = c.WarrantyExpiry.Format("2006-01-02")
		}
		values := []interface{}{
			c.FirstName, c.LastName, c.Email, c.Phone, c.Company,
			c.Stage, c.Status, c.Tier,
			c.TotalSpending.String(), c.RefundAmount.String(), c.Commission.String(), c.OrderCount,
			c.ReferralRevenue.String(), c.ReferralCount,
			c.WarrantyStatus, expiry,
		}
		for i, v := range values {
			col, _ := excelize.ColumnNumberToName(i + 1)
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), v)
		}
	}

	return f, nil
}

// ExportClientTransactions 导出某客户流水历史
func (s *ExportService) ExportClientTransactions(ctx context.Context, clientID string) (*excelize.File, error) {
	if _, err := s.repos.Client.FindByID(ctx, clientID); err != nil {
		return nil, err
	}

	txs, err := s.repos.Transaction.ListByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	f := excelize.NewFile()
	sheet := "Transactions"
	f.SetSheetName("Sheet1", sheet)

	style := headerStyle(f)
	for i, h := range transactionExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, style)
	}

	for rowIdx, t := range txs {
		row := rowIdx + 2
		values := []interface{}{
			t.Title, t.Type, t.Status, t.Amount.String(),
			t.PaymentDate.Format("2006-01-02"), t.Description, t.Notes,
		}
		for i, v := range values {
			col, _ := excelize.ColumnNumberToName(i + 1)
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), v)
		}
	}

	return f, nil
}
