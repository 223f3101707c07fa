package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/modernointeriors/modernointeriors-sub000/internal/service"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 数据导出处理器
type ExportHandler struct {
	svc *service.ExportService
}

// NewExportHandler 创建导出处理器
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// ExportClients 导出客户列表为Excel
// GET /api/exports/clients
func (h *ExportHandler) ExportClients(c *gin.Context) {
	filters := map[string]string{
		"keyword": c.Query("keyword"),
		"stage":   c.Query("stage"),
		"status":  c.Query("status"),
		"tier":    c.Query("tier"),
	}

	f, err := h.svc.ExportClients(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	fileName := fmt.Sprintf("clients_%s.xlsx", time.Now().Format("20060102_150405"))
	writeExcel(c, f, fileName)
}

// ExportClientTransactions 导出单个客户的交易明细
// GET /api/exports/clients/:id/transactions
func (h *ExportHandler) ExportClientTransactions(c *gin.Context) {
	f, err := h.svc.ExportClientTransactions(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	fileName := fmt.Sprintf("transactions_%s_%s.xlsx", c.Param("id"), time.Now().Format("20060102_150405"))
	writeExcel(c, f, fileName)
}

// writeExcel 将工作簿写入响应流
func writeExcel(c *gin.Context, f *excelize.File, fileName string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "Write workbook: "+err.Error())
	}
}
