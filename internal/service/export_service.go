package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"hostel-admin/internal/dto"
	"hostel-admin/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoRecords    = errors.New("没有可导出的费用记录")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 费用记录导出为单 Sheet 的 .xlsx，以 bytes.Buffer 返回，
// 由 Handler 层设置下载响应头后写出
type ExportService interface {
	ExportFeeRecords(ctx context.Context, req *dto.FeeRecordListRequest) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

var feeExportHeaders = []string{
	"Student", "Roll No.", "Room", "Month", "Amount", "Late Fee",
	"Due Date", "Paid Date", "Status", "Payment Method", "Transaction ID",
}

func (s *exportService) ExportFeeRecords(ctx context.Context, req *dto.FeeRecordListRequest) (*bytes.Buffer, string, error) {
	records, err := s.repo.FeeRecord.List(ctx, req.Status, req.Month)
	if err != nil {
		s.logger.Error("查询费用记录失败", zap.Error(err))
		return nil, "", err
	}
	if len(records) == 0 {
		return nil, "", ErrExportNoRecords
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Fee Records"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		s.logger.Error("创建 Sheet 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, h := range feeExportHeaders {
		c, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, c, h)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(feeExportHeaders))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle)
	f.SetColWidth(sheetName, "A", "A", 22)
	f.SetColWidth(sheetName, "B", lastCol, 14)

	var total float64
	for i := range records {
		rec := &records[i]
		row := i + 2
		values := []interface{}{
			rec.StudentName,
			rec.RollNumber,
			rec.RoomNumber,
			rec.Month,
			rec.Amount,
			rec.LateFee,
			dto.FormatDate(rec.DueDate),
			derefOr(dto.FormatDatePtr(rec.PaidDate), ""),
			rec.Status,
			derefOr(rec.PaymentMethod, ""),
			derefOr(rec.TransactionID, ""),
		}
		for col, v := range values {
			c, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheetName, c, v)
		}
		total += rec.Amount
	}

	// 合计行
	totalRow := len(records) + 2
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", totalRow), "Total")
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", totalRow), total)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, exportFilename(req), nil
}

func exportFilename(req *dto.FeeRecordListRequest) string {
	name := "fee_records"
	if req.Month != "" {
		name += "_" + strings.ReplaceAll(req.Month, " ", "_")
	}
	if req.Status != "" {
		name += "_" + req.Status
	}
	return name + ".xlsx"
}

func derefOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
