package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"iron-pulse/backend/internal/model"
	"iron-pulse/backend/internal/repository"
)

func setupTestExportService(seed *repository.SeedData) ExportService {
	repo := repository.NewRepository(seed)
	clock := fixedClock{t: testDate(2024, 7, 15)}
	return NewExportService(repo, clock, "테스트 캘린더", zap.NewNop())
}

func TestExportService_ExportLockers(t *testing.T) {
	svc := setupTestExportService(testSeed())

	buf, filename, err := svc.ExportLockers(context.Background())
	if err != nil {
		t.Fatalf("ExportLockers 失败: %v", err)
	}
	if filename != "lockers_20240715.xlsx" {
		t.Errorf("文件名期望 lockers_20240715.xlsx，实际=%s", filename)
	}
	// xlsx 为 zip 容器，前两字节固定 PK
	if buf.Len() == 0 || !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Error("导出内容不是有效的 xlsx")
	}
}

func TestExportService_ExportExpirations(t *testing.T) {
	svc := setupTestExportService(testSeed())

	buf, filename, err := svc.ExportExpirations(context.Background())
	if err != nil {
		t.Fatalf("ExportExpirations 失败: %v", err)
	}
	if filename != "locker_expirations_20240715.ics" {
		t.Errorf("文件名期望 locker_expirations_20240715.ics，实际=%s", filename)
	}

	out := buf.String()
	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "BEGIN:VEVENT") {
		t.Error("导出内容不是有效的 iCalendar")
	}
	// 仅 L006 设有截止日（L010 无截止日不应生成事件）
	if !strings.Contains(out, "asg-l006@iron-pulse") {
		t.Error("缺少 L006 的到期事件")
	}
	if strings.Contains(out, "asg-l010") {
		t.Error("无截止日的 L010 不应生成事件")
	}
	if !strings.Contains(out, "한서연") {
		t.Error("事件摘要应包含会员名")
	}
}

func TestExportService_ExportExpirations_Empty(t *testing.T) {
	// 只有空柜和无截止日柜位：没有可提醒的事件
	seed := &repository.SeedData{
		Lockers: []model.Locker{
			emptyLocker("L001", "A", 1),
			occupiedLocker("L010", "A", 10, model.LockerOccupancy{
				AssignmentID: "asg-l010",
				MemberID:     "M00004",
				MemberName:   "정수진",
				StartDate:    testDate(2024, 1, 15),
			}),
		},
	}
	svc := setupTestExportService(seed)

	if _, _, err := svc.ExportExpirations(context.Background()); !errors.Is(err, ErrExportNoExpiration) {
		t.Errorf("无到期事件期望 ErrExportNoExpiration，实际=%v", err)
	}
}
