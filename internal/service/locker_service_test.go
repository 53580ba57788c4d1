package service

import (
	"context"
	"errors"
	"testing"

	"iron-pulse/backend/internal/dto"
	"iron-pulse/backend/internal/model"
)

func validAssignReq() *dto.AssignLockerRequest {
	return &dto.AssignLockerRequest{
		MemberID:      "M00002",
		ProductID:     "LP002",
		StartDate:     "2024-02-10",
		EndDate:       "2024-08-09",
		ProductPrice:  80000,
		ActualPrice:   80000,
		PaymentDate:   "2024-02-10",
		PaymentTime:   "09:00",
		PaymentMethod: "card",
	}
}

// ────────────────────── List / Grid ──────────────────────

func TestLockerService_List(t *testing.T) {
	svc, _ := setupTestLockerService(testDate(2024, 7, 15))

	resp, err := svc.List(context.Background(), &dto.LockerListRequest{})
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}

	// 5 柜：3 空、L010 使用中（无截止日）、L006 即将到期（截止 08-09）
	want := dto.LockerCounts{Total: 5, Empty: 3, InUse: 1, ExpiringSoon: 1, Expired: 0}
	if resp.Counts != want {
		t.Errorf("计数期望 %+v，实际=%+v", want, resp.Counts)
	}
	if len(resp.List) != 5 {
		t.Fatalf("全量列表期望 5 条，实际=%d", len(resp.List))
	}

	// 排序：分区升序、柜号升序
	wantOrder := []string{"L001", "L002", "L006", "L010", "L021"}
	for i, id := range wantOrder {
		if resp.List[i].ID != id {
			t.Errorf("第 %d 条期望 %s，实际=%s", i, id, resp.List[i].ID)
		}
	}
}

func TestLockerService_List_FilterDoesNotChangeCounts(t *testing.T) {
	svc, _ := setupTestLockerService(testDate(2024, 7, 15))

	all, err := svc.List(context.Background(), &dto.LockerListRequest{})
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	filtered, err := svc.List(context.Background(), &dto.LockerListRequest{Status: "empty"})
	if err != nil {
		t.Fatalf("List(empty) 失败: %v", err)
	}

	if len(filtered.List) != 3 {
		t.Errorf("空柜筛选期望 3 条，实际=%d", len(filtered.List))
	}
	for _, l := range filtered.List {
		if l.Status != string(model.LockerStatusEmpty) {
			t.Errorf("筛选结果混入非空柜: %s(%s)", l.ID, l.Status)
		}
	}
	// 聚合计数不随筛选变化
	if filtered.Counts != all.Counts {
		t.Errorf("筛选后计数应保持 %+v，实际=%+v", all.Counts, filtered.Counts)
	}
}

func TestLockerService_List_InvalidStatus(t *testing.T) {
	svc, _ := setupTestLockerService(testDate(2024, 7, 15))

	if _, err := svc.List(context.Background(), &dto.LockerListRequest{Status: "broken"}); !errors.Is(err, ErrLockerStatusInvalid) {
		t.Errorf("非法筛选值期望 ErrLockerStatusInvalid，实际=%v", err)
	}
}

func TestLockerService_Grid(t *testing.T) {
	svc, _ := setupTestLockerService(testDate(2024, 7, 15))

	resp, err := svc.Grid(context.Background(), &dto.LockerListRequest{})
	if err != nil {
		t.Fatalf("Grid 失败: %v", err)
	}

	if len(resp.Zones) != 2 {
		t.Fatalf("分区数期望 2，实际=%d", len(resp.Zones))
	}
	if resp.Zones[0].Zone != "A" || resp.Zones[1].Zone != "B" {
		t.Errorf("分区顺序期望 A,B，实际=%s,%s", resp.Zones[0].Zone, resp.Zones[1].Zone)
	}
	if len(resp.Zones[0].Tiles) != 4 {
		t.Errorf("A 区瓦片期望 4 个，实际=%d", len(resp.Zones[0].Tiles))
	}

	// 瓦片动作互斥：空柜 assign，占用柜 detail
	for _, z := range resp.Zones {
		for _, tile := range z.Tiles {
			wantAction := "assign"
			if tile.IsOccupied {
				wantAction = "detail"
			}
			if tile.Action != wantAction {
				t.Errorf("柜位 %s 动作期望 %s，实际=%s", tile.ID, wantAction, tile.Action)
			}
			if tile.IsOccupied && tile.MemberName == "" {
				t.Errorf("占用柜 %s 瓦片缺少会员名", tile.ID)
			}
		}
	}
}

// ────────────────────── Assign ──────────────────────

func TestLockerService_Assign_Success(t *testing.T) {
	svc, repo := setupTestLockerService(testDate(2024, 2, 15))
	ctx := context.Background()

	resp, err := svc.Assign(ctx, "L002", validAssignReq())
	if err != nil {
		t.Fatalf("Assign 失败: %v", err)
	}

	if !resp.IsOccupied || resp.Occupancy == nil {
		t.Fatal("分配后柜位应为占用态")
	}
	if resp.Status != string(model.LockerStatusInUse) {
		t.Errorf("分配当月派生状态期望 in-use，实际=%s", resp.Status)
	}
	occ := resp.Occupancy
	if occ.MemberID != "M00002" || occ.MemberName != "이영희" {
		t.Errorf("会员快照不符: %s/%s", occ.MemberID, occ.MemberName)
	}
	if occ.ProductName != "락커 3개월" {
		t.Errorf("商品名期望 락커 3개월，实际=%s", occ.ProductName)
	}
	if occ.StartDate != "2024-02-10" || occ.EndDate != "2024-08-09" {
		t.Errorf("使用区间不符: %s ~ %s", occ.StartDate, occ.EndDate)
	}
	if occ.Fee != 80000 || occ.ActualPrice != 80000 {
		t.Errorf("金额不符: fee=%d actual=%d", occ.Fee, occ.ActualPrice)
	}
	if occ.AssignmentID == "" {
		t.Error("分配记录应生成 AssignmentID")
	}
	if resp.Version <= 1 {
		t.Errorf("占柜写入应提升版本号，实际=%d", resp.Version)
	}

	// 会员反向引用同步建立
	m, err := repo.Member.GetByID(ctx, "M00002")
	if err != nil {
		t.Fatalf("查询会员失败: %v", err)
	}
	if m.LockerID == nil || *m.LockerID != "L002" {
		t.Errorf("会员柜位引用期望 L002，实际=%v", m.LockerID)
	}
}

func TestLockerService_Assign_ValidationOrder(t *testing.T) {
	svc, _ := setupTestLockerService(testDate(2024, 2, 15))
	ctx := context.Background()

	// 逐项补全字段，验证首错即返的提示顺序
	tests := []struct {
		name    string
		mutate  func(r *dto.AssignLockerRequest)
		wantErr error
	}{
		{"未选会员", func(r *dto.AssignLockerRequest) { r.MemberID = "" }, ErrMemberNotSelected},
		{"未选商品", func(r *dto.AssignLockerRequest) { r.ProductID = "" }, ErrProductNotSelected},
		{"商品价格为 0", func(r *dto.AssignLockerRequest) { r.ProductPrice = 0 }, ErrProductPriceInvalid},
		{"实际金额为 0", func(r *dto.AssignLockerRequest) { r.ActualPrice = 0 }, ErrActualPriceInvalid},
		{"缺结算日期", func(r *dto.AssignLockerRequest) { r.PaymentDate = "" }, ErrPaymentDateRequired},
		{"缺结算时间", func(r *dto.AssignLockerRequest) { r.PaymentTime = "" }, ErrPaymentTimeRequired},
		{"缺开始日期", func(r *dto.AssignLockerRequest) { r.StartDate = "" }, ErrStartDateRequired},
		{"缺结束日期", func(r *dto.AssignLockerRequest) { r.EndDate = "" }, ErrEndDateRequired},
		{"日期格式错误", func(r *dto.AssignLockerRequest) { r.StartDate = "2024/02/10" }, ErrDateFormatInvalid},
		{"结束早于开始", func(r *dto.AssignLockerRequest) { r.EndDate = "2024-02-09" }, ErrDateRangeInvalid},
		{"支付方式非法", func(r *dto.AssignLockerRequest) { r.PaymentMethod = "bitcoin" }, ErrPaymentMethodInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validAssignReq()
			tt.mutate(req)
			if _, err := svc.Assign(ctx, "L002", req); !errors.Is(err, tt.wantErr) {
				t.Errorf("期望 %v，实际=%v", tt.wantErr, err)
			}
		})
	}
}

func TestLockerService_Assign_ValidationOrderOnEmptyForm(t *testing.T) {
	svc, _ := setupTestLockerService(testDate(2024, 2, 15))

	// 全空表单：多项均缺时，提示应是顺序中的第一项
	if _, err := svc.Assign(context.Background(), "L002", &dto.AssignLockerRequest{}); !errors.Is(err, ErrMemberNotSelected) {
		t.Errorf("全空表单期望 ErrMemberNotSelected，实际=%v", err)
	}
}

func TestLockerService_Assign_ActualPriceBoundary(t *testing.T) {
	svc, _ := setupTestLockerService(testDate(2024, 2, 15))
	ctx := context.Background()

	req := validAssignReq()
	req.ActualPrice = 0
	if _, err := svc.Assign(ctx, "L002", req); !errors.Is(err, ErrActualPriceInvalid) {
		t.Errorf("实际金额 0 期望拒绝，实际=%v", err)
	}

	// 折扣到 1 元仍应接受
	req = validAssignReq()
	req.ActualPrice = 1
	resp, err := svc.Assign(ctx, "L002", req)
	if err != nil {
		t.Fatalf("实际金额 1 应通过，实际=%v", err)
	}
	if resp.Occupancy.ActualPrice != 1 {
		t.Errorf("实收金额期望 1，实际=%d", resp.Occupancy.ActualPrice)
	}
}

func TestLockerService_Assign_OccupiedLocker(t *testing.T) {
	svc, _ := setupTestLockerService(testDate(2024, 2, 15))

	if _, err := svc.Assign(context.Background(), "L006", validAssignReq()); !errors.Is(err, ErrLockerOccupied) {
		t.Errorf("占用柜再分配期望 ErrLockerOccupied，实际=%v", err)
	}
}

func TestLockerService_Assign_MemberAlreadyHasLocker(t *testing.T) {
	svc, _ := setupTestLockerService(testDate(2024, 2, 15))

	req := validAssignReq()
	req.MemberID = "M00004" // 已持有 L010
	if _, err := svc.Assign(context.Background(), "L002", req); !errors.Is(err, ErrMemberHasLocker) {
		t.Errorf("持柜会员再分配期望 ErrMemberHasLocker，实际=%v", err)
	}
}

func TestLockerService_Assign_NotFound(t *testing.T) {
	svc, _ := setupTestLockerService(testDate(2024, 2, 15))
	ctx := context.Background()

	if _, err := svc.Assign(ctx, "L999", validAssignReq()); !errors.Is(err, ErrLockerNotFound) {
		t.Errorf("柜位不存在期望 ErrLockerNotFound，实际=%v", err)
	}

	req := validAssignReq()
	req.MemberID = "M99999"
	if _, err := svc.Assign(ctx, "L002", req); !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("会员不存在期望 ErrMemberNotFound，实际=%v", err)
	}

	req = validAssignReq()
	req.ProductID = "LP999"
	if _, err := svc.Assign(ctx, "L002", req); !errors.Is(err, ErrLockerProductNotFound) {
		t.Errorf("商品不存在期望 ErrLockerProductNotFound，实际=%v", err)
	}
}

// ────────────────────── Release ──────────────────────

func TestLockerService_Release_Success(t *testing.T) {
	svc, repo := setupTestLockerService(testDate(2024, 7, 15))
	ctx := context.Background()

	resp, err := svc.Release(ctx, "L006")
	if err != nil {
		t.Fatalf("Release 失败: %v", err)
	}
	if resp.IsOccupied || resp.Occupancy != nil {
		t.Error("释放后柜位应为空柜")
	}
	if resp.Status != string(model.LockerStatusEmpty) {
		t.Errorf("释放后状态期望 empty，实际=%s", resp.Status)
	}

	m, err := repo.Member.GetByID(ctx, "M00006")
	if err != nil {
		t.Fatalf("查询会员失败: %v", err)
	}
	if m.LockerID != nil {
		t.Errorf("释放后会员引用应清空，实际=%v", *m.LockerID)
	}
}

func TestLockerService_Release_AlreadyEmpty(t *testing.T) {
	svc, _ := setupTestLockerService(testDate(2024, 7, 15))

	if _, err := svc.Release(context.Background(), "L001"); !errors.Is(err, ErrLockerAlreadyEmpty) {
		t.Errorf("释放空柜期望 ErrLockerAlreadyEmpty，实际=%v", err)
	}
}

func TestLockerService_AssignReleaseRoundTrip(t *testing.T) {
	svc, repo := setupTestLockerService(testDate(2024, 2, 15))
	ctx := context.Background()

	before, err := svc.GetByID(ctx, "L002")
	if err != nil {
		t.Fatalf("查询柜位失败: %v", err)
	}

	if _, err := svc.Assign(ctx, "L002", validAssignReq()); err != nil {
		t.Fatalf("Assign 失败: %v", err)
	}
	if _, err := svc.Release(ctx, "L002"); err != nil {
		t.Fatalf("Release 失败: %v", err)
	}

	after, err := svc.GetByID(ctx, "L002")
	if err != nil {
		t.Fatalf("查询柜位失败: %v", err)
	}

	// 往返后占用侧字段与初始空柜不可区分（版本号除外）
	if after.IsOccupied || after.Occupancy != nil {
		t.Error("往返后柜位应回到空柜")
	}
	if after.Status != before.Status {
		t.Errorf("往返后状态期望 %s，实际=%s", before.Status, after.Status)
	}
	m, err := repo.Member.GetByID(ctx, "M00002")
	if err != nil {
		t.Fatalf("查询会员失败: %v", err)
	}
	if m.LockerID != nil {
		t.Error("往返后会员不应再持有柜位")
	}

	// 同一柜位可立即再次分配
	req := validAssignReq()
	req.MemberID = "M00003"
	if _, err := svc.Assign(ctx, "L002", req); err != nil {
		t.Errorf("往返后再分配应通过，实际=%v", err)
	}
}

// ────────────────────── UpdateNotes ──────────────────────

func TestLockerService_UpdateNotes(t *testing.T) {
	svc, _ := setupTestLockerService(testDate(2024, 7, 15))
	ctx := context.Background()

	resp, err := svc.UpdateNotes(ctx, "L001", &dto.UpdateLockerNotesRequest{Notes: "쇠 잠금장치 교체 필요"})
	if err != nil {
		t.Fatalf("UpdateNotes 失败: %v", err)
	}
	if resp.Notes != "쇠 잠금장치 교체 필요" {
		t.Errorf("备注未写入，实际=%q", resp.Notes)
	}

	if _, err := svc.UpdateNotes(ctx, "L999", &dto.UpdateLockerNotesRequest{Notes: "x"}); !errors.Is(err, ErrLockerNotFound) {
		t.Errorf("柜位不存在期望 ErrLockerNotFound，实际=%v", err)
	}
}
