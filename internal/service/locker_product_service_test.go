package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"iron-pulse/backend/internal/repository"
)

func TestLockerProductService_List(t *testing.T) {
	repo := repository.NewRepository(testSeed())
	svc := NewLockerProductService(repo, zap.NewNop())

	products, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("商品数期望 3，实际=%d", len(products))
	}
	// 按时长升序
	for i := 1; i < len(products); i++ {
		if products[i-1].DurationMonths > products[i].DurationMonths {
			t.Errorf("商品应按时长升序: %d 在 %d 之前", products[i-1].DurationMonths, products[i].DurationMonths)
		}
	}
}
