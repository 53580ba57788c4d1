package dto

// ── 储物柜模块 DTO ──

// LockerListRequest 储物柜列表查询参数
type LockerListRequest struct {
	// Status 派生状态筛选: all | empty | in-use | expiring-soon | expired
	Status string `form:"status" binding:"omitempty,max=20"`
}

// AssignLockerRequest 分配储物柜请求。
// 字段刻意不加 required 约束：校验顺序与提示语由 Service 层
// 按运营端的交互顺序逐项给出，绑定层只负责类型与长度。
type AssignLockerRequest struct {
	MemberID        string `json:"member_id"        binding:"omitempty,max=20"`
	ProductID       string `json:"product_id"       binding:"omitempty,max=20"`
	StartDate       string `json:"start_date"       binding:"omitempty,len=10"` // YYYY-MM-DD
	EndDate         string `json:"end_date"         binding:"omitempty,len=10"` // YYYY-MM-DD
	ProductPrice    int    `json:"product_price"    binding:"omitempty,min=0"`
	ActualPrice     int    `json:"actual_price"     binding:"omitempty,min=0"`
	StaffCommission int    `json:"staff_commission" binding:"omitempty,min=0"` // 空白按 0 处理
	UnpaidAmount    int    `json:"unpaid_amount"    binding:"omitempty,min=0"` // 空白按 0 处理
	PaymentDate     string `json:"payment_date"     binding:"omitempty,len=10"`
	PaymentTime     string `json:"payment_time"     binding:"omitempty,len=5"` // HH:MM
	PaymentMethod   string `json:"payment_method"   binding:"omitempty,max=10"`
	Notes           string `json:"notes"            binding:"omitempty,max=500"`
}

// UpdateLockerNotesRequest 更新柜位备注请求
type UpdateLockerNotesRequest struct {
	Notes string `json:"notes" binding:"max=500"`
}

// LockerOccupancyResponse 占用信息响应
type LockerOccupancyResponse struct {
	AssignmentID    string `json:"assignment_id"`
	MemberID        string `json:"member_id"`
	MemberName      string `json:"member_name"`
	ProductID       string `json:"product_id"`
	ProductName     string `json:"product_name"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date,omitempty"`
	Fee             int    `json:"fee"`
	ProductPrice    int    `json:"product_price"`
	ActualPrice     int    `json:"actual_price"`
	StaffCommission int    `json:"staff_commission"`
	UnpaidAmount    int    `json:"unpaid_amount"`
	PaymentDate     string `json:"payment_date"`
	PaymentTime     string `json:"payment_time"`
	PaymentMethod   string `json:"payment_method"`
}

// LockerResponse 储物柜信息响应（status 为读取时派生值）
type LockerResponse struct {
	ID         string                   `json:"id"`
	Zone       string                   `json:"zone"`
	Number     int                      `json:"number"`
	Label      string                   `json:"label"`
	Status     string                   `json:"status"`
	IsOccupied bool                     `json:"is_occupied"`
	Occupancy  *LockerOccupancyResponse `json:"occupancy,omitempty"`
	Notes      string                   `json:"notes,omitempty"`
	Version    int                      `json:"version"`
	UpdatedAt  string                   `json:"updated_at"`
}

// LockerCounts 聚合计数（始终基于全量柜位，不受筛选影响）
type LockerCounts struct {
	Total        int `json:"total"`
	Empty        int `json:"empty"`
	InUse        int `json:"in_use"`
	ExpiringSoon int `json:"expiring_soon"`
	Expired      int `json:"expired"`
}

// LockerListResponse 储物柜列表响应
type LockerListResponse struct {
	List   []LockerResponse `json:"list"`
	Counts LockerCounts     `json:"counts"`
}

// LockerTile 网格瓦片。Action 指示点击后应打开的对话框，
// 空柜为 assign、占用柜为 detail，二者互斥。
type LockerTile struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Number     int    `json:"number"`
	Status     string `json:"status"`
	IsOccupied bool   `json:"is_occupied"`
	MemberName string `json:"member_name,omitempty"`
	EndDate    string `json:"end_date,omitempty"`
	Action     string `json:"action"` // assign | detail
}

// LockerGridZone 网格中的单个分区
type LockerGridZone struct {
	Zone  string       `json:"zone"`
	Tiles []LockerTile `json:"tiles"`
}

// LockerGridResponse 网格视图响应
type LockerGridResponse struct {
	Zones  []LockerGridZone `json:"zones"`
	Counts LockerCounts     `json:"counts"`
}

// [自证通过] internal/dto/locker.go
