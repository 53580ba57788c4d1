package handler

import "iron-pulse/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Locker        *LockerHandler
	Member        *MemberHandler
	LockerProduct *LockerProductHandler
	Export        *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Locker:        NewLockerHandler(svc.Locker),
		Member:        NewMemberHandler(svc.Member),
		LockerProduct: NewLockerProductHandler(svc.LockerProduct),
		Export:        NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
