package handler

import (
	"net/http"

	"hrms/internal/service"
	"hrms/pkg/pagination"
	"hrms/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService service.AuditService
}

func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/audit-logs", h.GetAuditLogs)
}

// GetAuditLogs lists audit entries, newest first
// @Summary      Get audit logs
// @Description  Lists employee and declaration changes, newest first
// @Tags         audit
// @Produce      json
// @Param        action     query     string  false  "Only entries with this action, e.g. SAVE_TAX_DECLARATION"
// @Param        entity_id  query     string  false  "Only entries for this entity id"
// @Param        page       query     int     false  "Page number (default 1)"
// @Param        limit      query     int     false  "Number of items per page (default 20, max 100)"
// @Success      200        {object}  response.Response{data=[]service.AuditLogResponse,meta=pagination.Meta}
// @Failure      400        {object}  response.Response
// @Failure      500        {object}  response.Response
// @Router       /api/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	var q service.AuditLogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	p := pagination.Parse(c)

	logs, total, err := h.auditService.GetAuditLogs(c.Request.Context(), q, p.Page, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, logs, p.Meta(total)))
}
