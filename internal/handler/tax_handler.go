package handler

import (
	"net/http"

	"hrms/internal/middleware"
	"hrms/internal/service"
	"hrms/pkg/response"
	"hrms/pkg/taxcalc"

	"github.com/gin-gonic/gin"
)

type TaxHandler struct {
	taxService service.TaxService
}

func NewTaxHandler(taxService service.TaxService) *TaxHandler {
	return &TaxHandler{taxService: taxService}
}

func (h *TaxHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/api/tax/compute", h.Compute)

	decls := router.Group("/api/employees/:id/declarations")
	{
		decls.GET("", h.ListDeclarations)
		decls.PUT("/:fy", h.SaveDeclaration)
		decls.GET("/:fy", h.GetDeclaration)
		decls.GET("/:fy/tax", h.GetTaxSummary)
	}
}

// Compute handles POST /api/tax/compute
// @Summary      What-if tax comparison
// @Description  Computes the Old and New regime liability for a declaration without saving anything
// @Tags         tax
// @Accept       json
// @Produce      json
// @Param        payload  body      service.ComputeTaxRequest  true  "Base salary and declaration"
// @Success      200      {object}  response.Response{data=service.TaxComparisonResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/tax/compute [post]
func (h *TaxHandler) Compute(c *gin.Context) {
	var req service.ComputeTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cmp, err := h.taxService.Compute(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, cmp))
}

// SaveDeclaration handles PUT /api/employees/:id/declarations/:fy
// @Summary      Save a declaration
// @Description  Creates or replaces the employee's declaration for a financial year
// @Tags         tax
// @Accept       json
// @Produce      json
// @Param        id       path      string               true   "Employee ID"
// @Param        fy       path      string               true   "Financial year, e.g. 2025-26"
// @Param        X-Actor  header    string               false  "Who is making the change"
// @Param        payload  body      taxcalc.Declaration  true   "Declaration"
// @Success      200      {object}  response.Response{data=service.DeclarationResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/employees/{id}/declarations/{fy} [put]
func (h *TaxHandler) SaveDeclaration(c *gin.Context) {
	var decl taxcalc.Declaration
	if err := c.ShouldBindJSON(&decl); err != nil {
		respondBindError(c, err)
		return
	}

	saved, err := h.taxService.SaveDeclaration(c.Request.Context(), c.Param("id"), c.Param("fy"), decl, middleware.ActorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, saved))
}

// GetDeclaration handles GET /api/employees/:id/declarations/:fy
// @Summary      Get a declaration
// @Tags         tax
// @Produce      json
// @Param        id   path      string  true  "Employee ID"
// @Param        fy   path      string  true  "Financial year, e.g. 2025-26"
// @Success      200  {object}  response.Response{data=service.DeclarationResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/employees/{id}/declarations/{fy} [get]
func (h *TaxHandler) GetDeclaration(c *gin.Context) {
	decl, err := h.taxService.GetDeclaration(c.Request.Context(), c.Param("id"), c.Param("fy"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, decl))
}

// ListDeclarations handles GET /api/employees/:id/declarations
// @Summary      List an employee's declarations
// @Tags         tax
// @Produce      json
// @Param        id   path      string  true  "Employee ID"
// @Success      200  {object}  response.Response{data=[]service.DeclarationResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/employees/{id}/declarations [get]
func (h *TaxHandler) ListDeclarations(c *gin.Context) {
	decls, err := h.taxService.ListDeclarations(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, decls))
}

// GetTaxSummary handles GET /api/employees/:id/declarations/:fy/tax
// @Summary      Tax summary
// @Description  Compares both regimes for the stored declaration and projects the monthly TDS still due
// @Tags         tax
// @Produce      json
// @Param        id   path      string  true  "Employee ID"
// @Param        fy   path      string  true  "Financial year, e.g. 2025-26"
// @Success      200  {object}  response.Response{data=service.TaxSummaryResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/employees/{id}/declarations/{fy}/tax [get]
func (h *TaxHandler) GetTaxSummary(c *gin.Context) {
	summary, err := h.taxService.GetTaxSummary(c.Request.Context(), c.Param("id"), c.Param("fy"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}
