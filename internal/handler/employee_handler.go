package handler

import (
	"net/http"

	"hrms/internal/middleware"
	"hrms/internal/service"
	"hrms/pkg/pagination"
	"hrms/pkg/response"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	employeeService service.EmployeeService
}

func NewEmployeeHandler(employeeService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

func (h *EmployeeHandler) RegisterRoutes(router *gin.RouterGroup) {
	employees := router.Group("/api/employees")
	{
		employees.GET("", h.ListEmployees)
		employees.POST("", h.CreateEmployee)
		employees.GET("/:id", h.GetEmployee)
		employees.PUT("/:id/salary", h.UpdateSalary)
	}
}

// CreateEmployee handles POST /api/employees
// @Summary      Create an employee
// @Description  Adds an employee with the base annual salary used for tax computations
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        X-Actor  header    string                         false  "Who is making the change"
// @Param        payload  body      service.CreateEmployeeRequest  true   "Employee"
// @Success      201      {object}  response.Response{data=service.EmployeeResponse}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req service.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req, middleware.ActorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, employee))
}

// ListEmployees handles GET /api/employees
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20, max 100)"
// @Success      200    {object}  response.Response{data=[]service.EmployeeResponse,meta=pagination.Meta}
// @Router       /api/employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	p := pagination.Parse(c)

	employees, total, err := h.employeeService.ListEmployees(c.Request.Context(), p.Page, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, employees, p.Meta(total)))
}

// GetEmployee handles GET /api/employees/:id
// @Summary      Get an employee
// @Tags         employees
// @Produce      json
// @Param        id   path      string  true  "Employee ID"
// @Success      200  {object}  response.Response{data=service.EmployeeResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	employee, err := h.employeeService.GetEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, employee))
}

// UpdateSalary handles PUT /api/employees/:id/salary
// @Summary      Update base salary
// @Description  Changes the base annual salary. Stored declarations are recomputed against it on the next read.
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true   "Employee ID"
// @Param        X-Actor  header    string                       false  "Who is making the change"
// @Param        payload  body      service.UpdateSalaryRequest  true   "New salary"
// @Success      200      {object}  response.Response{data=service.EmployeeResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/employees/{id}/salary [put]
func (h *EmployeeHandler) UpdateSalary(c *gin.Context) {
	var req service.UpdateSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	employee, err := h.employeeService.UpdateSalary(c.Request.Context(), c.Param("id"), req, middleware.ActorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, employee))
}
