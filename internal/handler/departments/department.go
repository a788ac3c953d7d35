package departments

import (
	"net/http"
	"strconv"
	"strings"

	"pc-management/internal/api"
	"pc-management/internal/database"
	"pc-management/internal/model"
	"pc-management/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getDepartmentByID   = store.GetDepartmentByID
	getDepartmentByName = store.GetDepartmentByName
	listDepartments     = store.ListDepartments
	createDepartment    = store.CreateDepartment
)

// @Summary     Create a new department
// @Description 建立新部門，名稱不可重複
// @Tags        departments
// @Accept      json
// @Produce     json
// @Param       department body api.CreateDepartmentRequest true "部門資料"
// @Success     201 {object} api.DepartmentResponse
// @Failure     400 {object} api.ErrorResponse "名稱缺漏或已存在"
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /departments [post]
func CreateDepartmentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateDepartmentRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "name must not be empty"})
		}

		// 名稱先查重，維持與原有介面一致的 400 回應
		if _, err := getDepartmentByName(c.Request().Context(), db, req.Name); err == nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Department already exists"})
		} else if !store.IsNotFound(err) {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		created, err := createDepartment(c.Request().Context(), db, &model.Department{Name: req.Name})
		if err != nil {
			// 兩個併發建立可能同時通過查重，以資料庫約束為準
			if store.IsUniqueViolation(err) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "Department already exists"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.NewDepartmentResponse(created))
	}
}

// @Summary     List departments
// @Description 依建立順序回傳部門清單
// @Tags        departments
// @Produce     json
// @Param       skip  query int false "略過筆數"
// @Param       limit query int false "回傳筆數上限 (<=100)"
// @Success     200 {array} api.DepartmentResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /departments [get]
func ListDepartmentsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var q api.ListQuery
		if err := c.Bind(&q); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid query parameters"})
		}
		skip, limit := q.Normalize()

		items, err := listDepartments(c.Request().Context(), db, skip, limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.DepartmentResponse, 0, len(items))
		for i := range items {
			resp = append(resp, api.NewDepartmentResponse(&items[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a department by ID
// @Description 透過 ID 查詢部門
// @Tags        departments
// @Produce     json
// @Param       department_id path int true "部門 ID"
// @Success     200 {object} api.DepartmentResponse
// @Failure     400 {object} api.ErrorResponse "參數錯誤"
// @Failure     404 {object} api.ErrorResponse "部門不存在"
// @Failure     500 {object} api.ErrorResponse
// @Router      /departments/{department_id} [get]
func GetDepartmentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("department_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid department ID"})
		}
		d, err := getDepartmentByID(c.Request().Context(), db, id)
		if err != nil {
			if store.IsNotFound(err) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Department not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewDepartmentResponse(d))
	}
}
