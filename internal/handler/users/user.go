package users

import (
	"net/http"
	"net/mail"
	"strconv"
	"strings"

	"pc-management/internal/api"
	"pc-management/internal/database"
	"pc-management/internal/model"
	"pc-management/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	createUser        = store.CreateUser
	getUserByID       = store.GetUserByID
	listUsers         = store.ListUsers
	getDepartmentByID = store.GetDepartmentByID
)

// @Summary     Create a new user
// @Description 建立新使用者 (Email 會自動轉小寫)，可選擇所屬部門
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       user body api.CreateUserRequest true "使用者資料"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse "部門不存在"
// @Failure     409 {object} api.ErrorResponse "username 或 email 重複"
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		req.Email = strings.ToLower(req.Email)
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid email format"})
		}

		if req.DepartmentID != nil {
			if _, err := getDepartmentByID(c.Request().Context(), db, *req.DepartmentID); err != nil {
				if store.IsNotFound(err) {
					return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Department not found"})
				}
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
			}
		}

		created, err := createUser(c.Request().Context(), db, &model.User{
			Username:     req.Username,
			Email:        req.Email,
			FullName:     req.FullName,
			DepartmentID: req.DepartmentID,
		})
		if err != nil {
			// username/email 唯一性交由資料庫約束把關
			if store.IsUniqueViolation(err) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "username or email already registered"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		// 重新讀取以帶出巢狀部門資料
		user, err := getUserByID(c.Request().Context(), db, created.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, api.NewUserResponse(user))
	}
}

// @Summary     List users
// @Description 依建立順序回傳使用者清單
// @Tags        users
// @Produce     json
// @Param       skip  query int false "略過筆數"
// @Param       limit query int false "回傳筆數上限 (<=100)"
// @Success     200 {array} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var q api.ListQuery
		if err := c.Bind(&q); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid query parameters"})
		}
		skip, limit := q.Normalize()

		items, err := listUsers(c.Request().Context(), db, skip, limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.UserResponse, 0, len(items))
		for i := range items {
			resp = append(resp, api.NewUserResponse(&items[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a user by ID
// @Description 透過 ID 查詢使用者，含巢狀部門資料
// @Tags        users
// @Produce     json
// @Param       user_id path int true "使用者 ID"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse "參數錯誤"
// @Failure     404 {object} api.ErrorResponse "使用者不存在"
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/{user_id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}
		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			if store.IsNotFound(err) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "User not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}
