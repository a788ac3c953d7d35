package assignments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"pc-management/internal/api"
	"pc-management/internal/cache"
	"pc-management/internal/database"
	"pc-management/internal/model"
	"pc-management/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getUserByID       = store.GetUserByID
	getPCByID         = store.GetPCByID
	getAssignmentByID = store.GetAssignmentByID
	listAssignments   = store.ListAssignments
	createAssignment  = store.CreateAssignment
	returnAssignment  = store.ReturnAssignment
	timeNow           = time.Now
)

// @Summary     Assign a PC to a user
// @Description 建立指派紀錄並把 PC 轉為 assigned，僅 available 的 PC 可被指派
// @Tags        assignments
// @Accept      json
// @Produce     json
// @Param       assignment body api.CreateAssignmentRequest true "指派資料"
// @Success     201 {object} api.AssignmentResponse
// @Failure     400 {object} api.ErrorResponse "PC 不可指派"
// @Failure     404 {object} api.ErrorResponse "使用者或 PC 不存在"
// @Failure     500 {object} api.ErrorResponse
// @Router      /assignments [post]
func CreateAssignmentHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateAssignmentRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()

		if _, err := getUserByID(ctx, db, req.UserID); err != nil {
			if store.IsNotFound(err) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "User not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		pc, err := getPCByID(ctx, db, req.PCID)
		if err != nil {
			if store.IsNotFound(err) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "PC not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if pc.Status != model.StatusAvailable {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "PC is not available for assignment"})
		}

		// 交易內會重驗可用性，兩個併發指派只會有一個成功
		created, err := createAssignment(ctx, db, req.UserID, req.PCID)
		if err != nil {
			if errors.Is(err, store.ErrPCUnavailable) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "PC is not available for assignment"})
			}
			if store.IsNotFound(err) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "PC not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		// 狀態已變更，單筆 PC 快取失效
		rdb.Del(ctx, cache.PCKey(req.PCID))

		full, err := getAssignmentByID(ctx, db, created.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, api.NewAssignmentResponse(full))
	}
}

// @Summary     Return an assigned PC
// @Description 設定歸還時間並把 PC 轉回 available
// @Tags        assignments
// @Produce     json
// @Param       assignment_id path int true "指派紀錄 ID"
// @Success     200 {object} api.AssignmentResponse
// @Failure     400 {object} api.ErrorResponse "已歸還"
// @Failure     404 {object} api.ErrorResponse "紀錄不存在"
// @Failure     500 {object} api.ErrorResponse
// @Router      /assignments/{assignment_id}/return [post]
func ReturnAssignmentHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("assignment_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid assignment ID"})
		}

		ctx := c.Request().Context()
		returned, err := returnAssignment(ctx, db, id, timeNow().UTC())
		if err != nil {
			if store.IsNotFound(err) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Assignment not found"})
			}
			if errors.Is(err, store.ErrAlreadyReturned) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "assignment already returned"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		rdb.Del(ctx, cache.PCKey(returned.PCID))

		full, err := getAssignmentByID(ctx, db, returned.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewAssignmentResponse(full))
	}
}

// @Summary     List assignments
// @Description 依建立順序回傳指派紀錄，含巢狀使用者與 PC
// @Tags        assignments
// @Produce     json
// @Param       skip  query int false "略過筆數"
// @Param       limit query int false "回傳筆數上限 (<=100)"
// @Success     200 {array} api.AssignmentResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /assignments [get]
func ListAssignmentsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var q api.ListQuery
		if err := c.Bind(&q); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid query parameters"})
		}
		skip, limit := q.Normalize()

		items, err := listAssignments(c.Request().Context(), db, skip, limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.AssignmentResponse, 0, len(items))
		for i := range items {
			resp = append(resp, api.NewAssignmentResponse(&items[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get an assignment by ID
// @Description 透過 ID 查詢指派紀錄，含巢狀使用者與 PC
// @Tags        assignments
// @Produce     json
// @Param       assignment_id path int true "指派紀錄 ID"
// @Success     200 {object} api.AssignmentResponse
// @Failure     400 {object} api.ErrorResponse "參數錯誤"
// @Failure     404 {object} api.ErrorResponse "紀錄不存在"
// @Failure     500 {object} api.ErrorResponse
// @Router      /assignments/{assignment_id} [get]
func GetAssignmentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("assignment_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid assignment ID"})
		}
		a, err := getAssignmentByID(c.Request().Context(), db, id)
		if err != nil {
			if store.IsNotFound(err) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Assignment not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewAssignmentResponse(a))
	}
}
