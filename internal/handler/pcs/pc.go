package pcs

import (
	"encoding/json"
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

// pcCacheTTL 為單筆 PC 快取的存活時間
const pcCacheTTL = 5 * time.Minute

var (
	createPC  = store.CreatePC
	getPCByID = store.GetPCByID
	listPCs   = store.ListPCs
)

// @Summary     Register a new PC
// @Description 登錄新 PC，status 省略時預設為 available
// @Tags        pcs
// @Accept      json
// @Produce     json
// @Param       pc body api.CreatePCRequest true "PC 資料"
// @Success     201 {object} api.PCResponse
// @Failure     400 {object} api.ErrorResponse "欄位缺漏或 status 不合法"
// @Failure     409 {object} api.ErrorResponse "序號重複"
// @Failure     500 {object} api.ErrorResponse
// @Router      /pcs [post]
func CreatePCHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreatePCRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		status := model.PCStatus(req.Status)
		if req.Status == "" {
			status = model.StatusAvailable
		}
		if !status.Valid() {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid status"})
		}

		created, err := createPC(c.Request().Context(), db, &model.PC{
			SerialNumber: req.SerialNumber,
			Model:        req.Model,
			Status:       status,
		})
		if err != nil {
			// 序號唯一性交由資料庫約束把關
			if store.IsUniqueViolation(err) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "serial number already registered"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.NewPCResponse(created))
	}
}

// @Summary     List PCs
// @Description 依登錄順序回傳 PC 清單
// @Tags        pcs
// @Produce     json
// @Param       skip  query int false "略過筆數"
// @Param       limit query int false "回傳筆數上限 (<=100)"
// @Success     200 {array} api.PCResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /pcs [get]
func ListPCsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var q api.ListQuery
		if err := c.Bind(&q); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid query parameters"})
		}
		skip, limit := q.Normalize()

		items, err := listPCs(c.Request().Context(), db, skip, limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.PCResponse, 0, len(items))
		for i := range items {
			resp = append(resp, api.NewPCResponse(&items[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a PC by ID
// @Description 透過 ID 查詢 PC，讀取透過快取
// @Tags        pcs
// @Produce     json
// @Param       pc_id path int true "PC ID"
// @Success     200 {object} api.PCResponse
// @Failure     400 {object} api.ErrorResponse "參數錯誤"
// @Failure     404 {object} api.ErrorResponse "PC 不存在"
// @Failure     500 {object} api.ErrorResponse
// @Router      /pcs/{pc_id} [get]
func GetPCHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("pc_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid PC ID"})
		}

		key := cache.PCKey(id)
		if raw, err := rdb.Get(c.Request().Context(), key).Result(); err == nil {
			var resp api.PCResponse
			if json.Unmarshal([]byte(raw), &resp) == nil {
				return c.JSON(http.StatusOK, resp)
			}
		}

		p, err := getPCByID(c.Request().Context(), db, id)
		if err != nil {
			if store.IsNotFound(err) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "PC not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := api.NewPCResponse(p)
		if b, err := json.Marshal(resp); err == nil {
			// 快取寫入失敗不影響回應
			rdb.Set(c.Request().Context(), key, b, pcCacheTTL)
		}
		return c.JSON(http.StatusOK, resp)
	}
}
