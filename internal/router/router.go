// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"pc-management/internal/cache"
	"pc-management/internal/database"
	"pc-management/internal/handler"
	"pc-management/internal/handler/assignments"
	"pc-management/internal/handler/departments"
	"pc-management/internal/handler/pcs"
	"pc-management/internal/handler/users"
)

// Setup 註冊所有路由
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache) {
	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db))

	// 部門 CRUD
	apiDepartments := api.Group("/departments")
	apiDepartments.POST("", departments.CreateDepartmentHandler(db))
	apiDepartments.GET("", departments.ListDepartmentsHandler(db))
	apiDepartments.GET("/:department_id", departments.GetDepartmentHandler(db))

	// 使用者 CRUD
	apiUsers := api.Group("/users")
	apiUsers.POST("", users.CreateUserHandler(db))
	apiUsers.GET("", users.ListUsersHandler(db))
	apiUsers.GET("/:user_id", users.GetUserHandler(db))

	// PC CRUD，單筆讀取走快取
	apiPCs := api.Group("/pcs")
	apiPCs.POST("", pcs.CreatePCHandler(db))
	apiPCs.GET("", pcs.ListPCsHandler(db))
	apiPCs.GET("/:pc_id", pcs.GetPCHandler(db, rdb))

	// 指派流程
	apiAssignments := api.Group("/assignments")
	apiAssignments.POST("", assignments.CreateAssignmentHandler(db, rdb))
	apiAssignments.GET("", assignments.ListAssignmentsHandler(db))
	apiAssignments.GET("/:assignment_id", assignments.GetAssignmentHandler(db))
	apiAssignments.POST("/:assignment_id/return", assignments.ReturnAssignmentHandler(db, rdb))
}
