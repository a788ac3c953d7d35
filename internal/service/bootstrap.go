// File: internal/service/bootstrap.go
package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"pc-management/internal/database"
	"pc-management/internal/model"
	"pc-management/internal/store"
)

var (
	listDepartments     = store.ListDepartments
	getDepartmentByName = store.GetDepartmentByName
	createDepartment    = store.CreateDepartment
)

// BootstrapDepartments 在部門表為空時，從 CSV 的 name 欄位匯入部門名稱。
// 重複執行不會產生重複資料；找不到檔案時記錄後略過。
func BootstrapDepartments(ctx context.Context, db database.DB, path string) error {
	existing, err := listDepartments(ctx, db, 0, 1)
	if err != nil {
		return fmt.Errorf("BootstrapDepartments: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("找不到 %s，略過部門初始化", path)
			return nil
		}
		return fmt.Errorf("BootstrapDepartments: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("BootstrapDepartments: %w", err)
	}

	nameIdx := -1
	for i, col := range header {
		if strings.TrimSpace(col) == "name" {
			nameIdx = i
			break
		}
	}
	if nameIdx < 0 {
		log.Printf("%s 缺少 name 欄位，略過部門初始化", path)
		return nil
	}

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("BootstrapDepartments: %w", err)
		}
		if nameIdx >= len(rec) {
			continue
		}
		name := strings.TrimSpace(rec[nameIdx])
		if name == "" {
			continue
		}

		// 已存在的名稱直接略過
		if _, err := getDepartmentByName(ctx, db, name); err == nil {
			continue
		} else if !store.IsNotFound(err) {
			return fmt.Errorf("BootstrapDepartments: %w", err)
		}

		if _, err := createDepartment(ctx, db, &model.Department{Name: name}); err != nil {
			return fmt.Errorf("BootstrapDepartments: %w", err)
		}
	}
	return nil
}
