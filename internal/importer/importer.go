// File: internal/importer/importer.go
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"pc-management/internal/glpi"
	"pc-management/internal/worker"

	"github.com/google/uuid"
)

// Client 為匯入流程所需的 GLPI 操作
type Client interface {
	CreateComputer(ctx context.Context, in glpi.ComputerInput) (int, error)
}

// Result 為一次批次匯入的統計
type Result struct {
	Imported int
	Failed   int
}

var (
	newSerial = func() string { return uuid.NewString() }
	logf      = log.Printf
)

// commentFields 依序組成 GLPI comment 區塊的 CSV 欄位
var commentFields = []struct {
	column, label string
}{
	{"owner", "Owner"},
	{"department", "Department"},
	{"status", "Status"},
	{"ram", "RAM"},
	{"cpu", "CPU"},
	{"os", "OS"},
	{"lastActivity", "Last activity"},
}

// buildInput 將一列 CSV 轉為 GLPI Computer 輸入，serial 缺漏時自動產生。
func buildInput(row map[string]string) (glpi.ComputerInput, error) {
	name := strings.TrimSpace(row["name"])
	if name == "" {
		return glpi.ComputerInput{}, errors.New("missing name column value")
	}

	serial := strings.TrimSpace(row["serial"])
	if serial == "" {
		serial = newSerial()
	}

	lines := make([]string, 0, len(commentFields))
	for _, f := range commentFields {
		v := strings.TrimSpace(row[f.column])
		if v == "" {
			v = "N/A"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", f.label, v))
	}

	return glpi.ComputerInput{
		Name:    name,
		Serial:  serial,
		Comment: strings.Join(lines, "\n"),
	}, nil
}

// importRow 送出單筆資產並記錄結果，HTTP 錯誤與連線錯誤分開記錄。
func importRow(ctx context.Context, client Client, row map[string]string) error {
	in, err := buildInput(row)
	if err != nil {
		logf("略過一筆資料: %v", err)
		return err
	}

	id, err := client.CreateComputer(ctx, in)
	if err != nil {
		var httpErr *glpi.HTTPError
		if errors.As(err, &httpErr) {
			logf("匯入 %q 失敗: HTTP %d，GLPI 回應: %s", in.Name, httpErr.StatusCode, httpErr.Body)
		} else {
			logf("匯入 %q 失敗: %v", in.Name, err)
		}
		return err
	}

	logf("PC %q 匯入成功，GLPI ID: %d", in.Name, id)
	return nil
}

// Run 讀取 CSV 並以 worker pool 併發匯入，單筆失敗不中斷批次。
func Run(ctx context.Context, client Client, path string, workers int) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("Run: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return Result{}, nil
		}
		return Result{}, fmt.Errorf("Run: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	pool := worker.NewPool(workers)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			done, failed := pool.Stop()
			return Result{Imported: done, Failed: failed}, fmt.Errorf("Run: %w", err)
		}

		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		pool.Submit(func() error { return importRow(ctx, client, row) })
	}

	done, failed := pool.Stop()
	return Result{Imported: done, Failed: failed}, nil
}
