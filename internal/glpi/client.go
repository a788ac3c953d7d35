// File: internal/glpi/client.go
package glpi

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"
)

// Config 為 GLPI REST API 連線設定，由環境變數載入。
type Config struct {
	BaseURL   string
	AppToken  string
	UserToken string
}

// ConfigFromEnv 從環境變數讀取 GLPI 設定
func ConfigFromEnv() Config {
	return Config{
		BaseURL:   os.Getenv("GLPI_API_URL"),
		AppToken:  os.Getenv("GLPI_APP_TOKEN"),
		UserToken: os.Getenv("GLPI_USER_TOKEN"),
	}
}

// Validate 在發出任何請求前確認必要設定皆已提供
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("GLPI_API_URL 未設定")
	}
	if c.AppToken == "" {
		return errors.New("GLPI_APP_TOKEN 未設定")
	}
	if c.UserToken == "" {
		return errors.New("GLPI_USER_TOKEN 未設定")
	}
	return nil
}

// ComputerInput 為 GLPI Computer 建立請求的 input 區塊
type ComputerInput struct {
	Name    string `json:"name"`
	Serial  string `json:"serial"`
	Comment string `json:"comment"`
}

type createComputerRequest struct {
	Input ComputerInput `json:"input"`
}

type createComputerResponse struct {
	ID int `json:"id"`
}

// HTTPError 表示 GLPI 回傳的非 2xx 回應，Body 保留原始錯誤內容供記錄。
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("glpi: status %d: %s", e.StatusCode, e.Body)
}

// Client 封裝 GLPI REST API 呼叫
type Client struct {
	http *resty.Client
}

// NewClient 以既定設定建立 GLPI 客戶端
func NewClient(cfg Config) *Client {
	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("App-Token", cfg.AppToken).
		SetHeader("Authorization", "user_token "+cfg.UserToken)
	return &Client{http: rc}
}

// CreateComputer 呼叫 POST /Computer 建立電腦資產，回傳 GLPI 產生的 ID
func (c *Client) CreateComputer(ctx context.Context, in ComputerInput) (int, error) {
	var out createComputerResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(createComputerRequest{Input: in}).
		SetResult(&out).
		Post("/Computer")
	if err != nil {
		return 0, fmt.Errorf("CreateComputer: %w", err)
	}
	if resp.IsError() {
		return 0, &HTTPError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return out.ID, nil
}
