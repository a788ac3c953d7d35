package api

const (
	defaultLimit = 100
	maxLimit     = 100
)

// ListQuery 為列表端點共用的分頁查詢參數
// swagger:model api.ListQuery
type ListQuery struct {
	Skip  int `query:"skip" example:"0"`
	Limit int `query:"limit" example:"100"`
}

// Normalize 回傳實際查詢用的 skip/limit，limit 上限 100 筆避免無界掃描。
func (q ListQuery) Normalize() (int, int) {
	skip := q.Skip
	if skip < 0 {
		skip = 0
	}
	limit := q.Limit
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	return skip, limit
}
