package domain

// ListParams carries pagination + search state shared by every list endpoint.
// Page resets to 1 at the caller whenever any other filter changes.
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Normalize clamps page/limit into valid ranges.
func (p ListParams) Normalize() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset returns the SQL offset for the normalized params.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Paginated is the uniform list envelope: data.length <= limit and
// totalPages = ceil(total/limit).
type Paginated[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
}

// NewPaginated builds the envelope from a fetched page. Data is never nil so
// the JSON stays an empty array, not null.
func NewPaginated[T any](data []T, total int, p ListParams) Paginated[T] {
	if data == nil {
		data = []T{}
	}
	return Paginated[T]{
		Data:       data,
		Total:      total,
		Page:       p.Page,
		TotalPages: TotalPages(total, p.Limit),
	}
}

// TotalPages computes ceil(total/limit) without floats.
func TotalPages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
