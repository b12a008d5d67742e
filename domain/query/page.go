package query

// PageRequest selects a 1-indexed slice of a composed view.
type PageRequest struct {
	Page  int64
	Limit int64
}

// Normalize replaces out-of-range values with the defaults (page=1,
// limit=10). Invalid paging input is never rejected.
func (p PageRequest) Normalize() PageRequest {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 10
	}
	return p
}

// PageInfo is the pagination envelope returned alongside every page.
type PageInfo struct {
	TotalDocs   int64 `json:"totalDocs"`
	Limit       int64 `json:"limit"`
	Page        int64 `json:"page"`
	TotalPages  int64 `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPageInfo derives page metadata for a normalized request over a result
// set of total records.
func NewPageInfo(req PageRequest, total int64) PageInfo {
	pages := total / req.Limit
	if total%req.Limit != 0 {
		pages++
	}
	return PageInfo{
		TotalDocs:   total,
		Limit:       req.Limit,
		Page:        req.Page,
		TotalPages:  pages,
		HasNextPage: req.Page*req.Limit < total,
		HasPrevPage: req.Page > 1,
	}
}
