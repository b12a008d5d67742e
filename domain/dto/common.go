package dto

import "streamhub/domain/query"

// Paged wraps one page of a composed view with its pagination metadata,
// flattened into a single JSON object.
type Paged struct {
	Docs any `json:"docs"`
	query.PageInfo
}
