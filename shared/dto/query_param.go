package dto

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams carries the ordering key/direction and the row limit of a read.
// The content endpoints use fixed values decided by each service; nothing is
// client-driven, so there is no pagination and no request parsing here.
type QueryParams struct {
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// OrderBy builds query params for an ordered, unlimited read.
func OrderBy(field, direction string) QueryParams {
	return QueryParams{
		SortBy:  field,
		SortDir: direction,
	}
}

// OrderByWithLimit builds query params for an ordered read capped at limit rows.
func OrderByWithLimit(field, direction string, limit int) QueryParams {
	return QueryParams{
		Limit:   limit,
		SortBy:  field,
		SortDir: direction,
	}
}
