package structs

const (
	queryLimitDefault = 1000
	queryLimitMax     = 10000
)

type Query struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`

	// Filters
	JobIDs   []int64  `json:"job_ids,omitempty"`
	Creators []string `json:"creators,omitempty"`
	Statuses []Status `json:"statuses,omitempty"`
}

func (q *Query) Sanitize() {
	if q.Limit <= 0 {
		q.Limit = queryLimitDefault
	}
	if q.Limit > queryLimitMax {
		q.Limit = queryLimitMax
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	if len(q.JobIDs) == 0 {
		q.JobIDs = nil
	}
	if len(q.Creators) == 0 {
		q.Creators = nil
	}
	if len(q.Statuses) == 0 {
		q.Statuses = nil
	}
}
