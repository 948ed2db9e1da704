package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	ie "github.com/jingpengwu/boss/pkg/errors"
	"github.com/jingpengwu/boss/pkg/structs"
)

var (
	errmap map[int][]error = map[int][]error{
		http.StatusBadRequest: []error{
			ie.ErrValidation,
			ie.ErrInvalidArg,
		},
		http.StatusNotFound: []error{
			ie.ErrResourceNotFound,
		},
		http.StatusConflict: []error{
			ie.ErrETagMismatch,
			ie.ErrIntegrity,
		},
	}
)

// mapError returns the http status code for a given service error, or
// http.StatusInternalServerError if the error is not recognised.
func mapError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	for code, errs := range errmap {
		for _, e := range errs {
			if errors.Is(err, e) {
				return code
			}
		}
	}
	return http.StatusInternalServerError
}

func unmarshalQuery(w http.ResponseWriter, r *http.Request, out *structs.Query) error {
	q := r.URL.Query()

	if q.Has("limit") {
		limit, err := strconv.Atoi(q.Get("limit"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return fmt.Errorf("bad limit: %v", err)
		}
		out.Limit = limit
	}

	if q.Has("offset") {
		offset, err := strconv.Atoi(q.Get("offset"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return fmt.Errorf("bad offset: %v", err)
		}
		out.Offset = offset
	}

	if q.Has("job_ids") {
		out.JobIDs = []int64{}
		for _, raw := range q["job_ids"] {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				http.Error(w, "bad job id", http.StatusBadRequest)
				return fmt.Errorf("bad job id: %v", raw)
			}
			out.JobIDs = append(out.JobIDs, id)
		}
	}
	if q.Has("creators") {
		out.Creators = q["creators"]
	}
	if q.Has("statuses") {
		out.Statuses = []structs.Status{}
		for _, s := range q["statuses"] {
			st := structs.ToStatus(s)
			if st == "" {
				http.Error(w, "bad status", http.StatusBadRequest)
				return fmt.Errorf("bad status: %v", s)
			}
			out.Statuses = append(out.Statuses, st)
		}
	}

	out.Sanitize()
	return nil
}
