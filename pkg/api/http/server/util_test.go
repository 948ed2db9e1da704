package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ie "github.com/jingpengwu/boss/pkg/errors"
	"github.com/jingpengwu/boss/pkg/structs"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		Name   string
		Err    error
		Expect int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", fmt.Errorf("%w bad extent", ie.ErrValidation), http.StatusBadRequest},
		{"invalid arg", ie.ErrInvalidArg, http.StatusBadRequest},
		{"not found", fmt.Errorf("%w collection x", ie.ErrResourceNotFound), http.StatusNotFound},
		{"etag mismatch", ie.ErrETagMismatch, http.StatusConflict},
		{"wrapped system", fmt.Errorf("%w creating upload queue: boom", ie.ErrSystem), http.StatusInternalServerError},
		{"unknown", fmt.Errorf("eep"), http.StatusInternalServerError},
	}

	for _, tt := range cases {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Expect, mapError(tt.Err))
		})
	}
}

func TestUnmarshalQuery(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/ingest?limit=5&offset=2&job_ids=3&job_ids=9&creators=someone&statuses=active", nil)
	w := httptest.NewRecorder()

	q := &structs.Query{}
	err := unmarshalQuery(w, r, q)

	require.NoError(t, err)
	assert.Equal(t, 5, q.Limit)
	assert.Equal(t, 2, q.Offset)
	assert.Equal(t, []int64{3, 9}, q.JobIDs)
	assert.Equal(t, []string{"someone"}, q.Creators)
	assert.Equal(t, []structs.Status{structs.ACTIVE}, q.Statuses)
}

func TestUnmarshalQueryDefaults(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/ingest", nil)
	w := httptest.NewRecorder()

	q := &structs.Query{}
	err := unmarshalQuery(w, r, q)

	require.NoError(t, err)
	assert.Equal(t, 1000, q.Limit)
	assert.Nil(t, q.JobIDs)
}

func TestUnmarshalQueryRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"bad limit":  "/api/v1/ingest?limit=many",
		"bad job id": "/api/v1/ingest?job_ids=nope",
		"bad status": "/api/v1/ingest?statuses=EXPLODED",
	}

	for name, target := range cases {
		t.Run(name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, target, nil)
			w := httptest.NewRecorder()

			err := unmarshalQuery(w, r, &structs.Query{})

			assert.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
