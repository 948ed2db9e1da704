package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jingpengwu/boss/pkg/api/http/common"
	"github.com/jingpengwu/boss/pkg/structs"
)

// genericPost is a helper to POST a config document to a given URL and
// unmarshal the response.
func genericPost(ctx context.Context, addr *url.URL, creator string, in []byte, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, addr.String(), bytes.NewBuffer(in))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.HEADER_CREATOR, creator)
	return do(req, out)
}

// genericDelete is a helper to DELETE a given URL and unmarshal the response.
func genericDelete(ctx context.Context, addr *url.URL, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, addr.String(), nil)
	if err != nil {
		return err
	}
	return do(req, out)
}

// genericGet is a helper to GET data from a given URL and unmarshal the
// response. Implies the query string is already set, if needed.
func genericGet(ctx context.Context, addr *url.URL, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr.String(), nil)
	if err != nil {
		return err
	}
	return do(req, out)
}

func do(req *http.Request, out interface{}) error {
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	} else if resp.Body == nil {
		return fmt.Errorf("no response body with status code %d", resp.StatusCode)
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 { // some error code, assume message is error message
		return fmt.Errorf("bad status code %d, returned %s", resp.StatusCode, string(body))
	}

	return json.Unmarshal(body, out)
}

// setQueryString sets the query string of a URL based on the given query object.
func setQueryString(u *url.URL, q *structs.Query) {
	q.Sanitize()
	values := u.Query()

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.JobIDs != nil {
		ids := []string{}
		for _, id := range q.JobIDs {
			ids = append(ids, strconv.FormatInt(id, 10))
		}
		values["job_ids"] = ids
	}
	if q.Creators != nil {
		values["creators"] = q.Creators
	}
	if q.Statuses != nil {
		ss := []string{}
		for _, s := range q.Statuses {
			ss = append(ss, string(s))
		}
		values["statuses"] = ss
	}

	u.RawQuery = values.Encode()
}
