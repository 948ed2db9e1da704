package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jingpengwu/boss/pkg/api/http/common"
	"github.com/jingpengwu/boss/pkg/structs"
)

// Client talks to an ingest API server over HTTP. It satisfies api.API so
// callers can swap between in-process & remote use.
type Client struct {
	url *url.URL
}

func New(address string) (*Client, error) {
	u, err := url.Parse(address)
	return &Client{url: u}, err
}

func (c *Client) SetupIngest(ctx context.Context, creator string, configData []byte) (*structs.IngestJob, error) {
	addr := c.addr(common.API_INGEST)
	var out structs.IngestJob
	return &out, genericPost(ctx, addr, creator, configData, &out)
}

func (c *Client) DeleteIngestJob(ctx context.Context, jobID int64) (int64, error) {
	addr := c.addr(fmt.Sprintf("/api/v1/ingest/%d", jobID))
	var out common.DeleteResponse
	err := genericDelete(ctx, addr, &out)
	return out.JobID, err
}

func (c *Client) IngestJob(ctx context.Context, jobID int64) (*structs.IngestJob, error) {
	addr := c.addr(fmt.Sprintf("/api/v1/ingest/%d", jobID))
	var out structs.IngestJob
	return &out, genericGet(ctx, addr, &out)
}

func (c *Client) IngestJobs(ctx context.Context, q *structs.Query) ([]*structs.IngestJob, error) {
	addr := c.addr(common.API_INGEST)
	setQueryString(addr, q)
	var out []*structs.IngestJob
	return out, genericGet(ctx, addr, &out)
}

func (c *Client) Close() error {
	return nil
}

func (c *Client) addr(path string) *url.URL {
	return &url.URL{Scheme: c.url.Scheme, Host: c.url.Host, Path: path}
}
