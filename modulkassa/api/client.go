package api

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"github.com/dgigel/go-modulkassa/modulkassa/model"
	"github.com/dgigel/go-modulkassa/modulkassa/util"
)

var logger = log.WithField("component", "modulkassa.api")

type Client interface {
	GetJSON(ctx context.Context, endpoint string, creds model.Credentials, result interface{}) error
	PostJSON(ctx context.Context, endpoint string, creds model.Credentials, body, result interface{}) error
}

type client struct {
	rest    *resty.Client
	baseURL string
}

// New builds a gateway for the given FN base URL. The timeout is a
// deliberate addition: the original module would block forever on a dead
// connection.
func New(baseURL string) Client {
	restyClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json")
	return &client{rest: restyClient, baseURL: baseURL}
}

func (c *client) GetJSON(ctx context.Context, endpoint string, creds model.Credentials, result interface{}) error {
	return c.execute(ctx, resty.MethodGet, endpoint, creds, nil, result)
}

func (c *client) PostJSON(ctx context.Context, endpoint string, creds model.Credentials, body, result interface{}) error {
	return c.execute(ctx, resty.MethodPost, endpoint, creds, body, result)
}

func (c *client) execute(ctx context.Context, method, endpoint string, creds model.Credentials, body, result interface{}) error {

	// the FN service is not strict about response content types, decode
	// the body as JSON no matter what it says
	r := c.rest.R().
		SetContext(ctx).
		SetBasicAuth(creds.Username, creds.Password).
		ForceContentType("application/json").
		SetResult(result)

	if body != nil {
		r.SetBody(body)
	}
	if util.DebugEnabled() {
		r.EnableTrace()
	}

	logger.Debugf("%s %s%s", method, c.baseURL, endpoint)

	resp, err := r.Execute(method, endpoint)
	if err != nil {
		return errors.Wrap(err, "FN request")
	}

	printTraceInfo(endpoint, c, resp)
	return checkError(resp)
}

func checkError(resp *resty.Response) error {
	if resp.IsError() {
		return &RequestError{
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}
	return nil
}

func printTraceInfo(endpoint string, c *client, resp *resty.Response) {

	if !util.DebugEnabled() {
		return
	}

	ti := resp.Request.TraceInfo()
	logger.WithFields(log.Fields{
		"url":         c.baseURL + endpoint,
		"status_code": resp.StatusCode(),
		"time":        resp.Time(),
		"conn_time":   ti.ConnTime,
		"server_time": ti.ServerTime,
		"total_time":  ti.TotalTime,
	}).Debug(resp.String())
}
