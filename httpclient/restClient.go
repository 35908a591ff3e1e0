package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	logger "github.com/multiversx/mx-chain-logger-go"
)

const defaultTimeout = time.Second * 30

var log = logger.GetOrCreate("httpclient")

// TokenRefreshHandler is called once after an authorization failure to obtain
// a fresh bearer token. The failed request is then retried a single time.
type TokenRefreshHandler func(ctx context.Context) (string, error)

// ArgsRestClient is the arguments DTO for the NewRestClient function
type ArgsRestClient struct {
	BearerToken    string
	RefreshHandler TokenRefreshHandler
	Timeout        time.Duration
}

type restClient struct {
	mut            sync.RWMutex
	client         *http.Client
	bearerToken    string
	refreshHandler TokenRefreshHandler
}

// NewRestClient creates a JSON REST client with optional bearer authentication
func NewRestClient(args ArgsRestClient) (*restClient, error) {
	timeout := args.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &restClient{
		client: &http.Client{
			Timeout: timeout,
		},
		bearerToken:    args.BearerToken,
		refreshHandler: args.RefreshHandler,
	}, nil
}

// Get executes a GET call and unmarshals the response body into the provided value
func (rc *restClient) Get(ctx context.Context, url string, response interface{}) error {
	return rc.call(ctx, http.MethodGet, url, nil, response)
}

// Post executes a POST call with a JSON body
func (rc *restClient) Post(ctx context.Context, url string, request interface{}, response interface{}) error {
	return rc.call(ctx, http.MethodPost, url, request, response)
}

// Put executes a PUT call with a JSON body
func (rc *restClient) Put(ctx context.Context, url string, request interface{}, response interface{}) error {
	return rc.call(ctx, http.MethodPut, url, request, response)
}

// Patch executes a PATCH call with a JSON body
func (rc *restClient) Patch(ctx context.Context, url string, request interface{}, response interface{}) error {
	return rc.call(ctx, http.MethodPatch, url, request, response)
}

// Delete executes a DELETE call
func (rc *restClient) Delete(ctx context.Context, url string, response interface{}) error {
	return rc.call(ctx, http.MethodDelete, url, nil, response)
}

func (rc *restClient) call(ctx context.Context, method string, url string, request interface{}, response interface{}) error {
	statusCode, err := rc.doOnce(ctx, method, url, request, response)
	if err != nil {
		return err
	}
	if statusCode != http.StatusUnauthorized {
		return checkStatus(statusCode, url)
	}
	if rc.refreshHandler == nil {
		return checkStatus(statusCode, url)
	}

	// retried exactly once after refreshing the token
	token, err := rc.refreshHandler(ctx)
	if err != nil {
		return fmt.Errorf("%w: %s", errTokenRefreshFailed, err.Error())
	}

	rc.mut.Lock()
	rc.bearerToken = token
	rc.mut.Unlock()

	log.Debug("bearer token refreshed, retrying request", "method", method, "url", url)

	statusCode, err = rc.doOnce(ctx, method, url, request, response)
	if err != nil {
		return err
	}

	return checkStatus(statusCode, url)
}

func (rc *restClient) doOnce(ctx context.Context, method string, url string, request interface{}, response interface{}) (int, error) {
	var body io.Reader
	if request != nil {
		buff, err := json.Marshal(request)
		if err != nil {
			return 0, fmt.Errorf("%w: %s", errMarshalRequest, err.Error())
		}
		body = bytes.NewReader(buff)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return 0, err
	}

	req.Header.Set("Content-Type", "application/json")
	rc.mut.RLock()
	if len(rc.bearerToken) > 0 {
		req.Header.Set("Authorization", "Bearer "+rc.bearerToken)
	}
	rc.mut.RUnlock()

	resp, err := rc.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	responseBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return resp.StatusCode, nil
	}
	if response == nil {
		return resp.StatusCode, nil
	}

	err = json.Unmarshal(responseBytes, response)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%w: %s", errUnmarshalResponse, err.Error())
	}

	return resp.StatusCode, nil
}

func checkStatus(statusCode int, url string) error {
	if statusCode < http.StatusBadRequest {
		return nil
	}

	return fmt.Errorf("%w: status %d on %s", errHTTPStatus, statusCode, url)
}

// IsInterfaceNil returns true if there is no value under the interface
func (rc *restClient) IsInterfaceNil() bool {
	return rc == nil
}
