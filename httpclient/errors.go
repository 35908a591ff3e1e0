package httpclient

import "errors"

var (
	errMarshalRequest     = errors.New("unable to marshal request body")
	errUnmarshalResponse  = errors.New("unable to unmarshal response body")
	errHTTPStatus         = errors.New("http call failed")
	errTokenRefreshFailed = errors.New("bearer token refresh failed")
)
