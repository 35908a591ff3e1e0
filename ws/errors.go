package ws

import "errors"

var (
	errInvalidSendBufferSize = errors.New("invalid send buffer size")
)
