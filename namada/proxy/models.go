package proxy

// rpcRequest is the JSON-RPC request envelope the endpoint consumes
type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      int         `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

type rpcErrorHolder interface {
	rpcError() *rpcError
}

type statusResponse struct {
	Result struct {
		NodeInfo struct {
			Network string `json:"network"`
		} `json:"node_info"`
	} `json:"result"`
	Error *rpcError `json:"error,omitempty"`
}

func (r *statusResponse) rpcError() *rpcError {
	return r.Error
}

type abciQueryResponse struct {
	Result struct {
		Response struct {
			Code  uint32 `json:"code"`
			Value string `json:"value"`
			Log   string `json:"log"`
		} `json:"response"`
	} `json:"result"`
	Error *rpcError `json:"error,omitempty"`
}

func (r *abciQueryResponse) rpcError() *rpcError {
	return r.Error
}

type broadcastResponse struct {
	Result struct {
		Code   uint32 `json:"code"`
		Data   string `json:"data"`
		Log    string `json:"log"`
		Hash   string `json:"hash"`
		Height string `json:"height"`
	} `json:"result"`
	Error *rpcError `json:"error,omitempty"`
}

func (r *broadcastResponse) rpcError() *rpcError {
	return r.Error
}
