package mock

import "net/http"

// BroadcasterStub -
type BroadcasterStub struct {
	BroadcastCalled func(eventType string, payload interface{})
}

// Broadcast -
func (stub *BroadcasterStub) Broadcast(eventType string, payload interface{}) {
	if stub.BroadcastCalled != nil {
		stub.BroadcastCalled(eventType, payload)
	}
}

// IsInterfaceNil -
func (stub *BroadcasterStub) IsInterfaceNil() bool {
	return stub == nil
}

// WSHandlerStub -
type WSHandlerStub struct {
	ServeHTTPCalled func(w http.ResponseWriter, r *http.Request)
}

// ServeHTTP -
func (stub *WSHandlerStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if stub.ServeHTTPCalled != nil {
		stub.ServeHTTPCalled(w, r)
	}
}

// IsInterfaceNil -
func (stub *WSHandlerStub) IsInterfaceNil() bool {
	return stub == nil
}
