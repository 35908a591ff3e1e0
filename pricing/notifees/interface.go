package notifees

// Broadcaster pushes an event to all the connected websocket clients
type Broadcaster interface {
	Broadcast(eventType string, payload interface{})
	IsInterfaceNil() bool
}
