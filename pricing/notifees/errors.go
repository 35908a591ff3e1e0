package notifees

import "errors"

var (
	errNilBroadcaster = errors.New("nil broadcaster")
	errNilPriceChange = errors.New("nil price change")
)
