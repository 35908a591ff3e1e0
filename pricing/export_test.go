package pricing

import "time"

// SetLastNotifiedPrices -
func (pn *priceNotifier) SetLastNotifiedPrices(prices []float64) {
	pn.mut.Lock()
	defer pn.mut.Unlock()

	pn.lastNotifiedPrices = prices
}

// SetTimeSinceHandler -
func (pn *priceNotifier) SetTimeSinceHandler(handler func(t time.Time) time.Duration) {
	pn.mut.Lock()
	defer pn.mut.Unlock()

	pn.timeSinceHandler = handler
}

// LastTimeAutoSent -
func (pn *priceNotifier) LastTimeAutoSent() time.Time {
	pn.mut.Lock()
	defer pn.mut.Unlock()

	return pn.lastTimeAutoSent
}
