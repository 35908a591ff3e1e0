package extension

import "context"

// fixedLocator resolves a pre-wired extension instance. A nil instance means
// no wallet is installed, which the connector reports accordingly.
type fixedLocator struct {
	ext Extension
}

// NewFixedLocator creates a locator always resolving the provided extension
func NewFixedLocator(ext Extension) *fixedLocator {
	return &fixedLocator{
		ext: ext,
	}
}

// Locate returns the wired extension instance
func (fl *fixedLocator) Locate(_ context.Context) (Extension, error) {
	return fl.ext, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (fl *fixedLocator) IsInterfaceNil() bool {
	return fl == nil
}
