package filters

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-slots/pkg/value"
)

var (
	sanitizeOnce   sync.Once
	sanitizeShared *bluemonday.Policy
)

func sanitizePolicy() *bluemonday.Policy {
	sanitizeOnce.Do(func() {
		sanitizeShared = bluemonday.StrictPolicy()
	})
	return sanitizeShared
}

// sanitizeFilter strips all HTML markup from the string form of the
// value, leaving only text content.
func sanitizeFilter(v value.Value, _ []string) (value.Value, error) {
	return value.String(sanitizePolicy().Sanitize(display(v))), nil
}
