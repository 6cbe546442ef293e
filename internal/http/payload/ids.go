package payload

import (
	"fmt"
	"net/url"
	"strconv"
)

func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse id %q: %w", raw, err)
	}
	return id, nil
}

// OptionalID reads an integer query parameter. A missing or empty parameter yields nil.
func OptionalID(values url.Values, key string) (*int64, error) {
	raw := values.Get(key)
	if raw == "" {
		return nil, nil
	}

	id, err := ParseID(raw)
	if err != nil {
		return nil, fmt.Errorf("query parameter %s: %w", key, err)
	}
	return &id, nil
}
