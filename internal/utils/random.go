package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewRandomID returns a new random ID suitable for use as an etag.
func NewRandomID() string {
	return strings.Replace(uuid.New().String(), "-", "", -1)
}
