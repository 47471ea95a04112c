package doctext

import (
	"context"
	"strings"
)

// Recognizer runs optical character recognition over an image file.
type Recognizer interface {
	// Recognize loads the image at path and returns the recognized text,
	// trimmed of surrounding whitespace. An image without recognizable
	// text yields an empty string and a nil error.
	Recognize(ctx context.Context, path string) (string, error)
}

// Capability describes whether an optional host dependency can be used.
type Capability struct {
	Available bool

	// Reasons explains why the capability is unavailable.
	Reasons []string
}

// Available returns a capability that can be used.
func Available() Capability {
	return Capability{Available: true}
}

// Unavailable returns a capability that cannot be used for the given reasons.
func Unavailable(reasons ...string) Capability {
	return Capability{Reasons: reasons}
}

// String returns "available" or the joined unavailability reasons.
func (c Capability) String() string {
	if c.Available {
		return "available"
	}
	if len(c.Reasons) == 0 {
		return "unavailable"
	}
	return strings.Join(c.Reasons, "; ")
}
