package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewRoomID returns an opaque identifier for a video session room. The
// millisecond timestamp keeps ids roughly sortable in logs; the uuid-derived
// suffix disambiguates ids minted in the same millisecond.
func NewRoomID() string {
	return fmt.Sprintf("session-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
