package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateBookingID returns a human-readable unique booking identifier,
// e.g. "BK-1711929600123-9f1c2ab4e". The millisecond timestamp keeps IDs
// roughly sortable by creation time.
func GenerateBookingID() string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
	return fmt.Sprintf("BK-%d-%s", time.Now().UnixMilli(), suffix)
}
