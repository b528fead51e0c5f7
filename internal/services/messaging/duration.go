package messaging

import (
	"fmt"
	"time"
)

// PrettyDuration renders a duration as "1d 2h 3m 4s", dropping leading zero units
func PrettyDuration(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}

	seconds := int64(d.Round(time.Second) / time.Second)
	days := seconds / 86400
	seconds %= 86400
	hours := seconds / 3600
	seconds %= 3600
	minutes := seconds / 60
	seconds %= 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
