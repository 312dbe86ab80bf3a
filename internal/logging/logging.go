// Package logging supplies the one thing glog doesn't: the spec's exact
// timestamp banner used for debug dumps. Everything else goes through glog
// directly, the way the teacher package does.
package logging

import (
	"fmt"
	"time"
)

// Timestamp formats now as "[YYYY-MM-DD HH:MM:SS.uuuuuu]".
func Timestamp() string {
	return formatTimestamp(time.Now())
}

func formatTimestamp(t time.Time) string {
	return fmt.Sprintf("[%s.%06d]", t.Format("2006-01-02 15:04:05"), t.Nanosecond()/1000)
}

// Event renders a timestamped debug line, e.g. for RAM/VRAM dump banners.
func Event(format string, args ...interface{}) string {
	return fmt.Sprintf("%s %s", Timestamp(), fmt.Sprintf(format, args...))
}
