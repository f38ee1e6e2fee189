package fsutils

import "time"

const ModTimeLayout = "2006-01-02 15:04:05"

// GetModTimeText formats a modification time in UTC.
func GetModTimeText(t time.Time) string {
	return t.UTC().Format(ModTimeLayout)
}
