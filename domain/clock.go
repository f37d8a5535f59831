package domain

import "time"

// NowMillis returns the current time as epoch milliseconds. Tests may replace it.
var NowMillis = func() int64 {
	return time.Now().UnixMilli()
}
