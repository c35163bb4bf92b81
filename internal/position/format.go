package position

import (
	"fmt"
	"time"
)

// Format renders d as H:MM:SS.nnnnnnnnn, the layout GStreamer uses for
// clock times. An invalid time prints as all nines.
func Format(d time.Duration, valid bool) string {
	if !valid || d < 0 {
		return "99:99:99.999999999"
	}
	ns := d.Nanoseconds()
	h := ns / int64(time.Hour)
	m := ns / int64(time.Minute) % 60
	s := ns / int64(time.Second) % 60
	return fmt.Sprintf("%d:%02d:%02d.%09d", h, m, s, ns%int64(time.Second))
}

// Window is an open time interval.
type Window struct {
	From time.Duration
	To   time.Duration
}

func (w Window) Contains(d time.Duration) bool {
	return d > w.From && d < w.To
}
