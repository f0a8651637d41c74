package sqlite

import "time"

func (r *SubscriberRepository) SetClock(now func() time.Time) {
	r.now = now
}
