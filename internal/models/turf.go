package models

type Turf struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	OpenAt   string `json:"open_at"`
	CloseAt  string `json:"close_at"`
	DaysOpen []int  `json:"days_open"`
	OwnerID  string `json:"owner_id"`
}

// OpenOn reports whether the turf operates on the given day. An empty
// DaysOpen means every day.
func (t *Turf) OpenOn(d Date) bool {
	if len(t.DaysOpen) == 0 {
		return true
	}

	wd := d.ISOWeekday()
	for _, day := range t.DaysOpen {
		if day == wd {
			return true
		}
	}

	return false
}
