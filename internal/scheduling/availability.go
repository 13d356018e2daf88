package scheduling

import "salon/backend/internal/domain"

// FreeStarts returns the start times within [opens, closes) where a slot of
// durationMinutes fits without overlapping any busy slot. Candidates are
// spaced stepMinutes apart beginning at opens.
func FreeStarts(opens, closes domain.TimeOfDay, durationMinutes, stepMinutes int, busy []domain.Slot) []domain.TimeOfDay {
	if durationMinutes <= 0 || stepMinutes <= 0 {
		return nil
	}
	if closes > domain.MinutesPerDay {
		closes = domain.MinutesPerDay
	}
	if opens < 0 || closes <= opens {
		return nil
	}

	var starts []domain.TimeOfDay
	for t := opens; t.Add(durationMinutes) <= closes; t = t.Add(stepMinutes) {
		candidate := domain.Slot{Start: t, End: t.Add(durationMinutes)}
		if !overlapsAny(candidate, busy) {
			starts = append(starts, t)
		}
	}
	return starts
}

// BusySlots collects the slots still held by blocking appointments.
func BusySlots(appts []domain.Appointment) []domain.Slot {
	busy := make([]domain.Slot, 0, len(appts))
	for _, a := range appts {
		if Blocking(a) {
			busy = append(busy, a.Slot())
		}
	}
	return busy
}

func overlapsAny(s domain.Slot, busy []domain.Slot) bool {
	for _, b := range busy {
		if Overlaps(s, b) {
			return true
		}
	}
	return false
}
