package models

import "time"

type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotCancelled SlotStatus = "cancelled"
)

type Slot struct {
	ID           string     `bson:"_id,omitempty"`
	ConsultantID string     `bson:"consultantId"`
	StartTime    time.Time  `bson:"startTime"`
	EndTime      time.Time  `bson:"endTime"`
	Status       SlotStatus `bson:"status"`

	TimeModel `bson:",inline"`
}

// Contains reports whether t falls inside the slot window, inclusive of
// both boundaries.
func (s *Slot) Contains(t time.Time) bool {
	return !t.Before(s.StartTime) && !t.After(s.EndTime)
}

func (s *Slot) Overlaps(start, end time.Time) bool {
	return start.Before(s.EndTime) && end.After(s.StartTime)
}
