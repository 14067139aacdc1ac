package domain

// AvailableSlot слот с признаком доступности на конкретную дату
type AvailableSlot struct {
	TimeSlot
	BookedSpots int
	TotalSpots  int
	Available   bool
}

// IsFull returns true if the slot has no spots left
func (s *AvailableSlot) IsFull() bool {
	return s.BookedSpots >= s.TotalSpots
}

// RemainingSpots returns the number of free spots
func (s *AvailableSlot) RemainingSpots() int {
	if s.IsFull() {
		return 0
	}
	return s.TotalSpots - s.BookedSpots
}
