package reservation

type Status string

const (
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// CanTransitionTo enforces the reservation lifecycle: confirmed→checked_in→
// checked_out, with side branches confirmed→cancelled and confirmed→no_show.
// No transition skips a state and terminal states admit none.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusConfirmed:
		return next == StatusCheckedIn || next == StatusCancelled || next == StatusNoShow
	case StatusCheckedIn:
		return next == StatusCheckedOut
	default:
		return false
	}
}

type Source string

const (
	SourceOnline Source = "online"
	SourcePhone  Source = "phone"
	SourceWalkIn Source = "walk-in"
	SourceOTA    Source = "ota"
)

func (s Source) IsValid() bool {
	switch s {
	case SourceOnline, SourcePhone, SourceWalkIn, SourceOTA:
		return true
	default:
		return false
	}
}
