package game

// GamePhase is the stage a deal has reached.
type GamePhase int8

const (
	Bidding GamePhase = iota
	Playing
	Completed
	PassedOut
	Aborted
)

func (ph GamePhase) String() string {
	switch ph {
	case Bidding:
		return "Bidding"
	case Playing:
		return "Playing"
	case Completed:
		return "Completed"
	case PassedOut:
		return "PassedOut"
	case Aborted:
		return "Aborted"
	}
	return "Unknown"
}

// IsOver reports whether no more calls or cards will be accepted.
func (ph GamePhase) IsOver() bool {
	return ph == Completed || ph == PassedOut || ph == Aborted
}
