package game

// PlayState is where the game is in its life
type PlayState int

const (
	NotStarted PlayState = iota
	InProgress
	Finished
)

var playStateNames = []string{"NotStarted", "InProgress", "Finished"}

func (s PlayState) String() string {
	if s < NotStarted || s > Finished {
		return "Unknown"
	}
	return playStateNames[s]
}

// Stage is the step of the current round. The game waits at a stage until
// the collaborators it asks have answered correctly.
type Stage int

const (
	dealing Stage = iota
	offering
	taking
	settling // the game is over: trophies are awarded, the bonus/malus card may be pending
)
