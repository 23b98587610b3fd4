package constants

// Session Rules
const (
	// InitialLives is the life count at the start of every session
	InitialLives = 3

	// RescueTarget is the rescued count that ends Classic and Advanced sessions
	RescueTarget = 9
)

// Danger checkpoints: dummy pose indices where a firemen position is required
// CheckpointPoses[i] must be caught by firemen position i
var CheckpointPoses = [3]int{4, 10, 16}
