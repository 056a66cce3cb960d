package tricks

// Phase is the stage the game is in
type Phase string

// Phase constants
const (
	PhaseWaiting    Phase = "waiting"
	PhaseDealing    Phase = "dealing"
	PhasePlaying    Phase = "playing"
	PhaseEvaluating Phase = "evaluating"
	PhaseGameOver   Phase = "gameOver"
)
