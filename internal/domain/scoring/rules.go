package scoring

// Point weights for a single game.
const (
	GoalPoints   = 5
	AssistPoints = 3
	SavePoints   = 2
	WinBonus     = 10
)

// BasePoints is the score without the win bonus.
func BasePoints(goals, assists, saves int) int {
	return goals*GoalPoints + assists*AssistPoints + saves*SavePoints
}

// Points computes a game total. Callers reject negative counts.
func Points(goals, assists, saves int, won bool) int {
	total := BasePoints(goals, assists, saves)
	if won {
		total += WinBonus
	}
	return total
}

// InferWon recovers the win flag from a stored total. It only reports true
// when stored is exactly the base score plus the bonus, so any total edited
// outside Points reads as a loss.
func InferWon(stored, goals, assists, saves int) bool {
	return stored == BasePoints(goals, assists, saves)+WinBonus
}

// ResolveWon prefers an explicitly stored flag over the inferred one.
func ResolveWon(won *bool, stored, goals, assists, saves int) bool {
	if won != nil {
		return *won
	}
	return InferWon(stored, goals, assists, saves)
}
