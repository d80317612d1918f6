package model

// Hint strategy constants
const (
	HintStrategyRandom = "random"
	HintStrategyFirst  = "first"
)

// DefaultHintStrategy is used when a caller does not name one
const DefaultHintStrategy = HintStrategyRandom

// HintStrategyDisplayName returns a human-readable label for a strategy
func HintStrategyDisplayName(strategy string) string {
	switch strategy {
	case HintStrategyRandom:
		return "Random"
	case HintStrategyFirst:
		return "First available"
	default:
		return strategy
	}
}

// ValidHintStrategies returns all valid hint strategy names
func ValidHintStrategies() []string {
	return []string{HintStrategyRandom, HintStrategyFirst}
}

// IsValidHintStrategy returns true if name is a known strategy
func IsValidHintStrategy(name string) bool {
	for _, s := range ValidHintStrategies() {
		if s == name {
			return true
		}
	}
	return false
}
