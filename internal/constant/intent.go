package constant

// Intent labels form a closed set. The classifier may only ever assign one of
// these values; anything else collapses to IntentGeneral.
const (
	IntentPlanning       = "planning"
	IntentLearning       = "learning"
	IntentRemembering    = "remembering"
	IntentRewriting      = "rewriting"
	IntentDecisionMaking = "decision_making"
	IntentGeneral        = "general"
)

// Intents lists every valid intent label.
var Intents = []string{
	IntentPlanning,
	IntentLearning,
	IntentRemembering,
	IntentRewriting,
	IntentDecisionMaking,
	IntentGeneral,
}

// IsValidIntent reports whether label is a member of the closed intent set.
func IsValidIntent(label string) bool {
	for _, intent := range Intents {
		if label == intent {
			return true
		}
	}
	return false
}

// IsPersistWorthy reports whether an exchange with the given intent should be
// durably recorded. Rewriting and general chat are never persisted.
func IsPersistWorthy(intent string) bool {
	switch intent {
	case IntentPlanning, IntentLearning, IntentRemembering, IntentDecisionMaking:
		return true
	}
	return false
}
