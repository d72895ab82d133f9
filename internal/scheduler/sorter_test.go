package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeCandidate(word string, priority float64) ScoredCandidate {
	return ScoredCandidate{
		Input:    ScoringInput{Word: word},
		Priority: priority,
	}
}

func TestCanonicalSort_PriorityDescending(t *testing.T) {
	candidates := []ScoredCandidate{
		makeCandidate("low", 1.0),
		makeCandidate("high", 9.5),
		makeCandidate("mid", 4.2),
	}

	CanonicalSort(candidates)

	assert.Equal(t, "high", candidates[0].Input.Word)
	assert.Equal(t, "mid", candidates[1].Input.Word)
	assert.Equal(t, "low", candidates[2].Input.Word)
}

func TestCanonicalSort_WordTiebreak(t *testing.T) {
	candidates := []ScoredCandidate{
		makeCandidate("zebra", 3.0),
		makeCandidate("Apple", 3.0),
		makeCandidate("apple", 3.0),
	}

	CanonicalSort(candidates)

	assert.Equal(t, "Apple", candidates[0].Input.Word, "byte order puts upper case first")
	assert.Equal(t, "apple", candidates[1].Input.Word)
	assert.Equal(t, "zebra", candidates[2].Input.Word)
}

func TestCanonicalSort_IndependentOfInputOrder(t *testing.T) {
	a := []ScoredCandidate{makeCandidate("b", 2), makeCandidate("a", 2), makeCandidate("c", 5)}
	b := []ScoredCandidate{makeCandidate("c", 5), makeCandidate("a", 2), makeCandidate("b", 2)}

	CanonicalSort(a)
	CanonicalSort(b)

	assert.Equal(t, PlanWords(a), PlanWords(b))
}
