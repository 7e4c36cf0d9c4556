package manager

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// RoundRecord describes one finished round.
type RoundRecord struct {
	ID        string
	Score     int
	Fruits    int
	StartTime time.Time
	EndTime   time.Time
	Cause     CollisionType
}

// Duration returns how long the round lasted.
func (r RoundRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StateManager keeps the scoreboard for the current process. Nothing is
// written to disk; a restart begins with an empty board.
type StateManager struct {
	highScore int
	rounds    []RoundRecord
}

func NewStateManager() *StateManager {
	return &StateManager{
		rounds: make([]RoundRecord, 0),
	}
}

// AddRound records a finished round and returns it.
func (sm *StateManager) AddRound(score, fruits int, start, end time.Time, cause CollisionType) RoundRecord {
	record := RoundRecord{
		ID:        uuid.New().String(),
		Score:     score,
		Fruits:    fruits,
		StartTime: start,
		EndTime:   end,
		Cause:     cause,
	}
	sm.rounds = append(sm.rounds, record)
	sm.UpdateScore(score)
	return record
}

func (sm *StateManager) UpdateScore(score int) {
	if score > sm.highScore {
		sm.highScore = score
	}
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

// Rounds returns a copy of the recorded rounds, oldest first.
func (sm *StateManager) Rounds() []RoundRecord {
	out := make([]RoundRecord, len(sm.rounds))
	copy(out, sm.rounds)
	return out
}

func (sm *StateManager) GetScoreHistory() []int {
	scores := make([]int, len(sm.rounds))
	for i, r := range sm.rounds {
		scores[i] = r.Score
	}
	return scores
}

func (sm *StateManager) GetGamesPlayed() int {
	return len(sm.rounds)
}

// GetAverageScore returns the mean score, 0 with no rounds.
func (sm *StateManager) GetAverageScore() float64 {
	if len(sm.rounds) == 0 {
		return 0
	}
	total := 0
	for _, r := range sm.rounds {
		total += r.Score
	}
	return float64(total) / float64(len(sm.rounds))
}

// GetMedianScore returns the median score, 0 with no rounds.
func (sm *StateManager) GetMedianScore() float64 {
	if len(sm.rounds) == 0 {
		return 0
	}
	scores := sm.GetScoreHistory()
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

// GetAverageDuration returns the mean round length in seconds.
func (sm *StateManager) GetAverageDuration() float64 {
	if len(sm.rounds) == 0 {
		return 0
	}
	var total time.Duration
	for _, r := range sm.rounds {
		total += r.Duration()
	}
	return total.Seconds() / float64(len(sm.rounds))
}
