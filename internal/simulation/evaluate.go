// Package simulation evaluates the mock collaboration task over the current
// agent set and delivers the result after a presentational delay.
package simulation

import (
	"errors"
	"fmt"
)

// MinAgents is the smallest agent count able to collaborate.
const MinAgents = 2

// SystemStable is the system state reported by every successful collaboration.
const SystemStable = "Stable"

// ErrInsufficientAgents is returned by Result.Err when fewer than MinAgents took part.
var ErrInsufficientAgents = errors.New("collaboration requires at least two agents")

// Outcome is the verdict of a collaboration.
type Outcome int

const (
	Failure Outcome = iota
	Success
)

func (o Outcome) String() string {
	if o == Success {
		return "success"
	}
	return "failure"
}

// Result is the evaluated collaboration.
type Result struct {
	Outcome    Outcome
	AgentCount int
	// Coefficient is the ontological coefficient, the rank sum of the
	// collaborating agents. Zero on failure.
	Coefficient int
	State       string
	Detail      string
}

// Succeeded reports whether the collaboration succeeded.
func (r Result) Succeeded() bool { return r.Outcome == Success }

// Err returns ErrInsufficientAgents for a failed collaboration.
func (r Result) Err() error {
	if r.Succeeded() {
		return nil
	}
	return ErrInsufficientAgents
}

// DetailFunc renders the human-readable detail of a result.
type DetailFunc func(r Result) string

// DefaultDetail renders English details without any catalog.
func DefaultDetail(r Result) string {
	if r.Succeeded() {
		return fmt.Sprintf("Collaborative task succeeded. Rank sum = %d.", r.Coefficient)
	}
	return fmt.Sprintf("Failure. At least %d agents are required for collaboration.", MinAgents)
}

// Evaluate decides the collaboration for agentCount agents whose ranks sum to totalRank.
func Evaluate(agentCount, totalRank int) Result {
	return evaluate(agentCount, totalRank, DefaultDetail)
}

func evaluate(agentCount, totalRank int, detail DetailFunc) Result {
	var r Result
	if agentCount < MinAgents {
		r = Result{Outcome: Failure, AgentCount: agentCount}
	} else {
		r = Result{
			Outcome:     Success,
			AgentCount:  agentCount,
			Coefficient: totalRank,
			State:       SystemStable,
		}
	}
	r.Detail = detail(r)
	return r
}
