package universe

import (
	"errors"
	"fmt"
)

// Reason identifies why a proposal was accepted or rejected.
type Reason int

const (
	// ReasonAccepted means the agent was admitted.
	ReasonAccepted Reason = iota
	// ReasonEmptyName means the proposed name was blank.
	ReasonEmptyName
	// ReasonDuplicateName means another agent already uses the name (case-insensitive).
	ReasonDuplicateName
	// ReasonDuplicateRank means another agent already holds the rank.
	ReasonDuplicateRank
	// ReasonNotPrime means the rank is not a prime number.
	ReasonNotPrime
	// ReasonInvalidRank means the rank text could not be parsed as an integer.
	ReasonInvalidRank
)

// Rejection sentinels, one per rejection reason.
var (
	ErrEmptyName     = errors.New("agent name is empty")
	ErrDuplicateName = errors.New("agent name already exists")
	ErrDuplicateRank = errors.New("rank already taken")
	ErrNotPrime      = errors.New("rank is not prime")
	ErrInvalidRank   = errors.New("rank is not an integer")
)

var reasonKeys = map[Reason]string{
	ReasonAccepted:      "accepted",
	ReasonEmptyName:     "empty_name",
	ReasonDuplicateName: "duplicate_name",
	ReasonDuplicateRank: "duplicate_rank",
	ReasonNotPrime:      "not_prime",
	ReasonInvalidRank:   "invalid_rank",
}

// String returns the stable key of the reason, also used as the message catalog key.
func (r Reason) String() string {
	if key, ok := reasonKeys[r]; ok {
		return key
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

// Err returns the sentinel error for a rejection reason, or nil for ReasonAccepted.
func (r Reason) Err() error {
	switch r {
	case ReasonEmptyName:
		return ErrEmptyName
	case ReasonDuplicateName:
		return ErrDuplicateName
	case ReasonDuplicateRank:
		return ErrDuplicateRank
	case ReasonNotPrime:
		return ErrNotPrime
	case ReasonInvalidRank:
		return ErrInvalidRank
	default:
		return nil
	}
}

// Outcome is the result of a single proposal.
// Success is authoritative for control flow; Message is for display only.
type Outcome struct {
	Success bool
	Reason  Reason
	Message string
	// Agent is the admitted agent, nil on rejection.
	Agent *Agent
	// Counters right after this proposal, read under the same lock.
	TotalProposals    int
	AcceptedProposals int
}

// Err returns nil for an accepted proposal, otherwise the matching sentinel
// wrapped with the display message.
func (o Outcome) Err() error {
	err := o.Reason.Err()
	if err == nil || o.Success {
		return nil
	}
	return fmt.Errorf("%s: %w", o.Message, err)
}

// MessageFunc renders the display message for a proposal outcome.
// rank is passed as text so unparsable input can be echoed back verbatim.
type MessageFunc func(reason Reason, name, rank string) string

// DefaultMessages renders English messages without any catalog.
func DefaultMessages(reason Reason, name, rank string) string {
	switch reason {
	case ReasonAccepted:
		return fmt.Sprintf("Agent %s added successfully (rank %s).", name, rank)
	case ReasonEmptyName:
		return "Failure: an agent needs a non-empty name."
	case ReasonDuplicateName:
		return fmt.Sprintf("Failure: an agent named %q already exists in the universe.", name)
	case ReasonDuplicateRank:
		return fmt.Sprintf("Failure: rank %s is already assigned to another agent.", rank)
	case ReasonNotPrime:
		return fmt.Sprintf("Failure: rank %s is not a prime number.", rank)
	case ReasonInvalidRank:
		return fmt.Sprintf("Failure: %q is not a valid rank.", rank)
	default:
		return fmt.Sprintf("Failure: proposal for %q rejected.", name)
	}
}
