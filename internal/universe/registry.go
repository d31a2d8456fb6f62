// Package universe holds the agent-admission state machine: the registry of
// admitted agents, its proposal counters, and the metrics derived from them.
package universe

import (
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Agent is an admitted member of the universe.
type Agent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Rank int    `json:"rank"`
}

// Snapshot is a point-in-time copy of the registry state.
type Snapshot struct {
	Agents            []Agent
	TotalProposals    int
	AcceptedProposals int
}

// Registry owns the admitted agents and the proposal counters.
// All mutations are serialized, so proposals never interleave.
type Registry struct {
	mu       sync.Mutex
	agents   []Agent
	total    int
	accepted int

	newID    func() string
	messages MessageFunc
	logger   *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(gen func() string) Option {
	return func(r *Registry) {
		if gen != nil {
			r.newID = gen
		}
	}
}

// WithMessages sets the function rendering outcome messages.
func WithMessages(fn MessageFunc) Option {
	return func(r *Registry) {
		if fn != nil {
			r.messages = fn
		}
	}
}

// WithLogger sets the logger used to trace proposals.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		newID:    uuid.NewString,
		messages: DefaultMessages,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Propose evaluates a proposal and admits the agent if every rule passes.
// The proposal counter is incremented exactly once, whatever the outcome.
func (r *Registry) Propose(name string, rank int) Outcome {
	// Primality is pure and can take seconds near math.MaxInt, so it is
	// decided before taking the lock.
	prime := IsPrime(rank)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.total++
	return r.evaluate(name, rank, prime)
}

// ProposeText is Propose for ranks that arrive as text. Text that does not
// parse as an integer still counts as a proposal and is rejected.
func (r *Registry) ProposeText(name, rank string) Outcome {
	n, err := strconv.Atoi(strings.TrimSpace(rank))
	prime := err == nil && IsPrime(n)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.total++
	if err != nil {
		return r.reject(ReasonInvalidRank, name, rank)
	}
	return r.evaluate(name, n, prime)
}

// evaluate applies the admission rules in order; prime is IsPrime(rank).
// Caller holds r.mu.
func (r *Registry) evaluate(name string, rank int, prime bool) Outcome {
	rankText := strconv.Itoa(rank)

	if strings.TrimSpace(name) == "" {
		return r.reject(ReasonEmptyName, name, rankText)
	}

	for _, a := range r.agents {
		if strings.EqualFold(a.Name, name) {
			return r.reject(ReasonDuplicateName, name, rankText)
		}
	}

	for _, a := range r.agents {
		if a.Rank == rank {
			return r.reject(ReasonDuplicateRank, name, rankText)
		}
	}

	if !prime {
		return r.reject(ReasonNotPrime, name, rankText)
	}

	agent := Agent{ID: r.newID(), Name: name, Rank: rank}
	r.agents = append(r.agents, agent)
	r.accepted++

	r.logger.Debug("agent admitted",
		zap.String("id", agent.ID),
		zap.String("name", name),
		zap.Int("rank", rank),
		zap.Int("total_proposals", r.total),
		zap.Int("accepted_proposals", r.accepted))

	return Outcome{
		Success:           true,
		Reason:            ReasonAccepted,
		Message:           r.messages(ReasonAccepted, name, rankText),
		Agent:             &agent,
		TotalProposals:    r.total,
		AcceptedProposals: r.accepted,
	}
}

func (r *Registry) reject(reason Reason, name, rank string) Outcome {
	r.logger.Debug("proposal rejected",
		zap.Stringer("reason", reason),
		zap.String("name", name),
		zap.String("rank", rank),
		zap.Int("total_proposals", r.total))

	return Outcome{
		Success:           false,
		Reason:            reason,
		Message:           r.messages(reason, name, rank),
		TotalProposals:    r.total,
		AcceptedProposals: r.accepted,
	}
}

// Remove deletes the agent with the given id and reports whether one was found.
// Counters are never touched; removing an unknown id is a no-op.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, a := range r.agents {
		if a.ID == id {
			r.agents = append(r.agents[:i:i], r.agents[i+1:]...)
			r.logger.Debug("agent removed", zap.String("id", id), zap.String("name", a.Name))
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the current state.
func (r *Registry) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	agents := make([]Agent, len(r.agents))
	copy(agents, r.agents)
	return Snapshot{
		Agents:            agents,
		TotalProposals:    r.total,
		AcceptedProposals: r.accepted,
	}
}

// Find returns the agent with the given id.
func (s Snapshot) Find(id string) (Agent, bool) {
	for _, a := range s.Agents {
		if a.ID == id {
			return a, true
		}
	}
	return Agent{}, false
}
