// Package statementmock provides a call-recording decorator around a
// statement.Environment: wrap a real implementation, count calls per
// method, and let a test assert on the counts afterward instead of wiring
// bespoke instrumentation into each Environment double.
package statementmock

import (
	"sync"

	"github.com/NomismaTech/polkadot/statement"
)

// CallRecorder wraps an Environment and counts calls made to each of its
// methods. It is itself an Environment, so it can be passed anywhere the
// wrapped value could be.
type CallRecorder[V comparable, G statement.Ordered[G], C statement.Ordered[C], D comparable, S comparable] struct {
	env statement.Environment[V, G, C, D, S]

	mu     sync.Mutex
	counts map[string]int
}

// NewCallRecorder wraps env.
func NewCallRecorder[V comparable, G statement.Ordered[G], C statement.Ordered[C], D comparable, S comparable](env statement.Environment[V, G, C, D, S]) *CallRecorder[V, G, C, D, S] {
	return &CallRecorder[V, G, C, D, S]{
		env:    env,
		counts: make(map[string]int),
	}
}

func (r *CallRecorder[V, G, C, D, S]) record(method string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[method]++
}

// Calls returns the number of times method was invoked.
func (r *CallRecorder[V, G, C, D, S]) Calls(method string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[method]
}

const (
	MethodCandidateDigest           = "CandidateDigest"
	MethodCandidateGroup            = "CandidateGroup"
	MethodIsMemberOf                = "IsMemberOf"
	MethodIsAvailabilityGuarantorOf = "IsAvailabilityGuarantorOf"
	MethodStatementSigner           = "StatementSigner"
	MethodRequisiteVotes            = "RequisiteVotes"
)

func (r *CallRecorder[V, G, C, D, S]) CandidateDigest(candidate C) D {
	r.record(MethodCandidateDigest)
	return r.env.CandidateDigest(candidate)
}

func (r *CallRecorder[V, G, C, D, S]) CandidateGroup(candidate C) G {
	r.record(MethodCandidateGroup)
	return r.env.CandidateGroup(candidate)
}

func (r *CallRecorder[V, G, C, D, S]) IsMemberOf(validator V, group G) bool {
	r.record(MethodIsMemberOf)
	return r.env.IsMemberOf(validator, group)
}

func (r *CallRecorder[V, G, C, D, S]) IsAvailabilityGuarantorOf(validator V, group G) bool {
	r.record(MethodIsAvailabilityGuarantorOf)
	return r.env.IsAvailabilityGuarantorOf(validator, group)
}

func (r *CallRecorder[V, G, C, D, S]) StatementSigner(signed statement.SignedStatement[C, D, S]) (V, bool) {
	r.record(MethodStatementSigner)
	return r.env.StatementSigner(signed)
}

func (r *CallRecorder[V, G, C, D, S]) RequisiteVotes(group G) (int, int) {
	r.record(MethodRequisiteVotes)
	return r.env.RequisiteVotes(group)
}
