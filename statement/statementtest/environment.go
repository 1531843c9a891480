// Package statementtest provides test doubles for statement.Environment: a
// configurable double built from override functions and "Cant" misuse
// flags (see Environment below), plus a ready concrete instantiation (see
// Fixture) for tests that just need a working environment rather than fine
// control over every call.
package statementtest

import (
	"testing"

	"github.com/NomismaTech/polkadot/statement"
)

// Environment is a configurable statement.Environment double. Each method
// may be overridden by setting the matching *F function field; if left nil
// and the matching CantX flag is set, the call fails the test via T.Fatal
// instead of panicking with a nil-pointer dereference, so an unexpected call
// during development surfaces as a clear test failure. If neither is set,
// the method returns its zero value.
type Environment[V comparable, G statement.Ordered[G], C statement.Ordered[C], D comparable, S comparable] struct {
	T *testing.T

	CantCandidateDigest           bool
	CantCandidateGroup            bool
	CantIsMemberOf                bool
	CantIsAvailabilityGuarantorOf bool
	CantStatementSigner           bool
	CantRequisiteVotes            bool

	CandidateDigestF           func(candidate C) D
	CandidateGroupF            func(candidate C) G
	IsMemberOfF                func(validator V, group G) bool
	IsAvailabilityGuarantorOfF func(validator V, group G) bool
	StatementSignerF           func(signed statement.SignedStatement[C, D, S]) (V, bool)
	RequisiteVotesF            func(group G) (int, int)
}

func (e *Environment[V, G, C, D, S]) CandidateDigest(candidate C) D {
	if e.CandidateDigestF != nil {
		return e.CandidateDigestF(candidate)
	}
	if e.CantCandidateDigest && e.T != nil {
		e.T.Fatal("unexpected CandidateDigest")
	}
	var zero D
	return zero
}

func (e *Environment[V, G, C, D, S]) CandidateGroup(candidate C) G {
	if e.CandidateGroupF != nil {
		return e.CandidateGroupF(candidate)
	}
	if e.CantCandidateGroup && e.T != nil {
		e.T.Fatal("unexpected CandidateGroup")
	}
	var zero G
	return zero
}

func (e *Environment[V, G, C, D, S]) IsMemberOf(validator V, group G) bool {
	if e.IsMemberOfF != nil {
		return e.IsMemberOfF(validator, group)
	}
	if e.CantIsMemberOf && e.T != nil {
		e.T.Fatal("unexpected IsMemberOf")
	}
	return false
}

func (e *Environment[V, G, C, D, S]) IsAvailabilityGuarantorOf(validator V, group G) bool {
	if e.IsAvailabilityGuarantorOfF != nil {
		return e.IsAvailabilityGuarantorOfF(validator, group)
	}
	if e.CantIsAvailabilityGuarantorOf && e.T != nil {
		e.T.Fatal("unexpected IsAvailabilityGuarantorOf")
	}
	return false
}

func (e *Environment[V, G, C, D, S]) StatementSigner(signed statement.SignedStatement[C, D, S]) (V, bool) {
	if e.StatementSignerF != nil {
		return e.StatementSignerF(signed)
	}
	if e.CantStatementSigner && e.T != nil {
		e.T.Fatal("unexpected StatementSigner")
	}
	var zero V
	return zero, false
}

func (e *Environment[V, G, C, D, S]) RequisiteVotes(group G) (int, int) {
	if e.RequisiteVotesF != nil {
		return e.RequisiteVotesF(group)
	}
	if e.CantRequisiteVotes && e.T != nil {
		e.T.Fatal("unexpected RequisiteVotes")
	}
	return 0, 0
}
