// Package statement implements the parachain statement table: a
// deterministic, single-threaded accounting engine that ingests signed
// attestations from validators about parachain candidates and produces the
// set of candidates eligible for inclusion in a consensus proposal, plus a
// ledger of cryptographically provable validator misbehavior.
//
// The table owns no transport, no persistence, and no signing key; it treats
// validator identities, candidates, digests, and signatures as opaque values
// supplied by an injected Environment (see context.go). A Table is created
// empty at the start of one round of consensus, mutated only through
// ImportStatement, observed through ProposedCandidates and
// CandidatesInGroup, and discarded at the end of the round; DrainMisbehavior
// returns the accumulated misbehavior proofs and clears them.
package statement
