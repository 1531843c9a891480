package statementtest

import (
	"github.com/luxfi/ids"

	"github.com/NomismaTech/polkadot/statement"
)

// GroupID wraps ids.ID to give it the total order statement.Table requires
// of a GroupID, ordering lexically by string representation.
type GroupID struct {
	id ids.ID
}

// NewGroupID wraps id as a GroupID.
func NewGroupID(id ids.ID) GroupID {
	return GroupID{id: id}
}

func (g GroupID) Less(other GroupID) bool {
	return g.id.String() < other.id.String()
}

func (g GroupID) String() string {
	return g.id.String()
}

// Candidate is a minimal concrete candidate: the group it targets and an
// opaque body digest. Ordering is by group, then by body.
type Candidate struct {
	Group GroupID
	Body  ids.ID
}

func (c Candidate) Less(other Candidate) bool {
	if c.Group != other.Group {
		return c.Group.Less(other.Group)
	}
	return c.Body.String() < other.Body.String()
}

// Signature is a fixed-size opaque signature, comparable so it can be used
// as a map key and compared with ==, as statement.Table requires.
type Signature [32]byte

// signatureFor derives a deterministic, distinguishable signature for a
// (validator, nonce) pair. It is not a real signature scheme (Fixture's
// job is to exercise statement.Table's logic, not cryptography, which is
// explicitly out of this module's scope).
func signatureFor(validator ids.NodeID, nonce uint8) Signature {
	var sig Signature
	copy(sig[:], validator[:])
	sig[len(sig)-1] = nonce
	return sig
}

// thresholds is the per-group (validity, availability) requirement pair.
type thresholds struct {
	validity     int
	availability int
}

// Fixture is a concrete statement.Environment[ids.NodeID, GroupID,
// Candidate, ids.ID, Signature] for tests: a validator roster (who may
// propose/vote validity in which group, who may guarantee availability for
// which group), per-group vote thresholds, and a signature registry
// standing in for real signature verification.
type Fixture struct {
	proposerOf     map[ids.NodeID]GroupID
	availabilityOf map[ids.NodeID]GroupID
	thresholdOf    map[GroupID]thresholds
	defaultThresh  thresholds
	signers        map[Signature]ids.NodeID
}

// NewFixture returns an empty Fixture. Every group defaults to a
// (1, 1) validity/availability threshold until SetThresholds is called.
func NewFixture() *Fixture {
	return &Fixture{
		proposerOf:     make(map[ids.NodeID]GroupID),
		availabilityOf: make(map[ids.NodeID]GroupID),
		thresholdOf:    make(map[GroupID]thresholds),
		defaultThresh:  thresholds{validity: 1, availability: 1},
		signers:        make(map[Signature]ids.NodeID),
	}
}

// AddProposer makes validator a member (proposer and validity voter) of
// group.
func (f *Fixture) AddProposer(validator ids.NodeID, group GroupID) {
	f.proposerOf[validator] = group
}

// AddAvailabilityGuarantor makes validator an availability guarantor of
// group.
func (f *Fixture) AddAvailabilityGuarantor(validator ids.NodeID, group GroupID) {
	f.availabilityOf[validator] = group
}

// SetThresholds fixes the (validity, availability) requisite vote counts
// for group.
func (f *Fixture) SetThresholds(group GroupID, validity, availability int) {
	f.thresholdOf[group] = thresholds{validity: validity, availability: availability}
}

// SetDefaultThresholds fixes the requisite vote counts used for any group
// that SetThresholds has not been called for.
func (f *Fixture) SetDefaultThresholds(validity, availability int) {
	f.defaultThresh = thresholds{validity: validity, availability: availability}
}

// Sign mints a signature attributable to validator, distinguished by nonce
// so a test can give one validator several distinct valid signatures (e.g.
// to exercise the "same vote kind, different signature" non-slashable
// case).
func (f *Fixture) Sign(validator ids.NodeID, nonce uint8) Signature {
	sig := signatureFor(validator, nonce)
	f.signers[sig] = validator
	return sig
}

var _ statement.Environment[ids.NodeID, GroupID, Candidate, ids.ID, Signature] = (*Fixture)(nil)

func (f *Fixture) CandidateDigest(candidate Candidate) ids.ID {
	return candidate.Body
}

func (f *Fixture) CandidateGroup(candidate Candidate) GroupID {
	return candidate.Group
}

func (f *Fixture) IsMemberOf(validator ids.NodeID, group GroupID) bool {
	g, ok := f.proposerOf[validator]
	return ok && g == group
}

func (f *Fixture) IsAvailabilityGuarantorOf(validator ids.NodeID, group GroupID) bool {
	g, ok := f.availabilityOf[validator]
	return ok && g == group
}

func (f *Fixture) StatementSigner(signed statement.SignedStatement[Candidate, ids.ID, Signature]) (ids.NodeID, bool) {
	validator, ok := f.signers[signed.Signature]
	return validator, ok
}

func (f *Fixture) RequisiteVotes(group GroupID) (validityThreshold, availabilityThreshold int) {
	if t, ok := f.thresholdOf[group]; ok {
		return t.validity, t.availability
	}
	return f.defaultThresh.validity, f.defaultThresh.availability
}
