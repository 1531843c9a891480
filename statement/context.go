package statement

// Ordered constrains an opaque type supplied by the Environment to be both
// equatable (so it can be used as a map key and compared with ==) and
// totally ordered (so output, such as proposed-candidate selection, is
// deterministic). The statement table never needs to know anything else
// about GroupID or Candidate.
type Ordered[T any] interface {
	comparable
	// Less reports whether the receiver sorts before other. It must
	// implement a strict total order over the type's values.
	Less(other T) bool
}

// Environment is the capability object the consensus layer injects into
// every Table operation. It is not owned by the table: the table holds no
// reference to it between calls. All six operations are assumed pure and
// infallible with respect to the table, with the single exception of
// StatementSigner, which may report that a signature does not recover to
// any validator.
//
// Type parameters:
//
//	V - ValidatorID: validator identity.
//	G - GroupID: a parachain's validator group, orderable for deterministic
//	    proposal output.
//	C - Candidate: a proposed parachain block, orderable for tie-break
//	    selection among otherwise-includable candidates in the same group.
//	D - Digest: a candidate's content-addressable name.
//	S - Signature: opaque cryptographic evidence.
type Environment[V comparable, G Ordered[G], C Ordered[C], D comparable, S comparable] interface {
	// CandidateDigest returns the deterministic content address of candidate.
	CandidateDigest(candidate C) D

	// CandidateGroup returns the parachain group a candidate targets.
	CandidateGroup(candidate C) G

	// IsMemberOf reports whether validator may propose candidates and vote
	// on validity within group.
	IsMemberOf(validator V, group G) bool

	// IsAvailabilityGuarantorOf reports whether validator may vote on
	// availability of candidates submitted within group. This is orthogonal
	// to IsMemberOf: a validator may guarantor availability for a group it
	// is not a proposer/validity-voter of, and vice versa.
	IsAvailabilityGuarantorOf(validator V, group G) bool

	// StatementSigner recovers the signer of a signed statement. It reports
	// false if the signature does not verify against any known validator;
	// the table silently drops such statements rather than treating them as
	// misbehavior, since a byzantine sender can forge garbage cheaply.
	StatementSigner(signed SignedStatement[C, D, S]) (validator V, ok bool)

	// RequisiteVotes returns the inclusive lower bounds, for the given
	// group, of validity votes and availability votes respectively that a
	// candidate needs to be proposal-eligible.
	RequisiteVotes(group G) (validityThreshold, availabilityThreshold int)
}
