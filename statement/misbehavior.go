package statement

// MisbehaviorKind tags which of the three misbehavior variants a
// Misbehavior value holds.
type MisbehaviorKind uint8

const (
	// MisbehaviorValidityDoubleVote: the validator voted more than one way
	// on a single candidate's validity.
	MisbehaviorValidityDoubleVote MisbehaviorKind = iota
	// MisbehaviorMultipleCandidates: the validator proposed two distinct
	// candidates in the same round.
	MisbehaviorMultipleCandidates
	// MisbehaviorUnauthorizedStatement: the validator submitted a
	// statement it had no authority to make.
	MisbehaviorUnauthorizedStatement
)

func (k MisbehaviorKind) String() string {
	switch k {
	case MisbehaviorValidityDoubleVote:
		return "ValidityDoubleVote"
	case MisbehaviorMultipleCandidates:
		return "MultipleCandidates"
	case MisbehaviorUnauthorizedStatement:
		return "UnauthorizedStatement"
	default:
		return "Unknown"
	}
}

// DoubleVoteKind tags which pair of conflicting validity votes a
// ValidityDoubleVote proof carries evidence for.
type DoubleVoteKind uint8

const (
	// IssuedAndValidity: the validator implicitly voted valid by
	// proposing, then explicitly voted Valid on the same digest.
	IssuedAndValidity DoubleVoteKind = iota
	// IssuedAndInvalidity: the validator implicitly voted valid by
	// proposing, then explicitly voted Invalid on the same digest.
	IssuedAndInvalidity
	// ValidityAndInvalidity: the validator explicitly voted both Valid and
	// Invalid on the same digest.
	ValidityAndInvalidity
)

func (k DoubleVoteKind) String() string {
	switch k {
	case IssuedAndValidity:
		return "IssuedAndValidity"
	case IssuedAndInvalidity:
		return "IssuedAndInvalidity"
	case ValidityAndInvalidity:
		return "ValidityAndInvalidity"
	default:
		return "Unknown"
	}
}

// IssuedAndValidityEvidence carries both conflicting votes for an
// IssuedAndValidity proof: the candidate and signature that produced the
// implicit Issued vote (so a verifier can reproduce it without table
// state), and the digest and signature of the explicit Valid vote.
type IssuedAndValidityEvidence[C any, D comparable, S comparable] struct {
	Candidate C
	IssuedSig S
	Digest    D
	ValidSig  S
}

// IssuedAndInvalidityEvidence is the Invalid-vote counterpart of
// IssuedAndValidityEvidence.
type IssuedAndInvalidityEvidence[C any, D comparable, S comparable] struct {
	Candidate  C
	IssuedSig  S
	Digest     D
	InvalidSig S
}

// ValidityAndInvalidityEvidence carries both explicit, directly conflicting
// votes on one digest.
type ValidityAndInvalidityEvidence[D comparable, S comparable] struct {
	Digest     D
	ValidSig   S
	InvalidSig S
}

// ValidityDoubleVote is the misbehavior proof for a validator who voted more
// than one way on a single candidate's validity. Exactly one of the three
// evidence fields is set, per Kind.
type ValidityDoubleVote[C any, D comparable, S comparable] struct {
	Kind                  DoubleVoteKind
	IssuedAndValidity     *IssuedAndValidityEvidence[C, D, S]
	IssuedAndInvalidity   *IssuedAndInvalidityEvidence[C, D, S]
	ValidityAndInvalidity *ValidityAndInvalidityEvidence[D, S]
}

// CandidateWithSig pairs a candidate body with the signature a validator
// used to propose it; it is the unit of evidence for MultipleCandidates.
type CandidateWithSig[C any, S comparable] struct {
	Candidate C
	Signature S
}

// MultipleCandidates is the misbehavior proof for a validator who proposed
// two distinct candidates within one round. Both candidate bodies are
// carried so an independent verifier can check the claim without table
// state.
type MultipleCandidates[C any, S comparable] struct {
	First  CandidateWithSig[C, S]
	Second CandidateWithSig[C, S]
}

// UnauthorizedStatement is the misbehavior proof for a validator who
// submitted a statement without the authority to make it (wrong group, or
// not an availability guarantor). It carries the offending signed statement
// verbatim.
type UnauthorizedStatement[C any, D comparable, S comparable] struct {
	Statement SignedStatement[C, D, S]
}

// Misbehavior is a tagged union of the three kinds of cryptographically
// provable protocol violation the table can detect. Exactly one of the
// three payload fields is set, per Kind.
type Misbehavior[C any, D comparable, S comparable] struct {
	Kind                  MisbehaviorKind
	ValidityDoubleVote    *ValidityDoubleVote[C, D, S]
	MultipleCandidates    *MultipleCandidates[C, S]
	UnauthorizedStatement *UnauthorizedStatement[C, D, S]
}

// validityDoubleVoteProof classifies an unordered pair of conflicting
// validity votes on the same candidate and builds the matching evidence. It
// returns nil if the two votes are of the same kind (differing only in
// signature), which is not slashable here: signature malleability alone
// does not prove misbehavior.
func validityDoubleVoteProof[C any, D comparable, S comparable](candidate C, digest D, existing, incoming validityVote[S]) *Misbehavior[C, D, S] {
	issuedSig, hasIssued := signatureForKind(existing, incoming, voteIssued)
	validSig, hasValid := signatureForKind(existing, incoming, voteValid)
	invalidSig, hasInvalid := signatureForKind(existing, incoming, voteInvalid)

	switch {
	case hasIssued && hasValid && !hasInvalid:
		return &Misbehavior[C, D, S]{
			Kind: MisbehaviorValidityDoubleVote,
			ValidityDoubleVote: &ValidityDoubleVote[C, D, S]{
				Kind: IssuedAndValidity,
				IssuedAndValidity: &IssuedAndValidityEvidence[C, D, S]{
					Candidate: candidate,
					IssuedSig: issuedSig,
					Digest:    digest,
					ValidSig:  validSig,
				},
			},
		}
	case hasIssued && hasInvalid && !hasValid:
		return &Misbehavior[C, D, S]{
			Kind: MisbehaviorValidityDoubleVote,
			ValidityDoubleVote: &ValidityDoubleVote[C, D, S]{
				Kind: IssuedAndInvalidity,
				IssuedAndInvalidity: &IssuedAndInvalidityEvidence[C, D, S]{
					Candidate:  candidate,
					IssuedSig:  issuedSig,
					Digest:     digest,
					InvalidSig: invalidSig,
				},
			},
		}
	case hasValid && hasInvalid && !hasIssued:
		return &Misbehavior[C, D, S]{
			Kind: MisbehaviorValidityDoubleVote,
			ValidityDoubleVote: &ValidityDoubleVote[C, D, S]{
				Kind: ValidityAndInvalidity,
				ValidityAndInvalidity: &ValidityAndInvalidityEvidence[D, S]{
					Digest:     digest,
					ValidSig:   validSig,
					InvalidSig: invalidSig,
				},
			},
		}
	default:
		return nil
	}
}
