package statement

// validityVoteKind tags the three ways a validator can vote on a
// candidate's validity. Issued is an implicit vote produced as a side
// effect of proposing; it is never carried on the wire as its own
// statement.
type validityVoteKind uint8

const (
	voteIssued validityVoteKind = iota
	voteValid
	voteInvalid
)

func (k validityVoteKind) String() string {
	switch k {
	case voteIssued:
		return "Issued"
	case voteValid:
		return "Valid"
	case voteInvalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// validityVote is the internal record of one validator's stance on one
// candidate's validity, together with the signature proving it.
type validityVote[S comparable] struct {
	kind validityVoteKind
	sig  S
}

// statementFromVote reconstructs the explicit signed statement a validity
// vote corresponds to, for use as misbehavior or unknown-digest evidence. It
// must never be called with an Issued vote: an implicit issuance vote has no
// corresponding explicit wire statement, and every code path that could
// produce one is guarded upstream by a membership check performed at
// candidate-import time.
func statementFromVote[C any, D comparable, S comparable](digest D, vote validityVote[S]) Statement[C, D] {
	switch vote.kind {
	case voteValid:
		return NewValidStatement[C, D](digest)
	case voteInvalid:
		return NewInvalidStatement[C, D](digest)
	default:
		panic("statement: cannot reconstruct an explicit statement from an implicit issuance vote")
	}
}

// signatureForKind returns the signature carried by whichever of a, b has
// the given kind, and whether either of them did. Used to classify an
// unordered pair of conflicting votes without caring which argument held
// which kind.
func signatureForKind[S comparable](a, b validityVote[S], kind validityVoteKind) (S, bool) {
	if a.kind == kind {
		return a.sig, true
	}
	if b.kind == kind {
		return b.sig, true
	}
	var zero S
	return zero, false
}
