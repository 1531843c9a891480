package statement

// CandidateRecord is the per-digest aggregate of everything the table knows
// about one candidate: the group it was proposed into, the candidate body
// itself, every validator's validity and availability votes, and who has
// called it bad. Group and candidate are fixed at creation: GroupID always
// equals Environment.CandidateGroup(Candidate).
type CandidateRecord[V comparable, G Ordered[G], C Ordered[C], S comparable] struct {
	GroupID   G
	Candidate C

	validityVotes     map[V]validityVote[S]
	availabilityVotes map[V]S
	indicatedBadBy    []V
}

func newCandidateRecord[V comparable, G Ordered[G], C Ordered[C], S comparable](group G, candidate C) *CandidateRecord[V, G, C, S] {
	return &CandidateRecord[V, G, C, S]{
		GroupID:           group,
		Candidate:         candidate,
		validityVotes:     make(map[V]validityVote[S]),
		availabilityVotes: make(map[V]S),
	}
}

// IndicatedBad reports whether any validator has voted this candidate
// Invalid.
func (r *CandidateRecord[V, G, C, S]) IndicatedBad() bool {
	return len(r.indicatedBadBy) > 0
}

// IndicatedBadBy returns the validators who voted this candidate Invalid,
// in the order their votes arrived.
func (r *CandidateRecord[V, G, C, S]) IndicatedBadBy() []V {
	out := make([]V, len(r.indicatedBadBy))
	copy(out, r.indicatedBadBy)
	return out
}

// VotedValidBy returns the validators whose stored validity vote is Issued
// or Valid (i.e. every validator who has not called the candidate bad), as
// a bounded slice rather than a lazy iterator.
func (r *CandidateRecord[V, G, C, S]) VotedValidBy() []V {
	out := make([]V, 0, len(r.validityVotes))
	for v, vote := range r.validityVotes {
		if vote.kind == voteIssued || vote.kind == voteValid {
			out = append(out, v)
		}
	}
	return out
}

// ValidityVoteCount returns the number of validators with a recorded
// validity vote, including Invalid votes (see CanBeIncluded).
func (r *CandidateRecord[V, G, C, S]) ValidityVoteCount() int {
	return len(r.validityVotes)
}

// AvailabilityVoteCount returns the number of validators with a recorded
// availability vote.
func (r *CandidateRecord[V, G, C, S]) AvailabilityVoteCount() int {
	return len(r.availabilityVotes)
}

// CanBeIncluded reports whether this record meets the inclusion thresholds:
// no Invalid votes, at least validityThreshold total validity votes
// (Issued, Valid, and Invalid all count toward the total; any Invalid vote
// also populates indicatedBadBy, so the IndicatedBad check subsumes it), and
// at least availabilityThreshold availability votes.
func (r *CandidateRecord[V, G, C, S]) CanBeIncluded(validityThreshold, availabilityThreshold int) bool {
	return !r.IndicatedBad() &&
		len(r.validityVotes) >= validityThreshold &&
		len(r.availabilityVotes) >= availabilityThreshold
}
