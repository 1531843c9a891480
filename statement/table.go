package statement

import (
	"sort"

	"github.com/luxfi/log"

	"github.com/NomismaTech/polkadot/internal/idset"
)

// proposedEntry records, for one validator, the digest and signature of the
// single candidate it has proposed this round.
type proposedEntry[D comparable, S comparable] struct {
	digest    D
	signature S
}

// Table is the top-level statement table: the unique in-memory value owned
// by one round of consensus. It coordinates three maps (which candidate
// each validator proposed, the vote record for each candidate digest, and
// the latest misbehavior proof against each validator) behind a single
// entry point, ImportStatement.
//
// Table is not safe for concurrent use; callers sharing one Table across
// goroutines must serialize access externally. Every operation runs to
// completion in bounded time: there is no blocking, no cancellation, and no
// buffering.
type Table[V comparable, G Ordered[G], C Ordered[C], D comparable, S comparable] struct {
	proposed    map[V]proposedEntry[D, S]
	records     map[D]*CandidateRecord[V, G, C, S]
	misbehavior map[V]Misbehavior[C, D, S]

	log             log.Logger
	metrics         *tableMetrics
	onUnknownDigest func(SignedStatement[C, D, S])
}

// NewTable creates an empty statement table, ready for one round of
// consensus.
func NewTable[V comparable, G Ordered[G], C Ordered[C], D comparable, S comparable](opts ...Option[V, G, C, D, S]) (*Table[V, G, C, D, S], error) {
	t := &Table[V, G, C, D, S]{
		proposed:    make(map[V]proposedEntry[D, S]),
		records:     make(map[D]*CandidateRecord[V, G, C, S]),
		misbehavior: make(map[V]Misbehavior[C, D, S]),
		log:         log.NewNoOpLogger(),
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// ImportStatement is the table's single entry point. It recovers the
// statement's signer, dispatches on statement kind to the matching
// handler, and, if the handler reports misbehavior, overwrites
// misbehavior[signer] with the new proof (punishments are not cumulative:
// one open slashing claim per validator suffices).
//
// A statement whose signer cannot be recovered is silently dropped: this is
// indistinguishable from dropped-packet noise and is not itself
// misbehavior, since a byzantine sender can forge an unverifiable signature
// for free.
func (t *Table[V, G, C, D, S]) ImportStatement(env Environment[V, G, C, D, S], signed SignedStatement[C, D, S]) {
	signer, ok := env.StatementSigner(signed)
	if !ok {
		t.recordDrop("unknown_signer")
		t.log.Debug("statement dropped: signer did not recover")
		return
	}

	var misbehavior *Misbehavior[C, D, S]
	var dropped bool
	kind := signed.Statement.Kind()
	switch kind {
	case StatementCandidate:
		candidate, _ := signed.Statement.Candidate()
		misbehavior = t.importCandidate(env, signer, candidate, signed.Signature)
	case StatementValid:
		digest, _ := signed.Statement.Digest()
		misbehavior, dropped = t.validityVote(env, signer, digest, validityVote[S]{kind: voteValid, sig: signed.Signature})
	case StatementInvalid:
		digest, _ := signed.Statement.Digest()
		misbehavior, dropped = t.validityVote(env, signer, digest, validityVote[S]{kind: voteInvalid, sig: signed.Signature})
	case StatementAvailable:
		digest, _ := signed.Statement.Digest()
		misbehavior, dropped = t.availabilityVote(env, signer, digest, signed.Signature)
	}
	if !dropped {
		t.recordImported(kind.String())
	}

	if misbehavior != nil {
		t.misbehavior[signer] = *misbehavior
		t.recordMisbehavior(misbehavior.Kind)
		t.log.Warn("misbehavior detected", "validator", signer, "kind", misbehavior.Kind.String())
	}
}

// importCandidate authorizes the proposer against its claimed group,
// detects a second distinct candidate proposed by the same validator this
// round, and otherwise creates the candidate's record (if this is its
// first proposer) before falling through to record the implicit Issued
// validity vote.
func (t *Table[V, G, C, D, S]) importCandidate(env Environment[V, G, C, D, S], from V, candidate C, signature S) *Misbehavior[C, D, S] {
	group := env.CandidateGroup(candidate)
	if !env.IsMemberOf(from, group) {
		return &Misbehavior[C, D, S]{
			Kind: MisbehaviorUnauthorizedStatement,
			UnauthorizedStatement: &UnauthorizedStatement[C, D, S]{
				Statement: SignedStatement[C, D, S]{
					Statement: NewCandidateStatement[C, D](candidate),
					Signature: signature,
				},
			},
		}
	}

	digest := env.CandidateDigest(candidate)

	if entry, ok := t.proposed[from]; ok {
		if entry.digest != digest {
			oldRecord, exists := t.records[entry.digest]
			if !exists {
				// A proposed digest always has a record.
				panic("statement: proposed digest has no candidate record")
			}
			return &Misbehavior[C, D, S]{
				Kind: MisbehaviorMultipleCandidates,
				MultipleCandidates: &MultipleCandidates[C, S]{
					First:  CandidateWithSig[C, S]{Candidate: oldRecord.Candidate, Signature: entry.signature},
					Second: CandidateWithSig[C, S]{Candidate: candidate, Signature: signature},
				},
			}
		}
		// Re-broadcast of the validator's own candidate: fall through to
		// the implicit vote below, which will be recognized as identical
		// and have no effect.
	} else {
		t.proposed[from] = proposedEntry[D, S]{digest: digest, signature: signature}
		if _, exists := t.records[digest]; !exists {
			t.records[digest] = newCandidateRecord[V, G, C, S](group, candidate)
		}
	}

	misbehavior, _ := t.validityVote(env, from, digest, validityVote[S]{kind: voteIssued, sig: signature})
	return misbehavior
}

// validityVote authorizes the voter against the record's group, then
// resolves any conflict against a previously stored vote. The first vote
// for a validator on a digest always wins; a conflicting later vote
// produces a misbehavior proof without mutating stored state, so a third
// conflicting vote deterministically reproduces the same proof. The second
// return value reports whether the vote was dropped for an unknown digest.
func (t *Table[V, G, C, D, S]) validityVote(env Environment[V, G, C, D, S], from V, digest D, vote validityVote[S]) (*Misbehavior[C, D, S], bool) {
	record, ok := t.records[digest]
	if !ok {
		t.dropUnknownDigest(statementFromVote[C, D](digest, vote), vote.sig)
		return nil, true
	}

	group := record.GroupID
	if !env.IsMemberOf(from, group) {
		if vote.kind == voteIssued {
			// Only reachable from importCandidate, which already checked
			// membership against the same group before creating the
			// record.
			panic("statement: implicit issuance vote from a non-member")
		}
		return &Misbehavior[C, D, S]{
			Kind: MisbehaviorUnauthorizedStatement,
			UnauthorizedStatement: &UnauthorizedStatement[C, D, S]{
				Statement: SignedStatement[C, D, S]{
					Statement: statementFromVote[C, D](digest, vote),
					Signature: vote.sig,
				},
			},
		}, false
	}

	existing, hasVote := record.validityVotes[from]
	if !hasVote {
		if vote.kind == voteInvalid {
			record.indicatedBadBy = append(record.indicatedBadBy, from)
		}
		record.validityVotes[from] = vote
		return nil, false
	}

	if existing.kind == vote.kind && existing.sig == vote.sig {
		return nil, false // idempotent re-vote
	}

	return validityDoubleVoteProof[C, D, S](record.Candidate, digest, existing, vote), false
}

// availabilityVote authorizes the voter as an availability guarantor of
// the record's group, then records or overwrites its vote. Re-votes are
// idempotent by construction (a plain map write). The second return value
// reports whether the vote was dropped for an unknown digest.
func (t *Table[V, G, C, D, S]) availabilityVote(env Environment[V, G, C, D, S], from V, digest D, signature S) (*Misbehavior[C, D, S], bool) {
	record, ok := t.records[digest]
	if !ok {
		t.dropUnknownDigest(NewAvailableStatement[C, D](digest), signature)
		return nil, true
	}

	if !env.IsAvailabilityGuarantorOf(from, record.GroupID) {
		return &Misbehavior[C, D, S]{
			Kind: MisbehaviorUnauthorizedStatement,
			UnauthorizedStatement: &UnauthorizedStatement[C, D, S]{
				Statement: SignedStatement[C, D, S]{
					Statement: NewAvailableStatement[C, D](digest),
					Signature: signature,
				},
			},
		}, false
	}

	record.availabilityVotes[from] = signature
	return nil, false
}

// dropUnknownDigest drops a Valid/Invalid/Available statement about a
// digest the table has never seen, with an optional hook invoked for a
// future queueing policy to hang off of.
func (t *Table[V, G, C, D, S]) dropUnknownDigest(statement Statement[C, D], signature S) {
	t.recordDrop("unknown_digest")
	t.log.Debug("statement dropped: unknown digest")
	if t.onUnknownDigest != nil {
		t.onUnknownDigest(SignedStatement[C, D, S]{
			Statement: statement,
			Signature: signature,
		})
	}
}

// ProposedCandidates returns at most one candidate per group: among
// includable records sharing a group, the one with the maximum
// candidate under the candidate ordering, emitted in ascending GroupID
// order. For non-conflicting statements the result depends only on the set
// imported so far, not on their arrival order; when one validator casts
// conflicting validity votes, its first vote is the one that counts.
func (t *Table[V, G, C, D, S]) ProposedCandidates(env Environment[V, G, C, D, S]) []C {
	bestByGroup := make(map[G]C)
	haveGroup := make(map[G]bool)
	includable := 0

	for _, record := range t.records {
		validityThreshold, availabilityThreshold := env.RequisiteVotes(record.GroupID)
		if !record.CanBeIncluded(validityThreshold, availabilityThreshold) {
			continue
		}
		includable++

		if current, seen := bestByGroup[record.GroupID]; !seen || current.Less(record.Candidate) {
			bestByGroup[record.GroupID] = record.Candidate
		}
		haveGroup[record.GroupID] = true
	}

	if t.metrics != nil {
		t.metrics.includable.Set(float64(includable))
	}

	groups := make([]G, 0, len(haveGroup))
	for g := range haveGroup {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Less(groups[j]) })

	out := make([]C, 0, len(groups))
	for _, g := range groups {
		out = append(out, bestByGroup[g])
	}
	return out
}

// CandidatesInGroup returns every candidate record currently tracked for
// group, for inspection. It returns a snapshot slice rather than a lazy
// iterator, since the table is neither safe for concurrent mutation during
// iteration nor large enough to warrant streaming.
func (t *Table[V, G, C, D, S]) CandidatesInGroup(group G) []*CandidateRecord[V, G, C, S] {
	out := make([]*CandidateRecord[V, G, C, S], 0)
	for _, record := range t.records {
		if record.GroupID == group {
			out = append(out, record)
		}
	}
	return out
}

// DrainMisbehavior atomically takes and returns the accumulated
// misbehavior proofs, replacing the table's internal map with an empty one.
// Callers route the result to the slashing pipeline.
func (t *Table[V, G, C, D, S]) DrainMisbehavior() map[V]Misbehavior[C, D, S] {
	drained := t.misbehavior
	t.misbehavior = make(map[V]Misbehavior[C, D, S])
	return drained
}

// MisbehavingValidators returns the validators with a currently open
// misbehavior claim, without draining it. This lets the consensus layer
// react to misbehavior (e.g. excluding a validator from new
// responsibilities) before the slashing pipeline runs a DrainMisbehavior
// pass.
func (t *Table[V, G, C, D, S]) MisbehavingValidators() []V {
	validators := idset.Of[V]()
	for v := range t.misbehavior {
		validators.Add(v)
	}
	return validators.List()
}

func (t *Table[V, G, C, D, S]) recordImported(kind string) {
	if t.metrics != nil {
		t.metrics.imported.WithLabelValues(kind).Inc()
	}
}

func (t *Table[V, G, C, D, S]) recordDrop(reason string) {
	if t.metrics != nil {
		t.metrics.dropped.WithLabelValues(reason).Inc()
	}
}

func (t *Table[V, G, C, D, S]) recordMisbehavior(kind MisbehaviorKind) {
	if t.metrics != nil {
		t.metrics.misbehaved.WithLabelValues(kind.String()).Inc()
	}
}
