package statement_test

import (
	"testing"

	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"

	"github.com/NomismaTech/polkadot/statement"
	"github.com/NomismaTech/polkadot/statement/statementtest"
)

func TestCandidateRecord_IndicatedBadAndVotedValidBy(t *testing.T) {
	env := statementtest.NewFixture()
	table := newTable(t)

	group := statementtest.NewGroupID(ids.GenerateTestID())
	alice := ids.GenerateTestNodeID()
	bob := ids.GenerateTestNodeID()
	carol := ids.GenerateTestNodeID()
	env.AddProposer(alice, group)
	env.AddProposer(bob, group)
	env.AddProposer(carol, group)

	candidate := statementtest.Candidate{Group: group, Body: ids.GenerateTestID()}
	digest := env.CandidateDigest(candidate)
	table.ImportStatement(env, statement.SignedStatement[statementtest.Candidate, ids.ID, statementtest.Signature]{
		Statement: statement.NewCandidateStatement[statementtest.Candidate, ids.ID](candidate),
		Signature: env.Sign(alice, 0),
	})
	table.ImportStatement(env, statement.SignedStatement[statementtest.Candidate, ids.ID, statementtest.Signature]{
		Statement: statement.NewValidStatement[statementtest.Candidate](digest),
		Signature: env.Sign(bob, 0),
	})
	table.ImportStatement(env, statement.SignedStatement[statementtest.Candidate, ids.ID, statementtest.Signature]{
		Statement: statement.NewInvalidStatement[statementtest.Candidate](digest),
		Signature: env.Sign(carol, 0),
	})

	records := table.CandidatesInGroup(group)
	require.Len(t, records, 1)
	record := records[0]

	require.True(t, record.IndicatedBad())
	require.ElementsMatch(t, []ids.NodeID{carol}, record.IndicatedBadBy())
	require.ElementsMatch(t, []ids.NodeID{alice, bob}, record.VotedValidBy())
	require.Equal(t, 3, record.ValidityVoteCount())
	require.False(t, record.CanBeIncluded(1, 0))
}

func TestProposedCandidates_TieBreakPicksGreaterCandidate(t *testing.T) {
	env := statementtest.NewFixture()
	table := newTable(t)

	group := statementtest.NewGroupID(ids.GenerateTestID())
	alice := ids.GenerateTestNodeID()
	bob := ids.GenerateTestNodeID()
	env.AddProposer(alice, group)
	env.AddProposer(bob, group)
	env.SetThresholds(group, 1, 0)

	a := statementtest.Candidate{Group: group, Body: ids.GenerateTestID()}
	b := statementtest.Candidate{Group: group, Body: ids.GenerateTestID()}

	table.ImportStatement(env, statement.SignedStatement[statementtest.Candidate, ids.ID, statementtest.Signature]{
		Statement: statement.NewCandidateStatement[statementtest.Candidate, ids.ID](a),
		Signature: env.Sign(alice, 0),
	})
	table.ImportStatement(env, statement.SignedStatement[statementtest.Candidate, ids.ID, statementtest.Signature]{
		Statement: statement.NewCandidateStatement[statementtest.Candidate, ids.ID](b),
		Signature: env.Sign(bob, 0),
	})

	proposed := table.ProposedCandidates(env)
	require.Len(t, proposed, 1)

	want := a
	if a.Less(b) {
		want = b
	}
	require.Equal(t, want, proposed[0])
}
