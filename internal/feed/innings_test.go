package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oneInningsScore = `
	<mscr>
		<inngsdetail rrr="4.50"/>
		<btTm sName="Ind" Decl="0" FollowOn="" ovrs="45.3" runs="260" wckts="5"/>
		<blTm sName="Eng" ovrs="45.3" runs="260" wckts="5"/>
	</mscr>`

const twoInningsScore = `
	<mscr>
		<inngsdetail rrr="0"/>
		<btTm sName="Eng" Decl="1" FollowOn="0" ovrs="98.0" runs="410" wckts="7"/>
		<blTm sName="Ind" ovrs="98.0" runs="410" wckts="7"/>
		<inngsdetail rrr="3.20"/>
		<btTm sName="Ind" Decl="0" FollowOn="1" ovrs="21.4" runs="88" wckts="2"/>
		<blTm sName="Eng" ovrs="21.4" runs="88" wckts="2"/>
	</mscr>`

func TestParseScoreSingleInnings(t *testing.T) {
	t.Parallel()

	innings, err := parseScore(element(t, oneInningsScore, "//mscr"))
	require.NoError(t, err)
	require.Len(t, innings, 1)

	bat := innings[0].Batting
	assert.Equal(t, "Ind", bat.Team)
	assert.False(t, bat.Declare)
	assert.False(t, bat.FollowOn)
	assert.Equal(t, 45.3, bat.Overs)
	assert.Equal(t, 260, bat.Runs)
	assert.Equal(t, 5, bat.Wickets)

	assert.Equal(t, "Eng", innings[0].Bowling.Team)
}

func TestParseScoreTwoInnings(t *testing.T) {
	t.Parallel()

	innings, err := parseScore(element(t, twoInningsScore, "//mscr"))
	require.NoError(t, err)
	require.Len(t, innings, 2)

	assert.Equal(t, "Eng", innings[0].Batting.Team)
	assert.True(t, innings[0].Batting.Declare)
	assert.Equal(t, "Ind", innings[1].Batting.Team)
	assert.True(t, innings[1].Batting.FollowOn)
	assert.Equal(t, 88, innings[1].Batting.Runs)
}

func TestParseScoreWhitespaceChildrenIgnored(t *testing.T) {
	t.Parallel()

	// Text nodes between elements must not count toward the triples.
	raw := "<mscr>\n\t<inngsdetail/>\n\t" +
		`<btTm sName="Ind" ovrs="10" runs="40" wckts="1"/>` + "\n\t" +
		`<blTm sName="Eng" ovrs="10" runs="40" wckts="1"/>` + "\n</mscr>"

	innings, err := parseScore(element(t, raw, "//mscr"))
	require.NoError(t, err)
	require.Len(t, innings, 1)
}

func TestParseScoreTooFewChildren(t *testing.T) {
	t.Parallel()

	_, err := parseScore(element(t, `<mscr><inngsdetail/><btTm sName="Ind" ovrs="1" runs="4" wckts="0"/></mscr>`, "//mscr"))

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "score", perr.Field)
}

func TestParseScoreIncompleteSecondInnings(t *testing.T) {
	t.Parallel()

	raw := `
		<mscr>
			<inngsdetail/>
			<btTm sName="Ind" ovrs="10" runs="40" wckts="1"/>
			<blTm sName="Eng" ovrs="10" runs="40" wckts="1"/>
			<inngsdetail/>
		</mscr>`
	_, err := parseScore(element(t, raw, "//mscr"))

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestParseSideMissingRequiredAttr(t *testing.T) {
	t.Parallel()

	_, err := parseSide(element(t, `<btTm sName="Ind" runs="40" wckts="1"/>`, "//btTm"))

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Msg, "ovrs")
}

func TestParseSideBadNumericAttr(t *testing.T) {
	t.Parallel()

	_, err := parseSide(element(t, `<btTm sName="Ind" ovrs="lots" runs="40" wckts="1"/>`, "//btTm"))

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Error(t, perr.Unwrap())
}
