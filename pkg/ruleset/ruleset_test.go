package ruleset

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"testing"
	"tricktaker-server/pkg/deck"
)

// trick builds a trick for seats p1, p2, ... from a comma separated list of card ids
func trick(cards string) Trick {
	t := Trick{}
	for i, card := range deck.CardsFromString(cards) {
		t = append(t, Play{SeatID: seatID(i), Card: card})
	}

	return t
}

func seatID(i int) string {
	return []string{"p1", "p2", "p3", "p4", "p5"}[i]
}

func assertWinner(t *testing.T, r RuleSet, cards string, expects string) {
	t.Helper()

	winner, err := r.Evaluate(trick(cards))
	assert.NoError(t, err)
	assert.Equal(t, expects, winner, "%s: %s", r, cards)
}

func TestGet(t *testing.T) {
	a := assert.New(t)

	for _, r := range All() {
		got, err := Get(r.ID())
		a.NoError(err)
		a.Equal(r, got)
	}

	r, err := Get(" Spades-Trump ")
	a.NoError(err)
	a.Equal(SpadesTrump, r)

	r, err = Get("no-trump")
	a.EqualError(err, "unknown rule set: no-trump")
	a.Equal(RuleSet(-1), r)
}

func TestRuleSet_metadata(t *testing.T) {
	a := assert.New(t)
	a.Equal("Highest Card", HighestCard.Name())
	a.Equal("Suit Follows", SuitFollows.Name())
	a.Equal("Spades Trump", SpadesTrump.Name())
	a.Equal(Info{ID: "suit-follows", Name: "Suit Follows", Description: SuitFollows.Description()}, SuitFollows.Info())
	a.Panics(func() {
		_ = RuleSet(9).ID()
	})
}

func TestRuleSet_JSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal(map[string]RuleSet{"ruleSet": SpadesTrump})
	a.NoError(err)
	a.JSONEq(`{"ruleSet":"spades-trump"}`, string(b))

	var v struct {
		RuleSet RuleSet `json:"ruleSet"`
	}
	a.NoError(json.Unmarshal([]byte(`{"ruleSet":"suit-follows"}`), &v))
	a.Equal(SuitFollows, v.RuleSet)
	a.Error(json.Unmarshal([]byte(`{"ruleSet":"bogus"}`), &v))
}

func TestEvaluate_empty(t *testing.T) {
	for _, r := range All() {
		winner, err := r.Evaluate(Trick{})
		assert.Equal(t, ErrEmptyTrick, err)
		assert.Equal(t, "", winner)
	}
}

func TestEvaluate_HighestCard(t *testing.T) {
	assertWinner(t, HighestCard, "5h,10c,3d,7s", "p2")
	assertWinner(t, HighestCard, "10h,10c,5d,3s", "p1") // tie goes to the first play
	assertWinner(t, HighestCard, "13h,1c,12d,2s", "p2") // ace is high
	assertWinner(t, HighestCard, "2h", "p1")
	assertWinner(t, HighestCard, "2h,3h,4h,5h", "p4")
	assertWinner(t, HighestCard, "9c,9d,9h,9s", "p1")
	assertWinner(t, HighestCard, "2c,9d,9h,9s", "p2")
}

func TestEvaluate_SuitFollows(t *testing.T) {
	assertWinner(t, SuitFollows, "5h,1s,10h,13d", "p3") // ace of spades is off suit
	assertWinner(t, SuitFollows, "5h,1s,10c,13d", "p1") // nobody follows
	assertWinner(t, SuitFollows, "5h,5h,2c,3c", "p1")
	assertWinner(t, SuitFollows, "2d,1d,13d,12d", "p2")
	assertWinner(t, SuitFollows, "2d,13s,13c,3d", "p4")
}

func TestEvaluate_SpadesTrump(t *testing.T) {
	assertWinner(t, SpadesTrump, "1h,2s,13d,12c", "p2") // lowest spade beats the highest non-spade
	assertWinner(t, SpadesTrump, "1h,2s,13d,3s", "p4")
	assertWinner(t, SpadesTrump, "5s,2s,1s,4h", "p3")
	assertWinner(t, SpadesTrump, "5h,1c,10h,13d", "p3") // no spades: follow suit
	assertWinner(t, SpadesTrump, "5h,1c,10d,13d", "p1") // no spades, nobody follows
	assertWinner(t, SpadesTrump, "3s,2h,4h,5h", "p1")
}

func TestEvaluate_insertionOrderBreaksTies(t *testing.T) {
	// same cards, different play order: the earlier seat wins
	tr := Trick{
		{SeatID: "p3", Card: deck.CardFromString("10h")},
		{SeatID: "p1", Card: deck.CardFromString("10c")},
		{SeatID: "p2", Card: deck.CardFromString("5d")},
	}

	winner, err := HighestCard.Evaluate(tr)
	assert.NoError(t, err)
	assert.Equal(t, "p3", winner)
}

func TestEvaluate_unknownRuleSet(t *testing.T) {
	_, err := RuleSet(42).Evaluate(trick("2h"))
	assert.EqualError(t, err, "unknown rule set: 42")
}

func TestTrick_helpers(t *testing.T) {
	a := assert.New(t)

	suit, ok := Trick{}.LeadSuit()
	a.False(ok)
	a.Equal(deck.Suit(""), suit)

	tr := trick("5h,1s")
	suit, ok = tr.LeadSuit()
	a.True(ok)
	a.Equal(deck.Hearts, suit)

	a.True(tr.Has("p2"))
	a.False(tr.Has("p3"))

	clone := tr.Clone()
	clone[0].SeatID = "x"
	a.Equal("p1", tr[0].SeatID)
	a.Nil(Trick(nil).Clone())
}
