package bot

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"tricktaker-server/pkg/deck"
	"tricktaker-server/pkg/ruleset"
)

func view(hand string, trick ruleset.Trick, rs ruleset.RuleSet) View {
	return View{
		SeatID:  "p4",
		Hand:    deck.Hand(deck.CardsFromString(hand)),
		Trick:   trick,
		RuleSet: rs,
	}
}

func played(cards ...string) ruleset.Trick {
	t := ruleset.Trick{}
	for i, c := range cards {
		t = append(t, ruleset.Play{SeatID: []string{"p1", "p2", "p3"}[i], Card: deck.CardFromString(c)})
	}

	return t
}

func TestGetLevel(t *testing.T) {
	a := assert.New(t)

	for _, l := range []Level{LevelEasy, LevelStandard, LevelSmart} {
		got, err := GetLevel(l.String())
		a.NoError(err)
		a.Equal(l, got)
	}

	l, err := GetLevel("")
	a.NoError(err)
	a.Equal(LevelStandard, l)

	_, err = GetLevel("godlike")
	a.EqualError(err, "unknown bot level: godlike")
}

func TestNewBrain(t *testing.T) {
	a := assert.New(t)

	b, err := NewBrain(LevelEasy)
	a.NoError(err)
	a.IsType(FirstCard{}, b)

	b, err = NewBrain(LevelStandard)
	a.NoError(err)
	a.IsType(HighestCard{}, b)

	b, err = NewBrain(LevelSmart)
	a.NoError(err)
	a.IsType(Smart{}, b)

	b, err = NewBrain(Level(7))
	a.Nil(b)
	a.EqualError(err, "unknown bot level: 7")
}

func TestEmptyHand(t *testing.T) {
	for _, b := range []Brain{FirstCard{}, HighestCard{}, Smart{}} {
		_, err := b.ChooseCard(view("", nil, ruleset.HighestCard))
		assert.Equal(t, ErrEmptyHand, err)
	}
}

func TestFirstCard(t *testing.T) {
	card, err := FirstCard{}.ChooseCard(view("3c,1h,12d", nil, ruleset.HighestCard))
	assert.NoError(t, err)
	assert.Equal(t, deck.CardFromString("3c"), card)
}

func TestHighestCard(t *testing.T) {
	card, err := HighestCard{}.ChooseCard(view("3c,13h,1d,12d", nil, ruleset.HighestCard))
	assert.NoError(t, err)
	assert.Equal(t, deck.CardFromString("1d"), card)

	card, err = HighestCard{}.ChooseCard(view("9c,9h", nil, ruleset.HighestCard))
	assert.NoError(t, err)
	assert.Equal(t, deck.CardFromString("9c"), card, "first on ties")
}

func TestSmart(t *testing.T) {
	a := assert.New(t)
	s := Smart{}

	// leading: play low
	card, err := s.ChooseCard(view("10c,2h,1d", nil, ruleset.HighestCard))
	a.NoError(err)
	a.Equal(deck.CardFromString("2h"), card)

	// cheapest winner
	card, err = s.ChooseCard(view("13c,10h,1d", played("9h", "4c", "2d"), ruleset.HighestCard))
	a.NoError(err)
	a.Equal(deck.CardFromString("10h"), card)

	// nothing wins: dump the lowest card
	card, err = s.ChooseCard(view("3c,5h,4d", played("1h", "4c", "2d"), ruleset.HighestCard))
	a.NoError(err)
	a.Equal(deck.CardFromString("3c"), card)

	// suit follows: the ace of clubs cannot win a hearts trick
	card, err = s.ChooseCard(view("1c,11h,2s", played("10h", "4h", "2d"), ruleset.SuitFollows))
	a.NoError(err)
	a.Equal(deck.CardFromString("11h"), card)

	// spades trump: the two of spades is the cheapest winner
	card, err = s.ChooseCard(view("1c,2s,5s", played("1h", "13h", "2d"), ruleset.SpadesTrump))
	a.NoError(err)
	a.Equal(deck.CardFromString("2s"), card)
}
