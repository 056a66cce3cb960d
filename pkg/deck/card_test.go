package deck

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"testing"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 1, Ace)
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, HighAce)
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "2♡", Card{Rank: 2, Suit: Hearts}.String())
	assert.Equal(t, "J♣", Card{Rank: 11, Suit: Clubs}.String())
	assert.Equal(t, "Q♢", Card{Rank: 12, Suit: Diamonds}.String())
	assert.Equal(t, "K♠", Card{Rank: 13, Suit: Spades}.String())
	assert.Equal(t, "A♠", Card{Rank: 1, Suit: Spades}.String())
}

func TestCard_Value(t *testing.T) {
	assert.Equal(t, 14, Card{Rank: Ace, Suit: Hearts}.Value())
	assert.Equal(t, 2, Card{Rank: 2, Suit: Hearts}.Value())
	assert.Equal(t, 13, Card{Rank: King, Suit: Hearts}.Value())
}

func TestCard_ID(t *testing.T) {
	assert.Equal(t, "1h", Card{Rank: Ace, Suit: Hearts}.ID())
	assert.Equal(t, "10c", Card{Rank: 10, Suit: Clubs}.ID())
	assert.Equal(t, "13s", Card{Rank: King, Suit: Spades}.ID())
	assert.Equal(t, "7d", Card{Rank: 7, Suit: Diamonds}.ID())
}

func TestParseCardID(t *testing.T) {
	a := assert.New(t)

	card, err := ParseCardID("10H")
	a.NoError(err)
	a.Equal(Card{Rank: 10, Suit: Hearts}, card)

	card, err = ParseCardID("14s")
	a.NoError(err)
	a.Equal(Card{Rank: Ace, Suit: Spades}, card, "14 is an alias for the ace")

	for _, bad := range []string{"", "0h", "15h", "1x", "h1", "1hh"} {
		_, err = ParseCardID(bad)
		a.ErrorIs(err, ErrInvalidCardID, bad)
	}

	a.Panics(func() {
		CardFromString("bad")
	})
}

func TestCardsFromString(t *testing.T) {
	cards := CardsFromString("2c,13d,1h")
	assert.Equal(t, []Card{{Rank: 2, Suit: Clubs}, {Rank: 13, Suit: Diamonds}, {Rank: 1, Suit: Hearts}}, cards)
	assert.Equal(t, "2c,13d,1h", CardsToString(cards))
	assert.Equal(t, []Card{}, CardsFromString(""))
}

func TestCard_JSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal(Card{Rank: Ace, Suit: Diamonds})
	a.NoError(err)
	a.JSONEq(`{"id":"1d","suit":"diamonds","rank":1,"value":14}`, string(b))

	var card Card
	a.NoError(json.Unmarshal(b, &card))
	a.Equal(Card{Rank: Ace, Suit: Diamonds}, card)

	a.NoError(json.Unmarshal([]byte(`"12c"`), &card))
	a.Equal(Card{Rank: Queen, Suit: Clubs}, card)

	a.NoError(json.Unmarshal([]byte(`{"suit":"spades","rank":4}`), &card))
	a.Equal(Card{Rank: 4, Suit: Spades}, card)

	a.Error(json.Unmarshal([]byte(`"99z"`), &card))

	for _, bad := range []string{
		`{"suit":"spades","rank":0}`,
		`{"suit":"spades","rank":14}`,
		`{"suit":"stars","rank":4}`,
		`{}`,
		`{"id":"15h"}`,
	} {
		card = Card{Rank: 4, Suit: Spades}
		a.ErrorIs(json.Unmarshal([]byte(bad), &card), ErrInvalidCardID, bad)
		a.Equal(Card{Rank: 4, Suit: Spades}, card, "a bad card leaves the target untouched")
	}
}
