package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCardID is returned when a card id cannot be parsed
var ErrInvalidCardID = errors.New("invalid card id")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Suits lists the suits in canonical deck order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Card is an individual playing card
// Cards are values; two cards are the same card if their suit and rank match
type Card struct {
	Suit Suit
	Rank int
}

// face cards
const (
	Ace   = 1
	Jack  = 11
	Queen = 12
	King  = 13

	// HighAce is the comparison value of an Ace
	HighAce = 14
)

// Value is the number used to compare cards. An Ace is worth 14, all other ranks are worth their rank.
func (c Card) Value() int {
	if c.Rank == Ace {
		return HighAce
	}

	return c.Rank
}

// ID returns a stable identifier in the format of <rank><suit>, i.e., 1h is the Ace of Hearts
func (c Card) ID() string {
	return strconv.Itoa(c.Rank) + suitLetter(c.Suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

func (c Card) String() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

type cardJSON struct {
	ID    string `json:"id"`
	Suit  Suit   `json:"suit"`
	Rank  int    `json:"rank"`
	Value int    `json:"value"`
}

// MarshalJSON includes the derived id and value so the client never has to compute them
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(cardJSON{
		ID:    c.ID(),
		Suit:  c.Suit,
		Rank:  c.Rank,
		Value: c.Value(),
	})
}

// UnmarshalJSON accepts either the object form or a bare card id
func (c *Card) UnmarshalJSON(b []byte) error {
	var id string
	if err := json.Unmarshal(b, &id); err == nil {
		card, err := ParseCardID(id)
		if err != nil {
			return err
		}

		*c = card
		return nil
	}

	var cj cardJSON
	if err := json.Unmarshal(b, &cj); err != nil {
		return err
	}

	if cj.ID != "" {
		card, err := ParseCardID(cj.ID)
		if err != nil {
			return err
		}

		*c = card
		return nil
	}

	if !isSuit(cj.Suit) || cj.Rank < Ace || cj.Rank > King {
		return fmt.Errorf("%w: suit %q, rank %d", ErrInvalidCardID, cj.Suit, cj.Rank)
	}

	c.Suit = cj.Suit
	c.Rank = cj.Rank
	return nil
}

func isSuit(s Suit) bool {
	for _, suit := range Suits {
		if s == suit {
			return true
		}
	}

	return false
}

var cardRx = regexp.MustCompile(`(?i)^([1-9]|1[0-4])([cdhs])\z`)

// ParseCardID parses a card id in the format of <rank><suit> where rank is 1-13 and suit in [cdhs]
// A rank of 14 is accepted as an alias for the Ace.
func ParseCardID(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardID, s)
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardID, s)
	}

	if rank == HighAce {
		rank = Ace
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	return Card{
		Rank: rank,
		Suit: suit,
	}, nil
}

// CardFromString returns a Card from the string.
// It panics on a bad id, so it should only be used with known good input
func CardFromString(s string) Card {
	card, err := ParseCardID(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	return card
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []Card {
	if s == "" {
		return []Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(strings.TrimSpace(card))
	}

	return cards
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.ID()
	}

	return strings.Join(c, ",")
}

func suitLetter(s Suit) string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	}

	return "?"
}
