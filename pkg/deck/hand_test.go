package deck

import (
	"github.com/stretchr/testify/assert"
	"sort"
	"testing"
)

func TestHand_Discard(t *testing.T) {
	a := assert.New(t)

	h := Hand(CardsFromString("2c,3c,4c"))
	a.True(h.HasCard(CardFromString("3c")))
	a.Equal(1, h.IndexOf(CardFromString("3c")))

	a.True(h.Discard(CardFromString("3c")))
	a.Equal("2c,4c", h.String())
	a.False(h.Discard(CardFromString("3c")))
	a.Equal(-1, h.IndexOf(CardFromString("3c")))
	a.Equal(2, h.Len())
}

func TestHand_Clone(t *testing.T) {
	h := Hand(CardsFromString("2c,3c"))
	clone := h.Clone()
	clone[0] = CardFromString("13h")

	assert.Equal(t, "2c,3c", h.String())
	assert.Equal(t, "13h,3c", clone.String())
}

func TestHand_FirstCard(t *testing.T) {
	card, ok := Hand{}.FirstCard()
	assert.False(t, ok)
	assert.Equal(t, Card{}, card)

	card, ok = Hand(CardsFromString("5d,6d")).FirstCard()
	assert.True(t, ok)
	assert.Equal(t, CardFromString("5d"), card)
}

func TestHand_Sort(t *testing.T) {
	h := Hand(CardsFromString("1h,2h,13c,5s,1c"))
	sort.Sort(h)

	assert.Equal(t, "13c,1c,2h,1h,5s", h.String(), "aces sort high within a suit")
}
