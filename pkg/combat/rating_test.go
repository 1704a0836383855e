package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratingStore(t *testing.T) *Store {
	s := NewStore()
	for _, r := range []SubstatRating{
		{Stat: "暴擊率", Coeffs: map[Priority]float64{Important: 2, Secondary: 1}},
		{Stat: "暴擊傷害", Coeffs: map[Priority]float64{Important: 1, Secondary: 0.5}},
		{Stat: "ATK%", Coeffs: map[Priority]float64{Important: 1.3, Secondary: 0.6, Unneeded: 0.1}},
	} {
		require.NoError(t, s.AddSubstatRating(r))
	}
	return s
}

func TestParsePriority(t *testing.T) {
	assert.Equal(t, Important, ParsePriority("重要"))
	assert.Equal(t, Secondary, ParsePriority("次要"))
	assert.Equal(t, Secondary, ParsePriority("secondary"))
	assert.Equal(t, Unneeded, ParsePriority("不需要"))
	assert.Equal(t, Unneeded, ParsePriority(""))
}

func TestRateRelics(t *testing.T) {
	s := ratingStore(t)
	p := StatPriority{Character: "x", Priorities: map[string]Priority{
		"暴擊率":  Important,
		"暴擊傷害": Secondary,
	}}
	gear := map[Slot]GearPiece{
		Head: {Main: Stat{"HP", "705"}, Sub: []Stat{
			{"暴擊率", "3.24%"},  //6.48
			{"暴擊傷害", "6.48%"}, //3.24
			{"ATK%", "4.32%"},  //0.432, undeclared
			{"速度", "2.3"},     //no rating row
		}},
		Hands: {Sub: []Stat{{"暴擊率", "2.592"}, {"", "9"}, {"暴擊率", "0"}}},
		Body:  {Sub: []Stat{{"暴擊率", "1"}, {"暴擊率", "1"}, {"暴擊率", "1"}, {"暴擊率", "1"}, {"暴擊率", "100"}}},
	}
	r := RateRelics(gear, p, s)

	assert.Equal(t, 10.2, r.Slots[Head])
	assert.Equal(t, 5.2, r.Slots[Hands])
	assert.Equal(t, 8.0, r.Slots[Body])
	_, ok := r.Slots[Rope]
	assert.False(t, ok)
	assert.Equal(t, 23.4, r.Total)
}

func TestRateRelicsNoPriority(t *testing.T) {
	s := ratingStore(t)
	gear := map[Slot]GearPiece{
		Feet: {Sub: []Stat{{"暴擊率", "3"}, {"ATK%", "10"}}},
	}
	r := RateRelics(gear, StatPriority{}, s)
	assert.Equal(t, 1.0, r.Slots[Feet])
	assert.Equal(t, 1.0, r.Total)
}
