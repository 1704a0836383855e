package combat

import "math"

//Priority is how much a character wants a stat
type Priority string

const (
	Important Priority = "important"
	Secondary Priority = "secondary"
	Unneeded  Priority = "unneeded"
)

//ParsePriority accepts the table labels and the english names. Anything
//else is Unneeded.
func ParsePriority(s string) Priority {
	switch s {
	case "重要", "important":
		return Important
	case "次要", "secondary":
		return Secondary
	}
	return Unneeded
}

//StatPriority is a character's declared priority per substat label
type StatPriority struct {
	Character  string
	Priorities map[string]Priority
}

//Of returns the priority of a stat; undeclared stats are Unneeded
func (p StatPriority) Of(stat string) Priority {
	if v, ok := p.Priorities[stat]; ok {
		return v
	}
	return Unneeded
}

//SubstatRating holds the score per roll point for each priority
type SubstatRating struct {
	Stat   string
	Coeffs map[Priority]float64
}

//Rating is the gear score per slot plus the total
type Rating struct {
	Slots map[Slot]float64
	Total float64
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

//RateRelics scores every substat as value * coefficient(stat, priority).
//Slot scores and the total are rounded to one decimal. Substats without a
//rating row score 0.
func RateRelics(gear map[Slot]GearPiece, p StatPriority, store DataStore) Rating {
	r := Rating{Slots: make(map[Slot]float64, len(Slots))}
	var total float64
	for _, s := range Slots {
		piece, ok := gear[s]
		if !ok {
			continue
		}
		var score float64
		for i, sub := range piece.Sub {
			if i == MaxSubstats {
				break
			}
			if sub.Type == "" {
				continue
			}
			v, ok := sub.Value.Float()
			if !ok {
				continue
			}
			rt, ok := store.SubstatRating(sub.Type)
			if !ok {
				continue
			}
			score += v * rt.Coeffs[p.Of(sub.Type)]
		}
		score = round1(score)
		r.Slots[s] = score
		total += score
	}
	r.Total = round1(total)
	return r
}
