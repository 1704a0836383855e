package monte

import (
	"log"
	"math/rand"
	"strconv"

	"github.com/srliao/hsrcalc/pkg/combat"
)

//5 star relics: 3 or 4 starting lines, 5 upgrades to +15
const (
	FourLineChance = 0.2
	Upgrades       = 5
)

var subIndex = []string{
	"固定HP",
	"固定ATK",
	"固定DEF",
	"HP%",
	"ATK%",
	"DEF%",
	"速度",
	"暴擊率",
	"暴擊傷害",
	"效果命中",
	"效果抵抗",
	"擊破特攻",
}

var weights = []float64{
	10,
	10,
	10,
	10,
	10,
	10,
	4,
	6,
	6,
	8,
	8,
	8,
}

var tiers = [][]float64{
	{33.870, 38.104, 42.338}, //hp
	{16.935, 19.052, 21.169}, //atk
	{16.935, 19.052, 21.169}, //def
	{3.456, 3.888, 4.32},     //hp%
	{3.456, 3.888, 4.32},     //atk%
	{4.32, 4.86, 5.4},        //def%
	{2, 2.3, 2.6},            //spd
	{2.592, 2.916, 3.24},     //cr
	{5.184, 5.832, 6.48},     //cd
	{3.456, 3.888, 4.32},     //ehr
	{3.456, 3.888, 4.32},     //res
	{5.184, 5.832, 6.48},     //be
}

//main stat labels that share a bucket with a substat label
var mainToSub = map[string]string{
	"HP":  "固定HP",
	"ATK": "固定ATK",
}

//defaultMain is rolled on slots whose main stat is fixed
var defaultMain = map[combat.Slot]string{
	combat.Head:  "HP",
	combat.Hands: "ATK",
}

func tier(luck float64, rand *rand.Rand) int {
	if luck > 0 && rand.Float64() < luck {
		return len(tiers[0]) - 1
	}
	return rand.Intn(len(tiers[0]))
}

//RandPiece rolls one max level relic with the given main stat. An empty main
//stat uses the slot's fixed main stat, an empty value the max level value.
func RandPiece(slot combat.Slot, main combat.Stat, luck float64, rand *rand.Rand) combat.GearPiece {
	var r combat.GearPiece

	r.Main = main
	if r.Main.Type == "" {
		r.Main.Type = defaultMain[slot]
	}
	if r.Main.Type != "" && r.Main.Value == "" {
		r.Main.Value = combat.DefaultMainStat(r.Main.Type)
	}
	mainSub := r.Main.Type
	if v, ok := mainToSub[mainSub]; ok {
		mainSub = v
	}

	lines := 3
	if rand.Float64() < FourLineChance {
		lines = 4
	}

	prb := make([]float64, len(subIndex))
	for i, v := range subIndex {
		w := weights[i]
		if v == mainSub {
			w = 0
		}
		prb[i] = w
	}

	//a 3 line piece gets its 4th line from the first upgrade
	index := make([]int, 0, combat.MaxSubstats)
	vals := make([]float64, 0, combat.MaxSubstats)
	for i := 0; i < combat.MaxSubstats; i++ {
		var sumWeights float64
		for _, v := range prb {
			sumWeights += v
		}

		found := -1
		pick := rand.Float64() * sumWeights
		for i, v := range prb {
			if pick < v && found == -1 {
				found = i
			}
			pick -= v
		}
		if found == -1 {
			log.Panicf("unexpected - no random stat generated, weights %v", prb)
		}
		prb[found] = 0

		index = append(index, found)
		vals = append(vals, tiers[found][tier(luck, rand)])
	}

	up := Upgrades
	if lines == 3 {
		up--
	}
	for i := 0; i < up; i++ {
		pick := rand.Intn(combat.MaxSubstats)
		vals[pick] += tiers[index[pick]][tier(luck, rand)]
	}

	for i, k := range index {
		r.Sub = append(r.Sub, combat.Stat{
			Type:  subIndex[k],
			Value: combat.Value(formatRoll(vals[i])),
		})
	}
	return r
}

func formatRoll(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
