package game

type RuleSet string

const (
	RuleSetChinese  RuleSet = "chinese"
	RuleSetJapanese RuleSet = "japanese"
	RuleSetAGA      RuleSet = "aga"
)

func (r RuleSet) Valid() bool {
	switch r {
	case RuleSetChinese, RuleSetJapanese, RuleSetAGA:
		return true
	}
	return false
}

func (r RuleSet) DefaultKomi() float64 {
	if r == RuleSetChinese {
		return 7.5
	}
	return 6.5
}

// Score is the final result of a game. Winner is Empty on a draw,
// which is only reachable with an integral komi. When Resignation is
// set the point totals are zero: the board is not counted.
type Score struct {
	RuleSet        RuleSet
	Komi           float64
	Black          float64
	White          float64
	BlackTerritory int
	WhiteTerritory int
	Winner         Color
	Margin         float64
	Resignation    bool
}
