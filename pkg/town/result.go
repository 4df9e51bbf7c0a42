package town

// Kind identifies the outcome of a town action.
type Kind string

const (
	KindArrived Kind = "arrived"

	KindCannotLeave Kind = "cannot_leave"
	KindCrossed     Kind = "crossed"
	KindItemBroke   Kind = "item_broke"

	KindNoTrouble  Kind = "no_trouble"
	KindBrawlWon   Kind = "brawl_won"
	KindBrawlLost  Kind = "brawl_lost"
	KindSamuraiWin Kind = "samurai_win"

	KindAlreadySearched   Kind = "already_searched"
	KindTreasureFound     Kind = "treasure_found"
	KindTreasureDuplicate Kind = "treasure_duplicate"

	KindNoShovel   Kind = "no_shovel"
	KindDugGold    Kind = "dug_gold"
	KindDugDirt    Kind = "dug_dirt"
	KindAlreadyDug Kind = "already_dug"
)

// Result is the outcome of one town action. Message is the text shown to the
// player; the other fields carry the same facts in structured form.
type Result struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	// Gold is the change applied to the hunter's purse, negative on a loss.
	Gold     int    `json:"gold,omitempty"`
	Item     string `json:"item,omitempty"`
	Treasure string `json:"treasure,omitempty"`
}

// Ended reports whether the result ends the town visit.
func (r Result) Ended() bool {
	return r.Kind == KindCrossed || r.Kind == KindItemBroke
}
