package town

import (
	"fmt"

	"github.com/jwebster45206/treasure-hunter/pkg/dice"
)

const (
	toughNoTroubleChance = 0.66
	mildNoTroubleChance  = 0.33
	itemBreakChance      = 0.5
	maxBrawlStake        = 10
	digOdds              = 50 // a d100 roll below this strikes gold
	maxDigGold           = 20
)

// LeaveTown tries to cross the surrounding terrain. It returns true when the
// hunter carries the required item, which may break on the way out unless
// the town was built in easy mode.
func (t *Town) LeaveTown() (bool, Result, error) {
	if err := t.requireHunter("leave town"); err != nil {
		return false, Result{}, err
	}

	item := t.terrain.RequiredItem()
	if !t.terrain.CanCross(t.hunter) {
		return false, t.report(Result{
			Kind:    KindCannotLeave,
			Message: fmt.Sprintf("You can't leave town, %s. You don't have a %s.", t.hunter.Name(), item),
			Item:    item,
		}), nil
	}

	r := Result{
		Kind:    KindCrossed,
		Message: fmt.Sprintf("You used your %s to cross the %s.", item, t.terrain.Name()),
		Item:    item,
	}
	if t.itemCanBreak && dice.Chance(t.rng, itemBreakChance) {
		t.hunter.RemoveItem(item)
		r.Kind = KindItemBroke
		r.Message += fmt.Sprintf("\nUnfortunately, your %s broke.", item)
	}

	t.log.Debug("hunter left town",
		"hunter", t.hunter.Name(),
		"terrain", t.terrain.Name(),
		"item_broke", r.Kind == KindItemBroke)
	return true, t.report(r), nil
}

// LookForTrouble picks a fight for gold. Rough towns are less likely to turn
// up a fight but harder to win one. A hunter carrying a sword always wins,
// whatever the town's mode.
func (t *Town) LookForTrouble() (Result, error) {
	if err := t.requireHunter("look for trouble"); err != nil {
		return Result{}, err
	}

	noTroubleChance := mildNoTroubleChance
	if t.tough {
		noTroubleChance = toughNoTroubleChance
	}

	if t.rng.Float64() <= noTroubleChance {
		return t.report(Result{Kind: KindNoTrouble, Message: "You couldn't find any trouble"}), nil
	}

	stake := dice.Roll(t.rng, maxBrawlStake)
	var r Result
	if t.hunter.HasItem(SwordItem) {
		r = Result{
			Kind: KindSamuraiWin,
			Message: "You want trouble, stranger!  You got it!\nOh um... no...not the samurai!\n" +
				"..here's all of my gold",
			Gold: stake,
		}
	} else {
		msg := "You want trouble, stranger!  You got it!\nOof! Umph! Ow!\n"
		if t.rng.Float64() > noTroubleChance {
			msg += "Okay, stranger! You proved yer mettle. Here, take my gold."
			msg += fmt.Sprintf("\nYou won the brawl and receive %d gold.", stake)
			r = Result{Kind: KindBrawlWon, Message: msg, Gold: stake}
		} else {
			msg += "That'll teach you to go lookin' fer trouble in MY town! Now pay up!"
			msg += fmt.Sprintf("\nYou lost the brawl and pay %d gold.", stake)
			r = Result{Kind: KindBrawlLost, Message: msg, Gold: -stake}
		}
	}
	t.hunter.ChangeGold(r.Gold)

	t.log.Debug("brawl resolved",
		"hunter", t.hunter.Name(),
		"tough", t.tough,
		"outcome", r.Kind,
		"gold", r.Gold)
	return t.report(r), nil
}

// LookForTreasure searches the town once. Later calls only report that the
// town was already searched.
func (t *Town) LookForTreasure() (Result, error) {
	if err := t.requireHunter("look for treasure"); err != nil {
		return Result{}, err
	}
	if t.searched {
		return t.report(Result{Kind: KindAlreadySearched, Message: "You have already searched this town."}), nil
	}

	slot := t.rng.Intn(searchableTreasures)
	treasure := Treasures[slot]
	added := t.hunter.AddTreasure(treasure, slot)
	t.searched = true

	r := Result{Kind: KindTreasureFound, Message: "You found " + treasure + "!", Treasure: treasure}
	if !added {
		r.Kind = KindTreasureDuplicate
		r.Message = "You found " + treasure + " but you already have one so you throw it away."
	}

	t.log.Debug("town searched", "hunter", t.hunter.Name(), "treasure", treasure, "kept", added)
	return t.report(r), nil
}

// DigForGold digs once per town, and only with a shovel in the kit.
func (t *Town) DigForGold() (Result, error) {
	if err := t.requireHunter("dig for gold"); err != nil {
		return Result{}, err
	}
	if !t.hunter.HasItem(ShovelItem) {
		return t.report(Result{Kind: KindNoShovel, Message: "You can't dig for gold without a shovel"}), nil
	}
	if t.dug {
		return t.report(Result{Kind: KindAlreadyDug, Message: "You already dug for gold in this town."}), nil
	}

	var r Result
	if dice.Roll(t.rng, 100) < digOdds {
		gold := dice.Roll(t.rng, maxDigGold)
		t.hunter.ChangeGold(gold)
		r = Result{Kind: KindDugGold, Message: fmt.Sprintf("You dug up %d gold!", gold), Gold: gold}
	} else {
		r = Result{Kind: KindDugDirt, Message: "You dug but only found dirt"}
	}
	t.dug = true

	t.log.Debug("dug for gold", "hunter", t.hunter.Name(), "gold", r.Gold)
	return t.report(r), nil
}
