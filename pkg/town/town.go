// Package town implements a single town visit: generation, the one-shot
// search and dig actions, brawls, shop access and the terrain crossing that
// ends the visit.
package town

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jwebster45206/treasure-hunter/pkg/dice"
	"github.com/jwebster45206/treasure-hunter/pkg/terrain"
)

var (
	// ErrNoHunter is returned by actions invoked before a hunter has arrived.
	ErrNoHunter = errors.New("no hunter in town")
	// ErrNoShop is returned by EnterShop when the town was built without a shop.
	ErrNoShop = errors.New("town has no shop")
)

// Game modes recognized at construction. Any other value plays normal rules.
const (
	ModeEasy    = "e" // crossing items never break
	ModeSamurai = "s" // samurai mode; has no effect on brawls, see LookForTrouble
)

// Items the town checks for in the hunter's kit.
const (
	SwordItem  = "sword"
	ShovelItem = "shovel"
)

// Treasures is the catalogue a town search draws from. The search only ever
// rolls over the first three entries, so "dust" is never found.
var Treasures = [...]string{"a crown", "a trophy", "a gem", "dust"}

const searchableTreasures = 3

// Hunter is the visiting player character. The town never owns it.
type Hunter interface {
	Name() string
	ChangeGold(delta int)
	HasItem(name string) bool
	RemoveItem(name string)
	// AddTreasure stores a treasure in the given slot and reports false when
	// the slot is already filled.
	AddTreasure(name string, slot int) bool
}

// Shop is the town's store. Buying and selling are entirely its business.
type Shop interface {
	Enter(h Hunter, intent string)
}

// Town is one visit's worth of state. It is not safe for concurrent use: the
// searched and dug flags are plain check-then-set.
type Town struct {
	shop    Shop
	terrain terrain.Terrain
	hunter  Hunter

	tough        bool
	searched     bool
	dug          bool
	itemCanBreak bool
	samuraiMode  bool

	latest string

	rng dice.Source
	log *slog.Logger
}

// Option configures a Town at construction.
type Option func(*Town)

// WithSource sets the random source for every roll the town makes.
func WithSource(src dice.Source) Option {
	return func(t *Town) {
		t.rng = src
	}
}

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(t *Town) {
		t.log = log
	}
}

// New builds a town with a random terrain. toughness is the probability in
// [0, 1] that the town is rough; mode is one of ModeEasy, ModeSamurai or
// anything else for normal rules.
func New(shop Shop, toughness float64, mode string, opts ...Option) *Town {
	t := &Town{
		shop:         shop,
		itemCanBreak: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.rng == nil {
		t.rng = dice.NewSource()
	}
	if t.log == nil {
		t.log = slog.Default()
	}

	t.terrain = terrain.Random(t.rng)
	switch mode {
	case ModeEasy:
		t.itemCanBreak = false
	case ModeSamurai:
		t.samuraiMode = true
	}
	t.tough = dice.Chance(t.rng, toughness)

	t.log.Debug("town generated",
		"terrain", t.terrain.Name(),
		"tough", t.tough,
		"mode", mode)
	return t
}

func (t *Town) Terrain() terrain.Terrain { return t.terrain }
func (t *Town) Tough() bool              { return t.tough }
func (t *Town) Searched() bool           { return t.searched }
func (t *Town) Dug() bool                { return t.dug }
func (t *Town) ItemCanBreak() bool       { return t.itemCanBreak }
func (t *Town) SamuraiMode() bool        { return t.samuraiMode }
func (t *Town) Hunter() Hunter           { return t.hunter }

// LatestNews returns the message produced by the most recent action.
func (t *Town) LatestNews() string {
	return t.latest
}

func (t *Town) String() string {
	return fmt.Sprintf("This nice little town is surrounded by %s.", t.terrain.Name())
}

func (t *Town) report(r Result) Result {
	t.latest = r.Message
	return r
}

func (t *Town) requireHunter(action string) error {
	if t.hunter == nil {
		return fmt.Errorf("%s: %w", action, ErrNoHunter)
	}
	return nil
}

// HunterArrives attaches h to the town and greets them. A later arrival
// replaces the previous hunter.
func (t *Town) HunterArrives(h Hunter) (Result, error) {
	if h == nil {
		return Result{}, fmt.Errorf("hunter arrives: %w", ErrNoHunter)
	}
	t.hunter = h

	msg := "Welcome to town, " + h.Name() + "."
	if t.tough {
		msg += "\nIt's pretty rough around here, so watch yourself."
	} else {
		msg += "\nWe're just a sleepy little town with mild mannered folk."
	}
	return t.report(Result{Kind: KindArrived, Message: msg}), nil
}

// EnterShop hands the hunter to the shop with a buy or sell intent. The town
// keeps no record of what happens there.
func (t *Town) EnterShop(intent string) error {
	if err := t.requireHunter("enter shop"); err != nil {
		return err
	}
	if t.shop == nil {
		return fmt.Errorf("enter shop: %w", ErrNoShop)
	}
	t.shop.Enter(t.hunter, intent)
	return nil
}
