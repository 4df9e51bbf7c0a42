// Package game drives a treasure hunt: it owns the hunter, the shop and the
// current town, runs one action per turn and moves the hunter on to a fresh
// town each time they manage to leave.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jwebster45206/treasure-hunter/pkg/dice"
	"github.com/jwebster45206/treasure-hunter/pkg/hunter"
	"github.com/jwebster45206/treasure-hunter/pkg/shop"
	"github.com/jwebster45206/treasure-hunter/pkg/town"
)

// ErrGameOver is returned by Act once the hunt has been won or lost.
var ErrGameOver = errors.New("game is over")

// HistoryLimit bounds the number of turns kept in History.
const HistoryLimit = 50

// Action is one thing the player can do on a turn.
type Action string

const (
	ActionBuy      Action = "buy"
	ActionSell     Action = "sell"
	ActionTrade    Action = "trade" // arg names the item to buy or sell
	ActionTrouble  Action = "trouble"
	ActionTreasure Action = "treasure"
	ActionDig      Action = "dig"
	ActionLeave    Action = "leave"
	ActionStatus   Action = "status"
)

// Outcome is the state of the hunt as a whole.
type Outcome string

const (
	OutcomePlaying Outcome = ""
	OutcomeWon     Outcome = "won"
	OutcomeLost    Outcome = "lost"
)

// Turn records one action and what came of it.
type Turn struct {
	Number  int         `json:"number"`
	Town    int         `json:"town"`
	Action  Action      `json:"action"`
	Arg     string      `json:"arg,omitempty"`
	Message string      `json:"message"`
	Result  town.Result `json:"result,omitzero"`
	Outcome Outcome     `json:"outcome,omitempty"`
}

// Game is a single hunt. It is driven by one caller at a time.
type Game struct {
	ID uuid.UUID

	settings Settings
	hunter   *hunter.Hunter
	shop     *shop.Shop
	town     *town.Town

	towns   int
	turns   int
	history []Turn
	outcome Outcome
	intro   string

	rng dice.Source
	log *slog.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithSource sets the random source shared by every town in the hunt.
func WithSource(src dice.Source) Option {
	return func(g *Game) {
		g.rng = src
	}
}

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(g *Game) {
		g.log = log
	}
}

// New starts a hunt: it opens the shop, builds the first town and has h
// arrive there.
func New(settings Settings, h *hunter.Hunter, opts ...Option) (*Game, error) {
	if h == nil {
		return nil, fmt.Errorf("hunter cannot be nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	g := &Game{
		ID:       uuid.New(),
		settings: settings,
		hunter:   h,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = dice.NewSource()
	}
	if g.log == nil {
		g.log = slog.Default()
	}
	g.log = g.log.With("game_id", g.ID.String())

	s, err := shop.New(settings.Markdown, settings.Mode, shop.WithLogger(g.log))
	if err != nil {
		return nil, fmt.Errorf("failed to open shop: %w", err)
	}
	g.shop = s

	greeting, err := g.nextTown()
	if err != nil {
		return nil, err
	}
	g.intro = g.town.String() + "\n" + greeting

	g.log.Info("hunt started",
		"hunter", h.Name(),
		"mode", settings.Mode,
		"toughness", settings.Toughness)
	return g, nil
}

func (g *Game) nextTown() (string, error) {
	g.shop.Leave()
	g.town = town.New(g.shop, g.settings.Toughness, g.settings.Mode,
		town.WithSource(g.rng),
		town.WithLogger(g.log))
	g.towns++

	r, err := g.town.HunterArrives(g.hunter)
	if err != nil {
		return "", fmt.Errorf("failed to enter town: %w", err)
	}
	return r.Message, nil
}

func (g *Game) Hunter() *hunter.Hunter { return g.hunter }
func (g *Game) Shop() *shop.Shop       { return g.shop }
func (g *Game) Town() *town.Town       { return g.town }
func (g *Game) Settings() Settings     { return g.settings }
func (g *Game) Outcome() Outcome       { return g.outcome }

// TownsVisited counts the towns generated so far, including the current one.
func (g *Game) TownsVisited() int { return g.towns }

// Intro describes the first town and the hunter's welcome.
func (g *Game) Intro() string { return g.intro }

// Over reports whether the hunt has ended.
func (g *Game) Over() bool { return g.outcome != OutcomePlaying }

// History returns the most recent turns, oldest first.
func (g *Game) History() []Turn {
	out := make([]Turn, len(g.history))
	copy(out, g.history)
	return out
}

// Act plays one turn.
func (g *Game) Act(action Action, arg string) (Turn, error) {
	if g.Over() {
		return Turn{}, ErrGameOver
	}

	turn := Turn{Town: g.towns, Action: action, Arg: arg}
	var err error
	switch action {
	case ActionBuy, ActionSell:
		turn.Message, err = g.enterShop(action)
	case ActionTrade:
		turn.Message, err = g.trade(arg)
	case ActionTrouble:
		turn.Result, err = g.town.LookForTrouble()
	case ActionTreasure:
		turn.Result, err = g.town.LookForTreasure()
	case ActionDig:
		turn.Result, err = g.town.DigForGold()
	case ActionLeave:
		turn.Message, turn.Result, err = g.leave()
	case ActionStatus:
		turn.Message = g.hunter.String() + "\n" + g.town.String()
	default:
		return Turn{}, fmt.Errorf("unknown action %q", action)
	}
	if err != nil {
		return Turn{}, fmt.Errorf("%s: %w", action, err)
	}
	if turn.Message == "" {
		turn.Message = turn.Result.Message
	}

	g.settle(&turn)
	g.turns++
	turn.Number = g.turns
	g.record(turn)

	g.log.Debug("turn played",
		"turn", turn.Number,
		"action", action,
		"kind", turn.Result.Kind,
		"gold", g.hunter.Gold(),
		"outcome", turn.Outcome)
	return turn, nil
}

func (g *Game) enterShop(action Action) (string, error) {
	if err := g.town.EnterShop(string(action)); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Welcome to the shop! We have the finest wares in town.\n")
	if action == ActionSell {
		b.WriteString("What're you lookin' to sell? Here's what I'll pay:\n")
	} else {
		b.WriteString("Currently we have the following items:\n")
	}
	b.WriteString(g.shop.Listing())
	return strings.TrimRight(b.String(), "\n"), nil
}

func (g *Game) trade(item string) (string, error) {
	msg, err := g.shop.Transact(item)
	if errors.Is(err, shop.ErrUnknownItem) {
		return "We ain't got none of those.", nil
	}
	return msg, err
}

func (g *Game) leave() (string, town.Result, error) {
	_, r, err := g.town.LeaveTown()
	if err != nil || !r.Ended() {
		return r.Message, r, err
	}

	greeting, err := g.nextTown()
	if err != nil {
		return "", town.Result{}, err
	}
	msg := r.Message + "\n\n" + g.town.String() + "\n" + greeting
	g.log.Info("hunter moved on", "towns_visited", g.towns, "terrain", g.town.Terrain().Name())
	return msg, r, nil
}

// settle ends the hunt when the hunter holds every treasure or is in debt.
func (g *Game) settle(turn *Turn) {
	switch {
	case g.hunter.HasAllTreasures():
		g.outcome = OutcomeWon
		turn.Message += "\nCongratulations, you have found the last of the three treasures, you win!"
	case g.hunter.Gold() < 0:
		g.outcome = OutcomeLost
		turn.Message += "\nYou're flat broke and deep in debt. Game over!"
	default:
		return
	}
	turn.Outcome = g.outcome
	g.log.Info("hunt ended", "outcome", g.outcome, "turns", g.turns+1, "towns_visited", g.towns)
}

func (g *Game) record(turn Turn) {
	g.history = append(g.history, turn)
	if len(g.history) > HistoryLimit {
		g.history = g.history[len(g.history)-HistoryLimit:]
	}
}
