package game

import (
	"io"
	"log/slog"
	"testing"

	"github.com/jwebster45206/treasure-hunter/pkg/dice"
	"github.com/jwebster45206/treasure-hunter/pkg/hunter"
	"github.com/jwebster45206/treasure-hunter/pkg/shop"
	"github.com/jwebster45206/treasure-hunter/pkg/terrain"
	"github.com/jwebster45206/treasure-hunter/pkg/town"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func newHunter(t *testing.T, gold int, kit ...string) *hunter.Hunter {
	t.Helper()
	h, err := hunter.New(hunter.HunterSpec{Name: "jo", Gold: gold, Kit: kit})
	require.NoError(t, err)
	return h
}

func allCrossingItems() []string {
	var items []string
	for _, tr := range terrain.Table {
		items = append(items, tr.RequiredItem())
	}
	return items
}

func newGame(t *testing.T, settings Settings, h *hunter.Hunter, src dice.Source) *Game {
	t.Helper()
	g, err := New(settings, h, WithSource(src), WithLogger(quiet))
	require.NoError(t, err)
	return g
}

func TestNew_Errors(t *testing.T) {
	_, err := New(DefaultSettings(""), nil)
	assert.Error(t, err)

	_, err = New(Settings{Toughness: 2, Markdown: 0.5}, newHunter(t, 0))
	assert.Error(t, err)

	_, err = New(Settings{Toughness: 0.5, Markdown: -1}, newHunter(t, 0))
	assert.Error(t, err)
}

func TestDefaultSettings(t *testing.T) {
	assert.Equal(t, Settings{Mode: "h", Toughness: 0.75, Markdown: 0.25}, DefaultSettings(ModeHard))
	assert.Equal(t, Settings{Mode: "e", Toughness: 0.4, Markdown: 1.0}, DefaultSettings(town.ModeEasy))
	assert.Equal(t, Settings{Mode: "s", Toughness: 0.4, Markdown: 0.5}, DefaultSettings(town.ModeSamurai))
	assert.NoError(t, DefaultSettings("").Validate())
}

func TestNew_FirstTown(t *testing.T) {
	g := newGame(t, DefaultSettings(""), newHunter(t, 10), dice.NewSeededSource(1))

	assert.NotEmpty(t, g.ID.String())
	assert.Equal(t, 1, g.TownsVisited())
	assert.Contains(t, g.Intro(), "Welcome to town, Jo.")
	assert.Contains(t, g.Intro(), "This nice little town is surrounded by")
	assert.Same(t, g.Hunter(), g.Town().Hunter())
	assert.False(t, g.Over())
}

func TestAct_Status(t *testing.T) {
	g := newGame(t, DefaultSettings(""), newHunter(t, 10), dice.NewSeededSource(1))

	turn, err := g.Act(ActionStatus, "")
	require.NoError(t, err)
	assert.Equal(t, 1, turn.Number)
	assert.Contains(t, turn.Message, "Jo has 10 gold.")
	assert.Contains(t, turn.Message, g.Town().String())
}

func TestAct_BuyAndSell(t *testing.T) {
	g := newGame(t, DefaultSettings(""), newHunter(t, 10), dice.NewSeededSource(2))

	turn, err := g.Act(ActionBuy, "")
	require.NoError(t, err)
	assert.Contains(t, turn.Message, "Welcome to the shop!")
	assert.Contains(t, turn.Message, "rope")
	assert.Equal(t, shop.IntentBuy, g.Shop().Counter())

	turn, err = g.Act(ActionTrade, "rope")
	require.NoError(t, err)
	assert.Equal(t, "Ye' got yerself a rope. Come again soon.", turn.Message)
	assert.Equal(t, 6, g.Hunter().Gold())

	_, err = g.Act(ActionSell, "")
	require.NoError(t, err)
	turn, err = g.Act(ActionTrade, "rope")
	require.NoError(t, err)
	assert.Equal(t, "Pleasure doin' business with you.", turn.Message)
	assert.Equal(t, 8, g.Hunter().Gold())

	_, err = g.Act(ActionBuy, "")
	require.NoError(t, err)
	turn, err = g.Act(ActionTrade, "dragon")
	require.NoError(t, err)
	assert.Equal(t, "We ain't got none of those.", turn.Message)

	_, err = g.Act(ActionTrade, "rope")
	assert.ErrorIs(t, err, shop.ErrCounterClosed)
}

func TestAct_LeaveMovesOn(t *testing.T) {
	h := newHunter(t, 10, allCrossingItems()...)
	g := newGame(t, DefaultSettings(town.ModeEasy), h, dice.NewSeededSource(3))
	first := g.Town()

	turn, err := g.Act(ActionLeave, "")
	require.NoError(t, err)
	assert.Equal(t, town.KindCrossed, turn.Result.Kind)
	assert.True(t, turn.Result.Ended())
	assert.Equal(t, 2, g.TownsVisited())
	assert.NotSame(t, first, g.Town())
	assert.Contains(t, turn.Message, "You used your")
	assert.Contains(t, turn.Message, "Welcome to town, Jo.")
	assert.Len(t, h.Kit(), len(terrain.Table), "easy mode keeps every item")
	assert.False(t, g.Town().Searched())
	assert.False(t, g.Town().Dug())
}

func TestAct_LeaveBlocked(t *testing.T) {
	g := newGame(t, DefaultSettings(""), newHunter(t, 10), dice.NewSeededSource(4))
	first := g.Town()

	turn, err := g.Act(ActionLeave, "")
	require.NoError(t, err)
	assert.Equal(t, town.KindCannotLeave, turn.Result.Kind)
	assert.False(t, turn.Result.Ended())
	assert.Equal(t, 1, g.TownsVisited())
	assert.Same(t, first, g.Town())
}

func TestAct_Win(t *testing.T) {
	h := newHunter(t, 10)
	require.True(t, h.AddTreasure("a crown", 0))
	require.True(t, h.AddTreasure("a trophy", 1))

	// Construction rolls terrain and toughness; the search then draws slot 2.
	src := dice.NewScripted([]float64{0.9}, []int{0, 2})
	g := newGame(t, DefaultSettings(""), h, src)

	turn, err := g.Act(ActionTreasure, "")
	require.NoError(t, err)
	assert.Equal(t, town.KindTreasureFound, turn.Result.Kind)
	assert.Equal(t, OutcomeWon, turn.Outcome)
	assert.Contains(t, turn.Message, "you win!")
	assert.True(t, g.Over())

	_, err = g.Act(ActionStatus, "")
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestAct_Lose(t *testing.T) {
	h := newHunter(t, 0)
	// Mild town; trouble found, stake 5, brawl lost.
	src := dice.NewScripted([]float64{0.9, 0.9, 0.1}, []int{0, 4})
	g := newGame(t, DefaultSettings(""), h, src)
	require.False(t, g.Town().Tough())

	turn, err := g.Act(ActionTrouble, "")
	require.NoError(t, err)
	assert.Equal(t, town.KindBrawlLost, turn.Result.Kind)
	assert.Equal(t, -5, h.Gold())
	assert.Equal(t, OutcomeLost, g.Outcome())
	assert.Contains(t, turn.Message, "Game over!")
}

func TestAct_Dig(t *testing.T) {
	g := newGame(t, DefaultSettings(""), newHunter(t, 0), dice.NewSeededSource(6))

	turn, err := g.Act(ActionDig, "")
	require.NoError(t, err)
	assert.Equal(t, town.KindNoShovel, turn.Result.Kind)
	assert.Equal(t, "You can't dig for gold without a shovel", turn.Message)
}

func TestAct_UnknownAction(t *testing.T) {
	g := newGame(t, DefaultSettings(""), newHunter(t, 0), dice.NewSeededSource(7))
	_, err := g.Act(Action("fly"), "")
	assert.Error(t, err)
	assert.Empty(t, g.History())
}

func TestHistory_Limit(t *testing.T) {
	g := newGame(t, DefaultSettings(""), newHunter(t, 0), dice.NewSeededSource(8))
	for i := 0; i < HistoryLimit+10; i++ {
		_, err := g.Act(ActionStatus, "")
		require.NoError(t, err)
	}

	hist := g.History()
	require.Len(t, hist, HistoryLimit)
	assert.Equal(t, 11, hist[0].Number)
	assert.Equal(t, HistoryLimit+10, hist[len(hist)-1].Number)
}
