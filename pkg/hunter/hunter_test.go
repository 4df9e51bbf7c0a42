package hunter

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHunter(t *testing.T, gold int, kit ...string) *Hunter {
	t.Helper()
	h, err := New(HunterSpec{Name: "jo march", Gold: gold, Kit: kit})
	require.NoError(t, err)
	return h
}

func TestNew(t *testing.T) {
	h, err := New(HunterSpec{Name: "  ada lovelace ", Gold: 10, Kit: []string{"Rope", "rope", "Shovel"}})
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", h.Name())
	assert.Equal(t, 10, h.Gold())
	assert.Equal(t, []string{"rope", "shovel"}, h.Kit(), "duplicate kit entries collapse")
	_, err = uuid.Parse(h.ID())
	assert.NoError(t, err, "generated ID should be a UUID")

	require.NotNil(t, h.Actor())
	assert.Equal(t, defaultHP, h.Actor().MaxHP())
	assert.Equal(t, defaultAC, h.Actor().AC())
}

func TestNew_KeepsIDAndStats(t *testing.T) {
	h, err := New(HunterSpec{ID: "hunter-1", Name: "Bo", HP: 14, AC: 12})
	require.NoError(t, err)

	spec := h.Spec()
	assert.Equal(t, "hunter-1", spec.ID)
	assert.Equal(t, 14, spec.HP)
	assert.Equal(t, 12, spec.AC)
}

func TestNew_EmptyName(t *testing.T) {
	_, err := New(HunterSpec{Name: "   "})
	assert.Error(t, err)
}

func TestItems(t *testing.T) {
	h := newHunter(t, 0, "Boat")

	assert.True(t, h.HasItem("boat"))
	assert.True(t, h.HasItem("BOAT"))
	assert.False(t, h.AddItem("boat"))
	assert.True(t, h.AddItem("Water"))
	assert.False(t, h.AddItem(" "))

	h.RemoveItem("Boat")
	assert.False(t, h.HasItem("boat"))
	h.RemoveItem("horse")
	assert.Equal(t, []string{"water"}, h.Kit())

	kit := h.Kit()
	kit[0] = "changed"
	assert.Equal(t, []string{"water"}, h.Kit(), "Kit returns a copy")
}

func TestChangeGold_NoFloor(t *testing.T) {
	h := newHunter(t, 3)
	h.ChangeGold(-10)
	assert.Equal(t, -7, h.Gold())
}

func TestBuyItem(t *testing.T) {
	tests := []struct {
		name     string
		gold     int
		kit      []string
		item     string
		cost     int
		wantOK   bool
		wantGold int
	}{
		{name: "affordable", gold: 10, item: "rope", cost: 4, wantOK: true, wantGold: 6},
		{name: "exact gold", gold: 4, item: "rope", cost: 4, wantOK: true, wantGold: 0},
		{name: "too expensive", gold: 3, item: "rope", cost: 4, wantOK: false, wantGold: 3},
		{name: "already owned", gold: 10, kit: []string{"Rope"}, item: "rope", cost: 4, wantOK: false, wantGold: 10},
		{name: "free item", gold: 0, item: "sword", cost: 0, wantOK: true, wantGold: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHunter(t, tt.gold, tt.kit...)
			assert.Equal(t, tt.wantOK, h.BuyItem(tt.item, tt.cost))
			assert.Equal(t, tt.wantGold, h.Gold())
			if tt.wantOK {
				assert.True(t, h.HasItem(tt.item))
			}
		})
	}
}

func TestSellItem(t *testing.T) {
	h := newHunter(t, 1, "horse")

	assert.False(t, h.SellItem("boat", 10), "can't sell what you don't have")
	assert.False(t, h.SellItem("horse", 0), "worthless items can't be sold")
	assert.True(t, h.SellItem("Horse", 6))
	assert.Equal(t, 7, h.Gold())
	assert.False(t, h.HasItem("horse"))
}

func TestTreasures(t *testing.T) {
	h := newHunter(t, 0)

	assert.True(t, h.AddTreasure("a trophy", 1))
	assert.False(t, h.AddTreasure("a trophy", 1), "second trophy is a duplicate")
	assert.False(t, h.AddTreasure("dust", 3), "slot out of range")
	assert.False(t, h.AddTreasure("dust", -1))
	assert.Equal(t, []string{"a trophy"}, h.Treasures())
	assert.False(t, h.HasAllTreasures())

	assert.True(t, h.AddTreasure("a gem", 2))
	assert.True(t, h.AddTreasure("a crown", 0))
	assert.Equal(t, []string{"a crown", "a trophy", "a gem"}, h.Treasures())
	assert.True(t, h.HasAllTreasures())
}

func TestString(t *testing.T) {
	h := newHunter(t, 5)
	assert.Equal(t, "Jo March has 5 gold. Kit: nothing. Treasures: none.", h.String())

	h.AddItem("rope")
	h.AddTreasure("a gem", 2)
	assert.Equal(t, "Jo March has 5 gold. Kit: rope. Treasures: a gem.", h.String())
}
