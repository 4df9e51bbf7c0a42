// Package hunter holds the player character: a purse of gold, a kit of
// items, the treasures collected so far and a d20 stat block.
package hunter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/jwebster45206/d20"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	defaultHP = 10
	defaultAC = 10
)

// TreasureSlots is the number of distinct treasures a hunter can hold.
const TreasureSlots = 3

// HunterSpec is the serializable description of a hunter at the start of a game.
type HunterSpec struct {
	ID   string   `json:"id,omitempty"`
	Name string   `json:"name"`
	Gold int      `json:"gold"`
	Kit  []string `json:"kit,omitempty"`
	HP   int      `json:"hp,omitempty"`
	AC   int      `json:"ac,omitempty"`
}

// Hunter is the runtime player character.
type Hunter struct {
	id        string
	name      string
	gold      int
	kit       []string
	treasures [TreasureSlots]string
	actor     *d20.Actor
}

// New builds a Hunter from spec. The name is trimmed and title-cased; an empty
// ID gets a fresh UUID.
func New(spec HunterSpec) (*Hunter, error) {
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		return nil, fmt.Errorf("hunter name cannot be empty")
	}
	name = cases.Title(language.English).String(name)

	id := spec.ID
	if id == "" {
		id = uuid.NewString()
	}
	hp := spec.HP
	if hp == 0 {
		hp = defaultHP
	}
	ac := spec.AC
	if ac == 0 {
		ac = defaultAC
	}

	actor, err := d20.NewActor(id).
		WithHP(hp).
		WithAC(ac).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build actor: %w", err)
	}

	h := &Hunter{
		id:    id,
		name:  name,
		gold:  spec.Gold,
		actor: actor,
	}
	for _, item := range spec.Kit {
		h.AddItem(item)
	}
	return h, nil
}

func (h *Hunter) ID() string   { return h.id }
func (h *Hunter) Name() string { return h.name }
func (h *Hunter) Gold() int    { return h.gold }

// Actor returns the hunter's d20 stat block.
func (h *Hunter) Actor() *d20.Actor { return h.actor }

// ChangeGold adds delta to the purse. The balance may go negative.
func (h *Hunter) ChangeGold(delta int) {
	h.gold += delta
}

// Kit returns a copy of the items carried, in the order they were acquired.
func (h *Hunter) Kit() []string {
	return slices.Clone(h.kit)
}

func (h *Hunter) indexOf(item string) int {
	return slices.IndexFunc(h.kit, func(k string) bool {
		return strings.EqualFold(k, item)
	})
}

// HasItem reports whether the kit holds item. Names compare case-insensitively.
func (h *Hunter) HasItem(item string) bool {
	return h.indexOf(item) >= 0
}

// AddItem puts item in the kit and reports false if it was already there.
func (h *Hunter) AddItem(item string) bool {
	item = strings.ToLower(strings.TrimSpace(item))
	if item == "" || h.HasItem(item) {
		return false
	}
	h.kit = append(h.kit, item)
	return true
}

// RemoveItem drops item from the kit. Missing items are ignored.
func (h *Hunter) RemoveItem(item string) {
	if i := h.indexOf(item); i >= 0 {
		h.kit = slices.Delete(h.kit, i, i+1)
	}
}

// BuyItem pays cost for item. It fails when the hunter can't afford it or
// already owns one.
func (h *Hunter) BuyItem(item string, cost int) bool {
	if cost < 0 || h.gold < cost || h.HasItem(item) {
		return false
	}
	h.gold -= cost
	h.AddItem(item)
	return true
}

// SellItem trades item for price. It fails when the item isn't in the kit
// or has no resale value.
func (h *Hunter) SellItem(item string, price int) bool {
	if price <= 0 || !h.HasItem(item) {
		return false
	}
	h.gold += price
	h.RemoveItem(item)
	return true
}

// AddTreasure stores name in slot. It reports false when the slot is out of
// range or already holds a treasure, in which case the find is discarded.
func (h *Hunter) AddTreasure(name string, slot int) bool {
	if slot < 0 || slot >= TreasureSlots || h.treasures[slot] != "" {
		return false
	}
	h.treasures[slot] = name
	return true
}

// Treasures lists the collected treasures in slot order.
func (h *Hunter) Treasures() []string {
	var found []string
	for _, t := range h.treasures {
		if t != "" {
			found = append(found, t)
		}
	}
	return found
}

// HasAllTreasures reports whether every treasure slot is filled.
func (h *Hunter) HasAllTreasures() bool {
	return len(h.Treasures()) == TreasureSlots
}

// Spec snapshots the hunter's current state.
func (h *Hunter) Spec() HunterSpec {
	return HunterSpec{
		ID:   h.id,
		Name: h.name,
		Gold: h.gold,
		Kit:  h.Kit(),
		HP:   h.actor.HP(),
		AC:   h.actor.AC(),
	}
}

func (h *Hunter) String() string {
	kit := "nothing"
	if len(h.kit) > 0 {
		kit = strings.Join(h.kit, ", ")
	}
	treasures := "none"
	if t := h.Treasures(); len(t) > 0 {
		treasures = strings.Join(t, ", ")
	}
	return fmt.Sprintf("%s has %d gold. Kit: %s. Treasures: %s.", h.name, h.gold, kit, treasures)
}
