package terrain

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/treasure-hunter/pkg/dice"
)

// Terrain surrounds a town. Leaving the town means crossing it, which needs
// exactly one item.
type Terrain struct {
	name         string
	requiredItem string
}

// New creates a Terrain.
func New(name, requiredItem string) Terrain {
	return Terrain{name: name, requiredItem: requiredItem}
}

func (t Terrain) Name() string {
	return t.name
}

func (t Terrain) RequiredItem() string {
	return t.requiredItem
}

// Holder is anything that can be asked whether it carries an item.
type Holder interface {
	HasItem(name string) bool
}

// CanCross reports whether h carries the item needed to cross t.
func (t Terrain) CanCross(h Holder) bool {
	return h != nil && h.HasItem(t.requiredItem)
}

func (t Terrain) String() string {
	return fmt.Sprintf("%s (needs %s)", t.name, strings.ToLower(t.requiredItem))
}

// Table lists every terrain a town can be generated with.
var Table = []Terrain{
	New("Mountains", "Rope"),
	New("Ocean", "Boat"),
	New("Plains", "Horse"),
	New("Desert", "Water"),
	New("Jungle", "Machete"),
	New("Marsh", "Boots"),
}

// Random picks a terrain uniformly from Table.
func Random(src dice.Source) Terrain {
	return Table[src.Intn(len(Table))]
}
