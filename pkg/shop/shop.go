// Package shop is the town store. A hunter enters with a buy or sell intent,
// picks an item from the listing, and the shop settles the trade.
package shop

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jwebster45206/treasure-hunter/pkg/town"
	"github.com/mattn/go-runewidth"
)

var (
	ErrCounterClosed = errors.New("nobody is at the counter")
	ErrUnknownItem   = errors.New("item not sold here")
)

// Intent is what the customer came to the counter to do.
type Intent string

const (
	IntentNone Intent = ""
	IntentBuy  Intent = "buy"
	IntentSell Intent = "sell"
)

// ParseIntent accepts "buy"/"b" and "sell"/"s" in any case. Anything else is
// IntentNone.
func ParseIntent(s string) Intent {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy", "b":
		return IntentBuy
	case "sell", "s":
		return IntentSell
	default:
		return IntentNone
	}
}

// Customer is what the shop needs from a hunter to trade with them.
type Customer interface {
	town.Hunter
	Gold() int
	BuyItem(item string, cost int) bool
	SellItem(item string, price int) bool
}

// Shop sells and buys back crossing gear. Resale value is cost times markdown.
type Shop struct {
	catalog  []Item
	markdown float64
	samurai  bool

	customer Customer
	intent   Intent

	log *slog.Logger
}

// Option configures a Shop.
type Option func(*Shop)

// WithCatalog replaces the built-in catalogue.
func WithCatalog(items []Item) Option {
	return func(s *Shop) {
		s.catalog = items
	}
}

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Shop) {
		s.log = log
	}
}

// New creates a shop. markdown must lie in [0, 1]. Samurai-only stock is
// offered only when mode is town.ModeSamurai.
func New(markdown float64, mode string, opts ...Option) (*Shop, error) {
	if markdown < 0 || markdown > 1 {
		return nil, fmt.Errorf("markdown %.2f outside [0, 1]", markdown)
	}
	s := &Shop{
		markdown: markdown,
		samurai:  mode == town.ModeSamurai,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.catalog == nil {
		s.catalog = DefaultCatalog()
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s, nil
}

// Enter puts h at the counter with the given intent. An unrecognized intent,
// or a hunter the shop can't trade with, leaves the counter closed.
func (s *Shop) Enter(h town.Hunter, intent string) {
	s.Leave()

	c, ok := h.(Customer)
	if !ok {
		s.log.Warn("shop turned away visitor that cannot trade", "intent", intent)
		return
	}
	in := ParseIntent(intent)
	if in == IntentNone {
		return
	}
	s.customer = c
	s.intent = in
	s.log.Debug("customer entered shop", "hunter", c.Name(), "intent", in)
}

// Leave closes the counter without a trade.
func (s *Shop) Leave() {
	s.customer = nil
	s.intent = IntentNone
}

// Counter reports the intent of the customer currently at the counter.
func (s *Shop) Counter() Intent {
	return s.intent
}

// Stock returns the items this shop offers.
func (s *Shop) Stock() []Item {
	var stock []Item
	for _, it := range s.catalog {
		if it.SamuraiOnly && !s.samurai {
			continue
		}
		stock = append(stock, it)
	}
	return stock
}

func (s *Shop) find(name string) (Item, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, it := range s.Stock() {
		if it.Name == name {
			return it, true
		}
	}
	return Item{}, false
}

// Cost is the buying price of item, or 0 if it isn't stocked.
func (s *Shop) Cost(item string) int {
	it, _ := s.find(item)
	return it.Cost
}

// BuyBackPrice is what the shop pays for item.
func (s *Shop) BuyBackPrice(item string) int {
	it, ok := s.find(item)
	if !ok {
		return 0
	}
	return int(float64(it.Cost) * s.markdown)
}

// Listing renders the stock with prices for the current intent.
func (s *Shop) Listing() string {
	stock := s.Stock()
	width := 0
	for _, it := range stock {
		width = max(width, runewidth.StringWidth(it.Name))
	}

	var b strings.Builder
	for _, it := range stock {
		price := it.Cost
		if s.intent == IntentSell {
			price = s.BuyBackPrice(it.Name)
		}
		b.WriteString(runewidth.FillRight(it.Name, width))
		fmt.Fprintf(&b, "  %3d gold\n", price)
	}
	return b.String()
}

// Transact settles a trade for item with the customer at the counter and
// closes the counter. Declined trades are reported in the returned message,
// not as errors.
func (s *Shop) Transact(item string) (string, error) {
	if s.customer == nil {
		return "", ErrCounterClosed
	}
	c, intent := s.customer, s.intent
	defer s.Leave()

	it, ok := s.find(item)
	if !ok {
		return "", fmt.Errorf("%q: %w", item, ErrUnknownItem)
	}

	var msg string
	switch intent {
	case IntentBuy:
		if c.BuyItem(it.Name, it.Cost) {
			msg = fmt.Sprintf("Ye' got yerself a %s. Come again soon.", it.Name)
		} else {
			msg = "Hmm, either you don't have enough gold or you've already got one of those!"
		}
	case IntentSell:
		if c.SellItem(it.Name, s.BuyBackPrice(it.Name)) {
			msg = "Pleasure doin' business with you."
		} else {
			msg = "Stop stringin' me along!"
		}
	}

	s.log.Debug("shop transaction",
		"hunter", c.Name(),
		"intent", intent,
		"item", it.Name,
		"gold", c.Gold())
	return msg, nil
}
