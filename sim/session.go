package sim

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/google/uuid"
	"github.com/milk9111/wavecrawler/ecs"
	"github.com/milk9111/wavecrawler/ecs/component"
	"github.com/milk9111/wavecrawler/ecs/system"
	"github.com/milk9111/wavecrawler/level"
	"github.com/milk9111/wavecrawler/logger"
	"github.com/milk9111/wavecrawler/prefabs"
	"github.com/sirupsen/logrus"
)

var (
	ErrNotEnoughCoins = errors.New("sim: not enough coins")
	ErrNoSuchUpgrade  = errors.New("sim: no such upgrade offered")
	ErrMenuClosed     = errors.New("sim: menu is not open")
	ErrGameOver       = errors.New("sim: game is over")

	ErrUnknownItem   = system.ErrUnknownItem
	ErrNotEquippable = system.ErrNotEquippable
)

// Menu is the overlay that currently holds the simulation paused.
type Menu int

const (
	MenuNone Menu = iota
	MenuPause
	MenuShop
	MenuUpgrade
)

func (m Menu) String() string {
	switch m {
	case MenuPause:
		return "pause"
	case MenuShop:
		return "shop"
	case MenuUpgrade:
		return "upgrade"
	}
	return "none"
}

// Countdowns after a level is completed, and how long messages stay up.
const (
	UpgradeDelay   = 1.0
	NextLevelDelay = 1.5
	MessageTime    = 2.0
)

type Config struct {
	Seed    int64
	Level   int
	Catalog *prefabs.Catalog
	Curve   level.Curve
}

// Session is one run: the current level, the player's progress between
// levels, and the menus that pause play.
type Session struct {
	ID        string
	Seed      int64
	Number    int
	Score     int
	Level     *Level
	Inventory []string
	Stock     []*component.Item
	Offers    []prefabs.UpgradeSpec

	cfg     Config
	catalog *prefabs.Catalog
	rng     *rand.Rand
	events  ecs.EventQueue
	log     *logrus.Entry

	menu        Menu
	over        bool
	final       int
	transition  float64
	inTransit   bool
	offered     bool
	message     string
	messageLeft float64
}

func NewSession(cfg Config) (*Session, error) {
	if cfg.Catalog == nil {
		return nil, fmt.Errorf("sim: session needs a catalog")
	}
	if cfg.Level < 1 {
		cfg.Level = 1
	}
	if cfg.Curve == nil {
		cfg.Curve = level.DefaultCurve
	}
	s := &Session{cfg: cfg}
	s.start()
	return s, nil
}

func (s *Session) start() {
	cfg := s.cfg
	*s = Session{
		ID:      uuid.NewString(),
		Seed:    cfg.Seed,
		Number:  cfg.Level,
		cfg:     cfg,
		catalog: cfg.Catalog,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
	}
	s.log = logger.For("session").WithField("session", s.ID)
	s.log.WithField("seed", s.Seed).Info("session started")
	s.loadLevel(nil)
}

func (s *Session) loadLevel(carry *Carry) {
	s.Level = NewLevel(LevelConfig{
		Number:    s.Number,
		Catalog:   s.catalog,
		Rand:      s.rng,
		Curve:     s.cfg.Curve,
		Inventory: s,
		Carry:     carry,
	})
	s.events.Emit(EventLevelStarted, LevelStarted{Number: s.Number, Enemies: s.Level.EnemiesLeft()})
	s.say(fmt.Sprintf("Level %d", s.Number))
}

// Restart begins a new run with the same configuration.
func (s *Session) Restart() {
	s.start()
}

// SetCatalog swaps the data tables. The current level keeps the old ones;
// the next level is generated with c.
func (s *Session) SetCatalog(c *prefabs.Catalog) {
	if c != nil {
		s.catalog = c
	}
}

func (s *Session) Catalog() *prefabs.Catalog { return s.catalog }

// AddItem puts a picked-up equippable into the inventory.
func (s *Session) AddItem(itemType string) {
	s.Inventory = append(s.Inventory, itemType)
	if spec, ok := s.catalog.Item(itemType); ok {
		s.say(fmt.Sprintf("Picked up %s", spec.Name))
	}
}

// Update advances the session by dt. The level only ticks while no menu is
// open, but the level-complete countdown keeps running so the next level
// loads behind the upgrade menu.
func (s *Session) Update(dt float64, in Input) []ecs.Event {
	if s.messageLeft > 0 {
		s.messageLeft -= dt
		if s.messageLeft <= 0 {
			s.message = ""
		}
	}
	if s.over {
		return s.events.Drain()
	}

	s.advanceTransition(dt)

	if s.menu == MenuNone {
		for _, evt := range s.Level.Tick(dt, in) {
			s.handle(evt)
			s.events.Push(evt)
		}
	}
	return s.events.Drain()
}

func (s *Session) advanceTransition(dt float64) {
	if !s.inTransit {
		return
	}
	s.transition += dt
	if !s.offered && s.transition >= UpgradeDelay {
		s.offered = true
		s.offerUpgrades()
	}
	if s.transition >= NextLevelDelay {
		s.inTransit = false
		carry := s.Level.Carry()
		s.Number++
		s.loadLevel(&carry)
	}
}

func (s *Session) handle(evt ecs.Event) {
	switch data := evt.Data.(type) {
	case system.LevelCompleted:
		s.Score += data.Number * 100
		s.inTransit, s.transition, s.offered = true, 0, false
		s.say(fmt.Sprintf("Level %d complete!", data.Number))
	case system.PlayerLeveledUp:
		s.say(fmt.Sprintf("Reached level %d!", data.Level))
	case system.PlayerDied:
		s.over = true
		s.inTransit = false
		s.final = s.computeScore()
		s.menu = MenuNone
		s.events.Emit(EventGameOver, GameOver{Level: s.Number, PlayerLevel: data.Level, Score: s.final})
		s.log.WithFields(logrus.Fields{"level": s.Number, "score": s.final}).Info("game over")
	}
}

func (s *Session) computeScore() int {
	score := s.Number * 100
	if p, _ := s.Level.PlayerStats(); p != nil {
		score += p.Level*50 + p.Coins
	}
	return score
}

// FinalScore is level*100 + playerLevel*50 + coins, fixed at game over and
// computed live before it.
func (s *Session) FinalScore() int {
	if s.over {
		return s.final
	}
	return s.computeScore()
}

func (s *Session) Over() bool { return s.over }
func (s *Session) Menu() Menu { return s.menu }

// Paused reports whether the level is frozen.
func (s *Session) Paused() bool { return s.menu != MenuNone }

func (s *Session) Message() string { return s.message }

func (s *Session) say(msg string) {
	s.message = msg
	s.messageLeft = MessageTime
}

// TogglePause opens or closes the pause menu. Other menus are left alone.
func (s *Session) TogglePause() {
	switch s.menu {
	case MenuNone:
		s.menu = MenuPause
	case MenuPause:
		s.menu = MenuNone
	}
}

// CloseMenu resumes play. Closing the upgrade menu forfeits the offer.
func (s *Session) CloseMenu() {
	s.menu = MenuNone
	s.Stock = nil
	s.Offers = nil
}

func (s *Session) playerLevel() int {
	if p, _ := s.Level.PlayerStats(); p != nil {
		return p.Level
	}
	return 1
}

// OpenShop rolls fresh stock for the player's level and pauses play.
func (s *Session) OpenShop() error {
	if s.over {
		return ErrGameOver
	}
	if s.menu != MenuNone {
		return nil
	}
	s.Stock = s.Stock[:0]
	for _, name := range ShopStock(s.catalog.Shop, s.playerLevel(), s.rng) {
		item, err := system.NewItem(s.catalog, name, s.rng)
		if err != nil {
			s.log.WithError(err).Warn("shop stock")
			continue
		}
		s.Stock = append(s.Stock, item)
	}
	s.menu = MenuShop
	return nil
}

// Buy purchases Stock[i]. Equippables go to the inventory, consumables are
// used at once. The item leaves the stock.
func (s *Session) Buy(i int) error {
	if s.menu != MenuShop {
		return ErrMenuClosed
	}
	if i < 0 || i >= len(s.Stock) {
		return fmt.Errorf("%w: stock index %d", ErrUnknownItem, i)
	}
	item := s.Stock[i]
	p, _ := s.Level.PlayerStats()
	if p == nil {
		return system.ErrNoPlayer
	}
	if !p.SpendCoins(item.Price) {
		return fmt.Errorf("%w: %s costs %d, have %d", ErrNotEnoughCoins, item.Name, item.Price, p.Coins)
	}

	if item.Equippable() {
		s.Inventory = append(s.Inventory, item.Type)
		s.say(fmt.Sprintf("Bought %s", item.Name))
	} else {
		if err := system.UseItem(s.Level.World, s.Level.Player, item); err != nil {
			p.Coins += item.Price
			return err
		}
		s.say(fmt.Sprintf("Bought and used %s", item.Name))
	}
	s.Stock = slices.Delete(s.Stock, i, i+1)
	s.log.WithFields(logrus.Fields{"item": item.Type, "price": item.Price}).Info("shop purchase")
	return nil
}

// OpenUpgrades offers upgrades on demand.
func (s *Session) OpenUpgrades() error {
	if s.over {
		return ErrGameOver
	}
	if s.menu != MenuNone {
		return nil
	}
	s.offerUpgrades()
	return nil
}

func (s *Session) offerUpgrades() {
	s.Stock = nil
	s.Offers = UpgradeOffers(s.catalog.Upgrades, s.playerLevel(), s.rng)
	s.menu = MenuUpgrade
	s.events.Emit(EventUpgradeOffered, UpgradeOffered{Options: slices.Clone(s.Offers)})
}

// ChooseUpgrade applies one of the current offers and closes the menu.
func (s *Session) ChooseUpgrade(id string) error {
	if s.menu != MenuUpgrade {
		return ErrMenuClosed
	}
	i := slices.IndexFunc(s.Offers, func(u prefabs.UpgradeSpec) bool { return u.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNoSuchUpgrade, id)
	}
	u := s.Offers[i]
	if err := system.ApplyUpgrade(s.Level.World, s.Level.Player, u.Stat, u.Op, u.Amount); err != nil {
		return err
	}
	s.say(fmt.Sprintf("Upgraded: %s", u.Name))
	s.log.WithField("upgrade", u.ID).Info("upgrade chosen")
	s.CloseMenu()
	return nil
}

// Equip moves Inventory[i] into its slot; whatever the slot held goes back to
// the inventory.
func (s *Session) Equip(i int) error {
	if i < 0 || i >= len(s.Inventory) {
		return fmt.Errorf("%w: inventory index %d", ErrUnknownItem, i)
	}
	replaced, err := system.Equip(s.Level.World, s.catalog, s.Level.Player, s.Inventory[i])
	if err != nil {
		return err
	}
	s.Inventory = slices.Delete(s.Inventory, i, i+1)
	if replaced != "" {
		s.Inventory = append(s.Inventory, replaced)
	}
	return nil
}

// Unequip empties slot into the inventory.
func (s *Session) Unequip(slot component.Slot) error {
	removed, err := system.Unequip(s.Level.World, s.Level.Player, slot)
	if err != nil {
		return err
	}
	if removed != "" {
		s.Inventory = append(s.Inventory, removed)
	}
	return nil
}
