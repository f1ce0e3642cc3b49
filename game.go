package main

import (
	"fmt"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/wavecrawler/common"
	"github.com/milk9111/wavecrawler/logger"
	"github.com/milk9111/wavecrawler/prefabs"
	"github.com/milk9111/wavecrawler/render"
	"github.com/milk9111/wavecrawler/sim"
	"github.com/milk9111/wavecrawler/telemetry"
	"github.com/sirupsen/logrus"
)

const ticksPerSecond = 60

const noticeTime = 2.0

type Game struct {
	session *sim.Session
	debug   bool
	aim     float64

	clipboard bool
	watcher   *prefabs.Watcher
	telemetry *telemetry.Server

	ui      *ebitenui.UI
	uiMenu  sim.Menu
	uiDirty bool
	quit    bool

	notice     string
	noticeLeft float64

	log *logrus.Entry
}

func NewGame(session *sim.Session, debug bool) *Game {
	return &Game{
		session: session,
		debug:   debug,
		log:     logger.For("game"),
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	const dt = 1.0 / ticksPerSecond

	g.handleKeys(readMenuKeys())
	g.reloadPrefabs()

	in := readInput(g.session.Level, g.aim)
	g.aim = in.Aim
	events := g.session.Update(dt, in)

	if g.telemetry != nil {
		g.telemetry.Publish(g.session.ID, events)
		g.telemetry.SetSnapshot(g.session.Snapshot())
	}

	if g.noticeLeft > 0 {
		g.noticeLeft -= dt
	}

	g.syncMenu()
	if g.ui != nil {
		g.ui.Update()
	}
	return nil
}

func (g *Game) handleKeys(k menuKey) {
	s := g.session
	if s.Over() {
		if k.restart {
			s.Restart()
			g.uiDirty = true
		}
		return
	}

	switch {
	case k.pause:
		if s.Menu() == sim.MenuNone || s.Menu() == sim.MenuPause {
			s.TogglePause()
		} else {
			s.CloseMenu()
		}
	case k.shop && s.Menu() == sim.MenuNone:
		g.report(s.OpenShop())
	case k.upgrade && s.Menu() == sim.MenuNone:
		g.report(s.OpenUpgrades())
	case k.equip >= 0 && k.equip < len(s.Inventory):
		g.report(s.Equip(k.equip))
	}
}

// reloadPrefabs picks up edited data files. The session keeps the current
// level's tables and switches when the next level is generated.
func (g *Game) reloadPrefabs() {
	changed := g.watcher.Pending()
	if len(changed) == 0 {
		return
	}
	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		g.log.WithError(err).WithField("files", changed).Warn("prefab reload failed")
		g.say("Prefab reload failed")
		return
	}
	g.session.SetCatalog(catalog)
	g.log.WithField("files", changed).Info("prefabs reloaded")
	g.say("Prefabs reloaded")
}

func (g *Game) report(err error) {
	if err == nil {
		g.uiDirty = true
		return
	}
	g.log.WithError(err).Debug("action rejected")
	g.say(err.Error())
}

func (g *Game) say(msg string) {
	g.notice = msg
	g.noticeLeft = noticeTime
}

func (g *Game) syncMenu() {
	menu := g.session.Menu()
	if menu == g.uiMenu && !g.uiDirty {
		return
	}
	g.uiMenu = menu
	g.uiDirty = false
	g.ui = g.buildMenu(menu)
}

func (g *Game) Draw(screen *ebiten.Image) {
	l := g.session.Level
	cmds := render.Build(l)
	drawCommands(screen, cmds)
	if g.debug {
		drawCommands(screen, render.Hitboxes(l))
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f  draws: %d  t: %.1fs", ebiten.ActualFPS(), len(cmds), l.Elapsed()), 8, common.LevelHeight-20)
	}

	g.drawHUD(screen)

	if g.ui != nil {
		g.ui.Draw(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	s := g.session
	snap := s.Snapshot()

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP %.0f/%.0f  Lv %d  XP %d  Coins %d",
		snap.Health, snap.MaxHealth, snap.PlayerLevel, snap.Experience, snap.Coins), 8, 4)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level %d  Score %d  Enemies %d",
		snap.Level, snap.Score, snap.Enemies), 8, 20)

	if len(snap.Inventory) > 0 {
		names := make([]string, len(snap.Inventory))
		for i, item := range snap.Inventory {
			names[i] = fmt.Sprintf("%d:%s", i+1, itemName(s.Catalog(), item))
		}
		ebitenutil.DebugPrintAt(screen, "Inventory "+strings.Join(names, " "), 8, 36)
	}

	if msg := s.Message(); msg != "" {
		ebitenutil.DebugPrintAt(screen, msg, common.LevelWidth/2-len(msg)*3, 60)
	}
	if g.noticeLeft > 0 {
		ebitenutil.DebugPrintAt(screen, g.notice, common.LevelWidth/2-len(g.notice)*3, 76)
	}

	if s.Over() {
		line := fmt.Sprintf("GAME OVER  Score %d  (R to restart)", s.FinalScore())
		ebitenutil.DebugPrintAt(screen, line, common.LevelWidth/2-len(line)*3, common.LevelHeight/2)
	}
}

func itemName(c *prefabs.Catalog, itemType string) string {
	if spec, ok := c.Item(itemType); ok && spec.Name != "" {
		return spec.Name
	}
	return itemType
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.LevelWidth, common.LevelHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
