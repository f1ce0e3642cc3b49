package main

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/wavecrawler/common"
	"github.com/milk9111/wavecrawler/sim"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor = color.NRGBA{A: 200}
	buttonIdle = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	buttonDown = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	textColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// menuUI holds what every menu panel shares: a face from the built-in basic
// font and flat nine-slice images, so no theme assets need loading.
type menuUI struct {
	face   ebtext.Face
	images *widget.ButtonImage
	text   *widget.ButtonTextColor
	panel  *widget.Container
}

func newMenuUI(title string) *menuUI {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	m := &menuUI{
		face: face,
		images: &widget.ButtonImage{
			Idle:    imageui.NewNineSliceColor(buttonIdle),
			Hover:   imageui.NewNineSliceColor(buttonDown),
			Pressed: imageui.NewNineSliceColor(buttonDown),
		},
		text: &widget.ButtonTextColor{Idle: textColor},
	}

	m.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.LevelWidth/2, common.LevelHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	m.panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, &m.face, textColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	))
	return m
}

func (m *menuUI) label(text string) {
	m.panel.AddChild(widget.NewText(
		widget.TextOpts.Text(text, &m.face, textColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	))
}

func (m *menuUI) button(label string, onClick func()) {
	m.panel.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(m.images),
		widget.ButtonOpts.Text(label, &m.face, m.text),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
			Stretch:  true,
		})),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) { onClick() }),
	))
}

func (m *menuUI) ui() *ebitenui.UI {
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(m.panel)
	return &ebitenui.UI{Container: root}
}

// buildMenu returns the overlay for menu, or nil when play is running.
func (g *Game) buildMenu(menu sim.Menu) *ebitenui.UI {
	switch menu {
	case sim.MenuPause:
		return g.pauseMenu()
	case sim.MenuShop:
		return g.shopMenu()
	case sim.MenuUpgrade:
		return g.upgradeMenu()
	}
	return nil
}

func (g *Game) pauseMenu() *ebitenui.UI {
	s := g.session
	m := newMenuUI("Paused")
	m.label(fmt.Sprintf("Seed %d  Level %d  Score %d", s.Seed, s.Number, s.Score))
	m.button("Resume", s.TogglePause)
	if g.clipboard {
		m.button("Copy seed", func() {
			clipboard.Write(clipboard.FmtText, []byte(strconv.FormatInt(s.Seed, 10)))
			g.say("Seed copied")
		})
	}
	m.button("Restart", func() {
		s.Restart()
		g.uiDirty = true
	})
	m.button("Quit", func() { g.quit = true })
	return m.ui()
}

func (g *Game) shopMenu() *ebitenui.UI {
	s := g.session
	m := newMenuUI("Shop")
	if p, _ := s.Level.PlayerStats(); p != nil {
		m.label(fmt.Sprintf("Coins: %d", p.Coins))
	}
	if len(s.Stock) == 0 {
		m.label("Sold out")
	}
	for i, item := range s.Stock {
		m.button(fmt.Sprintf("%s (%d) - %s", item.Name, item.Price, item.Description), func() {
			g.report(s.Buy(i))
		})
	}
	m.button("Leave", func() {
		s.CloseMenu()
		g.uiDirty = true
	})
	return m.ui()
}

func (g *Game) upgradeMenu() *ebitenui.UI {
	s := g.session
	m := newMenuUI("Choose an upgrade")
	for _, u := range s.Offers {
		m.button(fmt.Sprintf("%s - %s", u.Name, u.Description), func() {
			g.report(s.ChooseUpgrade(u.ID))
		})
	}
	m.button("Skip", func() {
		s.CloseMenu()
		g.uiDirty = true
	})
	return m.ui()
}
