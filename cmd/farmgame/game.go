package main

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	"farmstead/internal/adapter/prefs"
	"farmstead/internal/app/action"
	"farmstead/internal/app/play"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	tileSize     = 48
	sidebarWidth = 260
	minHeight    = 420
)

var (
	colorGrass    = color.RGBA{R: 96, G: 160, B: 72, A: 255}
	colorSoil     = color.RGBA{R: 110, G: 72, B: 44, A: 255}
	colorUntilled = color.RGBA{R: 168, G: 132, B: 90, A: 255}
	colorPlant    = color.RGBA{R: 40, G: 110, B: 40, A: 255}
	colorRipe     = color.RGBA{R: 230, G: 200, B: 40, A: 255}
	colorPlayer   = color.RGBA{R: 60, G: 90, B: 220, A: 255}
	colorGridLine = color.RGBA{R: 0, G: 0, B: 0, A: 60}
	colorSidebar  = color.RGBA{R: 30, G: 30, B: 36, A: 255}
)

var keysByName = map[string][]ebiten.Key{
	"w": {ebiten.KeyW, ebiten.KeyArrowUp},
	"a": {ebiten.KeyA, ebiten.KeyArrowLeft},
	"s": {ebiten.KeyS, ebiten.KeyArrowDown},
	"d": {ebiten.KeyD, ebiten.KeyArrowRight},
	"p": {ebiten.KeyP},
	"h": {ebiten.KeyH},
	"r": {ebiten.KeyR},
	"t": {ebiten.KeyT},
	"u": {ebiten.KeyU},
	"n": {ebiten.KeyN},
	"b": {ebiten.KeyB},
	"v": {ebiten.KeyV},
}

func justPressed(name string) bool {
	for _, key := range keysByName[name] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Game adapts a play.Session to the ebiten loop.
type Game struct {
	session  *play.Session
	settings *prefs.Store
	prefs    prefs.Preferences
}

func newGame(s *play.Session, settings *prefs.Store, p prefs.Preferences) *Game {
	return &Game{session: s, settings: settings, prefs: p}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.prefs.ShowHelp = !g.prefs.ShowHelp
		g.savePrefs()
	}
	ctx := context.Background()
	g.session.PressKeys(ctx, justPressed)
	for i, key := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.session.SelectIndex(ctx, i+1)
		}
	}
	state := g.session.View().State
	if g.prefs.Record(state.Player.Money, state.Day) {
		g.savePrefs()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	view := g.session.View()
	for _, tile := range view.Tiles {
		x := float32(tile.Pos.Col * tileSize)
		y := float32(tile.Pos.Row * tileSize)
		vector.DrawFilledRect(screen, x, y, tileSize, tileSize, groundColor(tile.Ground), false)
		vector.StrokeRect(screen, x, y, tileSize, tileSize, 1, colorGridLine, false)
		if tile.Plant != "" {
			clr := colorPlant
			if tile.Harvestable {
				clr = colorRipe
			}
			vector.DrawFilledRect(screen, x+12, y+12, tileSize-24, tileSize-24, clr, false)
			ebitenutil.DebugPrintAt(screen, tile.Plant[:1], int(x)+4, int(y)+2)
		}
		if tile.Player {
			vector.StrokeRect(screen, x+3, y+3, tileSize-6, tileSize-6, 3, colorPlayer, false)
		}
	}

	w, h := g.Layout(0, 0)
	left := float32(w - sidebarWidth)
	vector.DrawFilledRect(screen, left, 0, sidebarWidth, float32(h), colorSidebar, false)
	ebitenutil.DebugPrintAt(screen, g.sidebar(), int(left)+8, 8)
}

func (g *Game) Layout(_, _ int) (int, int) {
	dims := g.session.View().State.Dimensions
	w := dims.Cols*tileSize + sidebarWidth
	h := dims.Rows * tileSize
	if h < minHeight {
		h = minHeight
	}
	return w, h
}

func (g *Game) sidebar() string {
	view := g.session.View()
	player := view.State.Player
	var b strings.Builder
	fmt.Fprintf(&b, "Day %d\n", view.State.Day)
	fmt.Fprintf(&b, "Money %d\n", player.Money)
	fmt.Fprintf(&b, "Energy %d/%d\n", player.Energy, player.MaxEnergy)
	fmt.Fprintf(&b, "Standing on %s\n\n", player.Ground)
	for i, item := range player.Inventory {
		marker := " "
		if item.Item == player.Selected {
			marker = ">"
		}
		fmt.Fprintf(&b, "%s%d %s x%d\n", marker, i+1, item.Item, item.Count)
	}
	if msg := g.session.Message(); msg != "" {
		fmt.Fprintf(&b, "\n%s\n", msg)
	}
	fmt.Fprintf(&b, "\nBest: %d money, day %d\n", g.prefs.BestMoney, g.prefs.BestDay)
	if g.prefs.ShowHelp {
		b.WriteString("\n")
		for _, key := range action.KeyBindings() {
			in, _ := action.IntentForKey(key)
			label := string(in.Type)
			if in.Direction != "" {
				label += " " + string(in.Direction)
			}
			fmt.Fprintf(&b, "%s  %s\n", strings.ToUpper(key), label)
		}
		b.WriteString("1-9 select, F1 help, Esc quit\n")
	}
	return b.String()
}

func (g *Game) savePrefs() {
	if err := g.settings.Save(g.prefs); err != nil {
		hlog.Warnf("save preferences: %v", err)
	}
}

func groundColor(ground string) color.Color {
	switch ground {
	case "grass":
		return colorGrass
	case "soil":
		return colorSoil
	default:
		return colorUntilled
	}
}
