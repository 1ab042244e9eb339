package main

import (
	"context"
	"os"
	"strings"

	"farmstead/internal/adapter/catalog/yamlfile"
	staticmaps "farmstead/internal/adapter/maps/static"
	"farmstead/internal/adapter/prefs"
	"farmstead/internal/adapter/repo/memory"
	"farmstead/internal/app/action"
	"farmstead/internal/app/observe"
	"farmstead/internal/app/play"
	"farmstead/internal/app/setup"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	catalog, err := yamlfile.Load(os.Getenv("FARM_CATALOG_PATH"))
	if err != nil {
		hlog.Fatalf("load catalog: %v", err)
	}
	startMoney, err := play.StartMoney(os.Getenv("FARM_START_MONEY"))
	if err != nil {
		hlog.Fatalf("FARM_START_MONEY: %v", err)
	}

	settings, err := prefs.Open("farmstead")
	if err != nil {
		hlog.Warnf("preferences unavailable, using defaults: %v", err)
		settings = prefs.NewStore(nil)
	}
	p, err := settings.Load()
	if err != nil {
		hlog.Warnf("load preferences: %v", err)
		p = prefs.Defaults()
	}
	mapName := p.MapName
	if v := strings.TrimSpace(os.Getenv("FARM_MAP")); v != "" {
		mapName = v
	}

	store := memory.NewStore()
	txManager := memory.NewTxManager(store)
	farms := memory.NewFarmRepo(store)
	events := memory.NewEventRepo(store)
	session := &play.Session{
		Setup: setup.UseCase{
			TxManager:  txManager,
			Farms:      farms,
			Events:     events,
			Maps:       staticmaps.Provider{Root: os.Getenv("FARM_MAPS_ROOT")},
			Catalog:    catalog,
			StartMoney: startMoney,
		},
		Action:  action.UseCase{TxManager: txManager, Farms: farms, Events: events},
		Observe: observe.UseCase{TxManager: txManager, Farms: farms},
	}
	if err := session.Start(context.Background(), mapName); err != nil {
		hlog.Fatalf("start farm on %q: %v", mapName, err)
	}
	hlog.Infof("farm %s ready on %s", session.FarmID(), session.MapName())
	if p.UseMap(session.MapName()) {
		if err := settings.Save(p); err != nil {
			hlog.Warnf("save preferences: %v", err)
		}
	}

	g := newGame(session, settings, p)
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Farmstead")
	if err := ebiten.RunGame(g); err != nil {
		hlog.Fatalf("run game: %v", err)
	}
	g.savePrefs()
}
