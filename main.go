package main

import (
	"context"
	"flag"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/wavecrawler/common"
	"github.com/milk9111/wavecrawler/level"
	"github.com/milk9111/wavecrawler/logger"
	"github.com/milk9111/wavecrawler/prefabs"
	"github.com/milk9111/wavecrawler/sim"
	"github.com/milk9111/wavecrawler/telemetry"
	"github.com/sirupsen/logrus"
	"golang.design/x/clipboard"
)

func main() {
	seed := flag.Int64("seed", 0, "run seed (0 picks one from the clock)")
	startLevel := flag.Int("level", 1, "level to start on")
	telemetryAddr := flag.String("telemetry", "", "serve spectator telemetry on this address, e.g. :8080")
	watch := flag.Bool("watch", false, "reload prefabs/ between levels when files change")
	debug := flag.Bool("debug", false, "draw hitboxes and log at debug level")
	flag.Parse()

	logger.Init()
	if *debug {
		logger.Log.SetLevel(logrus.DebugLevel)
	}
	log := logger.For("main")

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		log.WithError(err).Fatal("load prefabs")
	}

	session, err := sim.NewSession(sim.Config{
		Seed:    *seed,
		Level:   *startLevel,
		Catalog: catalog,
		Curve:   level.LoadCurve(),
	})
	if err != nil {
		log.WithError(err).Fatal("start session")
	}

	game := NewGame(session, *debug)

	if err := clipboard.Init(); err != nil {
		log.WithError(err).Warn("clipboard unavailable")
	} else {
		game.clipboard = true
	}

	if *watch {
		w, err := prefabs.NewWatcher(prefabs.DiskDir, filepath.Join(prefabs.DiskDir, "scripts"))
		if err != nil {
			log.WithError(err).Warn("prefab watcher disabled")
		} else {
			defer w.Close()
			game.watcher = w
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if *telemetryAddr != "" {
		srv := telemetry.NewServer(*telemetryAddr)
		game.telemetry = srv
		go func() {
			if err := srv.Run(ctx); err != nil {
				log.WithError(err).Error("telemetry server stopped")
			}
		}()
	}

	ebiten.SetWindowSize(common.LevelWidth, common.LevelHeight)
	ebiten.SetWindowTitle("wavecrawler")
	ebiten.SetTPS(ticksPerSecond)

	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Fatal("game loop")
	}
}
