// Command headless plays runs without a window. It is used to soak-test the
// simulation and to feed spectators over telemetry.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/milk9111/wavecrawler/ecs"
	"github.com/milk9111/wavecrawler/ecs/system"
	"github.com/milk9111/wavecrawler/level"
	"github.com/milk9111/wavecrawler/logger"
	"github.com/milk9111/wavecrawler/prefabs"
	"github.com/milk9111/wavecrawler/sim"
	"github.com/milk9111/wavecrawler/telemetry"
	"github.com/sirupsen/logrus"
)

func main() {
	seed := flag.Int64("seed", 1, "run seed")
	startLevel := flag.Int("level", 1, "level to start on")
	levels := flag.Int("levels", 5, "stop after this many levels are completed")
	duration := flag.Duration("duration", 10*time.Minute, "stop after this much simulated time")
	dt := flag.Float64("dt", 1.0/60, "seconds per tick")
	realtime := flag.Bool("realtime", false, "pace ticks to the wall clock")
	telemetryAddr := flag.String("telemetry", "", "serve spectator telemetry on this address")
	asJSON := flag.Bool("json", false, "print the final snapshot as JSON")
	flag.Parse()

	logger.Init()
	log := logger.For("headless")

	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		log.WithError(err).Fatal("load prefabs")
	}
	session, err := sim.NewSession(sim.Config{Seed: *seed, Level: *startLevel, Catalog: catalog, Curve: level.LoadCurve()})
	if err != nil {
		log.WithError(err).Fatal("start session")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var srv *telemetry.Server
	if *telemetryAddr != "" {
		srv = telemetry.NewServer(*telemetryAddr)
		go func() {
			if err := srv.Run(ctx); err != nil {
				log.WithError(err).Error("telemetry server stopped")
			}
		}()
	}

	r := runner{
		session: session,
		rng:     rand.New(rand.NewSource(*seed)),
		dt:      *dt,
		target:  *startLevel + *levels,
		limit:   duration.Seconds(),
		publish: func(events []ecs.Event) {
			if srv != nil {
				srv.Publish(session.ID, events)
				srv.SetSnapshot(session.Snapshot())
			}
		},
	}
	if *realtime {
		r.pace = time.NewTicker(time.Duration(*dt * float64(time.Second))).C
	}
	stats := r.run(ctx)

	snap := session.Snapshot()
	log.WithFields(logrus.Fields{
		"seed":      *seed,
		"level":     snap.Level,
		"score":     session.FinalScore(),
		"over":      snap.Over,
		"simulated": stats.elapsed,
		"kills":     stats.events[system.EventEnemyKilled],
		"pickups":   stats.events[system.EventItemPickedUp] + stats.events[system.EventItemUsed],
	}).Info("run finished")

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			log.WithError(err).Error("encode snapshot")
		}
	}
}
