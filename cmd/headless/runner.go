package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/milk9111/wavecrawler/ecs"
	"github.com/milk9111/wavecrawler/logger"
	"github.com/milk9111/wavecrawler/sim"
)

type runStats struct {
	elapsed float64
	ticks   int
	events  map[string]int
}

// runner drives a session until the run ends, the level target is reached,
// the simulated time limit passes or ctx is cancelled.
type runner struct {
	session *sim.Session
	pilot   pilot
	rng     *rand.Rand
	dt      float64
	target  int
	limit   float64
	pace    <-chan time.Time
	publish func([]ecs.Event)
}

func (r *runner) run(ctx context.Context) runStats {
	stats := runStats{events: map[string]int{}}
	log := logger.For("headless")

	for !r.session.Over() && r.session.Number < r.target && stats.elapsed < r.limit {
		if r.pace != nil {
			select {
			case <-ctx.Done():
				return stats
			case <-r.pace:
			}
		} else if ctx.Err() != nil {
			return stats
		}

		r.handleMenu()

		events := r.session.Update(r.dt, r.pilot.input(r.session.Level))
		for _, e := range events {
			stats.events[e.Type]++
			if e.Type == sim.EventLevelStarted {
				log.WithField("level", r.session.Number).Debug("level started")
			}
		}
		if r.publish != nil {
			r.publish(events)
		}
		stats.elapsed += r.dt
		stats.ticks++
	}
	return stats
}

// handleMenu takes a random upgrade offer and closes anything else.
func (r *runner) handleMenu() {
	s := r.session
	switch s.Menu() {
	case sim.MenuNone:
	case sim.MenuUpgrade:
		if len(s.Offers) == 0 {
			s.CloseMenu()
			return
		}
		pick := s.Offers[r.rng.Intn(len(s.Offers))]
		if err := s.ChooseUpgrade(pick.ID); err != nil {
			logger.For("headless").WithError(err).Warn("choose upgrade")
			s.CloseMenu()
		}
	default:
		s.CloseMenu()
	}
}
