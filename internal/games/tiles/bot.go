package tiles

import "math/rand"

// Bot plays a session automatically. Each tile gets a reach point, a leading
// edge position between MinReach and MaxReach of the playfield height, and is
// tapped once it gets there. A MissChance fraction of tiles is never tapped.
type Bot struct {
	MinReach   float64
	MaxReach   float64
	MissChance float64

	rng   *rand.Rand
	reach map[TileID]float64 // Negative means the tile will be missed
}

// NewBot creates a bot with the given miss chance and default reach window.
func NewBot(seed int64, missChance float64) *Bot {
	return &Bot{
		MinReach:   0.35,
		MaxReach:   0.9,
		MissChance: missChance,
		rng:        rand.New(rand.NewSource(seed)),
		reach:      make(map[TileID]float64),
	}
}

// Act taps every tile that has reached its reach point and returns the number
// of accepted taps. Call it once per frame.
func (b *Bot) Act(l *Loop) int {
	s := l.Session()
	if !s.Running() {
		clear(b.reach)
		return 0
	}

	cfg := s.Config().Playfield
	tiles := s.Tiles()
	present := make(map[TileID]struct{}, len(tiles))
	taps := 0

	for _, t := range tiles {
		present[t.ID] = struct{}{}
		if t.Resolved {
			continue
		}

		reach, ok := b.reach[t.ID]
		if !ok {
			reach = b.pick(cfg.Height)
			b.reach[t.ID] = reach
		}
		if reach < 0 || t.Bottom(cfg.TileHeight) < reach {
			continue
		}
		if l.Tap(t.ID).Accepted {
			taps++
		}
	}

	for id := range b.reach {
		if _, ok := present[id]; !ok {
			delete(b.reach, id)
		}
	}
	return taps
}

func (b *Bot) pick(field float64) float64 {
	if b.rng.Float64() < b.MissChance {
		return -1
	}
	frac := b.MinReach + b.rng.Float64()*(b.MaxReach-b.MinReach)
	return frac * field
}
