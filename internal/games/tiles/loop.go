package tiles

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Timers is the clock service the loop runs on.
// Callbacks must be delivered one at a time, never concurrently with each
// other or with calls into the Loop. Once cancel returns, fn is never called
// again.
type Timers interface {
	// Every calls fn once per interval until cancelled.
	Every(interval time.Duration, fn func()) (cancel func())
	// EachFrame calls fn once per redraw until cancelled.
	EachFrame(fn func()) (cancel func())
}

// Listener observes run lifecycle events.
type Listener interface {
	SessionStarted()
	TileScored(score int, first bool)
	SessionEnded(score int)
}

// Loop drives a Session from a Timers service. Starting a run schedules the
// spawn tick and the motion step; losing cancels both.
type Loop struct {
	session   *Session
	timers    Timers
	listeners []Listener
	logger    *log.Logger

	cancelSpawn func()
	cancelFrame func()
}

// NewLoop creates a loop. A nil logger discards output.
func NewLoop(session *Session, timers Timers, logger *log.Logger, listeners ...Listener) *Loop {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		session:   session,
		timers:    timers,
		listeners: listeners,
		logger:    logger,
	}
}

// Session returns the driven session.
func (l *Loop) Session() *Session {
	return l.session
}

// Start leaves the menu and begins the first run.
func (l *Loop) Start() error {
	if err := l.session.Start(); err != nil {
		return err
	}
	l.begin()
	return nil
}

// Restart begins a new run after game over.
func (l *Loop) Restart() error {
	if err := l.session.Restart(); err != nil {
		return err
	}
	l.begin()
	return nil
}

// Ticking reports whether the spawn and frame timers are scheduled.
func (l *Loop) Ticking() bool {
	return l.cancelSpawn != nil || l.cancelFrame != nil
}

func (l *Loop) begin() {
	l.stop()

	interval := l.session.Config().Spawner.Interval()
	l.cancelSpawn = l.timers.Every(interval, l.spawnTick)
	l.cancelFrame = l.timers.EachFrame(l.frameTick)

	l.logger.Info("run started",
		"speed", l.session.Speed(),
		"spawn_interval", interval,
	)
	for _, ls := range l.listeners {
		ls.SessionStarted()
	}
}

func (l *Loop) spawnTick() {
	created := l.session.Spawn()
	if len(created) == 0 {
		l.logger.Debug("spawn skipped, no free lane")
		return
	}
	for _, t := range created {
		l.logger.Debug("tile spawned", "id", t.ID, "lane", t.Lane)
	}
}

func (l *Loop) frameTick() {
	if l.session.Advance() {
		l.end()
	}
}

// end stops both clocks and reports the final score.
func (l *Loop) end() {
	l.stop()

	score := l.session.Score()
	missed, _ := l.session.Missed()
	l.logger.Info("run ended",
		"score", score,
		"speed", l.session.Speed(),
		"frames", l.session.Frame(),
		"missed_lane", missed.Lane,
	)
	for _, ls := range l.listeners {
		ls.SessionEnded(score)
	}
}

func (l *Loop) stop() {
	if l.cancelSpawn != nil {
		l.cancelSpawn()
		l.cancelSpawn = nil
	}
	if l.cancelFrame != nil {
		l.cancelFrame()
		l.cancelFrame = nil
	}
}

// Tap forwards a tap on a specific tile.
func (l *Loop) Tap(id TileID) TapResult {
	return l.scored(l.session.Tap(id))
}

// TapLane forwards a tap on a lane.
func (l *Loop) TapLane(lane int) TapResult {
	return l.scored(l.session.TapLane(lane))
}

func (l *Loop) scored(res TapResult) TapResult {
	if !res.Accepted {
		return res
	}
	l.logger.Debug("tile tapped", "id", res.Tile, "score", res.Score, "speed", res.Speed)
	for _, ls := range l.listeners {
		ls.TileScored(res.Score, res.First)
	}
	return res
}
