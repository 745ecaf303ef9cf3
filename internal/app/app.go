package app

import (
	"fmt"
	"math"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/diegok/pixgolf/internal/audio"
	"github.com/diegok/pixgolf/internal/config"
	"github.com/diegok/pixgolf/internal/game"
	"github.com/diegok/pixgolf/internal/snapshot"
	"github.com/diegok/pixgolf/internal/ui"
)

// TickRate is the number of simulation steps and renders per second
const TickRate = 60

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg      *config.Config
	log      *log.Logger
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *game.Session
	pointer  ui.Pointer
	scale    ui.Scale

	recorder   *snapshot.Codec
	recordFile *os.File

	tick int

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config, logger *log.Logger) *App {
	return &App{
		cfg:     cfg,
		log:     logger,
		session: game.NewSession(cfg.Physics, game.DefaultCourse(), cfg.Env),
		quit:    make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It initializes the screen, sets up signal handling, and starts the game.
func (a *App) Run() error {
	if !a.cfg.Mute {
		// The game works without sound
		if err := audio.Init(); err != nil {
			a.log.Warn("audio disabled", "err", err)
		}
	}

	if a.cfg.RecordFile != "" {
		if err := a.startRecording(a.cfg.RecordFile, time.Now()); err != nil {
			return err
		}
	}

	screen, err := ui.InitScreen()
	if err != nil {
		a.cleanup()
		return errors.Wrap(err, "failed to initialize screen")
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)

	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-a.sigChan
		close(a.quit)
	}()

	// Restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			a.cleanup()
			fmt.Fprintf(os.Stderr, "\nPIXGOLF CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	var runErr error
	if a.cfg.ReplayFile != "" {
		runErr = a.runReplay(a.cfg.ReplayFile)
	} else {
		a.log.Info("session started", "strength", a.session.Env.Strength(), "drag", a.session.Env.Drag(), "speed", a.session.Env.Speed())
		runErr = a.mainLoop()
		a.log.Info("session ended", "strokes", a.session.Strokes)
	}

	a.cleanup()

	return runErr
}

// pollEvents forwards screen events until quit
func (a *App) pollEvents() <-chan tcell.Event {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()
	return events
}

// mainLoop is the main event loop that handles all input and state updates.
func (a *App) mainLoop() error {
	events := a.pollEvents()

	ticker := time.NewTicker(time.Second / TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			frame, err := a.step(now)
			if err != nil {
				return err
			}
			a.renderer.RenderFrame(frame)
		}
	}
}

// handleEvent processes keyboard, mouse and resize events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.dispatch(ui.KeyToEvent(ev.Key(), ev.Rune()))

	case *tcell.EventMouse:
		col, row := ev.Position()
		if a.pointer.HandleMouse(col, row, ev.Buttons(), a.scale) {
			return a.dispatch(game.EventStrike)
		}

	case *tcell.EventResize:
		a.screen.Clear()
	}

	return false
}

// dispatch applies one game event, reporting strokes and preset changes.
// Returns true if the application should quit.
func (a *App) dispatch(ev game.Event) bool {
	if ev == game.EventNone {
		return false
	}

	strokes := a.session.Strokes
	quit := a.session.Dispatch(ev)
	if err := a.record(&snapshot.Message{Type: snapshot.MsgInput, Payload: snapshot.Input{Tick: a.tick, Event: ev.String()}}); err != nil {
		a.log.Error("recording input", "err", err)
	}

	switch ev {
	case game.EventStrike:
		if a.session.Strokes > strokes {
			audio.PlayStroke()
			aim := a.session.Aim
			a.log.Info("ball hit",
				"stroke", a.session.Strokes,
				"power", round2(aim.Power),
				"angle", aim.Degrees(),
				"cos", round2(math.Cos(aim.Angle)),
				"sin", round2(math.Sin(aim.Angle)))
		}
	case game.EventStrengthUp, game.EventStrengthDown:
		a.log.Debug("strength changed", "strength", a.session.Env.Strength())
	case game.EventDragUp, game.EventDragDown:
		a.log.Debug("drag changed", "drag", a.session.Env.Drag())
	case game.EventSpeedUp, game.EventSpeedDown:
		a.log.Debug("speed changed", "speed", a.session.Env.Speed())
	case game.EventReset:
		a.log.Info("new game")
	}

	return quit
}

// step advances the session one tick and returns the frame to draw
func (a *App) step(now time.Time) (snapshot.Frame, error) {
	a.tick++
	result := a.session.Tick(now, a.pointer.Pos)
	ball := a.session.Ball

	if result.Frame > 0 {
		a.log.Debug("update",
			"frame", result.Frame,
			"x", math.Round(ball.X),
			"y", math.Round(ball.Y),
			"vx", math.Round(ball.VX),
			"vy", math.Round(ball.VY))
	}

	switch result.Outcome {
	case game.OutcomeBounced:
		audio.PlayBounce(math.Abs(ball.VY))
		a.log.Debug("bounce", "hazard", result.Contact.Hazard)
	case game.OutcomeRested:
		audio.PlayRest()
		a.log.Info("ball at rest", "x", math.Round(ball.X), "strokes", a.session.Strokes)
	case game.OutcomeOutOfBounds:
		audio.PlayPenalty()
		a.log.Info("out of bounds", "strokes", a.session.Strokes, "respawn_x", math.Round(ball.X), "respawn_y", math.Round(ball.Y))
	}

	frame := snapshot.FromSession(a.session, a.tick)
	if a.renderer != nil {
		a.scale = a.renderer.Scale(frame)
	}
	if err := a.record(&snapshot.Message{Type: snapshot.MsgFrame, Payload: frame}); err != nil {
		return frame, err
	}
	return frame, nil
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	audio.Close()

	if err := a.stopRecording(); err != nil {
		a.log.Error("closing trace", "err", err)
	}

	if a.screen != nil {
		a.screen.Fini()
	}

	if a.sigChan != nil {
		signal.Stop(a.sigChan)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// describe formats a frame for the log
func describe(f snapshot.Frame) string {
	return fmt.Sprintf("tick=%d phase=%s ball=(%.0f,%.0f) strokes=%d", f.Tick, f.Phase, f.Ball.X, f.Ball.Y, f.Strokes)
}
