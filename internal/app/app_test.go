package app

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/diegok/pixgolf/internal/config"
	"github.com/diegok/pixgolf/internal/game"
	"github.com/diegok/pixgolf/internal/logging"
	"github.com/diegok/pixgolf/internal/snapshot"
)

func newTestApp(logs *bytes.Buffer) *App {
	cfg := &config.Config{
		Env:     game.DefaultEnvironment(),
		Physics: game.DefaultPhysics(),
		Mute:    true,
	}
	return NewApp(cfg, logging.New(logs, log.DebugLevel))
}

func TestDispatch_StrikeLogsStroke(t *testing.T) {
	var logs bytes.Buffer
	a := newTestApp(&logs)
	a.pointer.Pos = game.Vec{X: 900, Y: 700}

	if _, err := a.step(time.Unix(1000, 0)); err != nil {
		t.Fatalf("step: %v", err)
	}
	if quit := a.dispatch(game.EventStrike); quit {
		t.Fatal("strike should not quit")
	}

	if a.session.Strokes != 1 {
		t.Errorf("expected 1 stroke, got %d", a.session.Strokes)
	}
	if !strings.Contains(logs.String(), "ball hit") {
		t.Errorf("expected stroke to be logged, got %q", logs.String())
	}
}

func TestDispatch_Quit(t *testing.T) {
	var logs bytes.Buffer
	a := newTestApp(&logs)

	if a.dispatch(game.EventNone) {
		t.Error("no-op event should not quit")
	}
	if !a.dispatch(game.EventQuit) {
		t.Error("quit event should quit")
	}
}

func TestStep_OutOfBoundsIsLogged(t *testing.T) {
	var logs bytes.Buffer
	a := newTestApp(&logs)

	a.session.Phase = game.PhaseFlying
	a.session.Ball.X = 1498
	a.session.Ball.Y = 400
	a.session.Ball.VX = 50

	frame, err := a.step(time.Unix(1000, 0))
	if err != nil {
		t.Fatalf("step: %v", err)
	}

	if !frame.Penalty {
		t.Error("expected penalty in frame")
	}
	if frame.Strokes != 1 {
		t.Errorf("expected penalty stroke in frame, got %d", frame.Strokes)
	}
	if !strings.Contains(logs.String(), "out of bounds") {
		t.Errorf("expected out of bounds log, got %q", logs.String())
	}
}

func TestRecordAndReplay(t *testing.T) {
	var logs, trace bytes.Buffer
	a := newTestApp(&logs)
	now := time.Unix(1000, 0)

	if err := a.attachRecorder(&trace, now); err != nil {
		t.Fatalf("attachRecorder: %v", err)
	}

	a.pointer.Pos = game.Vec{X: 900, Y: 700}
	var recorded []snapshot.Frame
	for i := 0; i < 20; i++ {
		if i == 5 {
			a.dispatch(game.EventStrike)
		}
		now = now.Add(16 * time.Millisecond)
		frame, err := a.step(now)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		recorded = append(recorded, frame)
	}

	player, err := newReplayer(&trace)
	if err != nil {
		t.Fatalf("newReplayer: %v", err)
	}
	if player.header.CourseWidth != game.CourseWidth {
		t.Errorf("expected course width %v, got %v", game.CourseWidth, player.header.CourseWidth)
	}

	for i, want := range recorded {
		got, ok, err := player.next()
		if err != nil || !ok {
			t.Fatalf("frame %d: ok=%v err=%v", i, ok, err)
		}
		if got.Tick != want.Tick || got.Ball != want.Ball || got.Phase != want.Phase {
			t.Errorf("frame %d: expected %+v, got %+v", i, want, got)
		}
	}

	if _, ok, err := player.next(); ok || err != nil {
		t.Errorf("expected clean end of trace, got ok=%v err=%v", ok, err)
	}
	if player.inputs != 1 {
		t.Errorf("expected 1 recorded input, got %d", player.inputs)
	}
	if player.frames != len(recorded) {
		t.Errorf("expected %d frames, got %d", len(recorded), player.frames)
	}
}

func TestReplayer_RejectsMissingHeader(t *testing.T) {
	var trace bytes.Buffer
	codec := snapshot.NewEncoder(&trace)
	if err := codec.Encode(&snapshot.Message{Type: snapshot.MsgInput, Payload: snapshot.Input{Tick: 1, Event: "strike"}}); err != nil {
		t.Fatalf("encode: %v", err)
	}

	if _, err := newReplayer(&trace); err == nil {
		t.Error("expected error for trace without header")
	}
}
