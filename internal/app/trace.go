package app

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/diegok/pixgolf/internal/snapshot"
	"github.com/diegok/pixgolf/internal/ui"
)

// startRecording creates the trace file and writes its header
func (a *App) startRecording(path string, now time.Time) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "create trace directory")
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create trace file")
	}
	a.recordFile = f
	return a.attachRecorder(f, now)
}

// attachRecorder starts writing the trace to w
func (a *App) attachRecorder(w io.Writer, now time.Time) error {
	a.recorder = snapshot.NewEncoder(w)
	hdr := snapshot.Header{
		Version:      snapshot.TraceVersion,
		StartedAt:    now,
		CourseWidth:  a.session.Course.Width,
		CourseHeight: a.session.Course.Height,
	}
	return a.recorder.Encode(&snapshot.Message{Type: snapshot.MsgHeader, Payload: hdr})
}

// record appends a message to the trace, if one is being written
func (a *App) record(msg *snapshot.Message) error {
	if a.recorder == nil {
		return nil
	}
	return a.recorder.Encode(msg)
}

func (a *App) stopRecording() error {
	a.recorder = nil
	if a.recordFile == nil {
		return nil
	}
	err := a.recordFile.Close()
	a.recordFile = nil
	return errors.Wrap(err, "close trace file")
}

// replayer walks a recorded trace one frame at a time
type replayer struct {
	codec  *snapshot.Codec
	header snapshot.Header
	inputs int
	frames int
}

func newReplayer(r io.Reader) (*replayer, error) {
	codec := snapshot.NewDecoder(r)
	hdr, err := codec.ReadHeader()
	if err != nil {
		return nil, errors.Wrap(err, "read trace header")
	}
	return &replayer{codec: codec, header: hdr}, nil
}

// next returns the following frame. Input messages in between are counted
// and skipped. ok is false once the trace is exhausted.
func (p *replayer) next() (frame snapshot.Frame, ok bool, err error) {
	for {
		msg, err := p.codec.Decode()
		if err == io.EOF {
			return snapshot.Frame{}, false, nil
		}
		if err != nil {
			return snapshot.Frame{}, false, err
		}

		switch payload := msg.Payload.(type) {
		case snapshot.Frame:
			p.frames++
			return payload, true, nil
		case snapshot.Input:
			p.inputs++
		default:
			return snapshot.Frame{}, false, errors.Errorf("unexpected trace message type %d", msg.Type)
		}
	}
}

// runReplay plays a recorded trace back at the tick rate
func (a *App) runReplay(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open trace file")
	}
	defer f.Close()

	player, err := newReplayer(f)
	if err != nil {
		return err
	}
	a.log.Info("replay started", "file", path, "recorded_at", player.header.StartedAt.Format(time.RFC3339))

	events := a.pollEvents()
	ticker := time.NewTicker(time.Second / TickRate)
	defer ticker.Stop()

	done := false
	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if done || ui.IsQuitKey(ev.Key(), ev.Rune()) {
					return nil
				}
			case *tcell.EventResize:
				a.screen.Clear()
			}

		case <-ticker.C:
			if done {
				continue
			}
			frame, ok, err := player.next()
			if err != nil {
				a.renderer.RenderError(err.Error())
				return err
			}
			if !ok {
				done = true
				a.log.Info("replay finished", "frames", player.frames, "inputs", player.inputs)
				a.renderer.RenderReplayDone(player.frames)
				continue
			}
			a.log.Debug("replay", "frame", describe(frame))
			a.renderer.RenderFrame(frame)
		}
	}
}
