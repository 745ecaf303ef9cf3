package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pixgolf/internal/snapshot"
)

const (
	BallChar   = '\u2B24' // ⬤
	AimChar    = '\u00B7' // ·
	GroundChar = '\u2580' // ▀
	RoughChar  = '\u2592' // ▒
)

var (
	skyStyle     = tcell.StyleDefault.Background(tcell.ColorDimGray)
	groundStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorDarkGreen)
	roughStyle   = tcell.StyleDefault.Foreground(tcell.ColorOlive).Background(tcell.ColorBlack)
	ballStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDimGray)
	aimStyle     = tcell.StyleDefault.Foreground(tcell.ColorBlue).Background(tcell.ColorDimGray)
	labelStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorDimGray).Bold(true)
	strokeStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	penaltyStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	presetStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack)
	barStyle     = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
)

// Renderer handles rendering all game screens
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Scale returns the course-to-screen mapping for the current terminal size
func (r *Renderer) Scale(f snapshot.Frame) Scale {
	w, h := r.screen.Size()
	return NewScale(w, h, f.Course.Width, f.Course.Height)
}

// RenderFrame displays one game tick
func (r *Renderer) RenderFrame(f snapshot.Frame) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	scale := r.Scale(f)

	r.screen.FillRect(0, scale.Offset, scale.Cols, scale.Rows, skyStyle, ' ')
	r.renderCourse(f, scale)

	if f.Aiming {
		r.renderAim(f, scale)
	}

	bx, by := scale.ToCell(f.Ball.X, f.Ball.Y)
	if scale.InCourse(bx, by) {
		r.screen.SetCell(bx, by, ballStyle, BallChar)
	}

	// Top bar: stroke count on the right
	r.screen.FillRect(0, 0, screenW, 1, barStyle, ' ')
	r.screen.DrawText(1, 0, "PIXGOLF", barStyle.Bold(true))
	strokeText := fmt.Sprintf("Strokes: %d", f.Strokes)
	r.screen.DrawText(screenW-len(strokeText)-1, 0, strokeText, strokeStyle.Background(tcell.ColorBlack))

	if f.Penalty {
		penaltyRow := scale.Offset + int(0.225*float64(scale.Rows))
		r.screen.DrawCenteredText(penaltyRow, "Out of Bounds! +1 Stroke", penaltyStyle.Background(tcell.ColorDimGray))
	}

	r.renderPresets(f.Presets, screenW, screenH-1)

	r.screen.Show()
}

// renderCourse draws the ground line and the rough strips at both ends
func (r *Renderer) renderCourse(f snapshot.Frame, scale Scale) {
	_, floorRow := scale.ToCell(0, f.Course.Height)
	if floorRow >= scale.Offset+scale.Rows {
		floorRow = scale.Offset + scale.Rows - 1
	}
	for x := 0; x < scale.Cols; x++ {
		r.screen.SetCell(x, floorRow, groundStyle, GroundChar)
	}

	leftCol, roughRow := scale.ToCell(f.Course.LeftHazardEdge, f.Course.HazardTop)
	rightCol, _ := scale.ToCell(f.Course.RightHazardEdge, f.Course.HazardTop)
	if roughRow > floorRow {
		roughRow = floorRow
	}
	for y := roughRow; y <= floorRow; y++ {
		for x := 0; x <= leftCol && x < scale.Cols; x++ {
			r.screen.SetCell(x, y, roughStyle, RoughChar)
		}
		for x := rightCol; x < scale.Cols; x++ {
			r.screen.SetCell(x, y, roughStyle, RoughChar)
		}
	}
}

// renderAim draws the aim line from the ball to the pointer with its labels
func (r *Renderer) renderAim(f snapshot.Frame, scale Scale) {
	x0, y0 := scale.ToCell(f.AimFrom.X, f.AimFrom.Y)
	x1, y1 := scale.ToCell(f.AimTo.X, f.AimTo.Y)

	for _, c := range line(x0, y0, x1, y1) {
		if scale.InCourse(c[0], c[1]) {
			r.screen.SetCell(c[0], c[1], aimStyle, AimChar)
		}
	}

	angleText := fmt.Sprintf("Angle: %d°", f.AngleDeg)
	ax := x0 - len(angleText) - 2
	if ax < 0 {
		ax = x0 + 2
	}
	if ay := y0 - 1; ay >= scale.Offset {
		r.screen.DrawText(ax, ay, angleText, labelStyle)
	}

	powerText := fmt.Sprintf("Shot Strength: %dN", f.Power)
	px := x1 + 2
	if px+len(powerText) > scale.Cols {
		px = x1 - len(powerText) - 2
	}
	if scale.InCourse(x1, y1) {
		r.screen.DrawText(px, y1, powerText, labelStyle)
	}
}

// renderPresets draws the strength, drag and speed presets on the bottom bar
func (r *Renderer) renderPresets(p snapshot.Presets, screenW, row int) {
	r.screen.FillRect(0, row, screenW, 1, presetStyle, ' ')

	strength := fmt.Sprintf("Swing Strength: %d%% [up/down]", int(p.Strength*100+0.5))
	r.screen.DrawText(1, row, strength, presetStyle)

	speed := fmt.Sprintf("Speed: %.2fx [+/-]  r: new game  q: quit", p.Speed)
	r.screen.DrawCenteredText(row, speed, barStyle)

	drag := fmt.Sprintf("[left/right] Air Resistance: %2.2f m/s", p.Drag)
	r.screen.DrawText(screenW-len(drag)-1, row, drag, presetStyle)
}

// RenderReplayDone displays the end of a played back trace
func (r *Renderer) RenderReplayDone(frames int) {
	_, screenH := r.screen.Size()

	msg := fmt.Sprintf("Replay finished after %d frames - press any key", frames)
	r.screen.DrawCenteredText(screenH/2, msg, strokeStyle)

	r.screen.Show()
}

// RenderError displays an error screen
func (r *Renderer) RenderError(err string) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	title := "ERROR"
	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorRed)
	r.screen.DrawCenteredText(screenH/2-2, title, titleStyle)

	// Truncate if too long
	maxErrLen := screenW - 4
	errMsg := err
	if maxErrLen > 3 && len(errMsg) > maxErrLen {
		errMsg = errMsg[:maxErrLen-3] + "..."
	}
	r.screen.DrawCenteredText(screenH/2, errMsg, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	hintText := "Press any key to continue"
	r.screen.DrawCenteredText(screenH/2+3, hintText, tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

// line returns the cells from (x0, y0) to (x1, y1), Bresenham style
func line(x0, y0, x1, y1 int) [][2]int {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy > 0 {
		dy = -dy
	}
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	var cells [][2]int
	e := dx + dy
	for {
		cells = append(cells, [2]int{x0, y0})
		if x0 == x1 && y0 == y1 {
			return cells
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}
