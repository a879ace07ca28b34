package appstate

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"log"

	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/example/roughboard/internal/shape"
	"github.com/example/roughboard/internal/theme"
)

var (
	textFace    font.Face
	messageFace font.Face
)

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("parse font: %v", err)
	}
	textFace, err = opentype.NewFace(f, &opentype.FaceOptions{Size: shape.FontSize, DPI: 72, Hinting: font.HintingNone})
	if err != nil {
		log.Fatalf("font face: %v", err)
	}
	messageFace, err = opentype.NewFace(f, &opentype.FaceOptions{Size: 32, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Fatalf("font face: %v", err)
	}
}

// textOverlay is the text box being typed into. It is drawn over the canvas
// instead of through the renderer.
type textOverlay struct {
	x, y  float64
	text  string
	color color.RGBA
}

// paintState is an immutable snapshot handed to the paint goroutine.
type paintState struct {
	width, height int
	layout        layout
	theme         *theme.Theme
	canvas        image.Image
	buttons       []Button
	states        []ButtonState
	hints         []Shortcut
	hoverHint     int
	status        string
	message       string
	editing       *textOverlay
}

func drawFrame(ctx context.Context, s screen.Screen, w screen.Window, st paintState) {
	b, err := s.NewBuffer(image.Point{st.width, st.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()

	if !compose(ctx, b.RGBA(), st) {
		return
	}
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

// compose paints st onto dst. It reports false when ctx was cancelled
// part way through.
func compose(ctx context.Context, dst *image.RGBA, st paintState) bool {
	t := st.theme
	draw.Draw(dst, dst.Bounds(), &image.Uniform{t.Background}, image.Point{}, draw.Src)
	if st.canvas != nil {
		draw.Draw(dst, st.layout.canvas, st.canvas, st.canvas.Bounds().Min, draw.Src)
	}
	if ctx.Err() != nil {
		return false
	}

	if st.editing != nil {
		drawTextOverlay(dst, st.layout.canvas, t, st.editing)
	}

	drawTitle(dst, st)
	draw.Draw(dst, image.Rect(0, titleHeight, st.layout.toolbarWidth, st.height-footerHeight),
		&image.Uniform{t.ToolbarBackground}, image.Point{}, draw.Src)
	for i, btn := range st.buttons {
		btn.Draw(dst, st.states[i])
	}
	drawHints(dst, st)
	if ctx.Err() != nil {
		return false
	}

	if st.message != "" {
		drawMessage(dst, st.width, st.height, st.message)
	}
	return ctx.Err() == nil
}

func drawTitle(dst *image.RGBA, st paintState) {
	t := st.theme
	draw.Draw(dst, image.Rect(0, 0, st.width, titleHeight), &image.Uniform{t.ToolbarBackground}, image.Point{}, draw.Src)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(t.Foreground), Face: basicfont.Face7x13, Dot: fixed.P(4, 16)}
	d.DrawString("Roughboard")
	d.Dot = fixed.P(st.layout.toolbarWidth+4, 16)
	d.DrawString(st.status)
}

func drawHints(dst *image.RGBA, st paintState) {
	t := st.theme
	draw.Draw(dst, st.layout.footer(st.height), &image.Uniform{t.ToolbarBackground}, image.Point{}, draw.Src)
	for i, h := range st.hints {
		state := StateDefault
		if i == st.hoverHint {
			state = StateHover
		}
		draw.Draw(dst, h.rect, &image.Uniform{buttonFill(t, state)}, image.Point{}, draw.Src)
		drawRect(dst, h.rect, t.ButtonBorder, 1)
		d := &font.Drawer{Dst: dst, Src: image.NewUniform(t.ButtonText), Face: basicfont.Face7x13,
			Dot: fixed.P(h.rect.Min.X+2, h.rect.Min.Y+14)}
		d.DrawString(h.label)
	}
}

// drawTextOverlay draws the typed text hanging from the box corner with a
// caret, framed by the selection color.
func drawTextOverlay(dst *image.RGBA, canvas image.Rectangle, t *theme.Theme, o *textOverlay) {
	origin := canvas.Min.Add(image.Pt(int(o.x), int(o.y)))
	width := font.MeasureString(textFace, o.text).Ceil()
	box := image.Rect(origin.X-2, origin.Y-2, origin.X+width+8, origin.Y+shape.LineHeight+4)
	drawRect(dst, box.Intersect(canvas), t.Selection, 1)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(o.color), Face: textFace,
		Dot: fixed.P(origin.X, origin.Y+textFace.Metrics().Ascent.Ceil())}
	d.DrawString(o.text)
	caret := image.Rect(d.Dot.X.Ceil()+1, origin.Y, d.Dot.X.Ceil()+2, origin.Y+shape.LineHeight)
	draw.Draw(dst, caret.Intersect(canvas), &image.Uniform{t.Caret}, image.Point{}, draw.Src)
}

func drawMessage(dst *image.RGBA, width, height int, msg string) {
	d := &font.Drawer{Dst: dst, Src: image.Black, Face: messageFace}
	wmsg := d.MeasureString(msg).Ceil()
	ascent := messageFace.Metrics().Ascent.Ceil()
	descent := messageFace.Metrics().Descent.Ceil()
	px := (width - wmsg) / 2
	py := (height-ascent-descent)/2 + ascent
	rect := image.Rect(px-8, py-ascent-8, px+wmsg+8, py+descent+8)
	draw.Draw(dst, rect, &image.Uniform{color.RGBA{255, 255, 255, 230}}, image.Point{}, draw.Over)
	drawRect(dst, rect, color.Black, 2)
	d.Dot = fixed.P(px, py)
	d.DrawString(msg)
}
