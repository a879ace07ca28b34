package render

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/example/roughboard/internal/geom"
	"github.com/example/roughboard/internal/shape"
	"github.com/example/roughboard/internal/sketch"
)

const pdfFont = "goregular"

// ExportPDF writes c as a single page vector PDF, one point per surface unit.
func ExportPDF(c shape.Collection, w io.Writer, width, height float64) error {
	face, err := Face(shape.FontSize)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	ascent := face.Metrics().Ascent

	p := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddUTF8FontFromBytes(pdfFont, "", goregular.TTF)
	p.AddPage()
	p.SetLineWidth(StrokeWidth)
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")
	p.SetFont(pdfFont, "", shape.FontSize)

	for _, s := range c {
		col := s.Style.Color.RGBA()
		p.SetDrawColor(int(col.R), int(col.G), int(col.B))
		p.SetFillColor(int(col.R), int(col.G), int(col.B))
		p.SetTextColor(int(col.R), int(col.G), int(col.B))
		switch s.Kind {
		case shape.Line, shape.Rectangle:
			pdfCurves(p, s.Sketch.Hachure)
			pdfCurves(p, s.Sketch.Strokes)
		case shape.Brush:
			path := geom.OutlinePath(geom.StrokeOutline(s.Points, geom.DefaultOutline))
			if len(path) == 0 {
				continue
			}
			for _, seg := range path {
				switch seg.Op {
				case geom.OpMove:
					p.MoveTo(seg.To.X, seg.To.Y)
				case geom.OpQuad:
					p.CurveTo(seg.Ctrl.X, seg.Ctrl.Y, seg.To.X, seg.To.Y)
				case geom.OpClose:
					p.ClosePath()
				}
			}
			p.DrawPath("F")
		case shape.Text:
			if s.Text != "" {
				p.Text(s.X1, s.Y1+ascent, s.Text)
			}
		default:
			return fmt.Errorf("export shape %d: %w: %v", s.ID, shape.ErrUnknownKind, s.Kind)
		}
	}
	if err := p.Output(w); err != nil {
		return fmt.Errorf("%w: write pdf: %v", ErrExport, err)
	}
	return nil
}

func pdfCurves(p *gofpdf.Fpdf, curves []sketch.Curve) {
	for _, cv := range curves {
		p.MoveTo(cv.From.X, cv.From.Y)
		p.CurveBezierCubicTo(cv.C1.X, cv.C1.Y, cv.C2.X, cv.C2.Y, cv.To.X, cv.To.Y)
		p.DrawPath("D")
	}
}
