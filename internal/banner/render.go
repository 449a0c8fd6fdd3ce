package banner

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// Canvas geometry. The layout is fixed: title, German block, separator,
// English block, right-anchored footer credit.
const (
	canvasWidth  = 640
	canvasHeight = 300
	marginX      = 10
	titleY       = 8
	titleStep    = 26
	lineStep     = 18
	sepGapAbove  = 4
	sepGapBelow  = 8
	footerPadY   = 4

	titleSize = 18
	bodySize  = 14
)

const (
	titleText  = "Solar / HF Bedingungen - DL2HT (JO43VK)"
	footerText = "Data source: hamqsl.com / N0NBH"
)

// Renderer draws banner images. FontPath optionally points at a TTF file;
// when empty or unloadable the embedded Go Regular face is used, and if
// that fails too the built-in bitmap face takes over. Font trouble never
// fails a run.
type Renderer struct {
	FontPath string
	log      *zap.Logger
}

// NewRenderer creates a renderer. fontPath may be empty.
func NewRenderer(fontPath string, log *zap.Logger) *Renderer {
	return &Renderer{FontPath: fontPath, log: log}
}

// Render draws the banner: white 640x300 canvas, black ink, title line,
// six German lines, a separator rule, six English lines and the footer
// credit in the bottom-right corner.
func (r *Renderer) Render(de, en []string) image.Image {
	titleFace, bodyFace := r.resolveFaces()

	dc := gg.NewContext(canvasWidth, canvasHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)

	y := float64(titleY)
	dc.SetFontFace(titleFace)
	dc.DrawStringAnchored(titleText, marginX, y, 0, 1)
	y += titleStep

	dc.SetFontFace(bodyFace)
	for _, line := range de {
		dc.DrawStringAnchored(line, marginX, y, 0, 1)
		y += lineStep
	}

	y += sepGapAbove
	dc.SetLineWidth(1)
	dc.DrawLine(marginX, y, canvasWidth-marginX, y)
	dc.Stroke()
	y += sepGapBelow

	for _, line := range en {
		dc.DrawStringAnchored(line, marginX, y, 0, 1)
		y += lineStep
	}

	dc.DrawStringAnchored(footerText, canvasWidth-marginX, canvasHeight-footerPadY, 1, 0)

	return dc.Image()
}

// WriteFile renders the banner and writes it as PNG. The image is encoded
// to a temp file first and renamed into place, so the previous banner
// survives a crash mid-write.
func (r *Renderer) WriteFile(path string, de, en []string) error {
	img := r.Render(de, en)

	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create banner file: %w", err)
	}

	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("encode banner: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename banner: %w", err)
	}
	return nil
}

// resolveFaces returns the title and body faces. Candidates are tried in
// order: configured TTF file, embedded Go Regular, bitmap fallback.
func (r *Renderer) resolveFaces() (title, body font.Face) {
	if r.FontPath != "" {
		if data, err := os.ReadFile(r.FontPath); err == nil {
			if t, b, err := ttfFaces(data); err == nil {
				return t, b
			}
		}
		r.log.Debug("configured font unusable, falling back",
			zap.String("font", r.FontPath),
		)
	}

	if t, b, err := ttfFaces(goregular.TTF); err == nil {
		return t, b
	}

	r.log.Debug("scalable font unavailable, using bitmap face")
	return basicfont.Face7x13, basicfont.Face7x13
}

// ttfFaces parses TTF data into the two banner faces.
func ttfFaces(data []byte) (title, body font.Face, err error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, nil, err
	}
	title = truetype.NewFace(f, &truetype.Options{Size: titleSize})
	body = truetype.NewFace(f, &truetype.Options{Size: bodySize})
	return title, body, nil
}
