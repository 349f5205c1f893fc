package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/rocketscienceinc/boardgame-bot/internal/qgomoku"
)

// PlayableSize - rows and columns reachable through the axis labels.
const PlayableSize = 15

const (
	imageSize   = 850
	gridOrigin  = 75
	cellPitch   = 50
	gridSpan    = (PlayableSize - 1) * cellPitch
	lineWidth   = 3
	stoneRadius = 24
	starRadius  = 6
)

var (
	boardColor = color.RGBA{R: 216, G: 179, B: 77, A: 255}
	lineColor  = color.RGBA{A: 255}

	darkColor      = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	dimDarkColor   = color.RGBA{R: 65, G: 65, B: 65, A: 255}
	lightColor     = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	dimLightColor  = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	starPointIndex = [2]int{3, 11}
)

var (
	templateOnce sync.Once
	template     *image.RGBA
)

// QuantumBoard - PNG of the board with every stone shaded by side and weight.
func QuantumBoard(board *qgomoku.Board) ([]byte, error) {
	img := newBoardImage()

	for row := range PlayableSize {
		for col := range PlayableSize {
			stone := board[row][col]
			if stone.IsEmpty() {
				continue
			}

			fillDisc(img, cellCenter(row, col), stoneRadius, stoneColor(stone))
		}
	}

	return encode(img)
}

// ObservedBoard - PNG of one collapse, every stone fully dark or light.
func ObservedBoard(board *qgomoku.ObservedBoard) ([]byte, error) {
	img := newBoardImage()

	for row := range PlayableSize {
		for col := range PlayableSize {
			switch board[row][col] {
			case qgomoku.ObservedDark:
				fillDisc(img, cellCenter(row, col), stoneRadius, darkColor)
			case qgomoku.ObservedLight:
				fillDisc(img, cellCenter(row, col), stoneRadius, lightColor)
			case qgomoku.ObservedNone:
			}
		}
	}

	return encode(img)
}

func stoneColor(stone qgomoku.Stone) color.RGBA {
	switch stone {
	case qgomoku.Dark90:
		return darkColor
	case qgomoku.Dark70:
		return dimDarkColor
	case qgomoku.Light90:
		return lightColor
	default:
		return dimLightColor
	}
}

// cellCenter - letters run along x and numbers along y.
func cellCenter(row, col int) image.Point {
	return image.Pt(gridOrigin+row*cellPitch+lineWidth/2, gridOrigin+col*cellPitch+lineWidth/2)
}

// newBoardImage - a private copy of the cached empty board.
func newBoardImage() *image.RGBA {
	templateOnce.Do(func() {
		template = drawBoard()
	})

	img := image.NewRGBA(template.Bounds())
	copy(img.Pix, template.Pix)

	return img
}

func drawBoard() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, imageSize, imageSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(boardColor), image.Point{}, draw.Src)

	lines := image.NewUniform(lineColor)
	for i := range PlayableSize {
		offset := gridOrigin + i*cellPitch

		draw.Draw(img, image.Rect(offset, gridOrigin, offset+lineWidth, gridOrigin+gridSpan+lineWidth), lines, image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(gridOrigin, offset, gridOrigin+gridSpan+lineWidth, offset+lineWidth), lines, image.Point{}, draw.Src)
	}

	for _, row := range starPointIndex {
		for _, col := range starPointIndex {
			fillDisc(img, cellCenter(row, col), starRadius, lineColor)
		}
	}

	drawer := &font.Drawer{
		Dst:  img,
		Src:  lines,
		Face: basicfont.Face7x13,
	}

	for i := range PlayableSize {
		offset := gridOrigin + i*cellPitch

		drawer.Dot = fixed.P(20, offset+6)
		drawer.DrawString(strconv.Itoa(i + 1))

		drawer.Dot = fixed.P(offset-2, 50)
		drawer.DrawString(string(rune('A' + i)))
	}

	return img
}

func encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode board image: %w", err)
	}

	return buf.Bytes(), nil
}

// disc is an alpha mask covering a filled circle.
type disc struct {
	center image.Point
	radius int
}

func (that *disc) ColorModel() color.Model {
	return color.AlphaModel
}

func (that *disc) Bounds() image.Rectangle {
	return image.Rect(
		that.center.X-that.radius, that.center.Y-that.radius,
		that.center.X+that.radius+1, that.center.Y+that.radius+1,
	)
}

func (that *disc) At(x, y int) color.Color {
	dx, dy := x-that.center.X, y-that.center.Y
	if dx*dx+dy*dy <= that.radius*that.radius {
		return color.Alpha{A: 255}
	}

	return color.Alpha{}
}

func fillDisc(img draw.Image, center image.Point, radius int, fill color.Color) {
	mask := &disc{center: center, radius: radius}
	draw.DrawMask(img, mask.Bounds(), image.NewUniform(fill), image.Point{}, mask, mask.Bounds().Min, draw.Over)
}
