//go:build ebiten

package render

import (
	"image/color"

	"mad-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps a screen-sized RGBA image in sync with a board.
type GridPainter struct {
	size  core.Size
	scale int
	img   *ebiten.Image
	buf   []byte
}

// NewGridPainter allocates a painter for boards of the given size.
func NewGridPainter(size core.Size, scale int) *GridPainter {
	if scale <= 0 {
		scale = 1
	}
	return &GridPainter{
		size:  size,
		scale: scale,
		img:   ebiten.NewImage(size.W*scale, size.H*scale),
		buf:   make([]byte, BufferSize(size, scale)),
	}
}

// Blit uploads the board into the painter image and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, b *core.Board, on, off color.Color) {
	if b.Size() != gp.size {
		return
	}
	fillBoardRGBA(gp.buf, b, gp.scale, on, off)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, nil)
}
