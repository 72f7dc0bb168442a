package render

import (
	"image/color"

	"mad-life/internal/core"
)

// BufferSize returns the RGBA byte count needed to draw a board at scale.
func BufferSize(size core.Size, scale int) int {
	return 4 * size.W * scale * size.H * scale
}

// fillBoardRGBA paints each cell of b as a scale x scale block into buf. Live
// cells use on and dead cells use off. When scale exceeds one, the last pixel
// row and column of every block are left in off to draw grid lines.
func fillBoardRGBA(buf []byte, b *core.Board, scale int, on, off color.Color) {
	onPx := rgbaBytes(on)
	offPx := rgbaBytes(off)
	stride := b.Cols() * scale * 4
	fill := scale
	if scale > 1 {
		fill = scale - 1
	}

	b.ForEachCell(func(row, col int, alive bool) {
		px := onPx
		if !alive {
			px = offPx
		}
		for dy := 0; dy < scale; dy++ {
			line := (row*scale+dy)*stride + col*scale*4
			for dx := 0; dx < scale; dx++ {
				c := px
				if dx >= fill || dy >= fill {
					c = offPx
				}
				copy(buf[line+dx*4:line+dx*4+4], c[:])
			}
		}
	})
}

func rgbaBytes(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
