package task

import "fmt"

// Block is a half-open range of image rows [Y0, Y1) handed to one
// worker. Blocks produced by Partition never overlap, so workers can
// write their pixels into a shared buffer without locking.
type Block struct {
	Y0 int
	Y1 int
}

func (b *Block) String() string {
	output := "{Block "
	output += fmt.Sprintf("Y0: %d ", b.Y0)
	output += fmt.Sprintf("Y1: %d}", b.Y1)
	return output
}

// Rows returns how many rows the block covers.
func (b *Block) Rows() int {
	return b.Y1 - b.Y0
}

// Partition splits height rows into contiguous blocks of at most
// rowsPerBlock rows each. The blocks are disjoint, ordered, and
// together cover [0, height) exactly; the last block may be short.
func Partition(height int, rowsPerBlock int) []Block {
	if height <= 0 || rowsPerBlock <= 0 {
		return nil
	}

	blocks := make([]Block, 0, (height+rowsPerBlock-1)/rowsPerBlock)
	for y := 0; y < height; y += rowsPerBlock {
		end := y + rowsPerBlock
		if end > height {
			end = height
		}
		blocks = append(blocks, Block{Y0: y, Y1: end})
	}
	return blocks
}
