package elgamal

import (
	"math/big"

	"github.com/pkg/errors"
)

// dataSlices splits data into blocks of numBytes bytes; the last block keeps
// whatever remainder is left and is shorter.
func dataSlices(data []byte, numBytes int) [][]byte {
	count := len(data) / numBytes
	if len(data)%numBytes != 0 {
		count++
	}

	blocks := make([][]byte, 0, count)
	for i := 0; i < count; i++ {
		end := (i + 1) * numBytes
		if end > len(data) {
			end = len(data)
		}
		blocks = append(blocks, data[i*numBytes:end])
	}

	return blocks
}

// littleEndianToInt interprets b as a little-endian unsigned integer. A short
// block behaves as if zero-padded to the right.
func littleEndianToInt(b []byte) *big.Int {
	reversed := make([]byte, len(b))
	for i, v := range b {
		reversed[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(reversed)
}

// intToLittleEndian encodes n as exactly width little-endian bytes.
func intToLittleEndian(n *big.Int, width int) ([]byte, error) {
	if n.BitLen() > 8*width {
		return nil, errors.Errorf("elgamal: value needs %d bytes, block width is %d", (n.BitLen()+7)/8, width)
	}

	bigEndian := n.FillBytes(make([]byte, width))
	out := make([]byte, width)
	for i, v := range bigEndian {
		out[width-1-i] = v
	}
	return out, nil
}
