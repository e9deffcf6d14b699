package memo

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/sgostarter/libchart/curve"
)

type kind byte

const (
	kindPath kind = iota + 1
	kindArea
	kindInterpolator
)

// contentKey hashes the exact bits of every point, so only identical point sets
// share an entry. Set boundaries are hashed too: ([a], [b]) and ([a, b], [])
// differ.
func contentKey(k kind, mode curve.Mode, sets ...[]curve.Point) string {
	d := xxhash.New()

	var buf [8]byte

	writeUint := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}

	writeUint(uint64(k))
	writeUint(uint64(mode))

	for _, points := range sets {
		writeUint(uint64(len(points)))

		for _, p := range points {
			writeUint(math.Float64bits(p.X))
			writeUint(math.Float64bits(p.Y))
		}
	}

	return strconv.FormatUint(d.Sum64(), 16)
}
