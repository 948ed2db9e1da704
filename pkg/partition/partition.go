// Package partition splits an ingest job's extent into uniformly sized work
// units: one tile per 2-D plane, grouped into fixed-depth chunks of 16
// z-planes. Tiles are enumerated lazily so very large extents never
// materialise a full task list in memory.
package partition

import (
	"github.com/jingpengwu/boss/pkg/tilekey"
)

// ChunkDepth is the number of z-planes grouped under one chunk key.
// System wide constant, independent of tile size.
const ChunkDepth = 16

// Params describe the extent to partition. Extents are half open
// [start, stop) and must be validated (start <= stop, tile sizes > 0)
// before an Iterator is built.
//
// Extents not exactly divisible by tile size or chunk depth are truncated:
// the final chunk of a z-range carries min(ChunkDepth, zStop-z) tiles &
// partial x/y tiles are still emitted as whole work units. This mirrors the
// upload-side contract; rejection would belong in config validation.
type Params struct {
	XStart, XStop int64
	YStart, YStop int64
	ZStart, ZStop int64
	TStart, TStop int64

	TileSizeX int64
	TileSizeY int64

	Project    []string
	Resolution int
}

// Tile is one emitted work unit.
type Tile struct {
	ChunkKey string
	TileKey  string

	ChunkX, ChunkY, ChunkZ int64

	// Tile is the index of this tile within its chunk, [0, NumTiles).
	Tile     int
	NumTiles int

	TimeStep int64
}

// Iterator walks the extent in nested t, z, y, x order, emitting every tile
// of every chunk exactly once. The order is a convenient deterministic
// enumeration, not a semantic guarantee; queue delivery is unordered anyway.
type Iterator struct {
	p Params

	t, z, y, x int64
	tile       int

	numTiles int
	chunkKey string

	done bool
}

// NewIterator returns an iterator positioned before the first tile.
func NewIterator(p Params) *Iterator {
	it := &Iterator{
		p: p,
		t: p.TStart,
		z: p.ZStart,
		y: p.YStart,
		x: p.XStart,
	}
	it.done = p.TileSizeX <= 0 || p.TileSizeY <= 0 ||
		p.TStart >= p.TStop || p.ZStart >= p.ZStop ||
		p.YStart >= p.YStop || p.XStart >= p.XStop
	if !it.done {
		it.enterChunk()
	}
	return it
}

// Next returns the next tile, or false when the extent is exhausted.
func (it *Iterator) Next() (*Tile, bool) {
	if it.done {
		return nil, false
	}

	chunkX := it.x / it.p.TileSizeX
	chunkY := it.y / it.p.TileSizeY
	chunkZ := it.z / ChunkDepth

	out := &Tile{
		ChunkKey: it.chunkKey,
		TileKey:  tilekey.EncodeTileKey(it.p.Project, it.p.Resolution, chunkX, chunkY, it.z+int64(it.tile), it.t),
		ChunkX:   chunkX,
		ChunkY:   chunkY,
		ChunkZ:   chunkZ,
		Tile:     it.tile,
		NumTiles: it.numTiles,
		TimeStep: it.t,
	}

	it.advance()
	return out, true
}

// advance steps to the next tile, rolling over tile -> x -> y -> z -> t.
func (it *Iterator) advance() {
	it.tile++
	if it.tile < it.numTiles {
		return
	}
	it.tile = 0

	it.x += it.p.TileSizeX
	if it.x < it.p.XStop {
		it.enterChunk()
		return
	}
	it.x = it.p.XStart

	it.y += it.p.TileSizeY
	if it.y < it.p.YStop {
		it.enterChunk()
		return
	}
	it.y = it.p.YStart

	it.z += ChunkDepth
	if it.z < it.p.ZStop {
		it.enterChunk()
		return
	}
	it.z = it.p.ZStart

	it.t++
	if it.t < it.p.TStop {
		it.enterChunk()
		return
	}
	it.done = true
}

// enterChunk computes the key & tile count for the chunk at the current position.
func (it *Iterator) enterChunk() {
	it.numTiles = ChunkDepth
	if remain := it.p.ZStop - it.z; remain < ChunkDepth {
		it.numTiles = int(remain)
	}
	it.chunkKey = tilekey.EncodeChunkKey(
		it.numTiles,
		it.p.Project,
		it.p.Resolution,
		it.x/it.p.TileSizeX,
		it.y/it.p.TileSizeY,
		it.z/ChunkDepth,
		it.t,
	)
}

// Count returns the total number of tiles the iterator will emit.
// Cheap arithmetic; it does not walk the extent.
func Count(p Params) int64 {
	if p.TileSizeX <= 0 || p.TileSizeY <= 0 {
		return 0
	}
	nx := ceilDiv(p.XStop-p.XStart, p.TileSizeX)
	ny := ceilDiv(p.YStop-p.YStart, p.TileSizeY)
	nt := p.TStop - p.TStart
	nz := p.ZStop - p.ZStart // one tile per z-plane, whatever the chunking
	if nx <= 0 || ny <= 0 || nz <= 0 || nt <= 0 {
		return 0
	}
	return nx * ny * nz * nt
}

func ceilDiv(a, b int64) int64 {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
