// Package tilekey encodes & decodes the chunk and tile keys shared between
// write-path task generation and read-path index / bucket lookup.
//
// A key is the md5 hex digest of its `&` joined components followed by the
// components themselves. The digest prefix exists to spread keys across
// index & bucket partitions; the trailing components keep keys parseable.
//
//	chunk: <md5>&<numTiles>&<col>&<exp>&<chan>&<res>&<x>&<y>&<z>&<t>
//	tile:  <md5>&<col>&<exp>&<chan>&<res>&<x>&<y>&<z>&<t>
//
// A chunk key's z is the chunk index (plane / 16); a tile key's z is the
// absolute plane, so tiles in different chunks of the same column never
// share a key.
//
// The digest covers everything except numTiles, so chunk keys for the same
// chunk always hash identically regardless of how full the chunk is.
package tilekey

import (
	"crypto/md5"
	"fmt"
	"strconv"
	"strings"
)

// Connecter joins key components.
const Connecter = "&"

// projectComponents is collection, experiment & channel ids.
const projectComponents = 3

// Chunk is a decoded chunk key.
type Chunk struct {
	NumTiles   int
	Project    []string
	Resolution int
	X, Y, Z    int64
	T          int64
}

// Tile is a decoded tile key. Z is the absolute z plane, not the index
// within a chunk.
type Tile struct {
	Project    []string
	Resolution int
	X, Y, Z    int64
	T          int64
}

// EncodeChunkKey returns the key for one chunk of up to 16 tiles.
// Pure & deterministic: identical inputs yield byte-identical keys.
func EncodeChunkKey(numTiles int, project []string, resolution int, x, y, z, t int64) string {
	base := strings.Join([]string{
		strings.Join(project, Connecter),
		strconv.Itoa(resolution),
		strconv.FormatInt(x, 10),
		strconv.FormatInt(y, 10),
		strconv.FormatInt(z, 10),
		strconv.FormatInt(t, 10),
	}, Connecter)
	digest := md5.Sum([]byte(base))
	return fmt.Sprintf("%x%s%d%s%s", digest, Connecter, numTiles, Connecter, base)
}

// EncodeTileKey returns the key for one tile: a single 2-D plane addressed
// by its absolute z coordinate.
func EncodeTileKey(project []string, resolution int, x, y, z, t int64) string {
	base := strings.Join([]string{
		strings.Join(project, Connecter),
		strconv.Itoa(resolution),
		strconv.FormatInt(x, 10),
		strconv.FormatInt(y, 10),
		strconv.FormatInt(z, 10),
		strconv.FormatInt(t, 10),
	}, Connecter)
	digest := md5.Sum([]byte(base))
	return fmt.Sprintf("%x%s%s", digest, Connecter, base)
}

// DecodeChunkKey parses a chunk key back into its components.
func DecodeChunkKey(key string) (*Chunk, error) {
	parts := strings.Split(key, Connecter)
	if len(parts) != projectComponents+7 {
		return nil, fmt.Errorf("chunk key %q has %d components, want %d", key, len(parts), projectComponents+7)
	}

	numTiles, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("chunk key %q bad tile count: %w", key, err)
	}
	project := parts[2 : 2+projectComponents]
	rest, err := parseInts(parts[2+projectComponents:])
	if err != nil {
		return nil, fmt.Errorf("chunk key %q: %w", key, err)
	}

	c := &Chunk{
		NumTiles:   numTiles,
		Project:    project,
		Resolution: int(rest[0]),
		X:          rest[1],
		Y:          rest[2],
		Z:          rest[3],
		T:          rest[4],
	}
	if EncodeChunkKey(c.NumTiles, c.Project, c.Resolution, c.X, c.Y, c.Z, c.T) != key {
		return nil, fmt.Errorf("chunk key %q digest mismatch", key)
	}
	return c, nil
}

// DecodeTileKey parses a tile key back into its components.
func DecodeTileKey(key string) (*Tile, error) {
	parts := strings.Split(key, Connecter)
	if len(parts) != projectComponents+6 {
		return nil, fmt.Errorf("tile key %q has %d components, want %d", key, len(parts), projectComponents+6)
	}

	project := parts[1 : 1+projectComponents]
	rest, err := parseInts(parts[1+projectComponents:])
	if err != nil {
		return nil, fmt.Errorf("tile key %q: %w", key, err)
	}

	tk := &Tile{
		Project:    project,
		Resolution: int(rest[0]),
		X:          rest[1],
		Y:          rest[2],
		Z:          rest[3],
		T:          rest[4],
	}
	if EncodeTileKey(tk.Project, tk.Resolution, tk.X, tk.Y, tk.Z, tk.T) != key {
		return nil, fmt.Errorf("tile key %q digest mismatch", key)
	}
	return tk, nil
}

func parseInts(in []string) ([]int64, error) {
	out := make([]int64, len(in))
	for i, s := range in {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad component %q: %w", s, err)
		}
		out[i] = v
	}
	return out, nil
}
