// Package noise provides the deterministic random sources used by every
// generation stage: a seed type, spatially coherent sine-hash noise fields,
// and an integer LCG sequence for discrete choices.
//
// Every stage derives its own independent stream by multiplying the map seed
// with a per-purpose constant, so no stage ever observes another stage's
// randomness and the whole pipeline stays reproducible from the seed alone.
package noise

import "math"

// Seed is the normalized integer seed for one generation run.
type Seed struct {
	Value int64
}

// New wraps an integer seed.
func New(value int64) Seed {
	return Seed{Value: value}
}

// FromString folds a string seed into a non-negative integer seed using an
// FNV-1a style hash. The same string always yields the same seed.
func FromString(s string) Seed {
	var h uint32 = 2166136261
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return Seed{Value: int64(h & 0x7fffffff)}
}

// Stream identifies one independent noise stream. The value doubles as the
// seed multiplier, so streams must stay distinct and never change between
// releases.
type Stream int64

// One stream per generation purpose. Distinct primes keep the derived
// constants decorrelated.
const (
	StreamBedrock    Stream = 7919
	StreamWeathering Stream = 7927
	StreamSoil       Stream = 7933
	StreamElevation  Stream = 7937
	StreamWaterDepth Stream = 7949
	StreamPool       Stream = 7951
	StreamTrees      Stream = 8009
	StreamShrubs     Stream = 8011
	StreamGroundcov  Stream = 8017
	StreamStructures Stream = 8039
	StreamRoads      Stream = 8053
	StreamHazards    Stream = 8059
	StreamResources  Stream = 8069
	StreamLandmarks  Stream = 8081
)

const (
	sineA = 12.9898
	sineB = 78.233
	sineD = 43758.5453
)

// Field samples coherent 2D noise for one stream. A Field carries no mutable
// state; At is a pure function of the coordinates and the stream constant.
type Field struct {
	c float64
}

// NewField derives the noise field for the given seed and stream.
func NewField(seed Seed, stream Stream) Field {
	return Field{c: float64(seed.Value * int64(stream))}
}

// At returns a noise value in [0, 1) for the given tile coordinates.
func (f Field) At(x, y float64) float64 {
	v := math.Sin(x*sineA+y*sineB+f.c) * sineD
	v -= math.Floor(v)
	if v >= 1 {
		v = 0
	}
	return v
}

// Fractal sums octave doublings of At with persistence amplitude decay,
// normalized back into [0, 1).
func (f Field) Fractal(x, y float64, octaves int, persistence float64) float64 {
	if octaves < 1 {
		octaves = 1
	}
	total := 0.0
	amplitude := 1.0
	frequency := 1.0
	maxAmplitude := 0.0
	for o := 0; o < octaves; o++ {
		total += f.At(x*frequency, y*frequency) * amplitude
		maxAmplitude += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	if maxAmplitude == 0 {
		return 0
	}
	return total / maxAmplitude
}

// Sequence is a linear congruential generator for discrete choices such as
// picking one formation out of a candidate list. The sine noise is spatially
// coherent and therefore unsuitable for enumeration choices; keep the two
// generators separate.
type Sequence struct {
	s int64
}

// NewSequence derives the LCG state for the given seed and stream.
func NewSequence(seed Seed, stream Stream) *Sequence {
	return &Sequence{s: (seed.Value*int64(stream) + int64(stream)) & 0x7fffffff}
}

// Next advances the generator and returns the raw 31-bit state.
func (q *Sequence) Next() int64 {
	q.s = (q.s*1103515245 + 12345) & 0x7fffffff
	return q.s
}

// Intn returns a value in [0, n). n must be positive.
func (q *Sequence) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(q.Next() % int64(n))
}

// Float64 returns a value in [0, 1).
func (q *Sequence) Float64() float64 {
	return float64(q.Next()) / float64(1<<31)
}

// Range returns a value in [lo, hi).
func (q *Sequence) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + q.Float64()*(hi-lo)
}
