package lang

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/zeebo/xxh3"

	"github.com/quiltlang/quilt/shape"
)

// Cache memoizes call results and owns the seeded generator shared by
// weighted draws and the rand builtins. Results are safe for concurrent
// access; the generator is serialized behind a mutex so parallel branches
// draw from one stream.
type Cache struct {
	results sync.Map // uint64 -> Value
	mu      sync.Mutex
	rng     *rand.Rand
}

// NewCache returns a cache seeded with the given 32 bytes, or with OS
// entropy when seed is nil.
func NewCache(seed *[32]byte) (*Cache, error) {
	var s [32]byte

	if seed != nil {
		s = *seed
	} else if _, err := cryptorand.Read(s[:]); err != nil {
		return nil, ErrMissingSeed.Wrap(err)
	}

	return &Cache{rng: rand.New(rand.NewChaCha8(s))}, nil
}

// Get returns the memoized value for key, if any.
func (c *Cache) Get(key uint64) (Value, bool) {
	v, ok := c.results.Load(key)
	if !ok {
		return nil, false
	}

	return v.(Value), true
}

// Put memoizes value under key.
func (c *Cache) Put(key uint64, value Value) {
	c.results.Store(key, value)
}

// Float32 draws a uniform float in [0, 1).
func (c *Cache) Float32() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.rng.Float32()
}

// Bool draws a fair coin flip.
func (c *Cache) Bool() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.rng.Uint64()&1 == 1
}

// FloatRange draws a uniform float in [a, b).
func (c *Cache) FloatRange(a, b float32) float32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return a + (b-a)*c.rng.Float32()
}

// IntRange draws a uniform integer in [a, b).
func (c *Cache) IntRange(a, b int32) int32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return a + c.rng.Int32N(b-a)
}

// IntRangeIncl draws a uniform integer in [a, b].
func (c *Cache) IntRangeIncl(a, b int32) int32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return a + c.rng.Int32N(b-a+1)
}

// Shuffle permutes vals in place.
func (c *Cache) Shuffle(vals []Value) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rng.Shuffle(len(vals), func(i, j int) {
		vals[i], vals[j] = vals[j], vals[i]
	})
}

// Choose draws one element of vals uniformly.
func (c *Cache) Choose(vals []Value) Value {
	c.mu.Lock()
	defer c.mu.Unlock()

	return vals[c.rng.IntN(len(vals))]
}

// WeightedIndex draws an index with probability proportional to its weight.
func (c *Cache) WeightedIndex(weights []float32) (int, error) {
	var total float32

	for _, w := range weights {
		total += w
	}

	if total <= 0 {
		return 0, ErrInvalidDefinition.With(
			slog.Float64("total", float64(total)),
		)
	}

	c.mu.Lock()
	draw := total * c.rng.Float32()
	c.mu.Unlock()

	for i, w := range weights {
		if draw < w {
			return i, nil
		}

		draw -= w
	}

	return len(weights) - 1, nil
}

// Serialization tags for call fingerprints. Each value is prefixed with its
// tag so fingerprints of different shapes never collide on raw bytes.
const (
	tagInteger = iota + 1
	tagFloat
	tagBoolean
	tagHex
	tagShape
	tagList
	tagNil
)

// hashCall fingerprints a call for memoization. Shapes are flattened
// structurally so two aliases of an identical graph produce one key. The
// caller's scope participates so locally scoped lookups in different
// branches never collide.
func hashCall(name string, branch int, args []Value, scope *scopeTag) uint64 {
	buf := make([]byte, 0, 64)
	buf = append(buf, name...)
	buf = append(buf, 0)
	buf = binary.BigEndian.AppendUint32(buf, uint32(branch))

	for _, arg := range args {
		buf = appendValue(buf, arg)
	}

	if scope != nil {
		buf = append(buf, scope.name...)
		buf = append(buf, 0)
		buf = binary.BigEndian.AppendUint32(buf, uint32(scope.branch))
	}

	return xxh3.Hash(buf)
}

func appendValue(buf []byte, v Value) []byte {
	switch v := v.(type) {
	case Integer:
		buf = append(buf, tagInteger)
		buf = binary.BigEndian.AppendUint32(buf, uint32(v))
	case Float:
		buf = append(buf, tagFloat)
		buf = binary.BigEndian.AppendUint32(buf, math.Float32bits(float32(v)))
	case Boolean:
		buf = append(buf, tagBoolean)
		if v {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	case Hex:
		buf = append(buf, tagHex)
		buf = append(buf, v[0], v[1], v[2])
	case ShapeValue:
		buf = append(buf, tagShape)
		buf = appendShape(buf, v.Shape)
	case List:
		buf = append(buf, tagList)
		buf = binary.BigEndian.AppendUint32(buf, uint32(len(v)))

		for _, el := range v {
			buf = appendValue(buf, el)
		}
	}

	return buf
}

func appendShape(buf []byte, s *shape.Shape) []byte {
	if s == nil {
		return append(buf, tagNil)
	}

	buf = append(buf, byte(s.Kind))

	for _, f := range [...]float32{
		s.Transform.SX, s.Transform.KX, s.Transform.KY,
		s.Transform.SY, s.Transform.TX, s.Transform.TY,
		s.Color.H, s.Color.S, s.Color.L, s.Color.A,
		s.X, s.Y, s.Width, s.Height, s.Radius,
	} {
		buf = binary.BigEndian.AppendUint32(buf, math.Float32bits(f))
	}

	for _, f := range s.Points {
		buf = binary.BigEndian.AppendUint32(buf, math.Float32bits(f))
	}

	switch s.Kind {
	case shape.KindComposite:
		buf = appendShape(buf, s.A)
		buf = appendShape(buf, s.B)
	case shape.KindCollection:
		buf = binary.BigEndian.AppendUint32(buf, uint32(len(s.Shapes)))

		for _, child := range s.Shapes {
			buf = appendShape(buf, child)
		}
	}

	return buf
}
