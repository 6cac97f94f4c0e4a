package nn

import (
	"math/rand"
)

// Embeddings is a table of trainable key-addressed vectors plus one
// dedicated unknown parameter. Out-of-vocabulary keys, the empty key and
// dropped-out lookups all resolve to the unknown parameter, so unseen keys
// never enter a training update through lookup and backward routing stays
// well-defined under dropout.
type Embeddings struct {
	Dim     int
	Unknown *Param
	Table   map[string]*Param

	rng *rand.Rand
}

func NewEmbeddings(dim int, seed int64) *Embeddings {
	rng := rand.New(rand.NewSource(seed))
	return &Embeddings{
		Dim:     dim,
		Unknown: NewRandomParam("emb:<unk>", dim, 1, 0.1, rng),
		Table:   make(map[string]*Param),
		rng:     rng,
	}
}

// Add creates the parameter for a key, or returns the existing one.
func (e *Embeddings) Add(key string) *Param {
	if p, exists := e.Table[key]; exists {
		return p
	}
	p := NewRandomParam("emb:"+key, e.Dim, 1, 0.1, e.ensureRng())
	e.Table[key] = p
	return p
}

func (e *Embeddings) Contains(key string) bool {
	_, exists := e.Table[key]
	return exists
}

func (e *Embeddings) Len() int {
	return len(e.Table)
}

// Lookup resolves a key under the given dropout probability. The existence
// check happens before the dropout draw: only keys present in the table
// are ever dropped.
func (e *Embeddings) Lookup(key string, dropout float64) *Param {
	p, exists := e.Table[key]
	if !exists {
		return e.Unknown
	}
	if dropout > 0 && e.ensureRng().Float64() < dropout {
		return e.Unknown
	}
	return p
}

// gob skips the unexported rng; reseed lazily after a decode.
func (e *Embeddings) ensureRng() *rand.Rand {
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(1))
	}
	return e.rng
}
