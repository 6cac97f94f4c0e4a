package encoder

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/Isagog/TokensEncoder/alg/nn"
	nlp "github.com/Isagog/TokensEncoder/nlp/types"
	"github.com/Isagog/TokensEncoder/util"
)

// EmbeddingsModel is the immutable configuration of the raw-embeddings
// strategy: a lookup table, an ordered list of key extractors and the
// dropout regime. Shared read-only across encoder instances; mutated only
// through the paired optimizer.
type EmbeddingsModel[S nlp.Sentence] struct {
	Table *nn.Embeddings

	// Keys are tried in order; the first key that both extracts and
	// exists in the table wins. No winner means the unknown embedding.
	Keys []KeyExtractor[S]

	// Frequencies drives per-key dropout; when nil the flat
	// DropoutCoefficient applies to every key directly.
	Frequencies        *util.FrequencyDict
	DropoutCoefficient float64
}

// NewEncoder builds a fresh single-use processor over the shared model.
func (m *EmbeddingsModel[S]) NewEncoder() *EmbeddingsEncoder[S] {
	return &EmbeddingsEncoder[S]{model: m}
}

// NewOptimizer pairs an optimizer with this model's parameters.
func (m *EmbeddingsModel[S]) NewOptimizer(method nn.UpdateMethod) *ParamsOptimizer {
	return NewParamsOptimizer(method)
}

// EmbeddingsEncoder looks up one trainable vector per token. It remembers
// which embedding parameter produced each position so backward can route
// gradients exactly.
type EmbeddingsEncoder[S nlp.Sentence] struct {
	model *EmbeddingsModel[S]
	used  []*nn.Param
	errs  ParamsErrorsList
}

func (e *EmbeddingsEncoder[S]) Forward(sent S) ([]*mat.VecDense, error) {
	toks := sent.Tokens()
	e.used = make([]*nn.Param, len(toks))
	e.errs = nil
	out := make([]*mat.VecDense, len(toks))
	for i := range toks {
		var p *nn.Param
		if key, found := e.selectKey(sent, i); found {
			p = e.model.Table.Lookup(key, e.Dropout(key))
		} else {
			p = e.model.Table.Unknown
		}
		e.used[i] = p
		out[i] = p.VectorValue()
	}
	return out, nil
}

// selectKey tries the extractors in order and returns the first candidate
// present in the table.
func (e *EmbeddingsEncoder[S]) selectKey(sent S, index int) (string, bool) {
	for _, kx := range e.model.Keys {
		if key, ok := kx.Key(sent, index); ok && e.model.Table.Contains(key) {
			return key, true
		}
	}
	return "", false
}

// Dropout computes the key's dropout probability:
//
//	p = c / (occurrences + c)   for coefficient c > 0
//	p = 0                       otherwise
//
// so rare keys drop often and frequent ones almost never. Without a
// frequency dictionary the flat coefficient is used directly.
func (e *EmbeddingsEncoder[S]) Dropout(key string) float64 {
	c := e.model.DropoutCoefficient
	if c <= 0 {
		return 0
	}
	if e.model.Frequencies == nil {
		return c
	}
	return c / (float64(e.model.Frequencies.Count(key)) + c)
}

// Backward accumulates one error vector per token onto the embedding
// parameter that produced it. A mismatched length fails before anything
// is touched, leaving the previous accumulation intact; on success the
// previous accumulation is cleared first, so repeated backwards never
// double-accumulate stale state.
func (e *EmbeddingsEncoder[S]) Backward(outputErrs []*mat.VecDense) error {
	if e.used == nil {
		return fmt.Errorf("embeddings encoder: backward without forward state")
	}
	if len(outputErrs) != len(e.used) {
		return fmt.Errorf("embeddings encoder: got %d output errors, expected %d", len(outputErrs), len(e.used))
	}
	for i, g := range outputErrs {
		if g.Len() != e.model.Table.Dim {
			return fmt.Errorf("embeddings encoder: output error %d has size %d, expected %d", i, g.Len(), e.model.Table.Dim)
		}
	}
	e.errs = make(ParamsErrorsList, len(e.used))
	for i, p := range e.used {
		e.errs[i] = ParamErrors{Param: p, Grad: nn.ColDense(outputErrs[i])}
	}
	return nil
}

// ParamsErrors returns the last backward's accumulation, by reference or
// as an independent copy. The referenced payload is valid only until the
// next Forward or Backward on this instance.
func (e *EmbeddingsEncoder[S]) ParamsErrors(copyErrs bool) (ParamsErrors, error) {
	if e.errs == nil {
		return nil, fmt.Errorf("embeddings encoder: params errors without backward state")
	}
	if copyErrs {
		return e.errs.Copy(), nil
	}
	return e.errs, nil
}

// InputErrors always reports none: embeddings lookup is a terminal leaf
// with no differentiable upstream.
func (e *EmbeddingsEncoder[S]) InputErrors(copyErrs bool) []*mat.VecDense {
	return nil
}
