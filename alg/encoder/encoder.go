package encoder

import (
	"gonum.org/v1/gonum/mat"

	"github.com/Isagog/TokensEncoder/alg/nn"
	nlp "github.com/Isagog/TokensEncoder/nlp/types"
)

// Encoder is the common contract of the token-encoding strategies: one
// dense vector per token out of Forward, matching output errors into
// Backward, accumulated gradients out of ParamsErrors.
//
// An instance owns exclusive, single-slot state from its last Forward.
// Forward must complete before the matching Backward; Backward or
// ParamsErrors before any Forward is a caller error and fails with a
// no-forward-state error. Distinct instances may run Forward concurrently
// over the same immutable model; the paired optimizer's Update must be
// serialized externally against any of them.
type Encoder[S nlp.Sentence] interface {
	Forward(sent S) ([]*mat.VecDense, error)
	Backward(outputErrs []*mat.VecDense) error
	ParamsErrors(copyErrs bool) (ParamsErrors, error)

	// InputErrors reports gradients w.r.t. the encoder input. All
	// encoders here are terminal leaves and always report nil.
	InputErrors(copyErrs bool) []*mat.VecDense
}

// ParamsErrors is the gradient payload handed to an optimizer's
// Accumulate. Concrete payloads are tagged aggregates; an optimizer
// rejects a payload whose shape does not match its model.
type ParamsErrors interface {
	paramsErrors()
}

// ParamErrors is one parameter's gradient from one backward pass.
type ParamErrors struct {
	Param *nn.Param
	Grad  *mat.Dense
}

// ParamsErrorsList is the flat payload of single-component encoders. The
// same parameter may appear more than once (an embedding used at several
// positions); accumulation sums the entries.
type ParamsErrorsList []ParamErrors

func (ParamsErrorsList) paramsErrors() {}

func (l ParamsErrorsList) Copy() ParamsErrorsList {
	copied := make(ParamsErrorsList, len(l))
	for i, pe := range l {
		grad := new(mat.Dense)
		grad.CloneFrom(pe.Grad)
		copied[i] = ParamErrors{Param: pe.Param, Grad: grad}
	}
	return copied
}

// CharParamsErrors is the tagged composite payload of the characters
// encoder: the recurrent sub-network part and the character-embeddings
// part, routed to distinct sub-optimizers.
type CharParamsErrors struct {
	Network    ParamsErrorsList
	Embeddings ParamsErrorsList
}

func (*CharParamsErrors) paramsErrors() {}

func (c *CharParamsErrors) Copy() *CharParamsErrors {
	return &CharParamsErrors{
		Network:    c.Network.Copy(),
		Embeddings: c.Embeddings.Copy(),
	}
}
