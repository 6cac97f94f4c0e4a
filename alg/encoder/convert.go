package encoder

import (
	"gonum.org/v1/gonum/mat"

	nlp "github.com/Isagog/TokensEncoder/nlp/types"
)

// Converter maps one sentence representation onto another. It must be
// pure and total over its input; nothing else is assumed of it (not
// injectivity, not cacheability).
type Converter[I, O nlp.Sentence] func(I) O

// Converting adapts an encoder built for one sentence representation to
// be driven with another: Forward converts then delegates, everything
// else delegates untouched. The wrapper holds no state beyond the wrapped
// encoder and the converter reference.
type Converting[I, O nlp.Sentence] struct {
	Enc     Encoder[O]
	Convert Converter[I, O]
}

func NewConverting[I, O nlp.Sentence](enc Encoder[O], convert Converter[I, O]) *Converting[I, O] {
	return &Converting[I, O]{Enc: enc, Convert: convert}
}

func (c *Converting[I, O]) Forward(sent I) ([]*mat.VecDense, error) {
	return c.Enc.Forward(c.Convert(sent))
}

func (c *Converting[I, O]) Backward(outputErrs []*mat.VecDense) error {
	return c.Enc.Backward(outputErrs)
}

func (c *Converting[I, O]) ParamsErrors(copyErrs bool) (ParamsErrors, error) {
	return c.Enc.ParamsErrors(copyErrs)
}

func (c *Converting[I, O]) InputErrors(copyErrs bool) []*mat.VecDense {
	return c.Enc.InputErrors(copyErrs)
}
