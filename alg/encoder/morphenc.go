package encoder

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/Isagog/TokensEncoder/alg/nn"
	"github.com/Isagog/TokensEncoder/nlp/features"
	nlp "github.com/Isagog/TokensEncoder/nlp/types"
	"github.com/Isagog/TokensEncoder/util"
)

// MorphModel is the immutable configuration of the morphological
// strategy: a frozen feature dictionary, the sentence feature extractor
// and a trainable projection from sparse feature space to the output
// dimension.
type MorphModel struct {
	Dict      *util.EnumSet
	Extractor *features.SentenceExtractor
	Proj      *nn.Linear // Out() x Dict.Len()
}

func (m *MorphModel) NewEncoder() *MorphEncoder {
	return &MorphEncoder{model: m}
}

func (m *MorphModel) NewOptimizer(method nn.UpdateMethod) *ParamsOptimizer {
	return NewParamsOptimizer(method)
}

// MorphEncoder encodes each token's feature set as a sparse binary vector
// against the feature dictionary and projects the batch through the dense
// transform. Feature strings missing from the dictionary are silently
// dropped.
type MorphEncoder struct {
	model        *MorphModel
	inputs       []nn.SparseBinary
	gradW, gradB *mat.Dense
}

func (e *MorphEncoder) Forward(sent nlp.MorphSentence) ([]*mat.VecDense, error) {
	sets := e.model.Extractor.Extract(sent)
	e.inputs = make([]nn.SparseBinary, len(sets))
	e.gradW, e.gradB = nil, nil
	width := e.model.Dict.Len()
	for i, feats := range sets {
		var active []int
		for _, f := range feats {
			if id, exists := e.model.Dict.IndexOf(f); exists {
				active = append(active, id)
			}
		}
		e.inputs[i] = nn.SparseBinary{Size: width, Active: active}
	}
	return e.model.Proj.ForwardSparse(e.inputs), nil
}

// Backward delegates to the projection; the projection owns all the
// bookkeeping this strategy needs.
func (e *MorphEncoder) Backward(outputErrs []*mat.VecDense) error {
	if e.inputs == nil {
		return fmt.Errorf("morph encoder: backward without forward state")
	}
	gradW, gradB, err := e.model.Proj.BackwardSparse(e.inputs, outputErrs)
	if err != nil {
		return fmt.Errorf("morph encoder: %v", err)
	}
	e.gradW, e.gradB = gradW, gradB
	return nil
}

func (e *MorphEncoder) ParamsErrors(copyErrs bool) (ParamsErrors, error) {
	if e.gradW == nil {
		return nil, fmt.Errorf("morph encoder: params errors without backward state")
	}
	list := ParamsErrorsList{
		{Param: e.model.Proj.W, Grad: e.gradW},
		{Param: e.model.Proj.B, Grad: e.gradB},
	}
	if copyErrs {
		return list.Copy(), nil
	}
	return list, nil
}

// InputErrors always reports none: sparse feature encoding has no
// differentiable upstream.
func (e *MorphEncoder) InputErrors(copyErrs bool) []*mat.VecDense {
	return nil
}

var _ Encoder[nlp.MorphSentence] = &MorphEncoder{}
