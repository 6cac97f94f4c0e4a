package encoder

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	nlp "github.com/Isagog/TokensEncoder/nlp/types"
)

// SubNetwork is the recurrent characters network, an external
// collaborator: this package coordinates its gradients and optimizer but
// never looks inside it. The network owns two trainable components, its
// internal parameters and the character embeddings it consumes, and
// reports their gradients separately after a backward pass.
type SubNetwork interface {
	Forward(forms []string) ([]*mat.VecDense, error)
	Backward(outputErrs []*mat.VecDense) error
	NetworkErrors(copyErrs bool) (ParamsErrorsList, error)
	EmbeddingsErrors(copyErrs bool) (ParamsErrorsList, error)
}

// CharModel wraps the external characters network as an encoder model.
type CharModel struct {
	Net SubNetwork
}

func (m *CharModel) NewEncoder() *CharEncoder {
	return &CharEncoder{model: m}
}

// CharEncoder delegates the computation to the sub-network and repackages
// its two gradient streams as one tagged composite payload for the
// CharOptimizer.
type CharEncoder struct {
	model *CharModel
	ran   bool
}

func (e *CharEncoder) Forward(sent nlp.Sentence) ([]*mat.VecDense, error) {
	out, err := e.model.Net.Forward(sent.Tokens())
	if err != nil {
		return nil, err
	}
	e.ran = true
	return out, nil
}

func (e *CharEncoder) Backward(outputErrs []*mat.VecDense) error {
	if !e.ran {
		return fmt.Errorf("char encoder: backward without forward state")
	}
	return e.model.Net.Backward(outputErrs)
}

func (e *CharEncoder) ParamsErrors(copyErrs bool) (ParamsErrors, error) {
	if !e.ran {
		return nil, fmt.Errorf("char encoder: params errors without forward state")
	}
	network, err := e.model.Net.NetworkErrors(copyErrs)
	if err != nil {
		return nil, err
	}
	embeddings, err := e.model.Net.EmbeddingsErrors(copyErrs)
	if err != nil {
		return nil, err
	}
	return &CharParamsErrors{Network: network, Embeddings: embeddings}, nil
}

func (e *CharEncoder) InputErrors(copyErrs bool) []*mat.VecDense {
	return nil
}

var _ Encoder[nlp.Sentence] = &CharEncoder{}
