package encoder

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/Isagog/TokensEncoder/alg/nn"
)

// Optimizer pairs with an encoder model. Accumulate collects gradients
// from backward passes into a per-parameter store; Update applies every
// accumulated delta through the injected update method and clears the
// store. Accumulation and application are the only two phases that ever
// touch parameter state.
type Optimizer interface {
	Accumulate(errs ParamsErrors, copyErrs bool) error
	Update() error
}

// ParamsOptimizer is the leaf optimizer over a flat list of parameters.
type ParamsOptimizer struct {
	method nn.UpdateMethod
	acc    map[*nn.Param]*mat.Dense
	order  []*nn.Param
	count  int
}

var _ Optimizer = &ParamsOptimizer{}

func NewParamsOptimizer(method nn.UpdateMethod) *ParamsOptimizer {
	return &ParamsOptimizer{
		method: method,
		acc:    make(map[*nn.Param]*mat.Dense),
	}
}

// Accumulate sums the payload into the per-parameter store. With copyErrs
// false the first gradient per parameter is held by reference, so the
// caller must not reuse the payload past the next mutating call.
func (o *ParamsOptimizer) Accumulate(errs ParamsErrors, copyErrs bool) error {
	list, ok := errs.(ParamsErrorsList)
	if !ok {
		return fmt.Errorf("params optimizer: unexpected params errors type %T", errs)
	}
	for _, pe := range list {
		pr, pc := pe.Param.Dims()
		gr, gc := pe.Grad.Dims()
		if pr != gr || pc != gc {
			return fmt.Errorf("params optimizer: gradient for %s is %dx%d, param is %dx%d",
				pe.Param.Name, gr, gc, pr, pc)
		}
		cur, exists := o.acc[pe.Param]
		if !exists {
			grad := pe.Grad
			if copyErrs {
				grad = new(mat.Dense)
				grad.CloneFrom(pe.Grad)
			}
			o.acc[pe.Param] = grad
			o.order = append(o.order, pe.Param)
			continue
		}
		// never mutate a possibly aliased first entry
		sum := new(mat.Dense)
		sum.Add(cur, pe.Grad)
		o.acc[pe.Param] = sum
	}
	o.count++
	return nil
}

func (o *ParamsOptimizer) Update() error {
	for _, p := range o.order {
		o.method.Update(p, o.acc[p])
	}
	o.acc = make(map[*nn.Param]*mat.Dense)
	o.order = nil
	return nil
}

// Accumulations reports how many Accumulate calls the optimizer has seen.
func (o *ParamsOptimizer) Accumulations() int {
	return o.count
}

// CharOptimizer coordinates the two independently trainable components of
// the characters encoder as one update/accumulate unit.
type CharOptimizer struct {
	Network    *ParamsOptimizer
	Embeddings *ParamsOptimizer
}

var _ Optimizer = &CharOptimizer{}

func NewCharOptimizer(networkMethod, embeddingsMethod nn.UpdateMethod) *CharOptimizer {
	return &CharOptimizer{
		Network:    NewParamsOptimizer(networkMethod),
		Embeddings: NewParamsOptimizer(embeddingsMethod),
	}
}

// Accumulate demultiplexes the composite payload into its named parts and
// forwards each to its owning sub-optimizer. A payload of any other shape
// fails fast: silently accepting it would corrupt gradients.
func (o *CharOptimizer) Accumulate(errs ParamsErrors, copyErrs bool) error {
	composite, ok := errs.(*CharParamsErrors)
	if !ok {
		return fmt.Errorf("char optimizer: unexpected params errors type %T", errs)
	}
	if err := o.Network.Accumulate(composite.Network, copyErrs); err != nil {
		return err
	}
	return o.Embeddings.Accumulate(composite.Embeddings, copyErrs)
}

// Update runs the sub-optimizers in fixed order: network first, then
// embeddings.
func (o *CharOptimizer) Update() error {
	if err := o.Network.Update(); err != nil {
		return err
	}
	return o.Embeddings.Update()
}
