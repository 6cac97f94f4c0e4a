package nn

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Linear is a batched feed-forward transform y = Wx + b. Batching is for
// throughput only: outputs preserve input order one to one.
type Linear struct {
	W *Param // out x in
	B *Param // out x 1
}

func NewLinear(name string, in, out int, rng *rand.Rand) *Linear {
	scale := 1.0 / math.Sqrt(float64(in))
	return &Linear{
		W: NewRandomParam(name+".W", out, in, scale, rng),
		B: NewParam(name+".b", out, 1),
	}
}

func (l *Linear) In() int {
	_, in := l.W.Value.Dims()
	return in
}

func (l *Linear) Out() int {
	out, _ := l.W.Value.Dims()
	return out
}

func (l *Linear) Forward(xs []*mat.VecDense) []*mat.VecDense {
	out := make([]*mat.VecDense, len(xs))
	for i, x := range xs {
		if x.Len() != l.In() {
			panic(fmt.Sprintf("Linear input %d has size %d, layer takes %d", i, x.Len(), l.In()))
		}
		y := mat.NewVecDense(l.Out(), nil)
		y.MulVec(l.W.Value, x)
		y.AddVec(y, l.B.Value.ColView(0))
		out[i] = y
	}
	return out
}

// ForwardSparse computes Wx + b for binary-sparse inputs: each output is
// the sum of the weight columns active in the input, plus the bias.
func (l *Linear) ForwardSparse(xs []SparseBinary) []*mat.VecDense {
	rows, cols := l.W.Value.Dims()
	out := make([]*mat.VecDense, len(xs))
	for i, x := range xs {
		if x.Size != cols {
			panic(fmt.Sprintf("Sparse input %d has size %d, layer takes %d", i, x.Size, cols))
		}
		y := mat.NewVecDense(rows, nil)
		y.AddVec(y, l.B.Value.ColView(0))
		for _, j := range x.Active {
			for r := 0; r < rows; r++ {
				y.SetVec(r, y.AtVec(r)+l.W.Value.At(r, j))
			}
		}
		out[i] = y
	}
	return out
}

// Backward computes the parameter gradients of the batch and the errors to
// propagate to the inputs. The inputs must be the ones of the matching
// forward call.
func (l *Linear) Backward(xs, errs []*mat.VecDense) (gradW, gradB *mat.Dense, inputErrs []*mat.VecDense, err error) {
	if len(errs) != len(xs) {
		return nil, nil, nil, fmt.Errorf("linear backward: got %d output errors, expected %d", len(errs), len(xs))
	}
	rows, cols := l.W.Value.Dims()
	gradW = mat.NewDense(rows, cols, nil)
	gradB = mat.NewDense(rows, 1, nil)
	inputErrs = make([]*mat.VecDense, len(xs))
	for i, e := range errs {
		if e.Len() != rows {
			return nil, nil, nil, fmt.Errorf("linear backward: output error %d has size %d, expected %d", i, e.Len(), rows)
		}
		var outer mat.Dense
		outer.Outer(1, e, xs[i])
		gradW.Add(gradW, &outer)
		for r := 0; r < rows; r++ {
			gradB.Set(r, 0, gradB.At(r, 0)+e.AtVec(r))
		}
		ie := mat.NewVecDense(cols, nil)
		ie.MulVec(l.W.Value.T(), e)
		inputErrs[i] = ie
	}
	return gradW, gradB, inputErrs, nil
}

// BackwardSparse accumulates weight gradients only at the active columns.
// Sparse binary inputs have no differentiable upstream, so no input errors
// are produced.
func (l *Linear) BackwardSparse(xs []SparseBinary, errs []*mat.VecDense) (gradW, gradB *mat.Dense, err error) {
	if len(errs) != len(xs) {
		return nil, nil, fmt.Errorf("linear backward: got %d output errors, expected %d", len(errs), len(xs))
	}
	rows, cols := l.W.Value.Dims()
	gradW = mat.NewDense(rows, cols, nil)
	gradB = mat.NewDense(rows, 1, nil)
	for i, e := range errs {
		if e.Len() != rows {
			return nil, nil, fmt.Errorf("linear backward: output error %d has size %d, expected %d", i, e.Len(), rows)
		}
		for _, j := range xs[i].Active {
			for r := 0; r < rows; r++ {
				gradW.Set(r, j, gradW.At(r, j)+e.AtVec(r))
			}
		}
		for r := 0; r < rows; r++ {
			gradB.Set(r, 0, gradB.At(r, 0)+e.AtVec(r))
		}
	}
	return gradW, gradB, nil
}
