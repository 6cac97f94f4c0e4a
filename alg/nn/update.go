package nn

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// UpdateMethod is the learning-rate rule injected into optimizers. Update
// applies one accumulated gradient to a parameter; it is the only code
// path that mutates parameter values.
type UpdateMethod interface {
	Update(p *Param, grad mat.Matrix)
}

type SGD struct {
	LearningRate float64
}

var _ UpdateMethod = &SGD{}

func (s *SGD) Update(p *Param, grad mat.Matrix) {
	var delta mat.Dense
	delta.Scale(-s.LearningRate, grad)
	p.Value.Add(p.Value, &delta)
}

// AdaGrad keeps a per-parameter history of squared gradients and scales
// each step by its inverse square root.
type AdaGrad struct {
	LearningRate float64
	Epsilon      float64

	hist map[*Param]*mat.Dense
}

var _ UpdateMethod = &AdaGrad{}

func NewAdaGrad(learningRate float64) *AdaGrad {
	return &AdaGrad{
		LearningRate: learningRate,
		Epsilon:      1e-8,
		hist:         make(map[*Param]*mat.Dense),
	}
}

func (a *AdaGrad) Update(p *Param, grad mat.Matrix) {
	rows, cols := grad.Dims()
	h, exists := a.hist[p]
	if !exists {
		h = mat.NewDense(rows, cols, nil)
		a.hist[p] = h
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			g := grad.At(i, j)
			h.Set(i, j, h.At(i, j)+g*g)
			step := a.LearningRate * g / math.Sqrt(h.At(i, j)+a.Epsilon)
			p.Value.Set(i, j, p.Value.At(i, j)-step)
		}
	}
}
