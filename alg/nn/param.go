package nn

import (
	"bytes"
	"encoding/gob"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Param is a trainable tensor. Values are read freely during forward;
// writing is reserved to an UpdateMethod applying accumulated gradients,
// which the caller must serialize against in-flight forward/backward.
type Param struct {
	Name  string
	Value *mat.Dense
}

func NewParam(name string, rows, cols int) *Param {
	return &Param{Name: name, Value: mat.NewDense(rows, cols, nil)}
}

// NewRandomParam draws the initial values from a scaled normal
// distribution, as usual for embedding and projection weights.
func NewRandomParam(name string, rows, cols int, scale float64, rng *rand.Rand) *Param {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.NormFloat64() * scale
	}
	return &Param{Name: name, Value: mat.NewDense(rows, cols, data)}
}

func (p *Param) Dims() (int, int) {
	return p.Value.Dims()
}

// VectorValue copies a rows-by-1 parameter out as a dense vector.
func (p *Param) VectorValue() *mat.VecDense {
	rows, cols := p.Value.Dims()
	if cols != 1 {
		panic("VectorValue of a non-column param " + p.Name)
	}
	out := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		out.SetVec(i, p.Value.At(i, 0))
	}
	return out
}

type gobParam struct {
	Name       string
	Rows, Cols int
	Data       []float64
}

// GobEncode flattens the gonum matrix, which gob cannot encode directly.
func (p *Param) GobEncode() ([]byte, error) {
	rows, cols := p.Value.Dims()
	data := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data = append(data, p.Value.At(i, j))
		}
	}
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(gobParam{p.Name, rows, cols, data})
	return buf.Bytes(), err
}

func (p *Param) GobDecode(b []byte) error {
	var g gobParam
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&g); err != nil {
		return err
	}
	p.Name = g.Name
	p.Value = mat.NewDense(g.Rows, g.Cols, g.Data)
	return nil
}

// ColDense copies a dense vector into a column matrix, the shape gradients
// are carried in.
func ColDense(v *mat.VecDense) *mat.Dense {
	out := mat.NewDense(v.Len(), 1, nil)
	for i := 0; i < v.Len(); i++ {
		out.Set(i, 0, v.AtVec(i))
	}
	return out
}
