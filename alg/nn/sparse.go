package nn

import "gonum.org/v1/gonum/mat"

// SparseBinary is a fixed-width binary vector with only the active indices
// stored, the encoding of one token's feature set against a feature
// dictionary.
type SparseBinary struct {
	Size   int
	Active []int
}

func NewSparseBinary(size int, active []int) SparseBinary {
	for _, i := range active {
		if i < 0 || i >= size {
			panic("Active index out of range")
		}
	}
	return SparseBinary{Size: size, Active: active}
}

func (v SparseBinary) Dense() *mat.VecDense {
	out := mat.NewVecDense(v.Size, nil)
	for _, i := range v.Active {
		out.SetVec(i, 1)
	}
	return out
}
