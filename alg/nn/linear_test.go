package nn

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func testLinear() *Linear {
	return &Linear{
		W: &Param{Name: "W", Value: mat.NewDense(2, 2, []float64{1, 2, 3, 4})},
		B: &Param{Name: "b", Value: mat.NewDense(2, 1, []float64{0.5, -1})},
	}
}

func TestLinearForward(t *testing.T) {
	l := testLinear()
	out := l.Forward([]*mat.VecDense{mat.NewVecDense(2, []float64{1, 1})})
	if len(out) != 1 {
		t.Fatal("Got", len(out), "outputs, expected", 1)
	}
	if out[0].AtVec(0) != 3.5 || out[0].AtVec(1) != 6 {
		t.Error("Got", out[0].RawVector().Data, "expected [3.5 6]")
	}
}

func TestLinearBackward(t *testing.T) {
	l := testLinear()
	xs := []*mat.VecDense{mat.NewVecDense(2, []float64{1, 1})}
	errs := []*mat.VecDense{mat.NewVecDense(2, []float64{1, 2})}
	gradW, gradB, inputErrs, err := l.Backward(xs, errs)
	if err != nil {
		t.Fatal(err)
	}
	if gradW.At(0, 0) != 1 || gradW.At(0, 1) != 1 || gradW.At(1, 0) != 2 || gradW.At(1, 1) != 2 {
		t.Error("Got gradW", gradW.RawMatrix().Data)
	}
	if gradB.At(0, 0) != 1 || gradB.At(1, 0) != 2 {
		t.Error("Got gradB", gradB.RawMatrix().Data)
	}
	if inputErrs[0].AtVec(0) != 7 || inputErrs[0].AtVec(1) != 10 {
		t.Error("Got input errors", inputErrs[0].RawVector().Data, "expected [7 10]")
	}
}

func TestLinearBackwardMismatch(t *testing.T) {
	l := testLinear()
	xs := []*mat.VecDense{mat.NewVecDense(2, []float64{1, 1})}
	if _, _, _, err := l.Backward(xs, nil); err == nil {
		t.Error("Backward with mismatched batch did not fail")
	}
	badErrs := []*mat.VecDense{mat.NewVecDense(3, nil)}
	if _, _, _, err := l.Backward(xs, badErrs); err == nil {
		t.Error("Backward with mis-sized error vector did not fail")
	}
}

func sparseLinear() *Linear {
	return &Linear{
		W: &Param{Name: "W", Value: mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})},
		B: &Param{Name: "b", Value: mat.NewDense(2, 1, []float64{1, 1})},
	}
}

func TestLinearForwardSparse(t *testing.T) {
	l := sparseLinear()
	xs := []SparseBinary{NewSparseBinary(3, []int{0, 2})}
	out := l.ForwardSparse(xs)
	if out[0].AtVec(0) != 5 || out[0].AtVec(1) != 11 {
		t.Error("Got", out[0].RawVector().Data, "expected [5 11]")
	}
	// sparse and dense paths must agree
	dense := l.Forward([]*mat.VecDense{xs[0].Dense()})
	for i := 0; i < 2; i++ {
		if math.Abs(out[0].AtVec(i)-dense[0].AtVec(i)) > 1e-12 {
			t.Error("Sparse and dense forward disagree at", i)
		}
	}
}

func TestLinearBackwardSparse(t *testing.T) {
	l := sparseLinear()
	xs := []SparseBinary{NewSparseBinary(3, []int{0, 2})}
	errs := []*mat.VecDense{mat.NewVecDense(2, []float64{1, 1})}
	gradW, gradB, err := l.BackwardSparse(xs, errs)
	if err != nil {
		t.Fatal(err)
	}
	expected := []float64{1, 0, 1, 1, 0, 1}
	for i, v := range gradW.RawMatrix().Data {
		if v != expected[i] {
			t.Error("Got gradW", gradW.RawMatrix().Data, "expected", expected)
			break
		}
	}
	if gradB.At(0, 0) != 1 || gradB.At(1, 0) != 1 {
		t.Error("Got gradB", gradB.RawMatrix().Data)
	}
	if _, _, err := l.BackwardSparse(xs, errs[:0]); err == nil {
		t.Error("Backward with mismatched batch did not fail")
	}
}
