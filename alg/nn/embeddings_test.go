package nn

import (
	"bytes"
	"encoding/gob"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestEmbeddingsLookup(t *testing.T) {
	e := NewEmbeddings(4, 42)
	p := e.Add("dog")
	if !e.Contains("dog") {
		t.Error("Added key not contained")
	}
	if e.Contains("cat") {
		t.Error("Missing key contained")
	}
	if e.Lookup("dog", 0) != p {
		t.Error("Lookup without dropout did not return the key's param")
	}
	if e.Lookup("cat", 0) != e.Unknown {
		t.Error("Missing key did not resolve to the unknown param")
	}
	if e.Lookup("", 0) != e.Unknown {
		t.Error("Empty key did not resolve to the unknown param")
	}
}

func TestEmbeddingsDropoutCertain(t *testing.T) {
	e := NewEmbeddings(2, 7)
	e.Add("dog")
	// dropout 1 always zeroes, dropout 0 never does
	for i := 0; i < 10; i++ {
		if e.Lookup("dog", 1) != e.Unknown {
			t.Error("Dropout 1 kept the key's param")
		}
		if e.Lookup("dog", 0) == e.Unknown {
			t.Error("Dropout 0 dropped the key's param")
		}
	}
}

func TestEmbeddingsAddIdempotent(t *testing.T) {
	e := NewEmbeddings(3, 1)
	first := e.Add("dog")
	second := e.Add("dog")
	if first != second {
		t.Error("Re-add created a new param")
	}
	if e.Len() != 1 {
		t.Error("Got len", e.Len(), "expected", 1)
	}
}

func TestParamGob(t *testing.T) {
	p := &Param{Name: "w", Value: mat.NewDense(2, 2, []float64{1, 2, 3, 4})}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(p); err != nil {
		t.Fatal(err)
	}
	decoded := new(Param)
	if err := gob.NewDecoder(&buf).Decode(decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Name != "w" {
		t.Error("Got name", decoded.Name)
	}
	if decoded.Value.At(1, 0) != 3 {
		t.Error("Got", decoded.Value.At(1, 0), "expected", 3)
	}
}

func TestSGDUpdate(t *testing.T) {
	p := &Param{Name: "w", Value: mat.NewDense(1, 2, []float64{1, 1})}
	s := &SGD{LearningRate: 0.5}
	s.Update(p, mat.NewDense(1, 2, []float64{2, -2}))
	if p.Value.At(0, 0) != 0 || p.Value.At(0, 1) != 2 {
		t.Error("Got", p.Value.RawMatrix().Data, "expected [0 2]")
	}
}

func TestAdaGradUpdate(t *testing.T) {
	p := &Param{Name: "w", Value: mat.NewDense(1, 1, []float64{1})}
	a := NewAdaGrad(0.1)
	a.Update(p, mat.NewDense(1, 1, []float64{2}))
	// history 4, step = 0.1*2/sqrt(4+eps) ~ 0.1
	got := p.Value.At(0, 0)
	if got < 0.899 || got > 0.901 {
		t.Error("Got", got, "expected ~0.9")
	}
	a.Update(p, mat.NewDense(1, 1, []float64{2}))
	// history 8, step = 0.2/sqrt(8) ~ 0.0707
	got = p.Value.At(0, 0)
	if got < 0.828 || got > 0.830 {
		t.Error("Got", got, "expected ~0.829")
	}
}
