package encoder

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/Isagog/TokensEncoder/alg/nn"
	"github.com/Isagog/TokensEncoder/nlp/features"
	nlp "github.com/Isagog/TokensEncoder/nlp/types"
	"github.com/Isagog/TokensEncoder/util"
)

func testMorphModel() *MorphModel {
	dict := util.NewEnumSet(8)
	dict.Add("p:PRON")
	dict.Add("pl:PRON_he")
	dict.Add("agr:PRON_3_sing_masc_nom")
	dict.Add("p:PUNCT")
	dict.Freeze()
	out, in := 2, dict.Len()
	w := make([]float64, out*in)
	for i := range w {
		w[i] = float64(i + 1)
	}
	return &MorphModel{
		Dict:      dict,
		Extractor: &features.SentenceExtractor{},
		Proj: &nn.Linear{
			W: &nn.Param{Name: "W", Value: mat.NewDense(out, in, w)},
			B: &nn.Param{Name: "b", Value: mat.NewDense(out, 1, nil)},
		},
	}
}

func testMorphSentence() nlp.MorphSentence {
	return nlp.MorphSentence{
		{Form: "he", Morph: &nlp.PronounMorph{Pos: "PRON", Lem: "he", Person: 3, Number: "sing", Gender: "masc", Case: "nom"}},
		{Form: "zorblax", Morph: nil},
		{Form: ".", Morph: &nlp.PunctuationMorph{Pos: "PUNCT", Lem: "."}},
	}
}

func TestMorphForward(t *testing.T) {
	e := testMorphModel().NewEncoder()
	sent := testMorphSentence()
	out, err := e.Forward(sent)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(sent) {
		t.Fatal("Got", len(out), "outputs, expected", len(sent))
	}
	// token 0 activates dictionary ids 0,1,2: rows sum W columns 0..2
	if out[0].AtVec(0) != 1+2+3 || out[0].AtVec(1) != 5+6+7 {
		t.Error("Got", out[0].RawVector().Data, "expected [6 18]")
	}
	// token 1 has no features: bias only
	if out[1].AtVec(0) != 0 || out[1].AtVec(1) != 0 {
		t.Error("Featureless token produced", out[1].RawVector().Data)
	}
	// token 2 activates id 3 only
	if out[2].AtVec(0) != 4 || out[2].AtVec(1) != 8 {
		t.Error("Got", out[2].RawVector().Data, "expected [4 8]")
	}
}

func TestMorphForwardDropsUnknownFeatures(t *testing.T) {
	m := testMorphModel()
	// a lexicon feature the dictionary never saw
	m.Extractor = &features.SentenceExtractor{Lexicon: features.Lexicon{
		".": {"lex:unseen"},
	}}
	e := m.NewEncoder()
	out, err := e.Forward(testMorphSentence())
	if err != nil {
		t.Fatal(err)
	}
	if out[2].AtVec(0) != 4 || out[2].AtVec(1) != 8 {
		t.Error("Unknown feature changed the encoding:", out[2].RawVector().Data)
	}
}

func TestMorphBackward(t *testing.T) {
	m := testMorphModel()
	e := m.NewEncoder()
	sent := testMorphSentence()
	if _, err := e.Forward(sent); err != nil {
		t.Fatal(err)
	}
	errs := []*mat.VecDense{
		mat.NewVecDense(2, []float64{1, 1}),
		mat.NewVecDense(2, []float64{1, 1}),
		mat.NewVecDense(2, []float64{1, 1}),
	}
	if err := e.Backward(errs); err != nil {
		t.Fatal(err)
	}
	pe, err := e.ParamsErrors(false)
	if err != nil {
		t.Fatal(err)
	}
	list := pe.(ParamsErrorsList)
	if len(list) != 2 {
		t.Fatal("Got", len(list), "param errors, expected W and b")
	}
	if list[0].Param != m.Proj.W || list[1].Param != m.Proj.B {
		t.Error("Params errors not bound to the projection parameters")
	}
	// every column active exactly once across the batch
	for j := 0; j < m.Dict.Len(); j++ {
		if list[0].Grad.At(0, j) != 1 {
			t.Error("Got weight gradient", list[0].Grad.At(0, j), "at column", j, "expected 1")
		}
	}
	if list[1].Grad.At(0, 0) != 3 {
		t.Error("Got bias gradient", list[1].Grad.At(0, 0), "expected 3")
	}
}

func TestMorphBackwardMismatch(t *testing.T) {
	e := testMorphModel().NewEncoder()
	if err := e.Backward(nil); err == nil {
		t.Error("Backward before forward did not fail")
	}
	if _, err := e.Forward(testMorphSentence()); err != nil {
		t.Fatal(err)
	}
	short := []*mat.VecDense{mat.NewVecDense(2, nil)}
	if err := e.Backward(short); err == nil {
		t.Error("Backward with mismatched length did not fail")
	}
	if _, err := e.ParamsErrors(false); err == nil {
		t.Error("ParamsErrors after failed backward did not fail")
	}
	if e.InputErrors(false) != nil {
		t.Error("Terminal encoder reported input errors")
	}
}
