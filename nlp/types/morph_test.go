package types

import "testing"

func TestMorphTags(t *testing.T) {
	cases := []struct {
		morph Morphology
		tag   MorphTag
	}{
		{&VerbMorph{Pos: "VERB"}, TagVerb},
		{&NounMorph{Pos: "NOUN"}, TagNoun},
		{&AdjectiveMorph{Pos: "ADJ"}, TagAdjective},
		{&PronounMorph{Pos: "PRON"}, TagPronoun},
		{&ArticleMorph{Pos: "DET"}, TagArticle},
		{&AdverbMorph{Pos: "ADV"}, TagAdverb},
		{&PrepositionMorph{Pos: "ADP"}, TagPreposition},
		{&ConjunctionMorph{Pos: "CCONJ"}, TagConjunction},
		{&PunctuationMorph{Pos: "PUNCT"}, TagPunctuation},
	}
	for _, c := range cases {
		if c.morph.MorphTag() != c.tag {
			t.Error("Got tag", c.morph.MorphTag(), "expected", c.tag)
		}
	}
}

func TestSentenceTokens(t *testing.T) {
	sent := MorphSentence{
		{Form: "he", Morph: &PronounMorph{Pos: "PRON", Lem: "he"}},
		{Form: "runs", Morph: &VerbMorph{Pos: "VERB", Lem: "run"}},
		{Form: ".", Morph: &PunctuationMorph{Pos: "PUNCT", Lem: "."}},
	}
	toks := sent.Tokens()
	if len(toks) != 3 {
		t.Error("Got", len(toks), "tokens, expected", 3)
	}
	if toks[1] != "runs" {
		t.Error("Got", toks[1], "expected runs")
	}
	basic := BasicSentence{"he", "runs", "."}
	if len(basic.Tokens()) != 3 {
		t.Error("Got", len(basic.Tokens()), "tokens, expected", 3)
	}
	if basic.Equal(MorphSentence{}) {
		t.Error("Different representations reported equal")
	}
}
