package types

import "fmt"

// MorphTag discriminates the morphology variants. New tags append at the
// end; feature extraction dispatches on the tag and ignores unknown ones.
type MorphTag int

const (
	TagVerb MorphTag = iota
	TagNoun
	TagAdjective
	TagPronoun
	TagArticle
	TagAdverb
	TagPreposition
	TagConjunction
	TagPunctuation
)

var morphTagNames = []string{
	"VERB", "NOUN", "ADJ", "PRON", "ART", "ADV", "PREP", "CONJ", "PUNCT",
}

func (t MorphTag) String() string {
	if t < 0 || int(t) >= len(morphTagNames) {
		return fmt.Sprintf("MorphTag(%d)", int(t))
	}
	return morphTagNames[t]
}

// Morphology is the tagged variant carried by an annotated token. Every
// variant exposes at least a part of speech and a lemma; the rest of the
// attributes are variant-specific.
type Morphology interface {
	MorphTag() MorphTag
	POS() string
	Lemma() string
}

type VerbMorph struct {
	Pos, Lem     string
	Person       int
	Number       string
	Tense, Mood  string
}

func (m *VerbMorph) MorphTag() MorphTag { return TagVerb }
func (m *VerbMorph) POS() string        { return m.Pos }
func (m *VerbMorph) Lemma() string      { return m.Lem }

type NounMorph struct {
	Pos, Lem             string
	Number, Gender, Case string
}

func (m *NounMorph) MorphTag() MorphTag { return TagNoun }
func (m *NounMorph) POS() string        { return m.Pos }
func (m *NounMorph) Lemma() string      { return m.Lem }

type AdjectiveMorph struct {
	Pos, Lem             string
	Number, Gender, Case string
	Degree               string
}

func (m *AdjectiveMorph) MorphTag() MorphTag { return TagAdjective }
func (m *AdjectiveMorph) POS() string        { return m.Pos }
func (m *AdjectiveMorph) Lemma() string      { return m.Lem }

type PronounMorph struct {
	Pos, Lem             string
	Person               int
	Number, Gender, Case string
}

func (m *PronounMorph) MorphTag() MorphTag { return TagPronoun }
func (m *PronounMorph) POS() string        { return m.Pos }
func (m *PronounMorph) Lemma() string      { return m.Lem }

type ArticleMorph struct {
	Pos, Lem             string
	Number, Gender, Case string
}

func (m *ArticleMorph) MorphTag() MorphTag { return TagArticle }
func (m *ArticleMorph) POS() string        { return m.Pos }
func (m *ArticleMorph) Lemma() string      { return m.Lem }

type AdverbMorph struct {
	Pos, Lem string
	Degree   string
}

func (m *AdverbMorph) MorphTag() MorphTag { return TagAdverb }
func (m *AdverbMorph) POS() string        { return m.Pos }
func (m *AdverbMorph) Lemma() string      { return m.Lem }

type PrepositionMorph struct {
	Pos, Lem string
}

func (m *PrepositionMorph) MorphTag() MorphTag { return TagPreposition }
func (m *PrepositionMorph) POS() string        { return m.Pos }
func (m *PrepositionMorph) Lemma() string      { return m.Lem }

type ConjunctionMorph struct {
	Pos, Lem string
	Type     string
}

func (m *ConjunctionMorph) MorphTag() MorphTag { return TagConjunction }
func (m *ConjunctionMorph) POS() string        { return m.Pos }
func (m *ConjunctionMorph) Lemma() string      { return m.Lem }

type PunctuationMorph struct {
	Pos, Lem string
}

func (m *PunctuationMorph) MorphTag() MorphTag { return TagPunctuation }
func (m *PunctuationMorph) POS() string        { return m.Pos }
func (m *PunctuationMorph) Lemma() string      { return m.Lem }

var _ Morphology = &VerbMorph{}
var _ Morphology = &NounMorph{}
var _ Morphology = &AdjectiveMorph{}
var _ Morphology = &PronounMorph{}
var _ Morphology = &ArticleMorph{}
var _ Morphology = &AdverbMorph{}
var _ Morphology = &PrepositionMorph{}
var _ Morphology = &ConjunctionMorph{}
var _ Morphology = &PunctuationMorph{}
