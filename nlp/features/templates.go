package features

import (
	"fmt"

	nlp "github.com/Isagog/TokensEncoder/nlp/types"
)

// Feature strings are built from fixed per-variant templates. Formatting
// is deterministic: the same morphology always yields the same strings,
// which keeps dictionary ids stable across runs.
//
// Shared templates:
//
//	p:<pos>                                part of speech alone
//	pl:<pos>_<lemma>                       part of speech and lemma
//	agr:<pos>_<person>_<number>_<gender>_<case>
//	                                       full agreement tuple

const SEPARATOR = "_"

func posFeature(m nlp.Morphology) string {
	return "p:" + m.POS()
}

func posLemmaFeature(m nlp.Morphology) string {
	return fmt.Sprintf("pl:%s%s%s", m.POS(), SEPARATOR, m.Lemma())
}

// Extractor derives the feature strings of one morphology variant.
type Extractor interface {
	Extract(m nlp.Morphology) []string
}

type VerbExtractor struct{}

func (VerbExtractor) Extract(m nlp.Morphology) []string {
	v := m.(*nlp.VerbMorph)
	return []string{
		posFeature(v),
		posLemmaFeature(v),
		fmt.Sprintf("vagr:%s_%d_%s", v.Pos, v.Person, v.Number),
		fmt.Sprintf("vtm:%s_%s_%s", v.Pos, v.Tense, v.Mood),
	}
}

type NounExtractor struct{}

func (NounExtractor) Extract(m nlp.Morphology) []string {
	n := m.(*nlp.NounMorph)
	return []string{
		posFeature(n),
		posLemmaFeature(n),
		fmt.Sprintf("nagr:%s_%s_%s_%s", n.Pos, n.Number, n.Gender, n.Case),
	}
}

type AdjectiveExtractor struct{}

func (AdjectiveExtractor) Extract(m nlp.Morphology) []string {
	a := m.(*nlp.AdjectiveMorph)
	feats := []string{
		posFeature(a),
		posLemmaFeature(a),
		fmt.Sprintf("aagr:%s_%s_%s_%s", a.Pos, a.Number, a.Gender, a.Case),
	}
	if a.Degree != "" {
		feats = append(feats, fmt.Sprintf("deg:%s_%s", a.Pos, a.Degree))
	}
	return feats
}

type PronounExtractor struct{}

func (PronounExtractor) Extract(m nlp.Morphology) []string {
	p := m.(*nlp.PronounMorph)
	return []string{
		posFeature(p),
		posLemmaFeature(p),
		fmt.Sprintf("agr:%s_%d_%s_%s_%s", p.Pos, p.Person, p.Number, p.Gender, p.Case),
	}
}

type ArticleExtractor struct{}

func (ArticleExtractor) Extract(m nlp.Morphology) []string {
	a := m.(*nlp.ArticleMorph)
	return []string{
		posFeature(a),
		fmt.Sprintf("dagr:%s_%s_%s_%s", a.Pos, a.Number, a.Gender, a.Case),
	}
}

type AdverbExtractor struct{}

func (AdverbExtractor) Extract(m nlp.Morphology) []string {
	a := m.(*nlp.AdverbMorph)
	feats := []string{
		posFeature(a),
		posLemmaFeature(a),
	}
	if a.Degree != "" {
		feats = append(feats, fmt.Sprintf("deg:%s_%s", a.Pos, a.Degree))
	}
	return feats
}

type PrepositionExtractor struct{}

func (PrepositionExtractor) Extract(m nlp.Morphology) []string {
	p := m.(*nlp.PrepositionMorph)
	return []string{
		posFeature(p),
		posLemmaFeature(p),
	}
}

type ConjunctionExtractor struct{}

func (ConjunctionExtractor) Extract(m nlp.Morphology) []string {
	c := m.(*nlp.ConjunctionMorph)
	feats := []string{
		posFeature(c),
		posLemmaFeature(c),
	}
	if c.Type != "" {
		feats = append(feats, fmt.Sprintf("ctype:%s_%s", c.Pos, c.Type))
	}
	return feats
}

type PunctuationExtractor struct{}

func (PunctuationExtractor) Extract(m nlp.Morphology) []string {
	return []string{posFeature(m)}
}

var extractors = map[nlp.MorphTag]Extractor{
	nlp.TagVerb:        VerbExtractor{},
	nlp.TagNoun:        NounExtractor{},
	nlp.TagAdjective:   AdjectiveExtractor{},
	nlp.TagPronoun:     PronounExtractor{},
	nlp.TagArticle:     ArticleExtractor{},
	nlp.TagAdverb:      AdverbExtractor{},
	nlp.TagPreposition: PrepositionExtractor{},
	nlp.TagConjunction: ConjunctionExtractor{},
	nlp.TagPunctuation: PunctuationExtractor{},
}

// Build dispatches on the runtime morphology variant. Unsupported variants
// (and nil morphology) yield no extractor rather than failing; the caller
// treats that as zero features from the token's morphology.
func Build(m nlp.Morphology) (Extractor, bool) {
	if m == nil {
		return nil, false
	}
	x, exists := extractors[m.MorphTag()]
	return x, exists
}
