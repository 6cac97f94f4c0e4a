package encoder

import (
	"strings"

	nlp "github.com/Isagog/TokensEncoder/nlp/types"
)

// KeyExtractor derives a vocabulary lookup key from a token in context,
// or reports that no key applies at that position.
type KeyExtractor[S nlp.Sentence] interface {
	Key(sent S, index int) (string, bool)
}

// FormKey keys a token by its surface form.
type FormKey[S nlp.Sentence] struct{}

func (FormKey[S]) Key(sent S, index int) (string, bool) {
	toks := sent.Tokens()
	if index < 0 || index >= len(toks) || toks[index] == "" {
		return "", false
	}
	return toks[index], true
}

// NormKey keys a token by its lower-cased surface form, the usual
// fallback after the exact form misses the table.
type NormKey[S nlp.Sentence] struct{}

func (NormKey[S]) Key(sent S, index int) (string, bool) {
	toks := sent.Tokens()
	if index < 0 || index >= len(toks) || toks[index] == "" {
		return "", false
	}
	return strings.ToLower(toks[index]), true
}

// LemmaKey keys a token by its lemma; it applies only to annotated
// sentences whose token carries a morphology with a lemma.
type LemmaKey struct{}

func (LemmaKey) Key(sent nlp.MorphSentence, index int) (string, bool) {
	if index < 0 || index >= len(sent) {
		return "", false
	}
	morph := sent[index].Morph
	if morph == nil || morph.Lemma() == "" {
		return "", false
	}
	return morph.Lemma(), true
}
