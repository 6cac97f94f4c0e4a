package types

import (
	"reflect"

	"github.com/Isagog/TokensEncoder/util"
)

// Token is one linguistic token: a surface form plus, for morphologically
// annotated sentences, its morphology variant (nil when unannotated).
type Token struct {
	Form  string
	Morph Morphology
}

// Sentence is an ordered sequence of tokens, a read-only input owned by
// the caller.
type Sentence interface {
	util.Equaler
	Tokens() []string
}

// BasicSentence carries surface forms only.
type BasicSentence []string

var _ Sentence = BasicSentence{}

func (b BasicSentence) Tokens() []string {
	return []string(b)
}

func (b BasicSentence) Equal(otherEq util.Equaler) bool {
	asBasic, ok := otherEq.(BasicSentence)
	if !ok {
		return false
	}
	return reflect.DeepEqual(b, asBasic)
}

// MorphSentence carries morphologically annotated tokens.
type MorphSentence []Token

var _ Sentence = MorphSentence{}

func (m MorphSentence) Tokens() []string {
	retval := make([]string, len(m))
	for i, val := range m {
		retval[i] = val.Form
	}
	return retval
}

func (m MorphSentence) Equal(otherEq util.Equaler) bool {
	asMorph, ok := otherEq.(MorphSentence)
	if !ok {
		return false
	}
	return reflect.DeepEqual(m, asMorph)
}
