package features

import (
	nlp "github.com/Isagog/TokensEncoder/nlp/types"
)

// Lexicon maps a surface form to corpus-assigned feature strings,
// enriching whatever the token's own morphology yields.
type Lexicon map[string][]string

// SentenceExtractor derives one feature set per token of a
// morphologically annotated sentence.
type SentenceExtractor struct {
	Lexicon Lexicon
}

// Extract yields exactly one feature set per token, in token order.
// Tokens whose morphology has no extractor contribute lexicon features
// only, or the empty set.
func (s *SentenceExtractor) Extract(sent nlp.MorphSentence) [][]string {
	sets := make([][]string, len(sent))
	for i, tok := range sent {
		var feats []string
		if x, exists := Build(tok.Morph); exists {
			feats = x.Extract(tok.Morph)
		}
		if s.Lexicon != nil {
			feats = append(feats, s.Lexicon[tok.Form]...)
		}
		sets[i] = feats
	}
	return sets
}
