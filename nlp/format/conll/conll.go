package conll

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/danieldk/conllx"

	"github.com/Isagog/TokensEncoder/nlp/features"
	nlp "github.com/Isagog/TokensEncoder/nlp/types"
	"github.com/Isagog/TokensEncoder/util"
)

// Read loads a CoNLL-X corpus as morphologically annotated sentences.
// Tokens whose part of speech maps to no morphology variant stay
// unannotated; the encoders treat those as featureless.
func Read(reader io.Reader) ([]nlp.MorphSentence, error) {
	r := conllx.NewReader(bufio.NewReader(reader))
	var sents []nlp.MorphSentence
	for {
		sent, err := r.ReadSentence()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("conll read: %v", err)
		}
		converted := make(nlp.MorphSentence, len(sent))
		for i, tok := range sent {
			form, _ := tok.Form()
			converted[i] = nlp.Token{Form: form, Morph: morphOf(tok)}
		}
		sents = append(sents, converted)
	}
	return sents, nil
}

func ReadFile(filename string) ([]nlp.MorphSentence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Read(file)
}

// morphOf maps one CoNLL-X token onto the morphology variant its part of
// speech selects, pulling the variant's attributes from the FEATS column.
func morphOf(tok conllx.Token) nlp.Morphology {
	pos, ok := tok.PosTag()
	if !ok || pos == "" {
		if pos, ok = tok.CoarsePosTag(); !ok {
			return nil
		}
	}
	lemma, _ := tok.Lemma()
	raw := make(map[string]string)
	if feats, ok := tok.Features(); ok {
		for k, v := range feats.FeaturesMap() {
			raw[k] = v
		}
	}
	attrs := map[string]string{
		"Number": util.NumberMap.Normalize(raw["Number"]),
		"Gender": util.GenderMap.Normalize(raw["Gender"]),
		"Case":   util.CaseMap.Normalize(raw["Case"]),
		"Tense":  util.TenseMap.Normalize(raw["Tense"]),
		"Mood":   util.MoodMap.Normalize(raw["Mood"]),
		"Degree": util.DegreeMap.Normalize(raw["Degree"]),
	}
	person, _ := strconv.Atoi(raw["Person"])
	switch strings.ToUpper(pos) {
	case "VERB", "AUX":
		return &nlp.VerbMorph{
			Pos: pos, Lem: lemma,
			Person: person, Number: attrs["Number"],
			Tense: attrs["Tense"], Mood: attrs["Mood"],
		}
	case "NOUN", "PROPN":
		return &nlp.NounMorph{
			Pos: pos, Lem: lemma,
			Number: attrs["Number"], Gender: attrs["Gender"], Case: attrs["Case"],
		}
	case "ADJ":
		return &nlp.AdjectiveMorph{
			Pos: pos, Lem: lemma,
			Number: attrs["Number"], Gender: attrs["Gender"], Case: attrs["Case"],
			Degree: attrs["Degree"],
		}
	case "PRON":
		return &nlp.PronounMorph{
			Pos: pos, Lem: lemma,
			Person: person, Number: attrs["Number"], Gender: attrs["Gender"], Case: attrs["Case"],
		}
	case "DET", "ART":
		return &nlp.ArticleMorph{
			Pos: pos, Lem: lemma,
			Number: attrs["Number"], Gender: attrs["Gender"], Case: attrs["Case"],
		}
	case "ADV":
		return &nlp.AdverbMorph{Pos: pos, Lem: lemma, Degree: attrs["Degree"]}
	case "ADP", "PREP":
		return &nlp.PrepositionMorph{Pos: pos, Lem: lemma}
	case "CCONJ", "CONJ":
		return &nlp.ConjunctionMorph{Pos: pos, Lem: lemma, Type: "coord"}
	case "SCONJ":
		return &nlp.ConjunctionMorph{Pos: pos, Lem: lemma, Type: "sub"}
	case "PUNCT", "PUNC":
		return &nlp.PunctuationMorph{Pos: pos, Lem: lemma}
	}
	return nil
}

// BuildFrequencies counts surface forms across the corpus, the source of
// the embeddings encoder's per-key dropout.
func BuildFrequencies(sents []nlp.MorphSentence) *util.FrequencyDict {
	counts := make(map[string]int)
	for _, sent := range sents {
		for _, tok := range sent {
			counts[tok.Form]++
		}
	}
	return util.NewFrequencyDict(counts)
}

// BuildFeatureDict collects every feature string the extractor derives
// from the corpus. The caller freezes the set once the model is built.
func BuildFeatureDict(sents []nlp.MorphSentence, extractor *features.SentenceExtractor) *util.EnumSet {
	dict := util.NewEnumSet(1024)
	for _, sent := range sents {
		for _, set := range extractor.Extract(sent) {
			for _, feat := range set {
				dict.Add(feat)
			}
		}
	}
	return dict
}
