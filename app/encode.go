package app

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"gonum.org/v1/gonum/mat"

	"github.com/Isagog/TokensEncoder/alg/encoder"
	"github.com/Isagog/TokensEncoder/nlp/features"
	"github.com/Isagog/TokensEncoder/nlp/format/conll"
	nlp "github.com/Isagog/TokensEncoder/nlp/types"
)

// annotateRaw attaches empty annotations so an encoder built for
// morphological sentences can run over raw tokenized text.
func annotateRaw(sent nlp.BasicSentence) nlp.MorphSentence {
	out := make(nlp.MorphSentence, len(sent))
	for i, form := range sent {
		out[i] = nlp.Token{Form: form}
	}
	return out
}

func readRaw(filename string) ([]nlp.BasicSentence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	var sents []nlp.BasicSentence
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) > 0 {
			sents = append(sents, nlp.BasicSentence(fields))
		}
	}
	return sents, scanner.Err()
}

func printEncodings(name string, sent nlp.Sentence, out []*mat.VecDense) {
	toks := sent.Tokens()
	for i, vec := range out {
		fmt.Printf("%s\t%d\t%s\t%d\t%.4f\n", name, i, toks[i], vec.Len(), mat.Norm(vec, 2))
	}
	fmt.Println()
}

func Encode(cmd *commander.Command, args []string) error {
	if input == "" && rawInput == "" {
		return fmt.Errorf("missing input corpus (-i or -raw)")
	}
	model := ReadModel(modelFile)
	extractor := &features.SentenceExtractor{}
	embModel := &encoder.EmbeddingsModel[nlp.MorphSentence]{
		Table: model.Table,
		Keys:  defaultKeys(),
		// inference runs without dropout
		DropoutCoefficient: 0,
	}
	morphModel := &encoder.MorphModel{
		Dict:      model.Dict,
		Extractor: extractor,
		Proj:      model.Proj,
	}

	if input != "" {
		sents, err := conll.ReadFile(input)
		if err != nil {
			return err
		}
		for _, sent := range sents {
			emb := embModel.NewEncoder()
			out, err := emb.Forward(sent)
			if err != nil {
				return err
			}
			printEncodings("emb", sent, out)
			morph := morphModel.NewEncoder()
			out, err = morph.Forward(sent)
			if err != nil {
				return err
			}
			printEncodings("morph", sent, out)
		}
		if allOut {
			log.Println("Encoded", len(sents), "sentences from", input)
		}
	}

	if rawInput != "" {
		sents, err := readRaw(rawInput)
		if err != nil {
			return err
		}
		// raw text drives the morphological-sentence encoder through
		// the converting wrapper
		wrapped := encoder.NewConverting[nlp.BasicSentence](
			encoder.Encoder[nlp.MorphSentence](embModel.NewEncoder()), annotateRaw)
		for _, sent := range sents {
			out, err := wrapped.Forward(sent)
			if err != nil {
				return err
			}
			printEncodings("emb", sent, out)
		}
		if allOut {
			log.Println("Encoded", len(sents), "raw sentences from", rawInput)
		}
	}
	return nil
}

func EncodeCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Encode,
		UsageLine: "encode <file options> [arguments]",
		Short:     "encodes sentences with a trained model",
		Long: `
encodes sentences with a trained model

	$ ./tokensencoder encode -m <model file> -i <conll corpus> [-raw <tokenized text>]

`,
		Flag: *flag.NewFlagSet("encode", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&input, "i", "", "Input CoNLL-X File")
	cmd.Flag.StringVar(&rawInput, "raw", "", "Input Tokenized Text File (one sentence per line)")
	cmd.Flag.StringVar(&modelFile, "m", "model", "Model File")
	return cmd
}
