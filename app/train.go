package app

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/gosuri/uiprogress"
	"gonum.org/v1/gonum/mat"

	"github.com/Isagog/TokensEncoder/alg/encoder"
	"github.com/Isagog/TokensEncoder/alg/nn"
	"github.com/Isagog/TokensEncoder/nlp/features"
	"github.com/Isagog/TokensEncoder/nlp/format/conll"
	nlp "github.com/Isagog/TokensEncoder/nlp/types"
)

func defaultKeys() []encoder.KeyExtractor[nlp.MorphSentence] {
	return []encoder.KeyExtractor[nlp.MorphSentence]{
		encoder.FormKey[nlp.MorphSentence]{},
		encoder.NormKey[nlp.MorphSentence]{},
		encoder.LemmaKey{},
	}
}

// shrinkErrors is the gradient of the trivial 0.5*||y||^2 objective the
// train driver uses; real loss computation belongs to the caller's
// training loop, not to this layer.
func shrinkErrors(out []*mat.VecDense) []*mat.VecDense {
	errs := make([]*mat.VecDense, len(out))
	for i, y := range out {
		e := mat.NewVecDense(y.Len(), nil)
		e.CopyVec(y)
		errs[i] = e
	}
	return errs
}

func Train(cmd *commander.Command, args []string) error {
	if input == "" {
		return fmt.Errorf("missing training corpus (-i)")
	}
	if allOut {
		log.Println("Reading training corpus", input)
	}
	sents, err := conll.ReadFile(input)
	if err != nil {
		return err
	}
	if allOut {
		log.Println("Read", len(sents), "sentences")
	}

	freqs := conll.BuildFrequencies(sents)
	extractor := &features.SentenceExtractor{}
	dict := conll.BuildFeatureDict(sents, extractor)
	dict.Freeze()
	if allOut {
		log.Println("Built frequency dictionary of", freqs.Len(), "forms")
		log.Println("Built feature dictionary of", dict.Len(), "features")
	}

	table := nn.NewEmbeddings(EmbeddingDim, Seed)
	for form := range freqs.Counts {
		table.Add(form)
	}

	rng := rand.New(rand.NewSource(Seed))
	embModel := &encoder.EmbeddingsModel[nlp.MorphSentence]{
		Table:              table,
		Keys:               defaultKeys(),
		Frequencies:        freqs,
		DropoutCoefficient: DropoutCoefficient,
	}
	morphModel := &encoder.MorphModel{
		Dict:      dict,
		Extractor: extractor,
		Proj:      nn.NewLinear("morph", dict.Len(), OutputDim, rng),
	}
	embOpt := embModel.NewOptimizer(nn.NewAdaGrad(LearningRate))
	morphOpt := morphModel.NewOptimizer(nn.NewAdaGrad(LearningRate))

	uiprogress.Start()
	bar := uiprogress.AddBar(Iterations * len(sents))
	bar.AppendCompleted()
	bar.PrependElapsed()
	for it := 0; it < Iterations; it++ {
		for _, sent := range sents {
			bar.Incr()

			emb := embModel.NewEncoder()
			out, err := emb.Forward(sent)
			if err != nil {
				uiprogress.Stop()
				return err
			}
			if err := emb.Backward(shrinkErrors(out)); err != nil {
				uiprogress.Stop()
				return err
			}
			pe, err := emb.ParamsErrors(false)
			if err != nil {
				uiprogress.Stop()
				return err
			}
			if err := embOpt.Accumulate(pe, false); err != nil {
				uiprogress.Stop()
				return err
			}
			if err := embOpt.Update(); err != nil {
				uiprogress.Stop()
				return err
			}

			morph := morphModel.NewEncoder()
			out, err = morph.Forward(sent)
			if err != nil {
				uiprogress.Stop()
				return err
			}
			if err := morph.Backward(shrinkErrors(out)); err != nil {
				uiprogress.Stop()
				return err
			}
			pe, err = morph.ParamsErrors(false)
			if err != nil {
				uiprogress.Stop()
				return err
			}
			if err := morphOpt.Accumulate(pe, false); err != nil {
				uiprogress.Stop()
				return err
			}
			if err := morphOpt.Update(); err != nil {
				uiprogress.Stop()
				return err
			}
		}
	}
	uiprogress.Stop()

	if allOut {
		log.Println("Writing model to", modelFile)
	}
	WriteModel(modelFile, &Serialization{
		Table:              table,
		Frequencies:        freqs,
		DropoutCoefficient: DropoutCoefficient,
		Dict:               dict,
		Proj:               morphModel.Proj,
	})
	return nil
}

func TrainCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Train,
		UsageLine: "train <file options> [arguments]",
		Short:     "trains the token encoders on a CoNLL-X corpus",
		Long: `
trains the token encoders on a CoNLL-X corpus

	$ ./tokensencoder train -i <conll corpus> -m <model file> [options]

`,
		Flag: *flag.NewFlagSet("train", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&input, "i", "", "Training CoNLL-X File")
	cmd.Flag.StringVar(&modelFile, "m", "model", "Output Model File")
	cmd.Flag.IntVar(&Iterations, "it", 1, "Number of Training Iterations")
	cmd.Flag.IntVar(&EmbeddingDim, "dim", 50, "Embedding Dimension")
	cmd.Flag.IntVar(&OutputDim, "odim", 50, "Morphological Encoding Dimension")
	cmd.Flag.Float64Var(&LearningRate, "lr", 0.1, "AdaGrad Learning Rate")
	cmd.Flag.Float64Var(&DropoutCoefficient, "dropout", 0.25, "Frequency Dropout Coefficient")
	cmd.Flag.Int64Var(&Seed, "seed", 1, "Random Seed")
	return cmd
}
