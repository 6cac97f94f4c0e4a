package app

import (
	"encoding/gob"
	"log"
	"os"

	"github.com/Isagog/TokensEncoder/alg/nn"
	"github.com/Isagog/TokensEncoder/util"
)

func init() {
	gob.Register(&Serialization{})
}

var (
	allOut bool = true

	// processing options
	Iterations         int
	EmbeddingDim       int
	OutputDim          int
	LearningRate       float64
	DropoutCoefficient float64
	Seed               int64

	// file names
	input     string
	rawInput  string
	modelFile string
)

// Serialization bundles everything a trained model needs to encode again:
// dictionaries, the embeddings table and the morphological projection.
type Serialization struct {
	Table              *nn.Embeddings
	Frequencies        *util.FrequencyDict
	DropoutCoefficient float64

	Dict *util.EnumSet
	Proj *nn.Linear
}

func WriteModel(file string, data *Serialization) {
	fObj, err := os.Create(file)
	if err != nil {
		log.Fatalln("Failed creating model file", file, err)
		return
	}
	defer fObj.Close()
	writer := gob.NewEncoder(fObj)
	writer.Encode(data)
}

func ReadModel(file string) *Serialization {
	data := &Serialization{}
	fObj, err := os.Open(file)
	if err != nil {
		log.Fatalln("Failed reading model from", file, err)
		return nil
	}
	defer fObj.Close()
	reader := gob.NewDecoder(fObj)
	if err := reader.Decode(data); err != nil {
		log.Fatalln("Failed decoding model from", file, err)
	}
	data.Dict.RebuildIndex()
	return data
}
