package nlp

import (
	"GoNLP/internal/module"
	"GoNLP/internal/value"
)

// Version is reported by every definition in this package.
const Version = "1.0.0"

const (
	SentimentModuleName = "AnalyzeSentiment"
	LanguageModuleName  = "DetectLanguage"
	KeywordsModuleName  = "ExtractKeywords"
)

// Input and output descriptors. They are never mutated after init.
var (
	TextInputType = value.ProductType(map[string]value.Type{
		"text": value.StringType(),
	})
	SentimentOutputType = value.ProductType(map[string]value.Type{
		"score": value.FloatType(),
		"label": value.StringType(),
	})
	LanguageOutputType = value.ProductType(map[string]value.Type{
		"language":   value.StringType(),
		"confidence": value.FloatType(),
	})
	KeywordsInputType = value.ProductType(map[string]value.Type{
		"text":        value.StringType(),
		"maxKeywords": value.IntType(),
	})
	KeywordsOutputType = value.ProductType(map[string]value.Type{
		"keywords": value.ListType(value.StringType()),
	})
)

// Definitions returns the module definitions of every analyzer.
func Definitions() []module.Definition {
	return []module.Definition{
		{
			Name:        SentimentModuleName,
			Version:     Version,
			Description: "Analyze text sentiment using keyword-based scoring (-1.0 to 1.0)",
			InputType:   TextInputType,
			OutputType:  SentimentOutputType,
			Handler:     handleSentiment,
		},
		{
			Name:        LanguageModuleName,
			Version:     Version,
			Description: "Detect the language of input text using word-frequency heuristics",
			InputType:   TextInputType,
			OutputType:  LanguageOutputType,
			Handler:     handleLanguage,
		},
		{
			Name:        KeywordsModuleName,
			Version:     Version,
			Description: "Extract top keywords from text using term frequency",
			InputType:   KeywordsInputType,
			OutputType:  KeywordsOutputType,
			Handler:     handleKeywords,
		},
	}
}

// Register adds every analyzer to r.
func Register(r *module.Registry) error {
	for _, def := range Definitions() {
		if err := r.Register(def); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a registry for namespace holding every analyzer.
func NewRegistry(namespace string) (*module.Registry, error) {
	r := module.NewRegistry(namespace)
	if err := Register(r); err != nil {
		return nil, err
	}
	return r, nil
}

func handleSentiment(input value.Value) (value.Value, error) {
	text, err := textField(input)
	if err != nil {
		return nil, err
	}
	s := AnalyzeSentiment(text)
	return value.NewProduct(map[string]value.Value{
		"score": value.NewFloat(s.Score),
		"label": value.NewString(s.Label),
	}), nil
}

func handleLanguage(input value.Value) (value.Value, error) {
	text, err := textField(input)
	if err != nil {
		return nil, err
	}
	d := DetectLanguage(text)
	return value.NewProduct(map[string]value.Value{
		"language":   value.NewString(d.Language),
		"confidence": value.NewFloat(d.Confidence),
	}), nil
}

func handleKeywords(input value.Value) (value.Value, error) {
	p, err := value.AsProduct(input)
	if err != nil {
		return nil, err
	}
	text, err := p.StringField("text")
	if err != nil {
		return nil, err
	}
	maxKeywords, err := p.IntField("maxKeywords")
	if err != nil {
		return nil, err
	}
	return value.NewProduct(map[string]value.Value{
		"keywords": value.Strings(ExtractKeywords(text, maxKeywords)...),
	}), nil
}

func textField(input value.Value) (string, error) {
	p, err := value.AsProduct(input)
	if err != nil {
		return "", err
	}
	return p.StringField("text")
}
