package langdetect

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// shortTextLanguages bounds the lingua model set, and with it memory use
var shortTextLanguages = []lingua.Language{
	lingua.Arabic,
	lingua.Chinese,
	lingua.Czech,
	lingua.Danish,
	lingua.Dutch,
	lingua.English,
	lingua.Finnish,
	lingua.French,
	lingua.German,
	lingua.Greek,
	lingua.Hindi,
	lingua.Hungarian,
	lingua.Indonesian,
	lingua.Italian,
	lingua.Japanese,
	lingua.Korean,
	lingua.Polish,
	lingua.Portuguese,
	lingua.Romanian,
	lingua.Russian,
	lingua.Spanish,
	lingua.Swedish,
	lingua.Turkish,
	lingua.Ukrainian,
	lingua.Vietnamese,
}

func newShortTextModel() lingua.LanguageDetector {
	return lingua.NewLanguageDetectorBuilder().
		FromLanguages(shortTextLanguages...).
		Build()
}

func (d *Detector) detectShort(sample string) string {
	lang, ok := d.short.DetectLanguageOf(sample)
	if !ok {
		return ""
	}
	if d.minConfidence > 0 && d.short.ComputeLanguageConfidence(sample, lang) < d.minConfidence {
		return ""
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}
