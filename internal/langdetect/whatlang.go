package langdetect

import (
	"strings"

	"github.com/RadhiFadlillah/whatlanggo"
)

const (
	// Below this many words trigram statistics are too sparse; "Hello world"
	// scores as Dutch.
	minTrigramWords = 12
	// reliableConfidence matches whatlang's own reliability cut-off.
	reliableConfidence = 0.8
)

// detectTrigram answers only when whatlanggo is reliable for the sample
func (d *Detector) detectTrigram(sample string) (string, bool) {
	if len(strings.Fields(sample)) < minTrigramWords {
		return "", false
	}

	info := whatlanggo.Detect(sample)
	if info.Lang < 0 || info.Confidence < reliableConfidence || info.Confidence < d.minConfidence {
		return "", false
	}

	code := info.Lang.Iso6391()
	return code, code != ""
}
