// Package detector identifies the language of converted pages for the run
// history. Detection is observational only and never gates the pipeline.
package detector

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// The ShipAny docs are English with Chinese sprinkled in; the remaining
// candidates keep the detector honest on translated mirrors.
var candidates = []lingua.Language{
	lingua.English,
	lingua.Chinese,
	lingua.Japanese,
	lingua.Korean,
	lingua.German,
	lingua.French,
	lingua.Spanish,
}

type Detector struct {
	inner lingua.LanguageDetector
}

func New() *Detector {
	return &Detector{
		inner: lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidates...).
			Build(),
	}
}

// Detect returns the lowercase ISO 639-1 code for the dominant language of
// text, or "" when no candidate is confident enough.
func (d *Detector) Detect(text string) string {
	lang, ok := d.inner.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}
