package dialect

import "github.com/jbessels/rewrite-static-analysis/internal/source"

// Classification is the result of scoring evidence for a file.
type Classification struct {
	Kind            Kind
	Score           int
	TotalScore      int
	Confidence      float64
	ObservedSignals int
}

// Classifier scores evidence and chooses a dominant dialect.
// It is intentionally simple; callers apply their own thresholds/policies.
type Classifier struct{}

func (Classifier) Classify(e *Evidence) Classification {
	if e == nil || len(e.hints) == 0 {
		return Classification{Kind: Primary}
	}

	var scores [kindCount]int
	total := 0
	observed := 0
	for _, h := range e.hints {
		observed++
		if h.Score <= 0 {
			continue
		}
		if h.Dialect <= Primary || h.Dialect >= kindCount {
			continue
		}
		scores[h.Dialect] += h.Score
		total += h.Score
	}

	bestKind := Primary
	bestScore := 0
	for k := Python; k < kindCount; k++ {
		if scores[k] > bestScore {
			bestKind, bestScore = k, scores[k]
		}
	}

	conf := 0.0
	if total > 0 {
		conf = float64(bestScore) / float64(total)
	}

	return Classification{
		Kind:            bestKind,
		Score:           bestScore,
		TotalScore:      total,
		Confidence:      conf,
		ObservedSignals: observed,
	}
}

// Policy thresholds for treating a file as foreign. A handful of weak hits
// (an identifier named `self`, say) must not flip a primary-dialect file.
const (
	minForeignScore      = 6
	minForeignConfidence = 0.5
)

// Detect classifies raw content and applies the default policy: the
// returned kind is foreign only when evidence is both strong and dominant.
func Detect(fileID source.FileID, content []byte) Kind {
	ev := CollectEvidence(fileID, content)
	cls := Classifier{}.Classify(ev)
	if cls.Kind.Foreign() && cls.Score >= minForeignScore && cls.Confidence >= minForeignConfidence {
		return cls.Kind
	}
	return Primary
}
