// Package skillmatch decides whether reference skills appear in free text and
// turns the result into readiness scores.
package skillmatch

import (
	"math"
	"math/rand"
	"sort"
	"strings"
	"sync"
)

// Matches reports whether skill appears in text. A contiguous substring always
// matches; a multi-word skill also matches when every word occurs somewhere in
// text. Single-word skills have no fallback.
func Matches(skill, text string) bool {
	skill = strings.ToLower(skill)
	text = strings.ToLower(text)

	if strings.Contains(text, skill) {
		return true
	}
	words := strings.Fields(skill)
	if len(words) < 2 {
		return false
	}
	for _, w := range words {
		if !strings.Contains(text, w) {
			return false
		}
	}
	return true
}

// CleanText lowercases text and replaces every character outside [a-z0-9 ] with a space.
func CleanText(text string) string {
	lowered := strings.ToLower(text)
	var sb strings.Builder
	sb.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' {
			sb.WriteRune(r)
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// Filter returns the skills that match text, preserving order.
func Filter(skills []string, text string) []string {
	out := []string{}
	for _, s := range skills {
		if Matches(s, text) {
			out = append(out, s)
		}
	}
	return out
}

// ReadinessScore is matched/required*100 rounded to 2 decimals, 0 when nothing is required.
func ReadinessScore(matched, required int) float64 {
	if required <= 0 {
		return 0
	}
	return Round2(float64(matched) / float64(required) * 100)
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

const (
	peerSeed   = 42
	peerCount  = 1000
	peerMean   = 55.0
	peerStdDev = 15.0
)

var (
	peerOnce   sync.Once
	peerScores []float64
)

// 고정 시드 정규분포 표본, 오름차순 정렬
func peers() []float64 {
	peerOnce.Do(func() {
		rng := rand.New(rand.NewSource(peerSeed))
		peerScores = make([]float64, peerCount)
		for i := range peerScores {
			v := rng.NormFloat64()*peerStdDev + peerMean
			peerScores[i] = math.Min(100, math.Max(0, v))
		}
		sort.Float64s(peerScores)
	})
	return peerScores
}

// PeerPercentile is the share of a synthetic, seeded peer population scoring
// strictly below score, as a percentage rounded to 2 decimals.
func PeerPercentile(score float64) float64 {
	p := peers()
	below := sort.SearchFloat64s(p, score)
	return Round2(float64(below) / float64(len(p)) * 100)
}
