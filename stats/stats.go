// Package stats accumulates match statistics: shots fired, hits scored,
// and a rolling accuracy figure. This supplements spec.md's distilled
// scope with the shot/hit bookkeeping the original implementation kept
// alongside its targeting loop (original_source's match-stats struct),
// computed with gonum's stat package the way banshee-data-velocity.report
// depends on gonum for its own rolling metrics.
package stats

import (
	"sync"

	"gonum.org/v1/gonum/stat"
)

const rollingWindow = 50

// Recorder tracks shots, hits, and a rolling hit-probability average.
// Safe for concurrent use.
type Recorder struct {
	mu             sync.Mutex
	shotsFired     int
	hits           int
	recentHitProbs []float64
}

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{}
}

// RecordShot logs a fired shot and whether it hit, plus the hit
// probability the decision gate reported for that shot.
func (r *Recorder) RecordShot(hit bool, hitProbability float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.shotsFired++
	if hit {
		r.hits++
	}

	r.recentHitProbs = append(r.recentHitProbs, hitProbability)
	if len(r.recentHitProbs) > rollingWindow {
		r.recentHitProbs = r.recentHitProbs[1:]
	}
}

// Accuracy returns hits/shotsFired, or 0 if no shots have been fired.
func (r *Recorder) Accuracy() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.shotsFired == 0 {
		return 0
	}
	return float64(r.hits) / float64(r.shotsFired)
}

// RollingMeanHitProbability returns the mean predicted hit probability
// over the most recent shots (up to rollingWindow), via gonum's stat.Mean.
func (r *Recorder) RollingMeanHitProbability() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.recentHitProbs) == 0 {
		return 0
	}
	return stat.Mean(r.recentHitProbs, nil)
}

// Totals returns shotsFired and hits.
func (r *Recorder) Totals() (shotsFired, hits int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shotsFired, r.hits
}
