package generator

import (
	"math/rand/v2"
	"sync"
)

// Random - источник случайности генератора. *rand.Rand из math/rand/v2 ему удовлетворяет.
type Random interface {
	Float64() float64
	IntN(n int) int
}

// globalRandom использует общий генератор math/rand/v2, он безопасен для конкурентного доступа
type globalRandom struct{}

func (globalRandom) Float64() float64 { return rand.Float64() }
func (globalRandom) IntN(n int) int   { return rand.IntN(n) }

// lockedRandom сериализует доступ к внедренному источнику
type lockedRandom struct {
	mu  sync.Mutex
	rnd Random
}

func newLockedRandom(rnd Random) *lockedRandom {
	return &lockedRandom{rnd: rnd}
}

func (r *lockedRandom) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Float64()
}

func (r *lockedRandom) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.IntN(n)
}
