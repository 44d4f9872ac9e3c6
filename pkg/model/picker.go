package model

import (
	"math/rand/v2"
	"sync"
)

// Picker is the source of randomness of the placement engine. Day is always asked before Slot on each attempt.
type Picker interface {
	// Returns a day index in [0, days)
	Day(days int) int
	// Returns a slot index in [0, slots)
	Slot(slots int) int
}

type randomPicker struct {
	mutex  sync.Mutex
	random *rand.Rand
}

// NewRandomPicker draws uniformly distributed indices. A zero seed means an unseeded, non-reproducible source.
func NewRandomPicker(seed uint64) Picker {
	source := rand.NewPCG(seed, seed)
	if seed == 0 {
		source = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &randomPicker{random: rand.New(source)}
}

func (picker *randomPicker) Day(days int) int {
	picker.mutex.Lock()
	defer picker.mutex.Unlock()
	return picker.random.IntN(days)
}

func (picker *randomPicker) Slot(slots int) int {
	picker.mutex.Lock()
	defer picker.mutex.Unlock()
	return picker.random.IntN(slots)
}

type sequencePicker struct {
	mutex    sync.Mutex
	sequence [][2]int
	position int
}

// NewSequencePicker replays the given (day, slot) pairs cyclically, wrapping indices into range
func NewSequencePicker(sequence ...[2]int) Picker {
	if len(sequence) == 0 {
		sequence = [][2]int{{0, 0}}
	}
	return &sequencePicker{sequence: sequence}
}

func (picker *sequencePicker) Day(days int) int {
	picker.mutex.Lock()
	defer picker.mutex.Unlock()
	return wrap(picker.sequence[picker.position][0], days)
}

func (picker *sequencePicker) Slot(slots int) int {
	picker.mutex.Lock()
	defer picker.mutex.Unlock()
	slot := wrap(picker.sequence[picker.position][1], slots)
	picker.position = (picker.position + 1) % len(picker.sequence)
	return slot
}

func wrap(value, size int) int {
	return ((value % size) + size) % size
}
