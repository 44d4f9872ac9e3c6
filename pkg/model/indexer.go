package model

// indexer gives a unique index to a (day, slot) coordinate of the grid and vice versa
type indexer interface {
	// Returns a unique index to a (day, slot) coordinate
	Index(day, slot int) int
	// Returns the (day, slot) coordinate of a unique index
	Attributes(index int) (day int, slot int)
	// Returns the number of indexable coordinates
	Size() int
}

func newIndexer(days, slots int) indexer {
	return &indexerImplementation{
		days:  days,
		slots: slots,
	}
}
