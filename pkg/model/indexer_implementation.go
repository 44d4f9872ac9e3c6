package model

type indexerImplementation struct {
	days  int
	slots int
}

func (indexer *indexerImplementation) Index(day, slot int) int {
	return slot + indexer.slots*day
}

func (indexer *indexerImplementation) Attributes(index int) (day, slot int) {
	slot = index % indexer.slots
	day = index / indexer.slots
	return day, slot
}

func (indexer *indexerImplementation) Size() int {
	return indexer.days * indexer.slots
}
