package model

type predicateEvaluator interface {
	// Checks whether the (day, slot) coordinate holds no occupant
	Vacant(day, slot int) bool

	// Checks whether the occupant belongs to one of the subjects
	Known(occupant string) bool

	// Checks whether the occupant appears no more often than its subjects requested
	WithinRequest(occupant string) bool
}

type predicateEvaluatorImplementation struct {
	grid      Grid
	requested map[string]uint64
}

func newPredicateEvaluator(grid Grid, subjects []Subject) predicateEvaluator {
	// Subjects sharing name and teacher share the occupant, hence their requests add up
	requested := make(map[string]uint64, len(subjects))
	for _, subject := range subjects {
		requested[subject.Occupant()] += subject.Sessions()
	}

	return &predicateEvaluatorImplementation{
		grid:      grid,
		requested: requested,
	}
}

func (evaluator *predicateEvaluatorImplementation) Vacant(day, slot int) bool {
	return evaluator.grid.At(day, slot) == ""
}

func (evaluator *predicateEvaluatorImplementation) Known(occupant string) bool {
	_, ok := evaluator.requested[occupant]
	return ok
}

func (evaluator *predicateEvaluatorImplementation) WithinRequest(occupant string) bool {
	return uint64(evaluator.grid.Count(occupant)) <= evaluator.requested[occupant]
}
