package model

type permutationGenerator interface {
	// Returns every (day, slot) coordinate, in day-major and slot-minor order, satisfying all the constraints.
	//
	// Example:
	//
	//	generator := newPermutationGenerator(len(Days), len(Slots))
	//
	//	mondays := generator.ConstrainedPermutations([]func(day, slot int) bool{
	//		func(day, _ int) bool { return day == 0 },
	//	})
	ConstrainedPermutations(constraints []func(day, slot int) bool) [][2]int
}

func newPermutationGenerator(days, slots int) permutationGenerator {
	return &permutationGeneratorImplementation{days, slots}
}

type permutationGeneratorImplementation struct {
	days, slots int
}

func (generator permutationGeneratorImplementation) ConstrainedPermutations(constraints []func(day, slot int) bool) [][2]int {
	permutations := make([][2]int, 0, generator.days*generator.slots)
	for day := range generator.days {
		for slot := range generator.slots {
			constraintViolated := false
			for _, constraint := range constraints {
				if !constraint(day, slot) {
					constraintViolated = true
					break
				}
			}

			if constraintViolated {
				continue
			}
			permutations = append(permutations, [2]int{day, slot})
		}
	}
	return permutations
}
