package scorer

import "github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/core"

// DefaultSet returns the six standard quality dimensions.
func DefaultSet() []core.Dimension {
	return []core.Dimension{
		Completeness{},
		ProfessionalTone{},
		Safety{},
		Helpfulness{},
		Format{},
		CharacteristicsMatch{},
	}
}

// Replace swaps the dimension with the same name in a set, letting an
// alternative backend (e.g. a judge model) stand in for one heuristic
// without touching aggregation.
func Replace(set []core.Dimension, dimension core.Dimension) []core.Dimension {
	out := make([]core.Dimension, len(set))
	copy(out, set)
	for i, existing := range out {
		if existing.Name() == dimension.Name() {
			out[i] = dimension
			return out
		}
	}
	return append(out, dimension)
}
