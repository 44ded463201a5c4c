package squares

import (
	"strconv"

	"squares/internal/core"
)

// Parameters reports the rule, construction settings and current set sizes.
func (g *Grid) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		ruleGroup(g.settings),
		{
			Name: "Scan",
			Params: []core.Parameter{
				intParam("workers", "Frontier scan workers", g.workers),
				intParam("parallel_cutoff", "Parallel frontier cutoff", parallelCutoff),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				intParam("seed_cells", "Seed cells", g.seedSize),
				intParam("generation", "Generation", g.gen),
				intParam("shaded", "Shaded cells", g.shaded.Len()),
				intParam("frontier", "Frontier cells", g.frontier.Len()),
			},
		},
	}}
}

// Parameters reports the rule and current set size.
func (n *Naive) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		ruleGroup(n.settings),
		{
			Name: "State",
			Params: []core.Parameter{
				intParam("generation", "Generation", n.gen),
				intParam("shaded", "Shaded cells", n.shaded.Len()),
			},
		},
	}}
}

func ruleGroup(s settings) core.ParameterGroup {
	return core.ParameterGroup{
		Name:    "Rule",
		Summary: "Moore neighborhood promotion rule",
		Params: []core.Parameter{{
			Key:   "rule",
			Label: "Rule",
			Type:  core.ParamTypeString,
			Value: s.ruleName,
		}},
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
