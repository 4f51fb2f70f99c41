package cmd

import (
	"fmt"

	"github.com/notargets/shocktube/InputParameters"
	"github.com/notargets/shocktube/types"
	"github.com/notargets/shocktube/validation"
)

func errorWindow(ip *InputParameters.ShockTubeParameters) validation.Window {
	return validation.Window{Lo: ip.Window[0], Hi: ip.Window[1]}
}

// buildCase turns the case file parameters into the immutable test matrix handed to the scorer
// and the aggregator
func buildCase(ip *InputParameters.ShockTubeParameters) (c validation.Case, err error) {
	var (
		qs []types.Quantity
	)
	if ip.Window[0] >= ip.Window[1] {
		return c, fmt.Errorf("error window [%v, %v] is empty", ip.Window[0], ip.Window[1])
	}
	if qs, err = types.LookupQuantities(ip.Quantities); err != nil {
		return
	}
	thresholds := make(map[string]float64, len(ip.Thresholds))
	for k, v := range ip.Thresholds {
		thresholds[k] = v
	}
	c = validation.Case{
		Runs:       ip.RunConfigs(),
		Quantities: qs,
		Thresholds: thresholds,
		Snapshot:   ip.Snapshot,
	}
	err = c.Validate()
	return
}
