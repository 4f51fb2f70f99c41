package types

import (
	"fmt"
	"sort"
)

// Staggering tells where on the control volume a field is sampled.
type Staggering uint8

const (
	CellCentered Staggering = iota
	FaceCentered
)

func (s Staggering) String() string {
	switch s {
	case CellCentered:
		return "CellCentered"
	case FaceCentered:
		return "FaceCentered"
	}
	return fmt.Sprintf("Staggering(%d)", uint8(s))
}

type AnalyticRule uint8

const (
	TableColumn    AnalyticRule = iota // Value read directly from a column of the analytic table
	InternalEnergy                     // Sigma * Temperature / (gamma - 1)
)

// Analytic table column layout: index, radius, then one column per stored quantity
const (
	ColIndex = iota
	ColRadius
	ColVrad
	ColSigma
	ColTemperature
)

type Quantity struct {
	Name       string
	Staggering Staggering
	Rule       AnalyticRule
	Column     int // Only meaningful for TableColumn
}

// Quantity names as written by the solver into the snapshot directories
const (
	Vrad        = "vrad"
	Sigma       = "Sigma"
	Temperature = "Temperature"
	Energy      = "energy"
)

var QuantityMap = map[string]Quantity{
	Vrad:        {Name: Vrad, Staggering: FaceCentered, Rule: TableColumn, Column: ColVrad},
	Sigma:       {Name: Sigma, Staggering: CellCentered, Rule: TableColumn, Column: ColSigma},
	Temperature: {Name: Temperature, Staggering: CellCentered, Rule: TableColumn, Column: ColTemperature},
	Energy:      {Name: Energy, Staggering: CellCentered, Rule: InternalEnergy},
}

// ReferenceQuantity is read from every snapshot to infer the azimuthal cell count
var ReferenceQuantity = QuantityMap[Sigma]

func LookupQuantity(name string) (q Quantity, err error) {
	var ok bool
	if q, ok = QuantityMap[name]; !ok {
		err = fmt.Errorf("%w: %q", ErrUnknownQuantity, name)
	}
	return
}

func LookupQuantities(names []string) (qs []Quantity, err error) {
	qs = make([]Quantity, len(names))
	for i, name := range names {
		if qs[i], err = LookupQuantity(name); err != nil {
			return nil, err
		}
	}
	return
}

func QuantityNames() (names []string) {
	for name := range QuantityMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
