// Package incentives matches rebate programs to a location and prices them
// for a specific system.
package incentives

import (
	"math"
	"strings"

	"solar_roi_backend/internal/catalog"
)

// Resolver matches and prices incentive programs.
type Resolver struct {
	catalog *catalog.Catalog
}

func NewResolver(cat *catalog.Catalog) *Resolver {
	return &Resolver{catalog: cat}
}

// Resolve builds the incentive picture for a system at a location. When the
// caller supplies a rebate override it wins outright and every matched
// program stays in the potential list.
func (r *Resolver) Resolve(state, city string, system System) Result {
	programs := r.match(state, city)

	estimated := make([]EstimatedProgram, 0, len(programs))
	informational := make([]EstimatedProgram, 0)
	for _, program := range programs {
		priced := priceProgram(program, system)
		if priced.Informational {
			informational = append(informational, priced)
			continue
		}
		estimated = append(estimated, priced)
	}

	result := Result{
		Potential:     estimated,
		Informational: informational,
		VendorOffers:  r.vendorOffers(state, system.GrossCost),
	}

	if credit, ok := r.catalog.CreditFor(state); ok {
		result.StateCredit = &credit
	}

	if system.HasRebateOverride {
		result.AppliedRebate = math.Max(0, system.RebateOverride)
		result.OverrideUsed = true
		return result
	}

	// Auto-apply the single most valuable upfront rebate. Bill credits pay
	// out over time and never reduce the upfront cost.
	bestIndex := -1
	for i, program := range estimated {
		if program.ValueType != catalog.ValuePerWatt && program.ValueType != catalog.ValueFlat {
			continue
		}
		if bestIndex == -1 || program.EstimatedValue > estimated[bestIndex].EstimatedValue {
			bestIndex = i
		}
	}

	if bestIndex >= 0 {
		applied := estimated[bestIndex]
		result.AppliedRebate = applied.EstimatedValue
		result.AppliedProgram = &applied
		result.Potential = append(estimated[:bestIndex:bestIndex], estimated[bestIndex+1:]...)
	}

	return result
}

// match picks the program tier for a location: city-scoped matches first,
// then the state-wide programs, then the national defaults.
func (r *Resolver) match(state, city string) []catalog.Program {
	programs := r.catalog.ProgramsFor(state)

	cityMatches := make([]catalog.Program, 0, len(programs))
	stateWide := make([]catalog.Program, 0, len(programs))
	for _, program := range programs {
		if len(program.Cities) == 0 {
			stateWide = append(stateWide, program)
			continue
		}
		if cityListed(program.Cities, city) {
			cityMatches = append(cityMatches, program)
		}
	}

	if len(cityMatches) > 0 {
		return cityMatches
	}
	if len(stateWide) > 0 {
		return stateWide
	}
	return r.catalog.ProgramsFor("")
}

func cityListed(cities []string, city string) bool {
	normalized := normalizeCity(city)
	if normalized == "" {
		return false
	}
	for _, candidate := range cities {
		if normalizeCity(candidate) == normalized {
			return true
		}
	}
	return false
}

func normalizeCity(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// priceProgram works out the dollar value of a program for this system.
func priceProgram(program catalog.Program, system System) EstimatedProgram {
	priced := EstimatedProgram{
		Name:        program.Name,
		Provider:    program.Provider,
		Type:        program.Type,
		Description: program.Description,
		ValueType:   program.ValueType,
		Value:       program.Value,
		MaxValue:    program.MaxValue,
		AppliesTo:   program.AppliesTo,
	}

	var estimate float64
	switch program.ValueType {
	case catalog.ValuePerWatt:
		estimate = system.SizeWatts * program.Value
	case catalog.ValueFlat:
		estimate = program.Value
	case catalog.ValueBillCredit:
		estimate = system.AnnualKWh * program.Value
	default:
		// Storage and other non-solar value types are surfaced without a
		// dollar figure.
		priced.Informational = true
		return priced
	}

	if program.MaxValue > 0 {
		estimate = math.Min(estimate, program.MaxValue)
	}
	priced.EstimatedValue = math.Round(estimate)

	return priced
}

func (r *Resolver) vendorOffers(state string, grossCost float64) []VendorOffer {
	programs := r.catalog.VendorFor(state)

	offers := make([]VendorOffer, 0, len(programs))
	for _, program := range programs {
		value := program.EstimatedValue
		if value == 0 && program.EstimatedValuePercent > 0 {
			value = math.Round(grossCost * program.EstimatedValuePercent / 100)
		}
		offers = append(offers, VendorOffer{
			Name:           program.Name,
			Provider:       program.Provider,
			Description:    program.Description,
			EstimatedValue: value,
		})
	}
	return offers
}
