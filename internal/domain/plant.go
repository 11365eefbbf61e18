package domain

import (
	"fmt"
	"strings"
	"time"
)

// PlantType identifies one of the closed set of crops
type PlantType string

const (
	PlantTypeFlower    PlantType = "flower"
	PlantTypeVegetable PlantType = "vegetable"
	PlantTypeFruit     PlantType = "fruit"
	PlantTypeHerb      PlantType = "herb"
)

// AllPlantTypes lists every plant type. Tables keyed by PlantType must cover all of them.
var AllPlantTypes = []PlantType{
	PlantTypeFlower,
	PlantTypeVegetable,
	PlantTypeFruit,
	PlantTypeHerb,
}

// Valid reports whether t is a member of the closed plant type set
func (t PlantType) Valid() bool {
	switch t {
	case PlantTypeFlower, PlantTypeVegetable, PlantTypeFruit, PlantTypeHerb:
		return true
	}
	return false
}

// ParsePlantType converts user input into a PlantType
func ParsePlantType(s string) (PlantType, error) {
	t := PlantType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPlantType, s)
	}
	return t, nil
}

// MaxGrowth is the growth value at which a plant becomes harvestable
const MaxGrowth = 100.0

// Plant is a single crop in the garden
type Plant struct {
	ID        string    `json:"id"`
	Type      PlantType `json:"type"`
	PlantedAt time.Time `json:"planted_at"`
	Growth    float64   `json:"growth"`
	IsReady   bool      `json:"is_ready"`
	Boosts    []Boost   `json:"boosts"`
}

// Clone returns a deep copy of the plant
func (p *Plant) Clone() *Plant {
	c := *p
	c.Boosts = append([]Boost(nil), p.Boosts...)
	return &c
}
