package domain

import "time"

// Garden defaults for a fresh installation
const (
	DefaultGardenLevel        = 1
	DefaultGardenMaxPlants    = 4
	DefaultGardenProductivity = 1.0
)

// Garden owns the plant collection and its capacity
type Garden struct {
	Level           int       `json:"level"`
	MaxPlants       int       `json:"max_plants"`
	Productivity    float64   `json:"productivity"`
	Plants          []*Plant  `json:"plants"`
	LastHarvestTime time.Time `json:"last_harvest_time"`
}

// NewGarden returns the garden every new player starts with
func NewGarden(now time.Time) *Garden {
	return &Garden{
		Level:           DefaultGardenLevel,
		MaxPlants:       DefaultGardenMaxPlants,
		Productivity:    DefaultGardenProductivity,
		Plants:          []*Plant{},
		LastHarvestTime: now,
	}
}

// IsFull reports whether another plant would exceed capacity
func (g *Garden) IsFull() bool {
	return len(g.Plants) >= g.MaxPlants
}

// FindPlant returns the index and plant with the given id, or -1 and nil
func (g *Garden) FindPlant(id string) (int, *Plant) {
	for i, p := range g.Plants {
		if p.ID == id {
			return i, p
		}
	}
	return -1, nil
}

// Clone returns a deep copy of the garden
func (g *Garden) Clone() *Garden {
	c := *g
	c.Plants = make([]*Plant, len(g.Plants))
	for i, p := range g.Plants {
		c.Plants[i] = p.Clone()
	}
	return &c
}
