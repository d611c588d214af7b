package crime

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrUnknownCrime = errors.New("unknown crime")

// Catalog is the canonical rules table: every crime definition and
// city modifier lives here, loaded once at startup.
type Catalog struct {
	crimes map[string]CrimeDefinition
	order  []string
	cities map[string]CityModifier
}

func NewCatalog(crimes []CrimeDefinition, cities map[string]CityModifier) (*Catalog, error) {
	if len(crimes) == 0 {
		return nil, errors.New("catalog requires at least one crime")
	}
	c := &Catalog{
		crimes: make(map[string]CrimeDefinition, len(crimes)),
		order:  make([]string, 0, len(crimes)),
		cities: make(map[string]CityModifier, len(cities)),
	}
	for _, def := range crimes {
		if err := validateDefinition(def); err != nil {
			return nil, err
		}
		if _, dup := c.crimes[def.ID]; dup {
			return nil, fmt.Errorf("duplicate crime id %q", def.ID)
		}
		c.crimes[def.ID] = def
		c.order = append(c.order, def.ID)
	}
	for city, mod := range cities {
		c.cities[city] = mod
	}
	return c, nil
}

func validateDefinition(def CrimeDefinition) error {
	if def.ID == "" {
		return errors.New("crime id must not be empty")
	}
	if def.EnergyCost <= 0 {
		return fmt.Errorf("crime %q: energy cost must be positive", def.ID)
	}
	if def.MinReward < 0 || def.MinReward > def.MaxReward {
		return fmt.Errorf("crime %q: reward range [%d, %d] is invalid", def.ID, def.MinReward, def.MaxReward)
	}
	if def.BaseSuccessRate <= 0 || def.BaseSuccessRate > MaxEffectiveRate {
		return fmt.Errorf("crime %q: base success rate %d outside (0, %d]", def.ID, def.BaseSuccessRate, MaxEffectiveRate)
	}
	if def.JailMinutes < 0 {
		return fmt.Errorf("crime %q: jail minutes must not be negative", def.ID)
	}
	return nil
}

// ByID looks up a crime definition. Callers must reject the request
// without touching character state when the id is unknown.
func (c *Catalog) ByID(id string) (CrimeDefinition, error) {
	def, ok := c.crimes[id]
	if !ok {
		return CrimeDefinition{}, fmt.Errorf("%w: %q", ErrUnknownCrime, id)
	}
	return def, nil
}

// List returns definitions in load order.
func (c *Catalog) List() []CrimeDefinition {
	out := make([]CrimeDefinition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.crimes[id])
	}
	return out
}

// CityModifier returns the modifier for a city, or the zero modifier
// when the city is unknown or empty.
func (c *Catalog) CityModifier(city string) CityModifier {
	return c.cities[city]
}

type catalogFile struct {
	Crimes []CrimeDefinition       `yaml:"crimes"`
	Cities map[string]CityModifier `yaml:"cities"`
}

// LoadCatalog reads a rules file. Validation is identical to
// NewCatalog; a broken rules file fails startup rather than drifting.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}
	return NewCatalog(f.Crimes, f.Cities)
}

// DefaultCatalog is the built-in rules table used when no rules file
// is configured.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultCrimes, defaultCities)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultCrimes = []CrimeDefinition{
	{ID: "pickpocket", Name: "Pickpocket", EnergyCost: 10, MinReward: 50, MaxReward: 200, BaseSuccessRate: 95, XPReward: 5, JailMinutes: 15, Illicit: true},
	{ID: "shoplift", Name: "Shoplifting", EnergyCost: 15, MinReward: 100, MaxReward: 350, BaseSuccessRate: 85, XPReward: 8, JailMinutes: 30, Illicit: true},
	{ID: "mugging", Name: "Mugging", EnergyCost: 20, MinReward: 250, MaxReward: 700, BaseSuccessRate: 70, XPReward: 14, JailMinutes: 60, Illicit: true},
	{ID: "car_theft", Name: "Car Theft", EnergyCost: 30, MinReward: 800, MaxReward: 2500, BaseSuccessRate: 55, XPReward: 25, JailMinutes: 120, Illicit: true},
	{ID: "smuggling_run", Name: "Smuggling Run", EnergyCost: 40, MinReward: 2000, MaxReward: 6000, BaseSuccessRate: 40, XPReward: 40, JailMinutes: 240, Illicit: true},
	{ID: "bank_heist", Name: "Bank Heist", EnergyCost: 60, MinReward: 8000, MaxReward: 25000, BaseSuccessRate: 20, XPReward: 90, JailMinutes: 480, Illicit: true},
	{ID: "street_hustle", Name: "Street Hustle", EnergyCost: 8, MinReward: 20, MaxReward: 90, BaseSuccessRate: 90, XPReward: 3, JailMinutes: 10, Illicit: false},
}

var defaultCities = map[string]CityModifier{
	"downtown":  {SuccessBonus: 0, IncomeBonus: 0},
	"docklands": {SuccessBonus: 5, IncomeBonus: 10},
	"old_town":  {SuccessBonus: 10, IncomeBonus: 0},
	"uptown":    {SuccessBonus: -5, IncomeBonus: 25},
}
