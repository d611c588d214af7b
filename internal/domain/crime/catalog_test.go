package crime

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCatalog_ByID(t *testing.T) {
	c := DefaultCatalog()

	def, err := c.ByID("pickpocket")
	if err != nil {
		t.Fatalf("ByID error: %v", err)
	}
	if def.Name != "Pickpocket" || def.EnergyCost != 10 {
		t.Fatalf("unexpected definition: %+v", def)
	}

	_, err = c.ByID("jaywalking")
	if !errors.Is(err, ErrUnknownCrime) {
		t.Fatalf("expected ErrUnknownCrime, got %v", err)
	}
}

func TestCatalog_ListPreservesLoadOrder(t *testing.T) {
	c := DefaultCatalog()
	list := c.List()
	if len(list) == 0 {
		t.Fatalf("expected non-empty catalog")
	}
	if list[0].ID != "pickpocket" {
		t.Fatalf("first crime=%q want pickpocket", list[0].ID)
	}
}

func TestCatalog_CityModifierUnknownCityIsZero(t *testing.T) {
	c := DefaultCatalog()
	if mod := c.CityModifier("atlantis"); mod != (CityModifier{}) {
		t.Fatalf("unknown city modifier=%+v want zero", mod)
	}
	if mod := c.CityModifier("docklands"); mod.SuccessBonus != 5 || mod.IncomeBonus != 10 {
		t.Fatalf("docklands modifier=%+v", mod)
	}
}

func TestNewCatalog_RejectsInvalidDefinitions(t *testing.T) {
	cases := []struct {
		name string
		def  CrimeDefinition
	}{
		{"empty id", CrimeDefinition{EnergyCost: 1, MaxReward: 1, BaseSuccessRate: 50}},
		{"zero energy", CrimeDefinition{ID: "x", MaxReward: 1, BaseSuccessRate: 50}},
		{"inverted rewards", CrimeDefinition{ID: "x", EnergyCost: 1, MinReward: 10, MaxReward: 5, BaseSuccessRate: 50}},
		{"zero rate", CrimeDefinition{ID: "x", EnergyCost: 1, MaxReward: 1, BaseSuccessRate: 0}},
		{"rate above cap", CrimeDefinition{ID: "x", EnergyCost: 1, MaxReward: 1, BaseSuccessRate: 100}},
		{"negative jail", CrimeDefinition{ID: "x", EnergyCost: 1, MaxReward: 1, BaseSuccessRate: 50, JailMinutes: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewCatalog([]CrimeDefinition{tc.def}, nil); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestNewCatalog_RejectsDuplicateIDs(t *testing.T) {
	def := CrimeDefinition{ID: "x", EnergyCost: 1, MaxReward: 1, BaseSuccessRate: 50}
	if _, err := NewCatalog([]CrimeDefinition{def, def}, nil); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestLoadCatalog_FromRulesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crimes.yaml")
	rules := `
crimes:
  - id: pickpocket
    name: Pickpocket
    energy_cost: 10
    min_reward: 50
    max_reward: 200
    base_success_rate: 95
    xp_reward: 5
    jail_minutes: 15
    illicit: true
cities:
  docklands:
    success_bonus: 5
    income_bonus: 10
`
	if err := os.WriteFile(path, []byte(rules), 0o644); err != nil {
		t.Fatalf("write rules: %v", err)
	}

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	def, err := c.ByID("pickpocket")
	if err != nil {
		t.Fatalf("ByID error: %v", err)
	}
	if !def.Illicit || def.JailMinutes != 15 {
		t.Fatalf("unexpected definition: %+v", def)
	}
	if mod := c.CityModifier("docklands"); mod.IncomeBonus != 10 {
		t.Fatalf("city modifier=%+v", mod)
	}
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing rules file")
	}
}
