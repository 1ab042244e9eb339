package prefs

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	prefsObject   = "prefs"
	prefsProperty = "player"
)

// Preferences are desktop client settings kept between runs. Farms
// themselves are not saved.
type Preferences struct {
	MapName   string `yaml:"map_name"`
	ShowHelp  bool   `yaml:"show_help"`
	BestMoney int    `yaml:"best_money"`
	BestDay   int    `yaml:"best_day"`
}

func Defaults() Preferences {
	return Preferences{ShowHelp: true}
}

// Store reads and writes Preferences through gdata. A nil manager keeps
// everything in memory.
type Store struct {
	manager *gdata.Manager
	mem     *Preferences
}

func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return &Store{}, fmt.Errorf("open prefs storage: %w", err)
	}
	return &Store{manager: m}, nil
}

func NewStore(m *gdata.Manager) *Store {
	return &Store{manager: m}
}

func (s *Store) Load() (Preferences, error) {
	if s == nil {
		return Defaults(), nil
	}
	if s.manager == nil {
		if s.mem != nil {
			return *s.mem, nil
		}
		return Defaults(), nil
	}
	if !s.manager.ObjectPropExists(prefsObject, prefsProperty) {
		return Defaults(), nil
	}
	data, err := s.manager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return Defaults(), fmt.Errorf("load prefs: %w", err)
	}
	p := Defaults()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Defaults(), fmt.Errorf("decode prefs: %w", err)
	}
	return p, nil
}

func (s *Store) Save(p Preferences) error {
	if s == nil {
		return nil
	}
	if s.manager == nil {
		s.mem = &p
		return nil
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	if err := s.manager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("save prefs: %w", err)
	}
	return nil
}

// UseMap remembers name as the map to open next time and reports whether
// it differs from the stored one.
func (p *Preferences) UseMap(name string) bool {
	if name == "" || name == p.MapName {
		return false
	}
	p.MapName = name
	return true
}

// Record raises the best-money and best-day marks. It reports whether
// either mark moved.
func (p *Preferences) Record(money, day int) bool {
	changed := false
	if money > p.BestMoney {
		p.BestMoney = money
		changed = true
	}
	if day > p.BestDay {
		p.BestDay = day
		changed = true
	}
	return changed
}
