package farm

import (
	"fmt"
	"strconv"
)

type Variant string

const (
	VariantPotato Variant = "potato"
	VariantKale   Variant = "kale"
	VariantBerry  Variant = "berry"
)

type ItemAmount struct {
	Item  string `json:"item" yaml:"item"`
	Count int    `json:"count" yaml:"count"`
}

// VariantSpec is the constant table behind one plant variant. StageDays[i]
// is the number of days a plant spends in stage i; the stage after the last
// entry is the harvestable one.
type VariantSpec struct {
	Variant    Variant    `json:"variant" yaml:"variant"`
	StageDays  []int      `json:"stage_days" yaml:"stage_days"`
	Yield      ItemAmount `json:"yield" yaml:"yield"`
	Regrowable bool       `json:"regrowable" yaml:"regrowable"`
}

func (s VariantSpec) MaxStage() int {
	return len(s.StageDays)
}

// MatureAge is the first age at which the plant is harvestable.
func (s VariantSpec) MatureAge() int {
	total := 0
	for _, d := range s.StageDays {
		total += d
	}
	return total
}

// RegrowAge is the age a regrowable plant drops back to after harvest: the
// start of its final growth cycle.
func (s VariantSpec) RegrowAge() int {
	if len(s.StageDays) == 0 {
		return 0
	}
	return s.MatureAge() - s.StageDays[len(s.StageDays)-1]
}

func (s VariantSpec) StageAt(age int) int {
	stage, threshold := 0, 0
	for _, d := range s.StageDays {
		threshold += d
		if age < threshold {
			return stage
		}
		stage++
	}
	return stage
}

func (s VariantSpec) Validate() error {
	if s.Variant == "" {
		return fmt.Errorf("variant name is required: %w", ErrInvalidCatalog)
	}
	if len(s.StageDays) == 0 {
		return fmt.Errorf("variant %s: stage_days is required: %w", s.Variant, ErrInvalidCatalog)
	}
	for i, d := range s.StageDays {
		if d <= 0 {
			return fmt.Errorf("variant %s: stage %d lasts %d days: %w", s.Variant, i, d, ErrInvalidCatalog)
		}
	}
	if s.Yield.Item == "" || s.Yield.Count <= 0 {
		return fmt.Errorf("variant %s: yield must name an item and a positive count: %w", s.Variant, ErrInvalidCatalog)
	}
	return nil
}

type Plant struct {
	spec VariantSpec
	age  int
}

func NewPlant(spec VariantSpec) *Plant {
	return &Plant{spec: spec}
}

func (p *Plant) Variant() Variant    { return p.spec.Variant }
func (p *Plant) Spec() VariantSpec   { return p.spec }
func (p *Plant) Age() int            { return p.age }
func (p *Plant) Stage() int          { return p.spec.StageAt(p.age) }
func (p *Plant) MaxStage() int       { return p.spec.MaxStage() }
func (p *Plant) Regrowable() bool    { return p.spec.Regrowable }
func (p *Plant) IsHarvestable() bool { return p.Stage() == p.spec.MaxStage() }
func (p *Plant) ImageName() string   { return string(p.spec.Variant) + "_" + strconv.Itoa(p.Stage()) }
func (p *Plant) AdvanceDay()         { p.age++ }

// Harvest yields the crop of a mature plant. A regrowable plant rewinds to
// its final growth cycle; removing a spent plant from the farm is the
// caller's job.
func (p *Plant) Harvest() (ItemAmount, error) {
	if !p.IsHarvestable() {
		return ItemAmount{}, ErrNotReady
	}
	if p.spec.Regrowable {
		p.age = p.spec.RegrowAge()
	}
	return p.spec.Yield, nil
}
