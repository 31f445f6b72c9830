package ability

import "tactics_ai/internal/config"

// HitRate is one hit-rate pattern of an ability.
type HitRate struct {
	Kind       string
	AngleBased bool
}

type Ability struct {
	ID       string
	Name     string
	HitRates []HitRate
}

// IsAngleBased reports whether the angle of attack matters for any of the
// ability's hit-rate patterns.
func (a *Ability) IsAngleBased() bool {
	if a == nil {
		return false
	}
	for _, hr := range a.HitRates {
		if hr.AngleBased {
			return true
		}
	}
	return false
}

type Book struct {
	byID  map[string]*Ability
	order []string
}

func NewBook(cfg *config.AbilitiesConfig) *Book {
	b := &Book{byID: map[string]*Ability{}}
	if cfg == nil {
		return b
	}
	for _, def := range cfg.Abilities {
		ab := &Ability{ID: def.ID, Name: def.Name}
		if ab.Name == "" {
			ab.Name = def.ID
		}
		if len(def.HitRates) > 0 {
			ab.HitRates = make([]HitRate, len(def.HitRates))
			for i, hr := range def.HitRates {
				ab.HitRates[i] = HitRate{Kind: hr.Kind, AngleBased: hr.AngleBased}
			}
		}
		b.Add(ab)
	}
	return b
}

// Add registers ab, replacing any earlier ability with the same ID.
func (b *Book) Add(ab *Ability) {
	if _, ok := b.byID[ab.ID]; !ok {
		b.order = append(b.order, ab.ID)
	}
	b.byID[ab.ID] = ab
}

func (b *Book) Get(id string) (*Ability, bool) {
	if b == nil {
		return nil, false
	}
	ab, ok := b.byID[id]
	return ab, ok
}

func (b *Book) IDs() []string {
	return append([]string(nil), b.order...)
}
