// Package fakedata supplies Brazilian Portuguese proper nouns (companies,
// cities, people) and state names/codes for synthetic records.
package fakedata

// Provider is the fake data capability consumed by the generators.
type Provider interface {
	Company() string
	City() string
	PersonName() string
	RegionName() string
	RegionCode() string
}

// Rand is the slice of a random source the provider needs. drift.Source
// satisfies it.
type Rand interface {
	Intn(n int) int
}

// Brazil implements Provider with pt_BR word lists. It draws from the
// supplied source, so seeded runs produce the same names.
type Brazil struct {
	rng Rand
}

// NewBrazil builds a pt_BR provider on top of rng.
func NewBrazil(rng Rand) *Brazil {
	return &Brazil{rng: rng}
}

func (b *Brazil) pick(options []string) string {
	return options[b.rng.Intn(len(options))]
}

// Company returns names shaped like "Souza Ltda.", "Costa e Lima" or
// "Almeida - ME".
func (b *Brazil) Company() string {
	switch b.rng.Intn(companyShapes) {
	case 0:
		return b.pick(lastNames) + " " + b.pick(companySuffixes)
	case 1:
		return b.pick(lastNames) + " e " + b.pick(lastNames)
	default:
		return b.pick(lastNames) + " " + b.pick(lastNames) + " " + b.pick(companySuffixes)
	}
}

// City returns fictitious municipality names such as "Nova Teresa do Sul".
func (b *Brazil) City() string {
	switch b.rng.Intn(cityShapes) {
	case 0:
		return b.pick(cityPrefixes) + " " + b.pick(firstNames)
	case 1:
		return b.pick(firstNames) + " " + b.pick(citySuffixes)
	case 2:
		return b.pick(cityPrefixes) + " " + b.pick(firstNames) + " " + b.pick(citySuffixes)
	default:
		return b.pick(lastNames) + " " + b.pick(citySuffixes)
	}
}

// PersonName returns "First Last" or "First Last Last".
func (b *Brazil) PersonName() string {
	name := b.pick(firstNames) + " " + b.pick(lastNames)
	if b.rng.Intn(2) == 0 {
		name += " " + b.pick(lastNames)
	}
	return name
}

// RegionName returns a Brazilian state name.
func (b *Brazil) RegionName() string {
	return states[b.rng.Intn(len(states))].name
}

// RegionCode returns a Brazilian state code. It is drawn independently of
// RegionName.
func (b *Brazil) RegionCode() string {
	return states[b.rng.Intn(len(states))].code
}
