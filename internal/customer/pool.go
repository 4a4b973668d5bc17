package customer

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"
)

var firstNames = []string{
	"Anna", "Sergey", "Olga", "Dmitry", "Maria", "Alexey",
	"Elena", "Pavel", "Natalia", "Andrey", "Tatiana", "Mikhail",
}

var profiles = []Preference{Healthy, Family, Budget, Gourmet, Student, Vegetarian}

// Pool is the set of shoppers the simulation draws from. Regulars carry
// loyalty cards; walk-ins are generated on demand without one.
type Pool struct {
	regulars []*Customer
	rng      *rand.Rand
	serial   int
}

// NewPool creates the regular customers, one per profile, each with a card
// and a randomized budget.
func NewPool(rng *rand.Rand) *Pool {
	p := &Pool{rng: rng}
	for i, pref := range profiles {
		id := fmt.Sprintf("CUST%03d", i+1)
		card := NewDiscountCard(fmt.Sprintf("CARD-%03d", i+1))
		budget := decimal.NewFromFloat(800 + rng.Float64()*1200).Round(2)
		name := fmt.Sprintf("%s (%s)", firstNames[rng.Intn(len(firstNames))], pref)
		p.regulars = append(p.regulars, New(id, name, budget, pref, card))
	}
	return p
}

// Pick returns the shopper for the next purchase event: usually a regular,
// sometimes a fresh walk-in without a card.
func (p *Pool) Pick() *Customer {
	if p.rng.Float64() < 0.7 {
		return p.regulars[p.rng.Intn(len(p.regulars))]
	}
	p.serial++
	id := fmt.Sprintf("WALKIN%03d", p.serial)
	name := firstNames[p.rng.Intn(len(firstNames))]
	budget := decimal.NewFromFloat(800 + p.rng.Float64()*1200).Round(2)
	pref := profiles[p.rng.Intn(len(profiles))]
	return New(id, name, budget, pref, nil)
}

// Regulars returns the card-holding customers.
func (p *Pool) Regulars() []*Customer {
	out := make([]*Customer, len(p.regulars))
	copy(out, p.regulars)
	return out
}
