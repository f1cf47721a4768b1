package game

import (
	"sort"

	"github.com/minaorangina/jest/deck"
)

func containsCard(s []deck.Card, target deck.Card) bool {
	for _, c := range s {
		if c == target {
			return true
		}
	}
	return false
}

// turnOrder sorts the offer owners by the strength of their face-up card, strongest first
func turnOrder(offers []*Offer) []*Player {
	sorted := append([]*Offer{}, offers...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Strength() > sorted[j].Strength()
	})

	order := []*Player{}
	for _, o := range sorted {
		order = append(order, o.Owner)
	}
	return order
}

// copyOffers hands out copies so a decision source can't take cards itself
func copyOffers(offers []*Offer) []*Offer {
	copies := []*Offer{}
	for _, o := range offers {
		c := *o
		copies = append(copies, &c)
	}
	return copies
}
