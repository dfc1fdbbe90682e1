package models

import "time"

// Group is a messaging group registered in the FHETalk contract.
type Group struct {
	// ID is the on-chain group identifier assigned at creation.
	ID uint64

	Name string

	// Creator is the address that created the group.
	Creator string

	// Members holds the addresses that joined the group.
	Members []string

	CreatedAt time.Time
}

// HasMember reports whether addr (case-insensitive) is a group member.
func (g *Group) HasMember(addr string) bool {
	for _, m := range g.Members {
		if equalAddress(m, addr) {
			return true
		}
	}
	return false
}
