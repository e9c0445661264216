package model

// LoyaltyTier is a passenger's frequent-flyer standing.  It feeds the
// waiting-list priority: VIP outranks FREQUENT_FLYER outranks NORMAL
// regardless of the requested cabin class.
type LoyaltyTier string

const (
	TierNormal        LoyaltyTier = "NORMAL"
	TierFrequentFlyer LoyaltyTier = "FREQUENT_FLYER"
	TierVIP           LoyaltyTier = "VIP"
)

// Passenger identifies the person a hold, booking or waiting-list entry
// belongs to.  Passengers are supplied by callers; the engine does not
// maintain a passenger registry.
type Passenger struct {
	ID    string
	Name  string
	Email string
	Tier  LoyaltyTier
}
