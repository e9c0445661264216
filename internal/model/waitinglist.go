package model

import "time"

// Waiting-list priority weights.  A passenger's rank is the sum of the
// weight of the requested cabin class and the weight of their loyalty
// tier; higher rank is served first.  The tier weights deliberately
// dominate the class weights so that a VIP economy passenger outranks
// any normal passenger whatever class the latter requested.
const (
	classWeightEconomy  = 1
	classWeightBusiness = 2
	classWeightFirst    = 3

	tierWeightNormal        = 0
	tierWeightFrequentFlyer = 5
	tierWeightVIP           = 10
)

// WaitingListEntry is one passenger waiting for a seat on a full
// flight.  Lifecycle: Waiting → Notified → {Accepted | Expired}; both
// end states remove the entry from the queue.  Once promoted, Notified
// is set together with a response deadline; an entry whose deadline
// passes is dropped and the passenger must rejoin.
//
// Position is the entry's rank count at join time.  It is an
// informational snapshot only: the queue reorders by priority as others
// join, and Position is never recomputed.
type WaitingListEntry struct {
	ID                    string
	FlightID              string
	Passenger             Passenger
	Class                 SeatClass
	JoinedAt              time.Time
	Position              int
	Notified              bool
	NotifiedAt            time.Time
	NotificationExpiresAt time.Time
}

// Priority computes the entry's rank.  Ties are broken by JoinedAt
// ascending (FIFO within equal priority); that tie-break is applied by
// the waiting-list engine's sort, not here.
func (e *WaitingListEntry) Priority() int {
	p := classWeightEconomy
	switch e.Class {
	case SeatClassBusiness:
		p = classWeightBusiness
	case SeatClassFirst:
		p = classWeightFirst
	}
	switch e.Passenger.Tier {
	case TierFrequentFlyer:
		p += tierWeightFrequentFlyer
	case TierVIP:
		p += tierWeightVIP
	default:
		p += tierWeightNormal
	}
	return p
}
