package domain

// Roles stored on a user record.
const (
	RoleUser  string = "user"
	RoleRider string = "rider"
	RoleAdmin string = "admin"
)

// Parcel lifecycle statuses. A parcel only moves forward through these.
const (
	ParcelPending   string = "pending"
	ParcelPaid      string = "paid"
	ParcelAssigned  string = "assigned"
	ParcelInTransit string = "in_transit"
	ParcelDelivered string = "delivered"
)

// Rider application statuses.
const (
	ApplicationPending string = "pending"
	ApplicationActive  string = "active"
	ApplicationPenalty string = "penalty"
)

// Cash-out request statuses.
const (
	CashoutPending string = "pending"
	CashoutSuccess string = "success"
)

var parcelStatusRank = map[string]int{
	ParcelPending:   0,
	ParcelPaid:      1,
	ParcelAssigned:  2,
	ParcelInTransit: 3,
	ParcelDelivered: 4,
}

// IsParcelStatus reports whether s names a known lifecycle status.
func IsParcelStatus(s string) bool {
	_, ok := parcelStatusRank[s]
	return ok
}

// CanAdvanceParcel reports whether from -> to is a forward move through the
// lifecycle. Skipping a stage is allowed, going back or standing still is not.
func CanAdvanceParcel(from, to string) bool {
	fromRank, ok := parcelStatusRank[from]
	if !ok {
		return false
	}
	toRank, ok := parcelStatusRank[to]
	if !ok {
		return false
	}
	return toRank > fromRank
}

const (
	// CrossDistrictRate applies when sender and receiver districts differ.
	CrossDistrictRate = 0.20
	// IntraDistrictRate applies when the parcel stays within one district.
	IntraDistrictRate = 0.12
)

// SplitCommission divides a delivered parcel's charge between the rider and
// the platform. The two shares always sum to the total charge.
func SplitCommission(totalCharge float64, senderDistrict, receiverDistrict string) (rider, admin float64) {
	rate := IntraDistrictRate
	if senderDistrict != receiverDistrict {
		rate = CrossDistrictRate
	}
	rider = round2(totalCharge * rate)
	admin = round2(totalCharge - rider)
	return rider, admin
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
