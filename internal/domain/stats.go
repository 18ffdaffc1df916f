package domain

// DayCount is a per-day booking count used by the admin dashboard.
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// DistrictCount is a per-district parcel count used by the admin dashboard.
type DistrictCount struct {
	District string `json:"district"`
	Count    int    `json:"count"`
}

// RiderStats summarizes a rider's review standing and delivery record.
type RiderStats struct {
	AverageRating  float64 `json:"averageRating"`
	ReviewCount    int     `json:"reviewCount"`
	DeliveredCount int     `json:"deliveredCount"`
}

// DashboardStats aggregates the admin reporting numbers.
type DashboardStats struct {
	TotalParcels      int             `json:"totalParcels"`
	TotalDelivered    int             `json:"totalDelivered"`
	TotalUsers        int             `json:"totalUsers"`
	TotalRiders       int             `json:"totalRiders"`
	TotalRevenue      float64         `json:"totalRevenue"`
	BookingsByDay     []DayCount      `json:"bookingsByDay"`
	ParcelsByDistrict []DistrictCount `json:"parcelsByDistrict"`
	StatusBreakdown   map[string]int  `json:"statusBreakdown"`
}
