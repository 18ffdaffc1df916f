package domain

import "time"

type User struct {
	ID        int       `db:"id"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

type RiderApplication struct {
	ID        int       `db:"id"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	District  string    `db:"district"`
	Phone     string    `db:"phone"`
	Status    string    `db:"status"`
	AppliedAt time.Time `db:"applied_at"`
}

type Parcel struct {
	ID               int        `db:"id"`
	UserEmail        string     `db:"user_email"`
	TracingID        string     `db:"tracing_id"`
	Title            string     `db:"title"`
	ParcelType       string     `db:"parcel_type"`
	SenderName       string     `db:"sender_name"`
	SenderDistrict   string     `db:"sender_district"`
	ReceiverName     string     `db:"receiver_name"`
	ReceiverDistrict string     `db:"receiver_district"`
	ReceiverAddress  string     `db:"receiver_address"`
	Weight           float64    `db:"weight"`
	TotalCharge      float64    `db:"total_charge"`
	Status           string     `db:"status"`
	PaymentIntentID  string     `db:"payment_intent_id"`
	TransactionID    string     `db:"transaction_id"`
	PaymentDate      *time.Time `db:"payment_date"`
	RiderEmail       string     `db:"rider_email"`
	RiderName        string     `db:"rider_name"`
	DeliveryETA      string     `db:"delivery_eta"`
	RiderCommission  float64    `db:"rider_commission"`
	AdminCommission  float64    `db:"admin_commission"`
	DeliveredDate    *time.Time `db:"delivered_date"`
	IsCashedOut      bool       `db:"is_cashed_out"`
	CreatedAt        time.Time  `db:"created_at"`
}

type Payment struct {
	ID            int       `db:"id"`
	ParcelID      int       `db:"parcel_id"`
	TransactionID string    `db:"transaction_id"`
	UserEmail     string    `db:"user_email"`
	Amount        float64   `db:"amount"`
	PaymentDate   time.Time `db:"payment_date"`
}

type TrackingUpdate struct {
	ID        int       `db:"id"`
	TracingID string    `db:"tracing_id"`
	Status    string    `db:"status"`
	Message   string    `db:"message"`
	EventTime time.Time `db:"event_time"`
}

type CashoutRequest struct {
	ID           int        `db:"id"`
	RiderEmail   string     `db:"rider_email"`
	Amount       float64    `db:"amount"`
	Status       string     `db:"status"`
	RequestDate  time.Time  `db:"request_date"`
	ApprovedDate *time.Time `db:"approved_date"`
}

type Review struct {
	ID         int       `db:"id"`
	RiderEmail string    `db:"rider_email"`
	UserEmail  string    `db:"user_email"`
	Rating     int       `db:"rating"`
	Comment    string    `db:"comment"`
	ReviewDate time.Time `db:"review_date"`
}
