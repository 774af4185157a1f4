package models

// UserAccount holds the structure for a single entry in the users collection.
// The password field carries a bcrypt hash, never the plaintext value.
type UserAccount struct {
	Name      string `json:"name" bson:"name"`
	Email     string `json:"email" bson:"email"`
	Phone     string `json:"phone" bson:"phone"`
	Address   string `json:"address" bson:"address"`
	Password  string `json:"password" bson:"password"`
	CreatedAt string `json:"createdAt" bson:"createdAt"`
}

// UserProfile holds the display-only profile record. It is written by the
// profile edit flow and is intentionally disconnected from the users
// collection, so the two can diverge.
type UserProfile struct {
	Name          string  `json:"name" bson:"name"`
	Email         string  `json:"email" bson:"email"`
	Phone         string  `json:"phone" bson:"phone"`
	JoinDate      string  `json:"joinDate" bson:"joinDate"`
	TotalBookings int     `json:"totalBookings" bson:"totalBookings"`
	TotalSpent    float64 `json:"totalSpent" bson:"totalSpent"`
}
