package models

// User is the signed-in user. At most one exists per process and it is
// persisted as JSON in the session slot.
type User struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
