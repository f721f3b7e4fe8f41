package user

// RegistrationEvent is the externally produced "user registered"
// notification. Delivery is at-least-once and may duplicate or reorder;
// consumers must treat a duplicate create as success.
type RegistrationEvent struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Valid reports whether the event addresses a creatable profile. An empty
// user id would key a record under an unaddressable partition, so such
// events are treated as malformed and skipped.
func (e RegistrationEvent) Valid() bool {
	return e.UserID != "" && e.Email != ""
}
