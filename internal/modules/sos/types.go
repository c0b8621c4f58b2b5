package sos

import "time"

type notifiedContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// alertResponse is deliberately deterministic in shape: the notifier is a
// stub and callers depend on always getting this payload back.
type alertResponse struct {
	Status           string            `json:"status"`
	Message          string            `json:"message"`
	Timestamp        time.Time         `json:"timestamp"`
	NotifiedContacts []notifiedContact `json:"notified_contacts"`
}
