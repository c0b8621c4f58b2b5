package therapist

type dayAvailability struct {
	Day   string   `json:"day"`
	Slots []string `json:"slots"`
}

type therapistResponse struct {
	ID             uint              `json:"id"`
	Name           string            `json:"name"`
	PhotoURL       string            `json:"photoUrl"`
	Specialization []string          `json:"specialization"`
	Qualifications string            `json:"qualifications"`
	Contact        string            `json:"contact"`
	Location       string            `json:"location"`
	Availability   []dayAvailability `json:"availability"`
}
