package dto

type AvailableSlotsDTO struct {
	Date           string   `json:"date"`
	AvailableSlots []string `json:"available_slots"`
}
