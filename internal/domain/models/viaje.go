package models

// ViajeCerrado is the stored closure flag of one (Fecha, Viaje) pair.
// A missing row means the trip is open.
type ViajeCerrado struct {
	ID      int64  `json:"id"`
	Fecha   string `json:"fecha"`
	Viaje   int    `json:"viaje"`
	Cerrado bool   `json:"cerrado"`
}
