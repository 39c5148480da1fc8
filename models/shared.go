package models

// Caller roles supplied by the identity boundary. The engine never derives
// these itself; every operation receives them as explicit parameters.
const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)
