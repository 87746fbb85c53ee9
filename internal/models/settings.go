package models

// Settings represents application-wide settings
type Settings struct {
	// Timezone is the IANA timezone name used to decide what "today" and
	// "this week" mean, e.g. "Europe/Berlin", or "Local" for the system zone.
	Timezone string `json:"timezone"`
}
