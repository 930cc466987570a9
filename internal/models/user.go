package models

// User is the single demo profile the application is scoped to.
type User struct {
	ID     string `json:"id" example:"usr-1"`
	Name   string `json:"name" example:"Awa Ndiaye"`
	Email  string `json:"email" example:"awa.ndiaye@example.com"`
	Avatar string `json:"avatar"` // URI or data blob reference
}
