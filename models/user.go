package models

// User is the verified identity returned by the external auth service.
// There is no local user table; this is purely the collaborator's shape.
type User struct {
	UserID       int64  `json:"userId"`
	CreationTime int64  `json:"creationTime"`
	UserName     string `json:"userName"`
	Email        string `json:"email"`
}
