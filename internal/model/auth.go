package model

// AccessToken is the object embedded in the JWT access token. Login and
// session flows live in a separate service; this backend only verifies the
// token and reads the viewer identity out of it.
type AccessToken struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
