// Package user holds account registration, login and profile requests.
package user

type RegisterCommand struct {
	Username string `json:"username" validate:"required,alphanum,max=64"`
	Email    string `json:"email" validate:"required,max=255"`
	Password string `json:"password" validate:"required,min=6,containsany=0123456789"`
}

func (RegisterCommand) Kind() string { return "user.register" }

type LoginQuery struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (LoginQuery) Kind() string { return "user.login" }

// CurrentQuery returns the acting user's profile with a fresh token.
type CurrentQuery struct{}

func (CurrentQuery) Kind() string { return "user.current" }

// DeleteCommand removes the acting user's account.
type DeleteCommand struct{}

func (DeleteCommand) Kind() string { return "user.delete" }

// DTO is what the client sees after authenticating.
type DTO struct {
	Username    string  `json:"username"`
	DisplayName string  `json:"displayName"`
	Token       string  `json:"token"`
	Image       *string `json:"image"`
}
