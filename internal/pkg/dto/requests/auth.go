package requests

type Register struct {
	Email          string `json:"email" validate:"required,email"`
	Username       string `json:"username" validate:"required,alphanum,min=8,max=15"`
	Fullname       string `json:"fullname" validate:"required"`
	Password       string `json:"password" validate:"password"`
	RetypePassword string `json:"retype_password" validate:"required,eqfield=Password"`
	Role           string `json:"role" validate:"required,role"`
}

type Login struct {
	Username string `json:"username" validate:"required,alphanum,min=8"`
	Password string `json:"password" validate:"required,min=8"`
}
