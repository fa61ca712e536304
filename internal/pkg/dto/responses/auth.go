package responses

type Register struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

type Login struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
