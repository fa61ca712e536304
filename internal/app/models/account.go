package models

type Account struct {
	ID       string `bson:"_id,omitempty"`
	Email    string `bson:"email"`
	Username string `bson:"username"`
	Password string `bson:"password"`
	Fullname string `bson:"fullname"`
	Role     string `bson:"role"`

	// Consultant profile fields, empty for customers.
	Specialty string `bson:"specialty,omitempty"`
	Bio       string `bson:"bio,omitempty"`

	TimeModel `bson:",inline"`
}
