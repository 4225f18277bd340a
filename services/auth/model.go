package auth

import "time"

type User struct {
	UID     string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Account pairs a user with credentials. This is mock authentication only:
// passwords are stored and compared in plain text against a seeded account
// set, there is no real security here.
type Account struct {
	User     User
	Password string
}

// Session links a shopper session to a logged-in user. A session with an
// empty UserUID is logged out.
type Session struct {
	UID       string
	UserUID   string
	CreatedAt time.Time
}

var seedAccounts = []Account{
	{
		User: User{
			UID:     "user_budi",
			Name:    "Budi Santoso",
			Email:   "budi@example.com",
			Phone:   "081234567890",
			Address: "Jl. Mawar No. 5, Jakarta Barat",
		},
		Password: "rahasia123",
	},
	{
		User: User{
			UID:   "user_siti",
			Name:  "Siti Aminah",
			Email: "siti@example.com",
		},
		Password: "rahasia456",
	},
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type userResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}
