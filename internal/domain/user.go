package domain

import "time"

// UserSummary is the authenticated user as returned by sign-in/verify-otp
type UserSummary struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	EmailVerified bool      `json:"emailVerified"`
	KYCComplete   bool      `json:"kycComplete"`
	CreatedAt     time.Time `json:"createdAt"`
}

// FullName returns the user's display name
func (u UserSummary) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Email
	}
	return u.FirstName + " " + u.LastName
}

// AuthSession is the pair persisted to local storage after authentication
type AuthSession struct {
	User  UserSummary `json:"user"`
	Token string      `json:"token"`
}

// Registration is the sign-up payload
type Registration struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

// Credentials is the sign-in payload
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Profile is the full KYC profile snapshot returned by the backend
type Profile struct {
	UserID        string    `json:"userId"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	DateOfBirth   string    `json:"dateOfBirth"`
	Gender        string    `json:"gender"`
	Location      *Location `json:"location,omitempty"`
	IDType        string    `json:"idType"`
	IDNumber      string    `json:"idNumber"`
	IDDocumentURL string    `json:"idDocumentUrl"`
	SelfieURL     string    `json:"selfieUrl"`
	BankName      string    `json:"bankName"`
	AccountNumber string    `json:"accountNumber"`
	AccountName   string    `json:"accountName"`
	Verified      bool      `json:"verified"`
}

// Location is a user's address; merged wholesale, never field by field
type Location struct {
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}
