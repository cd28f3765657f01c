package model

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleAdmin
}

type User struct {
	ID                int64   `json:"id"`
	Login             string  `json:"login"`
	Email             string  `json:"email"`
	SchoolEmail       *string `json:"schoolEmail"`
	PasswordHash      string  `json:"-"`
	FullName          *string `json:"fullName"`
	Phone             *string `json:"phone"`
	Verified          bool    `json:"verified"`
	ProfilePictureURL *string `json:"profilePictureUrl"`
	Role              Role    `json:"role"`
	// Never exposed on the wire; membership is implied by the session.
	StudentOfficeID *int64 `json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type OrganizationClaim struct {
	SchoolEmail     *string
	StudentOfficeID *int64
}

type UniqueFields struct {
	Login       string
	Email       string
	Phone       *string
	SchoolEmail *string
}

type CreateUserDTO struct {
	Login             string
	Email             string
	SchoolEmail       *string
	FullName          *string
	Phone             *string
	ProfilePictureURL *string
	Password          string
	StudentOfficeID   *int64
}

func (d *CreateUserDTO) Claim() OrganizationClaim {
	return OrganizationClaim{SchoolEmail: d.SchoolEmail, StudentOfficeID: d.StudentOfficeID}
}

func (d *CreateUserDTO) UniqueFields() UniqueFields {
	return UniqueFields{Login: d.Login, Email: d.Email, Phone: d.Phone, SchoolEmail: d.SchoolEmail}
}

type UpdateUserDTO struct {
	ID                int64
	Login             string
	Email             string
	SchoolEmail       *string
	FullName          *string
	Phone             *string
	ProfilePictureURL *string
	StudentOfficeID   *int64
}

func (d *UpdateUserDTO) Claim() OrganizationClaim {
	return OrganizationClaim{SchoolEmail: d.SchoolEmail, StudentOfficeID: d.StudentOfficeID}
}

func (d *UpdateUserDTO) UniqueFields() UniqueFields {
	return UniqueFields{Login: d.Login, Email: d.Email, Phone: d.Phone, SchoolEmail: d.SchoolEmail}
}

type Credentials struct {
	Login    string
	Password string
}
