package model

type StudentOffice struct {
	ID                int64   `json:"id"`
	SchoolName        string  `json:"schoolName"`
	Description       *string `json:"description"`
	ProfilePictureURL *string `json:"profilePictureUrl"`
	CoverPictureURL   *string `json:"coverPictureUrl"`
	Domain            string  `json:"domain"`
}

type AdminAccountDTO struct {
	Login    string
	Email    string
	Password string
}

type CreateStudentOfficeDTO struct {
	Office StudentOffice
	Admin  AdminAccountDTO
}
