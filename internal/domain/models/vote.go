package model

type Vote struct {
	UserID      int64 `json:"userId"`
	PostID      int64 `json:"postId"`
	OptionIndex int   `json:"optionIndex"`
}

type CastVoteDTO struct {
	UserID          int64
	StudentOfficeID int64
	PostID          int64
	OptionIndex     int
}
