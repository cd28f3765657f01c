package model

import "studentoffice-service/internal/pagination"

type PostView struct {
	Post
	Votes               []int `json:"votes,omitzero"`
	UserVoteOptionIndex *int  `json:"userVoteOptionIndex,omitempty"`
}

type FeedQuery struct {
	StudentOfficeID int64
	CallerUserID    int64
	Cursor          *int64
}

type FeedPage struct {
	Posts      []PostView            `json:"posts"`
	Pagination pagination.Pagination `json:"pagination"`
}
