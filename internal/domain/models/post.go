package model

import "time"

type Post struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Content         string     `json:"content"`
	CreatedOn       time.Time  `json:"createdOn"`
	UpdatedOn       *time.Time `json:"updatedOn"`
	StudentOfficeID int64      `json:"studentOfficeId"`
	PollOptions     []string   `json:"pollOptions"`
}

// IsPoll reports whether the post carries poll options. An empty, non-nil
// option list still counts as a poll.
func (p *Post) IsPoll() bool {
	return p.PollOptions != nil
}

type PostVote struct {
	UserID      int64
	OptionIndex int
}

type PostWithVotes struct {
	Post
	Votes []PostVote
}

type FeedFilter struct {
	StudentOfficeID int64
	Cursor          *int64
	Limit           int
}

type CreatePostDTO struct {
	StudentOfficeID int64
	Title           string
	Content         string
	PollOptions     []string
}

type UpdatePostDTO struct {
	ID              int64
	StudentOfficeID int64
	Title           string
	Content         string
}
