package dto

// MatchedUser is a counterpart record with the password hash stripped.
type MatchedUser struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Role     string   `json:"role"`
	Courses  []string `json:"courses"`
	Contact  []string `json:"contact"`
}

type FindStudentsRequest struct {
	Courses []string `json:"courses"`
}

type SearchMentorsRequest struct {
	SearchQuery string `json:"searchQuery"`
}
