package dto

type ProfileResponse struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Role     string   `json:"role"`
	Courses  []string `json:"courses"`
	Contact  []string `json:"contact"`
}
