package dto

// Message is the generic reply body for successes and failures alike.
type Message struct {
	Message string `json:"message"`
}

type DeleteResult struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
	Token   string `json:"token"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type AdminFlag struct {
	Admin bool `json:"admin"`
}

type RoleResponse struct {
	Message string `json:"message"`
	Role    string `json:"role"`
}

// MediaDescriptor describes a stored upload.
type MediaDescriptor struct {
	URL      string `json:"url"`
	FileType string `json:"type"`
	Size     int64  `json:"size"`
	Uploaded int64  `json:"uploaded"`
}
