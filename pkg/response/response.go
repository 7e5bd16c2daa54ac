package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token             string `json:"token"`
	UserID            string `json:"userId"`
	Username          string `json:"username"`
	FullName          string `json:"fullName"`
	Role              string `json:"role"`
	PreferredLanguage string `json:"preferredLanguage"`
}

type SuccessResponse struct {
	Data interface{} `json:"data"`
}
