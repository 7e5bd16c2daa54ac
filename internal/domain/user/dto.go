package user

type RegisterInput struct {
	FullName string `json:"fullName" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateUserInput struct {
	FullName       string  `json:"fullName" binding:"required,min=2"`
	Email          string  `json:"email" binding:"required,email"`
	Username       string  `json:"username" binding:"required,min=3,max=50"`
	Password       string  `json:"password" binding:"required,min=6"`
	Role           *Role   `json:"role" binding:"omitempty,oneof=admin supervisor engineer sales customer"`
	Specialization *string `json:"specialization"`
}

type UpdateUserInput struct {
	FullName          *string   `json:"fullName"`
	Email             *string   `json:"email" binding:"omitempty,email"`
	Role              *Role     `json:"role" binding:"omitempty,oneof=admin supervisor engineer sales customer"`
	Specialization    *string   `json:"specialization"`
	PreferredLanguage *Language `json:"preferredLanguage" binding:"omitempty,oneof=ar en"`
	IsActive          *bool     `json:"isActive"`
}

// UpdateProfileInput is the self-service subset: role and activation
// changes stay admin-only.
type UpdateProfileInput struct {
	FullName          *string   `json:"fullName"`
	Email             *string   `json:"email" binding:"omitempty,email"`
	PreferredLanguage *Language `json:"preferredLanguage" binding:"omitempty,oneof=ar en"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordInput struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}
