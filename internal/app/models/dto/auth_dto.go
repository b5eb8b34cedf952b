package dto

// RegisterRequest is the role-based signup form.
type RegisterRequest struct {
	Role            string `json:"role" binding:"required" example:"STUDENT"`
	Email           string `json:"email" example:"rakib22205341183@diu.edu.bd"`
	InstitutionalID string `json:"institutionalId" example:"22205341183"`
	Password1       string `json:"password1" binding:"required"`
	Password2       string `json:"password2" binding:"required"`
}

// RegisterStudentRequest is the student-specific signup form with the
// university email-domain gate.
type RegisterStudentRequest struct {
	FullName        string `json:"fullName" binding:"required" example:"Rakib Hasan"`
	Email           string `json:"email" binding:"required" example:"rakib22205341183@diu.edu.bd"`
	StudentID       string `json:"studentId" binding:"required" example:"22205341183"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	Department      string `json:"department" example:"CSE"`
	Batch           string `json:"batch" example:"39th"`
}

// LoginRequest authenticates by email or student ID.
type LoginRequest struct {
	LoginID  string `json:"loginId" binding:"required" example:"rakib22205341183@diu.edu.bd"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest rotates an access token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries the issued token pair and the role's landing page.
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int    `json:"refreshExpiresIn" example:"2592000"`
	Redirect         string `json:"redirect" example:"/students/dashboard"`
}

// RegisterStudentResponse reports a created account that must log in separately.
type RegisterStudentResponse struct {
	Email    string `json:"email"`
	Redirect string `json:"redirect" example:"/login"`
}

// RedirectResponse is the post-login routing decision.
type RedirectResponse struct {
	Redirect string `json:"redirect" example:"/students/dashboard"`
}
