package request

type SignupRequest struct {
	Email string `json:"email" binding:"required,max=254"`
}

type VerifyPINRequest struct {
	Email string `json:"email" binding:"required,max=254"`
	PIN   string `json:"pin" binding:"required"`
}
