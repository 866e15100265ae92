package dto

type CreateCheckoutRequestDTO struct {
	UserName string `json:"user_name" validate:"required"`
	Model    string `json:"model" validate:"required"`
	PID      int64  `json:"pid" validate:"required,gt=0"`
}

type DeleteCheckoutRequestDTO struct {
	Model string `json:"model" validate:"required"`
	PID   int64  `json:"pid" validate:"required,gt=0"`
}
