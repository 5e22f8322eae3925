package requestresponse

// RegisterRequest : тело запроса регистрации
type RegisterRequest struct {
	Email     string `json:"email" example:"user@example.com"`
	Password  string `json:"password" example:"P@ssw0rd"`
	FirstName string `json:"first_name,omitempty" example:"Ana"`
	LastName  string `json:"last_name,omitempty" example:"García"`
	Language  string `json:"language" example:"es"`
}

// UserProfile : публичный профиль пользователя
type UserProfile struct {
	ID           int64   `json:"id" example:"1"`
	Email        string  `json:"email" example:"user@example.com"`
	FirstName    string  `json:"first_name,omitempty" example:"Ana"`
	LastName     string  `json:"last_name,omitempty" example:"García"`
	Language     string  `json:"language" example:"es"`
	IsAdmin      bool    `json:"is_admin" example:"false"`
	TotalDonated float64 `json:"total_donated" example:"150"`
}

// RegisterResponse : успешный ответ (без токена, вход выполняется отдельно)
type RegisterResponse struct {
	ID        int64  `json:"id" example:"1"`
	Email     string `json:"email" example:"user@example.com"`
	FirstName string `json:"first_name,omitempty" example:"Ana"`
	LastName  string `json:"last_name,omitempty" example:"García"`
	Language  string `json:"language" example:"es"`
}

// LoginRequest : тело запроса на аутентификацию
type LoginRequest struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"P@ssw0rd"`
}

// LoginUser : профиль в ответе на вход (без суммы пожертвований)
type LoginUser struct {
	ID        int64  `json:"id" example:"1"`
	Email     string `json:"email" example:"user@example.com"`
	FirstName string `json:"first_name,omitempty" example:"Ana"`
	LastName  string `json:"last_name,omitempty" example:"García"`
	Language  string `json:"language" example:"es"`
	IsAdmin   bool   `json:"is_admin" example:"false"`
}

// LoginResponse : токен на 7 дней + профиль
type LoginResponse struct {
	Token string    `json:"token" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
	User  LoginUser `json:"user"`
}

// UpdateProfileRequest : тело запроса на обновление профиля.
// Поля имени и языка перезаписываются безусловно, отсутствующие сбрасываются в пустое значение.
type UpdateProfileRequest struct {
	FirstName       string `json:"first_name,omitempty" example:"Ana"`
	LastName        string `json:"last_name,omitempty" example:"García"`
	Language        string `json:"language,omitempty" example:"es"`
	CurrentPassword string `json:"current_password,omitempty" example:"P@ssw0rd"`
	NewPassword     string `json:"new_password,omitempty" example:"N3wP@ssw0rd"`
}

// ErrorDetail : детальная информация об ошибке
type ErrorDetail struct {
	Code int    `json:"code" example:"400"`
	Text string `json:"text" example:"for example: invalid email or password"`
}

// ErrorResponse : стандартная структура ошибки
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// SuccessResponse : стандартный ответ успешного выполнения операции
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}
