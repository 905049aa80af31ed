package dto

// LoginRequest — вход ревьюера консоли модерации.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest — обновление пары токенов.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// IntakeRequest — приём контента на проверку. reported_by может быть
// переопределён заголовком X-Verified-User (см. IdentityMiddleware).
type IntakeRequest struct {
	ParentType string `json:"parent_type" binding:"required"`
	PostID     string `json:"post_id"`
	CommentID  string `json:"comment_id"`
	ReplyID    string `json:"reply_id"`
	Content    string `json:"content" binding:"required"`
	Reason     string `json:"reason"`
	ReportedBy string `json:"reported_by"`
}

// DecisionRequest — решение ревьюера по flagged записи.
// Указатель, чтобы отличать пропущенное поле от false.
type DecisionRequest struct {
	Visible *bool `json:"visible" binding:"required"`
}

// CreateTriggerRequest — добавление триггерной фразы.
type CreateTriggerRequest struct {
	Word     string `json:"word" binding:"required"`
	Category string `json:"category"`
}
