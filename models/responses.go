package models

// ErrorResponse 上游生成失败或配置缺失时的错误响应
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// MessageResponse 校验失败、未登录等场景的响应
type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessResponse 同步、登出等操作的响应
type SuccessResponse struct {
	Success bool `json:"success"`
}

// AuthResponse 注册与登录的响应
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
