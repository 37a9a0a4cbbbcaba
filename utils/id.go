package utils

import (
	"github.com/google/uuid"
)

// GenerateID 请求ID与令牌ID
func GenerateID() string {
	return uuid.New().String()
}
