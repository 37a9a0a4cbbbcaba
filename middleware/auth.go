package middleware

import (
	"net/http"
	"strings"

	"MindMirrorGo/config"
	"MindMirrorGo/models"
	"MindMirrorGo/services"
	"MindMirrorGo/utils"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID = "uid"
	ctxClaims = "claims"
)

// SessionMiddleware 解析 Bearer 令牌。没有令牌或令牌无效时按匿名请求继续处理，
// 需要登录的接口再配合 RequireSession 使用。
func SessionMiddleware(issuer *utils.TokenIssuer, revocations services.RevocationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			c.Next()
			return
		}

		// 解析 JWT
		claims, err := issuer.ParseToken(tokenString)
		if err != nil {
			config.Logger.Debugw("忽略无效令牌", "error", err)
			c.Next()
			return
		}

		revoked, err := revocations.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			config.Logger.Errorw("查询令牌吊销状态失败", "error", err)
			c.Next()
			return
		}
		if revoked {
			c.Next()
			return
		}

		// 将 uid 存储在 gin.Context 中
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxClaims, claims)
		c.Next()
	}
}

// RequireSession 未登录时返回 401
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUserID(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.MessageResponse{Message: "User not authenticated"})
			return
		}
		c.Next()
	}
}

// CurrentUserID 当前会话的用户ID
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return 0, false
	}
	uid, ok := v.(uint)
	return uid, ok && uid != 0
}

// CurrentClaims 当前会话的令牌声明
func CurrentClaims(c *gin.Context) (*utils.Claims, bool) {
	v, ok := c.Get(ctxClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.Claims)
	return claims, ok
}
