package controllers

import (
	"errors"
	"net/http"
	"time"

	"MindMirrorGo/config"
	"MindMirrorGo/middleware"
	"MindMirrorGo/models"
	"MindMirrorGo/services"
	"MindMirrorGo/storage"
	"MindMirrorGo/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthController 认证控制器
type AuthController struct {
	store       storage.Storage
	issuer      *utils.TokenIssuer
	revocations services.RevocationStore
}

func NewAuthController(store storage.Storage, issuer *utils.TokenIssuer, revocations services.RevocationStore) *AuthController {
	return &AuthController{store: store, issuer: issuer, revocations: revocations}
}

// Register 用户名密码注册，成功后直接登录
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	req.Normalize()

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		config.Logger.Errorw("密码加密失败", "error", err)
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to create user"})
		return
	}

	user := models.User{
		Username: req.Username,
		Password: string(hash),
		Name:     req.Name,
		Language: languageOrDefault(req.Language),
	}
	if err := ac.store.CreateUser(c.Request.Context(), &user); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			c.JSON(http.StatusConflict, models.MessageResponse{Message: "Username already exists"})
			return
		}
		config.Logger.Errorw("用户创建失败", "error", err, "username", req.Username)
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to create user"})
		return
	}
	config.Logger.Infow("用户创建成功", "userID", user.ID)

	ac.respondWithToken(c, http.StatusCreated, user)
}

func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	req.Normalize()

	user, err := ac.store.GetUserByUsername(c.Request.Context(), req.Username)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		config.Logger.Errorw("查询用户失败", "error", err)
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to log in"})
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, models.MessageResponse{Message: "Invalid username or password"})
		return
	}

	ac.respondWithToken(c, http.StatusOK, *user)
}

// Logout 吊销当前令牌直到其过期
func (ac *AuthController) Logout(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.MessageResponse{Message: "User not authenticated"})
		return
	}

	ttl := ac.issuer.TTL()
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if err := ac.revocations.Revoke(c.Request.Context(), claims.ID, ttl); err != nil {
		config.Logger.Errorw("登出失败", "userID", claims.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to log out"})
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

// Me 当前用户信息
func (ac *AuthController) Me(c *gin.Context) {
	uid, _ := middleware.CurrentUserID(c)
	user, err := ac.store.GetUser(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, models.MessageResponse{Message: "User not authenticated"})
			return
		}
		config.Logger.Errorw("查询用户失败", "userID", uid, "error", err)
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to fetch user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ac *AuthController) respondWithToken(c *gin.Context, status int, user models.User) {
	token, _, err := ac.issuer.GenerateToken(user.ID)
	if err != nil {
		config.Logger.Errorw("令牌生成失败", "userID", user.ID, "error", err)
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to generate token"})
		return
	}
	c.JSON(status, models.AuthResponse{Token: token, User: user})
}
