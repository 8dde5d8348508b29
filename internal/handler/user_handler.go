/**
* Name: 			user_handler.go
* Description: 		회원가입, 로그인, 프로필 핸들러
* Workflow: 		signup/login 성공 시 JWT 발급, 프로필은 Bearer 토큰으로 조회/수정
 */
package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/depu2006/CareerGenomeai/internal/auth"
	"github.com/depu2006/CareerGenomeai/internal/middleware"
	"github.com/depu2006/CareerGenomeai/internal/models"
	"github.com/depu2006/CareerGenomeai/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// /api/auth/signup 요청 바디
type SignupRequest struct {
	Name     string `json:"name" example:"Gildong Hong"`
	Email    string `json:"email" example:"gildong@example.com"`
	Password string `json:"password" example:"password123"`
}

// /api/auth/login 요청 바디
type LoginRequest struct {
	Email    string `json:"email" example:"gildong@example.com"`
	Password string `json:"password" example:"password123"`
}

type AuthResponse struct {
	Token string            `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User  models.PublicUser `json:"user"`
}

func (h *Handler) issue(c *gin.Context, user *models.User) {
	token, err := h.Tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		h.Log.Error("failed to generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, AuthResponse{Token: token, User: user.Public()})
}

// Signup godoc
// @Summary      회원가입 (Signup)
// @Description  새로운 사용자 계정을 생성하고 JWT 토큰을 발급합니다.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body handler.SignupRequest true "회원가입 요청 정보"
// @Success      200 {object} handler.AuthResponse
// @Failure      400 {object} handler.MessageResponse "필수 항목 누락 또는 중복 이메일"
// @Failure      503 {object} handler.MessageResponse "DB 사용 불가"
// @Router       /api/auth/signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	_ = bindOptionalJSON(c, &req)
	// " "으로 입력되는 케이스 방지
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Missing fields"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to hash password"})
		return
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
		Profile:      map[string]any{},
	}
	if err := h.Store.CreateUser(c.Request.Context(), user); err != nil {
		switch {
		case errors.Is(err, storage.ErrEmailExists):
			c.JSON(http.StatusBadRequest, gin.H{"msg": "User already exists"})
		case errors.Is(err, storage.ErrUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"msg": "Database unavailable"})
		default:
			h.Log.Error("failed to create user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to create user"})
		}
		return
	}
	h.issue(c, user)
}

// Login godoc
// @Summary      로그인 (Login)
// @Description  이메일과 비밀번호로 로그인하고 JWT 토큰을 발급받습니다.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body handler.LoginRequest true "로그인 요청 정보"
// @Success      200 {object} handler.AuthResponse
// @Failure      401 {object} handler.MessageResponse "인증 실패 (자격 증명 오류)"
// @Failure      503 {object} handler.MessageResponse "DB 사용 불가"
// @Router       /api/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	_ = bindOptionalJSON(c, &req)
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Invalid credentials"})
		return
	}

	user, err := h.Store.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Invalid credentials"})
			return
		}
		h.Log.Error("failed to load user", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"msg": "Database unavailable"})
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Invalid credentials"})
		return
	}
	h.issue(c, user)
}

// GetProfile godoc
// @Summary      프로필 조회 (Profile)
// @Description  인증된 사용자의 프로필 맵을 조회합니다. 설정되지 않았으면 빈 객체를 반환합니다.
// @Tags         User
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} handler.MessageResponse "토큰 누락 또는 유효하지 않은 토큰"
// @Router       /api/user/profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	user, err := h.Store.GetUserByID(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Invalid token"})
			return
		}
		if errors.Is(err, storage.ErrUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"msg": "Database unavailable"})
			return
		}
		h.Log.Error("failed to load profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to load profile"})
		return
	}
	profile := user.Profile
	if profile == nil {
		profile = map[string]any{}
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary      프로필 수정
// @Description  요청 바디의 JSON 객체로 프로필 전체를 교체합니다.
// @Tags         User
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body object true "새 프로필"
// @Success      200 {object} handler.MessageResponse
// @Failure      400 {object} handler.MessageResponse
// @Failure      401 {object} handler.MessageResponse
// @Router       /api/user/profile [post]
func (h *Handler) UpdateProfile(c *gin.Context) {
	var profile map[string]any
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid profile"})
		return
	}
	if profile == nil {
		profile = map[string]any{}
	}
	if err := h.Store.UpdateProfile(c.Request.Context(), c.GetString(middleware.CtxUserID), profile); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Invalid token"})
			return
		}
		h.Log.Error("failed to update profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Profile updated"})
}
