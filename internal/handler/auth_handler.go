/**
* Name: 			auth_handler.go
* Description: 		토큰 발급 핸들러
* Workflow: 		자격 증명 확인 후 JWT 발급
 */
package handler

import (
	"net/http"

	"HealthRiskPredictor/internal/auth"
	"HealthRiskPredictor/internal/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"bearer"`
}

// 토큰 발급을 담당하는 핸들러. 유효한 계정은 설정에 있는 한 쌍뿐임
type AuthHandler struct {
	username     string
	passwordHash []byte
	issuer       *auth.Issuer
}

// 설정된 비밀번호는 평문 비교 대신 기동 시 해싱해 두고 bcrypt로 비교함
func NewAuthHandler(cfg *config.Config, issuer *auth.Issuer) (*AuthHandler, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.APIPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthHandler{
		username:     cfg.APIUsername,
		passwordHash: hash,
		issuer:       issuer,
	}, nil
}

// Token godoc
// @Summary      토큰 발급 (Login)
// @Description  설정된 계정으로 로그인하고 60분짜리 Bearer 토큰을 발급받습니다.
// @Tags         Auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username formData string true "사용자명"
// @Param        password formData string true "비밀번호"
// @Success      200 {object} handler.TokenResponse
// @Failure      401 {object} handler.ErrorResponse "인증 실패 (자격 증명 오류)"
// @Failure      500 {object} handler.ErrorResponse "서버 내부 오류"
// @Router       /token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if username != h.username || bcrypt.CompareHashAndPassword(h.passwordHash, []byte(password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
		return
	}

	tokenString, err := h.issuer.GenerateToken(username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: tokenString, TokenType: "bearer"})
}
