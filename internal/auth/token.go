/* JWT 토큰 생성 및 검증을 위한 유틸리티 */

package auth

import (
	"time"

	"HealthRiskPredictor/internal/apperr"

	"github.com/golang-jwt/jwt/v4"
)

// Claims 구조체 정의. sub 클레임에 사용자명이 들어감
type Claims struct {
	jwt.RegisteredClaims
}

// Issuer는 주입받은 키와 설정으로 토큰을 발급/검증함.
// 시스템에 유효한 신원은 subject 하나뿐임
type Issuer struct {
	key     []byte
	subject string
	ttl     time.Duration
}

func NewIssuer(secret, subject string, ttl time.Duration) *Issuer {
	return &Issuer{
		key:     []byte(secret),
		subject: subject,
		ttl:     ttl,
	}
}

// JWT 토큰 생성. 만료시각은 now + ttl
func (i *Issuer) GenerateToken(username string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "HealthRiskPredictor-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(i.key)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// JWT 토큰 검증. 서명, 만료, subject 세 가지를 모두 확인함
func (i *Issuer) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.key, nil
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.Auth, "invalid token", err)
	}
	// 만약을 위한 토큰 유효성 재검사
	if !token.Valid {
		return nil, apperr.Wrap(apperr.Auth, "invalid token", jwt.ErrTokenInvalidClaims)
	}
	if claims.Subject != i.subject {
		return nil, apperr.New(apperr.Auth, "invalid token subject")
	}
	return claims, nil
}
