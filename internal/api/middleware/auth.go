package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-MuseumService/internal/api/handlers"
)

const (
	msgMissingToken = "отсутствует токен авторизации"
	msgInvalidToken = "недействительный токен авторизации"
	msgForbidden    = "недостаточно прав для выполнения операции"
)

// AdminAuth проверяет Bearer JWT токен и требует роль admin
// Вешается только на пишущие ручки каталога
type AdminAuth struct {
	secret []byte
	logger Logger
}

func NewAdminAuth(secret string, logger Logger) *AdminAuth {
	return &AdminAuth{
		secret: []byte(secret),
		logger: logger,
	}
}

func (a *AdminAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			handlers.RespondError(w, http.StatusUnauthorized, msgMissingToken)
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			handlers.RespondError(w, http.StatusUnauthorized, msgInvalidToken)
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return a.secret, nil
		})
		if err != nil || !token.Valid {
			a.logger.Warn("[middleware.AdminAuth] Invalid token: path=%s, error=%v", r.URL.Path, err)
			handlers.RespondError(w, http.StatusUnauthorized, msgInvalidToken)
			return
		}

		role, _ := claims["role"].(string)
		if role != "admin" {
			a.logger.Warn("[middleware.AdminAuth] Forbidden: path=%s, role=%s", r.URL.Path, role)
			handlers.RespondError(w, http.StatusForbidden, msgForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
