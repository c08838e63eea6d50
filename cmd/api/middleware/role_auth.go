package middleware

import (
	"net/http"

	"promptdeck/cmd/api/auth"
	"promptdeck/config"

	"github.com/gin-gonic/gin"
)

// RequireRoles 는 요청 헤더의 JWT를 검증하고, 역할이 허용 목록과 교차하는지 확인합니다.
// allowed 가 비어 있으면 인증만 요구하고 역할 검사는 건너뜁니다.
func RequireRoles(manager *auth.JWTManager, allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		userID, roles, err := manager.Parse(token)
		if err != nil {
			config.Logger.Warnf("token parse error: %v", err)
			auth.AbortWithUnauthorized(c, err)
			return
		}

		if len(allowed) > 0 && !auth.HasAnyRole(roles, allowed...) {
			config.Logger.Warnf("access denied: user %s has roles %v, want one of %v", userID, roles, allowed)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden_insufficient_permissions"})
			return
		}

		// 컨텍스트에 사용자 정보 저장
		c.Set("user_id", userID)
		c.Set("roles", roles)

		c.Next()
	}
}
