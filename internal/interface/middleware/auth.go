package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
	"github.com/oksasatya/go-course-marketplace/pkg/response"
)

const (
	// TokenHeader carries the bearer token. It is not the Authorization header.
	TokenHeader = "token"

	CtxSubjectIDKey = "subjectID"
)

// TokenVerifier is satisfied by helpers.TokenIssuer.
type TokenVerifier interface {
	Verify(domain, token string) (string, error)
}

// Gate rejects requests whose token header does not verify in domain with
// 403 {"message":"invalid token"}. On success the subject id is stored
// under CtxSubjectIDKey.
func Gate(verifier TokenVerifier, domain entity.Domain) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			response.Error(c, http.StatusForbidden, "invalid token", "")
			return
		}
		subject, err := verifier.Verify(string(domain), token)
		if err != nil || subject == "" {
			response.Error(c, http.StatusForbidden, "invalid token", "")
			return
		}
		c.Set(CtxSubjectIDKey, subject)
		c.Next()
	}
}

func UserGate(verifier TokenVerifier) gin.HandlerFunc {
	return Gate(verifier, entity.DomainUser)
}

func AdminGate(verifier TokenVerifier) gin.HandlerFunc {
	return Gate(verifier, entity.DomainAdmin)
}

// SubjectID returns the identity attached by Gate.
func SubjectID(c *gin.Context) string {
	return c.GetString(CtxSubjectIDKey)
}
