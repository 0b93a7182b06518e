package authorization

import (
	"strings"

	"MediBook/config/jwt"
	"MediBook/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ClaimsKey is the gin context key holding *jwt.Claims after JWTAuth.
const ClaimsKey = "claims"

/*
* Read bearer token from Authorization header
* Abort with 401 if it is missing, badly signed or expired
* Put the decoded claims in the context
 */
func JWTAuth(issuer *jwt.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			abort(c, util.AuthError(util.NO_TOKEN))
			return
		}
		claims, err := issuer.ParseJWT(raw)
		if err != nil {
			log.Debug().Err(err).Str("path", c.FullPath()).Msg("rejected token")
			abort(c, util.AuthError(util.TOKEN_NOT_VALID))
			return
		}
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// Authorize must run after JWTAuth. It aborts with 403 unless the caller's
// role is one of roles.
func Authorize(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := ClaimsFrom(c)
		if err := HasRole(claims, roles...); err != nil {
			abort(c, err)
			return
		}
		c.Next()
	}
}

// HasRole is the authorization predicate: it succeeds iff claims carry a
// role contained in allowed.
func HasRole(claims *jwt.Claims, allowed ...string) error {
	if claims == nil || claims.Role == "" {
		return util.ForbiddenError(util.FORBIDDEN)
	}
	for _, r := range allowed {
		if claims.Role == r {
			return nil
		}
	}
	return util.ForbiddenError(util.FORBIDDEN)
}

func ClaimsFrom(c *gin.Context) (*jwt.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	return claims, ok
}

func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(util.StatusOf(err), util.FailedResponse(err))
}
