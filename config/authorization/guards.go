package authorization

import "github.com/gin-gonic/gin"

// Guards builds the middleware chains routes are registered with.
type Guards struct {
	authn gin.HandlerFunc
	// LegacyOpen leaves the historically unauthenticated routes open.
	LegacyOpen bool
}

func NewGuards(authn gin.HandlerFunc, legacyOpen bool) Guards {
	return Guards{authn: authn, LegacyOpen: legacyOpen}
}

// Require authenticates the caller and, when roles are given, checks the
// caller holds one of them.
func (g Guards) Require(roles ...string) []gin.HandlerFunc {
	chain := []gin.HandlerFunc{g.authn}
	if len(roles) > 0 {
		chain = append(chain, Authorize(roles...))
	}
	return chain
}

// Legacy guards a route that used to be served without authentication. In
// legacy-open mode the chain is empty.
func (g Guards) Legacy(roles ...string) []gin.HandlerFunc {
	if g.LegacyOpen {
		return nil
	}
	return g.Require(roles...)
}
