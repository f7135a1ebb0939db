package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nst-sdc/nst-events-sub001/internal/api/handler/v1/response"
	"github.com/nst-sdc/nst-events-sub001/internal/domain"
	"github.com/nst-sdc/nst-events-sub001/internal/pkg/jwthelper"
)

const (
	ContextKeyUserID = "user_id"
	ContextKeyRole   = "user_role"
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT rejects requests without a valid bearer token and stashes the
// principal's ID and role in the request context.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			response.RenderErr(ctx, response.ErrMissingCredentials(errors.New("missing Authorization header")))
			ctx.Abort()
			return
		}

		if !strings.HasPrefix(header, "Bearer ") {
			response.RenderErr(ctx, response.ErrMissingCredentials(errors.New("invalid Authorization header format")))
			ctx.Abort()
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.RenderErr(ctx, response.ErrMissingCredentials(fmt.Errorf("jwthelper.ParseToken -> %w", err)))
			ctx.Abort()
			return
		}

		ctx.Set(ContextKeyUserID, claims.UserID)
		ctx.Set(ContextKeyRole, domain.Role(claims.Role))

		ctx.Next()
	}
}

// ApprovalGate loads the fresh approval state of a participant. The flag
// lives in the database rather than the token, so revoking approval (or
// granting it) takes effect on the next request.
type ApprovalGate interface {
	GetParticipant(ctx context.Context, userID uint) (domain.Participant, error)
}

// RequireGroup gates a route group with the static access table. A valid
// credential with the wrong role is Forbidden, never silently allowed.
func RequireGroup(group domain.RouteGroup, gate ApprovalGate) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, role, ok := PrincipalFromContext(ctx)
		if !ok {
			response.RenderErr(ctx, response.ErrMissingCredentials(errors.New("no authenticated principal")))
			ctx.Abort()
			return
		}

		approved := false
		if role == domain.RoleParticipant && group == domain.GroupParticipantRestricted {
			participant, err := gate.GetParticipant(ctx.Request.Context(), userID)
			if err != nil {
				response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("gate.GetParticipant -> %w", err)))
				ctx.Abort()
				return
			}
			approved = participant.Approved
		}

		if !domain.CanAccess(role, approved, group) {
			response.RenderErr(ctx, response.ErrPermissionDenied(
				fmt.Errorf("role %v may not access %v routes", role, group)))
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}

// PrincipalFromContext extracts the authenticated user set by VerifyJWT.
func PrincipalFromContext(ctx *gin.Context) (userID uint, role domain.Role, ok bool) {
	rawID, exists := ctx.Get(ContextKeyUserID)
	if !exists {
		return 0, "", false
	}
	userID, ok = rawID.(uint)
	if !ok {
		return 0, "", false
	}

	rawRole, exists := ctx.Get(ContextKeyRole)
	if !exists {
		return 0, "", false
	}
	role, ok = rawRole.(domain.Role)
	if !ok {
		return 0, "", false
	}

	return userID, role, true
}
