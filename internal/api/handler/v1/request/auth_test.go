package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequest_Validate(t *testing.T) {
	valid := SignupRequest{
		Email:           "ada@example.com",
		Password:        "password1",
		ConfirmPassword: "password1",
		Name:            "Ada",
	}

	t.Run("valid request", func(t *testing.T) {
		req := valid

		assert.NoError(t, req.Validate())
	})

	t.Run("invalid email", func(t *testing.T) {
		req := valid
		req.Email = "not-an-email"

		assert.Error(t, req.Validate())
	})

	t.Run("password without a digit", func(t *testing.T) {
		req := valid
		req.Password = "passwordonly"
		req.ConfirmPassword = "passwordonly"

		assert.ErrorIs(t, req.Validate(), errInvalidPassword)
	})

	t.Run("password too short", func(t *testing.T) {
		req := valid
		req.Password = "pass1"
		req.ConfirmPassword = "pass1"

		assert.ErrorIs(t, req.Validate(), errInvalidPassword)
	})

	t.Run("confirm password mismatch", func(t *testing.T) {
		req := valid
		req.ConfirmPassword = "password2"

		assert.ErrorIs(t, req.Validate(), errConfirmPasswordMismatch)
	})
}
