package validation

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestToDetails(t *testing.T) {
	t.Run("validator errors become field messages", func(t *testing.T) {
		type sample struct {
			Email string `validate:"required,email"`
			Name  string `validate:"required"`
		}

		err := validator.New().Struct(sample{Email: "not-an-email"})
		require.Error(t, err)

		details := ToDetails(err)
		require.Equal(t, "must be a valid email", details["Email"])
		require.Equal(t, "is required", details["Name"])
	})

	t.Run("malformed json", func(t *testing.T) {
		var m map[string]any
		err := json.Unmarshal([]byte("{"), &m)
		require.Error(t, err)

		require.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
	})

	t.Run("nil error", func(t *testing.T) {
		require.Nil(t, ToDetails(nil))
	})
}
