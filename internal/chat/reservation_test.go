package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectReservation(t *testing.T) {
	cases := []struct {
		msg  string
		want bool
	}{
		{"Fer Trucolo, fer@gmail.com, 4, 2", true},
		// Commas must be read off the raw text; text cleanup for keyword
		// matching drops them.
		{"¡Fer Trucolo, fer@gmail.com, 4, 2!", true},
		{"a@b, c", true},
		{"hola @, x", true},
		{"hola", false},
		{"fer@gmail.com", false},
		{"nombre, apellido", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DetectReservation(tc.msg), "message %q", tc.msg)
	}
}

func TestParseReservation(t *testing.T) {
	t.Run("valid line", func(t *testing.T) {
		req, err := ParseReservation("Fer Trucolo, fer@gmail.com, 4, 2")
		require.NoError(t, err)
		assert.Equal(t, "Fer Trucolo", req.Name)
		assert.Equal(t, "fer@gmail.com", req.Email)
		assert.Equal(t, int64(4), req.ShowingID)
		assert.Equal(t, int64(2), req.Quantity)
	})

	t.Run("extra fields ignored", func(t *testing.T) {
		req, err := ParseReservation("Fer, fer@gmail.com, 4, 2, algo mas")
		require.NoError(t, err)
		assert.Equal(t, int64(2), req.Quantity)
	})

	t.Run("errors", func(t *testing.T) {
		cases := []struct {
			name string
			msg  string
			want error
		}{
			{"too few fields", "Fer, fer@gmail.com", ErrReservationFormat},
			{"missing at sign", "Fer, feratgmail.com, 4, 2", ErrInvalidEmail},
			{"showing id not a number", "Fer, fer@gmail.com, abc, 2", ErrInvalidShowingID},
			{"quantity not a number", "Fer, fer@gmail.com, 4, dos", ErrInvalidQuantity},
			{"quantity zero", "Fer, fer@gmail.com, 4, 0", ErrInvalidQuantity},
			{"quantity negative", "Fer, fer@gmail.com, 4, -1", ErrInvalidQuantity},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := ParseReservation(tc.msg)
				assert.ErrorIs(t, err, tc.want)
			})
		}
	})
}
