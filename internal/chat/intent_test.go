package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		msg  string
		want Intent
	}{
		{"greeting", "hola", IntentGreeting},
		{"greeting accented", "Holá!!", IntentGreeting},
		{"farewell", "chau, gracias", IntentFarewell},
		{"thanks is farewell", "muchas gracias", IntentFarewell},
		{"list movies", "que peliculas hay", IntentListMovies},
		{"list movies accented", "¿Qué PELÍCULAS dan?", IntentListMovies},
		{"billboard", "mostrame la cartelera", IntentListMovies},
		{"schedule", "a que hora empieza", IntentSchedule},
		{"schedule funciones", "funciones de hoy", IntentSchedule},
		{"prices", "cuanto vale la entrada de la funcion", IntentPrices},
		{"prices plain", "precio de las entradas", IntentPrices},
		{"reservation", "quiero reservar", IntentStartReservation},
		{"buy", "comprar entradas", IntentStartReservation},
		{"greeting beats schedule", "hola, que funciones hay", IntentGreeting},
		{"unknown", "xyzzy", IntentUnknown},
		{"admin word is not an intent", "agregar", IntentUnknown},
		{"empty", "", IntentUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.msg))
		})
	}
}

func TestIsAdminTrigger(t *testing.T) {
	assert.True(t, IsAdminTrigger("agregar"))
	assert.True(t, IsAdminTrigger("insertar datos"))
	assert.True(t, IsAdminTrigger("NUEVA"))
	assert.True(t, IsAdminTrigger("poner algo"))
	assert.False(t, IsAdminTrigger("hola"))
	assert.False(t, IsAdminTrigger(""))
}
