package home

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mem1979/StaEnTurno-AntyGravity/internal/api"
	"github.com/mem1979/StaEnTurno-AntyGravity/internal/attendance"
	"github.com/mem1979/StaEnTurno-AntyGravity/internal/session"
)

const profileJSON = `{"usuario":"jdoe","turnoActivoHoy":"Turno mañana","nombreCompleto":"Jane Doe","aceptaPausa":true}`

func newHome(t *testing.T, label string) string {
	t.Helper()
	homeDir := t.TempDir()
	require.NoError(t, session.Write(homeDir, &session.Session{Token: "tok-1", AttendanceState: label}))
	return homeDir
}

func serve(t *testing.T, profileStatus int, todayStatus int, todayBody string) *api.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/me":
			if profileStatus != http.StatusOK {
				w.WriteHeader(profileStatus)
				return
			}
			_, _ = w.Write([]byte(profileJSON))
		case "/asistencia/hoy":
			if todayStatus != http.StatusOK {
				w.WriteHeader(todayStatus)
				return
			}
			_, _ = w.Write([]byte(todayBody))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL)
}

func TestLoadWithoutToken(t *testing.T) {
	client := serve(t, http.StatusOK, http.StatusOK, `{}`)

	_, err := Load(context.Background(), client, t.TempDir())
	assert.ErrorIs(t, err, api.ErrUnauthenticated)
}

func TestLoadProfileFailureIsFatal(t *testing.T) {
	homeDir := newHome(t, "")
	client := serve(t, http.StatusInternalServerError, http.StatusOK, `{}`)

	snap, err := Load(context.Background(), client, homeDir)

	assert.Nil(t, snap)
	var pe *ProfileError
	require.ErrorAs(t, err, &pe)
	var se *api.ServerError
	assert.ErrorAs(t, err, &se)
}

func TestLoadFactsFailureKeepsProfile(t *testing.T) {
	homeDir := newHome(t, "")
	client := serve(t, http.StatusOK, http.StatusBadGateway, "")

	snap, err := Load(context.Background(), client, homeDir)

	var ae *AttendanceError
	require.ErrorAs(t, err, &ae)
	require.NotNil(t, snap, "profile data already fetched must remain visible")
	assert.Equal(t, "Jane Doe", snap.FullName)
	assert.Equal(t, "Turno mañana", snap.ActiveShift)
	assert.True(t, snap.BreaksPermitted)
}

func TestLoadDerivesAndPersistsState(t *testing.T) {
	homeDir := newHome(t, "PAUSED")
	client := serve(t, http.StatusOK, http.StatusOK,
		`{"fecha":"2026-08-31","yaFichoEntrada":true,"horaEntrada":"09:00"}`)

	snap, err := Load(context.Background(), client, homeDir)

	require.NoError(t, err)
	assert.Equal(t, attendance.Paused, snap.State, "persisted label recovers the break")

	sess, err := session.Read(homeDir)
	require.NoError(t, err)
	assert.Equal(t, "PAUSED", sess.AttendanceState)
}

func TestLoadBackendFactsOverrideStaleLabel(t *testing.T) {
	homeDir := newHome(t, "PAUSED")
	client := serve(t, http.StatusOK, http.StatusOK,
		`{"fecha":"2026-08-31","yaFichoEntrada":true,"horaEntrada":"09:00","yaFichoSalida":true,"horaSalida":"17:30"}`)

	snap, err := Load(context.Background(), client, homeDir)

	require.NoError(t, err)
	assert.Equal(t, attendance.Finished, snap.State)
	assert.Equal(t, "8h 30m", snap.WorkedDuration)

	sess, err := session.Read(homeDir)
	require.NoError(t, err)
	assert.Equal(t, "FINISHED", sess.AttendanceState, "reload re-persists the derived state")
}

func TestLoadMalformedTimesLeaveDurationUnavailable(t *testing.T) {
	homeDir := newHome(t, "")
	client := serve(t, http.StatusOK, http.StatusOK,
		`{"fecha":"2026-08-31","yaFichoEntrada":true,"horaEntrada":"9am","yaFichoSalida":true,"horaSalida":"17:30"}`)

	snap, err := Load(context.Background(), client, homeDir)

	require.NoError(t, err)
	assert.Equal(t, attendance.Finished, snap.State)
	assert.Empty(t, snap.WorkedDuration)
}

func TestLoadFreshDay(t *testing.T) {
	homeDir := newHome(t, "FINISHED") // yesterday's label
	client := serve(t, http.StatusOK, http.StatusOK,
		`{"fecha":"2026-09-01","esFeriado":true,"descripcionFeriado":"Feriado"}`)

	snap, err := Load(context.Background(), client, homeDir)

	require.NoError(t, err)
	assert.Equal(t, attendance.NotStarted, snap.State, "backend facts win over yesterday's label")
	assert.True(t, snap.Facts.Holiday)
}
