package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfig_Addr(t *testing.T) {
	app := AppConfig{Port: 8080}
	assert.Equal(t, ":8080", app.Addr())
}

func TestWorkdayConfig_BaselineCheckInTime(t *testing.T) {
	w := WorkdayConfig{BaselineCheckIn: "08:30"}
	hour, minute := w.BaselineCheckInTime()
	assert.Equal(t, 8, hour)
	assert.Equal(t, 30, minute)
}

func TestWorkdayConfig_BaselineCheckInTimeFallsBack(t *testing.T) {
	w := WorkdayConfig{BaselineCheckIn: "not-a-time"}
	hour, minute := w.BaselineCheckInTime()
	assert.Equal(t, 9, hour)
	assert.Equal(t, 0, minute)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		JWT: JWTConfig{
			Secret:            "secret",
			AccessExpiration:  "1h",
			RefreshExpiration: "168h",
		},
		Workday: WorkdayConfig{BaselineCheckIn: "09:00"},
	}
	require.NoError(t, valid.Validate())

	missingSecret := valid
	missingSecret.JWT.Secret = ""
	assert.Error(t, missingSecret.Validate())

	badExpiration := valid
	badExpiration.JWT.AccessExpiration = "soon"
	assert.Error(t, badExpiration.Validate())

	badBaseline := valid
	badBaseline.Workday.BaselineCheckIn = "25:99"
	assert.Error(t, badBaseline.Validate())
}

func TestLoadUsesDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "09:00", cfg.Workday.BaselineCheckIn)
	assert.Equal(t, 5*time.Minute, cfg.Workday.PendingRefreshInterval)
}
