package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if os.Getenv("DEBUG_TESTS") == "" {
		logrus.SetLevel(logrus.PanicLevel)
	}
	os.Exit(m.Run())
}

func TestDefaultCharacteristicsValidate(t *testing.T) {
	cfg := DefaultCharacteristics()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 2, cfg.PumpCount())
}

func TestLoadCharacteristics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plant.yaml")
	data := `
capacity: 500
minimalLimitLevel: 100
maximalLimitLevel: 450
minimalNormalLevel: 200
maximalNormalLevel: 300
maximumSteamRate: 8
pumpCapacities: [5, 5, 5]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadCharacteristics(path)
	require.NoError(t, err)
	assert.Equal(t, 500.0, cfg.Capacity)
	assert.Equal(t, 3, cfg.PumpCount())
	assert.Equal(t, 5.0, cfg.UniformPumpCapacity())
	assert.NoError(t, cfg.Validate())
}

func TestLoadCharacteristicsErrors(t *testing.T) {
	_, err := LoadCharacteristics(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading plant characteristics")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("capacity: {"), 0o644))
	_, err = LoadCharacteristics(path)
	assert.ErrorContains(t, err, "parsing plant characteristics")
}
