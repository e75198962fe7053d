package telemetry_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/Bl4ckspell7/asusctl-gui/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func newTestCollector(t *testing.T) (telemetry.Collector, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "telemetry.db")

	collector, err := telemetry.NewService(telemetry.Config{DBPath: dbPath})
	require.NoError(t, err)
	t.Cleanup(func() { _ = collector.Close() })

	return collector, dbPath
}

func TestNewService_InvalidConfig(t *testing.T) {
	_, err := telemetry.NewService(telemetry.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "telemetry_invalid")
}

func TestRecord_NilSnapshot(t *testing.T) {
	collector, _ := newTestCollector(t)

	err := collector.Record(context.Background(), nil)
	require.Error(t, err)
}

func TestRecord_StoresSnapshot(t *testing.T) {
	collector, dbPath := newTestCollector(t)

	snapshot := &telemetry.StateSnapshot{
		Timestamp: time.Unix(1700000000, 0),
		Profile: telemetry.ProfileSample{
			Active:    "Quiet",
			OnAC:      "Balanced",
			OnBattery: "Quiet",
		},
		Keyboard: telemetry.KeyboardSample{Brightness: "high"},
		Charge:   telemetry.ChargeSample{Limit: 80},
		Slash: telemetry.SlashSample{
			Enabled:    true,
			Brightness: 128,
			Interval:   2,
			Mode:       "Flow",
		},
	}
	require.NoError(t, collector.Record(context.Background(), snapshot))

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var (
		activeProfile string
		chargeLimit   int
		slashEnabled  int
		slashMode     string
	)
	row := db.QueryRow(`SELECT active_profile, charge_limit, slash_enabled, slash_mode FROM snapshots WHERE timestamp = ?`, 1700000000)
	require.NoError(t, row.Scan(&activeProfile, &chargeLimit, &slashEnabled, &slashMode))

	assert.Equal(t, "Quiet", activeProfile)
	assert.Equal(t, 80, chargeLimit)
	assert.Equal(t, 1, slashEnabled)
	assert.Equal(t, "Flow", slashMode)
}

func TestRecord_UpsertsOnSameTimestamp(t *testing.T) {
	collector, dbPath := newTestCollector(t)

	ts := time.Unix(1700000001, 0)
	first := &telemetry.StateSnapshot{Timestamp: ts, Charge: telemetry.ChargeSample{Limit: 60}}
	second := &telemetry.StateSnapshot{Timestamp: ts, Charge: telemetry.ChargeSample{Limit: 100}}

	require.NoError(t, collector.Record(context.Background(), first))
	require.NoError(t, collector.Record(context.Background(), second))

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var count, limit int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM snapshots`).Scan(&count))
	require.NoError(t, db.QueryRow(`SELECT charge_limit FROM snapshots WHERE timestamp = ?`, ts.Unix()).Scan(&limit))

	assert.Equal(t, 1, count)
	assert.Equal(t, 100, limit)
}

func TestRecord_CanceledContext(t *testing.T) {
	collector, _ := newTestCollector(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := collector.Record(ctx, &telemetry.StateSnapshot{Timestamp: time.Now()})
	require.Error(t, err)
}
