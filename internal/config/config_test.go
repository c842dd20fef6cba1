package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
year: 2027
month: 2
people:
  - Anna
  - Marco
  - Luca
  - Sofia
rooms:
  - Bagno
  - Cucina
  - Veranda
  - Corridoio
absences:
  - person: Anna
    from: "2027-02-03"
    to: "2027-02-05"
  - person: Marco
    rrule: "FREQ=WEEKLY;BYDAY=TU"
firstWeek:
  priority:
    - Cucina
  excluded:
    - person: Luca
      rooms:
        - Bagno
algorithm:
  balanceWeight: 0.5
  dayDistributionWeight: 0.3
  qualityWeight: 0.2
  avoidWeekend: true
  dailyCap: 3
  relaxations:
    - rotation
    - day_spread
    - daily_cap
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spazzapp_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromPath(t *testing.T) {
	cfg, err := LoadFromPath(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, 2027, cfg.Year)
	assert.Equal(t, 2, cfg.Month)
	assert.Equal(t, []string{"Anna", "Marco", "Luca", "Sofia"}, cfg.People)
	assert.Equal(t, []string{"Bagno", "Cucina", "Veranda", "Corridoio"}, cfg.Rooms)

	require.Len(t, cfg.Absences, 2)
	assert.Equal(t, "2027-02-03", cfg.Absences[0].From)
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=TU", cfg.Absences[1].RRule)

	assert.Equal(t, []string{"Cucina"}, cfg.FirstWeek.Priority)
	require.Len(t, cfg.FirstWeek.Excluded, 1)
	assert.Equal(t, "Luca", cfg.FirstWeek.Excluded[0].Person)

	assert.InDelta(t, 0.5, cfg.Algorithm.BalanceWeight, 1e-9)
	require.NotNil(t, cfg.Algorithm.AvoidWeekend)
	assert.True(t, *cfg.Algorithm.AvoidWeekend)
	assert.Equal(t, []string{"rotation", "day_spread", "daily_cap"}, cfg.Algorithm.Relaxations)
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadFromPath_MalformedYAML(t *testing.T) {
	_, err := LoadFromPath(writeConfig(t, "year: [not closed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	_, err := LoadFromPath(writeConfig(t, `
year: 2027
month: 2
people:
  - Anna
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestValidate_MonthOutOfRange(t *testing.T) {
	_, err := LoadFromPath(writeConfig(t, `
year: 2027
month: 13
people: [Anna]
rooms: [Bagno]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestValidate_BadDateFormat(t *testing.T) {
	_, err := LoadFromPath(writeConfig(t, `
year: 2027
month: 2
people: [Anna]
rooms: [Bagno]
absences:
  - person: Anna
    from: "03/02/2027"
    to: "2027-02-05"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestValidate_AbsenceWithoutRangeOrRule(t *testing.T) {
	_, err := LoadFromPath(writeConfig(t, `
year: 2027
month: 2
people: [Anna]
rooms: [Bagno]
absences:
  - person: Anna
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs either a from/to range or an rrule")
}

func TestValidate_BadRRule(t *testing.T) {
	_, err := LoadFromPath(writeConfig(t, `
year: 2027
month: 2
people: [Anna]
rooms: [Bagno]
absences:
  - person: Anna
    rrule: "FREQ=SOMETIMES"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule")
}

func TestValidate_UnknownPersonInAbsence(t *testing.T) {
	_, err := LoadFromPath(writeConfig(t, `
year: 2027
month: 2
people: [Anna]
rooms: [Bagno]
absences:
  - person: Giovanni
    rrule: "FREQ=WEEKLY;BYDAY=TU"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown person "Giovanni"`)
}

func TestValidate_UnknownRoomInExclusion(t *testing.T) {
	_, err := LoadFromPath(writeConfig(t, `
year: 2027
month: 2
people: [Anna]
rooms: [Bagno]
firstWeek:
  excluded:
    - person: Anna
      rooms: [Piscina]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown room "Piscina"`)
}

func TestValidate_UnknownRoomInPriority(t *testing.T) {
	_, err := LoadFromPath(writeConfig(t, `
year: 2027
month: 2
people: [Anna]
rooms: [Bagno]
firstWeek:
  priority: [Piscina]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown room "Piscina"`)
}

func TestValidate_WeightsSumOverOne(t *testing.T) {
	_, err := LoadFromPath(writeConfig(t, `
year: 2027
month: 2
people: [Anna]
rooms: [Bagno]
algorithm:
  balanceWeight: 0.6
  dayDistributionWeight: 0.3
  qualityWeight: 0.3
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not exceed 1.0")
}

func TestValidate_UnknownRelaxationStep(t *testing.T) {
	_, err := LoadFromPath(writeConfig(t, `
year: 2027
month: 2
people: [Anna]
rooms: [Bagno]
algorithm:
  relaxations: [wishful_thinking]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestLoad_FindsFileInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "spazzapp_config.yaml"), []byte(validYAML), 0o644))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2027, cfg.Year)
}
