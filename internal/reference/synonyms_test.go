package reference

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSynonyms(t *testing.T) {
	s := DefaultSynonyms()

	// несколько написаний на одно каноническое поле, регистр не важен
	assert.Equal(t, FieldPickupPU, s.Resolve("PickupPerUnit"))
	assert.Equal(t, FieldPickupPU, s.Resolve("pickup_pu"))
	assert.Equal(t, FieldPickupA, s.Resolve("PICKUPAMPS"))
	assert.Equal(t, FieldFullLoadCurrent, s.Resolve("fla"))
	assert.Equal(t, FieldMinTimeSeconds, s.Resolve("min_time"))
	assert.Equal(t, "", s.Resolve("Blocking"))
}

func TestLoadSynonymsOverlay(t *testing.T) {
	dir := t.TempDir()
	yml := `name: vendor-x
fields:
  - field: pickup_pu
    names: ["IPickup", "I>"]
  - field: time_dial
    names: ["TMS"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vendor_x.yaml"), []byte(yml), 0o644))

	s, err := LoadSynonyms(dir)
	require.NoError(t, err)

	// дефолты остаются, вендорские написания добавляются поверх
	assert.Equal(t, FieldPickupPU, s.Resolve("PickupPerUnit"))
	assert.Equal(t, FieldPickupPU, s.Resolve("ipickup"))
	assert.Equal(t, FieldTimeDial, s.Resolve("TMS"))
}

func TestLoadSynonymsMissingDirIsFine(t *testing.T) {
	s, err := LoadSynonyms("no/such/dir")
	require.NoError(t, err)
	assert.Equal(t, FieldTripClass, s.Resolve("TripClass"))
}
