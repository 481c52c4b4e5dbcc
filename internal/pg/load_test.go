package pg

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"zaslon/internal/norm"
)

// интеграционный тест: реальный Postgres в контейнере,
// схема + повторная загрузка (идемпотентность on conflict do nothing)
func TestLoadIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("интеграционный тест, требуется Docker")
	}

	ctx := context.Background()
	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("zaslon"),
		tcpostgres.WithUsername("zaslon"),
		tcpostgres.WithPassword("zaslon"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	defer func() { _ = ctr.Terminate(ctx) }()

	url, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := Open(url)
	require.NoError(t, err)
	defer db.Close()

	// DDL идемпотентный: второй прогон не должен падать
	require.NoError(t, EnsureSchema(db))
	require.NoError(t, EnsureSchema(db))

	core := norm.NewTable(norm.TableCore,
		"relay_id", "manufacturer", "model", "series", "relay_type",
		"voltage_class_kv", "frequency_hz", "config_date",
		"protected_transformer_id", "protected_feeder_id", "protected_load_id")
	core.Append(norm.Row{"relay_id": "R1", "manufacturer": "ABB", "frequency_hz": 60.0})

	cts := norm.NewTable(norm.TableCTs,
		"relay_id", "ct_id", "location", "phase",
		"primary_a", "secondary_a", "ratio", "class", "burden_va", "core_id")
	cts.Append(norm.Row{"relay_id": "R1", "ct_id": "CT-R1-01", "primary_a": 100.0, "secondary_a": 5.0, "ratio": 20.0})

	res := &norm.Result{Tables: []*norm.Table{core, cts}}

	// первая загрузка — всё вставилось
	ins, skip, err := LoadTable(ctx, db, core)
	require.NoError(t, err)
	assert.Equal(t, int64(1), ins)
	assert.Equal(t, int64(0), skip)

	ins, skip, err = LoadTable(ctx, db, cts)
	require.NoError(t, err)
	assert.Equal(t, int64(1), ins)

	// повторная загрузка того же набора — конфликт по PK, ничего не дублируем
	require.NoError(t, LoadAll(db, res))

	var n int
	require.NoError(t, db.QueryRow(`select count(*) from "relays_cts"`).Scan(&n))
	assert.Equal(t, 1, n)

	var ratio float64
	require.NoError(t, db.QueryRow(`select ratio from "relays_cts" where ct_id = 'CT-R1-01'`).Scan(&ratio))
	assert.Equal(t, 20.0, ratio)
}
