package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empaque-api/pkg/config"
)

func TestPoolConfigFrom_DBFields(t *testing.T) {
	pc, err := poolConfigFrom(config.DBConfig{
		Host: "db.local", Port: 5433, User: "empaque", Password: "p@ss", DBName: "empaque", SSLMode: "disable", MaxConns: 7,
	})
	require.NoError(t, err)

	assert.Equal(t, "db.local", pc.ConnConfig.Host)
	assert.Equal(t, uint16(5433), pc.ConnConfig.Port)
	assert.Equal(t, "p@ss", pc.ConnConfig.Password)
	assert.Equal(t, int32(7), pc.MaxConns)
	assert.Equal(t, int32(1), pc.MinConns)
	assert.Equal(t, time.Hour, pc.MaxConnLifetime)
	assert.NotNil(t, pc.AfterConnect)
}

func TestPoolConfigFrom_DatabaseURL(t *testing.T) {
	pc, err := poolConfigFrom(config.DBConfig{
		DatabaseURL: "postgres://u:p@10.0.0.5:5432/planta?sslmode=disable",
		Host:        "ignorado",
	})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", pc.ConnConfig.Host)
	assert.Equal(t, "planta", pc.ConnConfig.Database)
	// sin DB_MAX_CONNS se conserva el valor por defecto de pgxpool
	assert.Positive(t, pc.MaxConns)
}

func TestPoolConfigFrom_DSNInvalido(t *testing.T) {
	_, err := poolConfigFrom(config.DBConfig{DatabaseURL: "postgres://u:p@host:notaport/db"})
	assert.Error(t, err)
}
