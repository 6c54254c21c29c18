package persistence_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacerush-go/internal/adapters/content"
	"github.com/andrescamacho/spacerush-go/internal/adapters/persistence"
	"github.com/andrescamacho/spacerush-go/internal/application/game"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
)

func compileSaveSchema(t *testing.T) *jsonschema.Schema {
	t.Helper()
	schema, err := jsonschema.Compile(filepath.Join("testdata", "save.schema.json"))
	require.NoError(t, err)
	return schema
}

func validatePayload(t *testing.T, schema *jsonschema.Schema, payload []byte) {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal(payload, &v))
	require.NoError(t, schema.Validate(v))
}

func TestSaveSchema_FreshWorld(t *testing.T) {
	// Arrange
	schema := compileSaveSchema(t)
	path := filepath.Join(t.TempDir(), "save.json")
	store := persistence.NewFileStore(path, persistence.NewCodec(persistence.CompressionNone))
	g, err := game.New(content.MustDefault(), game.Dependencies{
		Store:  store,
		Clock:  shared.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)),
		Random: &shared.FixedRandom{},
	}, game.DefaultOptions())
	require.NoError(t, err)

	// Act
	require.True(t, g.Shutdown(context.Background()))

	// Assert
	payload, err := persistence.NewCodec(persistence.CompressionNone).Encode(g.Capture())
	require.NoError(t, err)
	validatePayload(t, schema, payload)
}

func TestSaveSchema_SampleDocument(t *testing.T) {
	schema := compileSaveSchema(t)

	payload, err := persistence.NewCodec(persistence.CompressionNone).Encode(sampleDocument(42))

	require.NoError(t, err)
	validatePayload(t, schema, payload)
}
