package document

import (
	"testing"

	"github.com/MKhiriev/go-utils/merge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStrategies_FlatJSON(t *testing.T) {
	// Arrange
	p := writeTempFile(t, "strategies.json", `{
		"theme.colors.primary": "replace",
		"server.host": "safe",
		"plugins": "merge"
	}`)

	// Act
	table, unknown, err := LoadStrategies(p)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, unknown)
	assert.Equal(t, merge.StrategyTable{
		"theme.colors.primary": merge.StrategyReplace,
		"server.host":          merge.StrategySafe,
		"plugins":              merge.StrategyMerge,
	}, table)
}

func TestLoadStrategies_NestedTOML(t *testing.T) {
	// Arrange: вложенные таблицы TOML сворачиваются в dotted-пути
	p := writeTempFile(t, "strategies.toml", `
[theme.colors]
primary = "replace"

[server]
host = "safe"
`)

	// Act
	table, unknown, err := LoadStrategies(p)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, unknown)
	assert.Equal(t, merge.StrategyTable{
		"theme.colors.primary": merge.StrategyReplace,
		"server.host":          merge.StrategySafe,
	}, table)
}

func TestLoadStrategies_NestedJSON(t *testing.T) {
	// Arrange
	p := writeTempFile(t, "strategies.json", `{"a": {"b": {"c": "safe"}}}`)

	// Act
	table, _, err := LoadStrategies(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, merge.StrategyTable{"a.b.c": merge.StrategySafe}, table)
}

func TestLoadStrategies_UnknownTagsReported(t *testing.T) {
	// Arrange
	p := writeTempFile(t, "strategies.json", `{
		"a": "replace",
		"z.typo": "overwrite",
		"b.typo": "kepe"
	}`)

	// Act
	table, unknown, err := LoadStrategies(p)

	// Assert: unknown tags stay in the table, engine treats them as no-match
	require.NoError(t, err)
	assert.Equal(t, []string{"b.typo", "z.typo"}, unknown)
	assert.Equal(t, merge.Strategy("overwrite"), table["z.typo"])
	assert.Equal(t, merge.StrategyReplace, table["a"])
}

func TestLoadStrategies_NonStringLeaf(t *testing.T) {
	// Arrange
	p := writeTempFile(t, "strategies.json", `{"a": 42}`)

	// Act
	_, _, err := LoadStrategies(p)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), `strategy entry "a"`)
}

func TestLoadStrategies_FileNotFound(t *testing.T) {
	_, _, err := LoadStrategies("missing.json")
	require.Error(t, err)
}

func TestLoadStrategies_EmptyTable(t *testing.T) {
	// Arrange
	p := writeTempFile(t, "strategies.json", `{}`)

	// Act
	table, unknown, err := LoadStrategies(p)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, table)
	assert.Empty(t, unknown)
}
