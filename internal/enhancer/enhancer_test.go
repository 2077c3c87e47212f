package enhancer

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnhance(t *testing.T) {
	enh := New(DefaultTables())

	t.Run("parameter-derived suggestion", func(t *testing.T) {
		result := map[string]any{"message": "created"}
		out := enh.Enhance(result, "", map[string]any{"ownerId": "7"}, "")
		require.Contains(t, out, "suggestions")
		assert.Contains(t, out["suggestions"], "hubspotSearchOwners")
	})

	t.Run("no matching table leaves result untouched", func(t *testing.T) {
		result := map[string]any{"message": "done"}
		out := enh.Enhance(result, "unknown-op", map[string]any{"unknownParam": 1}, "")
		assert.NotContains(t, out, "suggestions")
		assert.Equal(t, result, out)
	})

	t.Run("input map is never mutated", func(t *testing.T) {
		result := map[string]any{"message": "ok"}
		_ = enh.Enhance(result, "create", nil, "hubspotContacts")
		assert.NotContains(t, result, "suggestions")
	})

	t.Run("collection order is param then operation then domain", func(t *testing.T) {
		enh := New(Tables{
			ByParam:     map[string][]string{"a": {"toolParam"}},
			ByOperation: map[string][]string{"get": {"toolOp"}},
			ByDomain:    map[string][]string{"d": {"toolDomain"}},
		})
		got := enh.Suggest("get", map[string]any{"a": 1}, "d")
		assert.Equal(t, []string{"toolParam", "toolOp", "toolDomain"}, got)
	})

	t.Run("deterministic across param order", func(t *testing.T) {
		enh := New(Tables{ByParam: map[string][]string{
			"alpha": {"toolA"},
			"beta":  {"toolB"},
			"gamma": {"toolC"},
		}})
		params := map[string]any{"gamma": 1, "alpha": 2, "beta": 3}
		want := []string{"toolA", "toolB", "toolC"}
		for i := 0; i < 10; i++ {
			assert.Equal(t, want, enh.Suggest("", params, ""))
		}
	})

	t.Run("deduplicated with first occurrence kept", func(t *testing.T) {
		enh := New(Tables{
			ByParam:     map[string][]string{"a": {"toolX", "toolY"}},
			ByOperation: map[string][]string{"get": {"toolY", "toolZ"}},
		})
		got := enh.Suggest("get", map[string]any{"a": 1}, "")
		assert.Equal(t, []string{"toolX", "toolY", "toolZ"}, got)
	})

	t.Run("capped at MaxSuggestions", func(t *testing.T) {
		enh := New(Tables{ByOperation: map[string][]string{
			"get": {"t1", "t2", "t3", "t4", "t5", "t6", "t7"},
		}})
		got := enh.Suggest("get", nil, "")
		assert.Len(t, got, MaxSuggestions)
		assert.Equal(t, []string{"t1", "t2", "t3", "t4", "t5"}, got)
	})
}

func TestLoadTables(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		tables, err := LoadTables("")
		require.NoError(t, err)
		assert.Equal(t, DefaultTables(), tables)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := LoadTables("does/not/exist.yaml")
		assert.Error(t, err)
	})

	t.Run("override replaces table wholesale", func(t *testing.T) {
		path := t.TempDir() + "/tables.yaml"
		content := "by_param:\n  customId:\n    - customTool\n"
		require.NoError(t, writeFile(path, content))

		tables, err := LoadTables(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"customTool"}, tables.ByParam["customId"])
		// The default by_param entries are gone, the other tables remain.
		assert.NotContains(t, tables.ByParam, "ownerId")
		assert.Equal(t, DefaultTables().ByOperation, tables.ByOperation)
		assert.Equal(t, DefaultTables().ByDomain, tables.ByDomain)
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		path := t.TempDir() + "/bad.yaml"
		require.NoError(t, writeFile(path, "by_param: [not a map"))
		_, err := LoadTables(path)
		assert.Error(t, err)
	})
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
