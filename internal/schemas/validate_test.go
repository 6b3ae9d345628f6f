package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name", "values"],
  "properties": {
    "name": { "type": "string", "minLength": 1 },
    "values": { "type": "array", "items": { "type": "number", "minimum": 0 } }
  }
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON_Valid(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "s.json", testSchema)
	doc := writeFile(t, dir, "d.json", `{"name": "debian", "values": [1.84, 16.25]}`)

	assert.NoError(t, ValidateJSON(schema, doc))
}

func TestValidateJSON_Invalid(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "s.json", testSchema)
	doc := writeFile(t, dir, "d.json", `{"name": "", "values": [-4]}`)

	err := ValidateJSON(schema, doc)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Errors)
}

func TestValidateJSON_MissingSchema(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "d.json", `{}`)

	err := ValidateJSON(filepath.Join(dir, "missing.json"), doc)
	require.Error(t, err)

	var lerr *SchemaLoadError
	assert.ErrorAs(t, err, &lerr)
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/does-not-exist.schema.json"))
}
