package convert

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahogen/cppcheck-codequality/internal/adapters"
)

const (
	xmlStart = `<?xml version="1.0" encoding="UTF-8"?><results version="2"><cppcheck version="2.13"/><errors>`
	xmlEnd   = `</errors></results>`
)

func TestBytesExample(t *testing.T) {
	in := xmlStart +
		`<error id="nullPointer" severity="error" msg="Null pointer dereference"><location file="src/a.c" line="42"/></error>` +
		xmlEnd

	out, stats, err := Bytes([]byte(in), adapters.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Findings)
	assert.Equal(t, "2.13", stats.CppcheckVersion)

	var doc []map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	require.Len(t, doc, 1)

	obj := doc[0]
	assert.Equal(t, "critical", obj["severity"])
	assert.Contains(t, obj["description"], "nullPointer")
	assert.Contains(t, obj["description"], "Null pointer dereference")

	loc := obj["location"].(map[string]any)
	assert.Equal(t, "src/a.c", loc["path"])
	assert.Equal(t, float64(42), loc["lines"].(map[string]any)["begin"])

	fp := obj["fingerprint"].(string)
	assert.GreaterOrEqual(t, len(fp), 32)
	assert.Regexp(t, "^[0-9a-f]+$", fp)
}

func TestBytesDeterministic(t *testing.T) {
	in := []byte(xmlStart +
		`<error id="a" severity="warning" msg="m1"><location file="x.c" line="1"/></error>` +
		`<error id="b" severity="style" msg="m2"><location file="y.c" line="2" column="4"/></error>` +
		xmlEnd)

	out1, _, err1 := Bytes(in, adapters.Options{})
	out2, _, err2 := Bytes(in, adapters.Options{})
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, out1, out2, "mesma entrada tem que produzir os mesmos bytes")
}

func TestBytesCountInvariant(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(xmlStart)
	sb.WriteString(`<error id="a" severity="error" msg="m"><location file="a.c" line="1"/></error>`)
	sb.WriteString(`<error id="b" severity="information" msg="m"/>`) // degenerado
	sb.WriteString(`<error id="c" severity="debug" msg="m"><location file="c.c" line="3"/></error>`)
	sb.WriteString(xmlEnd)

	out, stats, err := Bytes([]byte(sb.String()), adapters.Options{})
	require.NoError(t, err)

	var doc []map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Len(t, doc, stats.Findings)
	assert.Equal(t, 1, stats.Degenerate)
}

func TestBytesDistinctFingerprintsPerLine(t *testing.T) {
	in := xmlStart +
		`<error id="x" severity="error" msg="m"><location file="a.c" line="10"/></error>` +
		`<error id="x" severity="error" msg="m"><location file="a.c" line="11"/></error>` +
		xmlEnd

	out, _, err := Bytes([]byte(in), adapters.Options{})
	require.NoError(t, err)

	var doc []map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	require.Len(t, doc, 2)
	assert.NotEqual(t, doc[0]["fingerprint"], doc[1]["fingerprint"])
}

func TestBytesMalformed(t *testing.T) {
	out, _, err := Bytes([]byte(xmlStart+`<error id="x"`), adapters.Options{})
	require.Error(t, err)
	assert.Nil(t, out, "entrada malformada não pode emitir nenhum byte")
}

func TestBytesEmptyReport(t *testing.T) {
	out, stats, err := Bytes([]byte(xmlStart+xmlEnd), adapters.Options{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
	assert.Equal(t, 0, stats.Findings)
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "cppcheck.xml")
	outPath := filepath.Join(dir, "out", "cppcheck.json")

	in := xmlStart +
		`<error id="x" severity="style" msg="m"><location file="a.c" line="1"/></error>` +
		xmlEnd
	require.NoError(t, os.WriteFile(inPath, []byte(in), 0o644))

	stats, err := File(inPath, outPath, adapters.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Findings)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var doc []map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc, 1)
}

func TestFileParseErrorWritesNothing(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "broken.xml")
	outPath := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(inPath, []byte("<oops"), 0o644))

	_, err := File(inPath, outPath, adapters.Options{})
	require.Error(t, err)

	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr), "saída parcial não pode existir após ParseError")
}
