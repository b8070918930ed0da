package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinywasm/dirorm"
)

const fixturePath = "../../fixture/testdata/example.yaml"

// isolate points config and env lookups at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("DIRQ_CONFIG", filepath.Join(dir, "config.yaml"))
	t.Setenv("DIRQ_DB", "")
	t.Setenv("DIRQ_BASE_DN", "")
	t.Setenv("DIRQ_OUTPUT", "")
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runWithStderr(t, args...)
	return out, err
}

func runWithStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd(&app{})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// seeded returns the path of a database loaded with the example fixture.
func seeded(t *testing.T) string {
	t.Helper()
	db := filepath.Join(isolate(t), "dir.sqlite")
	out, err := run(t, "--db", db, "seed", fixturePath)
	require.NoError(t, err)
	assert.Equal(t, "Added 10 entries to "+db+"\n", out)
	return db
}

func TestUserList(t *testing.T) {
	db := seeded(t)

	out, err := run(t, "--db", db, "user", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "USERNAME")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "bob")
	assert.Contains(t, out, "false")
}

func TestUserListJSON(t *testing.T) {
	db := seeded(t)

	out, err := run(t, "--db", db, "-o", "json", "user", "list")
	require.NoError(t, err)

	var users []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &users))
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0]["Username"])
}

func TestUserShow(t *testing.T) {
	db := seeded(t)

	out, err := run(t, "--db", db, "user", "show", "ALICE")
	require.NoError(t, err)
	assert.Contains(t, out, "alice@example.com")
	assert.Contains(t, out, "ENABLED:")
}

func TestShowErrors(t *testing.T) {
	db := seeded(t)

	_, err := run(t, "--db", db, "group", "show", "Nobody")
	require.Error(t, err)
	assert.ErrorIs(t, err, dirorm.ErrNotFound)
	assert.EqualError(t, err, "Group matching query not found")

	_, err = run(t, "--db", db, "ou", "show", "Marketing")
	assert.EqualError(t, err, "Organizational unit matching query not found")
}

func TestGroupMembers(t *testing.T) {
	db := seeded(t)

	out, err := run(t, "--db", db, "group", "members", "Staff")
	require.NoError(t, err)
	assert.Equal(t,
		"CN=Alice Smith,CN=Users,DC=example,DC=com\nCN=Bob Jones,OU=Sales,DC=example,DC=com\n", out)

	out, err = run(t, "--db", db, "-o", "json", "group", "members", "Domain Admins")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestBaseDNScopesQueries(t *testing.T) {
	db := seeded(t)

	out, err := run(t, "--db", db, "--base-dn", "OU=Sales,DC=example,DC=com", "-o", "json", "user", "list")
	require.NoError(t, err)

	var users []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "bob", users[0]["Username"])
}

func TestSeedDuplicateFails(t *testing.T) {
	db := seeded(t)

	_, err := run(t, "--db", db, "seed", fixturePath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DC=example,DC=com")
}

func TestConfigPrecedence(t *testing.T) {
	dir := isolate(t)
	db := filepath.Join(dir, "dir.sqlite")
	_, err := run(t, "--db", db, "seed", fixturePath)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("database: "+db+"\noutput: json\n"), 0o600))

	out, err := run(t, "computer", "list")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), "file sets json output")

	t.Setenv("DIRQ_OUTPUT", "table")
	out, err = run(t, "computer", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "DNS HOST NAME", "env beats file")

	_, err = run(t, "-o", "yaml", "computer", "list")
	assert.EqualError(t, err, `unsupported output format "yaml": use 'table' or 'json'`)
}

func TestVersion(t *testing.T) {
	isolate(t)
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dirq dev (none)\n", out)
}

func TestGen(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	src := "package m\n\ntype Printer struct {\n\tDN   string\n\tName string\n}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.go"), []byte(src), 0o644))

	_, err := run(t, "gen", dir)
	require.NoError(t, err)

	out, err := os.ReadFile(filepath.Join(dir, "model_dirorm.go"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "var PrinterEntity = dirorm.Descriptor[*Printer]{")
}

func TestErrorObject(t *testing.T) {
	obj := errorObject(&dirorm.MultipleResultsError{Name: "user", Count: 3})
	assert.Equal(t, "multiple_results", obj["kind"])
	assert.Equal(t, 3, obj["count"])

	obj = errorObject(&dirorm.NotFoundError{Name: "group"})
	assert.Equal(t, "not_found", obj["kind"])
	assert.Equal(t, "Group matching query not found", obj["error"])
}

func TestExecuteErrorFormat(t *testing.T) {
	db := seeded(t)

	var out, errOut bytes.Buffer
	code := execute([]string{"--db", db, "group", "show", "Nobody"}, &out, &errOut)
	assert.Equal(t, 1, code)
	assert.Empty(t, out.String())
	assert.Equal(t, "Error: Group matching query not found\n", errOut.String())

	t.Setenv("DIRQ_OUTPUT", "json")
	out.Reset()
	errOut.Reset()
	code = execute([]string{"--db", db, "group", "show", "Nobody"}, &out, &errOut)
	assert.Equal(t, 1, code)
	assert.Empty(t, errOut.String())
	assert.JSONEq(t, `{"error": "Group matching query not found", "kind": "not_found"}`, out.String())

	out.Reset()
	code = execute([]string{"--db", db, "user", "list"}, &out, &errOut)
	assert.Equal(t, 0, code)
	assert.True(t, json.Valid(out.Bytes()))
}

func TestConfigSet(t *testing.T) {
	dir := isolate(t)
	db := filepath.Join(dir, "dir.sqlite")
	_, err := run(t, "--db", db, "seed", fixturePath)
	require.NoError(t, err)

	out, err := run(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml")+"\n", out)

	_, err = run(t, "config", "set", "database", db)
	require.NoError(t, err)
	out, err = run(t, "config", "set", "output", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "Set output = json in ")

	out, err = run(t, "ou", "list")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), "saved settings apply to later runs")

	_, err = run(t, "config", "set", "output", "xml")
	assert.ErrorContains(t, err, `unsupported output format "xml"`)
	_, err = run(t, "config", "set", "colour", "blue")
	assert.ErrorContains(t, err, `unknown config key "colour"`)

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "output: json")
}

func TestSeedWarnsOutsideBase(t *testing.T) {
	dir := isolate(t)
	fx := filepath.Join(dir, "fx.yaml")
	require.NoError(t, os.WriteFile(fx, []byte(`base_dn: DC=example,DC=com
entries:
  - dn: CN=a,DC=example,DC=com
    attributes: {objectClass: user}
  - dn: CN=b,DC=other,DC=org
    attributes: {objectClass: user}
`), 0o600))

	out, stderr, err := runWithStderr(t, "--db", filepath.Join(dir, "dir.sqlite"), "seed", fx)
	require.NoError(t, err)
	assert.Contains(t, out, "Added 2 entries")
	assert.Contains(t, stderr, "entry outside the fixture base DN")
	assert.Contains(t, stderr, "CN=b,DC=other,DC=org")
	assert.NotContains(t, stderr, "fixture base DN differs")

	_, stderr, err = runWithStderr(t, "--db", filepath.Join(dir, "other.sqlite"), "--base-dn", "DC=corp,DC=local", "seed", fx)
	require.NoError(t, err)
	assert.Contains(t, stderr, "fixture base DN differs from the search base")
}
