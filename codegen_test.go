//go:build !wasm

package dirorm_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinywasm/dirorm"
)

const testModelFile = "testdata/model.go"

func TestCodegen_ParseStruct(t *testing.T) {
	o := dirorm.NewCodegen()

	t.Run("fields, tags and DN", func(t *testing.T) {
		info, err := o.ParseStruct("Printer", testModelFile)
		require.NoError(t, err)

		assert.Equal(t, "Printer", info.Name)
		assert.Equal(t, "printer", info.ObjectClass)
		assert.False(t, info.ClassDeclared)
		assert.Equal(t, "testmodels", info.PackageName)
		assert.True(t, info.HasDN)

		byName := map[string]dirorm.FieldInfo{}
		for _, f := range info.Fields {
			byName[f.Name] = f
		}
		assert.Len(t, info.Fields, 6, "DN, ignored and unexported fields are not mapped")
		assert.NotContains(t, byName, "Secret")
		assert.NotContains(t, byName, "DN")

		assert.Equal(t, "cn", byName["Name"].Attr)
		assert.Equal(t, "location", byName["Location"].Attr)
		assert.Equal(t, dirorm.TypeInt64, byName["PortCount"].Type)
		assert.Equal(t, "int", byName["PortCount"].GoType)
		assert.Equal(t, dirorm.TypeBool, byName["Duplex"].Type)
		assert.Equal(t, dirorm.TypeDN, byName["Servers"].Type)
		assert.True(t, byName["Servers"].Many)
		assert.True(t, byName["ObjectGUID"].ReadOnly)
	})

	t.Run("declared object class", func(t *testing.T) {
		info, err := o.ParseStruct("Site", testModelFile)
		require.NoError(t, err)
		assert.Equal(t, "site", info.ObjectClass)
		assert.True(t, info.ClassDeclared)
		assert.False(t, info.HasDN)
	})

	t.Run("unsupported types are skipped with a warning", func(t *testing.T) {
		var logged []string
		g := dirorm.NewCodegen()
		g.SetLog(func(messages ...any) {
			logged = append(logged, fmt.Sprint(messages...))
		})
		info, err := g.ParseStruct("BadTime", testModelFile)
		require.NoError(t, err)
		assert.Empty(t, info.Fields)
		require.Len(t, logged, 1)
		assert.Contains(t, logged[0], "time.Time")
	})

	t.Run("dn option on a number", func(t *testing.T) {
		_, err := o.ParseStruct("BadOption", testModelFile)
		assert.Error(t, err)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := o.ParseStruct("", testModelFile)
		assert.Error(t, err)
		_, err = o.ParseStruct("Printer", "")
		assert.Error(t, err)
		_, err = o.ParseStruct("Missing", testModelFile)
		assert.Error(t, err)
		_, err = o.ParseStruct("Printer", "testdata/does_not_exist.go")
		assert.Error(t, err)
	})

	t.Run("shipped models", func(t *testing.T) {
		info, err := o.ParseStruct("Group", "models/model.go")
		require.NoError(t, err)
		assert.Equal(t, "group", info.ObjectClass)

		attrs := map[string]string{}
		for _, f := range info.Fields {
			attrs[f.Name] = f.Attr
		}
		assert.Equal(t, "sAMAccountName", attrs["Account"])
		assert.Equal(t, "isCriticalSystemObject", attrs["IsCriticalSystemObject"])
		assert.Equal(t, "member", attrs["Member"])

		ou, err := o.ParseStruct("OrganizationalUnit", "models/model.go")
		require.NoError(t, err)
		assert.Equal(t, "organizationalUnit", ou.ObjectClass)
	})
}

func copyModel(t *testing.T, dir string) string {
	t.Helper()
	src, err := os.ReadFile(testModelFile)
	require.NoError(t, err)
	dst := filepath.Join(dir, "model.go")
	require.NoError(t, os.WriteFile(dst, src, 0644))
	return dst
}

func TestCodegen_GenerateForFile(t *testing.T) {
	modelFile := copyModel(t, t.TempDir())

	o := dirorm.NewCodegen()
	printer, err := o.ParseStruct("Printer", modelFile)
	require.NoError(t, err)
	site, err := o.ParseStruct("Site", modelFile)
	require.NoError(t, err)

	require.NoError(t, o.GenerateForFile([]dirorm.StructInfo{printer, site}, modelFile))

	content, err := os.ReadFile(dirorm.OutputPath(modelFile))
	require.NoError(t, err)
	s := string(content)

	assert.True(t, strings.HasPrefix(s, "// Code generated by dirormc; DO NOT EDIT."))
	assert.Contains(t, s, "package testmodels")
	assert.Contains(t, s, "func (m *Printer) ObjectClass() string")
	assert.NotContains(t, s, "func (m *Site) ObjectClass() string", "declared ObjectClass must not be regenerated")
	assert.Contains(t, s, "var PrinterEntity = dirorm.Descriptor[*Printer]{")
	assert.Contains(t, s, "var SiteEntity = dirorm.Descriptor[*Site]{")
	assert.Contains(t, s, "m := &Printer{DN: rec.DN}")
	assert.Contains(t, s, "m := &Site{}")
	assert.Contains(t, s, "rec.Decode(PrinterMeta.Servers, &m.Servers)")
	assert.Contains(t, s, `{Name: "Servers", Attr: "serverName", Type: dirorm.TypeDN, Many: true}`)
	assert.Contains(t, s, `{Name: "ObjectGUID", Attr: "objectGUID", Type: dirorm.TypeText, ReadOnly: true}`)
	assert.NotContains(t, s, "Secret")
}

func TestCodegen_GenerateForStruct(t *testing.T) {
	dir := t.TempDir()
	modelFile := copyModel(t, dir)
	o := dirorm.NewCodegen()

	t.Run("writes output", func(t *testing.T) {
		require.NoError(t, o.GenerateForStruct("Printer", modelFile))
		_, err := os.Stat(dirorm.OutputPath(modelFile))
		require.NoError(t, err)
	})

	t.Run("struct without mappable fields writes nothing", func(t *testing.T) {
		require.NoError(t, os.Remove(dirorm.OutputPath(modelFile)))
		require.NoError(t, o.GenerateForStruct("Unsupp", modelFile))
		_, err := os.Stat(dirorm.OutputPath(modelFile))
		assert.True(t, os.IsNotExist(err))
	})
}

func TestCodegen_Run(t *testing.T) {
	t.Run("scans dir and generates all structs", func(t *testing.T) {
		tmp := t.TempDir()
		modelFile := copyModel(t, tmp)

		nested := filepath.Join(tmp, "inner")
		require.NoError(t, os.MkdirAll(nested, 0755))
		nestedFile := copyModel(t, nested)

		var logged []string
		o := dirorm.NewCodegen()
		o.SetRootDir(tmp)
		o.SetLog(func(messages ...any) {
			for _, m := range messages {
				logged = append(logged, fmt.Sprint(m))
			}
		})

		require.NoError(t, o.Run())

		for _, f := range []string{modelFile, nestedFile} {
			content, err := os.ReadFile(dirorm.OutputPath(f))
			require.NoError(t, err)
			assert.Contains(t, string(content), "PrinterEntity")
			assert.Contains(t, string(content), "SiteEntity")
			assert.NotContains(t, string(content), "BadTimeEntity")
		}

		assert.ElementsMatch(t,
			[]string{dirorm.OutputPath(modelFile), dirorm.OutputPath(nestedFile)}, o.Written())

		joined := strings.Join(logged, "\n")
		assert.Contains(t, joined, "BadOption")
		assert.Contains(t, joined, "Unsupp")
	})

	t.Run("custom model file names", func(t *testing.T) {
		tmp := t.TempDir()
		modelFile := copyModel(t, tmp)
		renamed := filepath.Join(tmp, "directory.go")
		require.NoError(t, os.Rename(modelFile, renamed))

		o := dirorm.NewCodegen()
		o.SetRootDir(tmp)
		assert.Error(t, o.Run(), "directory.go is not a model file by default")

		o.SetModelFiles("directory.go")
		require.NoError(t, o.Run())
		assert.Equal(t, []string{filepath.Join(tmp, "directory_dirorm.go")}, o.Written())
	})

	t.Run("empty dir", func(t *testing.T) {
		o := dirorm.NewCodegen()
		o.SetRootDir(t.TempDir())
		assert.Error(t, o.Run())
	})
}
