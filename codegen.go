//go:build !wasm

package dirorm

import (
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/tinywasm/fmt"
)

type FieldInfo struct {
	Name     string
	Attr     string
	Type     FieldType
	Many     bool
	ReadOnly bool
	GoType   string
}

type StructInfo struct {
	Name          string
	ObjectClass   string
	PackageName   string
	Fields        []FieldInfo
	HasDN         bool // struct has a DN string field that receives Record.DN
	ClassDeclared bool
	SourceFile    string
}

// detectObjectClass scans the AST for func (X) ObjectClass() string on structName.
// Returns the literal return value if found, "" otherwise.
func detectObjectClass(node *ast.File, structName string) string {
	for _, decl := range node.Decls {
		funcDecl, ok := decl.(*ast.FuncDecl)
		if !ok || funcDecl.Recv == nil || len(funcDecl.Recv.List) == 0 {
			continue
		}
		if funcDecl.Name.Name != "ObjectClass" {
			continue
		}
		recv := funcDecl.Recv.List[0].Type
		recvName := ""
		if ident, ok := recv.(*ast.Ident); ok {
			recvName = ident.Name
		} else if star, ok := recv.(*ast.StarExpr); ok {
			if ident, ok := star.X.(*ast.Ident); ok {
				recvName = ident.Name
			}
		}
		if recvName != structName {
			continue
		}
		if funcDecl.Body != nil && len(funcDecl.Body.List) == 1 {
			if ret, ok := funcDecl.Body.List[0].(*ast.ReturnStmt); ok && len(ret.Results) == 1 {
				if lit, ok := ret.Results[0].(*ast.BasicLit); ok && lit.Kind == token.STRING {
					return fmt.Convert(lit.Value).TrimPrefix(`"`).TrimSuffix(`"`).String()
				}
			}
		}
	}
	return ""
}

// lowerFirst maps Go names to directory attribute style: "AdminCount" -> "adminCount".
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// ParseStruct parses a single struct from a Go file and returns its metadata.
func (o *Codegen) ParseStruct(structName string, goFile string) (StructInfo, error) {
	if structName == "" {
		return StructInfo{}, fmt.Err("Please provide a struct name")
	}

	if goFile == "" {
		return StructInfo{}, fmt.Err("goFile path cannot be empty")
	}

	fset := token.NewFileSet()
	node, err := parser.ParseFile(fset, goFile, nil, parser.ParseComments)
	if err != nil {
		return StructInfo{}, fmt.Err(err, "Failed to parse file")
	}

	var targetStruct *ast.StructType
	ast.Inspect(node, func(n ast.Node) bool {
		if typeSpec, ok := n.(*ast.TypeSpec); ok && typeSpec.Name.Name == structName {
			if structType, ok := typeSpec.Type.(*ast.StructType); ok {
				targetStruct = structType
				return false
			}
		}
		return true
	})

	if targetStruct == nil {
		return StructInfo{}, fmt.Err("Struct not found in file")
	}

	class := detectObjectClass(node, structName)
	declared := class != ""
	if !declared {
		class = lowerFirst(structName)
	}

	info := StructInfo{
		Name:          structName,
		ObjectClass:   class,
		PackageName:   node.Name.Name,
		ClassDeclared: declared,
	}

	for _, field := range targetStruct.Fields.List {
		if len(field.Names) == 0 {
			continue // Embedded field, skip
		}

		fieldName := field.Names[0].Name
		if !ast.IsExported(fieldName) {
			continue
		}

		ldapTag := ""
		if field.Tag != nil {
			tagVal := fmt.Convert(field.Tag.Value).TrimPrefix("`").TrimSuffix("`").String()
			ldapTag = reflect.StructTag(tagVal).Get("ldap")
		}

		if ldapTag == "-" {
			continue
		}

		typeStr := ""
		many := false
		switch t := field.Type.(type) {
		case *ast.Ident:
			typeStr = t.Name
		case *ast.SelectorExpr:
			if pkgIdent, ok := t.X.(*ast.Ident); ok {
				typeStr = pkgIdent.Name + "." + t.Sel.Name
			}
		case *ast.ArrayType:
			if eltIdent, ok := t.Elt.(*ast.Ident); ok && t.Len == nil {
				typeStr = "[]" + eltIdent.Name
				many = eltIdent.Name == "string"
			}
		}

		if fieldName == "DN" && ldapTag == "" && typeStr == "string" {
			info.HasDN = true
			continue
		}
		if fieldName == "ObjectClass" {
			o.log(fmt.Sprintf("Warning: %s.ObjectClass clashes with the generated metadata; skipping", structName))
			continue
		}

		var fieldType FieldType
		switch typeStr {
		case "string", "[]string":
			fieldType = TypeText
		case "int", "int32", "int64", "uint32":
			fieldType = TypeInt64
		case "bool":
			fieldType = TypeBool
		default:
			o.log(fmt.Sprintf("Warning: unsupported type %s for field %s.%s; skipping. Add ldap:\"-\" to suppress.", typeStr, structName, fieldName))
			continue
		}

		attr := lowerFirst(fieldName)
		readOnly := false
		if ldapTag != "" {
			parts := strings.Split(ldapTag, ",")
			if parts[0] != "" {
				attr = parts[0]
			}
			for _, p := range parts[1:] {
				switch p {
				case "dn":
					if fieldType != TypeText {
						return StructInfo{}, fmt.Err("dn option not allowed on", typeStr, "field", fieldName)
					}
					fieldType = TypeDN
				case "readonly":
					readOnly = true
				default:
					o.log(fmt.Sprintf("Warning: unknown ldap tag option %s on %s.%s", p, structName, fieldName))
				}
			}
		}

		info.Fields = append(info.Fields, FieldInfo{
			Name:     fieldName,
			Attr:     attr,
			Type:     fieldType,
			Many:     many,
			ReadOnly: readOnly,
			GoType:   typeStr,
		})
	}

	return info, nil
}

// GenerateForStruct reads the Go file and generates the descriptor for a given struct name.
func (o *Codegen) GenerateForStruct(structName string, goFile string) error {
	info, err := o.ParseStruct(structName, goFile)
	if err != nil {
		return err
	}
	if len(info.Fields) == 0 {
		return nil
	}
	return o.GenerateForFile([]StructInfo{info}, goFile)
}

// OutputPath returns the file GenerateForFile writes for sourceFile.
func OutputPath(sourceFile string) string {
	return fmt.Convert(sourceFile).TrimSuffix(".go").String() + "_dirorm.go"
}

// GenerateForFile writes descriptors for all infos into one file.
func (o *Codegen) GenerateForFile(infos []StructInfo, sourceFile string) error {
	if len(infos) == 0 {
		return nil
	}
	src, err := o.render(infos)
	if err != nil {
		return err
	}
	return os.WriteFile(OutputPath(sourceFile), src, 0644)
}

func (o *Codegen) render(infos []StructInfo) ([]byte, error) {
	buf := fmt.Convert()

	// File Header
	buf.Write("// Code generated by dirormc; DO NOT EDIT.\n\n")
	buf.Write(fmt.Sprintf("package %s\n\n", infos[0].PackageName))

	buf.Write("import (\n")
	buf.Write("\t\"github.com/tinywasm/dirorm\"\n")
	buf.Write(")\n\n")

	for _, info := range infos {
		if !info.ClassDeclared {
			buf.Write(fmt.Sprintf("func (m *%s) ObjectClass() string {\n", info.Name))
			buf.Write(fmt.Sprintf("\treturn \"%s\"\n", info.ObjectClass))
			buf.Write("}\n\n")
		}

		buf.Write(fmt.Sprintf("func (m *%s) Schema() []dirorm.Field {\n", info.Name))
		buf.Write("\treturn []dirorm.Field{\n")
		for _, f := range info.Fields {
			typeStr := "dirorm.TypeText"
			switch f.Type {
			case TypeInt64:
				typeStr = "dirorm.TypeInt64"
			case TypeBool:
				typeStr = "dirorm.TypeBool"
			case TypeDN:
				typeStr = "dirorm.TypeDN"
			}
			buf.Write(fmt.Sprintf("\t\t{Name: \"%s\", Attr: \"%s\", Type: %s", f.Name, f.Attr, typeStr))
			if f.Many {
				buf.Write(", Many: true")
			}
			if f.ReadOnly {
				buf.Write(", ReadOnly: true")
			}
			buf.Write("},\n")
		}
		buf.Write("\t}\n")
		buf.Write("}\n\n")

		// Attribute names
		buf.Write(fmt.Sprintf("var %sMeta = struct {\n", info.Name))
		buf.Write("\tObjectClass string\n")
		for _, f := range info.Fields {
			buf.Write(fmt.Sprintf("\t%s string\n", f.Name))
		}
		buf.Write("}{\n")
		buf.Write(fmt.Sprintf("\tObjectClass: \"%s\",\n", info.ObjectClass))
		for _, f := range info.Fields {
			buf.Write(fmt.Sprintf("\t%s: \"%s\",\n", f.Name, f.Attr))
		}
		buf.Write("}\n\n")

		// Descriptor
		buf.Write(fmt.Sprintf("var %sEntity = dirorm.Descriptor[*%s]{\n", info.Name, info.Name))
		buf.Write(fmt.Sprintf("\tName: \"%s\",\n", info.Name))
		buf.Write(fmt.Sprintf("\tClass: \"%s\",\n", info.ObjectClass))
		buf.Write(fmt.Sprintf("\tDecode: decode%s,\n", info.Name))
		buf.Write("}\n\n")

		buf.Write(fmt.Sprintf("func decode%s(_ *dirorm.DB, rec *dirorm.Record) (*%s, error) {\n", info.Name, info.Name))
		if info.HasDN {
			buf.Write(fmt.Sprintf("\tm := &%s{DN: rec.DN}\n", info.Name))
		} else {
			buf.Write(fmt.Sprintf("\tm := &%s{}\n", info.Name))
		}
		for _, f := range info.Fields {
			buf.Write(fmt.Sprintf("\tif err := rec.Decode(%sMeta.%s, &m.%s); err != nil {\n", info.Name, f.Name, f.Name))
			buf.Write("\t\treturn nil, err\n")
			buf.Write("\t}\n")
		}
		buf.Write("\treturn m, nil\n")
		buf.Write("}\n\n")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Err(err, "generated code does not parse")
	}
	return src, nil
}

// collectAllStructs walks rootDir and returns all parsed StructInfo in
// discovery order. Used by Run() Pass 1.
func (o *Codegen) collectAllStructs() ([]StructInfo, error) {
	var all []StructInfo

	err := filepath.Walk(o.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			dirName := info.Name()
			if dirName == "vendor" || dirName == ".git" || dirName == "testdata" {
				return filepath.SkipDir
			}
			return nil
		}

		if !o.isModelFile(info.Name()) {
			return nil
		}

		fset := token.NewFileSet()
		node, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
		if err != nil {
			o.log(fmt.Sprintf("Skipping unparseable %s: %v", path, err))
			return nil
		}

		for _, decl := range node.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}
			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				if _, ok := typeSpec.Type.(*ast.StructType); !ok {
					continue
				}
				si, err := o.ParseStruct(typeSpec.Name.Name, path)
				if err != nil {
					o.log(fmt.Sprintf("Skipping %s in %s: %v", typeSpec.Name.Name, path, err))
					continue
				}
				if len(si.Fields) == 0 {
					o.log(fmt.Sprintf("Warning: %s has no mappable fields; skipping", typeSpec.Name.Name))
					continue
				}
				si.SourceFile = path
				all = append(all, si)
			}
		}
		return nil
	})

	return all, err
}

// Run is the entry point for the CLI tool.
func (o *Codegen) Run() error {
	o.written = nil

	// Pass 1: collect all structs across all model files
	all, err := o.collectAllStructs()
	if err != nil {
		return fmt.Err(err, "error walking directory")
	}
	if len(all) == 0 {
		return fmt.Err("no models found")
	}

	// Pass 2: generate, one output file per source file
	var fileOrder []string
	byFile := make(map[string][]StructInfo)
	for _, si := range all {
		if _, seen := byFile[si.SourceFile]; !seen {
			fileOrder = append(fileOrder, si.SourceFile)
		}
		byFile[si.SourceFile] = append(byFile[si.SourceFile], si)
	}
	for _, sourceFile := range fileOrder {
		if err := o.GenerateForFile(byFile[sourceFile], sourceFile); err != nil {
			o.log(fmt.Sprintf("Failed to write output for %s: %v", sourceFile, err))
			continue
		}
		o.written = append(o.written, OutputPath(sourceFile))
	}
	return nil
}
