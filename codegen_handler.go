//go:build !wasm

package dirorm

// Codegen scans model files for directory object structs and writes their
// descriptors. The zero value is not usable; call NewCodegen.
type Codegen struct {
	logFn      func(messages ...any)
	rootDir    string
	modelFiles map[string]bool
	written    []string
}

// NewCodegen returns a generator rooted at "." that reads model.go and models.go.
func NewCodegen() *Codegen {
	return &Codegen{
		rootDir:    ".",
		modelFiles: map[string]bool{"model.go": true, "models.go": true},
	}
}

// SetLog routes warnings (skipped fields, unparseable files) to fn.
func (o *Codegen) SetLog(fn func(messages ...any)) {
	o.logFn = fn
}

// SetRootDir sets the directory Run walks.
func (o *Codegen) SetRootDir(dir string) {
	o.rootDir = dir
}

// SetModelFiles replaces the base names Run treats as model sources.
func (o *Codegen) SetModelFiles(names ...string) {
	o.modelFiles = make(map[string]bool, len(names))
	for _, n := range names {
		o.modelFiles[n] = true
	}
}

// Written lists the files produced by the last Run, in walk order.
func (o *Codegen) Written() []string {
	return o.written
}

func (o *Codegen) isModelFile(name string) bool {
	return o.modelFiles[name]
}

func (o *Codegen) log(messages ...any) {
	if o.logFn != nil {
		o.logFn(messages...)
	}
}
