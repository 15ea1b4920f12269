package model

// ConstructKind identifies the category of a documented declaration.
type ConstructKind string

const (
	// KindFile represents the file itself; its comment block is the header.
	KindFile ConstructKind = "file"
	// KindInterface represents interface/type declarations.
	KindInterface ConstructKind = "interface"
	// KindFunction represents exported function declarations.
	KindFunction ConstructKind = "function"
	// KindAPIRoute represents HTTP route registrations.
	KindAPIRoute ConstructKind = "api_route"
	// KindMethod represents exported class methods.
	KindMethod ConstructKind = "method"
	// KindTest represents test and suite declarations.
	KindTest ConstructKind = "test"
	// KindEnvConfig represents environment configuration entries.
	KindEnvConfig ConstructKind = "env_config"
)

// ConstructKinds lists every known kind in a stable order.
func ConstructKinds() []ConstructKind {
	return []ConstructKind{
		KindFile,
		KindInterface,
		KindFunction,
		KindAPIRoute,
		KindMethod,
		KindTest,
		KindEnvConfig,
	}
}

// KnownConstructKind reports whether s names a known construct kind.
func KnownConstructKind(s string) bool {
	for _, k := range ConstructKinds() {
		if string(k) == s {
			return true
		}
	}

	return false
}

// Declaration is a position-tagged construct found by the scanner.
// It references its owning SourceFile by path; the SourceFile outlives
// every Declaration parsed from it.
type Declaration struct {
	Kind ConstructKind
	Name string
	File Path
	Line int
}
