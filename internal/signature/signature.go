// Package signature resolves call targets to parameter-list variants so the
// extra-arguments rule can decide how many positional arguments a callee
// accepts. Resolution is deliberately conservative: anything that cannot be
// pinned down returns nil and the caller skips.
package signature

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/phpmod-labs/phpmod/internal/phpast"
)

// Variant is one overload signature of a callable.
type Variant struct {
	ParamCount int
	Variadic   bool
}

// Signature is the resolved parameter surface of a callable, possibly with
// several variants.
type Signature struct {
	Name     string
	Variants []Variant
}

// MaxParamCount returns the largest parameter count across variants, at
// least zero.
func (s *Signature) MaxParamCount() int {
	max := 0
	for _, v := range s.Variants {
		if v.ParamCount > max {
			max = v.ParamCount
		}
	}
	return max
}

// HasVariadic reports whether any variant accepts an unbounded argument
// tail.
func (s *Signature) HasVariadic() bool {
	for _, v := range s.Variants {
		if v.Variadic {
			return true
		}
	}
	return false
}

// Resolver resolves call targets against builtin signatures and the
// declarations of a single parsed unit.
type Resolver struct {
	file *phpast.File
	// function and method names are case-insensitive in PHP, keys are
	// lowercased
	funcs   map[string][]Variant
	methods map[string]map[string][]Variant // method -> declaring class -> variants
}

// NewResolver collects the callable declarations of a parsed unit.
func NewResolver(f *phpast.File) *Resolver {
	r := &Resolver{
		file:    f,
		funcs:   make(map[string][]Variant),
		methods: make(map[string]map[string][]Variant),
	}
	r.collect()
	return r
}

func (r *Resolver) collect() {
	phpast.Walk(r.file.Root(), func(n *sitter.Node) bool {
		switch n.Type() {
		case "function_definition":
			name := r.nodeName(n)
			if name == "" {
				return true
			}
			key := strings.ToLower(name)
			r.funcs[key] = append(r.funcs[key], r.variantOf(n))
		case "method_declaration":
			name := r.nodeName(n)
			class := r.enclosingClassName(n)
			if name == "" || class == "" {
				return true
			}
			key := strings.ToLower(name)
			if r.methods[key] == nil {
				r.methods[key] = make(map[string][]Variant)
			}
			classKey := strings.ToLower(class)
			r.methods[key][classKey] = append(r.methods[key][classKey], r.variantOf(n))
		}
		return true
	})
}

func (r *Resolver) nodeName(n *sitter.Node) string {
	nameNode := n.ChildByFieldName("name")
	if nameNode == nil {
		return ""
	}
	return r.file.Text(nameNode)
}

func (r *Resolver) enclosingClassName(n *sitter.Node) string {
	for _, kind := range []string{"class_declaration", "trait_declaration", "interface_declaration", "enum_declaration"} {
		if owner := phpast.FindParent(n, kind); owner != nil {
			nameNode := owner.ChildByFieldName("name")
			if nameNode == nil {
				return ""
			}
			return r.file.Text(nameNode)
		}
	}
	return ""
}

func (r *Resolver) variantOf(decl *sitter.Node) Variant {
	params := decl.ChildByFieldName("parameters")
	if params == nil {
		return Variant{}
	}

	var v Variant
	for i := 0; i < int(params.NamedChildCount()); i++ {
		switch params.NamedChild(i).Type() {
		case "simple_parameter", "property_promotion_parameter":
			v.ParamCount++
		case "variadic_parameter":
			v.ParamCount++
			v.Variadic = true
		}
	}
	return v
}

// ResolveFunction resolves a plain function call target. Declarations in the
// unit shadow builtins.
func (r *Resolver) ResolveFunction(name string) *Signature {
	key := strings.ToLower(strings.TrimPrefix(name, "\\"))
	if variants, ok := r.funcs[key]; ok {
		return &Signature{Name: name, Variants: variants}
	}
	if variants, ok := builtins[key]; ok {
		return &Signature{Name: name, Variants: variants}
	}
	return nil
}

// ResolveMethod resolves an instance method call by name. If the method name
// is declared by more than one type in the unit the receiver is ambiguous
// and resolution fails.
func (r *Resolver) ResolveMethod(name string) *Signature {
	byClass, ok := r.methods[strings.ToLower(name)]
	if !ok || len(byClass) != 1 {
		return nil
	}
	for _, variants := range byClass {
		return &Signature{Name: name, Variants: variants}
	}
	return nil
}

// ResolveStatic resolves a static method call against a named class.
func (r *Resolver) ResolveStatic(class, name string) *Signature {
	byClass, ok := r.methods[strings.ToLower(name)]
	if !ok {
		return nil
	}
	variants, ok := byClass[strings.ToLower(class)]
	if !ok {
		return nil
	}
	return &Signature{Name: name, Variants: variants}
}
