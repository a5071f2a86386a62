package parser

import (
	"sort"
	"sync"

	"github.com/vcschapp/oniguruma-to-es/ast"
)

// Pass describes one of the structural rewrites Options.Optimize enables
// (spec §4.4, §4.6). Both passes always run together when Optimize is
// true; Pass exists so the optimizer's behavior is introspectable
// (PassNames, below) instead of being two bare "if optimize" checks with
// no names attached — the way the teacher made regex *flavors*
// pluggable and listable (internal/flavor.Register/Get/List) instead of
// hard-coding a switch. There is only one dialect here, so that registry
// is repurposed one level down, for optimizer passes instead of flavors.
type Pass struct {
	Name        string
	Description string
}

var (
	passRegistry     = make(map[string]Pass)
	passRegistryLock sync.RWMutex
)

func registerPass(p Pass) {
	passRegistryLock.Lock()
	defer passRegistryLock.Unlock()
	passRegistry[p.Name] = p
}

// PassNames returns the names of every registered optimizer pass, sorted.
func PassNames() []string {
	passRegistryLock.RLock()
	defer passRegistryLock.RUnlock()
	names := make([]string, 0, len(passRegistry))
	for name := range passRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	registerPass(Pass{
		Name:        "intersection-collapse",
		Description: "collapses a character class intersection of one operand into its sole class, propagating negation by XOR",
	})
	registerPass(Pass{
		Name:        "redundant-group-collapse",
		Description: "collapses a non-capturing group whose sole body is itself a group, when the atomic/flags merge is lossless",
	})
}

// optimizeCharacterClass implements the intersection-collapse pass (spec
// §4.4). For each inner base containing exactly one nested
// CharacterClass element, the base is replaced by that child (negation
// combined by XOR). If the intersection is then left with exactly one
// class, that class is hoisted to replace the outer class entirely,
// again combining negation by XOR.
func optimizeCharacterClass(outer *ast.CharacterClass, intersection *ast.CharacterClassIntersection) ast.Node {
	for i, base := range intersection.Classes {
		if len(base.Elements) != 1 {
			continue
		}
		child, ok := base.Elements[0].(*ast.CharacterClass)
		if !ok {
			continue
		}
		child.Negate = base.Negate != child.Negate
		child.SetParent(intersection)
		intersection.Classes[i] = child
	}

	if len(intersection.Classes) == 1 {
		hoisted := intersection.Classes[0]
		hoisted.Negate = outer.Negate != hoisted.Negate
		return hoisted
	}

	return outer
}
