package gen

import (
	"go/types"
	"sort"
	"strconv"

	"object-builder/internal/common"
)

// Import paths referenced by every generated file.
const (
	BuilderImportPath  = "object-builder/builder"
	OverrideImportPath = "object-builder/override"
)

// Import groups, in file order.
const (
	groupStd = iota
	groupThirdParty
	groupLocal
)

// importSpec is one line of an import block.
type importSpec struct {
	Alias string
	Path  string
}

// locals are the identifiers declared inside generated routines. Packages
// with these names are imported under an alias so the locals cannot shadow
// them.
var locals = []string{"o", "src", "obj", "val", "err", "v"}

// importSet collects the packages referenced by a generated file and hands
// out unique local names for them.
type importSet struct {
	self   string
	byPath map[string]string
	taken  map[string]bool

	// builder and override are the names of the packages every file uses.
	builder  string
	override string
}

// newImportSet creates the import set of a file in package self. reserved
// lists the package-scope names of self, which imports must not reuse.
func newImportSet(self string, reserved ...string) *importSet {
	s := &importSet{
		self:   self,
		byPath: make(map[string]string),
		taken:  make(map[string]bool),
	}

	for _, name := range locals {
		s.taken[name] = true
	}

	for _, name := range reserved {
		s.taken[name] = true
	}

	s.builder = s.add(BuilderImportPath, "builder")
	s.override = s.add(OverrideImportPath, "override")

	return s
}

// add records path and returns the name it is referred to by.
func (s *importSet) add(path, name string) string {
	if n, ok := s.byPath[path]; ok {
		return n
	}

	local := name
	for i := 2; s.taken[local]; i++ {
		local = name + strconv.Itoa(i)
	}

	s.byPath[path] = local
	s.taken[local] = true

	return local
}

// qualifier is a types.Qualifier recording every package it is asked about.
func (s *importSet) qualifier(pkg *types.Package) string {
	if pkg.Path() == s.self {
		return ""
	}

	return s.add(pkg.Path(), pkg.Name())
}

// typeString renders t as seen from the generated package.
func (s *importSet) typeString(t types.Type) string {
	return types.TypeString(t, s.qualifier)
}

// groups returns the import specs grouped the way goimports lays them out:
// standard library, third party, then packages of the generating module.
func (s *importSet) groups() [][]importSpec {
	var buckets [3][]importSpec

	for path, local := range s.byPath {
		spec := importSpec{Path: path}
		if local != common.PkgAlias(path) {
			spec.Alias = local
		}

		g := s.group(path)
		buckets[g] = append(buckets[g], spec)
	}

	var out [][]importSpec

	for _, b := range buckets {
		if len(b) == 0 {
			continue
		}

		sort.Slice(b, func(i, j int) bool { return b[i].Path < b[j].Path })
		out = append(out, b)
	}

	return out
}

func (s *importSet) group(path string) int {
	switch {
	case common.PathRoot(path) == common.PathRoot(s.self):
		return groupLocal
	case common.IsStdlib(path):
		return groupStd
	default:
		return groupThirdParty
	}
}
