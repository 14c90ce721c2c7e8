// Package analyze provides package loading and type graph extraction.
//
// It uses golang.org/x/tools/go/packages with go/types to build an in-memory
// model of the struct types of a package and how they can be constructed.
//
// Key types:
//   - TypeID: package import path + type name
//   - StructInfo: fields, getter methods and constructor candidates
//   - FuncInfo: a constructor candidate with parameter names and positions
package analyze
