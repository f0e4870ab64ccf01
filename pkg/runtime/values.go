package runtime

import "fmt"

// Kind identifies the runtime value category.
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindArray
	KindFile
	KindFolder
	KindApp
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindFile:
		return "File"
	case KindFolder:
		return "Folder"
	case KindApp:
		return "App"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values. The set of
// implementations is closed: the six types below.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

//-----------------------------------------------------------------------------
// Collections
//-----------------------------------------------------------------------------

// ArrayValue holds fully resolved elements in literal order.
type ArrayValue struct {
	Elements []Value
}

func (v *ArrayValue) Kind() Kind { return KindArray }

//-----------------------------------------------------------------------------
// Handles
//-----------------------------------------------------------------------------

// FileValue names a filesystem entry. It is not an open descriptor; every
// operation opens and closes the file on its own.
type FileValue struct {
	Path string
}

func (v FileValue) Kind() Kind { return KindFile }

// FolderValue names a directory.
type FolderValue struct {
	Path string
}

func (v FolderValue) Kind() Kind { return KindFolder }

// AppValue names an external executable, resolved through PATH when started.
type AppValue struct {
	Name string
}

func (v AppValue) Kind() Kind { return KindApp }
