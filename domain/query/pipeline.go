// Package query describes composition pipelines as data. A View is an ordered
// list of stage descriptors bound to a base collection; the persistence layer
// interprets it against the document store. Recipes stay store-agnostic:
// identifiers are carried as OID strings and resolved by the interpreter.
package query

// Direction of a sort stage.
type Direction int

const (
	Asc  Direction = 1
	Desc Direction = -1
)

// OID marks a string value to be resolved as a document identifier by the
// store interpreter.
type OID string

// View binds a pipeline to its base collection.
type View struct {
	Collection string
	Stages     []Stage
}

// Stage is one step of a composition pipeline.
type Stage interface{ stage() }

// Match filters documents by all listed conditions.
type Match struct{ Conds []Cond }

// Lookup joins a foreign collection into an array field. An optional
// sub-pipeline shapes the joined documents.
type Lookup struct {
	From         string
	LocalField   string
	ForeignField string
	As           string
	Pipeline     []Stage
}

// Unwind flattens a joined array field into one record per element.
type Unwind struct{ Path string }

// Derive adds computed fields. Fields keep declaration order so the
// interpreter output is deterministic.
type Derive struct{ Fields []DerivedField }

type DerivedField struct {
	Name string
	Expr Expr
}

// Sort orders records by one field.
type Sort struct {
	Field     string
	Direction Direction
}

// Project restricts output to the named fields (dotted paths allowed).
type Project struct{ Fields []string }

// Skip drops the first N records.
type Skip struct{ N int64 }

// Limit caps output at N records.
type Limit struct{ N int64 }

// CountAll collapses the stream into a single record holding the record
// count under As.
type CountAll struct{ As string }

// Group collapses the whole stream into one record of accumulated sums.
type Group struct{ Sums []GroupSum }

type GroupSum struct {
	Name string
	Expr Expr
}

func (Match) stage()    {}
func (Lookup) stage()   {}
func (Unwind) stage()   {}
func (Derive) stage()   {}
func (Sort) stage()     {}
func (Project) stage()  {}
func (Skip) stage()     {}
func (Limit) stage()    {}
func (CountAll) stage() {}
func (Group) stage()    {}

// Cond is a single match condition.
type Cond interface{ cond() }

// Eq matches documents whose field equals Value. An OID value is resolved to
// a store identifier.
type Eq struct {
	Field string
	Value any
}

// Exists matches documents where the field is present.
type Exists struct{ Field string }

// TextSearch matches documents where any listed field contains Term,
// case-insensitively.
type TextSearch struct {
	Fields []string
	Term   string
}

func (Eq) cond()         {}
func (Exists) cond()     {}
func (TextSearch) cond() {}

// Expr is a derived-field expression.
type Expr interface{ expr() }

// Count yields the cardinality of a joined array field.
type Count struct{ Field string }

// First collapses a one-to-one join expressed as one-to-many to its first
// element.
type First struct{ Field string }

// Last yields the last element of a joined array.
type Last struct{ Field string }

// ContainsViewer is true iff ViewerID appears among the values at Path
// across the joined array. An empty ViewerID (anonymous viewer) always
// evaluates to false.
type ContainsViewer struct {
	Path     string
	ViewerID string
}

// SumField accumulates a numeric field inside a Group stage.
type SumField struct{ Field string }

// SumOne counts records inside a Group stage.
type SumOne struct{}

func (Count) expr()          {}
func (First) expr()          {}
func (Last) expr()           {}
func (ContainsViewer) expr() {}
func (SumField) expr()       {}
func (SumOne) expr()         {}
