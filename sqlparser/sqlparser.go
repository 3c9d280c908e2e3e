// Package sqlparser extracts tables, columns and foreign-key
// relationships from free-form CREATE TABLE text. It recognizes a
// pragmatic subset of the syntax and recovers what it can; malformed
// clauses are skipped rather than failing the whole parse.
package sqlparser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ridoystarlord/schemaviz/schema"
)

var (
	blockCommentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentPattern  = regexp.MustCompile(`--[^\n]*`)
	whitespacePattern   = regexp.MustCompile(`\s+`)

	// CREATE TABLE [IF NOT EXISTS] <name> ( ... )
	createTablePattern = regexp.MustCompile(
		`(?i)create\s+table\s+(?:if\s+not\s+exists\s+)?` + identifierExpr + `\s*\(`)

	// PRIMARY KEY (a, b)
	tablePKPattern = regexp.MustCompile(`(?i)^primary\s+key\s*\(([^)]+)\)`)

	// FOREIGN KEY (col) REFERENCES table (col)
	tableFKPattern = regexp.MustCompile(
		`(?i)^foreign\s+key\s*\(([^)]+)\)\s*references\s+` + identifierExpr + `\s*\(([^)]+)\)`)

	// name type or name type(args)
	columnDefPattern = regexp.MustCompile(
		`^` + identifierExpr + `\s+([A-Za-z_][A-Za-z0-9_]*(?:\s*\([^)]*\))?)`)

	// inline REFERENCES table (col)
	inlineRefPattern = regexp.MustCompile(
		`(?i)\breferences\s+` + identifierExpr + `\s*\(([^)]+)\)`)

	primaryKeyPattern = regexp.MustCompile(`(?i)\bprimary\s+key\b`)
	notNullPattern    = regexp.MustCompile(`(?i)\bnot\s+null\b`)
)

// identifierExpr matches a bare, double-quoted or backtick-quoted
// identifier in one capture group (quotes included when present).
const identifierExpr = "([A-Za-z_][A-Za-z0-9_$.]*|\"[^\"]+\"|`[^`]+`)"

// knownTypes are the base types whose display form is lowercased.
// Anything else passes through verbatim.
var knownTypes = map[string]bool{
	"int": true, "integer": true, "smallint": true, "bigint": true,
	"serial": true, "bigserial": true, "smallserial": true,
	"text": true, "varchar": true, "char": true, "character": true,
	"uuid": true, "boolean": true, "bool": true,
	"date": true, "time": true, "timestamp": true, "timestamptz": true,
	"numeric": true, "decimal": true, "real": true, "float": true,
	"double": true, "money": true,
	"json": true, "jsonb": true, "bytea": true, "inet": true,
}

// clauseKind tags the recognized clause classes inside a table body.
type clauseKind int

const (
	primaryKeyConstraint clauseKind = iota
	foreignKeyConstraint
	namedConstraint
	columnDefinition
)

// classifiers are evaluated in priority order; the first match wins.
// The final entry is a catch-all, so every clause classifies.
var classifiers = []struct {
	kind  clauseKind
	match func(clause string) bool
}{
	{primaryKeyConstraint, func(c string) bool { return hasKeywordPrefix(c, "primary key") }},
	{foreignKeyConstraint, func(c string) bool { return hasKeywordPrefix(c, "foreign key") }},
	{namedConstraint, func(c string) bool { return hasKeywordPrefix(c, "constraint") }},
	{columnDefinition, func(c string) bool { return true }},
}

// ParseSQL parses CREATE TABLE statements into the canonical schema
// model. It returns an error only when no statement at all is found;
// anything unrecognized inside a statement is skipped.
func ParseSQL(text string) (*schema.Schema, error) {
	text = preprocess(text)

	s := &schema.Schema{}
	rest := text
	for {
		loc := createTablePattern.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}
		name := unquote(rest[loc[2]:loc[3]])
		// loc[1] sits just past the opening paren.
		body, end := balancedBody(rest, loc[1]-1)
		if end < 0 {
			// Unclosed statement; nothing more to recover.
			break
		}
		table := schema.NewTable(name)
		parseTableBody(&table, body, s)
		s.Tables = append(s.Tables, table)
		rest = rest[end:]
	}

	if len(s.Tables) == 0 {
		return &schema.Schema{}, fmt.Errorf("no CREATE TABLE statements found in input")
	}
	return s, nil
}

// preprocess strips block comments, then line comments, then collapses
// whitespace runs to single spaces. Comment stripping happens first so
// comments inside or between statements never confuse the matcher.
func preprocess(text string) string {
	text = blockCommentPattern.ReplaceAllString(text, " ")
	text = lineCommentPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// balancedBody returns the text between the opening paren at start and
// its matching close paren, plus the index just past the close. Returns
// end -1 when the parens never balance.
func balancedBody(text string, start int) (string, int) {
	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return text[start+1 : i], i + 1
			}
		}
	}
	return "", -1
}

// splitClauses splits a table body on top-level commas only, so type
// parameters like numeric(10,2) and column lists stay intact.
func splitClauses(body string) []string {
	var clauses []string
	depth := 0
	start := 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				clauses = append(clauses, strings.TrimSpace(body[start:i]))
				start = i + 1
			}
		}
	}
	clauses = append(clauses, strings.TrimSpace(body[start:]))
	return clauses
}

func parseTableBody(table *schema.Table, body string, s *schema.Schema) {
	for _, clause := range splitClauses(body) {
		if clause == "" {
			continue
		}
		for _, c := range classifiers {
			if !c.match(clause) {
				continue
			}
			switch c.kind {
			case primaryKeyConstraint:
				applyTablePK(table, clause)
			case foreignKeyConstraint:
				applyTableFK(table, clause, s)
			case namedConstraint:
				// Named constraints are not interpreted.
			case columnDefinition:
				applyColumnDef(table, clause, s)
			}
			break
		}
	}
}

// applyTablePK marks every declared column named in a table-level
// PRIMARY KEY (a, b) list. Names with no matching column are ignored.
func applyTablePK(table *schema.Table, clause string) {
	m := tablePKPattern.FindStringSubmatch(clause)
	if m == nil {
		return
	}
	for _, name := range strings.Split(m[1], ",") {
		name = unquote(strings.TrimSpace(name))
		if col, ok := table.ColumnByName(name); ok {
			col.PrimaryKey = true
			col.Nullable = false
		}
	}
}

// applyTableFK handles FOREIGN KEY (col) REFERENCES table(col). The
// referencing column is marked when declared; the relationship is
// recorded either way.
func applyTableFK(table *schema.Table, clause string, s *schema.Schema) {
	m := tableFKPattern.FindStringSubmatch(clause)
	if m == nil {
		return
	}
	fromColumn := unquote(firstListItem(m[1]))
	toTable := unquote(m[2])
	toColumn := unquote(firstListItem(m[3]))

	if col, ok := table.ColumnByName(fromColumn); ok {
		col.ForeignKey = true
		col.References = &schema.Reference{Table: toTable, Column: toColumn}
	}
	s.Relationships = append(s.Relationships,
		schema.NewRelationship(table.Name, fromColumn, toTable, toColumn))
}

// applyColumnDef parses one column definition clause. Clauses that do
// not yield a name and type are skipped.
func applyColumnDef(table *schema.Table, clause string, s *schema.Schema) {
	m := columnDefPattern.FindStringSubmatch(clause)
	if m == nil {
		return
	}
	col := schema.Column{
		Name: unquote(m[1]),
		Type: normalizeType(m[2]),
	}

	pk := primaryKeyPattern.MatchString(clause)
	col.PrimaryKey = pk
	// PRIMARY KEY forces non-null regardless of an explicit NOT NULL.
	col.Nullable = !pk && !notNullPattern.MatchString(clause)

	if ref := inlineRefPattern.FindStringSubmatch(clause); ref != nil {
		toTable := unquote(ref[1])
		toColumn := unquote(firstListItem(ref[2]))
		col.ForeignKey = true
		col.References = &schema.Reference{Table: toTable, Column: toColumn}
		s.Relationships = append(s.Relationships,
			schema.NewRelationship(table.Name, col.Name, toTable, toColumn))
	}

	table.Columns = append(table.Columns, col)
}

// normalizeType lowercases recognized base types for display and passes
// unrecognized ones through verbatim.
func normalizeType(typ string) string {
	typ = strings.ReplaceAll(typ, " ", "")
	base := typ
	if i := strings.IndexByte(base, '('); i >= 0 {
		base = base[:i]
	}
	if knownTypes[strings.ToLower(base)] {
		return strings.ToLower(typ)
	}
	return typ
}

func hasKeywordPrefix(clause, keywords string) bool {
	for _, kw := range strings.Fields(keywords) {
		if len(clause) < len(kw) || !strings.EqualFold(clause[:len(kw)], kw) {
			return false
		}
		rest := clause[len(kw):]
		if rest != "" && isIdentChar(rest[0]) {
			return false
		}
		clause = strings.TrimLeft(rest, " ")
	}
	return true
}

func isIdentChar(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func firstListItem(list string) string {
	if i := strings.IndexByte(list, ','); i >= 0 {
		list = list[:i]
	}
	return strings.TrimSpace(list)
}

func unquote(ident string) string {
	if len(ident) >= 2 {
		if (ident[0] == '"' && ident[len(ident)-1] == '"') ||
			(ident[0] == '`' && ident[len(ident)-1] == '`') {
			return ident[1 : len(ident)-1]
		}
	}
	return ident
}
