// Package query turns endpoint parameters into question filters and renders
// them as SQL for the supported dialects.
package query

import (
	"math"
	"strconv"
	"strings"
)

// PageSize is the number of questions returned per listing page.
const PageSize = 10

// AllCategories is the quiz category id that disables category filtering.
const AllCategories int64 = 0

// Filter is a persistence-neutral predicate over the questions table.
// The zero value selects every question.
type Filter struct {
	CategoryID *int64
	ExcludeIDs []int64
	// Pattern is a LIKE pattern matched case-insensitively against the
	// question text. Empty means no text predicate.
	Pattern string
	// Limit of 0 means unbounded.
	Limit  int
	Offset int
}

// Page returns the filter for the 1-indexed listing page n. Pages below 1,
// or so large that the offset would overflow, select nothing.
func Page(n int) Filter {
	if n < 1 || n > math.MaxInt/PageSize {
		return Filter{Limit: PageSize, Offset: -1}
	}
	return Filter{Limit: PageSize, Offset: (n - 1) * PageSize}
}

// ParsePage reads the page query parameter. Missing or non-integer values
// fall back to the first page.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 1
	}
	return n
}

// Search returns a filter matching questions whose text contains term.
func Search(term string) Filter {
	return Filter{Pattern: SubstringPattern(term)}
}

// SubstringPattern wraps term in wildcards, escaping LIKE metacharacters so
// the term itself is matched literally.
func SubstringPattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}

// ByCategory returns a filter matching questions of one category.
func ByCategory(categoryID int64) Filter {
	return Filter{CategoryID: &categoryID}
}

// Quiz returns the candidate filter for a quiz round: every question not in
// previous, restricted to categoryID unless it is AllCategories.
func Quiz(categoryID int64, previous []int64) Filter {
	f := Filter{ExcludeIDs: previous}
	if categoryID != AllCategories {
		f.CategoryID = &categoryID
	}
	return f
}

// Empty reports whether the filter can only select zero rows.
func (f Filter) Empty() bool {
	return f.Offset < 0
}

// Dialect captures the SQL differences between the supported engines.
type Dialect struct {
	Name    string
	bindvar func(n int) string
	like    string
}

var (
	SQLite = Dialect{
		Name:    "sqlite",
		bindvar: func(int) string { return "?" },
		like:    "LIKE",
	}
	Postgres = Dialect{
		Name:    "postgres",
		bindvar: func(n int) string { return "$" + strconv.Itoa(n) },
		like:    "ILIKE",
	}
)

// Bindvar returns the placeholder for the n-th (1-indexed) argument.
func (d Dialect) Bindvar(n int) string {
	return d.bindvar(n)
}

// Where renders the filter predicate, without LIMIT/OFFSET. The returned
// clause is empty when the filter has no predicate.
func (f Filter) Where(d Dialect) (string, []any) {
	var (
		conds []string
		args  []any
	)
	next := func(v any) string {
		args = append(args, v)
		return d.bindvar(len(args))
	}

	if f.CategoryID != nil {
		conds = append(conds, "category = "+next(*f.CategoryID))
	}
	if len(f.ExcludeIDs) > 0 {
		marks := make([]string, len(f.ExcludeIDs))
		for i, id := range f.ExcludeIDs {
			marks[i] = next(id)
		}
		conds = append(conds, "id NOT IN ("+strings.Join(marks, ", ")+")")
	}
	if f.Pattern != "" {
		conds = append(conds, "question "+d.like+" "+next(f.Pattern)+` ESCAPE '\'`)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// Select renders a full SELECT over the questions table ordered by id.
func (f Filter) Select(d Dialect, columns string) (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(columns)
	b.WriteString(" FROM questions")

	where, args := f.Where(d)
	if where != "" {
		b.WriteString(" ")
		b.WriteString(where)
	}
	b.WriteString(" ORDER BY id")

	if f.Limit > 0 {
		args = append(args, f.Limit)
		b.WriteString(" LIMIT " + d.bindvar(len(args)))
		if f.Offset > 0 {
			args = append(args, f.Offset)
			b.WriteString(" OFFSET " + d.bindvar(len(args)))
		}
	}
	return b.String(), args
}
