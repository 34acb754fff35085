package inquiry

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"sort"
)

// Query is one query directive extracted from a ledger file.
type Query struct {
	// Date is the directive date in YYYY-MM-DD form.
	Date string
	// Name is the query's name as given in the directive.
	Name string
	// QueryString is the raw query template before substitution.
	QueryString string
}

// Queries is the ordered list of query directives found in a ledger.
type Queries []Query

// queryDirectivePattern matches a ledger query directive line:
//
//	2024-01-01 query "cash" "SELECT * WHERE account = {account}"
//
// Everything else in the ledger is ignored; this loader does not parse
// ledger syntax beyond the directive line.
var queryDirectivePattern = regexp.MustCompile(`^\s*(\d{4}-\d{2}-\d{2})\s+query\s+"([^"]+)"\s+"([^"]*)"\s*$`)

// ParseQueryDirective parses a single ledger line as a query directive.
// The second return value reports whether the line is a directive.
func ParseQueryDirective(line string) (Query, bool) {
	match := queryDirectivePattern.FindStringSubmatch(line)
	if match == nil {
		return Query{}, false
	}
	return Query{
		Date:        match[1],
		Name:        match[2],
		QueryString: match[3],
	}, true
}

// LoadLedger scans a ledger for query directives, in file order. A ledger
// without any query directive is an error.
func LoadLedger(r io.Reader) (Queries, error) {
	var queries Queries
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if query, ok := ParseQueryDirective(scanner.Text()); ok {
			queries = append(queries, query)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, NewLedgerReadError("", err)
	}
	if len(queries) == 0 {
		return nil, NewNoQueriesError()
	}
	return queries, nil
}

// LoadLedgerFile opens a ledger file and extracts its query directives.
func LoadLedgerFile(path string) (Queries, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, NewLedgerReadError(path, err)
	}
	defer file.Close()

	queries, err := LoadLedger(file)
	if err != nil {
		return nil, err
	}
	return queries, nil
}

// Find returns the first query with the given name. An unknown name is an
// error listing the available query names.
func (q Queries) Find(name string) (Query, error) {
	for _, query := range q {
		if query.Name == name {
			return query, nil
		}
	}
	return Query{}, NewQueryNotFoundError(name, q.Names())
}

// Names returns all query names, sorted.
func (q Queries) Names() []string {
	names := make([]string, len(q))
	for i, query := range q {
		names[i] = query.Name
	}
	sort.Strings(names)
	return names
}
