// Package route parses and formats the application's location, the value
// that decides which view is on screen.
package route

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	// PathList is the catalog view.
	PathList = "/"
	// PathDetail is the review view of one book.
	PathDetail = "/review"
	// QueryID is the query parameter carrying the book id on PathDetail.
	QueryID = "id"
)

// ErrInvalidRoute is returned (wrapped) for any route that cannot be shown.
var ErrInvalidRoute = errors.New("invalid route")

// Kind enumerates the route variants.
type Kind int

const (
	KindList Kind = iota
	KindDetail
)

// Route is the current UI location: the list, or the detail view of a book.
// The zero value is the list.
type Route struct {
	Kind   Kind
	BookID int
}

// List returns the list route.
func List() Route {
	return Route{Kind: KindList}
}

// Detail returns the detail route for a book.
func Detail(bookID int) Route {
	return Route{Kind: KindDetail, BookID: bookID}
}

// IsDetail reports whether r points at a single book.
func (r Route) IsDetail() bool {
	return r.Kind == KindDetail
}

// String formats r back into its path-plus-query form.
func (r Route) String() string {
	if r.Kind == KindDetail {
		return PathDetail + "?" + QueryID + "=" + strconv.Itoa(r.BookID)
	}
	return PathList
}

// Parse reads a path-plus-query string. The detail route takes its book id
// from the first "id" query value; a missing or non-positive id is an error
// rather than a view with nothing to show.
func Parse(s string) (Route, error) {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return Route{}, fmt.Errorf("%w: %v", ErrInvalidRoute, err)
	}

	switch strings.TrimSuffix(u.Path, "/") {
	case "":
		return List(), nil
	case PathDetail:
		ids := u.Query()[QueryID]
		if len(ids) == 0 || ids[0] == "" {
			return Route{}, fmt.Errorf("%w: %s needs an %q parameter", ErrInvalidRoute, PathDetail, QueryID)
		}
		id, err := strconv.Atoi(ids[0])
		if err != nil || id <= 0 {
			return Route{}, fmt.Errorf("%w: book id %q is not a positive integer", ErrInvalidRoute, ids[0])
		}
		return Detail(id), nil
	default:
		return Route{}, fmt.Errorf("%w: unknown path %q", ErrInvalidRoute, u.Path)
	}
}
