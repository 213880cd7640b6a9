package view_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/goamaan/site/internal/query"
	"github.com/goamaan/site/internal/ui/markup"
	"github.com/goamaan/site/internal/ui/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

type row struct {
	ID   string
	Text string
}

func renderer() view.ListRenderer[row] {
	return view.ListRenderer[row]{
		Loading: templ.Raw(`<p class="loading">Loading</p>`),
		Error: func(err error) templ.Component {
			return markup.Component(func(_ context.Context, m *markup.Writer) {
				m.Element("p", view.FailureText("Error loading rows...", err), markup.A("class", "error"))
			})
		},
		Empty: templ.Raw(`<p class="empty">Nothing here</p>`),
		Item: func(r row) templ.Component {
			return markup.Component(func(_ context.Context, m *markup.Writer) {
				m.Element("span", r.Text)
			})
		},
		Key: func(r row) string { return r.ID },
	}
}

func render(t *testing.T, c templ.Component) *html.Node {
	t.Helper()
	out, err := markup.String(context.Background(), c)
	require.NoError(t, err)
	doc, err := html.Parse(strings.NewReader(out))
	require.NoError(t, err)
	return doc
}

// findAll returns every element matching pred in document order.
func findAll(n *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && pred(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func hasClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		for _, a := range n.Attr {
			if a.Key == "class" && a.Val == class {
				return true
			}
		}
		return false
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func TestResolve(t *testing.T) {
	boom := errors.New("backend unavailable")

	tests := []struct {
		name   string
		result query.Result[[]row]
		want   view.State
	}{
		{name: "pending", result: query.Pending[[]row](), want: view.StateLoading},
		{
			name:   "fetching ignores stale data and error",
			result: query.Result[[]row]{Data: []row{{ID: "1"}}, HasData: true, IsFetching: true, IsError: true, Err: boom},
			want:   view.StateLoading,
		},
		{name: "failed", result: query.Settle[[]row](nil, boom), want: view.StateError},
		{name: "error flag without data", result: query.Result[[]row]{IsError: true}, want: view.StateError},
		{name: "settled without data", result: query.Result[[]row]{}, want: view.StateError},
		{
			name:   "error flag wins over data",
			result: query.Result[[]row]{Data: []row{{ID: "1"}}, HasData: true, IsError: true, Err: boom},
			want:   view.StateError,
		},
		{name: "empty slice", result: query.Settle([]row{}, nil), want: view.StateEmpty},
		{name: "nil slice with data flag", result: query.Settle[[]row](nil, nil), want: view.StateEmpty},
		{name: "populated", result: query.Settle([]row{{ID: "1"}}, nil), want: view.StatePopulated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, view.Resolve(tt.result))
		})
	}
}

func TestList_Branches(t *testing.T) {
	boom := errors.New("backend unavailable")

	tests := []struct {
		name      string
		result    query.Result[[]row]
		wantClass string
		wantText  string
	}{
		{
			name:      "loading",
			result:    query.Result[[]row]{IsFetching: true, Err: boom, IsError: true},
			wantClass: "loading",
		},
		{
			name:      "error message verbatim",
			result:    query.Settle[[]row](nil, boom),
			wantClass: "error",
			wantText:  "Error loading rows... backend unavailable",
		},
		{
			name:      "generic error when data missing",
			result:    query.Result[[]row]{},
			wantClass: "error",
			wantText:  "Error loading rows... please try again later",
		},
		{
			name:      "empty",
			result:    query.Settle([]row{}, nil),
			wantClass: "empty",
		},
	}

	branches := []string{"loading", "error", "empty"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := render(t, view.List(tt.result, renderer()))

			for _, class := range branches {
				n := len(findAll(doc, hasClass(class)))
				if class == tt.wantClass {
					require.Equal(t, 1, n, "expected the %s branch", class)
				} else {
					assert.Zero(t, n, "unexpected %s branch", class)
				}
			}
			assert.Empty(t, findAll(doc, func(n *html.Node) bool { return n.Data == "li" }), "no rows outside populated")

			if tt.wantText != "" {
				assert.Equal(t, tt.wantText, text(findAll(doc, hasClass(tt.wantClass))[0]))
			}
		})
	}
}

func TestList_Populated(t *testing.T) {
	rows := []row{{ID: "c", Text: "third"}, {ID: "a", Text: "first"}, {ID: "b", Text: "<second>"}}
	lr := renderer()
	lr.Class = "rows"

	doc := render(t, view.List(query.Settle(rows, nil), lr))

	items := findAll(doc, func(n *html.Node) bool { return n.Data == "li" })
	require.Len(t, items, len(rows))
	for i, li := range items {
		assert.Equal(t, rows[i].ID, attr(li, "data-key"))
		assert.Equal(t, rows[i].Text, text(li), "rows keep input order")
	}
	assert.Len(t, findAll(doc, hasClass("rows")), 1)
	for _, class := range []string{"loading", "error", "empty"} {
		assert.Empty(t, findAll(doc, hasClass(class)))
	}
}

func TestList_DuplicateKey(t *testing.T) {
	rows := []row{{ID: "a"}, {ID: "b"}, {ID: "a"}}

	var sb strings.Builder
	err := view.List(query.Settle(rows, nil), renderer()).Render(context.Background(), &sb)

	assert.ErrorIs(t, err, view.ErrDuplicateKey)
	assert.Empty(t, sb.String(), "nothing is written for an ambiguous list")
}

func TestList_Header(t *testing.T) {
	lr := renderer()
	lr.Header = templ.Raw(`<h3 class="header">Rows</h3>`)

	tests := []struct {
		name   string
		result query.Result[[]row]
		want   int
	}{
		{name: "loading", result: query.Pending[[]row](), want: 0},
		{name: "error", result: query.Settle[[]row](nil, errors.New("x")), want: 0},
		{name: "empty", result: query.Settle([]row{}, nil), want: 1},
		{name: "populated", result: query.Settle([]row{{ID: "1"}}, nil), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := render(t, view.List(tt.result, lr))
			assert.Len(t, findAll(doc, hasClass("header")), tt.want)
		})
	}
}

func TestList_IndexKeys(t *testing.T) {
	lr := renderer()
	lr.Key = nil

	doc := render(t, view.List(query.Settle([]row{{Text: "x"}, {Text: "y"}}, nil), lr))
	items := findAll(doc, func(n *html.Node) bool { return n.Data == "li" })
	require.Len(t, items, 2)
	assert.Equal(t, "0", attr(items[0], "data-key"))
	assert.Equal(t, "1", attr(items[1], "data-key"))
}

func TestFailureText(t *testing.T) {
	assert.Equal(t, "Oops... please try again later", view.FailureText("Oops...", nil))
	assert.Equal(t, "Oops... no rows", view.FailureText("Oops...", errors.New("no rows")))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "loading", view.StateLoading.String())
	assert.Equal(t, "populated", view.StatePopulated.String())
	assert.Equal(t, "State(9)", view.State(9).String())
}
