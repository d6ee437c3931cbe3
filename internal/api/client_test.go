package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blackwell-systems/bookmgr/internal/api"
	"github.com/blackwell-systems/bookmgr/internal/apitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultBaseURL(t *testing.T) {
	c := api.New("")
	assert.Equal(t, api.DefaultBaseURL, c.BaseURL())
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	c := api.New("http://example.test/api/livros///")
	assert.Equal(t, "http://example.test/api/livros", c.BaseURL())
}

func TestListBooks(t *testing.T) {
	srv := apitest.New(t)
	srv.Seed(
		api.Book{Name: "Dune", Format: api.FormatPhysical},
		api.Book{Name: "Neuromancer", Format: api.FormatKindle, Rating: 8, Comment: "sharp"},
	)
	c := api.New(srv.URL())

	books, err := c.ListBooks()
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Dune", books[0].Name)
	assert.Equal(t, api.FormatPhysical, books[0].Format)
	assert.Equal(t, 8, books[1].Rating)
	assert.Equal(t, "sharp", books[1].Comment)

	reqs := srv.RequestsFor(http.MethodGet)
	require.Len(t, reqs, 1)
	assert.Equal(t, apitest.BasePath+"/", reqs[0].Path)
}

func TestListBooks_Empty(t *testing.T) {
	srv := apitest.New(t)
	books, err := api.New(srv.URL()).ListBooks()
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestListBooks_ServerError(t *testing.T) {
	srv := apitest.New(t)
	srv.FailNext(http.MethodGet, http.StatusInternalServerError)

	_, err := api.New(srv.URL()).ListBooks()
	require.Error(t, err)
	assert.True(t, api.IsAPIError(err))
	assert.False(t, api.IsNetworkError(err))
}

func TestListBooks_Unreachable(t *testing.T) {
	srv := apitest.New(t)
	url := srv.URL()
	srv.Close()

	_, err := api.New(url).ListBooks()
	require.Error(t, err)
	assert.True(t, api.IsNetworkError(err))
}

func TestListBooks_MalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer ts.Close()

	_, err := api.New(ts.URL).ListBooks()
	require.Error(t, err)
	assert.True(t, api.IsNetworkError(err))
}

func TestCreateBook(t *testing.T) {
	srv := apitest.New(t)
	c := api.New(srv.URL())

	require.NoError(t, c.CreateBook("Dune", api.FormatPhysical))

	posts := srv.RequestsFor(http.MethodPost)
	require.Len(t, posts, 1)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(posts[0].Body), &body))
	assert.Equal(t, map[string]interface{}{"nome": "Dune", "streaming": "F"}, body)

	books, err := c.ListBooks()
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Name)
}

func TestCreateBook_RejectedIsAPIError(t *testing.T) {
	srv := apitest.New(t)
	err := api.New(srv.URL()).CreateBook("", api.FormatKindle)

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestCreateBook_OnlyExact200IsSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	err := api.New(ts.URL).CreateBook("Dune", api.FormatKindle)
	assert.True(t, api.IsAPIError(err))
}

func TestUpdateBook(t *testing.T) {
	srv := apitest.New(t)
	seeded := srv.Seed(api.Book{Name: "Dune", Format: api.FormatPhysical})
	id := seeded[0].ID
	c := api.New(srv.URL())

	require.NoError(t, c.UpdateBook(id, 7, "Great"))

	puts := srv.RequestsFor(http.MethodPut)
	require.Len(t, puts, 1)
	assert.JSONEq(t, `{"nota":7,"comentarios":"Great"}`, puts[0].Body)

	got, ok := srv.Book(id)
	require.True(t, ok)
	assert.Equal(t, 7, got.Rating)
	assert.Equal(t, "Great", got.Comment)

	// Repeating the same review leaves the same state.
	require.NoError(t, c.UpdateBook(id, 7, "Great"))
	again, _ := srv.Book(id)
	assert.Equal(t, got, again)
}

func TestUpdateBook_Missing(t *testing.T) {
	srv := apitest.New(t)
	err := api.New(srv.URL()).UpdateBook(42, 1, "")
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))
}

func TestDeleteBook(t *testing.T) {
	srv := apitest.New(t)
	seeded := srv.Seed(api.Book{Name: "Dune"}, api.Book{Name: "Emma"})
	c := api.New(srv.URL())

	require.NoError(t, c.DeleteBook(seeded[0].ID))

	books, err := c.ListBooks()
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Emma", books[0].Name)
}

func TestDeleteBook_ServerError(t *testing.T) {
	srv := apitest.New(t)
	seeded := srv.Seed(api.Book{Name: "Dune"})
	srv.FailNext(http.MethodDelete, http.StatusServiceUnavailable)

	err := api.New(srv.URL()).DeleteBook(seeded[0].ID)
	assert.True(t, api.IsAPIError(err))
	_, stillThere := srv.Book(seeded[0].ID)
	assert.True(t, stillThere)
}

func TestFindBook(t *testing.T) {
	srv := apitest.New(t)
	seeded := srv.Seed(api.Book{Name: "Dune"}, api.Book{Name: "Emma"})
	c := api.New(srv.URL())

	b, err := c.FindBook(seeded[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Emma", b.Name)

	_, err = c.FindBook(999)
	assert.ErrorIs(t, err, api.ErrBookNotFound)
	assert.True(t, api.IsNotFound(err))
}

func TestRequestsCarryRequestID(t *testing.T) {
	var got string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte("[]"))
	}))
	defer ts.Close()

	_, err := api.New(ts.URL).ListBooks()
	require.NoError(t, err)
	assert.Len(t, got, 36)
}

func TestWithTimeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer ts.Close()
	defer close(release)

	_, err := api.New(ts.URL, api.WithTimeout(50*time.Millisecond)).ListBooks()
	assert.True(t, api.IsNetworkError(err))
}
