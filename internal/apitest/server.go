// Package apitest runs an in-memory books API for tests. It mirrors the
// backend's routes and status codes closely enough to drive the client and
// the views end to end.
package apitest

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"testing"

	"github.com/blackwell-systems/bookmgr/internal/api"
	"github.com/gin-gonic/gin"
)

// BasePath is where the books collection is mounted.
const BasePath = "/api/livros"

// Request is a request as received by the fake server.
type Request struct {
	Method string
	Path   string
	Body   string
}

// Server is a fake books backend.
type Server struct {
	srv *httptest.Server

	mu       sync.Mutex
	books    map[int]api.Book
	nextID   int
	requests []Request
	failures map[string][]int // method -> queued status codes
}

// New starts a fake server and registers its shutdown with t.
func New(t testing.TB) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{
		books:    make(map[int]api.Book),
		nextID:   1,
		failures: make(map[string][]int),
	}

	r := gin.New()
	r.Use(s.record, s.injectFailure)
	books := r.Group(BasePath)
	books.GET("/", s.listBooks)
	books.POST("/", s.createBook)
	books.GET("/:id", s.getBook)
	books.PUT("/:id", s.updateBook)
	books.DELETE("/:id", s.deleteBook)

	s.srv = httptest.NewServer(r)
	t.Cleanup(s.srv.Close)
	return s
}

// URL returns the books endpoint to hand to api.New.
func (s *Server) URL() string {
	return s.srv.URL + BasePath
}

// Close stops the server early, e.g. to simulate an unreachable backend.
func (s *Server) Close() {
	s.srv.Close()
}

// Seed inserts books, assigning ids, and returns them as stored.
func (s *Server) Seed(books ...api.Book) []api.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.Book, 0, len(books))
	for _, b := range books {
		b.ID = s.nextID
		s.nextID++
		s.books[b.ID] = b
		out = append(out, b)
	}
	return out
}

// Books returns the stored books ordered by id.
func (s *Server) Books() []api.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLocked()
}

// Book returns the stored book with id, if any.
func (s *Server) Book(id int) (api.Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[id]
	return b, ok
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// RequestsFor returns the received requests with the given method.
func (s *Server) RequestsFor(method string) []Request {
	var out []Request
	for _, r := range s.Requests() {
		if r.Method == method {
			out = append(out, r)
		}
	}
	return out
}

// FailNext makes the next request with method answer with status instead
// of being handled. Calls queue up.
func (s *Server) FailNext(method string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method] = append(s.failures[method], status)
}

func (s *Server) sortedLocked() []api.Book {
	out := make([]api.Book, 0, len(s.books))
	for _, b := range s.books {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Server) record(c *gin.Context) {
	var body []byte
	if c.Request.Body != nil {
		body, _ = io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
	}
	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method: c.Request.Method,
		Path:   c.Request.URL.Path,
		Body:   string(body),
	})
	s.mu.Unlock()
	c.Next()
}

func (s *Server) injectFailure(c *gin.Context) {
	s.mu.Lock()
	queue := s.failures[c.Request.Method]
	status := 0
	if len(queue) > 0 {
		status = queue[0]
		s.failures[c.Request.Method] = queue[1:]
	}
	s.mu.Unlock()

	if status != 0 {
		c.AbortWithStatusJSON(status, gin.H{"error": http.StatusText(status)})
		return
	}
	c.Next()
}

func (s *Server) listBooks(c *gin.Context) {
	s.mu.Lock()
	books := s.sortedLocked()
	s.mu.Unlock()
	c.JSON(http.StatusOK, books)
}

func (s *Server) createBook(c *gin.Context) {
	var req struct {
		Name   string     `json:"nome"`
		Format api.Format `json:"streaming"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" || !req.Format.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nome and a valid streaming are required"})
		return
	}

	s.mu.Lock()
	book := api.Book{ID: s.nextID, Name: req.Name, Format: req.Format}
	s.nextID++
	s.books[book.ID] = book
	s.mu.Unlock()

	c.JSON(http.StatusOK, book)
}

func (s *Server) getBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}
	book, found := s.Book(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		return
	}
	c.JSON(http.StatusOK, book)
}

func (s *Server) updateBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}
	var req struct {
		Rating  *int   `json:"nota"`
		Comment string `json:"comentarios"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Rating == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nota is required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	book, found := s.books[id]
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		return
	}
	book.Rating = *req.Rating
	book.Comment = req.Comment
	s.books[id] = book
	c.JSON(http.StatusOK, book)
}

func (s *Server) deleteBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, found := s.books[id]; !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		return
	}
	delete(s.books, id)
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func bookID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
