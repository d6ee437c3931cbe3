package api

import (
	"errors"
	"net/http"
)

// Book is one catalog entry as served by the backend.
type Book struct {
	ID      int    `json:"id"`
	Name    string `json:"nome"`
	Format  Format `json:"streaming"`
	Rating  int    `json:"nota"`
	Comment string `json:"comentarios"`
}

type createBookRequest struct {
	Name   string `json:"nome"`
	Format Format `json:"streaming"`
}

type reviewRequest struct {
	Rating  int    `json:"nota"`
	Comment string `json:"comentarios"`
}

// ListBooks fetches the whole catalog.
func (c *Client) ListBooks() ([]Book, error) {
	var books []Book
	if err := c.doJSON("list books", http.MethodGet, c.collectionURL(), nil, &books); err != nil {
		return nil, err
	}
	if books == nil {
		books = []Book{}
	}
	return books, nil
}

// CreateBook registers a new book. The server assigns its id.
func (c *Client) CreateBook(name string, format Format) error {
	body := createBookRequest{Name: name, Format: format}
	return c.doJSON("create book", http.MethodPost, c.collectionURL(), body, nil)
}

// UpdateBook stores a review (rating and comment) on an existing book.
func (c *Client) UpdateBook(id, rating int, comment string) error {
	body := reviewRequest{Rating: rating, Comment: comment}
	return c.doJSON("update book", http.MethodPut, c.bookURL(id), body, nil)
}

// DeleteBook removes a book.
func (c *Client) DeleteBook(id int) error {
	return c.doJSON("delete book", http.MethodDelete, c.bookURL(id), nil, nil)
}

// FindBook looks a book up by id through the list endpoint, the only read
// endpoint the backend exposes. Returns ErrBookNotFound if absent.
func (c *Client) FindBook(id int) (*Book, error) {
	books, err := c.ListBooks()
	if err != nil {
		return nil, err
	}
	for i := range books {
		if books[i].ID == id {
			return &books[i], nil
		}
	}
	return nil, ErrBookNotFound
}

// IsNotFound reports whether err means the book does not exist, either
// locally (FindBook) or as a 404 from the server.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrBookNotFound) {
		return true
	}
	var ae *APIError
	return errors.As(err, &ae) && ae.StatusCode == http.StatusNotFound
}
