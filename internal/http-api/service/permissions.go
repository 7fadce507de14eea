package service

import "bookhive/internal/http-api/models"

// Identity is the authenticated caller as supplied by the auth middleware.
type Identity struct {
	ID      string
	IsStaff bool
}

// CanModify decides whether the caller may update or delete the given book.
// The book's owner may, staff may, nobody else. There is exactly one policy,
// so this is a plain function rather than an interface.
func CanModify(caller Identity, book *models.Book) bool {
	if caller.IsStaff {
		return true
	}
	return book.OwnerID != nil && *book.OwnerID == caller.ID
}
