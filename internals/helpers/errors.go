package helper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

// Taksonomi error layanan. Semua service mengembalikan *fiber.Error
// supaya controller cukup meneruskan ke FromFiberError.

func ErrNotFound(entity string, id any) *fiber.Error {
	return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("%s with ID %v not found", entity, id))
}

func ErrNotFoundMsg(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusNotFound, message)
}

func ErrConflict(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusConflict, message)
}

func ErrUnauthenticated(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusUnauthorized, message)
}

func ErrValidation(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func ErrInternal(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusInternalServerError, message)
}

// StatusOf mengembalikan HTTP status dari error layanan (500 kalau bukan *fiber.Error).
func StatusOf(err error) int {
	if err == nil {
		return fiber.StatusOK
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

// IsUniqueViolation: SQLSTATE 23505 dari pgx, fallback ke teks error.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}
