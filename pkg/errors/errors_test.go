package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/shelfmark/shelfmark/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestMalformedEntryError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.MalformedEntryError{
			Field:   "title",
			Message: "Title is empty",
		}
		assert.Equal(t, "Title is empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrMalformedEntry))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewMalformedEntryError("copies", "abc", "Copies is not a valid integer")
		assert.Equal(t, "Copies is not a valid integer", err.Error())
		assert.True(t, pkgerrors.IsMalformedEntry(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewMalformedEntryError("author", "", "Author is empty")
		wrapped := errors.Join(errors.New("load failed"), base)
		assert.True(t, pkgerrors.IsMalformedEntry(wrapped))
	})
}

func TestInvalidISBNError(t *testing.T) {
	err := pkgerrors.NewInvalidISBNError("12345", "ISBN is not exactly 13 digits or contains non-numeric characters")
	assert.Contains(t, err.Error(), "13 digits")
	assert.True(t, pkgerrors.IsInvalidISBN(err))
	assert.False(t, pkgerrors.IsMalformedEntry(err))
}

func TestDuplicateISBNError(t *testing.T) {
	err := pkgerrors.NewDuplicateISBNError("9780441013593", 2)
	assert.Equal(t, "More than one book with this ISBN was found: 9780441013593", err.Error())
	assert.True(t, pkgerrors.IsDuplicateISBN(err))
	assert.Equal(t, 2, err.Count)
}

func TestUsageError(t *testing.T) {
	t.Run("insufficient arguments", func(t *testing.T) {
		err := pkgerrors.NewInsufficientArgumentsError("expected <catalog.txt> <operation>")
		assert.True(t, errors.Is(err, pkgerrors.ErrInsufficientArguments))
		assert.False(t, errors.Is(err, pkgerrors.ErrInvalidFileName))
		assert.True(t, pkgerrors.IsUsageError(err))
	})

	t.Run("invalid file name", func(t *testing.T) {
		err := pkgerrors.NewInvalidFileNameError("First argument must end with .txt")
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidFileName))
		assert.True(t, pkgerrors.IsUsageError(err))
	})
}

func TestIOError(t *testing.T) {
	base := errors.New("permission denied")
	err := pkgerrors.NewIOError("read", "/tmp/catalog.txt", base)
	assert.Contains(t, err.Error(), "read")
	assert.Contains(t, err.Error(), "/tmp/catalog.txt")
	assert.Equal(t, base, errors.Unwrap(err))

	assert.Nil(t, pkgerrors.WrapIO("write", "x", nil))
}

func TestLineError(t *testing.T) {
	inner := pkgerrors.NewMalformedEntryError("", "OnlyTitle:OnlyAuthor", "Book entry must have exactly 4 fields: Title:Author:ISBN:Copies")
	err := pkgerrors.WrapLine("OnlyTitle:OnlyAuthor", inner)

	var lineErr *pkgerrors.LineError
	assert.True(t, errors.As(err, &lineErr))
	assert.Equal(t, "OnlyTitle:OnlyAuthor", lineErr.Line)
	assert.True(t, pkgerrors.IsMalformedEntry(err))

	assert.Nil(t, pkgerrors.WrapLine("whatever", nil))
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"invalid isbn", pkgerrors.NewInvalidISBNError("x", "bad"), "InvalidISBN"},
		{"duplicate isbn", pkgerrors.NewDuplicateISBNError("9780441013593", 3), "DuplicateISBN"},
		{"malformed", pkgerrors.NewMalformedEntryError("", "", "Title is empty"), "MalformedBookEntry"},
		{"insufficient args", pkgerrors.NewInsufficientArgumentsError("too few"), "InsufficientArguments"},
		{"invalid file name", pkgerrors.NewInvalidFileNameError("not .txt"), "InvalidFileName"},
		{"io", pkgerrors.NewIOError("read", "c.txt", errors.New("boom")), "IOError"},
		{"unknown", errors.New("surprise"), "Unexpected"},
		{"wrapped line error", pkgerrors.WrapLine("raw", pkgerrors.NewInvalidISBNError("raw", "bad")), "InvalidISBN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pkgerrors.Kind(tt.err))
		})
	}
}
