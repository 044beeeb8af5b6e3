// Package constants provides shared constants used throughout the shelfmark codebase.
// This includes catalog format values, file permissions, and other configuration
// values that should be consistent across the application.
package constants

// Catalog format constants define the on-disk record layout
const (
	// FieldDelimiter separates record fields within a catalog line
	FieldDelimiter = ":"

	// FieldCount is the number of fields in a well-formed catalog line
	FieldCount = 4

	// ISBNLength is the required number of digits in an ISBN
	ISBNLength = 13

	// CatalogExtension is the required file extension for catalog files
	CatalogExtension = ".txt"

	// AuditLogName is the filename of the error log written next to the catalog
	AuditLogName = "errors.log"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Error messages
const (
	// ErrMsgEmptyTitle is the standard message for a missing title field
	ErrMsgEmptyTitle = "Title is empty"

	// ErrMsgEmptyAuthor is the standard message for a missing author field
	ErrMsgEmptyAuthor = "Author is empty"

	// ErrMsgInvalidISBN is the standard message for a malformed ISBN
	ErrMsgInvalidISBN = "ISBN is not exactly 13 digits or contains non-numeric characters"

	// ErrMsgCopiesNotInteger is the standard message for an unparseable copies field
	ErrMsgCopiesNotInteger = "Copies is not a valid integer"

	// ErrMsgCopiesNotPositive is the standard message for a non-positive copy count
	ErrMsgCopiesNotPositive = "Copies must be a positive integer"

	// ErrMsgFieldCount is the standard message for a wrong field count
	ErrMsgFieldCount = "Book entry must have exactly 4 fields: Title:Author:ISBN:Copies"
)
