package storeerr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/homehero/homehero-server/internal/errs"
)

// duplicateKeyPattern pulls the collection and the first key field out of a
// server duplicate key message:
//
//	E11000 duplicate key error collection: homeheroDB.users index: uid_unique dup key: { uid: "u1" }
var duplicateKeyPattern = regexp.MustCompile(`collection: [^.\s]+\.(\S+) index: \S+ dup key: \{ ?"?([A-Za-z0-9_]+)"?:`)

// DuplicateKeyDetails returns the collection and field named in a duplicate
// key error message, or empty strings when the message has another shape.
func DuplicateKeyDetails(message string) (collection, field string) {
	matches := duplicateKeyPattern.FindStringSubmatch(message)
	if len(matches) != 3 {
		return "", ""
	}
	return matches[1], matches[2]
}

// generateErrorCode creates a machine-friendly code such as
// USER_ALREADY_EXISTS from a collection name and failure category.
func generateErrorCode(collection string, code Code) string {
	if collection == "" {
		collection = "RECORD"
	}

	domain := strings.ToUpper(collection)
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch code {
	case NotFound:
		action = "NOT_FOUND"
	case DuplicateKey:
		action = "ALREADY_EXISTS"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// entityName turns "services" into "Service".
func entityName(collection string) string {
	if collection == "" {
		return "record"
	}
	entity := collection
	if strings.HasSuffix(entity, "s") && len(entity) > 1 {
		entity = entity[:len(entity)-1]
	}
	return humanizeText(entity)
}

// humanizeText converts snake_case into Title Case.
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// HandleError converts a store error into an application error.
//
//   - *errs.HTTPError is returned unchanged
//   - no document: 404
//   - duplicate key: 400 naming the entity and field when they can be parsed
//   - anything else: generic 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	switch Classify(err) {
	case NotFound:
		return errs.NewNotFoundError("Resource not found", false, nil)

	case DuplicateKey:
		collection, field := DuplicateKeyDetails(err.Error())
		code := generateErrorCode(collection, DuplicateKey)

		identifier := "identifier"
		if field != "" {
			identifier = humanizeText(field)
		}
		message := fmt.Sprintf("A %s with this %s already exists", entityName(collection), identifier)

		return errs.NewBadRequestError(message, true, &code, nil, nil)
	}

	return errs.NewInternalServerError()
}

// Wrap converts err like HandleError, except that failures which would
// become a generic 500 carry message instead. Use it where an operation has
// a fixed user-facing failure message ("Failed to fetch services").
func Wrap(err error, message string) error {
	converted := HandleError(err)

	var httpErr *errs.HTTPError
	if errors.As(converted, &httpErr) && httpErr.Status == errs.NewInternalServerError().Status {
		return errs.NewStoreError(message)
	}

	return converted
}
