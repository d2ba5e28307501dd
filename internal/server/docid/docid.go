// Package docid translates between the document store's native record key
// and the external string identifier used in every API payload. The
// external form is derived from the native key at every read boundary and
// is never persisted as a separate field.
package docid

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lunchboxd/lunchboxd-server/internal/common"
)

const (
	// NativeField is the store's reserved key field on raw documents.
	NativeField = "_id"
	// ExternalField is the identifier field exposed to clients.
	ExternalField = "id"
)

// ToExternal reshapes a raw stored document: the native key is removed and
// re-inserted in its canonical string form under the external field. A nil
// document, or one without a native key, is returned unchanged — the
// function only reshapes, it never errors, and "not found" stays the
// caller's problem.
//
// Bulk-imported records may carry a string-typed native key; those are
// passed through as-is.
func ToExternal(doc bson.M) bson.M {
	if doc == nil {
		return nil
	}

	raw, ok := doc[NativeField]
	if !ok {
		return doc
	}
	delete(doc, NativeField)
	doc[ExternalField] = ExternalString(raw)

	return doc
}

// ExternalString converts a raw native key value to its external string
// form. Both key representations occur in stored data: API-inserted
// records carry an ObjectID, bulk-imported ones a plain string.
func ExternalString(raw any) string {
	switch id := raw.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", raw)
	}
}

// ToNative parses an external identifier into the store's native key type.
// Client-supplied identifiers are untrusted input: a string that is not a
// well-formed key yields common.ErrInvalidIdentifier, which callers treat
// as "not found" rather than a server fault.
func ToNative(externalID string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(externalID)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", common.ErrInvalidIdentifier, externalID)
	}
	return oid, nil
}
