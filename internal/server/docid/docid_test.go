package docid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lunchboxd/lunchboxd-server/internal/common"
)

func TestToExternal_ObjectID(t *testing.T) {
	t.Parallel()

	oid := primitive.NewObjectID()
	doc := bson.M{NativeField: oid, "name": "Dimsum Treats"}

	got := ToExternal(doc)

	assert.Equal(t, oid.Hex(), got[ExternalField])
	assert.Equal(t, "Dimsum Treats", got["name"])
	_, hasNative := got[NativeField]
	assert.False(t, hasNative, "native key must be removed")
}

func TestToExternal_LegacyStringKey(t *testing.T) {
	t.Parallel()

	doc := bson.M{NativeField: "resto-42", "name": "Topside Diner"}

	got := ToExternal(doc)

	assert.Equal(t, "resto-42", got[ExternalField])
	_, hasNative := got[NativeField]
	assert.False(t, hasNative)
}

func TestToExternal_NilAndMissingKey(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ToExternal(nil))

	doc := bson.M{"name": "no key"}
	assert.Equal(t, bson.M{"name": "no key"}, ToExternal(doc))
}

func TestExternalString(t *testing.T) {
	t.Parallel()

	oid := primitive.NewObjectID()
	assert.Equal(t, oid.Hex(), ExternalString(oid))
	assert.Equal(t, "user-7", ExternalString("user-7"))
	assert.Equal(t, "", ExternalString(nil))
	assert.Equal(t, "42", ExternalString(42))
}

func TestToNative_RoundTrip(t *testing.T) {
	t.Parallel()

	oid := primitive.NewObjectID()

	got, err := ToNative(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, got)
}

func TestToNative_Malformed(t *testing.T) {
	t.Parallel()

	for _, bad := range []string{"", "xyz", "123", "zzzzzzzzzzzzzzzzzzzzzzzz", "64f1c0ffee"} {
		_, err := ToNative(bad)
		if !errors.Is(err, common.ErrInvalidIdentifier) {
			t.Fatalf("ToNative(%q): expected ErrInvalidIdentifier, got %v", bad, err)
		}
	}
}
