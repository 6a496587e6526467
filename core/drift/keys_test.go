package drift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalKey(t *testing.T) {
	tests := []struct {
		name string
		rec  LocalRecord
		want string
	}{
		{"ExternalID Wins", LocalRecord{ID: 1, ExternalID: "E-1", VirtualSpaceID: "V-1"}, "E-1"},
		{"Fallback To VirtualSpaceID", LocalRecord{ID: 2, VirtualSpaceID: "V-2"}, "V-2"},
		{"Whitespace Trimmed", LocalRecord{ID: 3, ExternalID: "  E-3  "}, "E-3"},
		{"Blank ExternalID Falls Back", LocalRecord{ID: 4, ExternalID: "   ", VirtualSpaceID: "V-4"}, "V-4"},
		{"Unresolvable", LocalRecord{ID: 5}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LocalKey(tt.rec))
		})
	}
}

func TestRemoteKey(t *testing.T) {
	t.Run("Primary Alias Wins", func(t *testing.T) {
		rec := RemoteRecord{"articleId": "A-1", "id": "ignored"}
		assert.Equal(t, "A-1", RemoteKey(rec))
	})

	t.Run("Case And Naming Variants", func(t *testing.T) {
		assert.Equal(t, "A-2", RemoteKey(RemoteRecord{"articleID": "A-2"}))
		assert.Equal(t, "A-3", RemoteKey(RemoteRecord{"article_id": "A-3"}))
		assert.Equal(t, "A-4", RemoteKey(RemoteRecord{"articleNumber": "A-4"}))
		assert.Equal(t, "A-5", RemoteKey(RemoteRecord{"itemId": "A-5"}))
		assert.Equal(t, "A-6", RemoteKey(RemoteRecord{"id": "A-6"}))
	})

	t.Run("Numeric Values Normalized", func(t *testing.T) {
		// JSON numbers decode as float64; large ids must stay plain decimal
		rec := RemoteRecord{"articleId": float64(12345678)}
		assert.Equal(t, "12345678", RemoteKey(rec))
	})

	t.Run("Nil And Blank Values Skipped", func(t *testing.T) {
		rec := RemoteRecord{"articleId": nil, "article_id": "   ", "id": "X-1"}
		assert.Equal(t, "X-1", RemoteKey(rec))
	})

	t.Run("Values Trimmed", func(t *testing.T) {
		assert.Equal(t, "A-7", RemoteKey(RemoteRecord{"articleId": " A-7 "}))
	})

	t.Run("No Usable Alias", func(t *testing.T) {
		assert.Equal(t, "", RemoteKey(RemoteRecord{"macAddress": "00:11:22"}))
		assert.Equal(t, "", RemoteKey(RemoteRecord{}))
	})
}
