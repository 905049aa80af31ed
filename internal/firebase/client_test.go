package firebase

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRTDB имитирует REST поверхность Realtime Database: GET с
// shallow=true для проверки наличия и PATCH частичного обновления.
type fakeRTDB struct {
	mu      sync.Mutex
	docs    map[string]map[string]any
	patches []string
}

func newFakeRTDB(paths ...string) *fakeRTDB {
	docs := make(map[string]map[string]any, len(paths))
	for _, p := range paths {
		docs[p] = map[string]any{"text": "original content"}
	}
	return &fakeRTDB{docs: docs}
}

func (f *fakeRTDB) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		path := r.URL.Path
		require.True(t, len(path) > len(".json"), "путь запроса должен оканчиваться на .json")
		require.Equal(t, ".json", path[len(path)-len(".json"):])
		key := path[1 : len(path)-len(".json")]

		doc, ok := f.docs[key]

		switch r.Method {
		case http.MethodGet:
			if !ok {
				_, _ = w.Write([]byte("null"))
				return
			}
			_ = json.NewEncoder(w).Encode(doc)

		case http.MethodPatch:
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			raw, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			var patch map[string]any
			require.NoError(t, json.Unmarshal(raw, &patch))
			for k, v := range patch {
				doc[k] = v
			}
			f.patches = append(f.patches, key)
			_ = json.NewEncoder(w).Encode(patch)

		default:
			t.Errorf("неожиданный метод %s", r.Method)
		}
	})
}

func (f *fakeRTDB) doc(path string) map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.docs[path]
}

func TestClient_UpdateVisibility_PatchesOnlyDecisionFields(t *testing.T) {
	db := newFakeRTDB("Posts/p1/Comments/c2")
	srv := httptest.NewServer(db.handler(t))
	defer srv.Close()

	client := NewClient(srv.URL, "", 5*time.Second)

	err := client.UpdateVisibility(context.Background(), "Posts/p1/Comments/c2", false, true)
	require.NoError(t, err)

	doc := db.doc("Posts/p1/Comments/c2")
	assert.Equal(t, false, doc["is_visible"])
	assert.Equal(t, true, doc["reviewed"])
	// Остальные поля документа PATCH не трогает.
	assert.Equal(t, "original content", doc["text"])
}

func TestClient_UpdateVisibility_MissingDocument(t *testing.T) {
	db := newFakeRTDB()
	srv := httptest.NewServer(db.handler(t))
	defer srv.Close()

	client := NewClient(srv.URL, "", 5*time.Second)

	err := client.UpdateVisibility(context.Background(), "Posts/ghost", true, true)

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, "Posts/ghost", writeErr.Path)
	// Отсутствующий документ не создаётся.
	assert.Empty(t, db.patches)
	assert.Nil(t, db.doc("Posts/ghost"))
}

func TestClient_UpdateVisibility_Idempotent(t *testing.T) {
	db := newFakeRTDB("Posts/p1")
	srv := httptest.NewServer(db.handler(t))
	defer srv.Close()

	client := NewClient(srv.URL, "", 5*time.Second)
	ctx := context.Background()

	require.NoError(t, client.UpdateVisibility(ctx, "Posts/p1", true, true))
	require.NoError(t, client.UpdateVisibility(ctx, "Posts/p1", true, true))

	doc := db.doc("Posts/p1")
	assert.Equal(t, true, doc["is_visible"])
	assert.Equal(t, true, doc["reviewed"])
}

func TestClient_UpdateVisibility_AuthToken(t *testing.T) {
	var gotAuth []string
	db := newFakeRTDB("Posts/p1")
	inner := db.handler(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.URL.Query().Get("auth"))
		inner.ServeHTTP(w, r)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "db-secret", 5*time.Second)

	require.NoError(t, client.UpdateVisibility(context.Background(), "Posts/p1", true, true))

	// Токен уходит и с проверкой наличия, и с PATCH.
	require.Len(t, gotAuth, 2)
	assert.Equal(t, "db-secret", gotAuth[0])
	assert.Equal(t, "db-secret", gotAuth[1])
}

func TestClient_UpdateVisibility_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`{"text":"ok"}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", 5*time.Second)

	err := client.UpdateVisibility(context.Background(), "Posts/p1", true, true)

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, "Posts/p1", writeErr.Path)
	assert.Contains(t, writeErr.Error(), "500")
}

func TestClient_UpdateVisibility_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte("null"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", 50*time.Millisecond)

	err := client.UpdateVisibility(context.Background(), "Posts/p1", true, true)

	var writeErr *WriteError
	assert.ErrorAs(t, err, &writeErr)
}

func TestClient_UpdateVisibility_EmptyBaseURL(t *testing.T) {
	client := NewClient("", "", 0)

	err := client.UpdateVisibility(context.Background(), "Posts/p1", true, true)

	var writeErr *WriteError
	assert.ErrorAs(t, err, &writeErr)
}
