package mongodb

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"
)

const (
	defaultLocalIntegrationURL = "mongodb://localhost:27017"
	integrationDBName          = "giftnama_test"
)

func openMongoStoreForIntegrationTest(t *testing.T) *Store {
	t.Helper()

	candidates := []string{
		strings.TrimSpace(os.Getenv("GIFTNAMA_MONGO_TEST_URL")),
		strings.TrimSpace(os.Getenv("MONGO_URL")),
		defaultLocalIntegrationURL,
	}

	seen := map[string]struct{}{}
	var openErrs []string
	for _, url := range candidates {
		if url == "" {
			continue
		}
		if _, ok := seen[url]; ok {
			continue
		}
		seen[url] = struct{}{}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		store, err := Open(ctx, url, integrationDBName)
		cancel()
		if err == nil {
			t.Cleanup(func() {
				_ = store.Close(context.Background())
			})
			dropIntegrationCollections(t, store)
			return store
		}
		openErrs = append(openErrs, fmt.Sprintf("%s: %v", url, err))
	}

	t.Skipf("mongo is not available for integration tests: %s", strings.Join(openErrs, " | "))
	return nil
}

func dropIntegrationCollections(t *testing.T, store *Store) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, name := range []string{productCollection, orderCollection} {
		if err := store.db.Collection(name).Drop(ctx); err != nil {
			t.Fatalf("drop collection %s: %v", name, err)
		}
	}
}
