package database

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/akyairhashvil/intervaltimer/internal/testutil"
)

func TestConcurrentProfileUpdates(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	created := mustCreate(t, ctx, db, testutil.NewProfile().Build())

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := created
			p.Name = fmt.Sprintf("Title %d", i)
			p.Sets = int64(i + 1)
			if err := db.UpdateProfile(ctx, p); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent update failed: %v", err)
	}
	got, err := db.GetProfile(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if got.Name != fmt.Sprintf("Title %d", got.Sets-1) {
		t.Fatalf("row mixes two updates: %+v", got)
	}
}
