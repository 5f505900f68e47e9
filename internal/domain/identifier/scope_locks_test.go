package identifier

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// Two requests computing the next id for the same scope must see each
// other's append. Without the lock both would read the same scan and
// produce the same id.
func TestScopeLocks_SerializesAllocation(t *testing.T) {
	locks := NewScopeLocks()
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	var mu sync.Mutex
	store := []string{}

	allocate := func() string {
		unlock := locks.Lock("customers/2025")
		defer unlock()
		mu.Lock()
		snapshot := append([]string(nil), store...)
		mu.Unlock()
		id := NextCustomerID(snapshot, now)
		mu.Lock()
		store = append(store, id)
		mu.Unlock()
		return id
	}

	const n = 50
	results := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- allocate()
		}()
	}
	wg.Wait()
	close(results)

	seen := map[string]bool{}
	for id := range results {
		if seen[id] {
			t.Fatalf("duplicate id allocated: %s", id)
		}
		seen[id] = true
	}
	want := fmt.Sprintf("2025-%03d", n)
	if !seen[want] {
		t.Fatalf("expected sequence to reach %s", want)
	}
}

func TestScopeLocks_IndependentScopes(t *testing.T) {
	locks := NewScopeLocks()

	unlockA := locks.Lock("projects/202506")
	// A held lock on one scope must not block another scope.
	done := make(chan struct{})
	go func() {
		unlockB := locks.Lock("customers/2025")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("independent scope blocked")
	}
	unlockA()
}

func TestScopeLocks_Reentry(t *testing.T) {
	locks := NewScopeLocks()
	unlock := locks.Lock("vendors")
	unlock()
	unlock2 := locks.Lock("vendors")
	unlock2()
}
