package services

import (
	"context"
	"strings"
	"sync"
	"testing"

	"hotelbooking/constants"
	"hotelbooking/errors"
)

// fakeCodeStore giả lập unique constraint bằng map + mutex
type fakeCodeStore struct {
	mu    sync.Mutex
	codes map[string]bool
}

func newFakeCodeStore() *fakeCodeStore {
	return &fakeCodeStore{codes: make(map[string]bool)}
}

func (s *fakeCodeStore) Reserve(ctx context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.codes[code] {
		return errors.ErrCodeDuplicate
	}
	s.codes[code] = true
	return nil
}

func (s *fakeCodeStore) Release(ctx context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.codes, code)
	return nil
}

func TestDrawFormat(t *testing.T) {
	issuer := NewCodeIssuer(CodeIssuerOptions{Store: newFakeCodeStore()})

	for i := 0; i < 100; i++ {
		code := issuer.Draw()
		if len(code) != constants.ReferenceCodeLength {
			t.Fatalf("expected length %d, got %q", constants.ReferenceCodeLength, code)
		}
		for _, ch := range code {
			if !strings.ContainsRune(constants.ReferenceCodeAlphabet, ch) {
				t.Fatalf("character %q outside alphabet in %q", ch, code)
			}
		}
	}
}

func TestIssueUnique(t *testing.T) {
	store := newFakeCodeStore()
	issuer := NewCodeIssuer(CodeIssuerOptions{Store: store})

	const n = 10000
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		code, err := issuer.Issue(context.Background())
		if err != nil {
			t.Fatalf("issue %d failed: %v", i, err)
		}
		if seen[code] {
			t.Fatalf("duplicate code issued: %s", code)
		}
		seen[code] = true
	}
}

func TestIssueConcurrent(t *testing.T) {
	store := newFakeCodeStore()
	issuer := NewCodeIssuer(CodeIssuerOptions{Store: store})

	const workers = 50
	const perWorker = 100

	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := make(map[string]bool, workers*perWorker)
	errCh := make(chan error, workers)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				code, err := issuer.Issue(context.Background())
				if err != nil {
					errCh <- err
					return
				}
				mu.Lock()
				dup := seen[code]
				seen[code] = true
				mu.Unlock()
				if dup {
					errCh <- errors.NewAppError(errors.ErrCodeDBDuplicate, "duplicate "+code, nil)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		t.Fatalf("concurrent issue failed: %v", err)
	}
	if len(seen) != workers*perWorker {
		t.Fatalf("expected %d codes, got %d", workers*perWorker, len(seen))
	}
}

// Với không gian mã 1 ký tự x 1 chữ cái, mã thứ hai phải báo cạn không gian
func TestIssueExhausted(t *testing.T) {
	store := newFakeCodeStore()
	issuer := NewCodeIssuer(CodeIssuerOptions{
		Store:       store,
		Alphabet:    "A",
		Length:      1,
		MaxAttempts: 5,
	})

	code, err := issuer.Issue(context.Background())
	if err != nil {
		t.Fatalf("first issue failed: %v", err)
	}
	if code != "A" {
		t.Fatalf("expected A, got %q", code)
	}

	_, err = issuer.Issue(context.Background())
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeCodeSpaceExhausted {
		t.Fatalf("expected CODE_SPACE_EXHAUSTED, got %v", err)
	}
}

func TestRelease(t *testing.T) {
	store := newFakeCodeStore()
	issuer := NewCodeIssuer(CodeIssuerOptions{
		Store:    store,
		Alphabet: "A",
		Length:   1,
	})

	code, err := issuer.Issue(context.Background())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if err := issuer.Release(context.Background(), code); err != nil {
		t.Fatalf("release failed: %v", err)
	}

	// sau release mã có thể cấp lại
	again, err := issuer.Issue(context.Background())
	if err != nil {
		t.Fatalf("re-issue failed: %v", err)
	}
	if again != code {
		t.Fatalf("expected %q again, got %q", code, again)
	}
}
