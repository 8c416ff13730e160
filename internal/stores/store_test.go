package stores

import (
	"context"
	"errors"
	"testing"

	"github.com/evizor/console/internal/api"
	"github.com/evizor/console/internal/logging"
	"github.com/evizor/console/internal/services"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string
	Name string
}

type create struct{ Name string }
type update struct{ Name string }

func itemID(i item) string { return i.ID }

func seeded(t *testing.T, items []item) *Store[item, create, update] {
	t.Helper()
	s := New(itemID, Verbs[item, create, update]{
		Fetch: func(ctx context.Context, p services.ListParams) ([]item, int, error) {
			return items, len(items), nil
		},
	}, logging.NewNopLogger())
	s.Fetch(context.Background(), services.ListParams{})
	require.Equal(t, items, s.Items())
	return s
}

func TestFetch_ReplacesListWholesale(t *testing.T) {
	s := seeded(t, []item{{ID: "a"}, {ID: "b"}})

	s.verbs.Fetch = func(ctx context.Context, p services.ListParams) ([]item, int, error) {
		return []item{{ID: "c"}}, 7, nil
	}
	s.Fetch(context.Background(), services.ListParams{})

	require.Equal(t, []item{{ID: "c"}}, s.Items())
	require.Equal(t, 7, s.Total())
	require.Empty(t, s.Err())
	require.False(t, s.Loading())
}

func TestFetch_FailureKeepsPreviousList(t *testing.T) {
	s := seeded(t, []item{{ID: "a"}, {ID: "b"}})

	s.verbs.Fetch = func(ctx context.Context, p services.ListParams) ([]item, int, error) {
		return nil, 0, &api.Error{Message: "tenant is suspended", StatusCode: 403}
	}
	s.Fetch(context.Background(), services.ListParams{})

	require.Equal(t, []item{{ID: "a"}, {ID: "b"}}, s.Items(), "stale data beats a flash of emptiness")
	require.Equal(t, "tenant is suspended", s.Err())
}

func TestFetch_SupersededResponseIsDiscarded(t *testing.T) {
	s := New(itemID, Verbs[item, create, update]{}, logging.NewNopLogger())

	entered := make(chan struct{})
	release := make(chan struct{})
	s.verbs.Fetch = func(ctx context.Context, p services.ListParams) ([]item, int, error) {
		close(entered)
		<-release
		return []item{{ID: "old"}}, 1, nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Fetch(context.Background(), services.ListParams{})
	}()
	<-entered

	// second fetch issued while the first is still in flight
	s.verbs.Fetch = func(ctx context.Context, p services.ListParams) ([]item, int, error) {
		return []item{{ID: "new"}}, 1, nil
	}
	s.Fetch(context.Background(), services.ListParams{})

	close(release)
	<-done

	require.Equal(t, []item{{ID: "new"}}, s.Items(), "older response must not overwrite newer state")
}

func TestCreate_AppendsOnSuccess(t *testing.T) {
	s := seeded(t, []item{{ID: "a"}})

	s.verbs.Create = func(ctx context.Context, req create) (*item, error) {
		return &item{ID: "b", Name: req.Name}, nil
	}

	ok := s.Create(context.Background(), create{Name: "new"})
	require.True(t, ok)
	require.Equal(t, []item{{ID: "a"}, {ID: "b", Name: "new"}}, s.Items())
	require.Equal(t, 2, s.Total())
	require.Empty(t, s.SubmitErr())
}

func TestUpdate_PatchesInPlace(t *testing.T) {
	s := seeded(t, []item{{ID: "a"}, {ID: "b"}, {ID: "c"}})

	s.verbs.Update = func(ctx context.Context, id string, req update) (*item, error) {
		return &item{ID: id, Name: req.Name}, nil
	}

	ok := s.Update(context.Background(), "b", update{Name: "renamed"})
	require.True(t, ok)

	got := s.Items()
	require.Len(t, got, 3)
	require.Equal(t, []item{{ID: "a"}, {ID: "b", Name: "renamed"}, {ID: "c"}}, got, "same length and order, only b replaced")
}

func TestUpdate_FailureLeavesListUntouched(t *testing.T) {
	before := []item{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	s := seeded(t, before)

	s.verbs.Update = func(ctx context.Context, id string, req update) (*item, error) {
		return nil, &api.Error{Message: "name already in use", StatusCode: 409}
	}

	ok := s.Update(context.Background(), "b", update{Name: "dup"})
	require.False(t, ok)
	require.Equal(t, before, s.Items())
	require.Equal(t, "name already in use", s.SubmitErr())
}

func TestDelete_RemovesByID(t *testing.T) {
	s := seeded(t, []item{{ID: "a"}, {ID: "b"}, {ID: "c"}})

	s.verbs.Delete = func(ctx context.Context, id string) error { return nil }

	ok := s.Delete(context.Background(), "b")
	require.True(t, ok)
	require.Equal(t, []item{{ID: "a"}, {ID: "c"}}, s.Items())
	require.Equal(t, 2, s.Total())
}

func TestDelete_FailureLeavesListUntouched(t *testing.T) {
	before := []item{{ID: "a"}, {ID: "b"}}
	s := seeded(t, before)

	s.verbs.Delete = func(ctx context.Context, id string) error {
		return errors.New("boom")
	}

	ok := s.Delete(context.Background(), "a")
	require.False(t, ok)
	require.Equal(t, before, s.Items())
	require.Equal(t, "an unexpected error occurred", s.SubmitErr())
}

func TestUnsupportedVerb(t *testing.T) {
	s := New(itemID, Verbs[item, create, update]{}, logging.NewNopLogger())

	require.False(t, s.Create(context.Background(), create{}))
	require.Equal(t, "operation not supported", s.SubmitErr())
}

func TestNetworkErrorMapsToGenericMessage(t *testing.T) {
	s := seeded(t, []item{{ID: "a"}})

	s.verbs.Fetch = func(ctx context.Context, p services.ListParams) ([]item, int, error) {
		return nil, 0, api.NetworkError(errors.New("dial tcp: connection refused"))
	}
	s.Fetch(context.Background(), services.ListParams{})

	require.Equal(t, "request failed, please try again", s.Err())
	require.Equal(t, []item{{ID: "a"}}, s.Items())
}
