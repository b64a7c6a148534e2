package client

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	mu    sync.Mutex
	calls []Filter

	listFn    func(filter Filter) (*TransactionPage, error)
	createFn  func(input TransactionInput) (*Transaction, error)
	updateFn  func(id string, input TransactionInput) (*Transaction, error)
	setPaidFn func(id string, paid bool) (*Transaction, error)
	deleteFn  func(id string) error
}

func (f *fakeAPI) ListTransactions(_ context.Context, filter Filter) (*TransactionPage, error) {
	f.mu.Lock()
	f.calls = append(f.calls, filter)
	f.mu.Unlock()
	return f.listFn(filter)
}

func (f *fakeAPI) CreateTransaction(_ context.Context, input TransactionInput) (*Transaction, error) {
	return f.createFn(input)
}

func (f *fakeAPI) UpdateTransaction(_ context.Context, id string, input TransactionInput) (*Transaction, error) {
	return f.updateFn(id, input)
}

func (f *fakeAPI) SetPaid(_ context.Context, id string, paid bool) (*Transaction, error) {
	return f.setPaidFn(id, paid)
}

func (f *fakeAPI) DeleteTransaction(_ context.Context, id string) error {
	return f.deleteFn(id)
}

func (f *fakeAPI) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func pageWith(items ...Transaction) *TransactionPage {
	return &TransactionPage{Items: items, Page: 1, Size: 10, Total: int64(len(items)), TotalPages: 1}
}

func seedController(t *testing.T, items ...Transaction) (*FetchController, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{
		listFn: func(Filter) (*TransactionPage, error) {
			return pageWith(items...), nil
		},
	}
	fc := NewFetchController(api, WithDebounce(time.Millisecond))
	fc.SetAccount("acc-1")
	require.Eventually(t, func() bool {
		got, _, loading := fc.Snapshot()
		return api.callCount() == 1 && !loading && len(got) == len(items)
	}, time.Second, time.Millisecond)
	return fc, api
}

func TestFetchControllerCoalescesRapidChanges(t *testing.T) {
	api := &fakeAPI{
		listFn: func(Filter) (*TransactionPage, error) {
			return pageWith(), nil
		},
	}
	fc := NewFetchController(api, WithDebounce(50*time.Millisecond))

	fc.SetAccount("acc-1")
	fc.SetSearch("a")
	fc.SetSearch("al")
	fc.SetSearch("alu")
	fc.SetCategory("cat-1")

	assert.Eventually(t, func() bool { return api.callCount() == 1 }, time.Second, 5*time.Millisecond)

	// janela encerrada, nenhuma chamada extra aparece depois
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, api.callCount())

	filter := api.calls[0]
	assert.Equal(t, "acc-1", filter.AccountID)
	assert.Equal(t, "alu", filter.Search)
	assert.Equal(t, "cat-1", filter.CategoryID)
	assert.Equal(t, 1, filter.Page)
}

func TestFetchControllerDiscardsStaleResponse(t *testing.T) {
	firstStarted := make(chan struct{})
	firstGate := make(chan struct{})

	api := &fakeAPI{}
	api.listFn = func(filter Filter) (*TransactionPage, error) {
		if filter.Search == "" {
			close(firstStarted)
			<-firstGate
			return pageWith(Transaction{ID: "antiga", AccountID: "acc-1"}), nil
		}
		return pageWith(Transaction{ID: "atual", AccountID: "acc-1"}), nil
	}
	fc := NewFetchController(api, WithDebounce(time.Millisecond))

	fc.SetAccount("acc-1")
	select {
	case <-firstStarted:
	case <-time.After(time.Second):
		t.Fatal("primeira busca não iniciou")
	}

	fc.SetSearch("mercado")
	require.Eventually(t, func() bool {
		items, _, _ := fc.Snapshot()
		return len(items) == 1 && items[0].ID == "atual"
	}, time.Second, time.Millisecond)

	// resposta antiga chega depois e precisa ser ignorada
	close(firstGate)
	time.Sleep(50 * time.Millisecond)

	items, _, loading := fc.Snapshot()
	assert.False(t, loading)
	require.Len(t, items, 1)
	assert.Equal(t, "atual", items[0].ID)
}

func TestFetchControllerClearsListWithoutAccount(t *testing.T) {
	fc, api := seedController(t, Transaction{ID: "t1", AccountID: "acc-1"})
	callsBefore := api.callCount()

	fc.SetAccount("")

	require.Eventually(t, func() bool {
		items, _, _ := fc.Snapshot()
		return len(items) == 0
	}, time.Second, time.Millisecond)

	items, totalPages, loading := fc.Snapshot()
	assert.Empty(t, items)
	assert.Equal(t, 1, totalPages)
	assert.False(t, loading)
	assert.Equal(t, 1, fc.Filter().Page)
	assert.Equal(t, callsBefore, api.callCount())
}

func TestFetchControllerFiltersResetPage(t *testing.T) {
	fc, _ := seedController(t)

	fc.SetPage(3)
	assert.Equal(t, 3, fc.Filter().Page)

	fc.SetSearch("aluguel")
	assert.Equal(t, 1, fc.Filter().Page)
}

func TestFetchControllerKeepsListOnFetchError(t *testing.T) {
	fc, api := seedController(t, Transaction{ID: "t1", AccountID: "acc-1"})

	errCh := make(chan error, 1)
	api.listFn = func(Filter) (*TransactionPage, error) {
		return nil, assert.AnError
	}
	fc.onError = func(err error) { errCh <- err }

	fc.Refresh()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, assert.AnError)
	case <-time.After(time.Second):
		t.Fatal("erro da busca não foi reportado")
	}

	items, _, _ := fc.Snapshot()
	require.Len(t, items, 1)
	assert.Equal(t, "t1", items[0].ID)
}

func TestFetchControllerCreate(t *testing.T) {
	existing := Transaction{ID: "t1", AccountID: "acc-1"}
	fc, api := seedController(t, existing)

	t.Run("sucesso insere no topo da lista", func(t *testing.T) {
		created := &Transaction{ID: "t2", AccountID: "acc-1", Type: Expense, Value: 50}
		api.createFn = func(TransactionInput) (*Transaction, error) {
			return created, nil
		}

		got, err := fc.Create(context.Background(), TransactionInput{})
		require.NoError(t, err)
		assert.Equal(t, created, got)

		items, _, _ := fc.Snapshot()
		require.Len(t, items, 2)
		assert.Equal(t, "t2", items[0].ID)
		assert.Equal(t, "t1", items[1].ID)
	})

	t.Run("criação em outra conta não altera a lista", func(t *testing.T) {
		api.createFn = func(TransactionInput) (*Transaction, error) {
			return &Transaction{ID: "t3", AccountID: "acc-2"}, nil
		}

		_, err := fc.Create(context.Background(), TransactionInput{})
		require.NoError(t, err)

		items, _, _ := fc.Snapshot()
		assert.Len(t, items, 2)
	})

	t.Run("falha não toca na lista", func(t *testing.T) {
		api.createFn = func(TransactionInput) (*Transaction, error) {
			return nil, assert.AnError
		}

		_, err := fc.Create(context.Background(), TransactionInput{})
		require.Error(t, err)

		items, _, _ := fc.Snapshot()
		assert.Len(t, items, 2)
	})
}

func TestFetchControllerUpdate(t *testing.T) {
	fc, api := seedController(t,
		Transaction{ID: "t1", AccountID: "acc-1", Description: "antes"},
		Transaction{ID: "t2", AccountID: "acc-1"},
	)

	t.Run("sucesso substitui o item no lugar", func(t *testing.T) {
		api.updateFn = func(id string, _ TransactionInput) (*Transaction, error) {
			return &Transaction{ID: id, AccountID: "acc-1", Description: "depois"}, nil
		}

		_, err := fc.Update(context.Background(), "t1", TransactionInput{})
		require.NoError(t, err)

		items, _, _ := fc.Snapshot()
		require.Len(t, items, 2)
		assert.Equal(t, "depois", items[0].Description)
		assert.Equal(t, "t2", items[1].ID)
	})

	t.Run("falha mantém o item original", func(t *testing.T) {
		api.updateFn = func(string, TransactionInput) (*Transaction, error) {
			return nil, assert.AnError
		}

		_, err := fc.Update(context.Background(), "t1", TransactionInput{})
		require.Error(t, err)

		items, _, _ := fc.Snapshot()
		assert.Equal(t, "depois", items[0].Description)
	})
}

func TestFetchControllerTogglePaid(t *testing.T) {
	fc, api := seedController(t, Transaction{ID: "t1", AccountID: "acc-1", Paid: false})

	var sentPaid *bool
	api.setPaidFn = func(id string, paid bool) (*Transaction, error) {
		sentPaid = &paid
		return &Transaction{ID: id, AccountID: "acc-1", Paid: paid}, nil
	}

	got, err := fc.TogglePaid(context.Background(), "t1")
	require.NoError(t, err)
	assert.True(t, got.Paid)

	// o valor desejado vai explícito na chamada, não um flip no servidor
	require.NotNil(t, sentPaid)
	assert.True(t, *sentPaid)

	items, _, _ := fc.Snapshot()
	assert.True(t, items[0].Paid)

	t.Run("item fora da lista não dispara chamada", func(t *testing.T) {
		_, err := fc.TogglePaid(context.Background(), "desconhecida")
		assert.ErrorIs(t, err, ErrNotLoaded)
	})
}

func TestFetchControllerDelete(t *testing.T) {
	fc, api := seedController(t,
		Transaction{ID: "t1", AccountID: "acc-1"},
		Transaction{ID: "t2", AccountID: "acc-1"},
	)

	t.Run("falha preserva a lista", func(t *testing.T) {
		api.deleteFn = func(string) error { return assert.AnError }

		err := fc.Delete(context.Background(), "t1")
		require.Error(t, err)

		items, _, _ := fc.Snapshot()
		assert.Len(t, items, 2)
	})

	t.Run("sucesso remove o item", func(t *testing.T) {
		api.deleteFn = func(string) error { return nil }

		err := fc.Delete(context.Background(), "t1")
		require.NoError(t, err)

		items, _, _ := fc.Snapshot()
		require.Len(t, items, 1)
		assert.Equal(t, "t2", items[0].ID)
	})
}

func TestFetchControllerClearInvalidatesInFlightFetch(t *testing.T) {
	started := make(chan struct{})
	gate := make(chan struct{})

	api := &fakeAPI{}
	api.listFn = func(filter Filter) (*TransactionPage, error) {
		close(started)
		<-gate
		return pageWith(Transaction{ID: "t-antiga", AccountID: "acc-1"}), nil
	}
	fc := NewFetchController(api, WithDebounce(time.Millisecond))

	fc.SetAccount("acc-1")
	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("busca não iniciou")
	}

	fc.SetAccount("")
	require.Eventually(t, func() bool {
		items, _, loading := fc.Snapshot()
		return !loading && len(items) == 0
	}, time.Second, time.Millisecond)

	// a resposta da conta anterior chega depois da limpeza e não pode
	// repovoar a lista
	close(gate)
	time.Sleep(50 * time.Millisecond)

	items, totalPages, _ := fc.Snapshot()
	assert.Empty(t, items)
	assert.Equal(t, 1, totalPages)
}

func TestFetchControllerAccountRefreshAfterMutations(t *testing.T) {
	refreshes := 0
	existing := Transaction{ID: "t1", AccountID: "acc-1"}
	api := &fakeAPI{
		listFn: func(Filter) (*TransactionPage, error) {
			return pageWith(existing), nil
		},
	}
	fc := NewFetchController(api,
		WithDebounce(time.Millisecond),
		WithOnAccountRefresh(func() { refreshes++ }),
	)
	fc.SetAccount("acc-1")
	require.Eventually(t, func() bool {
		got, _, loading := fc.Snapshot()
		return !loading && len(got) == 1
	}, time.Second, time.Millisecond)
	require.Zero(t, refreshes)

	api.createFn = func(TransactionInput) (*Transaction, error) {
		return &Transaction{ID: "t2", AccountID: "acc-1"}, nil
	}
	api.updateFn = func(id string, _ TransactionInput) (*Transaction, error) {
		return &Transaction{ID: id, AccountID: "acc-1"}, nil
	}
	api.setPaidFn = func(id string, paid bool) (*Transaction, error) {
		return &Transaction{ID: id, AccountID: "acc-1", Paid: paid}, nil
	}
	api.deleteFn = func(string) error { return nil }

	ctx := context.Background()
	_, err := fc.Create(ctx, TransactionInput{})
	require.NoError(t, err)
	_, err = fc.Update(ctx, "t1", TransactionInput{})
	require.NoError(t, err)
	_, err = fc.TogglePaid(ctx, "t1")
	require.NoError(t, err)
	require.NoError(t, fc.Delete(ctx, "t1"))
	assert.Equal(t, 4, refreshes)

	t.Run("mutação com falha não dispara o refresh", func(t *testing.T) {
		before := refreshes
		api.deleteFn = func(string) error { return assert.AnError }
		require.Error(t, fc.Delete(ctx, "t2"))
		assert.Equal(t, before, refreshes)
	})
}

func TestFetchControllerSetModeDoesNotFetch(t *testing.T) {
	fc, api := seedController(t)
	callsBefore := api.callCount()

	fc.SetMode(ModeReal)
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, ModeReal, fc.Mode())
	assert.Equal(t, callsBefore, api.callCount())
}
