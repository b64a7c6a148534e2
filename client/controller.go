package client

import (
	"context"
	"sync"
	"time"
)

// DefaultDebounce é a janela de coalescência entre a última mudança de
// filtro e a requisição disparada.
const DefaultDebounce = 500 * time.Millisecond

// TransactionAPI é o que o FetchController precisa do servidor.
// *Client satisfaz a interface.
type TransactionAPI interface {
	ListTransactions(ctx context.Context, filter Filter) (*TransactionPage, error)
	CreateTransaction(ctx context.Context, input TransactionInput) (*Transaction, error)
	UpdateTransaction(ctx context.Context, id string, input TransactionInput) (*Transaction, error)
	SetPaid(ctx context.Context, id string, paid bool) (*Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}

var _ TransactionAPI = (*Client)(nil)

// FetchController mantém a lista paginada de transações sincronizada
// com os filtros. Mudanças rápidas de filtro são coalescidas em uma
// única requisição, e respostas de buscas antigas são descartadas por
// um contador de geração, garantindo que a lista sempre reflita o
// último filtro aplicado.
type FetchController struct {
	api              TransactionAPI
	debounce         time.Duration
	onChange         func()
	onError          func(error)
	onAccountRefresh func()

	mu           sync.Mutex
	filter       Filter
	mode         ViewMode
	transactions []Transaction
	totalPages   int
	loading      bool
	generation   uint64
	timer        *time.Timer
}

type ControllerOption func(*FetchController)

func WithDebounce(d time.Duration) ControllerOption {
	return func(fc *FetchController) { fc.debounce = d }
}

// WithOnChange registra o callback disparado após cada mudança de
// estado (lista, loading ou paginação).
func WithOnChange(fn func()) ControllerOption {
	return func(fc *FetchController) { fc.onChange = fn }
}

func WithOnError(fn func(error)) ControllerOption {
	return func(fc *FetchController) { fc.onError = fn }
}

// WithOnAccountRefresh registra o callback disparado após cada mutação
// confirmada pelo servidor, para o chamador recarregar saldos e totais
// da conta.
func WithOnAccountRefresh(fn func()) ControllerOption {
	return func(fc *FetchController) { fc.onAccountRefresh = fn }
}

func NewFetchController(api TransactionAPI, opts ...ControllerOption) *FetchController {
	fc := &FetchController{
		api:        api,
		debounce:   DefaultDebounce,
		mode:       ModeProjected,
		totalPages: 1,
		filter:     Filter{Page: 1, Limit: 10},
	}
	for _, opt := range opts {
		opt(fc)
	}
	return fc
}

// Snapshot retorna o estado corrente: itens, total de páginas e se há
// busca em andamento.
func (fc *FetchController) Snapshot() ([]Transaction, int, bool) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	items := make([]Transaction, len(fc.transactions))
	copy(items, fc.transactions)
	return items, fc.totalPages, fc.loading
}

func (fc *FetchController) Filter() Filter {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.filter
}

func (fc *FetchController) Mode() ViewMode {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.mode
}

// SetMode troca a visão real/projetada. Só afeta os agregados
// derivados, então nenhuma busca é disparada.
func (fc *FetchController) SetMode(mode ViewMode) {
	fc.mu.Lock()
	fc.mode = mode
	fc.mu.Unlock()
	fc.notify()
}

func (fc *FetchController) SetAccount(accountID string) {
	fc.updateFilter(func(f *Filter) {
		f.AccountID = accountID
		f.Page = 1
	})
}

func (fc *FetchController) SetSearch(search string) {
	fc.updateFilter(func(f *Filter) {
		f.Search = search
		f.Page = 1
	})
}

func (fc *FetchController) SetCategory(categoryID string) {
	fc.updateFilter(func(f *Filter) {
		f.CategoryID = categoryID
		f.Page = 1
	})
}

func (fc *FetchController) SetType(t TransactionType) {
	fc.updateFilter(func(f *Filter) {
		f.Type = t
		f.Page = 1
	})
}

func (fc *FetchController) SetStatus(status string) {
	fc.updateFilter(func(f *Filter) {
		f.Status = status
		f.Page = 1
	})
}

func (fc *FetchController) SetDateRange(start, end *time.Time) {
	fc.updateFilter(func(f *Filter) {
		f.StartDate = start
		f.EndDate = end
		f.Page = 1
	})
}

// SetPage não reinicia para a primeira página, ao contrário dos demais
// filtros.
func (fc *FetchController) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	fc.updateFilter(func(f *Filter) {
		f.Page = page
	})
}

func (fc *FetchController) updateFilter(apply func(*Filter)) {
	fc.mu.Lock()
	apply(&fc.filter)
	fc.schedule()
	fc.mu.Unlock()
	fc.notify()
}

// Refresh dispara a busca imediatamente, sem esperar o debounce.
func (fc *FetchController) Refresh() {
	fc.mu.Lock()
	if fc.timer != nil {
		fc.timer.Stop()
		fc.timer = nil
	}
	fc.mu.Unlock()
	fc.fetch()
}

// schedule reinicia a janela de debounce. Deve ser chamado com o mutex
// em mãos.
func (fc *FetchController) schedule() {
	if fc.timer != nil {
		fc.timer.Stop()
	}
	fc.timer = time.AfterFunc(fc.debounce, fc.fetch)
}

func (fc *FetchController) fetch() {
	fc.mu.Lock()

	// sem conta selecionada não há o que buscar; a geração avança para
	// invalidar qualquer resposta ainda em voo da conta anterior
	if fc.filter.AccountID == "" {
		fc.generation++
		fc.transactions = nil
		fc.totalPages = 1
		fc.filter.Page = 1
		fc.loading = false
		fc.mu.Unlock()
		fc.notify()
		return
	}

	fc.generation++
	gen := fc.generation
	fc.loading = true
	filter := fc.filter
	fc.mu.Unlock()
	fc.notify()

	page, err := fc.api.ListTransactions(context.Background(), filter)

	fc.mu.Lock()
	if gen != fc.generation {
		// resposta de um filtro que já mudou
		fc.mu.Unlock()
		return
	}
	fc.loading = false

	if err != nil {
		fc.mu.Unlock()
		fc.notify()
		fc.reportError(err)
		return
	}

	fc.transactions = page.Items
	fc.totalPages = page.TotalPages
	if fc.totalPages < 1 {
		fc.totalPages = 1
	}
	fc.mu.Unlock()
	fc.notify()
}

func (fc *FetchController) notify() {
	if fc.onChange != nil {
		fc.onChange()
	}
}

func (fc *FetchController) reportError(err error) {
	if fc.onError != nil {
		fc.onError(err)
	}
}

func (fc *FetchController) refreshAccount() {
	if fc.onAccountRefresh != nil {
		fc.onAccountRefresh()
	}
}
