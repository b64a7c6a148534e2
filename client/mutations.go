package client

import (
	"context"
	"errors"
)

// ErrNotLoaded indica que a transação alvo não está na lista corrente.
var ErrNotLoaded = errors.New("transação não está na lista carregada")

// As mutações só alteram a lista em cache depois do servidor
// confirmar; em caso de erro o estado local permanece intocado. Cada
// mutação confirmada dispara o callback de atualização da conta.

func (fc *FetchController) Create(ctx context.Context, input TransactionInput) (*Transaction, error) {
	created, err := fc.api.CreateTransaction(ctx, input)
	if err != nil {
		fc.reportError(err)
		return nil, err
	}

	fc.mu.Lock()
	if fc.filter.AccountID == created.AccountID {
		fc.transactions = append([]Transaction{*created}, fc.transactions...)
	}
	fc.mu.Unlock()
	fc.notify()
	fc.refreshAccount()
	return created, nil
}

func (fc *FetchController) Update(ctx context.Context, id string, input TransactionInput) (*Transaction, error) {
	updated, err := fc.api.UpdateTransaction(ctx, id, input)
	if err != nil {
		fc.reportError(err)
		return nil, err
	}

	fc.replace(*updated)
	fc.refreshAccount()
	return updated, nil
}

// TogglePaid inverte o estado de pagamento do item carregado, enviando
// o valor desejado explicitamente para a operação ser idempotente no
// servidor.
func (fc *FetchController) TogglePaid(ctx context.Context, id string) (*Transaction, error) {
	fc.mu.Lock()
	var current *Transaction
	for i := range fc.transactions {
		if fc.transactions[i].ID == id {
			current = &fc.transactions[i]
			break
		}
	}
	if current == nil {
		fc.mu.Unlock()
		return nil, ErrNotLoaded
	}
	desired := !current.Paid
	fc.mu.Unlock()

	return fc.SetPaid(ctx, id, desired)
}

func (fc *FetchController) SetPaid(ctx context.Context, id string, paid bool) (*Transaction, error) {
	updated, err := fc.api.SetPaid(ctx, id, paid)
	if err != nil {
		fc.reportError(err)
		return nil, err
	}

	fc.replace(*updated)
	fc.refreshAccount()
	return updated, nil
}

func (fc *FetchController) Delete(ctx context.Context, id string) error {
	if err := fc.api.DeleteTransaction(ctx, id); err != nil {
		fc.reportError(err)
		return err
	}

	fc.mu.Lock()
	for i, t := range fc.transactions {
		if t.ID == id {
			fc.transactions = append(fc.transactions[:i], fc.transactions[i+1:]...)
			break
		}
	}
	fc.mu.Unlock()
	fc.notify()
	fc.refreshAccount()
	return nil
}

func (fc *FetchController) replace(updated Transaction) {
	fc.mu.Lock()
	for i := range fc.transactions {
		if fc.transactions[i].ID == updated.ID {
			fc.transactions[i] = updated
			break
		}
	}
	fc.mu.Unlock()
	fc.notify()
}
