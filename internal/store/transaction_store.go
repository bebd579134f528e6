package store

import "schoolbook/internal/domain"

// AppendTransaction adds tx to the end of the ledger under the next
// transaction id. Stored transactions are never modified.
func (m *Memory) AppendTransaction(tx domain.Transaction) (domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx.ID = m.nextTransactionID
	m.nextTransactionID++
	m.transactions = append(m.transactions, tx)
	return tx, nil
}

// ListTransactions returns the ledger in creation order.
func (m *Memory) ListTransactions() ([]domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]domain.Transaction(nil), m.transactions...), nil
}
