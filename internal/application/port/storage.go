package port

import "context"

// TransactionManager executes a function within a database transaction.
// Nested calls reuse the transaction already bound to the context.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
