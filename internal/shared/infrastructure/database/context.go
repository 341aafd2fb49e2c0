package database

import "context"

type txKey struct{}

// WithTx carries an open transaction in the context so repositories
// called further down participate in it.
func WithTx(ctx context.Context, tx Transaction) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromContext returns the transaction carried by ctx, or nil.
func TxFromContext(ctx context.Context) Transaction {
	if tx, ok := ctx.Value(txKey{}).(Transaction); ok {
		return tx
	}
	return nil
}

// ExecutorFromContext picks the context transaction when one is open,
// falling back to the plain connection.
func ExecutorFromContext(ctx context.Context, conn Connection) Executor {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return conn
}
