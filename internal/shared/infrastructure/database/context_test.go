package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeConnection struct {
	Connection
}

type fakeTransaction struct {
	Transaction
}

func TestExecutorFromContext(t *testing.T) {
	conn := &fakeConnection{}

	t.Run("returns the connection without a transaction", func(t *testing.T) {
		executor := ExecutorFromContext(context.Background(), conn)

		assert.Equal(t, Executor(conn), executor)
	})

	t.Run("prefers the transaction from the context", func(t *testing.T) {
		tx := &fakeTransaction{}
		ctx := WithTx(context.Background(), tx)

		executor := ExecutorFromContext(ctx, conn)

		assert.Equal(t, Executor(tx), executor)
	})
}

func TestTxFromContext(t *testing.T) {
	assert.Nil(t, TxFromContext(context.Background()))

	tx := &fakeTransaction{}
	assert.Equal(t, Transaction(tx), TxFromContext(WithTx(context.Background(), tx)))
}
