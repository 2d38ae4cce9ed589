package cmd

import (
	"fmt"
	"os"

	finance "github.com/AdryannSanntos/controle-financeiro"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

// txFlags holds the record flags shared by the income and expense commands.
type txFlags struct {
	amount   float64
	date     string
	category string
	desc     string
	status   string
	method   string
	support  bool
}

// record validates the flags and appends the transaction.
func (tf *txFlags) record(typ finance.TransactionType) subcommands.ExitStatus {
	if tf.amount <= 0 {
		return usageError("-amount must be a positive number")
	}
	date, err := finance.ParseDate(tf.date)
	if err != nil {
		return fail(fmt.Errorf("invalid -date: %w", err))
	}
	status, err := finance.ParseTransactionStatus(tf.status)
	if err != nil {
		return fail(err)
	}

	store, err := openStore()
	if err != nil {
		return fail(err)
	}

	tx := finance.Transaction{
		ID:            uuid.NewString(),
		Type:          typ,
		Amount:        finance.M(tf.amount),
		Date:          date,
		Category:      tf.category,
		Description:   tf.desc,
		Status:        status,
		PaymentMethod: finance.PaymentMethod(tf.method),
		PaidBySupport: tf.support,
	}
	store.AddTransaction(tx)

	currency := store.State().Settings.Currency
	fmt.Fprintf(os.Stdout, "Recorded %s %s (%s) as %s\n", typ, tx.Amount.Display(currency), tx.Category, tx.ID)
	return subcommands.ExitSuccess
}
