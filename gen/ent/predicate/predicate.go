// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CardStatement is the predicate function for cardstatement builders.
type CardStatement func(*sql.Selector)

// CardTransaction is the predicate function for cardtransaction builders.
type CardTransaction func(*sql.Selector)

// Extraction is the predicate function for extraction builders.
type Extraction func(*sql.Selector)

// Invoice is the predicate function for invoice builders.
type Invoice func(*sql.Selector)

// InvoiceItem is the predicate function for invoiceitem builders.
type InvoiceItem func(*sql.Selector)

// Receipt is the predicate function for receipt builders.
type Receipt func(*sql.Selector)

// ReceiptItem is the predicate function for receiptitem builders.
type ReceiptItem func(*sql.Selector)
