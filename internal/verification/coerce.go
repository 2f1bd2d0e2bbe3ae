package verification

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Lazzzer/structurizer-sub000/internal/common"
	"github.com/Lazzzer/structurizer-sub000/internal/entity"
	"github.com/Lazzzer/structurizer-sub000/internal/registry"
	"github.com/Lazzzer/structurizer-sub000/internal/utils"
)

// The coercion layer turns a user-approved working object into a typed
// record. Numbers arrive as float64 or numeric strings (comma or dot decimal
// separator), dates as YYYY-MM-DD strings. Any value that cannot be coerced
// fails the whole commit with a field-addressed validation error.

func coerceErr(path, msg string) error {
	return fmt.Errorf("%w: %s: %s", common.ErrValidation, path, msg)
}

func coerceNumber(v any, path string) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case string:
		f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(n), ",", "."), 64)
		if err != nil {
			return 0, coerceErr(path, fmt.Sprintf("%q is not a number", n))
		}
		return f, nil
	default:
		return 0, coerceErr(path, "expected a number")
	}
}

func coerceString(v any, path string) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", coerceErr(path, "expected a string")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", coerceErr(path, "must not be empty")
	}
	return s, nil
}

func coerceDate(v any, path string) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, coerceErr(path, "expected a YYYY-MM-DD date string")
	}
	t, err := utils.ParseYMD(s)
	if err != nil {
		return time.Time{}, coerceErr(path, fmt.Sprintf("%q is not a YYYY-MM-DD date", s))
	}
	return t, nil
}

// checkNestedRequired walks the schema's required fields that are nested
// objects and verifies each declared sub-field is present, so a half-edited
// working object fails on the first missing path before typed coercion runs.
func checkNestedRequired(m map[string]any, schema registry.Schema) error {
	for _, field := range schema.Required {
		subs := schema.RequiredSubFields(field)
		if len(subs) == 0 {
			continue
		}
		obj, err := requireObject(m, field, field)
		if err != nil {
			return err
		}
		for _, sub := range subs {
			if _, err := requireField(obj, sub, field+"."+sub); err != nil {
				return err
			}
		}
	}
	return nil
}

// field accessors over the working object

func requireField(m map[string]any, key, path string) (any, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, coerceErr(path, "required field is missing")
	}
	return v, nil
}

func requireObject(m map[string]any, key, path string) (map[string]any, error) {
	v, err := requireField(m, key, path)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, coerceErr(path, "expected an object")
	}
	return obj, nil
}

func requireArray(m map[string]any, key, path string) ([]any, error) {
	v, ok := m[key]
	if !ok || v == nil {
		// an empty list of line items is legal
		return nil, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, coerceErr(path, "expected an array")
	}
	return arr, nil
}

func requireNumber(m map[string]any, key, path string) (float64, error) {
	v, err := requireField(m, key, path)
	if err != nil {
		return 0, err
	}
	return coerceNumber(v, path)
}

func requireString(m map[string]any, key, path string) (string, error) {
	v, err := requireField(m, key, path)
	if err != nil {
		return "", err
	}
	return coerceString(v, path)
}

func requireDate(m map[string]any, key, path string) (time.Time, error) {
	v, err := requireField(m, key, path)
	if err != nil {
		return time.Time{}, err
	}
	return coerceDate(v, path)
}

func optionalNumber(m map[string]any, key, path string) (*float64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	f, err := coerceNumber(v, path)
	if err != nil {
		return nil, err
	}
	m[key] = f // normalize in place so the persisted json carries a number
	return &f, nil
}

func optionalString(m map[string]any, key, path string) (*string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, coerceErr(path, "expected a string")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	return &s, nil
}

func optionalDate(m map[string]any, key, path string) (*time.Time, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	t, err := coerceDate(v, path)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// coerceReceipt validates and types the working object for the receipts
// category. It normalizes numeric values in place so the object that gets
// persisted alongside the record only carries JSON numbers.
func coerceReceipt(m map[string]any) (*entity.Receipt, error) {
	r := &entity.Receipt{}
	var err error

	if r.From, err = requireString(m, "from", "from"); err != nil {
		return nil, err
	}
	if r.Category, err = requireString(m, "category", "category"); err != nil {
		return nil, err
	}
	if r.TxDate, err = requireDate(m, "date", "date"); err != nil {
		return nil, err
	}
	if r.Total, err = requireNumber(m, "total", "total"); err != nil {
		return nil, err
	}
	m["total"] = r.Total

	if r.Number, err = optionalString(m, "number", "number"); err != nil {
		return nil, err
	}
	if r.Time, err = optionalString(m, "time", "time"); err != nil {
		return nil, err
	}
	if r.Subtotal, err = optionalNumber(m, "subtotal", "subtotal"); err != nil {
		return nil, err
	}
	if r.Tax, err = optionalNumber(m, "tax", "tax"); err != nil {
		return nil, err
	}
	if r.Tip, err = optionalNumber(m, "tip", "tip"); err != nil {
		return nil, err
	}

	items, err := requireArray(m, "items", "items")
	if err != nil {
		return nil, err
	}
	r.Items = make([]entity.ReceiptItem, 0, len(items))
	for i, raw := range items {
		path := fmt.Sprintf("items[%d]", i)
		im, ok := raw.(map[string]any)
		if !ok {
			return nil, coerceErr(path, "expected an object")
		}
		var item entity.ReceiptItem
		if item.Description, err = requireString(im, "description", path+".description"); err != nil {
			return nil, err
		}
		if item.Quantity, err = requireNumber(im, "quantity", path+".quantity"); err != nil {
			return nil, err
		}
		if item.Amount, err = requireNumber(im, "amount", path+".amount"); err != nil {
			return nil, err
		}
		im["quantity"] = item.Quantity
		im["amount"] = item.Amount
		r.Items = append(r.Items, item)
	}
	return r, nil
}

func coerceInvoice(m map[string]any) (*entity.Invoice, error) {
	inv := &entity.Invoice{}
	var err error

	from, err := requireObject(m, "from", "from")
	if err != nil {
		return nil, err
	}
	if inv.FromName, err = requireString(from, "name", "from.name"); err != nil {
		return nil, err
	}
	if inv.FromAddress, err = optionalString(from, "address", "from.address"); err != nil {
		return nil, err
	}

	to, err := requireObject(m, "to", "to")
	if err != nil {
		return nil, err
	}
	if inv.ToName, err = requireString(to, "name", "to.name"); err != nil {
		return nil, err
	}
	if inv.ToAddress, err = optionalString(to, "address", "to.address"); err != nil {
		return nil, err
	}

	if inv.Number, err = optionalString(m, "number", "number"); err != nil {
		return nil, err
	}
	if inv.InvoiceDate, err = optionalDate(m, "date", "date"); err != nil {
		return nil, err
	}
	if inv.DueDate, err = optionalDate(m, "due_date", "due_date"); err != nil {
		return nil, err
	}
	if inv.Currency, err = optionalString(m, "currency", "currency"); err != nil {
		return nil, err
	}
	if inv.Currency != nil && len(*inv.Currency) != 3 {
		return nil, coerceErr("currency", "expected a 3-letter currency code")
	}
	if inv.TotalAmountDue, err = requireNumber(m, "total_amount_due", "total_amount_due"); err != nil {
		return nil, err
	}
	m["total_amount_due"] = inv.TotalAmountDue

	items, err := requireArray(m, "items", "items")
	if err != nil {
		return nil, err
	}
	inv.Items = make([]entity.InvoiceItem, 0, len(items))
	for i, raw := range items {
		path := fmt.Sprintf("items[%d]", i)
		im, ok := raw.(map[string]any)
		if !ok {
			return nil, coerceErr(path, "expected an object")
		}
		var item entity.InvoiceItem
		if item.Description, err = requireString(im, "description", path+".description"); err != nil {
			return nil, err
		}
		if item.Amount, err = optionalNumber(im, "amount", path+".amount"); err != nil {
			return nil, err
		}
		inv.Items = append(inv.Items, item)
	}
	return inv, nil
}

func coerceCardStatement(m map[string]any) (*entity.CardStatement, error) {
	cs := &entity.CardStatement{}
	var err error

	issuer, err := requireObject(m, "issuer", "issuer")
	if err != nil {
		return nil, err
	}
	if cs.IssuerName, err = requireString(issuer, "name", "issuer.name"); err != nil {
		return nil, err
	}
	if cs.IssuerAddress, err = optionalString(issuer, "address", "issuer.address"); err != nil {
		return nil, err
	}

	recipient, err := requireObject(m, "recipient", "recipient")
	if err != nil {
		return nil, err
	}
	if cs.RecipientName, err = requireString(recipient, "name", "recipient.name"); err != nil {
		return nil, err
	}
	if cs.RecipientAddress, err = optionalString(recipient, "address", "recipient.address"); err != nil {
		return nil, err
	}

	card, err := requireObject(m, "credit_card", "credit_card")
	if err != nil {
		return nil, err
	}
	holder, err := requireString(card, "holder", "credit_card.holder")
	if err != nil {
		return nil, err
	}
	cs.CardHolder = &holder
	if cs.CardNumber, err = optionalString(card, "number", "credit_card.number"); err != nil {
		return nil, err
	}
	if cs.CardType, err = optionalString(card, "type", "credit_card.type"); err != nil {
		return nil, err
	}

	if cs.StatementDate, err = optionalDate(m, "date", "date"); err != nil {
		return nil, err
	}
	if cs.TotalAmountDue, err = requireNumber(m, "total_amount_due", "total_amount_due"); err != nil {
		return nil, err
	}
	m["total_amount_due"] = cs.TotalAmountDue

	txs, err := requireArray(m, "transactions", "transactions")
	if err != nil {
		return nil, err
	}
	cs.Transactions = make([]entity.CardTransaction, 0, len(txs))
	for i, raw := range txs {
		path := fmt.Sprintf("transactions[%d]", i)
		tm, ok := raw.(map[string]any)
		if !ok {
			return nil, coerceErr(path, "expected an object")
		}
		var tx entity.CardTransaction
		if tx.Description, err = requireString(tm, "description", path+".description"); err != nil {
			return nil, err
		}
		if tx.Category, err = requireString(tm, "category", path+".category"); err != nil {
			return nil, err
		}
		if tx.Amount, err = requireNumber(tm, "amount", path+".amount"); err != nil {
			return nil, err
		}
		tm["amount"] = tx.Amount
		cs.Transactions = append(cs.Transactions, tx)
	}
	return cs, nil
}
