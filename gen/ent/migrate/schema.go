// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CardStatementsColumns holds the columns for the "card_statements" table.
	CardStatementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "file_path", Type: field.TypeString},
		{Name: "issuer_name", Type: field.TypeString},
		{Name: "issuer_address", Type: field.TypeString, Nullable: true},
		{Name: "recipient_name", Type: field.TypeString},
		{Name: "recipient_address", Type: field.TypeString, Nullable: true},
		{Name: "card_holder", Type: field.TypeString, Nullable: true},
		{Name: "card_number", Type: field.TypeString, Nullable: true},
		{Name: "card_type", Type: field.TypeString, Nullable: true},
		{Name: "statement_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "total_amount_due", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "extraction_id", Type: field.TypeUUID, Unique: true},
	}
	// CardStatementsTable holds the schema information for the "card_statements" table.
	CardStatementsTable = &schema.Table{
		Name:       "card_statements",
		Columns:    CardStatementsColumns,
		PrimaryKey: []*schema.Column{CardStatementsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "card_statements_extractions_card_statement",
				Columns:    []*schema.Column{CardStatementsColumns[14]},
				RefColumns: []*schema.Column{ExtractionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "cardstatement_user_id_statement_date",
				Unique:  false,
				Columns: []*schema.Column{CardStatementsColumns[1], CardStatementsColumns[10]},
			},
		},
	}
	// CardTransactionsColumns holds the columns for the "card_transactions" table.
	CardTransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "description", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "statement_id", Type: field.TypeUUID},
	}
	// CardTransactionsTable holds the schema information for the "card_transactions" table.
	CardTransactionsTable = &schema.Table{
		Name:       "card_transactions",
		Columns:    CardTransactionsColumns,
		PrimaryKey: []*schema.Column{CardTransactionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "card_transactions_card_statements_transactions",
				Columns:    []*schema.Column{CardTransactionsColumns[4]},
				RefColumns: []*schema.Column{CardStatementsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ExtractionsColumns holds the columns for the "extractions" table.
	ExtractionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "TO_RECOGNIZE"},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ExtractionsTable holds the schema information for the "extractions" table.
	ExtractionsTable = &schema.Table{
		Name:       "extractions",
		Columns:    ExtractionsColumns,
		PrimaryKey: []*schema.Column{ExtractionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "extraction_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{ExtractionsColumns[1], ExtractionsColumns[4]},
			},
			{
				Name:    "extraction_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionsColumns[1], ExtractionsColumns[8]},
			},
		},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "file_path", Type: field.TypeString},
		{Name: "from_name", Type: field.TypeString},
		{Name: "from_address", Type: field.TypeString, Nullable: true},
		{Name: "to_name", Type: field.TypeString},
		{Name: "to_address", Type: field.TypeString, Nullable: true},
		{Name: "number", Type: field.TypeString, Nullable: true},
		{Name: "invoice_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "due_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "currency", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "total_amount_due", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "extraction_id", Type: field.TypeUUID, Unique: true},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoices_extractions_invoice",
				Columns:    []*schema.Column{InvoicesColumns[14]},
				RefColumns: []*schema.Column{ExtractionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_user_id_invoice_date",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[1], InvoicesColumns[8]},
			},
		},
	}
	// InvoiceItemsColumns holds the columns for the "invoice_items" table.
	InvoiceItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "description", Type: field.TypeString},
		{Name: "amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "invoice_id", Type: field.TypeUUID},
	}
	// InvoiceItemsTable holds the schema information for the "invoice_items" table.
	InvoiceItemsTable = &schema.Table{
		Name:       "invoice_items",
		Columns:    InvoiceItemsColumns,
		PrimaryKey: []*schema.Column{InvoiceItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoice_items_invoices_items",
				Columns:    []*schema.Column{InvoiceItemsColumns[3]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ReceiptsColumns holds the columns for the "receipts" table.
	ReceiptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "file_path", Type: field.TypeString},
		{Name: "from", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "tx_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "total", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "number", Type: field.TypeString, Nullable: true},
		{Name: "time", Type: field.TypeString, Nullable: true},
		{Name: "subtotal", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "tax", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "tip", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "extraction_id", Type: field.TypeUUID, Unique: true},
	}
	// ReceiptsTable holds the schema information for the "receipts" table.
	ReceiptsTable = &schema.Table{
		Name:       "receipts",
		Columns:    ReceiptsColumns,
		PrimaryKey: []*schema.Column{ReceiptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "receipts_extractions_receipt",
				Columns:    []*schema.Column{ReceiptsColumns[14]},
				RefColumns: []*schema.Column{ExtractionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "receipt_user_id_tx_date",
				Unique:  false,
				Columns: []*schema.Column{ReceiptsColumns[1], ReceiptsColumns[5]},
			},
		},
	}
	// ReceiptItemsColumns holds the columns for the "receipt_items" table.
	ReceiptItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "description", Type: field.TypeString},
		{Name: "quantity", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,3)"}},
		{Name: "amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "receipt_id", Type: field.TypeUUID},
	}
	// ReceiptItemsTable holds the schema information for the "receipt_items" table.
	ReceiptItemsTable = &schema.Table{
		Name:       "receipt_items",
		Columns:    ReceiptItemsColumns,
		PrimaryKey: []*schema.Column{ReceiptItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "receipt_items_receipts_items",
				Columns:    []*schema.Column{ReceiptItemsColumns[4]},
				RefColumns: []*schema.Column{ReceiptsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CardStatementsTable,
		CardTransactionsTable,
		ExtractionsTable,
		InvoicesTable,
		InvoiceItemsTable,
		ReceiptsTable,
		ReceiptItemsTable,
	}
)

func init() {
	CardStatementsTable.ForeignKeys[0].RefTable = ExtractionsTable
	CardStatementsTable.Annotation = &entsql.Annotation{
		Table: "card_statements",
	}
	CardTransactionsTable.ForeignKeys[0].RefTable = CardStatementsTable
	CardTransactionsTable.Annotation = &entsql.Annotation{
		Table: "card_transactions",
	}
	ExtractionsTable.Annotation = &entsql.Annotation{
		Table: "extractions",
	}
	InvoicesTable.ForeignKeys[0].RefTable = ExtractionsTable
	InvoicesTable.Annotation = &entsql.Annotation{
		Table: "invoices",
	}
	InvoiceItemsTable.ForeignKeys[0].RefTable = InvoicesTable
	InvoiceItemsTable.Annotation = &entsql.Annotation{
		Table: "invoice_items",
	}
	ReceiptsTable.ForeignKeys[0].RefTable = ExtractionsTable
	ReceiptsTable.Annotation = &entsql.Annotation{
		Table: "receipts",
	}
	ReceiptItemsTable.ForeignKeys[0].RefTable = ReceiptsTable
	ReceiptItemsTable.Annotation = &entsql.Annotation{
		Table: "receipt_items",
	}
}
