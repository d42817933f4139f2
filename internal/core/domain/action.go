package domain

// Metered actions. Each one costs coins when it succeeds.
const (
	ActionCreateInvoice    = "create_invoice"
	ActionAddInventory     = "add_inventory"
	ActionCreateDebtor     = "create_debtor"
	ActionCreateCreditor   = "create_creditor"
	ActionAddReceipt       = "add_receipt"
	ActionAddPayment       = "add_payment"
	ActionUpdateProfile    = "update_profile"
	ActionSubmitFeedback   = "submit_feedback"
	ActionProfitLossReport = "generate_profit_loss"
	ActionInventoryReport  = "generate_inventory_report"
)

// MeteredActions lists every metered action name.
var MeteredActions = []string{
	ActionCreateInvoice,
	ActionAddInventory,
	ActionCreateDebtor,
	ActionCreateCreditor,
	ActionAddReceipt,
	ActionAddPayment,
	ActionUpdateProfile,
	ActionSubmitFeedback,
	ActionProfitLossReport,
	ActionInventoryReport,
}
