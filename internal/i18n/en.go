package i18n

var en = map[string]string{
	// Banner
	"app_title":        "PRESCRIPTION CALCULATOR v1.0",
	"app_intro":        "Calculate rx details including:",
	"feature_quantity": "Total quantity needed",
	"feature_sig":      "Rx sig (directions)",
	"feature_days":     "Days supply verification",
	"feature_cost":     "Total cost estimation",
	"done_hint":        "Enter 'done' when finished to see summary.",
	"cycle_title":      "INTERACTIVE RX CALCULATOR",

	// Prompts
	"prompt_drug":      "Enter drug name (or 'done' to finish): ",
	"prompt_strength":  "Enter strength (e.g., '500mg', '10mg'): ",
	"prompt_tablets":   "Tablets per dose: ",
	"prompt_doses":     "Doses per day: ",
	"prompt_days":      "Days supply: ",
	"prompt_cost":      "Cost per tablet ($): ",
	"prompt_save":      "Save this summary to file? (yes/no): ",

	// Errors
	"err_empty_drug":   "Error: Drug name cannot be empty",
	"err_not_positive": "Error: Values must be greater than 0",
	"err_negative":     "Error: Cost cannot be negative",
	"err_too_large":    "Error: Total quantity is too large",
	"err_parse":        "Error: Please enter valid numbers for quantity, doses, days, and cost",
	"err_save":         "Error: Could not save file",

	// Details and summary
	"details_title":    "PRESCRIPTION DETAILS",
	"summary_title":    "PRESCRIPTION SUMMARY",
	"drug_line":        "Drug: %s",
	"sig_line":         "Sig: %s",
	"quantity_line":    "Quantity: %d tablets",
	"days_line":        "Days Supply: %d days",
	"cost_line":        "Cost: $%s",
	"date_line":        "Date: %s",
	"count_line":       "Total Prescriptions: %d",
	"grand_total_line": "TOTAL COST FOR ALL PRESCRIPTIONS: $%s",
	"added":            "Prescription added!",
	"saved_to":         "Prescriptions saved to: %s",
	"saved_location":   "File location: %s",
	"not_saved":        "Summary not saved",
	"no_prescriptions": "No prescriptions entered.",
	"closed":           "Calculator closed. Good work boss.",

	// TUI
	"tui_help":         "enter submit • ctrl+c quit",
	"config_reloaded":  "Config reloaded",
	"session_count":    "%d in session",
}
