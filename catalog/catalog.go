// Package catalog declares the domain-scoped tool vocabulary available to
// conversation authors. The ordered tool name list per domain feeds the
// content editor's autocomplete; the JSON schemas document each tool's
// argument shape for reviewers.
package catalog

import (
	"github.com/invopop/jsonschema"
)

const (
	DomainAutomotive = "automotive"
	DomainSupport    = "support"
)

type ToolDefinition struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"input_schema"`
}

type SearchInventoryInput struct {
	Brand    string `json:"brand,omitempty" jsonschema_description:"Vehicle brand to filter by."`
	Model    string `json:"model,omitempty" jsonschema_description:"Vehicle model to filter by."`
	MaxPrice int    `json:"max_price,omitempty" jsonschema_description:"Maximum price in local currency."`
}

type QuoteVehicleInput struct {
	VehicleID string `json:"vehicle_id" jsonschema_description:"Inventory identifier of the vehicle to quote."`
}

type ScheduleTestDriveInput struct {
	VehicleID string `json:"vehicle_id" jsonschema_description:"Inventory identifier of the vehicle."`
	Date      string `json:"date" jsonschema_description:"Requested date, YYYY-MM-DD."`
}

type CheckFinancingInput struct {
	VehicleID string `json:"vehicle_id" jsonschema_description:"Inventory identifier of the vehicle."`
	Months    int    `json:"months" jsonschema_description:"Financing term in months."`
}

type LookupOrderInput struct {
	OrderID string `json:"order_id" jsonschema_description:"Order number as given to the customer."`
}

type CreateTicketInput struct {
	Subject  string `json:"subject" jsonschema_description:"Short summary of the issue."`
	Severity string `json:"severity,omitempty" jsonschema_description:"One of low, medium, high."`
}

type EscalateInput struct {
	TicketID string `json:"ticket_id" jsonschema_description:"Ticket to escalate."`
	Reason   string `json:"reason" jsonschema_description:"Why the ticket needs a human."`
}

// Declaration order matters: the autocomplete picker shows candidates in
// catalog order when unfiltered.
var domains = map[string][]ToolDefinition{
	DomainAutomotive: {
		{
			Name:        "search_inventory",
			Description: "Search the dealership inventory for vehicles matching the customer's criteria.",
			InputSchema: Generate[SearchInventoryInput](),
		},
		{
			Name:        "quote_vehicle",
			Description: "Produce a price quote for a specific vehicle.",
			InputSchema: Generate[QuoteVehicleInput](),
		},
		{
			Name:        "schedule_test_drive",
			Description: "Book a test drive appointment for a vehicle.",
			InputSchema: Generate[ScheduleTestDriveInput](),
		},
		{
			Name:        "check_financing",
			Description: "Check financing options for a vehicle over a given term.",
			InputSchema: Generate[CheckFinancingInput](),
		},
	},
	DomainSupport: {
		{
			Name:        "lookup_order",
			Description: "Fetch the current state of a customer order.",
			InputSchema: Generate[LookupOrderInput](),
		},
		{
			Name:        "create_ticket",
			Description: "Open a support ticket on behalf of the customer.",
			InputSchema: Generate[CreateTicketInput](),
		},
		{
			Name:        "escalate",
			Description: "Escalate an existing ticket to a human agent.",
			InputSchema: Generate[EscalateInput](),
		},
	},
}

// Tools returns the ordered tool definitions for a domain. Unknown domains
// return nil, which keeps the autocomplete feature unavailable rather than
// erroring.
func Tools(domain string) []ToolDefinition {
	return domains[domain]
}

// ToolNames returns the ordered tool name list for a domain.
func ToolNames(domain string) []string {
	defs := domains[domain]
	if len(defs) == 0 {
		return nil
	}
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
	}
	return names
}

// Domains lists the known domains in a stable order.
func Domains() []string {
	return []string{DomainAutomotive, DomainSupport}
}
