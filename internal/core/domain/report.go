package domain

// NoPosition is the bucket label for employees without an assigned position.
const NoPosition = "Sin Cargo"

// StatusBreakdown is the binary active/retired split of the roster.
type StatusBreakdown struct {
	Active  int `json:"active"`
	Retired int `json:"retired"`
}

// KPISnapshot is the derived aggregate over the full employee and contract
// corpus. It is recomputed on every fetch and never persisted.
type KPISnapshot struct {
	TotalEmployees  int `json:"total_employees"`
	ActiveEmployees int `json:"active_employees"`
	TotalContracts  int `json:"total_contracts"`
	ActiveContracts int `json:"active_contracts"`

	// ByPosition maps position label to employee count; employees without a
	// position fall into the NoPosition bucket.
	ByPosition map[string]int  `json:"by_position"`
	ByStatus   StatusBreakdown `json:"by_status"`

	// Ratios are 0 when their denominator is 0.
	ActiveEmployeeRate   float64 `json:"active_employee_rate"`
	ActiveContractRate   float64 `json:"active_contract_rate"`
	ContractsPerEmployee float64 `json:"contracts_per_employee"`
}
