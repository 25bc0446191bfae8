// Package export maps record slices to uniform tabular rows for the document
// and spreadsheet generators. All mappings are pure: every row carries a value
// for every column, with absent fields rendered as a fixed placeholder so
// downstream generators can assume a consistent column set.
package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sirh-molino/hr-api/internal/core/domain"
)

// Placeholder fills columns whose source field is absent.
const Placeholder = "N/A"

// Table is the normalized row set handed to the artifact generators.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

var employeeHeaders = []string{
	"Nro. Documento", "Nombre", "Apellido", "Cargo", "Email", "Nro. Contacto", "Estado",
}

var contractHeaders = []string{
	"Tipo Contrato", "Fecha Inicio", "Fecha Fin", "Salario", "Estado", "Descripción",
}

// EmployeeTable maps a roster subset to export rows.
func EmployeeTable(title string, employees []*domain.Employee) Table {
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		status := "Inactivo"
		if e.Status.IsActive() {
			status = "Activo"
		}
		rows = append(rows, []string{
			orPlaceholder(e.DocumentNumber),
			orPlaceholder(e.Name),
			orPlaceholder(e.Surname),
			orPlaceholder(e.Position),
			orPlaceholder(e.Email),
			orPlaceholder(e.Phone),
			status,
		})
	}
	return Table{Title: title, Headers: employeeHeaders, Rows: rows}
}

// ContractTable maps a contract ledger to export rows. Salary renders as
// thousands-grouped COP currency.
func ContractTable(title string, contracts []*domain.Contract) Table {
	rows := make([][]string, 0, len(contracts))
	for _, c := range contracts {
		salary := Placeholder
		if c.Salary != nil {
			salary = FormatCOP(*c.Salary)
		}
		rows = append(rows, []string{
			orPlaceholder(string(c.Type)),
			orPlaceholder(c.StartDate),
			orPlaceholder(c.EndDate),
			salary,
			orPlaceholder(string(c.Status)),
			orPlaceholder(c.Description),
		})
	}
	return Table{Title: title, Headers: contractHeaders, Rows: rows}
}

// Filename builds the date-stamped artifact name, e.g.
// Reporte_Empleados_2026-08-30.pdf.
func Filename(prefix, extension string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", prefix, now.UTC().Format("2006-01-02"), extension)
}

// FormatCOP renders an amount as Colombian peso currency with dot thousands
// separators and no decimals, e.g. $2.500.000.
func FormatCOP(amount float64) string {
	digits := strconv.FormatInt(int64(amount), 10)
	negative := false
	if len(digits) > 0 && digits[0] == '-' {
		negative = true
		digits = digits[1:]
	}

	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, d)
	}

	if negative {
		return "-$" + string(grouped)
	}
	return "$" + string(grouped)
}

func orPlaceholder(v string) string {
	if v == "" {
		return Placeholder
	}
	return v
}
