package controller

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/mouse-blink/doclint/internal/domain"
	m "github.com/mouse-blink/doclint/internal/model"
	"github.com/mouse-blink/doclint/internal/schema"
)

// kindColors maps violation kinds to their text colors.
var kindColors = map[m.ViolationKind]*color.Color{
	m.MissingBlock:       color.New(color.FgRed),
	m.MissingRequiredTag: color.New(color.FgRed),
	m.EmptyRequiredTag:   color.New(color.FgYellow),
	m.InvalidTagValue:    color.New(color.FgYellow),
	m.StaleOwnership:     color.New(color.FgCyan),
}

// RenderText renders the report as line-oriented text: one line per
// violation, diagnostics, then a summary table. With colorize false the
// output is plain ASCII, byte-identical across runs.
func RenderText(report m.Report, colorize bool) string {
	var out strings.Builder

	paint := func(kind m.ViolationKind) string {
		label := fmt.Sprintf("[%s]", kind)
		if !colorize {
			return label
		}

		if c, ok := kindColors[kind]; ok {
			return c.Sprint(label)
		}

		return label
	}

	for _, violation := range report.Violations {
		fmt.Fprintf(&out, "%s:%d: %s %s\n",
			violation.File, violation.Line, paint(violation.Type), violation.Message)
	}

	for _, diagnostic := range report.Diagnostics {
		fmt.Fprintf(&out, "%s: [%s] %s\n", diagnostic.File, diagnostic.Code, diagnostic.Message)
	}

	if len(report.Violations) > 0 || len(report.Diagnostics) > 0 {
		out.WriteString("\n")
	}

	out.WriteString(renderSummaryTable(report.Summary))

	return out.String()
}

func renderSummaryTable(summary m.Summary) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Violation", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, kind := range m.ViolationKinds() {
		table.Append([]string{kind.String(), fmt.Sprintf("%d", summary.ByKind[kind])})
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%d", summary.Total)})
	table.Render()

	fmt.Fprintf(&buf, "\nFiles scanned: %d, with violations: %d\n",
		summary.FilesScanned, summary.FilesWithViolations)

	return buf.String()
}

// RenderInventory renders per-file declaration counts as a table, in
// the same shape the check summary uses.
func RenderInventory(inventories []domain.FileInventory) string {
	if len(inventories) == 0 {
		return "No source files found\n"
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Path", "Declarations", "Documented"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	totalDecls, totalDocumented := 0, 0

	for _, inventory := range inventories {
		table.Append([]string{
			string(inventory.File),
			fmt.Sprintf("%d", inventory.Declarations),
			fmt.Sprintf("%d", inventory.Documented),
		})

		totalDecls += inventory.Declarations
		totalDocumented += inventory.Documented
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(inventories)),
		fmt.Sprintf("%d", totalDecls),
		fmt.Sprintf("%d", totalDocumented),
	})
	table.Render()

	return buf.String()
}

// RenderRules renders the effective rule table for inspection.
func RenderRules(registry *schema.Registry) string {
	kinds := registry.Kinds()
	sort.Strings(kinds)

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Construct", "Required Tag", "Value", "Optional"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, kind := range kinds {
		rule, ok := registry.RuleFor(m.ConstructKind(kind))
		if !ok {
			continue
		}

		optional := strings.Join(rule.Optional, ", ")

		for i, field := range rule.Required {
			row := []string{"", field.Tag, field.Predicate.Describe(), ""}
			if i == 0 {
				row[0] = kind
				row[3] = optional
			}

			table.Append(row)
		}
	}

	table.Render()

	return buf.String()
}
