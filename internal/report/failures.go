package report

import (
	"strconv"
	"strings"

	"articleqc/internal/validator"
	"articleqc/pkg/utils"
)

// MaxTitleWidth caps the title column of the failure table, in terminal cells.
const MaxTitleWidth = 40

// FormatFailures renders invalid records as a markdown-style table whose
// columns are padded by display width, so CJK titles line up.
func FormatFailures(failures []validator.Failure) string {
	header := []string{"#", "Title", "Errors"}
	rows := make([][]string, 0, len(failures))

	for _, f := range failures {
		codes := make([]string, len(f.Errors))
		for i, code := range f.Errors {
			codes[i] = string(code)
		}

		title := utils.TruncateWidth(utils.CollapseWhitespace(f.Title), MaxTitleWidth)
		if title == "" {
			title = "(untitled)"
		}

		rows = append(rows, []string{strconv.Itoa(f.Index), title, strings.Join(codes, ", ")})
	}

	widths := make([]int, len(header))
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], utils.DisplayWidth(cell))
		}
	}

	var sb strings.Builder

	writeRow(&sb, header, widths)

	separator := make([]string, len(widths))
	for i, w := range widths {
		separator[i] = strings.Repeat("-", max(w, 3))
	}

	writeRow(&sb, separator, widths)

	for _, row := range rows {
		writeRow(&sb, row, widths)
	}

	return sb.String()
}

func writeRow(sb *strings.Builder, cells []string, widths []int) {
	sb.WriteString("|")

	for i, cell := range cells {
		sb.WriteString(" ")
		sb.WriteString(utils.PadWidth(cell, max(widths[i], 3)))
		sb.WriteString(" |")
	}

	sb.WriteByte('\n')
}
