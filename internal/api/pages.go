package api

import (
	"fmt"
	"net/http"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"

	"github.com/Ragavendra192/barani-report-system/internal/logtable"
	"github.com/Ragavendra192/barani-report-system/internal/report"
)

const appTitle = "Barani Reports"

// reportView is everything a report page renders.
type reportView struct {
	Kind     report.Kind
	Criteria report.Criteria
	Options  []string // dimension values, empty for the shift report
	Result   *report.Result
	Error    string
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}

func appPage(title, active string, body ...gomponents.Node) gomponents.Node {
	kinds := report.Kinds()
	nav := make([]gomponents.Node, 0, len(kinds)+1)
	nav = append(nav, navLink("Home", "/", active == ""))
	for _, k := range kinds {
		nav = append(nav, navLink(k.Title, k.Path, k.Name == active))
	}

	return html.HTML(
		html.Lang("en"),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.TitleEl(gomponents.Text(title+" | "+appTitle)),
			html.Link(html.Rel("icon"), html.Href("data:,")),
			html.Link(html.Rel("stylesheet"), html.Href(stylesheetPath)),
		),
		html.Body(
			html.Main(
				html.Class("layout"),
				html.Div(
					html.Class("topbar"),
					html.Strong(gomponents.Text(appTitle)),
					html.P(html.Class("muted"), gomponents.Text("Production log reports")),
				),
				html.Nav(html.Class("nav"), gomponents.Group(nav)),
				html.H1(html.Class("page-title"), gomponents.Text(title)),
				gomponents.Group(body),
			),
		),
	)
}

func navLink(label, href string, active bool) gomponents.Node {
	return html.A(html.Href(href), gomponents.If(active, html.Class("active")), gomponents.Text(label))
}

func errorPage(title, message string) gomponents.Node {
	return html.HTML(
		html.Lang("en"),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.TitleEl(gomponents.Text(title+" | "+appTitle)),
			html.Link(html.Rel("stylesheet"), html.Href(stylesheetPath)),
		),
		html.Body(
			html.Main(
				html.Class("layout"),
				html.H1(html.Class("page-title"), gomponents.Text(title)),
				html.P(gomponents.Text(message)),
				html.P(html.A(html.Href("/"), gomponents.Text("Back to reports"))),
			),
		),
	)
}

func homePage(kinds []report.Kind) gomponents.Node {
	cards := make([]gomponents.Node, 0, len(kinds))
	for _, k := range kinds {
		cards = append(cards, html.Div(
			html.Class("card"),
			html.H2(gomponents.Text(k.Title)),
			html.P(html.Class("muted"), gomponents.Text(homeDescription(k))),
			html.A(html.Href(k.Path), gomponents.Text("Open "+k.Title+" ->")),
		))
	}
	return appPage("Reports", "", html.Div(html.Class("cards"), gomponents.Group(cards)))
}

func homeDescription(k report.Kind) string {
	switch k.Filter {
	case report.FilterShift:
		return "Log entries by date range and production shift."
	default:
		return fmt.Sprintf("Log entries by date range for one %s.", k.Name)
	}
}

func reportPage(v reportView) gomponents.Node {
	return appPage(
		v.Kind.Title,
		v.Kind.Name,
		errorBanner(v.Error),
		html.Div(html.Class("card"), reportForm(v)),
		resultTable(v.Result),
	)
}

func errorBanner(message string) gomponents.Node {
	if message == "" {
		return nil
	}
	return html.Div(html.Class("card error"), gomponents.Attr("role", "alert"), html.P(gomponents.Text(message)))
}

func reportForm(v reportView) gomponents.Node {
	return html.Form(
		html.Method("post"),
		html.Action(v.Kind.Path),
		html.Div(
			html.Class("filters"),
			html.Label(
				gomponents.Text("From date"),
				html.Input(html.Type("date"), html.Name(report.FieldFromDate), html.Value(v.Criteria.From)),
			),
			html.Label(
				gomponents.Text("To date"),
				html.Input(html.Type("date"), html.Name(report.FieldToDate), html.Value(v.Criteria.To)),
			),
			html.Label(
				gomponents.Text(filterLabel(v.Kind)),
				filterSelect(v),
			),
		),
		html.Div(
			html.Class("button-row"),
			html.Button(html.Type("submit"), html.Name(report.FieldAction), html.Value(string(report.ActionSearch)), gomponents.Text("Search")),
			html.Button(html.Type("submit"), html.Name(report.FieldAction), html.Value(string(report.ActionExcel)), html.Class("secondary"), gomponents.Text("Download Excel")),
		),
	)
}

func filterLabel(k report.Kind) string {
	switch k.Field {
	case report.ShiftReport.Field:
		return "Shift"
	case report.OperatorReport.Field:
		return "Operator"
	default:
		return "Product"
	}
}

func filterSelect(v reportView) gomponents.Node {
	selected := v.Kind.FilterValue(v.Criteria)

	var options []gomponents.Node
	if v.Kind.Filter == report.FilterShift {
		if selected == "" {
			selected = string(report.AllShifts)
		}
		for _, s := range report.ShiftOptions() {
			options = append(options, optionSelectedValue(s, selected, s))
		}
	} else {
		options = append(options, optionSelectedValue("", selected, "(all)"))
		for _, value := range v.Options {
			options = append(options, optionSelectedValue(value, selected, value))
		}
	}

	return html.Select(html.Name(v.Kind.Field), gomponents.Group(options))
}

func optionSelectedValue(value, selected, label string) gomponents.Node {
	if value == selected {
		return html.Option(html.Value(value), html.Selected(), gomponents.Text(label))
	}
	return html.Option(html.Value(value), gomponents.Text(label))
}

func resultTable(res *report.Result) gomponents.Node {
	if res == nil {
		return nil
	}
	if res.Len() == 0 {
		return html.Div(html.Class("card"), html.P(html.Class("muted"), gomponents.Text("No records match the selected filters.")))
	}

	headerCols := make([]gomponents.Node, 0, len(res.Columns))
	for _, col := range res.Columns {
		headerCols = append(headerCols, html.Th(gomponents.Text(columnLabel(col))))
	}

	rows := make([]gomponents.Node, 0, res.Len())
	for i := 0; i < res.Len(); i++ {
		cells := make([]gomponents.Node, 0, len(res.Columns))
		for _, col := range res.Columns {
			cells = append(cells, html.Td(gomponents.Text(res.Cell(i, col))))
		}
		rows = append(rows, html.Tr(gomponents.Group(cells)))
	}

	meta := fmt.Sprintf("%d row(s)", res.Len())
	if res.Len() == report.RowCap {
		meta = fmt.Sprintf("%d row(s), showing the first %d by date and time", res.Len(), report.RowCap)
	}

	return html.Div(
		html.Class("card table-wrap"),
		html.P(html.Class("muted"), gomponents.Text(meta)),
		html.Table(
			html.THead(html.Tr(gomponents.Group(headerCols))),
			html.TBody(gomponents.Group(rows)),
		),
	)
}

var columnLabels = map[string]string{
	logtable.ColDate:     "Date",
	logtable.ColTime:     "Time",
	logtable.ColBatchNo:  "Batch No",
	logtable.ColRecipe:   "Recipe",
	logtable.ColOperator: "Operator",
	logtable.ColAckKW:    "Ack kW",
	logtable.ColAckKWH:   "Ack kWh",
}

func columnLabel(col string) string {
	if label, ok := columnLabels[col]; ok {
		return label
	}
	return col
}
