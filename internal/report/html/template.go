package html

// reportTemplate renders extracted rows as a plain table: header,
// summary, and row table, via stdlib html/template with no CSS
// framework dependency.
const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>SDL Extraction Report - {{.SheetName}}</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; margin: 2em; color: #2c3e50; }
        h1 { margin-bottom: 0.2em; }
        .summary { margin-bottom: 1.5em; color: #555; }
        table { border-collapse: collapse; width: 100%; }
        th, td { border: 1px solid #ddd; padding: 6px 10px; text-align: left; }
        th { background: #4472C4; color: white; }
        tr:nth-child(even) { background: #f5f7fa; }
        .warnings { margin-top: 1.5em; }
        .warnings li { color: #9C5700; }
    </style>
</head>
<body>
    <h1>SDL Extraction Report</h1>
    <p class="summary">
        Sheet: <strong>{{.SheetName}}</strong> &middot;
        {{.TotalRows}} row(s) extracted
    </p>
    <table>
        <thead>
            <tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
        </thead>
        <tbody>
            {{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
            {{end}}
        </tbody>
    </table>
    {{if .Warnings}}
    <div class="warnings">
        <h2>Warnings</h2>
        <ul>{{range .Warnings}}<li>{{.}}</li>{{end}}</ul>
    </div>
    {{end}}
</body>
</html>
`
