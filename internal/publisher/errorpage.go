package publisher

import (
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const errorPageTmpl = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>NIFTY 50 Prediction - Error</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 0; padding: 20px; background: #f8f9fa; }
        .container { max-width: 800px; margin: 0 auto; background: white; padding: 40px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .error { color: #dc3545; text-align: center; }
        .refresh { margin-top: 20px; text-align: center; }
        .btn { background: #007bff; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="error">
            <h1>&#9888; Service Temporarily Unavailable</h1>
            <p>The NIFTY 50 prediction service is currently experiencing issues:</p>
            <p><em>{{.Message}}</em></p>
            <p>Last updated: {{.Timestamp}}</p>
        </div>
        <div class="refresh">
            <a href="javascript:location.reload()" class="btn">Refresh Page</a>
        </div>
    </div>
</body>
</html>
`

// WriteErrorPage replaces index.html with a static placeholder so the
// published site degrades instead of going stale silently.
func (p *Publisher) WriteErrorPage(runErr error) error {
	tmpl, err := template.New("error").Parse(errorPageTmpl)
	if err != nil {
		return fmt.Errorf("parse error template: %w", err)
	}
	if err := os.MkdirAll(p.SiteDir, 0755); err != nil {
		return fmt.Errorf("create site dir: %w", err)
	}
	var buf strings.Builder
	data := struct {
		Message   string
		Timestamp string
	}{
		Message:   runErr.Error(),
		Timestamp: time.Now().In(ist).Format("2006-01-02 15:04:05 IST"),
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("render error page: %w", err)
	}
	path := filepath.Join(p.SiteDir, "index.html")
	if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		return fmt.Errorf("write error page: %w", err)
	}
	log.Printf("[WARN] error page published: %s", path)
	return nil
}
