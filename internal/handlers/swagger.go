package handlers

import (
	"html/template"

	"github.com/gin-gonic/gin"
)

var docsTemplate = template.Must(template.New("docs").Parse(docsPage))

// DocsPage is the data rendered into the /docs page.
type DocsPage struct {
	SpecURL string
	APIBase string
}

// SwaggerUIWithBearerFix serves the Brewlog API explorer. Tokens pasted into
// the Authorize dialog are sent with a "Bearer " prefix whether or not the
// user typed one.
func SwaggerUIWithBearerFix(page DocsPage) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		if err := docsTemplate.Execute(c.Writer, page); err != nil {
			c.Error(err)
		}
	}
}

const docsPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Brewlog API explorer</title>
<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css">
<style>
  body { margin: 0; font-family: sans-serif; }
  .brewlog-auth { padding: 12px 20px; background: #3b2a20; color: #f4ece4; }
  .brewlog-auth code { background: #5a4030; padding: 1px 4px; border-radius: 3px; }
</style>
</head>
<body>
<section class="brewlog-auth">
  <strong>Brewlog API</strong> &middot; every route under <code>{{.APIBase}}</code> needs a token.
  Issue one with <code>brewlog token -u &lt;username&gt;</code> (add <code>--name</code> and <code>--expires 90d</code> for a named token)
  or <code>POST {{.APIBase}}/tokens</code> with an existing one, then paste it into <em>Authorize</em>.
  Quote the <code>X-Request-Id</code> response header when reporting a failed call.
</section>
<div id="swagger-ui"></div>
<script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
<script>
  window.addEventListener("load", function () {
    window.ui = SwaggerUIBundle({
      url: "{{.SpecURL}}",
      dom_id: "#swagger-ui",
      deepLinking: true,
      docExpansion: "list",
      tagsSorter: "alpha",
      operationsSorter: "alpha",
      displayRequestDuration: true,
      persistAuthorization: true,
      presets: [SwaggerUIBundle.presets.apis],
      layout: "BaseLayout",
      requestInterceptor: function (req) {
        var auth = req.headers.Authorization;
        if (auth && auth.indexOf("Bearer ") !== 0) {
          req.headers.Authorization = "Bearer " + auth;
        }
        return req;
      }
    });
  });
</script>
</body>
</html>
`
