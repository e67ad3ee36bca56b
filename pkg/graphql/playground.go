package graphql

import (
	"net/http"
	"strings"
)

// graphiqlPage is a minimal GraphiQL page pointed at this endpoint. The
// {{endpoint}} placeholder is replaced with the request path at serve
// time, so the page works wherever the handler is mounted.
const graphiqlPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>GraphiQL</title>
  <style>
    body { margin: 0; }
    #graphiql { height: 100vh; }
  </style>
  <link rel="stylesheet" href="https://unpkg.com/graphiql@3/graphiql.min.css" />
</head>
<body>
  <div id="graphiql">Loading...</div>
  <script src="https://unpkg.com/react@18/umd/react.production.min.js"></script>
  <script src="https://unpkg.com/react-dom@18/umd/react-dom.production.min.js"></script>
  <script src="https://unpkg.com/graphiql@3/graphiql.min.js"></script>
  <script>
    const root = ReactDOM.createRoot(document.getElementById('graphiql'));
    root.render(
      React.createElement(GraphiQL, {
        fetcher: GraphiQL.createFetcher({ url: '{{endpoint}}' }),
      })
    );
  </script>
</body>
</html>
`

func (h *Handler) servePlayground(w http.ResponseWriter, r *http.Request) {
	page := strings.ReplaceAll(graphiqlPage, "{{endpoint}}", r.URL.Path)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(page))
}
