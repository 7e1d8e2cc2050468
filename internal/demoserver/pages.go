package demoserver

// FixtureFile is one downloadable fixture served under /files/{name}.
type FixtureFile struct {
	ContentType string
	Body        []byte
}

const rootPage = `<!DOCTYPE html>
<html>
<head><title>otoshi demo server</title></head>
<body>
<h1>otoshi demo server</h1>
<ul>
<li><a href="/files/sample.txt">/files/sample.txt</a></li>
<li><a href="/files/page.html">/files/page.html</a></li>
<li><a href="/files/data.json">/files/data.json</a></li>
<li>/status/{code} returns that status code</li>
</ul>
</body>
</html>
`

var fixtureFiles = map[string]FixtureFile{
	"sample.txt": {
		ContentType: "text/plain; charset=utf-8",
		Body:        []byte("The quick brown fox jumps over the lazy dog.\n"),
	},
	"page.html": {
		ContentType: "text/html; charset=utf-8",
		Body: []byte(`<!DOCTYPE html>
<html>
<head><title>Fixture Page</title></head>
<body><p>A small HTML fixture for download tests.</p></body>
</html>
`),
	},
	"data.json": {
		ContentType: "application/json",
		Body:        []byte(`{"name":"otoshi","kind":"fixture","values":[1,2,3]}` + "\n"),
	},
}
