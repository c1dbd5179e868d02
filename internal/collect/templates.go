package collect

import (
	"fmt"
)

const (
	missingIndexTemplate = `# Welcome to %s

This is a generated page. See how to add a custom overview page for your plugin
[here](site:pulp-docs/docs/dev/guides/create-plugin-overviews/).
`

	restAPITemplate = `---
template: "rest_api.html"
---

# Rest API - %s {.hide-h1}
`
)

// MissingIndexPage is the placeholder content of an index page a component does not provide.
func MissingIndexPage(title string) []byte {
	return fmt.Appendf(nil, missingIndexTemplate, title)
}

// RestAPIPage is the stub page rendering the component's OpenAPI document.
func RestAPIPage(title string) []byte {
	return fmt.Appendf(nil, restAPITemplate, title)
}
